// Package main reports how completely each language's translation table
// covers the English base table.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"github.com/louisbranch/smarthealth/internal/platform/i18n/catalog"
)

type report struct {
	BaseLanguage string           `json:"base_language"`
	Languages    []languageStatus `json:"languages"`
}

type languageStatus struct {
	Language    string          `json:"language"`
	BaseKeys    int             `json:"base_keys"`
	Translated  int             `json:"translated"`
	Missing     int             `json:"missing"`
	Extra       int             `json:"extra"`
	Completion  float64         `json:"completion"`
	Sections    []sectionStatus `json:"sections"`
	MissingKeys []string        `json:"missing_keys"`
	ExtraKeys   []string        `json:"extra_keys"`
}

// sectionStatus groups keys by their first path segment (navigation,
// dashboard, notices, ...).
type sectionStatus struct {
	Section    string  `json:"section"`
	BaseKeys   int     `json:"base_keys"`
	Translated int     `json:"translated"`
	Missing    int     `json:"missing"`
	Completion float64 `json:"completion"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("i18nstatus", flag.ContinueOnError)
	localesDir := fs.String("dir", "", "directory holding locales/<code>.yaml; empty uses the embedded tables")
	markdownOut := fs.String("out", "", "markdown output path; empty prints to stdout")
	jsonOut := fs.String("json-out", "", "optional json output path")
	strict := fs.Bool("strict", false, "fail when any language is missing keys")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := loadCatalog(*localesDir)
	if err != nil {
		return fmt.Errorf("load translation tables: %w", err)
	}
	rep := buildReport(cat, i18n.Default)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, rep); err != nil {
			return err
		}
	}
	markdown := renderMarkdown(rep)
	if *markdownOut == "" {
		if _, err := io.WriteString(stdout, markdown); err != nil {
			return err
		}
	} else if err := writeFile(*markdownOut, []byte(markdown)); err != nil {
		return err
	}

	if *strict {
		for _, lang := range rep.Languages {
			if lang.Missing > 0 {
				return fmt.Errorf("language %s is missing %d keys", lang.Language, lang.Missing)
			}
		}
	}
	return nil
}

func loadCatalog(dir string) (*catalog.Catalog, error) {
	if strings.TrimSpace(dir) == "" {
		return catalog.LoadEmbedded()
	}
	return catalog.LoadFromFS(os.DirFS(dir))
}

func buildReport(cat *catalog.Catalog, base i18n.Language) report {
	baseKeys := keySet(catalog.Paths(cat.Tree(base)))
	statuses := make([]languageStatus, 0, len(cat.Languages()))
	for _, lang := range cat.Languages() {
		keys := keySet(catalog.Paths(cat.Tree(lang)))
		missing := difference(baseKeys, keys)
		extra := difference(keys, baseKeys)
		translated := len(baseKeys) - len(missing)
		statuses = append(statuses, languageStatus{
			Language:    lang.String(),
			BaseKeys:    len(baseKeys),
			Translated:  translated,
			Missing:     len(missing),
			Extra:       len(extra),
			Completion:  percent(translated, len(baseKeys)),
			Sections:    sections(baseKeys, missing),
			MissingKeys: missing,
			ExtraKeys:   extra,
		})
	}
	return report{BaseLanguage: base.String(), Languages: statuses}
}

func sections(base map[string]struct{}, missing []string) []sectionStatus {
	totals := map[string]int{}
	for key := range base {
		totals[sectionOf(key)]++
	}
	gaps := map[string]int{}
	for _, key := range missing {
		gaps[sectionOf(key)]++
	}
	out := make([]sectionStatus, 0, len(totals))
	for name, total := range totals {
		translated := total - gaps[name]
		out = append(out, sectionStatus{
			Section:    name,
			BaseKeys:   total,
			Translated: translated,
			Missing:    gaps[name],
			Completion: percent(translated, total),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Section < out[j].Section })
	return out
}

func sectionOf(key string) string {
	section, _, _ := strings.Cut(key, ".")
	return section
}

func keySet(paths []string) map[string]struct{} {
	out := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		out[p] = struct{}{}
	}
	return out
}

// difference returns the keys of a absent from b, sorted.
func difference(a, b map[string]struct{}) []string {
	out := make([]string, 0)
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}

func renderMarkdown(rep report) string {
	var b strings.Builder
	b.WriteString("# Translation Status\n\n")
	fmt.Fprintf(&b, "Base language: `%s`.\n\n", rep.BaseLanguage)
	b.WriteString("| Language | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, lang := range rep.Languages {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n", lang.Language, lang.BaseKeys, lang.Translated, lang.Missing, lang.Extra, lang.Completion)
	}

	for _, lang := range rep.Languages {
		if lang.Missing == 0 && lang.Extra == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## `%s`\n", lang.Language)
		if lang.Missing > 0 {
			b.WriteString("\n| Section | Missing | Completion |\n| --- | ---: | ---: |\n")
			for _, section := range lang.Sections {
				if section.Missing == 0 {
					continue
				}
				fmt.Fprintf(&b, "| `%s` | %d | %.1f%% |\n", section.Section, section.Missing, section.Completion)
			}
			b.WriteString("\nMissing keys:\n\n")
			for _, key := range lang.MissingKeys {
				fmt.Fprintf(&b, "- `%s`\n", key)
			}
		}
		if lang.Extra > 0 {
			b.WriteString("\nExtra keys:\n\n")
			for _, key := range lang.ExtraKeys {
				fmt.Fprintf(&b, "- `%s`\n", key)
			}
		}
	}
	return b.String()
}

func writeJSON(path string, rep report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
