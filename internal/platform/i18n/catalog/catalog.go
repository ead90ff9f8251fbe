// Package catalog holds the per-language translation trees and resolves
// dotted key paths against them.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"gopkg.in/yaml.v3"
)

// Tree is one language's nested translation table. Interior nodes are Trees
// and leaves are strings.
type Tree map[string]any

// Catalog stores one Tree per supported language.
type Catalog struct {
	trees map[i18n.Language]Tree
}

//go:embed locales/*.yaml
var embeddedLocalesFS embed.FS

// Lookup walks path one dot-separated segment at a time. It returns fallback
// when any segment is missing or the resolved value is not a string.
func Lookup(tree Tree, keyPath string, fallback string) string {
	if tree == nil || keyPath == "" {
		return fallback
	}
	var node any = tree
	for _, segment := range strings.Split(keyPath, ".") {
		branch, ok := asTree(node)
		if !ok {
			return fallback
		}
		next, exists := branch[segment]
		if !exists {
			return fallback
		}
		node = next
	}
	value, ok := node.(string)
	if !ok {
		return fallback
	}
	return value
}

// Paths returns every leaf path in tree, sorted.
func Paths(tree Tree) []string {
	var out []string
	collectPaths(tree, "", &out)
	sort.Strings(out)
	return out
}

// LoadEmbedded loads the translation trees compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocalesFS)
}

// LoadFromFS loads locales/<code>.yaml for every supported language.
// Every language must be present and every leaf must be a string.
func LoadFromFS(localesFS fs.FS) (*Catalog, error) {
	c := &Catalog{trees: make(map[i18n.Language]Tree, len(i18n.AllLanguages()))}
	for _, lang := range i18n.AllLanguages() {
		file := path.Join("locales", lang.String()+".yaml")
		data, err := fs.ReadFile(localesFS, file)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", file, err)
		}
		tree, err := parseTree(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", file, err)
		}
		c.trees[lang] = tree
	}
	return c, nil
}

// MustLoadEmbedded is LoadEmbedded for process startup and tests.
func MustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}

// Tree returns the translation tree for lang, or nil when it is unknown.
func (c *Catalog) Tree(lang i18n.Language) Tree {
	if c == nil {
		return nil
	}
	return c.trees[lang]
}

// Translate resolves keyPath in lang's tree. A path missing from lang
// resolves to fallback; other languages are not consulted.
func (c *Catalog) Translate(lang i18n.Language, keyPath string, fallback string) string {
	return Lookup(c.Tree(lang), keyPath, fallback)
}

// Languages returns the languages loaded into the catalog in display order.
func (c *Catalog) Languages() []i18n.Language {
	if c == nil {
		return nil
	}
	var out []i18n.Language
	for _, lang := range i18n.AllLanguages() {
		if _, ok := c.trees[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

func parseTree(data []byte) (Tree, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return normalize(raw, "")
}

func normalize(raw map[string]any, prefix string) (Tree, error) {
	out := make(Tree, len(raw))
	for key, value := range raw {
		if key == "" || strings.Contains(key, ".") {
			return nil, fmt.Errorf("invalid key %q under %q", key, prefix)
		}
		full := joinPath(prefix, key)
		switch v := value.(type) {
		case string:
			out[key] = v
		case map[string]any:
			child, err := normalize(v, full)
			if err != nil {
				return nil, err
			}
			out[key] = child
		default:
			return nil, fmt.Errorf("key %q: value must be a string or mapping, got %T", full, value)
		}
	}
	return out, nil
}

func collectPaths(tree Tree, prefix string, out *[]string) {
	for key, value := range tree {
		full := joinPath(prefix, key)
		if child, ok := asTree(value); ok {
			collectPaths(child, full, out)
			continue
		}
		*out = append(*out, full)
	}
}

func asTree(node any) (Tree, bool) {
	switch v := node.(type) {
	case Tree:
		return v, true
	case map[string]any:
		return Tree(v), true
	default:
		return nil, false
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
