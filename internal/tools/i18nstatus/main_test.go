package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedTablesAreComplete(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run([]string{"-strict"}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, lang := range []string{"en", "hi", "as", "bn"} {
		if !strings.Contains(out.String(), "| `"+lang+"` |") {
			t.Fatalf("report missing language %s: %q", lang, out.String())
		}
	}
	if strings.Contains(out.String(), "Missing keys") {
		t.Fatalf("embedded tables report missing keys: %q", out.String())
	}
}

func writeLocales(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "locales"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for code, body := range files {
		if err := os.WriteFile(filepath.Join(dir, "locales", code+".yaml"), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", code, err)
		}
	}
	return dir
}

func TestReportFindsGapsPerSection(t *testing.T) {
	t.Parallel()

	full := "navigation:\n  home: Home\n  settings: Settings\nnotices:\n  dataSaved:\n    title: Saved\n"
	dir := writeLocales(t, map[string]string{
		"en": full,
		"hi": "navigation:\n  home: होम\nnotices:\n  dataSaved:\n    title: सहेजा\n",
		"as": full,
		"bn": full + "legacy:\n  key: x\n",
	})
	jsonPath := filepath.Join(t.TempDir(), "status.json")

	var out bytes.Buffer
	if err := run([]string{"-dir", dir, "-json-out", jsonPath}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var rep report
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	byLang := map[string]languageStatus{}
	for _, lang := range rep.Languages {
		byLang[lang.Language] = lang
	}

	hi := byLang["hi"]
	if !reflect.DeepEqual(hi.MissingKeys, []string{"navigation.settings"}) {
		t.Fatalf("hi missing = %v", hi.MissingKeys)
	}
	if hi.Completion != 66.7 {
		t.Fatalf("hi completion = %v, want 66.7", hi.Completion)
	}
	wantSections := []sectionStatus{
		{Section: "navigation", BaseKeys: 2, Translated: 1, Missing: 1, Completion: 50},
		{Section: "notices", BaseKeys: 1, Translated: 1, Completion: 100},
	}
	if !reflect.DeepEqual(hi.Sections, wantSections) {
		t.Fatalf("hi sections = %+v, want %+v", hi.Sections, wantSections)
	}
	if got := byLang["bn"].ExtraKeys; !reflect.DeepEqual(got, []string{"legacy.key"}) {
		t.Fatalf("bn extra = %v", got)
	}
	if !strings.Contains(out.String(), "- `navigation.settings`") {
		t.Fatalf("markdown does not list the missing key: %q", out.String())
	}

	if err := run([]string{"-dir", dir, "-strict"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected strict run to fail on missing keys")
	}
}
