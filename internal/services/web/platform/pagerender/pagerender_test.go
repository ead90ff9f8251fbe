package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"github.com/louisbranch/smarthealth/internal/platform/i18n/catalog"
	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/requestmeta"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type staticViewer struct {
	lang i18n.Language
	role appstate.Role
}

func (v staticViewer) Language() i18n.Language { return v.lang }
func (v staticViewer) Role() appstate.Role     { return v.role }
func (v staticViewer) Translate(path string, fallback string) string {
	return catalog.MustLoadEmbedded().Translate(v.lang, path, fallback)
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:      "Settings",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageInViewerLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, staticViewer{lang: i18n.Bengali, role: appstate.RoleCommunity}, ModulePage{
		Title:    "Settings",
		ShowNav:  true,
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{`<html lang="bn">`, `id="fragment-root"`, "সেটিংস", `aria-current="page"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestWriteModulePageConsumesFlashNotice(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	flashnotice.WriteWithPolicy(seed, httptest.NewRequest(http.MethodPost, "/data-entry", nil), flashnotice.Success("notices.dataSaved"), requestmeta.SchemePolicy{})

	req := httptest.NewRequest(http.MethodGet, "/data-entry", nil)
	for _, cookie := range seed.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, req, staticViewer{lang: i18n.English, role: appstate.RoleASHA}, ModulePage{ShowNav: true}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Data Saved") || !strings.Contains(body, `data-toast="success"`) {
		t.Fatalf("body missing toast: %q", body)
	}
	cleared := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("flash cookie was not cleared")
	}
}

func TestWriteModulePageInlineNoticeWins(t *testing.T) {
	t.Parallel()

	notice := flashnotice.Error("notices.missingInformation")
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, httptest.NewRequest(http.MethodPost, "/data-entry", nil), staticViewer{lang: i18n.English, role: appstate.RoleASHA}, ModulePage{
		StatusCode: http.StatusUnprocessableEntity,
		ShowNav:    true,
		Notice:     &notice,
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	if body := rr.Body.String(); !strings.Contains(body, `data-toast="error"`) || !strings.Contains(body, "Missing Information") {
		t.Fatalf("body missing inline toast: %q", body)
	}
}

func TestCatalogViewerUsesDefaultLanguage(t *testing.T) {
	t.Parallel()

	viewer := CatalogViewer{Catalog: catalog.MustLoadEmbedded()}
	if got := viewer.Translate("navigation.settings", "x"); got != "Settings" {
		t.Fatalf("Translate() = %q, want %q", got, "Settings")
	}
	if got := (CatalogViewer{}).Translate("navigation.settings", "x"); got != "x" {
		t.Fatalf("nil catalog Translate() = %q, want fallback", got)
	}
	if viewer.Role() != appstate.RoleUnset {
		t.Fatal("catalog viewer should have no role")
	}
}
