// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"github.com/louisbranch/smarthealth/internal/platform/i18n/catalog"
	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/smarthealth/internal/services/web/templates"
)

// Viewer is the device state a page is rendered for. *appstate.Store
// satisfies it.
type Viewer interface {
	Language() i18n.Language
	Role() appstate.Role
	Translate(path string, fallback string) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title        string
	StatusCode   int
	Fragment     templ.Component
	ShowNav      bool
	RefreshAfter time.Duration
	// Notice is shown in place of any queued flash notice.
	Notice *flashnotice.Notice
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page. HTMX requests get the main element
// only; full requests get the document shell and any pending flash toast.
func WriteModulePage(w http.ResponseWriter, r *http.Request, viewer Viewer, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.MainContent().Render(ctx, &buf); err != nil {
			return err
		}
		writeHTML(w, statusCode, buf.Bytes())
		return nil
	}

	pageContext := webtemplates.PageContext{
		Title:        page.Title,
		Lang:         i18n.Default,
		Role:         appstate.RoleUnset,
		ShowNav:      page.ShowNav,
		RefreshAfter: page.RefreshAfter,
	}
	if r != nil && r.URL != nil {
		pageContext.CurrentPath = r.URL.Path
	}
	if viewer != nil {
		pageContext.Lang = viewer.Language()
		pageContext.Role = viewer.Role()
		pageContext.Loc = viewer
	}
	pageContext.Toast = resolveFlashToast(w, r, pageContext.Loc)
	if page.Notice != nil {
		pageContext.Toast = toastFor(*page.Notice, pageContext.Loc)
	}

	if err := webtemplates.AppLayout(pageContext).Render(ctx, &buf); err != nil {
		return err
	}
	writeHTML(w, statusCode, buf.Bytes())
	return nil
}

func writeHTML(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer) *webtemplates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	return toastFor(notice, loc)
}

func toastFor(notice flashnotice.Notice, loc webtemplates.Localizer) *webtemplates.Toast {
	title := strings.TrimSpace(webtemplates.T(loc, notice.TitleKey(), ""))
	if title == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:  string(notice.Kind),
		Title: title,
		Body:  strings.TrimSpace(webtemplates.T(loc, notice.BodyKey(), "")),
	}
}

// CatalogViewer renders pages for a device whose state could not be read:
// the default language with no role.
type CatalogViewer struct {
	Catalog *catalog.Catalog
}

// Language returns the default language.
func (CatalogViewer) Language() i18n.Language { return i18n.Default }

// Role returns the unset role.
func (CatalogViewer) Role() appstate.Role { return appstate.RoleUnset }

// Translate resolves path in the default language.
func (v CatalogViewer) Translate(path string, fallback string) string {
	if v.Catalog == nil {
		return fallback
	}
	return v.Catalog.Translate(i18n.Default, path, fallback)
}
