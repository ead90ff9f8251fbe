// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/smarthealth/internal/services/web/platform/errors"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/pagerender"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/smarthealth/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message. Raw error
// text is never returned.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized := strings.TrimSpace(webtemplates.T(loc, key, "")); localized != "" {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, viewer pagerender.Viewer) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	var loc webtemplates.Localizer
	if viewer != nil {
		loc = viewer
	}
	showNav := viewer != nil && viewer.Role().IsSet()
	err := pagerender.WriteModulePage(w, r, viewer, pagerender.ModulePage{
		Title:      webtemplates.ErrorPageTitle(loc, statusCode),
		StatusCode: statusCode,
		ShowNav:    showNav,
		Fragment:   webtemplates.ErrorState(loc, statusCode, routepath.Root),
	})
	if err != nil {
		log.Printf("error page render failed status=%d request_id=%s err=%v", statusCode, httpx.RequestIDFrom(r), err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, viewer pagerender.Viewer) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	path := "-"
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	log.Printf("module error status=%d path=%s request_id=%s err=%v", statusCode, path, httpx.RequestIDFrom(r), err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, viewer)
		return
	}
	var loc webtemplates.Localizer
	if viewer != nil {
		loc = viewer
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
