package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// ErrorPageTitle returns the document title for an error status.
func ErrorPageTitle(loc Localizer, statusCode int) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "errors.notFound.title", "Page Not Found")
	}
	return T(loc, "errors.server.title", "Something Went Wrong")
}

// ErrorState renders the body of the 404 and 500 pages.
func ErrorState(loc Localizer, statusCode int, homePath string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		body := T(loc, "errors.server.body", "Please try again in a moment.")
		if statusCode == http.StatusNotFound {
			body = T(loc, "errors.notFound.body", "The page you are looking for does not exist.")
		} else {
			statusCode = http.StatusInternalServerError
		}
		m.open("section", "class", "error-state", "data-status", http.StatusText(statusCode))
		m.icon(icons.IDInfo, "error-icon")
		m.element("h1", ErrorPageTitle(loc, statusCode))
		m.element("p", body)
		m.element("a", T(loc, "errors.backHome", "Back to Home"), "href", homePath, "class", "button button-primary")
		m.close("section")
		return m.err
	})
}
