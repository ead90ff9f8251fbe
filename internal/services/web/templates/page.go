// Package templates renders the web app's HTML as templ components.
package templates

import (
	"time"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
)

// Localizer resolves dotted translation paths for the active language.
type Localizer interface {
	Translate(path string, fallback string) string
}

// T returns the translation for path, or fallback when loc is nil or the
// path is missing.
func T(loc Localizer, path string, fallback string) string {
	if loc == nil {
		return fallback
	}
	return loc.Translate(path, fallback)
}

// Toast is a translated one-time notice.
type Toast struct {
	Kind  string
	Title string
	Body  string
}

// PageContext carries the shell data shared by every page.
type PageContext struct {
	Title       string
	Lang        i18n.Language
	Loc         Localizer
	Role        appstate.Role
	CurrentPath string
	Toast       *Toast
	// ShowNav is false for onboarding pages.
	ShowNav bool
	// RefreshAfter, when positive, reloads the page after the delay.
	RefreshAfter time.Duration
}

func (p PageContext) lang() i18n.Language {
	if p.Lang.Valid() {
		return p.Lang
	}
	return i18n.Default
}
