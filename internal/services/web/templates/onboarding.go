package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// Onboarding form field names.
const (
	FieldLanguage = "language"
	FieldRole     = "role"
)

// SplashPage renders the launch screen. Fading switches on the fade-out
// styling for the last part of the splash.
func SplashPage(loc Localizer, fading bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		class := "splash"
		if fading {
			class = "splash splash-fading"
		}
		m.open("section", "class", class, "data-step", "splash")
		m.icon(icons.IDHeart, "splash-icon")
		m.element("h1", T(loc, "app.name", "Smart Health"))
		m.element("p", T(loc, "app.tagline", "Community Health Monitoring"), "class", "splash-tagline")
		m.element("p", T(loc, "app.loading", "Loading..."), "class", "splash-loading")
		m.close("section")
		return m.err
	})
}

// LanguagePage renders the language choice. Every language is labelled in
// its own script.
func LanguagePage(loc Localizer, action string, current i18n.Language) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("section", "class", "onboarding", "data-step", "language")
		m.icon(icons.IDLanguage, "onboarding-icon")
		m.element("h1", T(loc, "onboarding.language.title", "Choose Your Language"))
		m.element("p", T(loc, "onboarding.language.subtitle", "Select your preferred language"), "class", "subtitle")
		m.open("form", "method", "post", "action", action, "class", "choice-list")
		for _, lang := range i18n.AllLanguages() {
			class := "choice"
			if lang == current {
				class = "choice choice-current"
			}
			m.open("button", "type", "submit", "name", FieldLanguage, "value", string(lang), "class", class, "lang", lang.Tag().String())
			m.element("span", lang.NativeName(), "class", "choice-title")
			m.element("span", lang.EnglishName(), "class", "choice-detail")
			m.close("button")
		}
		m.close("form")
		m.close("section")
		return m.err
	})
}

// RolePage renders the role choice.
func RolePage(loc Localizer, action string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("section", "class", "onboarding", "data-step", "role")
		m.icon(icons.IDProfile, "onboarding-icon")
		m.element("h1", T(loc, "roles.title", "Select Your Role"))
		m.element("p", T(loc, "roles.subtitle", "Choose how you will use the app"), "class", "subtitle")
		m.open("form", "method", "post", "action", action, "class", "choice-list")
		for _, role := range appstate.AllRoles() {
			m.open("button", "type", "submit", "name", FieldRole, "value", string(role), "class", "choice")
			m.icon(RoleIcon(role), "choice-icon")
			m.element("span", T(loc, role.LabelKey(), role.FallbackLabel()), "class", "choice-title")
			m.element("span", T(loc, role.DescriptionKey(), ""), "class", "choice-detail")
			m.close("button")
		}
		m.close("form")
		m.close("section")
		return m.err
	})
}

// RoleIcon returns the icon shown next to a role.
func RoleIcon(role appstate.Role) icons.ID {
	switch role {
	case appstate.RoleASHA:
		return icons.IDHeart
	case appstate.RoleCommunity:
		return icons.IDPeople
	case appstate.RoleAdmin:
		return icons.IDShield
	case appstate.RoleUnset:
		return icons.IDProfile
	}
	return icons.IDProfile
}
