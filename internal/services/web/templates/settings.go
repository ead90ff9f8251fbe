package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// SettingsActions holds the form targets of the settings screen.
type SettingsActions struct {
	Language   string
	Role       string
	Sync       string
	ClearCache string
	Reset      string
}

// SettingsView is the settings screen for the current device.
type SettingsView struct {
	Language i18n.Language
	Role     appstate.Role
	Settings content.Settings
	Actions  SettingsActions
}

// SettingsPage renders the settings screen.
func SettingsPage(loc Localizer, view SettingsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("section", "class", "settings", "data-screen", "settings")
		m.element("h1", T(loc, "settings.title", "Settings"))
		m.element("p", T(loc, "settings.subtitle", "Manage your preferences"), "class", "subtitle")

		m.open("div", "class", "card profile", "data-card", "profile")
		m.icon(RoleIcon(view.Role), "")
		m.open("div")
		m.element("h2", T(loc, "settings.profile.title", "Profile"))
		m.element("p", T(loc, "settings.profile.role", "Current Role")+": "+T(loc, view.Role.LabelKey(), view.Role.FallbackLabel()), "class", "muted")
		m.close("div")
		m.close("div")

		m.open("form", "method", "post", "action", view.Actions.Language, "class", "card", "data-card", "language")
		m.element("h2", T(loc, "settings.language.title", "Language"))
		m.open("div", "class", "choice-list")
		for _, lang := range i18n.AllLanguages() {
			class := "choice"
			if lang == view.Language {
				class = "choice choice-current"
			}
			m.open("button", "type", "submit", "name", FieldLanguage, "value", string(lang), "class", class, "lang", lang.Tag().String())
			m.element("span", lang.NativeName(), "class", "choice-title")
			if lang == view.Language {
				m.icon(icons.IDCheck, "")
			}
			m.close("button")
		}
		m.close("div")
		m.close("form")

		m.open("form", "method", "post", "action", view.Actions.Role, "class", "card", "data-card", "role")
		m.element("h2", T(loc, "settings.role.title", "Role"))
		m.open("div", "class", "choice-list")
		for _, role := range appstate.AllRoles() {
			class := "choice"
			if role == view.Role {
				class = "choice choice-current"
			}
			m.open("button", "type", "submit", "name", FieldRole, "value", string(role), "class", class)
			m.icon(RoleIcon(role), "choice-icon")
			m.element("span", T(loc, role.LabelKey(), role.FallbackLabel()), "class", "choice-title")
			m.close("button")
		}
		m.close("div")
		m.close("form")

		m.open("div", "class", "card", "data-card", "notifications")
		m.element("h2", T(loc, "settings.notifications.title", "Notifications"))
		for _, n := range view.Settings.Notifications {
			checked := "false"
			if n.Enabled {
				checked = "true"
			}
			m.open("label", "class", "toggle", "data-notification", n.ID)
			m.element("span", T(loc, n.LabelKey, n.Label))
			m.open("input", "type", "checkbox", "checked", checked, "disabled", "true")
			m.close("label")
		}
		m.close("div")

		m.open("div", "class", "card", "data-card", "data")
		m.element("h2", T(loc, "settings.data.title", "Data & Storage"))
		dataAction(m, view.Actions.Sync, icons.IDSync, T(loc, "settings.data.pendingSync", "12 entries ready to sync"), T(loc, "settings.data.syncNow", "Sync Now"), "button-secondary")
		dataAction(m, view.Actions.ClearCache, icons.IDTrash, T(loc, "settings.data.cacheSize", "2.4 MB cached"), T(loc, "settings.data.clearCache", "Clear Cache"), "button-secondary")
		dataAction(m, view.Actions.Reset, icons.IDReset, T(loc, "settings.data.resetHint", "Clears your language and role and restarts setup"), T(loc, "settings.data.reset", "Reset App"), "button-danger")
		m.close("div")

		m.open("div", "class", "card", "data-card", "about")
		m.element("h2", T(loc, "settings.about.title", "App Information"))
		m.open("dl", "class", "about")
		m.element("dt", T(loc, "settings.about.version", "Version"))
		m.element("dd", view.Settings.Version)
		m.element("dt", T(loc, "settings.about.lastUpdated", "Last Updated"))
		m.element("dd", T(loc, "settings.about.today", "Today"))
		m.element("dt", T(loc, "settings.about.build", "Build"))
		m.element("dd", T(loc, "settings.about."+view.Settings.Build, view.Settings.Build))
		m.close("dl")
		m.close("div")

		m.open("div", "class", "card help", "data-card", "help")
		m.icon(icons.IDHelp, "")
		m.element("h2", T(loc, "settings.help.title", "Need Help?"))
		m.element("p", T(loc, "settings.help.body", "Contact your health supervisor or call the helpline."))
		m.element("a", T(loc, "settings.help.contact", "Contact Support"), "href", "tel:"+view.Settings.Helpline, "class", "button button-secondary")
		m.close("div")

		m.close("section")
		return m.err
	})
}

func dataAction(m *markup, action string, icon icons.ID, hint string, label string, style string) {
	m.open("form", "method", "post", "action", action, "class", "data-action")
	m.element("p", hint, "class", "muted")
	m.open("button", "type", "submit", "class", "button "+style)
	m.icon(icon, "")
	m.element("span", label)
	m.close("button")
	m.close("form")
}
