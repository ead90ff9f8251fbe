package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// DashboardView is the role-filtered dashboard.
type DashboardView struct {
	GreetingKey      string
	GreetingFallback string
	Role             appstate.Role
	Stats            []content.Stat
	Actions          []content.Action
	Teaser           *content.Alert
	TeaserSummary    string
	AlertsPath       string
}

// DashboardPage renders the home screen.
func DashboardPage(loc Localizer, view DashboardView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("section", "class", "dashboard", "data-screen", "dashboard")

		m.open("div", "class", "card hero")
		m.element("p", T(loc, view.GreetingKey, view.GreetingFallback), "class", "greeting")
		m.element("h1", T(loc, view.Role.LabelKey(), view.Role.FallbackLabel()), "class", "hero-title")
		m.open("p", "class", "status-line")
		m.icon(icons.IDOnline, "status-online")
		m.element("span", T(loc, "dashboard.online", "Online"))
		m.element("span", T(loc, "dashboard.synced", "Synced 2 min ago"), "class", "muted")
		m.close("p")
		m.close("div")

		if view.Teaser != nil {
			m.open("a", "href", view.AlertsPath, "class", "card teaser priority-"+string(view.Teaser.Priority), "data-alert", view.Teaser.ID)
			m.icon(view.Teaser.Kind.Icon(), "")
			m.open("div")
			m.element("strong", T(loc, "dashboard.activeAlert", "Active Alert"))
			m.element("p", view.TeaserSummary)
			m.close("div")
			m.close("a")
		}

		if len(view.Stats) > 0 {
			m.element("h2", T(loc, "dashboard.quickStats", "Quick Stats"))
			m.open("div", "class", "stat-grid")
			for _, stat := range view.Stats {
				m.open("div", "class", "card stat tone-"+stat.Tone, "data-stat", stat.ID)
				m.icon(stat.Icon, "")
				m.element("span", stat.Value, "class", "stat-value")
				m.element("span", T(loc, stat.LabelKey, stat.Label), "class", "stat-label")
				m.close("div")
			}
			m.close("div")
		}

		if len(view.Actions) > 0 {
			m.element("h2", T(loc, "dashboard.quickActions", "Quick Actions"))
			m.open("div", "class", "action-list")
			for _, action := range view.Actions {
				m.open("a", "href", action.Path, "class", "card action", "data-action", action.ID)
				m.icon(action.Icon, "")
				m.open("div")
				m.element("strong", T(loc, action.LabelKey, action.Label))
				m.element("p", action.Description, "class", "muted")
				m.close("div")
				m.close("a")
			}
			m.close("div")
		}

		m.close("section")
		return m.err
	})
}
