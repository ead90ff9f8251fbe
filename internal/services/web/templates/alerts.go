package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// AlertsView is the alert list with its summary counts.
type AlertsView struct {
	Counts content.PriorityCounts
	Items  []content.Alert
	// StatusAction builds the status-report route for an alert. A nil
	// StatusAction hides the report button.
	StatusAction func(alertID string) string
	Helpline     string
}

// AlertsPage renders the alerts screen.
func AlertsPage(loc Localizer, view AlertsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("section", "class", "alerts", "data-screen", "alerts")
		m.element("h1", T(loc, "alerts.title", "Health Alerts"))
		m.element("p", T(loc, "alerts.subtitle", "Stay informed about health risks in your area"), "class", "subtitle")

		m.open("div", "class", "stat-grid counts")
		counts := []struct {
			priority content.Priority
			count    int
		}{
			{priority: content.PriorityHigh, count: view.Counts.High},
			{priority: content.PriorityMedium, count: view.Counts.Medium},
			{priority: content.PriorityLow, count: view.Counts.Low},
		}
		for _, c := range counts {
			m.open("div", "class", "card stat priority-"+string(c.priority), "data-count", string(c.priority))
			m.element("span", strconv.Itoa(c.count), "class", "stat-value")
			m.element("span", T(loc, c.priority.LabelKey(), string(c.priority)), "class", "stat-label")
			m.close("div")
		}
		m.close("div")

		if len(view.Items) == 0 {
			m.element("p", T(loc, "alerts.noAlerts", "No active alerts"), "class", "empty")
		}
		for _, alert := range view.Items {
			m.open("article", "class", "card alert priority-"+string(alert.Priority), "data-alert", alert.ID)
			m.open("header", "class", "alert-header")
			m.icon(alert.Kind.Icon(), "")
			m.element("h2", alert.Title)
			m.element("span", T(loc, alert.Priority.LabelKey(), string(alert.Priority)), "class", "badge")
			m.close("header")
			m.element("p", alert.Description)
			m.open("p", "class", "alert-meta muted")
			m.icon(icons.IDLocation, "")
			m.element("span", alert.Location)
			m.icon(icons.IDClock, "")
			m.element("span", alert.Posted)
			m.close("p")
			if len(alert.Actions) > 0 {
				m.element("h3", T(loc, "alerts.recommended", "Recommended Actions"))
				m.open("ul", "class", "steps")
				for _, step := range alert.Actions {
					m.open("li")
					m.icon(icons.IDCheck, "")
					m.element("span", step)
					m.close("li")
				}
				m.close("ul")
			}
			if view.StatusAction != nil {
				m.open("form", "method", "post", "action", view.StatusAction(alert.ID), "class", "inline-form")
				m.element("button", T(loc, "alerts.reportStatus", "Report Status Update"), "type", "submit", "class", "button button-secondary")
				m.close("form")
			}
			m.close("article")
		}

		m.open("div", "class", "card emergency", "data-card", "emergency")
		m.icon(icons.IDPhone, "")
		m.element("h2", T(loc, "alerts.emergency.title", "Emergency Contact"))
		m.element("p", T(loc, "alerts.emergency.body", "For medical emergencies call the health helpline"))
		m.element("a", T(loc, "alerts.emergency.call", "Call 108"), "href", "tel:"+view.Helpline, "class", "button button-danger")
		m.close("div")

		m.close("section")
		return m.err
	})
}
