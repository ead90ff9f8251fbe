package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// AwarenessPage renders the health tips.
func AwarenessPage(loc Localizer, awareness content.Awareness) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("section", "class", "awareness", "data-screen", "awareness")
		m.element("h1", T(loc, "awareness.title", "Health Awareness"))
		m.element("p", T(loc, "awareness.subtitle", "Simple steps for a healthier community"), "class", "subtitle")

		m.open("div", "class", "stat-grid")
		m.open("div", "class", "card stat")
		m.element("span", strconv.Itoa(len(awareness.Tips)), "class", "stat-value", "data-value", "topics")
		m.element("span", T(loc, "awareness.topics", "Health Topics"), "class", "stat-label")
		m.close("div")
		m.open("div", "class", "card stat")
		m.element("span", awareness.TipTotal, "class", "stat-value", "data-value", "tips")
		m.element("span", T(loc, "awareness.tips", "Health Tips"), "class", "stat-label")
		m.close("div")
		m.close("div")

		for _, tip := range awareness.Tips {
			m.open("article", "class", "card tip category-"+string(tip.Category), "data-tip", tip.ID)
			m.open("header", "class", "tip-header")
			m.icon(tip.Icon, "")
			m.element("h2", tip.Title)
			m.element("span", T(loc, tip.Category.LabelKey(), string(tip.Category)), "class", "badge")
			m.close("header")
			m.element("p", tip.Description, "class", "muted")
			m.open("ol", "class", "steps numbered")
			for idx, step := range tip.Steps {
				m.open("li")
				m.element("span", strconv.Itoa(idx+1), "class", "step-number")
				m.element("span", step)
				m.close("li")
			}
			m.close("ol")
			m.close("article")
		}

		m.open("div", "class", "card reminder")
		m.icon(icons.IDInfo, "")
		m.element("h2", T(loc, "awareness.reminder.title", "Community Reminder"))
		m.element("p", T(loc, "awareness.reminder.body", "Share these tips with your family and neighbours."))
		m.close("div")

		m.close("section")
		return m.err
	})
}
