package dashboard

import (
	"time"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/smarthealth/internal/services/web/templates"
)

type service struct {
	content *content.Content
}

func newService(c *content.Content) service {
	return service{content: c}
}

type greeting struct {
	key      string
	fallback string
}

// greetingAt picks the salutation for the local hour of now.
func greetingAt(now time.Time) greeting {
	switch hour := now.Hour(); {
	case hour < 12:
		return greeting{key: "dashboard.greeting.morning", fallback: "Good Morning"}
	case hour < 17:
		return greeting{key: "dashboard.greeting.afternoon", fallback: "Good Afternoon"}
	default:
		return greeting{key: "dashboard.greeting.evening", fallback: "Good Evening"}
	}
}

func (s service) view(role appstate.Role, now time.Time) webtemplates.DashboardView {
	g := greetingAt(now)
	view := webtemplates.DashboardView{
		GreetingKey:      g.key,
		GreetingFallback: g.fallback,
		Role:             role,
		Stats:            s.content.StatsFor(role),
		Actions:          s.content.ActionsFor(role),
		AlertsPath:       routepath.Alerts,
	}
	if teaser, ok := s.content.Teaser(); ok {
		view.Teaser = &teaser
		view.TeaserSummary = s.content.Dashboard.TeaserSummary
		if view.TeaserSummary == "" {
			view.TeaserSummary = teaser.Description
		}
	}
	return view
}
