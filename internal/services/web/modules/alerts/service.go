package alerts

import (
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

// canReportStatus reports whether role sees the status update action.
// Only field workers report on alerts.
func canReportStatus(role appstate.Role) bool {
	return role == appstate.RoleASHA
}

func (s service) view(role appstate.Role) webtemplates.AlertsView {
	view := webtemplates.AlertsView{
		Counts:   s.content.Alerts.Counts,
		Items:    s.content.Alerts.Items,
		Helpline: s.content.Settings.Helpline,
	}
	if canReportStatus(role) {
		view.StatusAction = routepath.AlertStatus
	}
	return view
}

func (s service) find(alertID string) (content.Alert, bool) {
	return s.content.Alerts.Find(alertID)
}
