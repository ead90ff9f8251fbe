package reports

import (
	"strings"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/smarthealth/internal/services/web/templates"
)

type service struct {
	content *content.Content
}

func newService(c *content.Content) service {
	return service{content: c}
}

func (s service) view(role appstate.Role, lang i18n.Language) webtemplates.ReportsView {
	r := s.content.Reports
	return webtemplates.ReportsView{
		Patients:     r.Patients,
		Water:        r.Water,
		Symptoms:     r.Symptoms,
		Quick:        s.content.QuickReportsFor(role),
		ExportAction: routepath.ReportsExport,
		Printer:      lang.Printer(),
	}
}

// exportFormat resolves a requested export format.
func exportFormat(raw string) (string, bool) {
	switch format := strings.ToLower(strings.TrimSpace(raw)); format {
	case webtemplates.ExportPDF, webtemplates.ExportExcel:
		return format, true
	}
	return "", false
}
