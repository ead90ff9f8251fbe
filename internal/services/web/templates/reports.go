package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
	"golang.org/x/text/message"
)

// Export format values posted by the export buttons.
const (
	FieldExportFormat = "format"
	ExportPDF         = "pdf"
	ExportExcel       = "excel"
)

// ReportsView is the mock analytics for one role.
type ReportsView struct {
	Patients     content.PatientTotals
	Water        content.WaterQuality
	Symptoms     []content.SymptomCount
	Quick        []content.QuickReport
	ExportAction string
	// Printer formats numbers for the active language.
	Printer *message.Printer
}

func (v ReportsView) number(n int) string {
	if v.Printer == nil {
		return strconv.Itoa(n)
	}
	return v.Printer.Sprintf("%d", n)
}

func (v ReportsView) percent(p float64) string {
	if v.Printer == nil {
		return strconv.FormatFloat(p, 'f', 1, 64) + "%"
	}
	return v.Printer.Sprintf("%.1f%%", p)
}

// ReportsPage renders the analytics screen.
func ReportsPage(loc Localizer, view ReportsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.open("section", "class", "reports", "data-screen", "reports")
		m.element("h1", T(loc, "reports.title", "Health Reports"))
		m.element("p", T(loc, "reports.subtitle", "Community health overview"), "class", "subtitle")

		m.open("div", "class", "card", "data-card", "patients")
		m.element("h2", T(loc, "reports.patients.title", "Patient Overview"))
		m.open("div", "class", "stat-grid")
		m.open("div", "class", "stat")
		m.element("span", view.number(view.Patients.Total), "class", "stat-value", "data-value", "patients-total")
		m.element("span", T(loc, "reports.patients.total", "Total Patients"), "class", "stat-label")
		m.close("div")
		m.open("div", "class", "stat")
		m.element("span", view.number(view.Patients.ThisWeek), "class", "stat-value", "data-value", "patients-week")
		m.element("span", T(loc, "reports.patients.thisWeek", "This Week"), "class", "stat-label")
		m.close("div")
		m.close("div")
		m.open("p", "class", "trend")
		m.icon(icons.IDTrend, "")
		m.element("span", view.Patients.Trend, "data-value", "patients-trend")
		m.element("span", T(loc, "reports.patients.trend", "vs last week"), "class", "muted")
		m.close("p")
		m.close("div")

		m.open("div", "class", "card", "data-card", "water")
		m.element("h2", T(loc, "waterQuality.title", "Water Quality"))
		waterRows := []struct {
			status  string
			count   int
			percent int
		}{
			{status: "safe", count: view.Water.Safe, percent: view.Water.SafePercent},
			{status: "warning", count: view.Water.Warning, percent: view.Water.WarningPercent},
			{status: "unsafe", count: view.Water.Unsafe, percent: view.Water.UnsafePercent},
		}
		for _, row := range waterRows {
			m.open("div", "class", "bar-row water-"+row.status, "data-water", row.status)
			m.element("span", T(loc, "waterQuality.status."+row.status, row.status), "class", "bar-label")
			m.element("span", view.number(row.count), "class", "bar-value")
			m.open("div", "class", "bar")
			m.open("div", "class", "bar-fill", "style", "width: "+strconv.Itoa(row.percent)+"%")
			m.close("div")
			m.close("div")
			m.close("div")
		}
		m.close("div")

		m.open("div", "class", "card", "data-card", "symptoms")
		m.element("h2", T(loc, "reports.symptoms.title", "Common Symptoms"))
		m.open("ul", "class", "symptom-list")
		for _, symptom := range view.Symptoms {
			m.open("li", "data-symptom", symptom.Key)
			m.element("span", T(loc, symptom.LabelKey(), symptom.Name), "class", "symptom-name")
			m.element("span", view.number(symptom.Count)+" "+T(loc, "reports.symptoms.cases", "cases"), "class", "symptom-count")
			m.element("span", view.percent(symptom.Percentage), "class", "symptom-percent")
			m.close("li")
		}
		m.close("ul")
		m.close("div")

		if len(view.Quick) > 0 {
			m.element("h2", T(loc, "reports.quickReports", "Quick Reports"))
			m.open("div", "class", "action-list")
			for _, report := range view.Quick {
				m.open("div", "class", "card action", "data-report", report.ID)
				m.icon(report.Icon, "")
				m.open("div")
				m.element("strong", T(loc, report.NameKey, report.Name))
				m.element("p", report.Description, "class", "muted")
				m.close("div")
				m.close("div")
			}
			m.close("div")
		}

		m.open("form", "method", "post", "action", view.ExportAction, "class", "button-row")
		m.open("button", "type", "submit", "name", FieldExportFormat, "value", ExportPDF, "class", "button button-secondary")
		m.icon(icons.IDDownload, "")
		m.element("span", T(loc, "reports.export.pdf", "Export PDF"))
		m.close("button")
		m.open("button", "type", "submit", "name", FieldExportFormat, "value", ExportExcel, "class", "button button-secondary")
		m.icon(icons.IDDownload, "")
		m.element("span", T(loc, "reports.export.excel", "Export Excel"))
		m.close("button")
		m.close("form")

		m.close("section")
		return m.err
	})
}
