package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/health/dataentry"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// DataEntryView is the patient form with any values to redisplay.
type DataEntryView struct {
	Action     string
	SyncAction string
	Options    content.FormOptions
	Form       dataentry.PatientForm
}

// DataEntryPage renders the patient form.
func DataEntryPage(loc Localizer, view DataEntryView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		required := " *"
		m.open("section", "class", "data-entry", "data-screen", "dataEntry")
		m.element("h1", T(loc, "dataEntry.title", "Patient Data Entry"))
		m.element("p", T(loc, "dataEntry.subtitle", "Record patient symptoms and water source"), "class", "subtitle")

		m.open("form", "method", "post", "action", view.Action, "class", "card form", "id", "patient-form")
		m.element("h2", T(loc, "dataEntry.patientInfo", "Patient Information"))

		m.open("label", "class", "field")
		m.element("span", T(loc, "dataEntry.name", "Patient Name")+required)
		m.open("input", "type", "text", "name", dataentry.FieldName, "value", view.Form.Name, "required", "true", "autocomplete", "off")
		m.close("label")

		m.open("label", "class", "field")
		m.element("span", T(loc, "dataEntry.age", "Age")+required)
		m.open("input", "type", "number", "name", dataentry.FieldAge, "value", view.Form.Age, "min", "0", "max", "150", "inputmode", "numeric", "required", "true")
		m.close("label")

		m.open("label", "class", "field")
		m.element("span", T(loc, "dataEntry.gender", "Gender")+required)
		m.open("select", "name", dataentry.FieldGender, "required", "true")
		m.element("option", "", "value", "")
		for _, option := range view.Options.Genders {
			selected := "false"
			if option.Value == view.Form.Gender {
				selected = "true"
			}
			m.element("option", T(loc, option.LabelKey, option.Value), "value", option.Value, "selected", selected)
		}
		m.close("select")
		m.close("label")

		m.open("label", "class", "field")
		m.element("span", T(loc, "dataEntry.location", "Location"))
		m.open("input", "type", "text", "name", dataentry.FieldLocation, "value", view.Form.Location)
		m.close("label")

		m.open("fieldset", "class", "field symptoms")
		m.element("legend", T(loc, "dataEntry.symptoms", "Symptoms"))
		for _, option := range view.Options.Symptoms {
			checked := "false"
			if view.Form.HasSymptom(option.Value) {
				checked = "true"
			}
			m.open("label", "class", "check")
			m.open("input", "type", "checkbox", "name", dataentry.FieldSymptoms, "value", option.Value, "checked", checked)
			m.element("span", T(loc, option.LabelKey, option.Value))
			m.close("label")
		}
		m.close("fieldset")

		m.open("fieldset", "class", "field water-sources")
		m.element("legend", T(loc, "dataEntry.waterSource", "Water Source"))
		for _, option := range view.Options.WaterSources {
			checked := "false"
			if option.Value == view.Form.WaterSource {
				checked = "true"
			}
			m.open("label", "class", "check")
			m.open("input", "type", "radio", "name", dataentry.FieldWaterSource, "value", option.Value, "checked", checked)
			m.element("span", T(loc, option.LabelKey, option.Value))
			m.close("label")
		}
		m.close("fieldset")

		m.open("button", "type", "submit", "class", "button button-primary")
		m.icon(icons.IDSave, "")
		m.element("span", T(loc, "dataEntry.save", "Save Data"))
		m.close("button")
		m.close("form")

		m.open("form", "method", "post", "action", view.SyncAction, "class", "inline-form")
		m.open("button", "type", "submit", "class", "button button-secondary")
		m.icon(icons.IDSync, "")
		m.element("span", T(loc, "dataEntry.sync", "Sync Saved Data"))
		m.close("button")
		m.close("form")

		m.close("section")
		return m.err
	})
}
