package dataentry

import (
	"net/url"

	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/health/dataentry"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/smarthealth/internal/services/web/templates"
)

type service struct {
	options content.FormOptions
}

func newService(options content.FormOptions) service {
	return service{options: options}
}

func (s service) parse(values url.Values) (dataentry.PatientForm, error) {
	form := dataentry.Parse(values, s.options)
	return form, form.Validate()
}

func (s service) view(form dataentry.PatientForm) webtemplates.DataEntryView {
	return webtemplates.DataEntryView{
		Action:     routepath.DataEntry,
		SyncAction: routepath.DataEntrySync,
		Options:    s.options,
		Form:       form,
	}
}
