package dataentry

import (
	"log"
	"net/http"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/dataentry"
	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/pagerender"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/smarthealth/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	store, err := h.State(r)
	if err != nil {
		h.WriteError(w, r, nil, err)
		return
	}
	h.writeForm(w, r, store, dataentry.PatientForm{}, nil)
}

// handleSubmit checks the patient form. Nothing is stored: an incomplete
// form is shown again with its values, a complete one is acknowledged and
// the form starts over.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	store, err := h.State(r)
	if err != nil {
		h.WriteError(w, r, nil, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		notice := flashnotice.Error("notices.missingInformation")
		h.writeForm(w, r, store, dataentry.PatientForm{}, &notice)
		return
	}
	form, err := h.service.parse(r.PostForm)
	if err != nil {
		notice := flashnotice.Error("notices.missingInformation")
		h.writeForm(w, r, store, form, &notice)
		return
	}
	log.Printf("patient entry accepted device_id=%s symptoms=%d water_source=%s", h.DeviceID(r), len(form.Symptoms), form.WaterSource)
	h.Notify(w, r, flashnotice.Success("notices.dataSaved"), routepath.DataEntry)
}

func (h handlers) handleSync(w http.ResponseWriter, r *http.Request) {
	h.Notify(w, r, flashnotice.Info("notices.syncQueued"), routepath.DataEntry)
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, store *appstate.Store, form dataentry.PatientForm, notice *flashnotice.Notice) {
	page := pagerender.ModulePage{
		Title:    webtemplates.T(store, "navigation.dataEntry", "Data Entry"),
		Fragment: webtemplates.DataEntryPage(store, h.service.view(form)),
		Notice:   notice,
	}
	if notice != nil {
		page.StatusCode = http.StatusUnprocessableEntity
	}
	h.WriteScreen(w, r, store, page)
}
