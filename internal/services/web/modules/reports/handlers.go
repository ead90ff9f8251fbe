package reports

import (
	"log"
	"net/http"

	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
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
	view := h.service.view(store.Role(), store.Language())
	h.WritePage(w, r, store, webtemplates.T(store, "navigation.reports", "Reports"), webtemplates.ReportsPage(store, view))
}

// handleExport acknowledges an export request. Exports need connectivity
// the app does not have, so the answer is always that they are unavailable.
func (h handlers) handleExport(w http.ResponseWriter, r *http.Request) {
	format, ok := exportFormat(r.PostFormValue(webtemplates.FieldExportFormat))
	if !ok {
		h.Notify(w, r, flashnotice.Error("notices.exportUnavailable"), routepath.Reports)
		return
	}
	log.Printf("report export requested device_id=%s format=%s", h.DeviceID(r), format)
	h.Notify(w, r, flashnotice.Info("notices.exportUnavailable"), routepath.Reports)
}
