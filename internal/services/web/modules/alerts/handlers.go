package alerts

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/smarthealth/internal/services/web/platform/errors"
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
	h.WritePage(w, r, store, webtemplates.T(store, "navigation.alerts", "Alerts"), webtemplates.AlertsPage(store, h.service.view(store.Role())))
}

// handleStatus acknowledges a status update on a known alert. The update
// is not recorded anywhere.
func (h handlers) handleStatus(w http.ResponseWriter, r *http.Request) {
	store, err := h.State(r)
	if err != nil {
		h.WriteError(w, r, nil, err)
		return
	}
	alert, ok := h.service.find(r.PathValue("alertID"))
	if !ok {
		h.WriteError(w, r, store, apperrors.E(apperrors.KindNotFound, "alert not found"))
		return
	}
	if !canReportStatus(store.Role()) {
		h.Notify(w, r, flashnotice.Error("notices.invalidRole"), routepath.Alerts)
		return
	}
	log.Printf("alert status reported device_id=%s alert_id=%s priority=%s", h.DeviceID(r), alert.ID, alert.Priority)
	h.Notify(w, r, flashnotice.Success("notices.statusReported"), routepath.Alerts)
}
