package dashboard

import (
	"net/http"

	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
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
	view := h.service.view(store.Role(), h.Now())
	h.WritePage(w, r, store, webtemplates.T(store, "navigation.home", "Home"), webtemplates.DashboardPage(store, view))
}
