package alerts

import (
	"net/http"

	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Alerts, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AlertsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.AlertStatusPattern, h.handleStatus)
	postOnly := httpx.MethodNotAllowed(http.MethodPost)
	mux.Handle(http.MethodGet+" "+routepath.AlertStatusPattern, postOnly)
	mux.HandleFunc(http.MethodGet+" "+routepath.AlertsPrefix+"{rest...}", h.WriteNotFound)
}
