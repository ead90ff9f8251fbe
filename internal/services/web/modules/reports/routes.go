package reports

import (
	"net/http"

	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Reports, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ReportsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.ReportsExport, h.handleExport)
	postOnly := httpx.MethodNotAllowed(http.MethodPost)
	mux.Handle(http.MethodGet+" "+routepath.ReportsExport, postOnly)
	mux.HandleFunc(http.MethodGet+" "+routepath.ReportsPrefix+"{rest...}", h.WriteNotFound)
}
