package dataentry

import (
	"net/http"

	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.DataEntry, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.DataEntryPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.DataEntry, h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.DataEntryPrefix+"{$}", h.handleSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.DataEntrySync, h.handleSync)
	postOnly := httpx.MethodNotAllowed(http.MethodPost)
	mux.Handle(http.MethodGet+" "+routepath.DataEntrySync, postOnly)
	mux.HandleFunc(http.MethodGet+" "+routepath.DataEntryPrefix+"{rest...}", h.WriteNotFound)
}
