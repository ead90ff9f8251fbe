package awareness

import (
	"net/http"

	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Awareness, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AwarenessPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AwarenessPrefix+"{rest...}", h.WriteNotFound)
}
