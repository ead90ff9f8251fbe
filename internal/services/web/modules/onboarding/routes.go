package onboarding

import (
	"net/http"

	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.OnboardingLanguage, h.handleLanguage)
	mux.HandleFunc(http.MethodPost+" "+routepath.OnboardingRole, h.handleRole)
	postOnly := httpx.MethodNotAllowed(http.MethodPost)
	mux.Handle(http.MethodGet+" "+routepath.OnboardingLanguage, postOnly)
	mux.Handle(http.MethodGet+" "+routepath.OnboardingRole, postOnly)
	mux.HandleFunc(routepath.Root+"{rest...}", h.WriteNotFound)
}
