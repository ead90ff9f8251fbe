package settings

import (
	"net/http"

	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Settings, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SettingsPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsLanguage, h.handleLanguage)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsRole, h.handleRole)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsSync, h.handleSync)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsClearCache, h.handleClearCache)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsReset, h.handleReset)
	postOnly := httpx.MethodNotAllowed(http.MethodPost)
	mux.Handle(http.MethodGet+" "+routepath.SettingsLanguage, postOnly)
	mux.Handle(http.MethodGet+" "+routepath.SettingsRole, postOnly)
	mux.Handle(http.MethodGet+" "+routepath.SettingsSync, postOnly)
	mux.Handle(http.MethodGet+" "+routepath.SettingsClearCache, postOnly)
	mux.Handle(http.MethodGet+" "+routepath.SettingsReset, postOnly)
	mux.HandleFunc(http.MethodGet+" "+routepath.SettingsPrefix+"{rest...}", h.WriteNotFound)
}
