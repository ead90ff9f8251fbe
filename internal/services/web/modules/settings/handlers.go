package settings

import (
	"log"
	"net/http"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
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
	h.WritePage(w, r, store, webtemplates.T(store, "navigation.settings", "Settings"), webtemplates.SettingsPage(store, h.service.view(store.Language(), store.Role())))
}

func (h handlers) handleLanguage(w http.ResponseWriter, r *http.Request) {
	store, err := h.State(r)
	if err != nil {
		h.WriteError(w, r, nil, err)
		return
	}
	lang, ok := i18n.ParseLanguage(r.FormValue(webtemplates.FieldLanguage))
	if !ok {
		h.Notify(w, r, flashnotice.Error("notices.invalidLanguage"), routepath.Settings)
		return
	}
	if err := store.SetLanguage(r.Context(), lang); err != nil {
		h.WriteError(w, r, store, err)
		return
	}
	h.Notify(w, r, flashnotice.Success("notices.languageChanged"), routepath.Settings)
}

func (h handlers) handleRole(w http.ResponseWriter, r *http.Request) {
	store, err := h.State(r)
	if err != nil {
		h.WriteError(w, r, nil, err)
		return
	}
	role, ok := appstate.ParseRole(r.FormValue(webtemplates.FieldRole))
	if !ok {
		h.Notify(w, r, flashnotice.Error("notices.invalidRole"), routepath.Settings)
		return
	}
	if err := store.SetRole(r.Context(), role); err != nil {
		h.WriteError(w, r, store, err)
		return
	}
	h.Notify(w, r, flashnotice.Success("notices.roleChanged"), routepath.Settings)
}

// handleSync and handleClearCache only acknowledge; nothing is queued or
// cached on the server.
func (h handlers) handleSync(w http.ResponseWriter, r *http.Request) {
	h.Notify(w, r, flashnotice.Info("notices.syncQueued"), routepath.Settings)
}

func (h handlers) handleClearCache(w http.ResponseWriter, r *http.Request) {
	h.Notify(w, r, flashnotice.Success("notices.cacheCleared"), routepath.Settings)
}

func (h handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	store, err := h.State(r)
	if err != nil {
		h.WriteError(w, r, nil, err)
		return
	}
	if err := store.Reset(r.Context()); err != nil {
		h.WriteError(w, r, store, err)
		return
	}
	deviceID := h.DeviceID(r)
	h.service.forgetFlow(deviceID)
	log.Printf("device reset device_id=%s", deviceID)
	httpx.WriteRedirect(w, r, routepath.Root)
}
