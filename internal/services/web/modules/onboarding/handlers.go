package onboarding

import (
	"errors"
	"log"
	"net/http"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/onboarding"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/pagerender"
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
	deviceID := h.DeviceID(r)
	if store.Onboarded() && store.Role().IsSet() {
		h.service.finish(deviceID)
		httpx.WriteRedirect(w, r, routepath.Dashboard)
		return
	}

	flow := h.service.flow(deviceID, store)
	step := flow.Step()
	if step == onboarding.StepSplash {
		remaining := flow.SplashRemaining()
		if remaining > splashWaitLimit {
			h.writeStep(w, r, store, pagerender.ModulePage{
				Fragment:     webtemplates.SplashPage(store, flow.Fading()),
				RefreshAfter: remaining,
			})
			return
		}
		if step, err = h.service.await(r.Context(), flow, onboarding.StepSplash, remaining); err != nil {
			h.WriteError(w, r, store, err)
			return
		}
	}

	switch step {
	case onboarding.StepSplash:
		h.writeStep(w, r, store, pagerender.ModulePage{
			Fragment:     webtemplates.SplashPage(store, flow.Fading()),
			RefreshAfter: splashWaitLimit,
		})
	case onboarding.StepLanguage:
		h.writeStep(w, r, store, pagerender.ModulePage{
			Fragment: webtemplates.LanguagePage(store, routepath.OnboardingLanguage, store.Language()),
		})
	case onboarding.StepRole:
		h.writeStep(w, r, store, pagerender.ModulePage{
			Fragment: webtemplates.RolePage(store, routepath.OnboardingRole),
		})
	default:
		h.complete(w, r, store, flow)
	}
}

func (h handlers) writeStep(w http.ResponseWriter, r *http.Request, store *appstate.Store, page pagerender.ModulePage) {
	page.Title = webtemplates.T(store, "app.name", "Smart Health")
	h.WriteBarePage(w, r, store, page)
}

func (h handlers) complete(w http.ResponseWriter, r *http.Request, store *appstate.Store, flow *onboarding.Flow) {
	deviceID := h.DeviceID(r)
	h.service.finish(deviceID)
	if err := flow.Err(); err != nil {
		h.WriteError(w, r, store, err)
		return
	}
	log.Printf("onboarding complete device_id=%s language=%s role=%s", deviceID, store.Language(), store.Role())
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) handleLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.ParseLanguage(r.PostFormValue(webtemplates.FieldLanguage))
	if !ok {
		h.Notify(w, r, flashnotice.Error("notices.invalidLanguage"), routepath.Root)
		return
	}
	h.choose(w, r, onboarding.StepLanguage, func(flow *onboarding.Flow) error {
		return flow.ChooseLanguage(r.Context(), lang)
	})
}

func (h handlers) handleRole(w http.ResponseWriter, r *http.Request) {
	role, ok := appstate.ParseRole(r.PostFormValue(webtemplates.FieldRole))
	if !ok {
		h.Notify(w, r, flashnotice.Error("notices.invalidRole"), routepath.Root)
		return
	}
	h.choose(w, r, onboarding.StepRole, func(flow *onboarding.Flow) error {
		return flow.ChooseRole(r.Context(), role)
	})
}

// choose commits a selection on the device's flow and waits out the
// transition delay before sending the browser back to the root, which
// renders the next step. Stale submissions for a step the flow has left
// are dropped the same way.
func (h handlers) choose(w http.ResponseWriter, r *http.Request, step onboarding.Step, commit func(*onboarding.Flow) error) {
	flow, ok := h.service.lookup(h.DeviceID(r))
	if !ok || flow.Step() != step {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	if err := commit(flow); err != nil {
		if errors.Is(err, onboarding.ErrInvalidTransition) || errors.Is(err, onboarding.ErrStopped) {
			httpx.WriteRedirect(w, r, routepath.Root)
			return
		}
		h.WriteRequestError(w, r, err)
		return
	}
	if _, err := h.service.await(r.Context(), flow, step, h.service.selectionDelay()); err != nil && !errors.Is(err, onboarding.ErrStopped) {
		h.WriteRequestError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}
