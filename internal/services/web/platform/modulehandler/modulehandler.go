// Package modulehandler provides a composable base for web module handlers.
//
// Screen modules share device-state resolution, page rendering, flash
// notices, and error handling. Modules embed Base rather than duplicating
// that scaffold.
package modulehandler

import (
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n/catalog"
	"github.com/louisbranch/smarthealth/internal/platform/requestctx"
	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	apperrors "github.com/louisbranch/smarthealth/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/smarthealth/internal/services/web/platform/flash"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/httpx"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/pagerender"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/weberror"
)

// Base carries the shared dependencies of module handlers.
type Base struct {
	states    module.StateResolver
	catalog   *catalog.Catalog
	flashMeta requestmeta.SchemePolicy
	now       func() time.Time
	logf      func(format string, args ...any)
}

// Option configures a Base.
type Option func(*Base)

// WithSchemePolicy sets the policy used for flash cookie security flags.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(b *Base) { b.flashMeta = policy }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(b *Base) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLogf replaces log.Printf for state-load failures on error paths.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(b *Base) {
		if logf != nil {
			b.logf = logf
		}
	}
}

// NewBase builds a handler base over the device state registry and the
// translation catalog used when a device's state cannot be read.
func NewBase(states module.StateResolver, cat *catalog.Catalog, opts ...Option) Base {
	b := Base{states: states, catalog: cat, now: time.Now, logf: log.Printf}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return b
}

// New builds a handler base from shared module dependencies.
func New(deps module.Dependencies) Base {
	return NewBase(deps.States, deps.Catalog, WithSchemePolicy(deps.SchemePolicy), WithClock(deps.Now))
}

// DeviceID returns the requesting device identifier.
func (Base) DeviceID(r *http.Request) string {
	return requestctx.DeviceIDFromContext(httpx.RequestContext(r))
}

// Now returns the current time.
func (b Base) Now() time.Time {
	if b.now == nil {
		return time.Now()
	}
	return b.now()
}

// State returns the state store of the requesting device.
func (b Base) State(r *http.Request) (*appstate.Store, error) {
	if b.states == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "device state is not configured")
	}
	store, err := b.states.Store(httpx.RequestContext(r), b.DeviceID(r))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnknown, "load device state", err)
	}
	return store, nil
}

// Viewer returns the store as a page viewer, or the catalog fallback when
// the store is nil.
func (b Base) Viewer(store *appstate.Store) pagerender.Viewer {
	if store == nil {
		return pagerender.CatalogViewer{Catalog: b.catalog}
	}
	return store
}

// WritePage renders a screen page for store with the navigation bar.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, store *appstate.Store, title string, fragment templ.Component) {
	b.writePage(w, r, store, pagerender.ModulePage{Title: title, ShowNav: true, Fragment: fragment})
}

// WriteScreen renders a screen page with the navigation bar, keeping the
// page's status and notice.
func (b Base) WriteScreen(w http.ResponseWriter, r *http.Request, store *appstate.Store, page pagerender.ModulePage) {
	page.ShowNav = true
	b.writePage(w, r, store, page)
}

// WriteBarePage renders a page without navigation, as onboarding does.
func (b Base) WriteBarePage(w http.ResponseWriter, r *http.Request, store *appstate.Store, page pagerender.ModulePage) {
	page.ShowNav = false
	b.writePage(w, r, store, page)
}

func (b Base) writePage(w http.ResponseWriter, r *http.Request, store *appstate.Store, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, b.Viewer(store), page); err != nil {
		b.WriteError(w, r, store, err)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, store *appstate.Store, err error) {
	weberror.WriteModuleError(w, r, err, b.Viewer(store))
}

// WriteRequestError renders err for the requesting device. When the device
// state cannot be loaded either, that failure is logged and the page falls
// back to the catalog default language.
func (b Base) WriteRequestError(w http.ResponseWriter, r *http.Request, err error) {
	b.WriteError(w, r, b.stateForErrorPage(r), err)
}

// WriteNotFound renders the 404 page, localized when the device state loads.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.Viewer(b.stateForErrorPage(r)))
}

func (b Base) stateForErrorPage(r *http.Request) *appstate.Store {
	store, err := b.State(r)
	if err == nil {
		return store
	}
	logf := b.logf
	if logf == nil {
		logf = log.Printf
	}
	path := "-"
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	logf("error page without device state path=%s request_id=%s err=%v", path, httpx.RequestIDFrom(r), err)
	return nil
}

// Notify queues a toast for the next page and redirects there.
func (b Base) Notify(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice, location string) {
	flashnotice.WriteWithPolicy(w, r, notice, b.flashMeta)
	httpx.WriteRedirect(w, r, location)
}
