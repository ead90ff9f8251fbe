package onboarding

import (
	"errors"
	"net/http"

	"github.com/louisbranch/smarthealth/internal/health/onboarding"
	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

// Module serves the first-run flow at the site root. It also owns the root
// catch-all, so unknown paths outside the screens render its 404 page.
type Module struct {
	deps  module.Dependencies
	flows *onboarding.Registry
}

// New returns an onboarding module over the per-device flow registry.
func New(deps module.Dependencies, flows *onboarding.Registry) Module {
	return Module{deps: deps, flows: flows}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "onboarding" }

// Mount wires onboarding route handlers.
func (m Module) Mount() (module.Mount, error) {
	if err := m.deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	if m.flows == nil {
		return module.Mount{}, errors.New("onboarding flow registry is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.flows), modulehandler.New(m.deps)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
