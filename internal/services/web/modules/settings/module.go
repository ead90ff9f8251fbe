package settings

import (
	"net/http"

	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

// FlowRemover drops in-progress onboarding for a device.
type FlowRemover interface {
	Remove(deviceID string)
}

// Option configures a settings module.
type Option func(*Module)

// WithFlows sets the onboarding flows dropped when a device resets.
func WithFlows(flows FlowRemover) Option {
	return func(m *Module) { m.flows = flows }
}

// Module provides the settings screen and its preference actions.
type Module struct {
	deps  module.Dependencies
	flows FlowRemover
}

// New returns a settings module configured by the given options.
func New(deps module.Dependencies, opts ...Option) Module {
	m := Module{deps: deps}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "settings" }

// Mount wires settings route handlers.
func (m Module) Mount() (module.Mount, error) {
	if err := m.deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps.Content, m.flows), modulehandler.New(m.deps)))
	return module.Mount{Prefix: routepath.SettingsPrefix, Handler: mux}, nil
}
