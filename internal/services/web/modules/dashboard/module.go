package dashboard

import (
	"net/http"

	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

// Module provides the home screen.
type Module struct {
	deps module.Dependencies
}

// New returns a dashboard module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	if err := m.deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps.Content), modulehandler.New(m.deps)))
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
