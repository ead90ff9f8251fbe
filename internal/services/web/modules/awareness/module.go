package awareness

import (
	"net/http"

	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

// Module provides the health awareness screen.
type Module struct {
	deps module.Dependencies
}

// New returns an awareness module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "awareness" }

// Mount wires awareness route handlers.
func (m Module) Mount() (module.Mount, error) {
	if err := m.deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps.Content), modulehandler.New(m.deps)))
	return module.Mount{Prefix: routepath.AwarenessPrefix, Handler: mux}, nil
}
