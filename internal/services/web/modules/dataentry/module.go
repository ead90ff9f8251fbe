package dataentry

import (
	"net/http"

	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/smarthealth/internal/services/web/routepath"
)

// Module provides the patient data entry screen.
type Module struct {
	deps module.Dependencies
}

// New returns a data entry module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dataentry" }

// Mount wires data entry route handlers.
func (m Module) Mount() (module.Mount, error) {
	if err := m.deps.Validate(); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.deps.Content.DataEntry), modulehandler.New(m.deps)))
	return module.Mount{Prefix: routepath.DataEntryPrefix, Handler: mux}, nil
}
