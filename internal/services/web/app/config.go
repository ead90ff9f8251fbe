package app

import (
	"net/http"

	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Onboarded           func(*http.Request) bool
	PublicModules       []module.Module
	ScreenModules       []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}
