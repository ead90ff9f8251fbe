// Package modules defines web module registry helpers.
package modules

import (
	"github.com/louisbranch/smarthealth/internal/health/onboarding"
	module "github.com/louisbranch/smarthealth/internal/services/web/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared module contracts plus the onboarding flow
// registry, which only the onboarding and settings modules touch.
type Dependencies struct {
	Module module.Dependencies
	Flows  *onboarding.Registry
}
