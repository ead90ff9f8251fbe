package modules

import (
	"github.com/louisbranch/smarthealth/internal/services/web/modules/alerts"
	"github.com/louisbranch/smarthealth/internal/services/web/modules/awareness"
	"github.com/louisbranch/smarthealth/internal/services/web/modules/dashboard"
	"github.com/louisbranch/smarthealth/internal/services/web/modules/dataentry"
	"github.com/louisbranch/smarthealth/internal/services/web/modules/onboarding"
	"github.com/louisbranch/smarthealth/internal/services/web/modules/reports"
	"github.com/louisbranch/smarthealth/internal/services/web/modules/settings"
)

// DefaultPublicModules returns the modules served before onboarding ends.
func DefaultPublicModules(deps Dependencies) []Module {
	return []Module{
		onboarding.New(deps.Module, deps.Flows),
	}
}

// DefaultScreenModules returns the role-gated screens, in navigation order
// with settings last.
func DefaultScreenModules(deps Dependencies) []Module {
	var settingsOpts []settings.Option
	if deps.Flows != nil {
		settingsOpts = append(settingsOpts, settings.WithFlows(deps.Flows))
	}
	return []Module{
		dashboard.New(deps.Module),
		dataentry.New(deps.Module),
		reports.New(deps.Module),
		alerts.New(deps.Module),
		awareness.New(deps.Module),
		settings.New(deps.Module, settingsOpts...),
	}
}
