package app

import (
	"errors"
	"net/http"
)

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	if cfg.Onboarded == nil {
		return nil, errors.New("onboarding check is required")
	}
	return Compose(ComposeInput{
		Onboarded:           cfg.Onboarded,
		PublicModules:       cfg.PublicModules,
		ScreenModules:       cfg.ScreenModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
