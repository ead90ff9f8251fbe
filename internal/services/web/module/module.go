// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"
	"time"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/platform/i18n/catalog"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/requestmeta"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// StateResolver returns the loaded state store for a device. Every module
// of one device sees the same store.
type StateResolver interface {
	Store(ctx context.Context, deviceID string) (*appstate.Store, error)
}

// Dependencies carries the shared runtime contracts every screen module is
// built from. The server constructs them once at startup.
type Dependencies struct {
	States       StateResolver
	Catalog      *catalog.Catalog
	Content      *content.Content
	SchemePolicy requestmeta.SchemePolicy
	// Now defaults to time.Now.
	Now func() time.Time
}

// Validate reports the first missing required dependency.
func (d Dependencies) Validate() error {
	switch {
	case d.States == nil:
		return errMissing("state resolver")
	case d.Catalog == nil:
		return errMissing("translation catalog")
	case d.Content == nil:
		return errMissing("content tables")
	}
	return nil
}

type missingDependencyError string

func (e missingDependencyError) Error() string {
	return "module dependency is required: " + string(e)
}

func errMissing(name string) error { return missingDependencyError(name) }
