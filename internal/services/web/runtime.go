package web

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/health/content"
	"github.com/louisbranch/smarthealth/internal/health/onboarding"
	"github.com/louisbranch/smarthealth/internal/platform/i18n/catalog"
	module "github.com/louisbranch/smarthealth/internal/services/web/module"
	"github.com/louisbranch/smarthealth/internal/services/web/modules"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/devicecookie"
	"github.com/louisbranch/smarthealth/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/smarthealth/internal/services/web/storage/memory"
	"github.com/louisbranch/smarthealth/internal/services/web/storage/sqlite"
)

// SlotStore persists one state slot per device.
type SlotStore interface {
	appstate.KeyValue
	Close() error
}

// Runtime holds the collaborators shared by every request. The server builds
// it once at startup.
type Runtime struct {
	Slots        SlotStore
	Catalog      *catalog.Catalog
	Content      *content.Content
	States       *appstate.Registry
	Flows        *onboarding.Registry
	Devices      *devicecookie.Codec
	SchemePolicy requestmeta.SchemePolicy
	Now          func() time.Time
}

// NewRuntime opens storage and loads the embedded tables described by cfg.
func NewRuntime(cfg Config) (*Runtime, error) {
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load translation catalog: %w", err)
	}
	tables, err := content.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load content tables: %w", err)
	}

	key := cfg.DeviceKey
	if len(key) == 0 {
		if key, err = devicecookie.GenerateKey(); err != nil {
			return nil, err
		}
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	devices, err := devicecookie.New(key, policy)
	if err != nil {
		return nil, fmt.Errorf("device cookie codec: %w", err)
	}

	slots, err := openSlots(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	timings := onboarding.DefaultTimings()
	if cfg.Timings != nil {
		timings = *cfg.Timings
	}
	return &Runtime{
		Slots:        slots,
		Catalog:      cat,
		Content:      tables,
		States:       appstate.NewRegistry(slots, cat),
		Flows:        onboarding.NewRegistry(nil, timings),
		Devices:      devices,
		SchemePolicy: policy,
	}, nil
}

func openSlots(path string) (SlotStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return memory.New(), nil
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open state storage: %w", err)
	}
	return store, nil
}

// Close releases storage and stops pending onboarding timers.
func (rt *Runtime) Close() error {
	if rt == nil {
		return nil
	}
	if rt.Flows != nil {
		rt.Flows.Sweep(-time.Hour)
	}
	if rt.Slots == nil {
		return nil
	}
	return rt.Slots.Close()
}

func (rt *Runtime) validate() error {
	switch {
	case rt == nil:
		return errors.New("runtime is required")
	case rt.States == nil:
		return errors.New("state registry is required")
	case rt.Flows == nil:
		return errors.New("onboarding registry is required")
	case rt.Devices == nil:
		return errors.New("device cookie codec is required")
	}
	return nil
}

func (rt *Runtime) moduleDependencies() modules.Dependencies {
	return modules.Dependencies{
		Module: module.Dependencies{
			States:       rt.States,
			Catalog:      rt.Catalog,
			Content:      rt.Content,
			SchemePolicy: rt.SchemePolicy,
			Now:          rt.Now,
		},
		Flows: rt.Flows,
	}
}
