// Package appstate owns the per-device application state: the chosen
// language, the chosen role, and whether onboarding has finished.
package appstate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/louisbranch/smarthealth/internal/platform/i18n"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StorageKey prefixes every persisted state slot.
const StorageKey = "health_app_state"

var (
	// ErrRoleRequired is returned when onboarding is completed before a role is chosen.
	ErrRoleRequired = errors.New("appstate: role must be selected before onboarding completes")
	// ErrUnknownLanguage is returned for language codes outside the supported set.
	ErrUnknownLanguage = errors.New("appstate: unknown language")
	// ErrUnknownRole is returned for role codes outside the selectable set.
	ErrUnknownRole = errors.New("appstate: unknown role")
)

// KeyValue is the single-slot persistence facility behind a Store.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Translator resolves dotted translation paths for a language.
type Translator interface {
	Translate(lang i18n.Language, path string, fallback string) string
}

// Store holds one device's state and writes the whole record back to its
// slot after every mutation. It is safe for concurrent use.
type Store struct {
	kv         KeyValue
	key        string
	translator Translator
	tracer     trace.Tracer

	mu     sync.Mutex
	state  State
	loaded bool
}

// SlotKey returns the storage key for a device's state record.
func SlotKey(deviceID string) string {
	return StorageKey + ":" + strings.TrimSpace(deviceID)
}

// NewStore builds a store over kv at key with default state. Call Load
// before reading persisted values.
func NewStore(kv KeyValue, key string, translator Translator) *Store {
	return &Store{
		kv:         kv,
		key:        key,
		translator: translator,
		tracer:     otel.Tracer("github.com/louisbranch/smarthealth/internal/health/appstate"),
		state:      DefaultState(),
	}
}

// Load reads the persisted record and merges it over defaults. A malformed
// record is logged and ignored; storage failures are returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) error {
	if s.kv == nil {
		return fmt.Errorf("appstate: storage is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "appstate.Load", trace.WithAttributes(attribute.String("appstate.key", s.key)))
	defer span.End()

	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get state slot")
		return fmt.Errorf("load state %s: %w", s.key, err)
	}
	state := DefaultState()
	if ok {
		decoded, notes, err := decodeState(data)
		if err != nil {
			log.Printf("appstate: discarding malformed record key=%s err=%v", s.key, err)
		} else {
			state = decoded
			for _, note := range notes {
				log.Printf("appstate: normalized record key=%s note=%q", s.key, note)
			}
		}
	}
	s.state = state
	s.loaded = true
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Language returns the current language.
func (s *Store) Language() i18n.Language {
	return s.Snapshot().Language
}

// Role returns the current role.
func (s *Store) Role() Role {
	return s.Snapshot().Role
}

// Onboarded reports whether onboarding has completed.
func (s *Store) Onboarded() bool {
	return s.Snapshot().Onboarded
}

// SetLanguage sets the language and persists the record.
func (s *Store) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return s.mutate(ctx, "appstate.SetLanguage", func(state *State) error {
		state.Language = lang
		return nil
	})
}

// SetRole sets the role and persists the record.
func (s *Store) SetRole(ctx context.Context, role Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return s.mutate(ctx, "appstate.SetRole", func(state *State) error {
		state.Role = role
		return nil
	})
}

// CompleteOnboarding marks onboarding finished and persists the record.
// Calling it again writes the same record.
func (s *Store) CompleteOnboarding(ctx context.Context) error {
	return s.mutate(ctx, "appstate.CompleteOnboarding", func(state *State) error {
		if !state.Role.IsSet() {
			return ErrRoleRequired
		}
		state.Onboarded = true
		return nil
	})
}

// Reset removes the persisted record and returns the store to defaults.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv == nil {
		return fmt.Errorf("appstate: storage is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "appstate.Reset", trace.WithAttributes(attribute.String("appstate.key", s.key)))
	defer span.End()

	if err := s.kv.Delete(ctx, s.key); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete state slot")
		return fmt.Errorf("reset state %s: %w", s.key, err)
	}
	s.state = DefaultState()
	s.loaded = true
	return nil
}

// Translate resolves path in the current language's table.
func (s *Store) Translate(path string, fallback string) string {
	if s.translator == nil {
		return fallback
	}
	return s.translator.Translate(s.Language(), path, fallback)
}

// mutate applies change to a copy of the state, persists the full record,
// and only then publishes the copy. A failed write leaves state untouched.
func (s *Store) mutate(ctx context.Context, spanName string, change func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv == nil {
		return fmt.Errorf("appstate: storage is not configured")
	}

	next := s.state
	if err := change(&next); err != nil {
		return err
	}

	ctx, span := s.tracer.Start(ctx, spanName, trace.WithAttributes(
		attribute.String("appstate.key", s.key),
		attribute.String("appstate.language", string(next.Language)),
		attribute.String("appstate.role", string(next.Role)),
		attribute.Bool("appstate.onboarded", next.Onboarded),
	))
	defer span.End()

	data, err := encodeState(next)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode state")
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "put state slot")
		return fmt.Errorf("save state %s: %w", s.key, err)
	}
	s.state = next
	return nil
}
