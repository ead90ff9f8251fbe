package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
)

// ErrStopped is returned for selections made after the flow was stopped.
var ErrStopped = errors.New("onboarding: flow stopped")

// StateStore is the part of the application state store the flow writes to.
type StateStore interface {
	Snapshot() appstate.State
	SetLanguage(ctx context.Context, lang i18n.Language) error
	SetRole(ctx context.Context, role appstate.Role) error
	CompleteOnboarding(ctx context.Context) error
}

// Flow is one device's onboarding run. Every timer callback and selection
// goes through Transition under one lock.
type Flow struct {
	store     StateStore
	scheduler Scheduler
	timings   Timings

	mu             sync.Mutex
	step           Step
	started        bool
	stopped        bool
	fading         bool
	splashDeadline time.Time
	pending        Timer
	err            error
	changed        chan struct{}
}

// NewFlow builds a flow at the splash step. Call Start to begin.
func NewFlow(store StateStore, scheduler Scheduler, timings Timings) *Flow {
	if scheduler == nil {
		scheduler = ClockScheduler{}
	}
	return &Flow{
		store:     store,
		scheduler: scheduler,
		timings:   timings,
		step:      StepSplash,
		changed:   make(chan struct{}),
	}
}

// Start begins the flow once. A device that is already onboarded with a
// role skips straight to complete; otherwise the splash timers start.
func (f *Flow) Start() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.started || f.stopped {
		return f.step
	}
	f.started = true

	state := f.store.Snapshot()
	if state.Onboarded && state.Role.IsSet() {
		f.setStepLocked(StepComplete)
		return f.step
	}

	f.splashDeadline = f.scheduler.Now().Add(f.timings.SplashTotal())
	f.pending = f.scheduler.AfterFunc(f.timings.SplashDwell, f.beginFade)
	return f.step
}

func (f *Flow) beginFade() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped || f.step != StepSplash {
		return
	}
	f.fading = true
	f.pending = f.scheduler.AfterFunc(f.timings.SplashFade, func() {
		f.fire(context.Background(), SplashElapsed{})
	})
}

// ChooseLanguage stores lang and advances to the role step after the
// selection delay. Choosing again during the delay replaces the choice.
func (f *Flow) ChooseLanguage(ctx context.Context, lang i18n.Language) error {
	return f.choose(ctx, StepLanguage, func(ctx context.Context) (Event, error) {
		if err := f.store.SetLanguage(ctx, lang); err != nil {
			return nil, err
		}
		return LanguageCommitted{Language: lang}, nil
	})
}

// ChooseRole stores role and advances to complete after the selection
// delay, at which point onboarding is marked finished.
func (f *Flow) ChooseRole(ctx context.Context, role appstate.Role) error {
	return f.choose(ctx, StepRole, func(ctx context.Context) (Event, error) {
		if err := f.store.SetRole(ctx, role); err != nil {
			return nil, err
		}
		return RoleCommitted{Role: role}, nil
	})
}

func (f *Flow) choose(ctx context.Context, want Step, commit func(context.Context) (Event, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return ErrStopped
	}
	if f.step != want {
		return fmt.Errorf("%w: selection for %s at %s", ErrInvalidTransition, want, f.step)
	}
	event, err := commit(ctx)
	if err != nil {
		return err
	}
	f.stopPendingLocked()
	detached := context.WithoutCancel(ctx)
	f.pending = f.scheduler.AfterFunc(f.timings.Selection, func() {
		f.fire(detached, event)
	})
	return nil
}

func (f *Flow) fire(ctx context.Context, event Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.pending = nil
	next, err := Transition(f.step, event)
	if err != nil {
		log.Printf("onboarding: dropped event err=%v", err)
		return
	}
	if next == StepComplete {
		if err := f.store.CompleteOnboarding(ctx); err != nil {
			f.err = fmt.Errorf("complete onboarding: %w", err)
		}
	}
	f.fading = false
	f.setStepLocked(next)
}

func (f *Flow) setStepLocked(step Step) {
	f.step = step
	close(f.changed)
	f.changed = make(chan struct{})
}

func (f *Flow) stopPendingLocked() {
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
}

// Step returns the current step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Fading reports whether the splash is in its fade-out.
func (f *Flow) Fading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fading
}

// SplashRemaining returns how long until the splash ends, or zero once it has.
func (f *Flow) SplashRemaining() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepSplash || f.splashDeadline.IsZero() {
		return 0
	}
	remaining := f.splashDeadline.Sub(f.scheduler.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Err returns the failure recorded while completing onboarding, if any.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Await blocks until the flow leaves step from or ctx ends, and returns the
// step it reached.
func (f *Flow) Await(ctx context.Context, from Step) (Step, error) {
	for {
		f.mu.Lock()
		step, changed, stopped, err := f.step, f.changed, f.stopped, f.err
		f.mu.Unlock()
		if step != from {
			return step, err
		}
		if stopped {
			return step, ErrStopped
		}
		select {
		case <-ctx.Done():
			return step, ctx.Err()
		case <-changed:
		}
	}
}

// Stop cancels any pending timer. The flow ignores later events.
func (f *Flow) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.stopped = true
	f.stopPendingLocked()
	close(f.changed)
	f.changed = make(chan struct{})
}
