// Package onboarding drives a device through splash, language selection and
// role selection until the application state is marked onboarded.
package onboarding

import (
	"errors"
	"fmt"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
)

// Step is one stage of onboarding. Steps only move forward.
type Step int

const (
	StepSplash Step = iota
	StepLanguage
	StepRole
	StepComplete
)

// String returns the lowercase step name.
func (s Step) String() string {
	switch s {
	case StepSplash:
		return "splash"
	case StepLanguage:
		return "language"
	case StepRole:
		return "role"
	case StepComplete:
		return "complete"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Event is something that can advance the flow. The set is closed.
type Event interface {
	isEvent()
}

// SplashElapsed fires when the splash dwell and fade have both finished.
type SplashElapsed struct{}

// LanguageCommitted fires once a chosen language has been stored and the
// selection delay has passed.
type LanguageCommitted struct {
	Language i18n.Language
}

// RoleCommitted fires once a chosen role has been stored and the selection
// delay has passed.
type RoleCommitted struct {
	Role appstate.Role
}

func (SplashElapsed) isEvent()     {}
func (LanguageCommitted) isEvent() {}
func (RoleCommitted) isEvent()     {}

// ErrInvalidTransition is returned when an event does not apply to a step.
var ErrInvalidTransition = errors.New("onboarding: invalid transition")

// Transition is the single state function for timer and user events.
func Transition(step Step, event Event) (Step, error) {
	switch ev := event.(type) {
	case SplashElapsed:
		if step == StepSplash {
			return StepLanguage, nil
		}
	case LanguageCommitted:
		if step == StepLanguage && ev.Language.Valid() {
			return StepRole, nil
		}
	case RoleCommitted:
		if step == StepRole && ev.Role.Valid() {
			return StepComplete, nil
		}
	}
	return step, fmt.Errorf("%w: %T at %s", ErrInvalidTransition, event, step)
}
