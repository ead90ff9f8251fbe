package onboarding

import (
	"errors"
	"testing"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/i18n"
)

func TestTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		step    Step
		event   Event
		want    Step
		wantErr bool
	}{
		{name: "splash elapsed", step: StepSplash, event: SplashElapsed{}, want: StepLanguage},
		{name: "language committed", step: StepLanguage, event: LanguageCommitted{Language: i18n.Bengali}, want: StepRole},
		{name: "role committed", step: StepRole, event: RoleCommitted{Role: appstate.RoleAdmin}, want: StepComplete},
		{name: "splash event after splash", step: StepLanguage, event: SplashElapsed{}, want: StepLanguage, wantErr: true},
		{name: "role before language", step: StepLanguage, event: RoleCommitted{Role: appstate.RoleASHA}, want: StepLanguage, wantErr: true},
		{name: "language during splash", step: StepSplash, event: LanguageCommitted{Language: i18n.Hindi}, want: StepSplash, wantErr: true},
		{name: "unknown language", step: StepLanguage, event: LanguageCommitted{Language: "fr"}, want: StepLanguage, wantErr: true},
		{name: "unset role", step: StepRole, event: RoleCommitted{}, want: StepRole, wantErr: true},
		{name: "nothing after complete", step: StepComplete, event: RoleCommitted{Role: appstate.RoleASHA}, want: StepComplete, wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Transition(tc.step, tc.event)
			if got != tc.want {
				t.Fatalf("Transition() = %s, want %s", got, tc.want)
			}
			if tc.wantErr != (err != nil) {
				t.Fatalf("Transition() error = %v, wantErr %t", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("Transition() error = %v, want ErrInvalidTransition", err)
			}
		})
	}
}

func TestStepString(t *testing.T) {
	t.Parallel()

	names := map[Step]string{
		StepSplash:   "splash",
		StepLanguage: "language",
		StepRole:     "role",
		StepComplete: "complete",
	}
	for step, want := range names {
		if got := step.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
