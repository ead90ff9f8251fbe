package appstate

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/smarthealth/internal/platform/i18n"
)

// State is the full persisted application state for one device.
type State struct {
	Language  i18n.Language
	Role      Role
	Onboarded bool
}

// DefaultState is the state of a device that has never been onboarded.
func DefaultState() State {
	return State{Language: i18n.Default, Role: RoleUnset, Onboarded: false}
}

// storedRecord is the on-disk layout. Role is null until chosen.
type storedRecord struct {
	Language  string  `json:"language"`
	Role      *string `json:"role"`
	Onboarded bool    `json:"onboarded"`
}

// loadedRecord accepts partial records and the legacy isOnboarded key.
type loadedRecord struct {
	Language    *string `json:"language"`
	Role        *string `json:"role"`
	Onboarded   *bool   `json:"onboarded"`
	IsOnboarded *bool   `json:"isOnboarded"`
}

func encodeState(state State) ([]byte, error) {
	record := storedRecord{
		Language:  string(state.Language),
		Onboarded: state.Onboarded,
	}
	if state.Role.IsSet() {
		role := string(state.Role)
		record.Role = &role
	}
	return json.Marshal(record)
}

// decodeState merges a persisted record over defaults. Fields that are
// missing or carry unknown values keep their defaults; the returned notes
// describe each correction so the caller can log them.
func decodeState(data []byte) (State, []string, error) {
	var record loadedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return DefaultState(), nil, fmt.Errorf("decode state record: %w", err)
	}

	state := DefaultState()
	var notes []string

	if record.Language != nil {
		if lang, ok := i18n.ParseLanguage(*record.Language); ok {
			state.Language = lang
		} else {
			notes = append(notes, fmt.Sprintf("unknown language %q", *record.Language))
		}
	}
	if record.Role != nil {
		if role, ok := ParseRole(*record.Role); ok {
			state.Role = role
		} else {
			notes = append(notes, fmt.Sprintf("unknown role %q", *record.Role))
		}
	}
	switch {
	case record.Onboarded != nil:
		state.Onboarded = *record.Onboarded
	case record.IsOnboarded != nil:
		state.Onboarded = *record.IsOnboarded
	}
	if state.Onboarded && !state.Role.IsSet() {
		state.Onboarded = false
		notes = append(notes, "onboarded without a role")
	}
	return state, notes, nil
}
