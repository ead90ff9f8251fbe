package appstate

import "strings"

// Role is the user's self-selected role. The zero value is RoleUnset.
type Role string

const (
	RoleUnset     Role = ""
	RoleASHA      Role = "asha"
	RoleCommunity Role = "community"
	RoleAdmin     Role = "admin"
)

var allRoles = []Role{RoleASHA, RoleCommunity, RoleAdmin}

// AllRoles returns every selectable role in display order. RoleUnset is not
// selectable and is not included.
func AllRoles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// ParseRole resolves a selectable role code.
func ParseRole(raw string) (Role, bool) {
	candidate := Role(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, true
	}
	return RoleUnset, false
}

// Valid reports whether r is a selectable role.
func (r Role) Valid() bool {
	switch r {
	case RoleASHA, RoleCommunity, RoleAdmin:
		return true
	}
	return false
}

// IsSet reports whether a role has been chosen.
func (r Role) IsSet() bool { return r != RoleUnset }

// LabelKey returns the translation path for the role's display name.
func (r Role) LabelKey() string {
	if !r.Valid() {
		return "roles.user"
	}
	return "roles." + string(r)
}

// DescriptionKey returns the translation path for the role's one-line summary.
func (r Role) DescriptionKey() string {
	if !r.Valid() {
		return ""
	}
	return "roles.descriptions." + string(r)
}

// FallbackLabel is the English display name used when a translation is missing.
func (r Role) FallbackLabel() string {
	switch r {
	case RoleASHA:
		return "ASHA Worker"
	case RoleCommunity:
		return "Community Member"
	case RoleAdmin:
		return "Health Officer"
	}
	return "User"
}
