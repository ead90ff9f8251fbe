// Package content holds the canned screen content: dashboard stats and
// actions, alerts, awareness tips, report figures and form options.
//
// Content is decoded from an embedded TOML document and validated once at
// startup; it is immutable afterwards.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

//go:embed content.toml
var embeddedTOML []byte

// Audience lists the roles an entry is shown to. An empty audience means
// every role, including an unset one.
type Audience []appstate.Role

// Includes reports whether role may see the entry.
func (a Audience) Includes(role appstate.Role) bool {
	if len(a) == 0 {
		return true
	}
	for _, candidate := range a {
		if candidate == role {
			return true
		}
	}
	return false
}

// Stat is one dashboard quick stat.
type Stat struct {
	ID       string
	LabelKey string
	Label    string
	Value    string
	Icon     icons.ID
	Tone     string
	Audience Audience
}

// Action is one dashboard quick action.
type Action struct {
	ID          string
	LabelKey    string
	Label       string
	Description string
	Path        string
	Icon        icons.ID
	Audience    Audience
}

// Dashboard groups the dashboard tables.
type Dashboard struct {
	Stats         []Stat
	Actions       []Action
	TeaserAlertID string
	TeaserSummary string
}

// Content is the full set of static screen content.
type Content struct {
	Dashboard Dashboard
	Alerts    Alerts
	Awareness Awareness
	Reports   Reports
	DataEntry FormOptions
	Settings  Settings
}

// LoadEmbedded decodes the bundled content document.
func LoadEmbedded() (*Content, error) {
	return Load(embeddedTOML)
}

// MustLoadEmbedded is LoadEmbedded for process startup.
func MustLoadEmbedded() *Content {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}

// Load decodes and validates a content document.
func Load(data []byte) (*Content, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("content: parse TOML: %w", err)
	}
	return doc.build()
}

// StatsFor returns the quick stats visible to role in document order.
func (c *Content) StatsFor(role appstate.Role) []Stat {
	var out []Stat
	for _, stat := range c.Dashboard.Stats {
		if stat.Audience.Includes(role) {
			out = append(out, stat)
		}
	}
	return out
}

// ActionsFor returns the quick actions visible to role in document order.
func (c *Content) ActionsFor(role appstate.Role) []Action {
	var out []Action
	for _, action := range c.Dashboard.Actions {
		if action.Audience.Includes(role) {
			out = append(out, action)
		}
	}
	return out
}

// QuickReportsFor returns the quick reports visible to role.
func (c *Content) QuickReportsFor(role appstate.Role) []QuickReport {
	var out []QuickReport
	for _, report := range c.Reports.Quick {
		if report.Audience.Includes(role) {
			out = append(out, report)
		}
	}
	return out
}

// Teaser returns the alert featured on the dashboard.
func (c *Content) Teaser() (Alert, bool) {
	return c.Alerts.Find(c.Dashboard.TeaserAlertID)
}

func parseAudience(field string, raw []string) (Audience, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	audience := make(Audience, 0, len(raw))
	for _, value := range raw {
		role, ok := appstate.ParseRole(value)
		if !ok {
			return nil, fmt.Errorf("content: %s: unknown role %q", field, value)
		}
		audience = append(audience, role)
	}
	return audience, nil
}

func parseIcon(field string, raw string) (icons.ID, error) {
	id := icons.ID(strings.TrimSpace(raw))
	if _, ok := icons.LucideName(id); !ok {
		return "", fmt.Errorf("content: %s: unknown icon %q", field, raw)
	}
	return id, nil
}
