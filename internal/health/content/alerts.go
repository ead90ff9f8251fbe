package content

import (
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// Priority ranks an alert.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// LabelKey is the translation path of the priority badge.
func (p Priority) LabelKey() string { return "alerts.priority." + string(p) }

// AlertKind classifies the hazard behind an alert.
type AlertKind string

const (
	KindWater    AlertKind = "water"
	KindOutbreak AlertKind = "outbreak"
	KindWeather  AlertKind = "weather"
)

// Icon returns the icon drawn next to alerts of this kind.
func (k AlertKind) Icon() icons.ID {
	switch k {
	case KindWater:
		return icons.IDWater
	case KindWeather:
		return icons.IDThermometer
	}
	return icons.IDAlerts
}

// Alert is one canned health alert.
type Alert struct {
	ID          string
	Kind        AlertKind
	Priority    Priority
	Title       string
	Description string
	Location    string
	Posted      string
	Actions     []string
}

// PriorityCounts are the figures shown above the alert list.
type PriorityCounts struct {
	High   int
	Medium int
	Low    int
}

// Alerts groups the alert list and its summary counts.
type Alerts struct {
	Counts PriorityCounts
	Items  []Alert
}

// Find returns the alert with id.
func (a Alerts) Find(id string) (Alert, bool) {
	for _, alert := range a.Items {
		if alert.ID == id {
			return alert, true
		}
	}
	return Alert{}, false
}
