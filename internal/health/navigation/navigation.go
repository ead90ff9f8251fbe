// Package navigation derives the bottom navigation bar from the selected role.
package navigation

import (
	"strings"

	"github.com/louisbranch/smarthealth/internal/health/appstate"
	"github.com/louisbranch/smarthealth/internal/platform/icons"
)

// Destination identifies a top-level screen.
type Destination string

const (
	Home      Destination = "home"
	DataEntry Destination = "dataEntry"
	Reports   Destination = "reports"
	Alerts    Destination = "alerts"
	Awareness Destination = "awareness"
	Settings  Destination = "settings"
)

// Item is one entry of the navigation bar.
type Item struct {
	Destination   Destination
	Path          string
	LabelKey      string
	FallbackLabel string
	Icon          icons.ID
}

// Label resolves the item label through translate, falling back to English.
func (i Item) Label(translate func(path, fallback string) string) string {
	if translate == nil {
		return i.FallbackLabel
	}
	return translate(i.LabelKey, i.FallbackLabel)
}

var destinations = map[Destination]Item{
	Home:      {Destination: Home, Path: "/dashboard", LabelKey: "navigation.home", FallbackLabel: "Home", Icon: icons.IDHome},
	DataEntry: {Destination: DataEntry, Path: "/data-entry", LabelKey: "navigation.dataEntry", FallbackLabel: "Data Entry", Icon: icons.IDDataEntry},
	Reports:   {Destination: Reports, Path: "/reports", LabelKey: "navigation.reports", FallbackLabel: "Reports", Icon: icons.IDReports},
	Alerts:    {Destination: Alerts, Path: "/alerts", LabelKey: "navigation.alerts", FallbackLabel: "Alerts", Icon: icons.IDAlerts},
	Awareness: {Destination: Awareness, Path: "/awareness", LabelKey: "navigation.awareness", FallbackLabel: "Awareness", Icon: icons.IDAwareness},
	Settings:  {Destination: Settings, Path: "/settings", LabelKey: "navigation.settings", FallbackLabel: "Settings", Icon: icons.IDSettings},
}

// Lookup returns the item for a destination.
func Lookup(dest Destination) (Item, bool) {
	item, ok := destinations[dest]
	return item, ok
}

// Destinations returns the ordered destinations visible to role. Home is
// always first and no destination repeats.
func Destinations(role appstate.Role) []Destination {
	switch role {
	case appstate.RoleASHA:
		return []Destination{Home, DataEntry, Reports, Alerts, Awareness}
	case appstate.RoleCommunity:
		return []Destination{Home, Alerts, Awareness, Settings}
	case appstate.RoleAdmin:
		return []Destination{Home, Reports, Alerts, Settings}
	case appstate.RoleUnset:
		return []Destination{Home}
	}
	return []Destination{Home}
}

// Items returns the navigation bar for role.
func Items(role appstate.Role) []Item {
	dests := Destinations(role)
	items := make([]Item, 0, len(dests))
	for _, dest := range dests {
		items = append(items, destinations[dest])
	}
	return items
}

// ActiveFor returns the destination whose path is requestPath or one of its
// parents.
func ActiveFor(requestPath string) (Destination, bool) {
	requestPath = strings.TrimSuffix(requestPath, "/")
	for dest, item := range destinations {
		if requestPath == item.Path || strings.HasPrefix(requestPath, item.Path+"/") {
			return dest, true
		}
	}
	return "", false
}
