package content

import (
	"fmt"
	"strings"
)

type document struct {
	Dashboard struct {
		TeaserAlert   string        `toml:"teaser_alert"`
		TeaserSummary string        `toml:"teaser_summary"`
		Stats         []statEntry   `toml:"stats"`
		Actions       []actionEntry `toml:"actions"`
	} `toml:"dashboard"`
	Alerts struct {
		Counts struct {
			High   int `toml:"high"`
			Medium int `toml:"medium"`
			Low    int `toml:"low"`
		} `toml:"counts"`
		Items []alertEntry `toml:"items"`
	} `toml:"alerts"`
	Awareness struct {
		TipTotal string     `toml:"tip_total"`
		Tips     []tipEntry `toml:"tips"`
	} `toml:"awareness"`
	Reports struct {
		Patients struct {
			Total    int    `toml:"total"`
			ThisWeek int    `toml:"this_week"`
			Trend    string `toml:"trend"`
		} `toml:"patients"`
		Water struct {
			Safe           int `toml:"safe"`
			Warning        int `toml:"warning"`
			Unsafe         int `toml:"unsafe"`
			SafePercent    int `toml:"safe_percent"`
			WarningPercent int `toml:"warning_percent"`
			UnsafePercent  int `toml:"unsafe_percent"`
		} `toml:"water"`
		Symptoms []SymptomCount `toml:"symptoms"`
		Quick    []quickEntry   `toml:"quick"`
	} `toml:"reports"`
	DataEntry struct {
		Genders      []string `toml:"genders"`
		WaterSources []string `toml:"water_sources"`
		Symptoms     []string `toml:"symptoms"`
	} `toml:"data_entry"`
	Settings struct {
		Version       string              `toml:"version"`
		Build         string              `toml:"build"`
		Helpline      string              `toml:"helpline"`
		Notifications []notificationEntry `toml:"notifications"`
	} `toml:"settings"`
}

type statEntry struct {
	ID       string   `toml:"id"`
	LabelKey string   `toml:"label_key"`
	Label    string   `toml:"label"`
	Value    string   `toml:"value"`
	Icon     string   `toml:"icon"`
	Tone     string   `toml:"tone"`
	Roles    []string `toml:"roles"`
}

type actionEntry struct {
	ID          string   `toml:"id"`
	LabelKey    string   `toml:"label_key"`
	Label       string   `toml:"label"`
	Description string   `toml:"description"`
	Path        string   `toml:"path"`
	Icon        string   `toml:"icon"`
	Roles       []string `toml:"roles"`
}

type alertEntry struct {
	ID          string   `toml:"id"`
	Kind        string   `toml:"kind"`
	Priority    string   `toml:"priority"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Location    string   `toml:"location"`
	Posted      string   `toml:"posted"`
	Actions     []string `toml:"actions"`
}

type tipEntry struct {
	ID          string   `toml:"id"`
	Category    string   `toml:"category"`
	Icon        string   `toml:"icon"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Steps       []string `toml:"steps"`
}

type quickEntry struct {
	ID          string   `toml:"id"`
	NameKey     string   `toml:"name_key"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Icon        string   `toml:"icon"`
	Roles       []string `toml:"roles"`
}

type notificationEntry struct {
	ID       string `toml:"id"`
	LabelKey string `toml:"label_key"`
	Label    string `toml:"label"`
	Enabled  bool   `toml:"enabled"`
}

func (d document) build() (*Content, error) {
	c := &Content{}

	for i, entry := range d.Dashboard.Stats {
		field := fmt.Sprintf("dashboard.stats[%d]", i)
		if strings.TrimSpace(entry.ID) == "" {
			return nil, fmt.Errorf("content: %s: id is required", field)
		}
		icon, err := parseIcon(field, entry.Icon)
		if err != nil {
			return nil, err
		}
		audience, err := parseAudience(field, entry.Roles)
		if err != nil {
			return nil, err
		}
		c.Dashboard.Stats = append(c.Dashboard.Stats, Stat{
			ID: entry.ID, LabelKey: entry.LabelKey, Label: entry.Label,
			Value: entry.Value, Icon: icon, Tone: entry.Tone, Audience: audience,
		})
	}
	for i, entry := range d.Dashboard.Actions {
		field := fmt.Sprintf("dashboard.actions[%d]", i)
		if !strings.HasPrefix(entry.Path, "/") {
			return nil, fmt.Errorf("content: %s: path %q must be absolute", field, entry.Path)
		}
		icon, err := parseIcon(field, entry.Icon)
		if err != nil {
			return nil, err
		}
		audience, err := parseAudience(field, entry.Roles)
		if err != nil {
			return nil, err
		}
		c.Dashboard.Actions = append(c.Dashboard.Actions, Action{
			ID: entry.ID, LabelKey: entry.LabelKey, Label: entry.Label,
			Description: entry.Description, Path: entry.Path, Icon: icon, Audience: audience,
		})
	}
	c.Dashboard.TeaserAlertID = d.Dashboard.TeaserAlert
	c.Dashboard.TeaserSummary = d.Dashboard.TeaserSummary

	c.Alerts.Counts = PriorityCounts{
		High:   d.Alerts.Counts.High,
		Medium: d.Alerts.Counts.Medium,
		Low:    d.Alerts.Counts.Low,
	}
	seenAlerts := map[string]bool{}
	for i, entry := range d.Alerts.Items {
		field := fmt.Sprintf("alerts.items[%d]", i)
		if entry.ID == "" || seenAlerts[entry.ID] {
			return nil, fmt.Errorf("content: %s: id %q is empty or repeated", field, entry.ID)
		}
		seenAlerts[entry.ID] = true
		priority := Priority(entry.Priority)
		if !priority.Valid() {
			return nil, fmt.Errorf("content: %s: unknown priority %q", field, entry.Priority)
		}
		kind := AlertKind(entry.Kind)
		switch kind {
		case KindWater, KindOutbreak, KindWeather:
		default:
			return nil, fmt.Errorf("content: %s: unknown kind %q", field, entry.Kind)
		}
		c.Alerts.Items = append(c.Alerts.Items, Alert{
			ID: entry.ID, Kind: kind, Priority: priority, Title: entry.Title,
			Description: entry.Description, Location: entry.Location, Posted: entry.Posted,
			Actions: entry.Actions,
		})
	}
	if c.Dashboard.TeaserAlertID != "" && !seenAlerts[c.Dashboard.TeaserAlertID] {
		return nil, fmt.Errorf("content: dashboard.teaser_alert: unknown alert %q", c.Dashboard.TeaserAlertID)
	}

	c.Awareness.TipTotal = d.Awareness.TipTotal
	for i, entry := range d.Awareness.Tips {
		field := fmt.Sprintf("awareness.tips[%d]", i)
		category := Category(entry.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("content: %s: unknown category %q", field, entry.Category)
		}
		icon, err := parseIcon(field, entry.Icon)
		if err != nil {
			return nil, err
		}
		c.Awareness.Tips = append(c.Awareness.Tips, Tip{
			ID: entry.ID, Category: category, Icon: icon, Title: entry.Title,
			Description: entry.Description, Steps: entry.Steps,
		})
	}

	c.Reports.Patients = PatientTotals{
		Total:    d.Reports.Patients.Total,
		ThisWeek: d.Reports.Patients.ThisWeek,
		Trend:    d.Reports.Patients.Trend,
	}
	c.Reports.Water = WaterQuality(d.Reports.Water)
	c.Reports.Symptoms = d.Reports.Symptoms
	for i, entry := range d.Reports.Quick {
		field := fmt.Sprintf("reports.quick[%d]", i)
		icon, err := parseIcon(field, entry.Icon)
		if err != nil {
			return nil, err
		}
		audience, err := parseAudience(field, entry.Roles)
		if err != nil {
			return nil, err
		}
		c.Reports.Quick = append(c.Reports.Quick, QuickReport{
			ID: entry.ID, NameKey: entry.NameKey, Name: entry.Name,
			Description: entry.Description, Icon: icon, Audience: audience,
		})
	}

	c.DataEntry = FormOptions{
		Genders:      buildOptions("dataEntry.genders.", d.DataEntry.Genders),
		WaterSources: buildOptions("dataEntry.waterSources.", d.DataEntry.WaterSources),
		Symptoms:     buildOptions("dataEntry.symptomNames.", d.DataEntry.Symptoms),
	}

	c.Settings = Settings{
		Version:  d.Settings.Version,
		Build:    d.Settings.Build,
		Helpline: d.Settings.Helpline,
	}
	for _, entry := range d.Settings.Notifications {
		c.Settings.Notifications = append(c.Settings.Notifications, Notification(entry))
	}
	return c, nil
}
