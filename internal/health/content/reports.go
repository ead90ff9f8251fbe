package content

import "github.com/louisbranch/smarthealth/internal/platform/icons"

// PatientTotals are the patient summary figures.
type PatientTotals struct {
	Total    int
	ThisWeek int
	Trend    string
}

// WaterQuality counts water sources by status with the bar widths shown
// for each.
type WaterQuality struct {
	Safe           int
	Warning        int
	Unsafe         int
	SafePercent    int
	WarningPercent int
	UnsafePercent  int
}

// Total is the number of tested sources.
func (w WaterQuality) Total() int { return w.Safe + w.Warning + w.Unsafe }

// SymptomCount is one row of the common symptoms table.
type SymptomCount struct {
	Key        string  `toml:"key"`
	Name       string  `toml:"name"`
	Count      int     `toml:"count"`
	Percentage float64 `toml:"percentage"`
}

// LabelKey is the translation path of the symptom name.
func (s SymptomCount) LabelKey() string { return "dataEntry.symptomNames." + s.Key }

// QuickReport is one entry of the quick reports list.
type QuickReport struct {
	ID          string
	NameKey     string
	Name        string
	Description string
	Icon        icons.ID
	Audience    Audience
}

// Reports groups the mock analytics.
type Reports struct {
	Patients PatientTotals
	Water    WaterQuality
	Symptoms []SymptomCount
	Quick    []QuickReport
}
