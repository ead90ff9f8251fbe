// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "net/url"

const (
	Root   = "/"
	Health = "/up"
	Static = "/static/"

	OnboardingPrefix   = "/onboarding/"
	Onboarding         = "/onboarding"
	OnboardingLanguage = "/onboarding/language"
	OnboardingRole     = "/onboarding/role"

	Dashboard       = "/dashboard"
	DashboardPrefix = "/dashboard/"

	DataEntry       = "/data-entry"
	DataEntryPrefix = "/data-entry/"
	DataEntrySync   = "/data-entry/sync"

	Reports       = "/reports"
	ReportsPrefix = "/reports/"
	ReportsExport = "/reports/export"

	Alerts             = "/alerts"
	AlertsPrefix       = "/alerts/"
	AlertStatusPattern = AlertsPrefix + "{alertID}/status"

	Awareness       = "/awareness"
	AwarenessPrefix = "/awareness/"

	Settings           = "/settings"
	SettingsPrefix     = "/settings/"
	SettingsLanguage   = "/settings/language"
	SettingsRole       = "/settings/role"
	SettingsSync       = "/settings/sync"
	SettingsClearCache = "/settings/clear-cache"
	SettingsReset      = "/settings/reset"
)

// AlertStatus returns the status-report route for an alert.
func AlertStatus(alertID string) string {
	return AlertsPrefix + url.PathEscape(alertID) + "/status"
}
