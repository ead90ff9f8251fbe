package icons

// ID identifies one icon by intent rather than by artwork.
type ID string

const (
	IDHome         ID = "home"
	IDDataEntry    ID = "data_entry"
	IDReports      ID = "reports"
	IDAlerts       ID = "alerts"
	IDAwareness    ID = "awareness"
	IDSettings     ID = "settings"
	IDWater        ID = "water"
	IDPeople       ID = "people"
	IDActivity     ID = "activity"
	IDNotification ID = "notification"
	IDOnline       ID = "online"
	IDSync         ID = "sync"
	IDPhone        ID = "phone"
	IDHeart        ID = "heart"
	IDShield       ID = "shield"
	IDDownload     ID = "download"
	IDLanguage     ID = "language"
	IDProfile      ID = "profile"
	IDClock        ID = "clock"
	IDLocation     ID = "location"
	IDCheck        ID = "check"
	IDTrash        ID = "trash"
	IDSave         ID = "save"
	IDTrend        ID = "trend"
	IDThermometer  ID = "thermometer"
	IDChild        ID = "child"
	IDHygiene      ID = "hygiene"
	IDWeather      ID = "weather"
	IDHelp         ID = "help"
	IDAdd          ID = "add"
	IDReset        ID = "reset"
	IDInfo         ID = "info"
)

// Definition describes a catalog icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: IDHome, Name: "Home", Description: "Dashboard and home navigation."},
	{ID: IDDataEntry, Name: "Data Entry", Description: "Patient data entry forms."},
	{ID: IDReports, Name: "Reports", Description: "Charts and analytics."},
	{ID: IDAlerts, Name: "Alerts", Description: "Health and water alerts."},
	{ID: IDAwareness, Name: "Awareness", Description: "Health education content."},
	{ID: IDSettings, Name: "Settings", Description: "Application settings."},
	{ID: IDWater, Name: "Water", Description: "Water quality and sources."},
	{ID: IDPeople, Name: "People", Description: "Communities and households."},
	{ID: IDActivity, Name: "Activity", Description: "Health activity and vitals."},
	{ID: IDNotification, Name: "Notification", Description: "Notification preferences."},
	{ID: IDOnline, Name: "Online", Description: "Connectivity status."},
	{ID: IDSync, Name: "Sync", Description: "Offline data sync."},
	{ID: IDPhone, Name: "Phone", Description: "Emergency contacts."},
	{ID: IDHeart, Name: "Heart", Description: "General health."},
	{ID: IDShield, Name: "Shield", Description: "Community safety."},
	{ID: IDDownload, Name: "Download", Description: "Report exports."},
	{ID: IDLanguage, Name: "Language", Description: "Language selection."},
	{ID: IDProfile, Name: "Profile", Description: "Role and profile."},
	{ID: IDClock, Name: "Clock", Description: "Timestamps."},
	{ID: IDLocation, Name: "Location", Description: "Alert locations."},
	{ID: IDCheck, Name: "Check", Description: "Confirmations and safe status."},
	{ID: IDTrash, Name: "Trash", Description: "Clearing cached data."},
	{ID: IDSave, Name: "Save", Description: "Saving forms."},
	{ID: IDTrend, Name: "Trend", Description: "Rising trends."},
	{ID: IDThermometer, Name: "Thermometer", Description: "Symptoms and fever."},
	{ID: IDChild, Name: "Child", Description: "Child nutrition."},
	{ID: IDHygiene, Name: "Hygiene", Description: "Handwashing and hygiene."},
	{ID: IDWeather, Name: "Weather", Description: "Weather alerts."},
	{ID: IDHelp, Name: "Help", Description: "Help and support."},
	{ID: IDAdd, Name: "Add", Description: "Adding records."},
	{ID: IDReset, Name: "Reset", Description: "Resetting the app."},
	{ID: IDInfo, Name: "Info", Description: "App information."},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}
