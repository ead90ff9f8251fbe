package content

// Option is a selectable form value with its translated label path.
type Option struct {
	Value    string
	LabelKey string
}

// FormOptions holds the closed value sets of the patient form.
type FormOptions struct {
	Genders      []Option
	WaterSources []Option
	Symptoms     []Option
}

// Has reports whether value is one of options.
func Has(options []Option, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// Notification is a display-only notification preference.
type Notification struct {
	ID       string
	LabelKey string
	Label    string
	Enabled  bool
}

// Settings holds settings screen content.
type Settings struct {
	Notifications []Notification
	Version       string
	Build         string
	Helpline      string
}

func buildOptions(prefix string, values []string) []Option {
	options := make([]Option, 0, len(values))
	for _, value := range values {
		options = append(options, Option{Value: value, LabelKey: prefix + value})
	}
	return options
}
