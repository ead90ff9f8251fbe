// Package dataentry parses and checks the transient patient form.
//
// Submissions are never stored; a valid form only produces a confirmation.
package dataentry

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/smarthealth/internal/health/content"
)

// ErrMissingRequired reports a submission without name, age or gender.
var ErrMissingRequired = errors.New("dataentry: required field missing")

// Form field names.
const (
	FieldName        = "name"
	FieldAge         = "age"
	FieldGender      = "gender"
	FieldLocation    = "location"
	FieldSymptoms    = "symptoms"
	FieldWaterSource = "water_source"
)

// PatientForm holds one patient submission.
type PatientForm struct {
	Name        string
	Age         string
	Gender      string
	Location    string
	Symptoms    []string
	WaterSource string
}

// Parse reads a form submission, keeping only values offered by options.
func Parse(values url.Values, options content.FormOptions) PatientForm {
	form := PatientForm{
		Name:     strings.TrimSpace(values.Get(FieldName)),
		Age:      strings.TrimSpace(values.Get(FieldAge)),
		Location: strings.TrimSpace(values.Get(FieldLocation)),
	}
	if gender := strings.TrimSpace(values.Get(FieldGender)); content.Has(options.Genders, gender) {
		form.Gender = gender
	}
	if source := strings.TrimSpace(values.Get(FieldWaterSource)); content.Has(options.WaterSources, source) {
		form.WaterSource = source
	}
	seen := map[string]bool{}
	for _, symptom := range values[FieldSymptoms] {
		symptom = strings.TrimSpace(symptom)
		if seen[symptom] || !content.Has(options.Symptoms, symptom) {
			continue
		}
		seen[symptom] = true
		form.Symptoms = append(form.Symptoms, symptom)
	}
	return form
}

// Validate checks the required fields. Age must be a whole number of years.
func (f PatientForm) Validate() error {
	if f.Name == "" || f.Age == "" || f.Gender == "" {
		return ErrMissingRequired
	}
	age, err := strconv.Atoi(f.Age)
	if err != nil || age < 0 || age > 150 {
		return ErrMissingRequired
	}
	return nil
}

// HasSymptom reports whether the symptom was ticked.
func (f PatientForm) HasSymptom(symptom string) bool {
	for _, s := range f.Symptoms {
		if s == symptom {
			return true
		}
	}
	return false
}
