package dataentry

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/louisbranch/smarthealth/internal/health/content"
)

func testOptions() content.FormOptions {
	return content.MustLoadEmbedded().DataEntry
}

func TestParseKeepsOfferedValues(t *testing.T) {
	t.Parallel()

	values := url.Values{
		FieldName:        {"  Rina Das "},
		FieldAge:         {"34"},
		FieldGender:      {"female"},
		FieldLocation:    {"Majuli"},
		FieldSymptoms:    {"fever", "cough", "diarrhea", "fever"},
		FieldWaterSource: {"lake"},
	}
	form := Parse(values, testOptions())

	want := PatientForm{
		Name:     "Rina Das",
		Age:      "34",
		Gender:   "female",
		Location: "Majuli",
		Symptoms: []string{"fever", "diarrhea"},
	}
	if !reflect.DeepEqual(form, want) {
		t.Fatalf("Parse() = %+v, want %+v", form, want)
	}
	if !form.HasSymptom("diarrhea") || form.HasSymptom("cough") {
		t.Fatalf("HasSymptom mismatch for %v", form.Symptoms)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    PatientForm
		wantErr bool
	}{
		{name: "complete", form: PatientForm{Name: "Rina", Age: "34", Gender: "female"}},
		{name: "optional fields empty", form: PatientForm{Name: "Rina", Age: "0", Gender: "other"}},
		{name: "missing name", form: PatientForm{Age: "34", Gender: "female"}, wantErr: true},
		{name: "missing age", form: PatientForm{Name: "Rina", Gender: "female"}, wantErr: true},
		{name: "missing gender", form: PatientForm{Name: "Rina", Age: "34"}, wantErr: true},
		{name: "age not a number", form: PatientForm{Name: "Rina", Age: "thirty", Gender: "female"}, wantErr: true},
		{name: "negative age", form: PatientForm{Name: "Rina", Age: "-1", Gender: "female"}, wantErr: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.form.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrMissingRequired) {
					t.Fatalf("Validate() error = %v, want ErrMissingRequired", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}

func TestParseUnknownGenderFailsValidation(t *testing.T) {
	t.Parallel()

	form := Parse(url.Values{
		FieldName:   {"Rina"},
		FieldAge:    {"34"},
		FieldGender: {"unknown"},
	}, testOptions())
	if err := form.Validate(); !errors.Is(err, ErrMissingRequired) {
		t.Fatalf("Validate() error = %v, want ErrMissingRequired", err)
	}
}
