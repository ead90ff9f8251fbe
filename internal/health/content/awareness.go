package content

import "github.com/louisbranch/smarthealth/internal/platform/icons"

// Category groups awareness tips.
type Category string

const (
	CategoryHygiene   Category = "hygiene"
	CategoryWater     Category = "water"
	CategoryNutrition Category = "nutrition"
	CategoryGeneral   Category = "general"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryHygiene, CategoryWater, CategoryNutrition, CategoryGeneral:
		return true
	}
	return false
}

// LabelKey is the translation path of the category badge.
func (c Category) LabelKey() string { return "awareness.categories." + string(c) }

// Tip is one awareness topic with numbered steps.
type Tip struct {
	ID          string
	Category    Category
	Icon        icons.ID
	Title       string
	Description string
	Steps       []string
}

// Awareness groups the tips and the headline tip total.
type Awareness struct {
	Tips     []Tip
	TipTotal string
}
