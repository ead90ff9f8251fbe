// Package i18n defines the closed set of interface languages.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Language is a supported interface language code.
type Language string

const (
	English  Language = "en"
	Hindi    Language = "hi"
	Assamese Language = "as"
	Bengali  Language = "bn"
)

// Default is the language of a fresh device.
const Default = English

var allLanguages = []Language{English, Hindi, Assamese, Bengali}

var languageTags = map[Language]language.Tag{
	English:  language.English,
	Hindi:    language.Hindi,
	Assamese: language.MustParse("as"),
	Bengali:  language.Bengali,
}

var englishNames = map[Language]string{
	English:  "English",
	Hindi:    "Hindi",
	Assamese: "Assamese",
	Bengali:  "Bengali",
}

var nativeNames = map[Language]string{
	English:  "English",
	Hindi:    "हिंदी",
	Assamese: "অসমীয়া",
	Bengali:  "বাংলা",
}

// AllLanguages returns every supported language in display order.
func AllLanguages() []Language {
	out := make([]Language, len(allLanguages))
	copy(out, allLanguages)
	return out
}

// ParseLanguage resolves a language code, ignoring case and surrounding space.
func ParseLanguage(raw string) (Language, bool) {
	candidate := Language(strings.ToLower(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate, true
	}
	return "", false
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := languageTags[l]
	return ok
}

// String returns the language code.
func (l Language) String() string { return string(l) }

// Tag returns the BCP 47 tag, falling back to English for unknown codes.
func (l Language) Tag() language.Tag {
	if tag, ok := languageTags[l]; ok {
		return tag
	}
	return language.English
}

// Printer returns a locale-aware printer used for number formatting.
func (l Language) Printer(opts ...message.Option) *message.Printer {
	return message.NewPrinter(l.Tag(), opts...)
}

// EnglishName returns the language name written in English.
func (l Language) EnglishName() string {
	if name, ok := englishNames[l]; ok {
		return name
	}
	return string(l)
}

// NativeName returns the language name written in its own script.
func (l Language) NativeName() string {
	if name, ok := nativeNames[l]; ok {
		return name
	}
	return string(l)
}
