// Package language holds the static set of languages the translation backend accepts.
package language

import (
	"fmt"
	"strings"
)

// Language is an immutable code/label pair.
type Language struct {
	Code  string
	Label string
}

func (l Language) String() string {
	return fmt.Sprintf("%s (%s)", l.Label, l.Code)
}

const (
	DefaultSource = "en"
	DefaultTarget = "vi"
)

var all = []Language{
	{Code: "en", Label: "English"},
	{Code: "vi", Label: "Vietnamese"},
	{Code: "ja", Label: "Japanese"},
	{Code: "ko", Label: "Korean"},
	{Code: "zh", Label: "Chinese"},
	{Code: "fr", Label: "French"},
	{Code: "de", Label: "German"},
	{Code: "es", Label: "Spanish"},
	{Code: "it", Label: "Italian"},
	{Code: "pt", Label: "Portuguese"},
	{Code: "ru", Label: "Russian"},
	{Code: "th", Label: "Thai"},
	{Code: "id", Label: "Indonesian"},
	{Code: "hi", Label: "Hindi"},
	{Code: "ar", Label: "Arabic"},
}

// All returns a copy of the supported languages in display order.
func All() []Language {
	result := make([]Language, len(all))
	copy(result, all)
	return result
}

// Lookup finds a language by its code. Codes are matched case-insensitively.
func Lookup(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range all {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsSupported reports whether code names a known language.
func IsSupported(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Codes returns the codes of all supported languages.
func Codes() []string {
	codes := make([]string, 0, len(all))
	for _, l := range all {
		codes = append(codes, l.Code)
	}
	return codes
}
