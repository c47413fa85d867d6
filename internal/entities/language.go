package entities

import "fmt"

// Language is the two-letter UI language code persisted under the
// app_language key.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

func ToLanguage(s string) (Language, error) {
	switch s {
	case string(LanguageEnglish):
		return LanguageEnglish, nil
	case string(LanguageHindi):
		return LanguageHindi, nil
	default:
		return "", fmt.Errorf("invalid language: %v", s)
	}
}
