package domain

import "strings"

// Languages lists the selectable translation targets in display order.
var Languages = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Italian",
	"Portuguese",
	"Hindi",
	"Chinese",
	"Japanese",
	"Arabic",
	"Russian",
	"Korean",
}

// ParseLanguage returns the canonical name for a case-insensitive match.
func ParseLanguage(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	for _, lang := range Languages {
		if strings.EqualFold(lang, trimmed) {
			return lang, nil
		}
	}
	if trimmed == "" {
		return "", NewValidationError("target_language", "is required", ErrUnknownLanguage)
	}
	return "", NewValidationError("target_language", "must be one of "+strings.Join(Languages, ", "), ErrUnknownLanguage)
}
