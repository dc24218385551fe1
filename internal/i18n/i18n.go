// Package i18n resolves user-facing strings for the supported languages.
package i18n

import (
	"fmt"
	"strings"
)

// SupportedLangs are the language tags the bot can speak.
var SupportedLangs = []string{"ru", "uz", "en"}

// DefaultLang is used when no preference can be resolved.
const DefaultLang = "ru"

// Normalize maps an arbitrary locale code to a supported language tag.
func Normalize(lang string) string {
	lang = strings.ToLower(lang)
	switch {
	case strings.HasPrefix(lang, "ru"):
		return "ru"
	case strings.HasPrefix(lang, "uz"):
		return "uz"
	case strings.HasPrefix(lang, "en"):
		return "en"
	default:
		return DefaultLang
	}
}

// T resolves key for lang, falling back to the default language and finally
// to the key itself. Optional args are substituted with fmt.Sprintf.
func T(key, lang string, args ...any) string {
	lang = Normalize(lang)
	value, ok := catalogs[lang][key]
	if !ok {
		value, ok = catalogs[DefaultLang][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(value, args...)
	}
	return value
}

// LanguageLabel is the human-readable name of code, rendered in uiLang.
func LanguageLabel(code, uiLang string) string {
	return T("language.options."+Normalize(code), uiLang)
}

// Has reports whether the key exists in any catalog, used by tests to keep
// flow prompts and catalogs in sync.
func Has(key string) bool {
	for _, lang := range SupportedLangs {
		if _, ok := catalogs[lang][key]; ok {
			return true
		}
	}
	return false
}
