package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Full word forms users commonly type that the BCP 47 parser does not accept.
var wordForms = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"russian":    "ru",
	"arabic":     "ar",
	"hindi":      "hi",
	"dutch":      "nl",
	"polish":     "pl",
	"swedish":    "sv",
}

// ToISO2 converts any recognized language code or word to ISO 639-1
// (2-letter). Three-letter codes canonicalize through the BCP 47 base
// registry ("eng" becomes "en"). Returns empty string for unrecognized or
// empty input.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if mapped, ok := wordForms[code]; ok {
		return mapped
	}
	base, err := language.ParseBase(code)
	if err != nil {
		return ""
	}
	return base.String()
}

// DisplayName returns a human-readable English name for any recognized code,
// or "Unknown" when the code cannot be resolved.
func DisplayName(code string) string {
	iso := ToISO2(code)
	if iso == "" {
		return "Unknown"
	}
	tag := language.Make(iso)
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(iso)
}
