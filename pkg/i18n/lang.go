package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when nothing better matches.
const DefaultLanguage = "en"

// maxPreferenceLength bounds the preference list accepted by MatchLanguage.
const maxPreferenceLength = 4096

// MatchLanguage picks the entry of supported that best serves preferred,
// which may be a single BCP 47 tag ("de-AT") or an Accept-Language list
// ("fr;q=0.9, de;q=0.8"). Regional variants match their base language.
// Unparseable input or no acceptable match yields fallback.
func MatchLanguage(preferred string, supported []string, fallback string) string {
	if preferred == "" || len(supported) == 0 {
		return fallback
	}
	if len(preferred) > maxPreferenceLength {
		preferred = preferred[:maxPreferenceLength]
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No || index < 0 || index >= len(names) {
		return fallback
	}
	return names[index]
}
