package synthesizer

import "strings"

// DefaultVoice is used when a language code has no mapped voice.
const DefaultVoice = "en-US"

// localeVoices maps normalized language codes to provider voice identifiers.
// Built once at startup and never mutated.
var localeVoices = map[string]string{
	"en": "en-US",
	"es": "es-ES",
	"fr": "fr-FR",
	"de": "de-DE",
	"it": "it-IT",
	"pt": "pt-BR",
}

// ResolveVoice maps a language code ("en", "PT-br", "pt-BR") to the
// provider voice identifier, falling back to DefaultVoice for unknown codes.
func ResolveVoice(code string) string {
	base := strings.ToLower(strings.TrimSpace(code))
	if i := strings.Index(base, "-"); i >= 0 {
		base = base[:i]
	}
	if voice, ok := localeVoices[base]; ok {
		return voice
	}
	return DefaultVoice
}
