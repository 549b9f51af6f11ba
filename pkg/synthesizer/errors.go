package synthesizer

import "fmt"

// SynthesisError reports a synthesis run in which no chunk produced audio.
// Partial chunk failures are tolerated and never surface as this error.
type SynthesisError struct {
	Locale string
	Cause  string
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("could not generate audio for locale %s: %s", e.Locale, e.Cause)
}
