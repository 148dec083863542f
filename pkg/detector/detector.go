// Package detector identifies the language of a research document. The
// result is informational: it goes into the run summary so readers know what
// the counts were computed over, and it never changes matching behavior.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// candidate languages kept small: detection speed scales with the model set,
// and these cover the documents this tool sees in practice.
var candidates = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Russian,
	lingua.Ukrainian,
	lingua.Chinese,
	lingua.Japanese,
}

// Detector wraps a lingua language detector built once and reused.
type Detector struct {
	detector lingua.LanguageDetector
}

func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build(),
	}
}

// DetectLanguage returns the lower-cased English name of the document's
// language ("english", "german", ...) or "" when detection is inconclusive
// or the text is empty.
func (d *Detector) DetectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return ""
	}
	return strings.ToLower(language.String())
}
