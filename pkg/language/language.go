// Package language identifies the language of result text. Identification
// is informational only: date-phrase extraction stays EN/FR regardless of
// what is detected here.
package language

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// candidates covers the locales that show up in the SERP markets this tool
// targets. A small set keeps detection fast and confident.
var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
}

var (
	buildOnce sync.Once
	detector  lingua.LanguageDetector
)

func sharedDetector() lingua.LanguageDetector {
	buildOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build()
	})
	return detector
}

// Detect returns the ISO 639-1 code of the detected language and the
// detector's confidence in [0,1]. Returns ("", 0) when the text carries too
// little signal to call.
func Detect(text string) (string, float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 0
	}

	d := sharedDetector()
	lang, ok := d.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}

	confidence := d.ComputeLanguageConfidence(text, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), confidence
}
