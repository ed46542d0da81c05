// Package slop scores text for ChatGPT-style writing patterns.
//
// The score is built from five independent additive signals (phrase hits,
// emoji density, emoji bullet points, exclamation abuse, hype emojis), each
// capped individually, with the sum clamped to 100. The constants are
// behavioral contracts, not tuned values.
package slop

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
)

const (
	// MinTextLength is the floor below which there is too little signal
	// to score; shorter inputs always score 0.
	MinTextLength = 40

	pointsPerPhrase = 12
	phraseCap       = 60

	emojiDensityHigh   = 30 // ratio > 2 per 100 chars
	emojiDensityMedium = 20 // ratio > 1
	emojiDensityLow    = 10 // ratio > 0.5

	emojiBulletPoints = 15
	minEmojiBullets   = 2

	exclamationPoints    = 10
	exclamationThreshold = 1.5 // per 100 chars

	hypeEmojiPoints = 15
	minHypeEmojis   = 3

	maxScore = 100
)

// emojiBulletRe matches the "🔥 Title:" pattern of an emoji used as a
// bullet point introducing a heading.
var emojiBulletRe = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}]\s*\w+[^:\n]*:`)

var (
	matcherOnce sync.Once
	matcher     *ahocorasick.Matcher
)

// phraseMatcher builds the Aho-Corasick automaton for the phrase dictionary
// once; the dictionary is fixed for the process lifetime.
func phraseMatcher() *ahocorasick.Matcher {
	matcherOnce.Do(func() {
		matcher = ahocorasick.NewStringMatcher(Phrases)
	})
	return matcher
}

// Score rates text 0-100 for AI-slop likelihood. 0 means no slop signal,
// 100 means saturated on every signal. Pure and order-independent: the
// result is a sum of the individual signal contributions, clamped.
func Score(text string) int {
	length := utf8.RuneCountInString(text)
	if length < MinTextLength {
		return 0
	}

	score := 0

	hits := len(phraseMatcher().Match([]byte(strings.ToLower(text))))
	score += min(hits*pointsPerPhrase, phraseCap)

	emojis := countEmojis(text)
	ratio := per100(emojis, length)
	switch {
	case ratio > 2:
		score += emojiDensityHigh
	case ratio > 1:
		score += emojiDensityMedium
	case ratio > 0.5:
		score += emojiDensityLow
	}

	if len(emojiBulletRe.FindAllStringIndex(text, -1)) >= minEmojiBullets {
		score += emojiBulletPoints
	}

	if per100(strings.Count(text, "!"), length) > exclamationThreshold {
		score += exclamationPoints
	}

	if countHypeEmojis(text) >= minHypeEmojis {
		score += hypeEmojiPoints
	}

	return min(score, maxScore)
}

// PhraseHits returns the dictionary phrases present in text, each mapped to
// 1. The map shape feeds the cross-document aggregation in pkg/mapreduce.
func PhraseHits(text string) map[string]int {
	hits := make(map[string]int)
	if utf8.RuneCountInString(text) < MinTextLength {
		return hits
	}
	for _, idx := range phraseMatcher().Match([]byte(strings.ToLower(text))) {
		hits[Phrases[idx]] = 1
	}
	return hits
}

// per100 normalizes a count to occurrences per 100 characters.
func per100(count, length int) float64 {
	return float64(count) / (float64(length) / 100)
}

// isEmoji reports whether r falls in the emoji code-point ranges used for
// the density signal. Covers the main symbol planes plus variation
// selectors and the zero-width joiner.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r == 0x200D:
		return true
	}
	return false
}

func countEmojis(text string) int {
	count := 0
	for _, r := range text {
		if isEmoji(r) {
			count++
		}
	}
	return count
}

func countHypeEmojis(text string) int {
	count := 0
	for _, r := range text {
		if _, ok := hypeEmojis[r]; ok {
			count++
		}
	}
	return count
}
