// Package mapreduce aggregates per-document slop-phrase hits across a
// labeling batch, surfacing the cliches that dominated a run.
package mapreduce

import "github.com/grephuman/grephuman/pkg/slop"

// Map generates the phrase-hit map for a single document's text. Each
// dictionary phrase contributes at most 1 per document.
func Map(content string) map[string]int {
	return slop.PhraseHits(content)
}

// Reduce aggregates per-document hit maps into a single map counting how
// many documents each phrase appeared in.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, hits := range intermediate {
		for phrase, count := range hits {
			finalResults[phrase] += count
		}
	}

	return finalResults
}
