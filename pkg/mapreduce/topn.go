package mapreduce

import (
	"fmt"
	"sort"
)

// TopPhrases returns the top N phrases from aggregated hit counts as
// formatted strings. Each string is formatted as "phrase:count"
// (e.g., "delve into:37"). Ties break alphabetically so output is stable.
func TopPhrases(phraseCounts map[string]int, n int) []string {
	type kv struct {
		Key   string
		Value int
	}

	var ss []kv
	for k, v := range phraseCounts {
		ss = append(ss, kv{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})

	limit := n
	if len(ss) < n {
		limit = len(ss)
	}
	if limit < 0 {
		limit = 0
	}

	phrases := make([]string, limit)
	for i := 0; i < limit; i++ {
		phrases[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return phrases
}
