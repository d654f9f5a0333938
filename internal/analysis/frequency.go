package analysis

import (
	"sort"
	"strings"
)

type WordCount struct {
	Word  string
	Count int
}

// WordWeights counts whitespace-delimited, lower-cased tokens across all
// texts. The result is ordered by descending count; equal counts keep the
// order in which the word was first seen. No stop-word or punctuation
// filtering is applied.
func WordWeights(texts []string) []WordCount {
	index := make(map[string]int)
	var counts []WordCount

	for _, text := range texts {
		for _, word := range strings.Fields(strings.ToLower(text)) {
			if i, ok := index[word]; ok {
				counts[i].Count++
				continue
			}
			index[word] = len(counts)
			counts = append(counts, WordCount{Word: word, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TopWords returns the n most frequent words. n <= 0 returns every word.
func TopWords(texts []string, n int) []WordCount {
	counts := WordWeights(texts)
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
