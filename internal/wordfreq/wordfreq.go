// Package wordfreq summarizes comment corpora into ranked word counts.
package wordfreq

import "sort"

// WordCount is one ranked entry of a summary.
type WordCount struct {
	Word  string
	Count int
}

// TopK returns at most k words ordered by descending count. Words with equal
// counts keep the order in which they first appear in the corpus.
func TopK(corpus []string, k int) []WordCount {
	if k <= 0 || len(corpus) == 0 {
		return nil
	}

	counts := make(map[string]int, len(corpus))
	var order []string
	for _, w := range corpus {
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}

	out := make([]WordCount, len(order))
	for i, w := range order {
		out[i] = WordCount{Word: w, Count: counts[w]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > k {
		out = out[:k]
	}
	return out
}

// Total returns the sum of counts in a summary.
func Total(summary []WordCount) int {
	n := 0
	for _, wc := range summary {
		n += wc.Count
	}
	return n
}
