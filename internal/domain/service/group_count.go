package service

import "sort"

// LabelCount is one bar of a distribution chart.
type LabelCount struct {
	Label string
	Count int
}

// GroupCount counts items by the label returned from key.
func GroupCount[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// SortedCounts orders counts by descending count, breaking ties by label.
func SortedCounts(counts map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// FraudEvaluationKey groups evaluations by fraud evaluation label.
func FraudEvaluationKey(e Evaluation) string {
	return e.FraudEvaluation.String()
}

// ClaimAssessmentKey groups evaluations by claim assessment label.
func ClaimAssessmentKey(e Evaluation) string {
	return e.ClaimAssessment.String()
}
