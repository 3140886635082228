package domain

import "math"

// CompatibilityResult is one normalized entry returned by the scoring
// service: the question/item identifier and its integer rating. Rating is
// nil when the service returned something that could not be coerced to a
// number.
type CompatibilityResult struct {
	Item   string `json:"item"`
	Rating *int   `json:"rating"`
}

// AnswerItem is one candidate answer sent to the scoring service.
type AnswerItem struct {
	Item     string `json:"item"`
	Resposta string `json:"resposta"`
}

// OverallScore aggregates a breakdown into the single score stored on the
// evaluation row: the mean of the non-nil ratings, rounded to 2 decimals.
// Entries with a nil rating do not participate; an all-nil (or empty)
// breakdown scores 0.
func OverallScore(results []CompatibilityResult) float64 {
	var sum, n float64
	for _, r := range results {
		if r.Rating == nil {
			continue
		}
		sum += float64(*r.Rating)
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(sum/n*100) / 100
}
