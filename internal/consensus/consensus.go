// Package consensus turns the stored reviews of one candidate into an
// agreement classification and a rating summary. It is recomputed on every
// read; nothing here is cached on the candidate.
package consensus

import "github.com/ryssellou/recruitment-dashboard/internal/model"

// Agreement levels across a candidate's reviews.
const (
	LevelNone      = "none"
	LevelSingle    = "single"
	LevelUnanimous = "unanimous"
	LevelStrong    = "strong"
	LevelMixed     = "mixed"
)

// strongThreshold is the share of the most frequent decision needed to call
// the agreement "strong". Two out of three must qualify, so this is an exact
// two-thirds rather than a rounded 0.67.
const strongThreshold = 2.0 / 3.0

// Summary is the classification consumed by both listing and detail views.
type Summary struct {
	Level            string  `json:"level"`
	Label            string  `json:"label"`
	Color            string  `json:"color"`
	MajorityDecision *string `json:"majorityDecision,omitempty"`
}

// decisionOrder is the tie-break rule: when two decisions are equally
// frequent the earlier one in this list wins, so a fixed input set always
// classifies the same way.
var decisionOrder = []string{model.DecisionTicked, model.DecisionCrossed, model.DecisionQuestion}

func decisionColor(decision string) string {
	switch decision {
	case model.DecisionTicked:
		return "green"
	case model.DecisionCrossed:
		return "red"
	default:
		return "yellow"
	}
}

// Calculate classifies the agreement level across reviews. Reviews without a
// decision are ignored; the decision field is mandatory on submission, so in
// practice every stored review counts.
func Calculate(reviews []model.Review) Summary {
	if len(reviews) == 0 {
		return Summary{Level: LevelNone, Label: "No Reviews", Color: "gray"}
	}

	counts := map[string]int{}
	decided := 0
	for _, r := range reviews {
		if r.Decision == "" {
			continue
		}
		counts[r.Decision]++
		decided++
	}

	if decided == 0 {
		return Summary{Level: LevelNone, Label: "No Decisions", Color: "gray"}
	}

	if decided == 1 {
		return Summary{Level: LevelSingle, Label: "1 Review", Color: "blue"}
	}

	majority, maxCount := majorityOf(counts)
	ratio := float64(maxCount) / float64(decided)

	switch {
	case ratio == 1:
		return Summary{
			Level:            LevelUnanimous,
			Label:            "Unanimous",
			Color:            decisionColor(majority),
			MajorityDecision: &majority,
		}
	case ratio >= strongThreshold:
		return Summary{
			Level:            LevelStrong,
			Label:            "Strong Consensus",
			Color:            decisionColor(majority),
			MajorityDecision: &majority,
		}
	default:
		return Summary{Level: LevelMixed, Label: "Mixed", Color: "orange"}
	}
}

func majorityOf(counts map[string]int) (string, int) {
	majority := decisionOrder[0]
	maxCount := 0
	for _, d := range decisionOrder {
		if counts[d] > maxCount {
			maxCount = counts[d]
			majority = d
		}
	}
	return majority, maxCount
}

// MajorityDecision returns the most frequent decision among reviews and its
// count. Ties resolve in favor of the earlier decision in the fixed order
// ticked > crossed > question. ok is false when no review has a decision.
func MajorityDecision(reviews []model.Review) (decision string, count int, ok bool) {
	counts := map[string]int{}
	for _, r := range reviews {
		if r.Decision != "" {
			counts[r.Decision]++
		}
	}
	if len(counts) == 0 {
		return "", 0, false
	}
	decision, count = majorityOf(counts)
	return decision, count, true
}

// AverageRating is the mean of the non-empty ratings, or nil when no review
// carries one. Zero ratings count as absent.
func AverageRating(reviews []model.Review) *float64 {
	sum, n := 0, 0
	for _, r := range reviews {
		if r.Rating == nil || *r.Rating == 0 {
			continue
		}
		sum += *r.Rating
		n++
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}
