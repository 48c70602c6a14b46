package model

import "time"

var (
	// DecisionTicked means the reviewer wants to move the candidate forward
	DecisionTicked = "ticked"
	// DecisionCrossed means the reviewer rejects the candidate
	DecisionCrossed = "crossed"
	// DecisionQuestion means the reviewer is unsure and wants a second opinion
	DecisionQuestion = "question"
)

// ValidDecision reports whether s is one of the three reviewer verdicts.
func ValidDecision(s string) bool {
	return s == DecisionTicked || s == DecisionCrossed || s == DecisionQuestion
}

// Review is one reviewer's verdict on one candidate. The composite unique
// index keeps at most one row per (candidate, reviewer email) pair; a repeat
// submission overwrites the row in place.
type Review struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CandidateID uint      `gorm:"not null;index;uniqueIndex:idx_candidate_reviewer" json:"candidate_id"`
	Candidate   Candidate `gorm:"foreignKey:CandidateID;references:ID" json:"-"`

	ReviewerEmail string `gorm:"not null;uniqueIndex:idx_candidate_reviewer" json:"reviewer_email"`
	ReviewerName  string `json:"reviewer_name"`

	Decision   string    `gorm:"type:text" json:"decision"`
	Rating     *int      `json:"rating"`
	Comments   *string   `json:"comments"`
	ReviewedAt time.Time `gorm:"type:timestamp" json:"reviewed_at"`
}
