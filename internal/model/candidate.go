// Package model contain gorm model for recording data to database
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

var (
	// AnalysisStatusPending indicates that the candidate CV has not been analyzed yet
	AnalysisStatusPending = "pending"
	// AnalysisStatusAnalyzing indicates that an analysis pipeline is currently running
	AnalysisStatusAnalyzing = "analyzing"
	// AnalysisStatusCompleted indicates that the analysis finished and a result is attached
	AnalysisStatusCompleted = "completed"
	// AnalysisStatusFailed indicates that the analysis pipeline failed with an error payload
	AnalysisStatusFailed = "failed"
)

// Candidate represents one imported application row from the recruitment sheet.
// SheetsRowID is the stable fingerprint of the external row and never changes
// after creation; re-importing the same row updates the record in place.
type Candidate struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	SheetsRowID string `gorm:"uniqueIndex;not null" json:"sheets_row_id"`

	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Country     *string   `json:"country"`
	Role        string    `json:"role"`
	VideoLink   *string   `json:"video_link"`
	CVFileID    *string   `json:"cv_file_id"`
	LinkedinURL *string   `json:"linkedin_url"`
	SubmittedAt time.Time `gorm:"type:timestamp" json:"submitted_at"`

	CVAnalysisStatus string      `gorm:"type:text;default:pending" json:"cv_analysis_status"`
	CVAnalysis       *CVAnalysis `gorm:"type:text" json:"cv_analysis"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CVAnalysis is the structured result of the CV analysis pipeline. It is
// stored as a JSON text column; Error is set instead of the other fields
// when the pipeline terminated in the failed state.
type CVAnalysis struct {
	Skills            []string `json:"skills,omitempty"`
	ExperienceSummary string   `json:"experienceSummary,omitempty"`
	YearsOfExperience *float64 `json:"yearsOfExperience,omitempty"`
	Education         []string `json:"education,omitempty"`
	Strengths         []string `json:"strengths,omitempty"`
	Concerns          []string `json:"concerns,omitempty"`
	OverallFit        string   `json:"overallFit,omitempty"`

	Error string `json:"error,omitempty"`

	AnalyzedAt string `json:"analyzedAt,omitempty"`
	Model      string `json:"model,omitempty"`
}

// Value serializes the analysis payload for storage.
func (a CVAnalysis) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the analysis payload from its column value.
func (a *CVAnalysis) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("cannot scan cv analysis from %T", value)
	}
}
