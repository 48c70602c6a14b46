// Package importer reconciles the external spreadsheet feed against the
// candidate table. Re-running it over an unchanged feed is a no-op: each row
// maps to a stable fingerprint and existing candidates are updated in place.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"gorm.io/gorm"

	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/gdrive"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
)

// Column layout of the form responses sheet (A through I).
const (
	colTimestamp = iota
	colName
	colEmail
	colPhone
	colCountry
	colRole
	colVideoLink
	colCVFileLink
	colLinkedinURL
)

// RowSource fetches the raw data rows of the external feed. A transport
// failure aborts the whole sync run before any row is processed.
type RowSource interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// Result summarizes one sync run. Total counts non-blank rows only.
type Result struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

// Importer upserts feed rows into the candidate table.
type Importer struct {
	DB     *database.DBinstanceStruct
	Source RowSource
}

// New creates an Importer bound to a database and a row source.
func New(db *database.DBinstanceStruct, source RowSource) *Importer {
	return &Importer{DB: db, Source: source}
}

var fingerprintSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Fingerprint derives the dedup key of a feed row from its sheet position
// and its raw timestamp and email cells. Email alone is not enough: the same
// person may legitimately reapply at a different time.
func Fingerprint(rowNumber int, timestamp, email string) string {
	raw := fmt.Sprintf("row_%d_%s_%s", rowNumber, timestamp, email)
	return fingerprintSanitizer.ReplaceAllString(raw, "_")
}

// timestampLayouts are the formats Google Forms writes, most specific first.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"1/2/2006",
	"2006-01-02",
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Sync pulls the feed and creates or updates one candidate per non-blank
// row. Updates overwrite the import-sourced fields in full and never touch
// the analysis status or payload.
func (im *Importer) Sync(ctx context.Context) (*Result, error) {
	rows, err := im.Source.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("candidate sync aborted: %w", err)
	}

	result := &Result{}

	for i, row := range rows {
		if blank(row) {
			continue
		}
		result.Total++

		// +2 accounts for the header row and 1-based sheet numbering.
		rowNumber := i + 2
		timestamp := cell(row, colTimestamp)
		email := cell(row, colEmail)
		fingerprint := Fingerprint(rowNumber, timestamp, email)

		candidate := model.Candidate{
			SheetsRowID: fingerprint,
			Name:        cell(row, colName),
			Email:       email,
			Phone:       optional(cell(row, colPhone)),
			Country:     optional(cell(row, colCountry)),
			Role:        cell(row, colRole),
			VideoLink:   optional(cell(row, colVideoLink)),
			CVFileID:    optional(gdrive.ExtractFileID(cell(row, colCVFileLink))),
			LinkedinURL: optional(cell(row, colLinkedinURL)),
			SubmittedAt: parseTimestamp(timestamp),
		}
		if candidate.Name == "" {
			candidate.Name = "Unknown"
		}
		if candidate.Email == "" {
			candidate.Email = "unknown@email.com"
		}
		if candidate.Role == "" {
			candidate.Role = "Not specified"
		}

		var existing model.Candidate
		err := im.DB.WithContext(ctx).Where("sheets_row_id = ?", fingerprint).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			candidate.CVAnalysisStatus = model.AnalysisStatusPending
			if err := im.DB.WithContext(ctx).Create(&candidate).Error; err != nil {
				return nil, fmt.Errorf("failed to create candidate for row %d: %w", rowNumber, err)
			}
			result.Added++

		case err == nil:
			// Full overwrite of the import-sourced fields; the analysis
			// columns belong to the analysis lifecycle and stay untouched.
			update := im.DB.WithContext(ctx).Model(&existing).
				Select("name", "email", "phone", "country", "role",
					"video_link", "cv_file_id", "linkedin_url", "submitted_at").
				Updates(map[string]interface{}{
					"name":         candidate.Name,
					"email":        candidate.Email,
					"phone":        candidate.Phone,
					"country":      candidate.Country,
					"role":         candidate.Role,
					"video_link":   candidate.VideoLink,
					"cv_file_id":   candidate.CVFileID,
					"linkedin_url": candidate.LinkedinURL,
					"submitted_at": candidate.SubmittedAt,
				})
			if update.Error != nil {
				return nil, fmt.Errorf("failed to update candidate for row %d: %w", rowNumber, update.Error)
			}
			result.Updated++

		default:
			return nil, fmt.Errorf("failed to look up candidate for row %d: %w", rowNumber, err)
		}
	}

	log.Printf("candidate sync: %d added, %d updated, %d total", result.Added, result.Updated, result.Total)
	return result, nil
}
