// Package analysis drives the CV analysis lifecycle of a candidate:
// pending -> analyzing -> completed | failed. The pipeline itself runs in a
// detached goroutine; the status column on the candidate is the only
// synchronization point.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/gdrive"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
)

// minExtractedChars is the smallest extraction considered usable; anything
// shorter is treated as a failed document.
const minExtractedChars = 50

// Trigger failures the HTTP layer maps to client errors.
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrNoCVFile          = errors.New("candidate has no CV file attached")
	ErrAlreadyAnalyzing  = errors.New("analysis already in progress")
)

// Downloader fetches CV bytes for a Drive file id.
type Downloader interface {
	DownloadFile(ctx context.Context, fileID string) (*gdrive.File, error)
}

// Analyzer turns extracted CV text into a structured payload.
type Analyzer interface {
	AnalyzeCV(ctx context.Context, cvText, role string) (*model.CVAnalysis, error)
}

// ExtractFunc converts document bytes to plain text.
type ExtractFunc func(data []byte, mimeType, fileName string) (string, error)

// Runner owns the analysis pipeline for all candidates.
type Runner struct {
	DB       *database.DBinstanceStruct
	Drive    Downloader
	Extract  ExtractFunc
	Analyzer Analyzer

	wg sync.WaitGroup
}

// NewRunner wires the pipeline stages together.
func NewRunner(db *database.DBinstanceStruct, drive Downloader, extract ExtractFunc, analyzer Analyzer) *Runner {
	return &Runner{DB: db, Drive: drive, Extract: extract, Analyzer: analyzer}
}

// Trigger validates the candidate and flips it to analyzing with a single
// conditional update, so two concurrent triggers cannot both start a
// pipeline. On success the pipeline continues in the background and the
// call returns immediately.
func (r *Runner) Trigger(ctx context.Context, candidateID uint) error {
	var candidate model.Candidate
	if err := r.DB.WithContext(ctx).First(&candidate, candidateID).Error; err != nil {
		return ErrCandidateNotFound
	}

	if candidate.CVFileID == nil || *candidate.CVFileID == "" {
		return ErrNoCVFile
	}

	res := r.DB.WithContext(ctx).Model(&model.Candidate{}).
		Where("id = ? AND cv_analysis_status <> ?", candidateID, model.AnalysisStatusAnalyzing).
		Update("cv_analysis_status", model.AnalysisStatusAnalyzing)
	if res.Error != nil {
		return fmt.Errorf("failed to update analysis status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyAnalyzing
	}

	r.wg.Add(1)
	go func() {
		// The triggering request is gone by now; the pipeline gets its
		// own context.
		defer r.wg.Done()
		r.perform(context.Background(), candidate.ID, *candidate.CVFileID, candidate.Role)
	}()

	return nil
}

// Wait blocks until every in-flight pipeline has reached a terminal state.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) perform(ctx context.Context, candidateID uint, cvFileID, role string) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("analysis pipeline panic for candidate %d: %v", candidateID, rec)
			r.markFailed(ctx, candidateID, fmt.Sprintf("analysis crashed: %v", rec))
		}
	}()

	log.Printf("starting CV analysis for candidate %d, file %s", candidateID, cvFileID)

	if r.Drive == nil || r.Analyzer == nil {
		r.markFailed(ctx, candidateID, "analysis pipeline is not configured")
		return
	}

	file, err := r.Drive.DownloadFile(ctx, cvFileID)
	if err != nil {
		r.markFailed(ctx, candidateID, fmt.Sprintf("failed to download CV: %v", err))
		return
	}

	text, err := r.Extract(file.Data, file.MimeType, file.Name)
	if err != nil {
		r.markFailed(ctx, candidateID, err.Error())
		return
	}
	if len(strings.TrimSpace(text)) < minExtractedChars {
		r.markFailed(ctx, candidateID, "could not extract sufficient text from CV")
		return
	}

	result, err := r.Analyzer.AnalyzeCV(ctx, text, role)
	if err != nil {
		r.markFailed(ctx, candidateID, fmt.Sprintf("analysis call failed: %v", err))
		return
	}

	if err := r.DB.WithContext(ctx).Model(&model.Candidate{}).
		Where("id = ?", candidateID).
		Updates(map[string]interface{}{
			"cv_analysis_status": model.AnalysisStatusCompleted,
			"cv_analysis":        result,
		}).Error; err != nil {
		log.Printf("failed to save analysis result for candidate %d: %v", candidateID, err)
		return
	}

	log.Printf("CV analysis completed for candidate %d", candidateID)
}

// markFailed records the terminal failed state with a human-readable reason
// so the candidate never sticks in analyzing.
func (r *Runner) markFailed(ctx context.Context, candidateID uint, message string) {
	log.Printf("CV analysis failed for candidate %d: %s", candidateID, message)
	if err := r.DB.WithContext(ctx).Model(&model.Candidate{}).
		Where("id = ?", candidateID).
		Updates(map[string]interface{}{
			"cv_analysis_status": model.AnalysisStatusFailed,
			"cv_analysis":        &model.CVAnalysis{Error: message},
		}).Error; err != nil {
		log.Printf("failed to record analysis failure for candidate %d: %v", candidateID, err)
	}
}
