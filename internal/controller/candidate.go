// Package controller holds the HTTP handlers for candidates, reviews and
// CV analysis.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ryssellou/recruitment-dashboard/internal/consensus"
	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/gdrive"
	"github.com/ryssellou/recruitment-dashboard/internal/importer"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
	"github.com/ryssellou/recruitment-dashboard/internal/sheets"
	"github.com/ryssellou/recruitment-dashboard/internal/utilities"
	"github.com/ryssellou/recruitment-dashboard/internal/video"
)

// CandidateController struct holds the database connection for candidate-related operations.
type CandidateController struct {
	DB *database.DBinstanceStruct
}

// NewCandidateController creates a new instance of CandidateController with the provided database connection.
func NewCandidateController(db *database.DBinstanceStruct) *CandidateController {
	return &CandidateController{
		DB: db,
	}
}

// ReviewSnippet is the caller's own verdict attached to a candidate listing.
type ReviewSnippet struct {
	Decision string `json:"decision"`
	Rating   *int   `json:"rating"`
}

// CandidateSummary is a candidate enriched with review aggregates for the
// list view.
type CandidateSummary struct {
	model.Candidate
	ReviewCount   int               `json:"reviewCount"`
	Consensus     consensus.Summary `json:"consensus"`
	AverageRating *float64          `json:"averageRating"`
	VideoInfo     *video.Info       `json:"videoInfo"`
	MyReview      *ReviewSnippet    `json:"myReview"`
}

// CVUrls are the Drive links for a candidate's CV document.
type CVUrls struct {
	Download string `json:"download"`
	Preview  string `json:"preview"`
}

// CandidateDetail is the full single-candidate payload.
type CandidateDetail struct {
	model.Candidate
	Reviews       []model.Review    `json:"reviews"`
	Consensus     consensus.Summary `json:"consensus"`
	AverageRating *float64          `json:"averageRating"`
	VideoInfo     *video.Info       `json:"videoInfo"`
	CVUrls        *CVUrls           `json:"cvUrls"`
}

// GetCandidates godoc
//
//	@Summary		List candidates
//	@Description	List candidates with optional filters, each enriched with review aggregates and, for authenticated callers, their own review.
//	@Tags			candidates
//	@Produce		json
//	@Param			role				query	string	false	"Exact role filter"
//	@Param			search				query	string	false	"Substring match on name or email"
//	@Param			cv_analysis_status	query	string	false	"Analysis status filter"
//	@Param			reviewed_by_me		query	string	false	"true or false, keeps only candidates the caller has (not) reviewed"
//	@Success		200	{array}		CandidateSummary
//	@Failure		500	{object}	utilities.ErrorResponse
//	@Router			/candidates [get]
func (ctrl *CandidateController) GetCandidates(c *gin.Context) {
	query := ctrl.DB.Model(&model.Candidate{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("cv_analysis_status"); status != "" {
		query = query.Where("cv_analysis_status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern)
	}

	var candidates []model.Candidate
	if err := query.Order("submitted_at DESC").Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch candidates: %s", err.Error()),
		})
		return
	}

	reviewsByCandidate, err := ctrl.reviewsFor(candidates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch reviews: %s", err.Error()),
		})
		return
	}

	reviewer, identified := reviewerFrom(c)

	summaries := make([]CandidateSummary, 0, len(candidates))
	for _, candidate := range candidates {
		reviews := reviewsByCandidate[candidate.ID]

		summary := CandidateSummary{
			Candidate:     candidate,
			ReviewCount:   len(reviews),
			Consensus:     consensus.Calculate(reviews),
			AverageRating: consensus.AverageRating(reviews),
			VideoInfo:     video.Parse(valueOf(candidate.VideoLink)),
		}

		if identified {
			for _, r := range reviews {
				if r.ReviewerEmail == reviewer.Email {
					summary.MyReview = &ReviewSnippet{Decision: r.Decision, Rating: r.Rating}
					break
				}
			}
		}

		summaries = append(summaries, summary)
	}

	switch c.Query("reviewed_by_me") {
	case "true":
		summaries = keepSummaries(summaries, func(s CandidateSummary) bool { return s.MyReview != nil })
	case "false":
		summaries = keepSummaries(summaries, func(s CandidateSummary) bool { return s.MyReview == nil })
	}

	c.JSON(http.StatusOK, summaries)
}

// GetCandidateByID godoc
//
//	@Summary		Get one candidate
//	@Description	Return a candidate with its full review list, consensus, video metadata and CV document links.
//	@Tags			candidates
//	@Produce		json
//	@Param			id	path		int	true	"Candidate id"
//	@Success		200	{object}	CandidateDetail
//	@Failure		404	{object}	utilities.ErrorResponse
//	@Failure		500	{object}	utilities.ErrorResponse
//	@Router			/candidates/{id} [get]
func (ctrl *CandidateController) GetCandidateByID(c *gin.Context) {
	var candidate model.Candidate
	err := ctrl.DB.Where("id = ?", c.Param("id")).First(&candidate).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: "Candidate not found",
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve candidate: %s", err.Error()),
		})
		return
	}

	var reviews []model.Review
	if err := ctrl.DB.Where("candidate_id = ?", candidate.ID).
		Order("reviewed_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch reviews: %s", err.Error()),
		})
		return
	}

	detail := CandidateDetail{
		Candidate:     candidate,
		Reviews:       reviews,
		Consensus:     consensus.Calculate(reviews),
		AverageRating: consensus.AverageRating(reviews),
		VideoInfo:     video.Parse(valueOf(candidate.VideoLink)),
	}

	if candidate.CVFileID != nil && *candidate.CVFileID != "" {
		detail.CVUrls = &CVUrls{
			Download: gdrive.DownloadURL(*candidate.CVFileID),
			Preview:  gdrive.PreviewURL(*candidate.CVFileID),
		}
	}

	c.JSON(http.StatusOK, detail)
}

// GetRoles godoc
//
//	@Summary		Distinct candidate roles
//	@Tags			candidates
//	@Produce		json
//	@Success		200	{array}		string
//	@Failure		500	{object}	utilities.ErrorResponse
//	@Router			/candidates/roles [get]
func (ctrl *CandidateController) GetRoles(c *gin.Context) {
	roles := []string{}
	if err := ctrl.DB.Model(&model.Candidate{}).
		Distinct("role").
		Where("role <> ''").
		Order("role").
		Pluck("role", &roles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch roles: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, roles)
}

// SyncCandidates godoc
//
//	@Summary		Import candidates from the configured spreadsheet
//	@Description	Pull every row from the spreadsheet and create or update the matching candidates.
//	@Tags			candidates
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		500	{object}	utilities.ErrorResponse
//	@Security		Bearer
//	@Router			/candidates/sync [post]
func (ctrl *CandidateController) SyncCandidates(c *gin.Context) {
	source, err := sheets.NewClient(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Sync failed: %s", err.Error()),
		})
		return
	}

	result, err := importer.New(ctrl.DB, source).Sync(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Sync failed: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"added":   result.Added,
		"updated": result.Updated,
		"total":   result.Total,
		"message": fmt.Sprintf("Synced %d candidates (%d added, %d updated)", result.Total, result.Added, result.Updated),
	})
}

func (ctrl *CandidateController) reviewsFor(candidates []model.Candidate) (map[uint][]model.Review, error) {
	grouped := make(map[uint][]model.Review, len(candidates))
	if len(candidates) == 0 {
		return grouped, nil
	}

	ids := make([]uint, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.ID)
	}

	var reviews []model.Review
	if err := ctrl.DB.Where("candidate_id IN ?", ids).Find(&reviews).Error; err != nil {
		return nil, err
	}

	for _, review := range reviews {
		grouped[review.CandidateID] = append(grouped[review.CandidateID], review)
	}
	return grouped, nil
}

func reviewerFrom(c *gin.Context) (model.Reviewer, bool) {
	reviewer, err := utilities.ExtractReviewer(c)
	return reviewer, err == nil
}

func keepSummaries(in []CandidateSummary, keep func(CandidateSummary) bool) []CandidateSummary {
	out := in[:0]
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
