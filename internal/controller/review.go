package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ryssellou/recruitment-dashboard/internal/consensus"
	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
	"github.com/ryssellou/recruitment-dashboard/internal/utilities"
)

// ReviewController struct holds the database connection for review-related operations.
type ReviewController struct {
	DB *database.DBinstanceStruct
}

// NewReviewController creates a new instance of ReviewController with the provided database connection.
func NewReviewController(db *database.DBinstanceStruct) *ReviewController {
	return &ReviewController{
		DB: db,
	}
}

type submitReviewRequest struct {
	CandidateID uint    `json:"candidate_id"`
	Decision    string  `json:"decision"`
	Rating      *int    `json:"rating"`
	Comments    *string `json:"comments"`
}

// ReviewStats summarises the reviews of one candidate.
type ReviewStats struct {
	Count         int            `json:"count"`
	Decisions     map[string]int `json:"decisions"`
	AverageRating *float64       `json:"averageRating"`
	Consensus     string         `json:"consensus"`
}

// SubmitReview godoc
//
//	@Summary		Submit or update a review
//	@Description	Record the caller's verdict on a candidate. A second submission by the same reviewer replaces the first.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			body	body		submitReviewRequest	true	"Review payload"
//	@Success		200		{object}	model.Review
//	@Failure		400		{object}	utilities.ErrorResponse
//	@Failure		404		{object}	utilities.ErrorResponse
//	@Failure		500		{object}	utilities.ErrorResponse
//	@Security		Bearer
//	@Router			/reviews [post]
func (ctrl *ReviewController) SubmitReview(c *gin.Context) {
	reviewer, err := utilities.ExtractReviewer(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	var body submitReviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if body.CandidateID == 0 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "candidate_id is required",
		})
		return
	}
	if !model.ValidDecision(body.Decision) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid decision. Must be ticked, crossed, or question",
		})
		return
	}
	if body.Rating != nil && (*body.Rating < 1 || *body.Rating > 5) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Rating must be an integer between 1 and 5",
		})
		return
	}

	err = ctrl.DB.First(&model.Candidate{}, body.CandidateID).Error
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

	review := model.Review{
		CandidateID:   body.CandidateID,
		ReviewerEmail: reviewer.Email,
		ReviewerName:  reviewer.Name,
		Decision:      body.Decision,
		Rating:        body.Rating,
		Comments:      body.Comments,
		ReviewedAt:    time.Now(),
	}

	// One review per reviewer per candidate; resubmission overwrites.
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "candidate_id"}, {Name: "reviewer_email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"reviewer_name", "decision", "rating", "comments", "reviewed_at",
		}),
	}).Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to save review: %s", err.Error()),
		})
		return
	}

	var saved model.Review
	if err := ctrl.DB.Where("candidate_id = ? AND reviewer_email = ?", body.CandidateID, reviewer.Email).
		First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to load saved review: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// GetReviewsByCandidate godoc
//
//	@Summary		Reviews for one candidate
//	@Tags			reviews
//	@Produce		json
//	@Param			candidateId	path		int	true	"Candidate id"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		500			{object}	utilities.ErrorResponse
//	@Security		Bearer
//	@Router			/reviews/candidate/{candidateId} [get]
func (ctrl *ReviewController) GetReviewsByCandidate(c *gin.Context) {
	var reviews []model.Review
	if err := ctrl.DB.Where("candidate_id = ?", c.Param("candidateId")).
		Order("reviewed_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch reviews: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"stats":   statsOf(reviews),
	})
}

// GetMyReviews godoc
//
//	@Summary		Reviews submitted by the caller
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{array}		model.Review
//	@Failure		401	{object}	utilities.ErrorResponse
//	@Failure		500	{object}	utilities.ErrorResponse
//	@Security		Bearer
//	@Router			/reviews/my [get]
func (ctrl *ReviewController) GetMyReviews(c *gin.Context) {
	reviewer, err := utilities.ExtractReviewer(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	var reviews []model.Review
	if err := ctrl.DB.Where("reviewer_email = ?", reviewer.Email).
		Order("reviewed_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch reviews: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// statsOf reduces a review list to count, per-decision tallies, average
// rating and a coarse consensus level. Fewer than two decisions never count
// as consensus here.
func statsOf(reviews []model.Review) ReviewStats {
	stats := ReviewStats{
		Count:     len(reviews),
		Decisions: map[string]int{},
		Consensus: consensus.LevelNone,
	}

	for _, review := range reviews {
		if review.Decision != "" {
			stats.Decisions[review.Decision]++
		}
	}
	stats.AverageRating = consensus.AverageRating(reviews)

	total := 0
	max := 0
	for _, n := range stats.Decisions {
		total += n
		if n > max {
			max = n
		}
	}
	if total >= 2 {
		switch {
		case max == total:
			stats.Consensus = consensus.LevelUnanimous
		case 3*max >= 2*total:
			stats.Consensus = consensus.LevelStrong
		default:
			stats.Consensus = consensus.LevelMixed
		}
	}

	return stats
}
