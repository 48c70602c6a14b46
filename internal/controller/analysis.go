package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ryssellou/recruitment-dashboard/internal/analysis"
	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
	"github.com/ryssellou/recruitment-dashboard/internal/utilities"
)

// AnalysisController exposes the CV analysis trigger and status endpoints.
type AnalysisController struct {
	DB     *database.DBinstanceStruct
	Runner *analysis.Runner
}

// NewAnalysisController creates a new instance of AnalysisController.
func NewAnalysisController(db *database.DBinstanceStruct, runner *analysis.Runner) *AnalysisController {
	return &AnalysisController{
		DB:     db,
		Runner: runner,
	}
}

// TriggerAnalysis godoc
//
//	@Summary		Start CV analysis
//	@Description	Flip the candidate to analyzing and run the analysis pipeline in the background.
//	@Tags			analysis
//	@Produce		json
//	@Param			candidateId	path		int	true	"Candidate id"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400			{object}	utilities.ErrorResponse
//	@Failure		404			{object}	utilities.ErrorResponse
//	@Failure		409			{object}	utilities.ErrorResponse
//	@Failure		500			{object}	utilities.ErrorResponse
//	@Security		Bearer
//	@Router			/analysis/trigger/{candidateId} [post]
func (ctrl *AnalysisController) TriggerAnalysis(c *gin.Context) {
	candidateID, err := strconv.ParseUint(c.Param("candidateId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid candidate id",
		})
		return
	}

	err = ctrl.Runner.Trigger(c.Request.Context(), uint(candidateID))
	switch {
	case errors.Is(err, analysis.ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: "Candidate not found",
		})
	case errors.Is(err, analysis.ErrNoCVFile):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Candidate has no CV file to analyze",
		})
	case errors.Is(err, analysis.ErrAlreadyAnalyzing):
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: "Analysis already in progress",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to start analysis: %s", err.Error()),
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Analysis started",
			"status":  model.AnalysisStatusAnalyzing,
		})
	}
}

// GetAnalysis godoc
//
//	@Summary		CV analysis status
//	@Description	Return the analysis status and, when finished, the structured result or failure reason.
//	@Tags			analysis
//	@Produce		json
//	@Param			candidateId	path		int	true	"Candidate id"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	utilities.ErrorResponse
//	@Failure		500			{object}	utilities.ErrorResponse
//	@Security		Bearer
//	@Router			/analysis/{candidateId} [get]
func (ctrl *AnalysisController) GetAnalysis(c *gin.Context) {
	var candidate model.Candidate
	err := ctrl.DB.Where("id = ?", c.Param("candidateId")).First(&candidate).Error
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

	c.JSON(http.StatusOK, gin.H{
		"candidateId": candidate.ID,
		"status":      candidate.CVAnalysisStatus,
		"analysis":    candidate.CVAnalysis,
	})
}
