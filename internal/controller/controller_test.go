package controller

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ryssellou/recruitment-dashboard/internal/analysis"
	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/gdrive"
	"github.com/ryssellou/recruitment-dashboard/internal/middleware"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	testDB = database.GetTestDB()
	m.Run()
}

// setupRouter mirrors the server's route layout for the packages under test.
func setupRouter(runner *analysis.Runner) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")

	candidateCtrl := NewCandidateController(testDB)
	candidates := api.Group("/candidates", middleware.OptionalAuth(testDB))
	candidates.GET("", candidateCtrl.GetCandidates)
	candidates.GET("/roles", candidateCtrl.GetRoles)
	candidates.GET("/:id", candidateCtrl.GetCandidateByID)

	reviewCtrl := NewReviewController(testDB)
	reviews := api.Group("/reviews", middleware.RequireAuth(testDB))
	reviews.POST("", reviewCtrl.SubmitReview)
	reviews.GET("/candidate/:candidateId", reviewCtrl.GetReviewsByCandidate)
	reviews.GET("/my", reviewCtrl.GetMyReviews)

	if runner != nil {
		analysisCtrl := NewAnalysisController(testDB, runner)
		analysisGroup := api.Group("/analysis", middleware.RequireAuth(testDB))
		analysisGroup.POST("/trigger/:candidateId", analysisCtrl.TriggerAnalysis)
		analysisGroup.GET("/:candidateId", analysisCtrl.GetAnalysis)
	}

	api.GET("/google/status", GoogleStatus)

	return r
}

func loginAs(t *testing.T, email, name string) string {
	t.Helper()
	session := model.Session{
		Token:         uuid.NewString(),
		ReviewerEmail: email,
		ReviewerName:  name,
	}
	require.NoError(t, testDB.Create(&session).Error)
	t.Cleanup(func() {
		testDB.Where("token = ?", session.Token).Delete(&model.Session{})
	})
	return session.Token
}

func addReview(t *testing.T, candidateID uint, email, decision string, rating *int) {
	t.Helper()
	review := model.Review{
		CandidateID:   candidateID,
		ReviewerEmail: email,
		ReviewerName:  "Reviewer " + email,
		Decision:      decision,
		Rating:        rating,
		ReviewedAt:    time.Now(),
	}
	require.NoError(t, testDB.Create(&review).Error)
	t.Cleanup(func() {
		testDB.Where("reviewer_email = ?", email).Delete(&model.Review{})
	})
}

func intPtr(i int) *int {
	return &i
}

type stubDrive struct {
	file *gdrive.File
	err  error
}

func (s *stubDrive) DownloadFile(ctx context.Context, fileID string) (*gdrive.File, error) {
	return s.file, s.err
}

type stubAnalyzer struct {
	result *model.CVAnalysis
	err    error
}

func (s *stubAnalyzer) AnalyzeCV(ctx context.Context, cvText, role string) (*model.CVAnalysis, error) {
	return s.result, s.err
}
