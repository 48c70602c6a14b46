package controller

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryssellou/recruitment-dashboard/internal/analysis"
	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/extract"
	"github.com/ryssellou/recruitment-dashboard/internal/gdrive"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
	"github.com/ryssellou/recruitment-dashboard/internal/testutil"
)

func resetAnalysis(t *testing.T, id uint) {
	t.Helper()
	require.NoError(t, testDB.Model(&model.Candidate{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"cv_analysis_status": model.AnalysisStatusPending,
			"cv_analysis":        nil,
		}).Error)
}

func TestTriggerAnalysisInvalidID(t *testing.T) {
	token := loginAs(t, "trigger-bad-id@example.com", "Trigger Tester")
	runner := analysis.NewRunner(testDB, &stubDrive{}, extract.Text, &stubAnalyzer{})
	r := setupRouter(runner)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/analysis/trigger/abc", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid candidate id", resp["error"])
}

func TestTriggerAnalysisUnknownCandidate(t *testing.T) {
	token := loginAs(t, "trigger-ghost@example.com", "Trigger Tester")
	runner := analysis.NewRunner(testDB, &stubDrive{}, extract.Text, &stubAnalyzer{})
	r := setupRouter(runner)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/analysis/trigger/99999", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Candidate not found", resp["error"])
}

func TestTriggerAnalysisWithoutCV(t *testing.T) {
	token := loginAs(t, "trigger-no-cv@example.com", "Trigger Tester")
	runner := analysis.NewRunner(testDB, &stubDrive{}, extract.Text, &stubAnalyzer{})
	r := setupRouter(runner)

	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/api/analysis/trigger/%d", database.TestCandidateData.ID), http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Candidate has no CV file to analyze", resp["error"])
}

func TestTriggerAnalysisConflict(t *testing.T) {
	id := database.TestCandidateBackend.ID
	resetAnalysis(t, id)
	require.NoError(t, testDB.Model(&model.Candidate{}).Where("id = ?", id).
		Update("cv_analysis_status", model.AnalysisStatusAnalyzing).Error)
	t.Cleanup(func() { resetAnalysis(t, id) })

	token := loginAs(t, "trigger-conflict@example.com", "Trigger Tester")
	runner := analysis.NewRunner(testDB, &stubDrive{}, extract.Text, &stubAnalyzer{})
	r := setupRouter(runner)

	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/api/analysis/trigger/%d", id), http.MethodPost)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Analysis already in progress", resp["error"])
}

func TestTriggerAnalysisRunsToCompletion(t *testing.T) {
	id := database.TestCandidateBackend.ID
	resetAnalysis(t, id)
	t.Cleanup(func() { resetAnalysis(t, id) })

	cvText := strings.Repeat("Backend engineer, Go, Postgres, distributed systems. ", 4)
	runner := analysis.NewRunner(testDB,
		&stubDrive{file: &gdrive.File{Data: []byte(cvText), MimeType: "text/plain", Name: "cv.txt"}},
		func(data []byte, mimeType, fileName string) (string, error) { return string(data), nil },
		&stubAnalyzer{result: &model.CVAnalysis{OverallFit: "strong", Skills: []string{"Go"}}},
	)
	token := loginAs(t, "trigger-success@example.com", "Trigger Tester")
	r := setupRouter(runner)

	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/api/analysis/trigger/%d", id), http.MethodPost)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Analysis started", resp["message"])
	assert.Equal(t, model.AnalysisStatusAnalyzing, resp["status"])

	runner.Wait()

	rec, resp = testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/api/analysis/%d", id), http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.AnalysisStatusCompleted, resp["status"])

	payload := resp["analysis"].(map[string]interface{})
	assert.Equal(t, "strong", payload["overallFit"])
}

func TestGetAnalysisPending(t *testing.T) {
	id := database.TestCandidateDesigner.ID
	resetAnalysis(t, id)

	token := loginAs(t, "analysis-reader@example.com", "Analysis Reader")
	runner := analysis.NewRunner(testDB, &stubDrive{}, extract.Text, &stubAnalyzer{})
	r := setupRouter(runner)

	rec, resp := testutil.MakeJSONRequest(nil, token, r,
		fmt.Sprintf("/api/analysis/%d", id), http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.AnalysisStatusPending, resp["status"])
	assert.Nil(t, resp["analysis"])
	assert.EqualValues(t, id, resp["candidateId"])
}

func TestGetAnalysisUnknownCandidate(t *testing.T) {
	token := loginAs(t, "analysis-ghost@example.com", "Analysis Reader")
	runner := analysis.NewRunner(testDB, &stubDrive{}, extract.Text, &stubAnalyzer{})
	r := setupRouter(runner)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/analysis/99999", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Candidate not found", resp["error"])
}
