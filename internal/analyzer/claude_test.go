package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnalysis_ExtractsEmbeddedJSON(t *testing.T) {
	content := "Here is the assessment you asked for:\n" +
		`{"skills":["Go","SQL"],"experienceSummary":"8 years backend","yearsOfExperience":8,` +
		`"education":["BSc Computer Science"],"strengths":["APIs"],"concerns":["No frontend"],` +
		`"overallFit":"Strong fit"}` +
		"\nLet me know if you need more."

	analysis, err := ParseAnalysis(content, "test-model")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, analysis.Skills)
	assert.Equal(t, "8 years backend", analysis.ExperienceSummary)
	assert.NotNil(t, analysis.YearsOfExperience)
	assert.InDelta(t, 8, *analysis.YearsOfExperience, 1e-9)
	assert.Equal(t, "Strong fit", analysis.OverallFit)
	assert.Equal(t, "test-model", analysis.Model)
	assert.NotEmpty(t, analysis.AnalyzedAt)
}

func TestParseAnalysis_NullYears(t *testing.T) {
	analysis, err := ParseAnalysis(`{"skills":[],"yearsOfExperience":null,"overallFit":"ok"}`, "m")
	assert.NoError(t, err)
	assert.Nil(t, analysis.YearsOfExperience)
}

func TestParseAnalysis_NoJSONObject(t *testing.T) {
	_, err := ParseAnalysis("I cannot analyze this document.", "m")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object")
}

func TestParseAnalysis_MalformedJSON(t *testing.T) {
	_, err := ParseAnalysis(`{"skills": [unquoted]}`, "m")
	assert.Error(t, err)
}
