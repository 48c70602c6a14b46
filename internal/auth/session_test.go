package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
	"github.com/ryssellou/recruitment-dashboard/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	testDB = database.GetTestDB()
	m.Run()
}

func createSession(t *testing.T, email, name string, age time.Duration) model.Session {
	t.Helper()
	session := model.Session{
		Token:         uuid.NewString(),
		ReviewerEmail: email,
		ReviewerName:  name,
		CreatedAt:     time.Now().Add(-age),
	}
	require.NoError(t, testDB.Create(&session).Error)
	return session
}

func TestLoginNormalizesIdentity(t *testing.T) {
	ctrl := NewSessionController(testDB)

	rec, resp, err := utilities.SimulateAPICall(ctrl.Login, "/api/auth/login", http.MethodPost, map[string]string{
		"name":  "  Dana Reviewer  ",
		"email": "  Dana.Reviewer@Example.COM ",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp["token"])

	reviewer := resp["reviewer"].(map[string]interface{})
	assert.Equal(t, "Dana Reviewer", reviewer["name"])
	assert.Equal(t, "dana.reviewer@example.com", reviewer["email"])

	var session model.Session
	require.NoError(t, testDB.Where("token = ?", resp["token"]).First(&session).Error)
	assert.Equal(t, "dana.reviewer@example.com", session.ReviewerEmail)
}

func TestLoginRejectsBadInput(t *testing.T) {
	ctrl := NewSessionController(testDB)

	cases := []struct {
		name  string
		body  map[string]string
	}{
		{"missing name", map[string]string{"email": "someone@example.com"}},
		{"missing email", map[string]string{"name": "Someone"}},
		{"blank name", map[string]string{"name": "   ", "email": "someone@example.com"}},
		{"malformed email", map[string]string{"name": "Someone", "email": "not-an-email"}},
		{"email without tld", map[string]string{"name": "Someone", "email": "someone@host"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp, err := utilities.SimulateAPICall(ctrl.Login, "/api/auth/login", http.MethodPost, tc.body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	session := createSession(t, "valid@example.com", "Valid Reviewer", time.Hour)

	reviewer, err := ValidateToken(testDB, session.Token)

	require.NoError(t, err)
	assert.Equal(t, "valid@example.com", reviewer.Email)
	assert.Equal(t, "Valid Reviewer", reviewer.Name)
}

func TestValidateTokenUnknown(t *testing.T) {
	_, err := ValidateToken(testDB, uuid.NewString())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestValidateTokenExpiryBoundary(t *testing.T) {
	// A session exactly at the maximum age is already expired.
	session := createSession(t, "boundary@example.com", "Boundary", SessionMaxAge())

	_, err := ValidateToken(testDB, session.Token)

	assert.ErrorIs(t, err, ErrNotAuthenticated)

	var count int64
	testDB.Model(&model.Session{}).Where("token = ?", session.Token).Count(&count)
	assert.Zero(t, count, "expired session should be deleted on validation")
}

func TestValidateTokenJustUnderMaxAge(t *testing.T) {
	session := createSession(t, "fresh@example.com", "Fresh", SessionMaxAge()-time.Minute)

	reviewer, err := ValidateToken(testDB, session.Token)

	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", reviewer.Email)
}

func TestLogoutDeletesSessionAndIsIdempotent(t *testing.T) {
	session := createSession(t, "leaving@example.com", "Leaving", time.Hour)
	ctrl := NewSessionController(testDB)

	logout := func() (int, map[string]interface{}) {
		rec, resp, err := utilities.SimulateAPICallWithToken(ctrl.Logout, "/api/auth/logout", http.MethodPost, nil, session.Token)
		require.NoError(t, err)
		return rec.Code, resp
	}

	code, resp := logout()
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Logged out", resp["message"])

	var count int64
	testDB.Model(&model.Session{}).Where("token = ?", session.Token).Count(&count)
	assert.Zero(t, count)

	// Second logout with the same token still succeeds.
	code, _ = logout()
	assert.Equal(t, http.StatusOK, code)
}

func TestSweepExpiredSessions(t *testing.T) {
	expired := createSession(t, "old@example.com", "Old", SessionMaxAge()+time.Hour)
	live := createSession(t, "young@example.com", "Young", time.Hour)

	removed, err := SweepExpiredSessions(testDB)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))

	var count int64
	testDB.Model(&model.Session{}).Where("token = ?", expired.Token).Count(&count)
	assert.Zero(t, count)

	testDB.Model(&model.Session{}).Where("token = ?", live.Token).Count(&count)
	assert.EqualValues(t, 1, count)
}
