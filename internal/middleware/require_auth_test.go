package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
	"github.com/ryssellou/recruitment-dashboard/internal/testutil"
	"github.com/ryssellou/recruitment-dashboard/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	testDB = database.GetTestDB()
	m.Run()
}

func newRouter(handler gin.HandlerFunc, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", append(middlewares, handler)...)
	return r
}

func whoAmI(c *gin.Context) {
	reviewer, err := utilities.ExtractReviewer(c)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"email": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": reviewer.Email})
}

func seedSession(t *testing.T, email string, age time.Duration) string {
	t.Helper()
	session := model.Session{
		Token:         uuid.NewString(),
		ReviewerEmail: email,
		ReviewerName:  "Middleware Tester",
		CreatedAt:     time.Now().Add(-age),
	}
	require.NoError(t, testDB.Create(&session).Error)
	return session.Token
}

func TestRequireAuthAcceptsLiveSession(t *testing.T) {
	token := seedSession(t, "gatekeeper@example.com", time.Hour)
	r := newRouter(whoAmI, RequireAuth(testDB))

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gatekeeper@example.com", resp["email"])
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	r := newRouter(whoAmI, RequireAuth(testDB))

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, resp["error"])
}

func TestRequireAuthRejectsUnknownToken(t *testing.T) {
	r := newRouter(whoAmI, RequireAuth(testDB))

	rec, resp := testutil.MakeJSONRequest(nil, uuid.NewString(), r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired session", resp["error"])
}

func TestRequireAuthRejectsExpiredSession(t *testing.T) {
	token := seedSession(t, "stale@example.com", 200*time.Hour)
	r := newRouter(whoAmI, RequireAuth(testDB))

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthWithToken(t *testing.T) {
	token := seedSession(t, "optional@example.com", time.Hour)
	r := newRouter(whoAmI, OptionalAuth(testDB))

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "optional@example.com", resp["email"])
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	r := newRouter(whoAmI, OptionalAuth(testDB))

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/protected", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, resp["email"])
}
