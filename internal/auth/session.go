// Package auth implements the reviewer session layer: name+email login,
// opaque bearer tokens backed by session rows, and expiry of stale sessions.
package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/model"
	"github.com/ryssellou/recruitment-dashboard/internal/utilities"
)

const defaultSessionMaxAge = 168 * time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrNotAuthenticated is returned for any token that does not map to a live
// session. A token that never existed, was logged out, or aged past the
// maximum is deliberately indistinguishable.
var ErrNotAuthenticated = errors.New("not authenticated")

// SessionMaxAge reads SESSION_MAX_AGE_HOURS, falling back to 168 hours.
func SessionMaxAge() time.Duration {
	if raw := os.Getenv("SESSION_MAX_AGE_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultSessionMaxAge
}

// SessionController handles login, identity lookup and logout.
type SessionController struct {
	DB *database.DBinstanceStruct
}

// NewSessionController will return session controller with provided database instance
func NewSessionController(db *database.DBinstanceStruct) SessionController {
	return SessionController{DB: db}
}

type loginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token    string         `json:"token"`
	Reviewer model.Reviewer `json:"reviewer"`
}

// Login godoc
//
//	@Summary		Reviewer login
//	@Description	Create a session for the given reviewer name and email. No password is involved; identity is asserted.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Reviewer name and email"
//	@Success		200		{object}	loginResponse
//	@Failure		400		{object}	utilities.ErrorResponse
//	@Failure		500		{object}	utilities.ErrorResponse
//	@Router			/auth/login [post]
func (ctrl *SessionController) Login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	name := strings.TrimSpace(body.Name)
	email := strings.ToLower(strings.TrimSpace(body.Email))

	if name == "" || email == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Name and email are required",
		})
		return
	}
	if !emailPattern.MatchString(email) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid email address",
		})
		return
	}

	session := model.Session{
		Token:         uuid.NewString(),
		ReviewerEmail: email,
		ReviewerName:  name,
	}

	if err := ctrl.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create session: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: session.Token,
		Reviewer: model.Reviewer{
			Name:  session.ReviewerName,
			Email: session.ReviewerEmail,
		},
	})
}

// Me godoc
//
//	@Summary		Current reviewer
//	@Description	Return the reviewer identity behind the supplied bearer token.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	model.Reviewer
//	@Failure		401	{object}	utilities.ErrorResponse
//	@Security		Bearer
//	@Router			/auth/me [get]
func (ctrl *SessionController) Me(c *gin.Context) {
	reviewer, err := utilities.ExtractReviewer(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, reviewer)
}

// Logout godoc
//
//	@Summary		Reviewer logout
//	@Description	Delete the session behind the supplied token. Succeeds even if the session no longer exists.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	utilities.MessageResponse
//	@Security		Bearer
//	@Router			/auth/logout [post]
func (ctrl *SessionController) Logout(c *gin.Context) {
	if token, err := utilities.ExtractBearerToken(c); err == nil {
		ctrl.DB.Where("token = ?", token).Delete(&model.Session{})
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{
		Message: "Logged out",
	})
}

// Reviewers godoc
//
//	@Summary		Expected reviewer list
//	@Description	Return the configured reviewer names as a convenience for the login screen. Not enforced at login.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string][]string
//	@Router			/auth/reviewers [get]
func (ctrl *SessionController) Reviewers(c *gin.Context) {
	names := []string{}
	for _, name := range strings.Split(os.Getenv("ALLOWED_REVIEWERS"), ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	c.JSON(http.StatusOK, gin.H{"reviewers": names})
}

// ValidateToken resolves a bearer token to a reviewer identity. Sessions
// older than the maximum age are rejected and deleted on sight rather than
// waiting for the sweeper.
func ValidateToken(db *database.DBinstanceStruct, token string) (model.Reviewer, error) {
	var session model.Session
	err := db.Where("token = ?", token).First(&session).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.Reviewer{}, ErrNotAuthenticated
	case err != nil:
		return model.Reviewer{}, fmt.Errorf("failed to look up session: %w", err)
	}

	if time.Since(session.CreatedAt) >= SessionMaxAge() {
		db.Where("token = ?", token).Delete(&model.Session{})
		return model.Reviewer{}, ErrNotAuthenticated
	}

	return model.Reviewer{
		Name:  session.ReviewerName,
		Email: session.ReviewerEmail,
	}, nil
}

// SweepExpiredSessions deletes every session past the maximum age and
// returns the number of rows removed.
func SweepExpiredSessions(db *database.DBinstanceStruct) (int64, error) {
	cutoff := time.Now().Add(-SessionMaxAge())
	res := db.Where("created_at <= ?", cutoff).Delete(&model.Session{})
	return res.RowsAffected, res.Error
}

// StartSessionSweeper runs SweepExpiredSessions on the given interval until
// the process exits.
func StartSessionSweeper(db *database.DBinstanceStruct, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			removed, err := SweepExpiredSessions(db)
			if err != nil {
				log.Printf("session sweep failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("session sweep removed %d expired sessions", removed)
			}
		}
	}()
}
