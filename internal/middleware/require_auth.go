// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryssellou/recruitment-dashboard/internal/auth"
	"github.com/ryssellou/recruitment-dashboard/internal/database"
	"github.com/ryssellou/recruitment-dashboard/internal/utilities"
)

// RequireAuth validates the Bearer token in the Authorization header against
// the session table and aborts with 401 when no live session matches. On
// success the reviewer identity is stored on the context.
func RequireAuth(db *database.DBinstanceStruct) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Authentication required",
			})
			return
		}

		reviewer, err := auth.ValidateToken(db, tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrNotAuthenticated) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Invalid or expired session",
				})
				return
			}

			ctx.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to validate session: %s", err.Error()),
			})
			return
		}

		ctx.Set("reviewer", reviewer)
		ctx.Next()
	}
}

// OptionalAuth attaches the reviewer identity when a valid token is present
// but never rejects the request. Handlers use the identity, when available,
// to personalize read responses.
func OptionalAuth(db *database.DBinstanceStruct) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := utilities.ExtractBearerToken(ctx)
		if err == nil {
			if reviewer, err := auth.ValidateToken(db, tokenString); err == nil {
				ctx.Set("reviewer", reviewer)
			}
		}
		ctx.Next()
	}
}
