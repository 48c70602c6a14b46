// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ryssellou/recruitment-dashboard/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractReviewer extracts the reviewer identity from Gin context.
// Returns an error when the identity is missing or of the wrong type.
func ExtractReviewer(c *gin.Context) (model.Reviewer, error) {
	r, _ := c.Get("reviewer")
	if r == nil {
		return model.Reviewer{}, errors.New("Reviewer identity not provided")
	}

	reviewer, ok := r.(model.Reviewer)
	if !ok {
		return model.Reviewer{}, errors.New("Failed to assert type")
	}
	return reviewer, nil
}
