package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/YoshiBoneDoc/kolauction/internal/auctionerrors"
	"github.com/YoshiBoneDoc/kolauction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleRuleViolation surfaces a validation rule rejection. These are
// expected, recoverable outcomes, so they are logged at warn level and
// carry the rule's own user-visible message.
func HandleRuleViolation(c *gin.Context, handlerName, message string) {
	utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("%w: %s", auctionerrors.ErrInvalidInput, message), message)
	utils.Warn(handlerName+": rejected", map[string]any{"reason": message})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrDuplicateID):
		return http.StatusConflict, "auction already exists"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrMissingFields):
		return http.StatusBadRequest, "all fields are required"
	case errors.Is(err, auctionerrors.ErrDuplicateUser):
		return http.StatusConflict, "a user with this username already exists"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, auctionerrors.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not authenticated"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
