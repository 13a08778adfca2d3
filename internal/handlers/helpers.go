package handlers

import (
	"errors"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "finboard/internal/errors"
	"finboard/internal/logger"
	"finboard/internal/middleware"
	"finboard/internal/uuid"
	"finboard/internal/validator"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return "", apperrors.ErrUnauthorized
	}
	return id, nil
}

// parsePathID reads the :id path parameter. A blank id is ErrMissingID and
// anything that is not a UUID is ErrInvalidInput.
func parsePathID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", apperrors.ErrMissingID
	}
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id")
	}
	return id, nil
}

// bindError turns a binding failure into an INVALID_INPUT error carrying the
// first field message when there is one.
func bindError(err error) error {
	if fields, ok := validator.FieldErrors(err); ok && len(fields) > 0 {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		return apperrors.WithMessage(apperrors.ErrInvalidInput, names[0]+": "+fields[names[0]])
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// NotFound answers unmatched routes with the JSON error envelope.
func NotFound(c *gin.Context) {
	respondWithError(c, apperrors.ErrNotFound)
}

// respondWithFormError answers a form action with {"formError": message}.
func respondWithFormError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, gin.H{"formError": appErr.Message})
}

// respondWithFieldErrors answers a form action with {"fieldError": {...}}.
func respondWithFieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(apperrors.ErrInvalidInput.StatusCode, gin.H{"fieldError": fields})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// FormErrorResponse is the failure payload of a form action.
type FormErrorResponse struct {
	FieldError map[string]string `json:"fieldError,omitempty"`
	FormError  string            `json:"formError,omitempty"`
}

// IDResponse echoes the id of a deleted resource.
type IDResponse struct {
	ID string `json:"id"`
}

func idList(ids []string) []IDResponse {
	out := make([]IDResponse, 0, len(ids))
	for _, id := range ids {
		out = append(out, IDResponse{ID: id})
	}
	return out
}
