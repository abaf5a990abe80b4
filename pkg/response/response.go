package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The public API speaks three shapes: `{"success": true}` for mutations,
// `{"error": "..."}` for failures, and raw payloads for reads. Admin
// clients depend on these exact bodies, so there is no envelope.

// AppError is a structured application error carrying the HTTP status it
// should be answered with.
type AppError struct {
	HTTPStatus int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidation returns a 400 error for malformed or out-of-range input.
func NewValidation(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Message: msg}
}

// NewAuth returns a 401 error for a wrong password or bad bearer token.
func NewAuth(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Message: msg}
}

// NewStore returns a 500 error for a backing-store failure. The message
// is what the client sees; the real error belongs in the server log.
func NewStore(msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusInternalServerError, Message: msg}
}

// OK sends a 200 response with the payload as the entire body.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Success sends 200 {"success": true}.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Created sends 201 {"success": true}.
func Created(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Error sends an error response. An *AppError keeps its status and
// message; anything else is masked as a generic server error.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
