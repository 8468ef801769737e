package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the failure half of the API envelope. The frontend keys
// off Success and ErrorCode to render targeted messaging, so failures are
// always returned as a body, never as a bare status.
type HTTPError struct {
	Success        bool     `json:"success"`
	ErrorCode      string   `json:"errorCode"`
	Message        string   `json:"message"`
	ConflictingIDs []string `json:"conflictingIds,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success:   false,
		ErrorCode: code,
		Message:   message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Conflict reports a scheduling collision along with the appointments
// already occupying the slot.
func Conflict(c *gin.Context, message string, conflictingIDs []string) {
	c.JSON(http.StatusConflict, HTTPError{
		Success:        false,
		ErrorCode:      "time_conflict",
		Message:        message,
		ConflictingIDs: conflictingIDs,
	})
}
