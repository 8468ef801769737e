package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
)

// businessMessages maps business error codes to the copy the dashboard
// shows inline.
var businessMessages = map[string]string{
	"customer_name_required": "Customer name is required.",
	"invalid_date_or_time":   "Invalid date or time.",
	"invalid_date":           "Invalid date.",
	"invalid_status":         "Unknown appointment status.",
	"staff_type_mismatch":    "Selected staff member does not perform this service.",
	"staff_required":         "A staff member must be assigned first.",
	"invalid_transition":     "Appointment status cannot change from its current state.",
	"service_in_use":         "Service has appointments and cannot be deleted.",
	"time_conflict":          "Time conflict with an existing appointment.",
	"appointment_not_found":  "Appointment not found.",
	"staff_not_found":        "Staff member not found.",
	"service_not_found":      "Service not found.",
}

func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg, ok := businessMessages[be.Code]
	if !ok {
		msg = "Request could not be processed."
	}

	switch be.Code {
	case "time_conflict":
		httperr.Conflict(c, msg, be.ConflictingIDs)
	case "appointment_not_found", "staff_not_found", "service_not_found":
		httperr.NotFound(c, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
