package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-desk/internal/cache"
	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/httpresp"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
	ucAppointment "github.com/BruksfildServices01/appointment-desk/internal/usecase/appointment"
	ucDashboard "github.com/BruksfildServices01/appointment-desk/internal/usecase/dashboard"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	listUC         *ucAppointment.ListAppointments
	cancelUC       *ucAppointment.CancelAppointment
	updateStatusUC *ucAppointment.UpdateStatus
	rescheduleUC   *ucAppointment.RescheduleAppointment
	reassignUC     *ucAppointment.ReassignAppointment
	cache          cache.Cache
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	cancelUC *ucAppointment.CancelAppointment,
	updateStatusUC *ucAppointment.UpdateStatus,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	reassignUC *ucAppointment.ReassignAppointment,
	c cache.Cache,
) *AppointmentHandler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &AppointmentHandler{
		createUC:       createUC,
		listUC:         listUC,
		cancelUC:       cancelUC,
		updateStatusUC: updateStatusUC,
		rescheduleUC:   rescheduleUC,
		reassignUC:     reassignUC,
		cache:          c,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateAppointmentRequest binds from JSON or multipart form; the
// dashboard's booking dialog submits the latter.
type CreateAppointmentRequest struct {
	CustomerName string  `json:"customerName" form:"customerName" binding:"required"`
	ServiceID    string  `json:"serviceId" form:"serviceId" binding:"required"`
	Date         string  `json:"date" form:"date" binding:"required"` // 2006-01-02
	Time         string  `json:"time" form:"time" binding:"required"` // 15:04
	StaffID      *string `json:"staffId" form:"staffId"`
}

// UpdateAppointmentRequest is a tagged partial update. Exactly one group
// of fields drives the operation: status alone, date+time (reschedule),
// or staffId (reassignment).
type UpdateAppointmentRequest struct {
	Status  *string `json:"status"`
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	StaffID *string `json:"staffId"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	in := ucAppointment.ListAppointmentsInput{
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 25),
		Date:       c.Query("date"),
		StaffID:    c.Query("staffId"),
		Status:     c.Query("status"),
		SearchTerm: c.Query("searchTerm"),
	}

	appointments, total, err := h.listUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, appointments, httpresp.Meta{
		Page:  in.Page,
		Limit: in.Limit,
		Total: total,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerName: req.CustomerName,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		StaffID:      req.StaffID,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.invalidateSummary(c.Request.Context(), result.Appointment.StartTime)

	message := "Appointment created"
	if result.CapacityWarning != "" {
		message = result.CapacityWarning
	}
	httpresp.Created(c, message, result.Appointment)
}

// ======================================================
// UPDATE (PATCH /appointments/:id)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update data.")
		return
	}

	// Exactly one group of fields may drive the update; a request mixing
	// them has no defined order of operations and is rejected outright.
	groups := 0
	if req.StaffID != nil {
		groups++
	}
	if req.Date != nil || req.Time != nil {
		groups++
	}
	if req.Status != nil {
		groups++
	}
	if groups > 1 {
		httperr.BadRequest(c, "invalid_request", "Provide exactly one of staffId, date+time, or status.")
		return
	}

	ctx := c.Request.Context()

	switch {
	case req.StaffID != nil:
		result, err := h.reassignUC.Execute(ctx, id, *req.StaffID)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		h.invalidateSummary(ctx, result.Appointment.StartTime)

		message := "Appointment assigned"
		if result.CapacityWarning != "" {
			message = result.CapacityWarning
		}
		httpresp.OKMessage(c, message, result.Appointment)

	case req.Date != nil && req.Time != nil:
		result, err := h.rescheduleUC.Execute(ctx, ucAppointment.RescheduleInput{
			AppointmentID: id,
			Date:          *req.Date,
			Time:          *req.Time,
		})
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		// Moving across days leaves two stale summaries behind.
		h.invalidateSummary(ctx, result.PreviousStart, result.Appointment.StartTime)
		httpresp.OKMessage(c, "Appointment rescheduled", result.Appointment)

	case req.Status != nil:
		h.updateStatus(c, id, *req.Status)

	default:
		httperr.BadRequest(c, "invalid_request", "No update fields provided.")
	}
}

func (h *AppointmentHandler) updateStatus(c *gin.Context, id string, status string) {
	ctx := c.Request.Context()

	var (
		ap  *models.Appointment
		err error
	)
	if domain.Status(status) == domain.StatusCancelled {
		ap, err = h.cancelUC.Execute(ctx, id)
	} else {
		ap, err = h.updateStatusUC.Execute(ctx, id, domain.Status(status))
	}
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.invalidateSummary(ctx, ap.StartTime)
	httpresp.OKMessage(c, "Appointment updated", ap)
}

// ======================================================
// CANCEL (PATCH /appointments/:id/cancel)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	h.invalidateSummary(c.Request.Context(), ap.StartTime)
	httpresp.OKMessage(c, "Appointment cancelled", ap)
}

// ======================================================
// HELPERS
// ======================================================

// Summary staleness after a mutation is bounded by the cache TTL; the
// affected days are dropped eagerly.
func (h *AppointmentHandler) invalidateSummary(ctx context.Context, days ...time.Time) {
	keys := make([]string, 0, len(days))
	for _, day := range days {
		key := ucDashboard.SummaryCacheKey(day)
		if len(keys) == 0 || keys[0] != key {
			keys = append(keys, key)
		}
	}
	_ = h.cache.Delete(ctx, keys...)
}
