package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-desk/internal/activity"
	"github.com/BruksfildServices01/appointment-desk/internal/cache"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/httpresp"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
	"github.com/BruksfildServices01/appointment-desk/internal/timezone"
	ucDashboard "github.com/BruksfildServices01/appointment-desk/internal/usecase/dashboard"
)

type StaffHandler struct {
	db       *gorm.DB
	activity *activity.Dispatcher
	cache    cache.Cache
	tz       string
}

func NewStaffHandler(db *gorm.DB, act *activity.Dispatcher, c cache.Cache, tz string) *StaffHandler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &StaffHandler{db: db, activity: act, cache: c, tz: tz}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name          string `json:"name" binding:"required"`
	ServiceType   string `json:"serviceType" binding:"required"`
	DailyCapacity int    `json:"dailyCapacity" binding:"required,min=1"`
	Status        string `json:"status"`
}

type UpdateStaffStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 25)

	q := h.db.Model(&models.Staff{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not load staff members.")
		return
	}

	var staff []models.Staff
	if err := q.
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Could not load staff members.")
		return
	}

	httpresp.List(c, staff, httpresp.Meta{Page: page, Limit: limit, Total: total})
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid staff data.")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StaffAvailable
	}
	if status != models.StaffAvailable && status != models.StaffOnLeave {
		httperr.BadRequest(c, "invalid_status", "Staff status must be Available or OnLeave.")
		return
	}

	staff := models.Staff{
		Name:          strings.TrimSpace(req.Name),
		ServiceType:   strings.TrimSpace(req.ServiceType),
		DailyCapacity: req.DailyCapacity,
		Status:        status,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Could not create staff member.")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:    "staff_created",
		Entity:    "staff",
		EntityID:  &staff.ID,
		StaffName: &staff.Name,
		Message:   fmt.Sprintf("Staff member %s joined the team", staff.Name),
	})
	h.invalidateTodaySummary(c)

	httpresp.Created(c, "Staff member created", staff)
}

func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.First(&staff, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		return
	}

	var req UpdateStaffStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status data.")
		return
	}

	if req.Status != models.StaffAvailable && req.Status != models.StaffOnLeave {
		httperr.BadRequest(c, "invalid_status", "Staff status must be Available or OnLeave.")
		return
	}

	staff.Status = req.Status
	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Could not update staff member.")
		return
	}

	h.activity.Dispatch(activity.Event{
		Action:    "staff_status_changed",
		Entity:    "staff",
		EntityID:  &staff.ID,
		StaffName: &staff.Name,
		Message:   fmt.Sprintf("Staff member %s is now %s", staff.Name, staff.Status),
	})
	h.invalidateTodaySummary(c)

	httpresp.OKMessage(c, "Staff status updated", staff)
}

// Staff load shows up on the dashboard, so staff changes drop today's
// cached summary.
func (h *StaffHandler) invalidateTodaySummary(c *gin.Context) {
	today := timezone.NowIn(h.tz)
	_ = h.cache.Delete(c.Request.Context(), ucDashboard.SummaryCacheKey(today))
}
