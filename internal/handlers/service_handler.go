package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/httpresp"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

// Services need at least this long to be schedulable at all.
const minServiceDurationMinutes = 5

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name              string `json:"name" binding:"required"`
	RequiredStaffType string `json:"requiredStaffType" binding:"required"`
	DurationMinutes   int    `json:"durationMinutes" binding:"required"`
	Status            string `json:"status"`
}

type UpdateServiceRequest struct {
	Name              *string `json:"name,omitempty"`
	RequiredStaffType *string `json:"requiredStaffType,omitempty"`
	DurationMinutes   *int    `json:"durationMinutes,omitempty"`
	Status            *string `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 25)

	q := h.db.Model(&models.Service{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	var services []models.Service
	if err := q.
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services, httpresp.Meta{Page: page, Limit: limit, Total: total})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	if req.DurationMinutes < minServiceDurationMinutes {
		httperr.BadRequest(c, "invalid_duration", "Service duration must be at least 5 minutes.")
		return
	}

	svc := models.Service{
		Name:              strings.TrimSpace(req.Name),
		RequiredStaffType: strings.TrimSpace(req.RequiredStaffType),
		DurationMinutes:   req.DurationMinutes,
		Status:            req.Status,
	}
	if svc.Status == "" {
		svc.Status = "Available"
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	httpresp.Created(c, "Service created", svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	if req.Name != nil {
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.RequiredStaffType != nil {
		svc.RequiredStaffType = strings.TrimSpace(*req.RequiredStaffType)
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < minServiceDurationMinutes {
			httperr.BadRequest(c, "invalid_duration", "Service duration must be at least 5 minutes.")
			return
		}
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Status != nil {
		svc.Status = *req.Status
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	httpresp.OKMessage(c, "Service updated", svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	// Appointments keep their history, so a referenced service can only
	// be retired, never removed.
	var refs int64
	if err := h.db.Model(&models.Appointment{}).
		Where("service_id = ?", id).
		Count(&refs).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}
	if refs > 0 {
		httperr.BadRequest(c, "service_in_use", "Service has appointments and cannot be deleted.")
		return
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	httpresp.OKMessage(c, "Service deleted", nil)
}
