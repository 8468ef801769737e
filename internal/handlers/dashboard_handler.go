package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-desk/internal/dto"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/httpresp"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
	"github.com/BruksfildServices01/appointment-desk/internal/timezone"
	ucDashboard "github.com/BruksfildServices01/appointment-desk/internal/usecase/dashboard"
)

type DashboardHandler struct {
	summaryUC *ucDashboard.Summary
	db        *gorm.DB
	tz        string
}

func NewDashboardHandler(summaryUC *ucDashboard.Summary, db *gorm.DB, tz string) *DashboardHandler {
	return &DashboardHandler{summaryUC: summaryUC, db: db, tz: tz}
}

// ======================================================
// SUMMARY
// ======================================================

func (h *DashboardHandler) Summary(c *gin.Context) {
	date := timezone.NowIn(h.tz)

	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := timezone.ParseDate(dateStr, h.tz)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		date = parsed
	}

	summary, err := h.summaryUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_load_summary", "Could not load dashboard summary.")
		return
	}

	httpresp.OK(c, summary)
}

// ======================================================
// RECENT ACTIVITY
// ======================================================

func (h *DashboardHandler) RecentActivityLogs(c *gin.Context) {
	limit := queryInt(c, "limit", 8)
	if limit > 100 {
		limit = 100
	}

	var logs []models.ActivityLog
	if err := h.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_load_activity", "Could not load recent activity.")
		return
	}

	loc := timezone.Location(h.tz)

	out := make([]dto.ActivityLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ActivityLogDTO{
			ID:           l.ID,
			Time:         l.CreatedAt.In(loc).Format("15:04"),
			Message:      l.Message,
			Action:       l.Action,
			StaffName:    l.StaffName,
			CustomerName: l.CustomerName,
			CreatedAt:    l.CreatedAt,
		})
	}

	httpresp.OK(c, out)
}
