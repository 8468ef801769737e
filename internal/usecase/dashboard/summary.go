package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BruksfildServices01/appointment-desk/internal/cache"
	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/dto"
	"github.com/BruksfildServices01/appointment-desk/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/appointment-desk/internal/usecase/appointment"
	"github.com/BruksfildServices01/appointment-desk/pkg/logging"
)

const summaryTTL = 30 * time.Second

func SummaryCacheKey(date time.Time) string {
	return "dashboard:summary:" + date.Format("2006-01-02")
}

// Summary aggregates the day's counts and per-staff load. Pure read over
// the store, fronted by a short-lived Redis cache that mutations
// invalidate.
type Summary struct {
	repo     domain.Repository
	capacity *ucAppointment.StaffCapacity
	cache    cache.Cache
	log      *logging.Logger
}

func NewSummary(
	repo domain.Repository,
	capacity *ucAppointment.StaffCapacity,
	c cache.Cache,
	log *logging.Logger,
) *Summary {
	if c == nil {
		c = cache.NewNoop()
	}
	if log == nil {
		log = logging.Default()
	}
	return &Summary{
		repo:     repo,
		capacity: capacity,
		cache:    c,
		log:      log,
	}
}

func (uc *Summary) Execute(
	ctx context.Context,
	date time.Time,
) (*dto.DashboardSummaryDTO, error) {

	key := SummaryCacheKey(date)
	if raw, hit, err := uc.cache.Get(ctx, key); err == nil && hit {
		var cached dto.DashboardSummaryDTO
		if json.Unmarshal(raw, &cached) == nil {
			return &cached, nil
		}
	}

	dayStart, dayEnd := timezone.DayWindow(date)

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		Date:      date.Format("2006-01-02"),
		StaffLoad: []dto.StaffLoadDTO{},
	}

	for _, ap := range appointments {
		summary.TotalToday++

		switch domain.Status(ap.Status) {
		case domain.StatusCompleted:
			summary.Completed++
		case domain.StatusScheduled:
			summary.Pending++
		case domain.StatusWaiting:
			summary.Pending++
			summary.WaitingQueue++
		}
	}

	staff, err := uc.repo.ListAvailableStaff(ctx)
	if err != nil {
		return nil, err
	}

	for _, s := range staff {
		booked, capacity, err := uc.capacity.Execute(ctx, s.ID, date)
		if err != nil {
			return nil, err
		}
		summary.StaffLoad = append(summary.StaffLoad, dto.StaffLoadDTO{
			Name:        s.Name,
			Load:        fmt.Sprintf("%d/%d", booked, capacity),
			Status:      s.Status,
			ServiceType: s.ServiceType,
		})
	}

	if raw, err := json.Marshal(summary); err == nil {
		if err := uc.cache.Set(ctx, key, raw, summaryTTL); err != nil {
			uc.log.Warn("dashboard summary cache write failed", "error", err)
		}
	}

	return summary, nil
}
