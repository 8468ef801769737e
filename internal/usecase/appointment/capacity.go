package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/timezone"
)

// StaffCapacity reports a staff member's load for the day a date falls
// on: scheduled bookings vs. configured daily capacity. Pure read;
// enforcement is advisory and left to callers.
type StaffCapacity struct {
	repo domain.Repository
}

func NewStaffCapacity(repo domain.Repository) *StaffCapacity {
	return &StaffCapacity{repo: repo}
}

func (uc *StaffCapacity) Execute(
	ctx context.Context,
	staffID string,
	date time.Time,
) (booked int64, capacity int, err error) {

	staff, err := uc.repo.GetStaff(ctx, staffID)
	if err != nil {
		return 0, 0, httperr.ErrBusiness("staff_not_found")
	}

	dayStart, dayEnd := timezone.DayWindow(date)
	booked, err = uc.repo.CountScheduledForStaffDay(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		return 0, 0, err
	}

	return booked, staff.DailyCapacity, nil
}
