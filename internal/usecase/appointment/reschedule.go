package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/appointment-desk/internal/activity"
	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

type RescheduleInput struct {
	AppointmentID string
	Date          string // 2006-01-02
	Time          string // 15:04
}

// RescheduleResult keeps the slot the appointment vacated so callers can
// invalidate both affected days, not just the new one.
type RescheduleResult struct {
	Appointment   *models.Appointment
	PreviousStart time.Time
}

type RescheduleAppointment struct {
	repo     domain.Repository
	activity *activity.Dispatcher
	loc      *time.Location
}

func NewRescheduleAppointment(
	repo domain.Repository,
	act *activity.Dispatcher,
	loc *time.Location,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		activity: act,
		loc:      loc,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*RescheduleResult, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	previousStart := ap.StartTime

	if domain.Status(ap.Status).Terminal() {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ap.StartTime = start
	ap.EndTime = start.Add(time.Duration(ap.Service.DurationMinutes) * time.Minute)

	// The occupied interval moved, so the overlap check runs again
	// against the staff member's other active appointments.
	if err := uc.repo.SaveAppointment(ctx, ap, true); err != nil {
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Action:       "appointment_rescheduled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		CustomerName: &ap.CustomerName,
		Message: fmt.Sprintf(
			"Appointment for %s rescheduled to %s",
			ap.CustomerName, start.Format("2006-01-02 15:04"),
		),
	})

	return &RescheduleResult{
		Appointment:   ap,
		PreviousStart: previousStart,
	}, nil
}
