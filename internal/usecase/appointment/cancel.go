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

type CancelAppointment struct {
	repo     domain.Repository
	activity *activity.Dispatcher
	loc      *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	act *activity.Dispatcher,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		activity: act,
		loc:      loc,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Cancelling twice is a no-op success, not an error.
	if domain.Status(ap.Status) == domain.StatusCancelled {
		return ap, nil
	}

	now := time.Now().In(uc.loc)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap, false); err != nil {
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		CustomerName: &ap.CustomerName,
		Message:      fmt.Sprintf("Appointment for %s cancelled", ap.CustomerName),
	})

	return ap, nil
}
