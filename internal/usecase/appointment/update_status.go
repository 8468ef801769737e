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

// UpdateStatus handles the plain status transitions: Completed, NoShow
// and Scheduled-to-Scheduled. Cancellation goes through CancelAppointment
// (idempotency) and Waiting-to-Scheduled through ReassignAppointment
// (staff assignment plus conflict check).
type UpdateStatus struct {
	repo     domain.Repository
	activity *activity.Dispatcher
	loc      *time.Location
}

func NewUpdateStatus(
	repo domain.Repository,
	act *activity.Dispatcher,
	loc *time.Location,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		activity: act,
		loc:      loc,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID string,
	target domain.Status,
) (*models.Appointment, error) {

	if !target.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := time.Now().In(uc.loc)

	switch target {
	case domain.StatusCompleted:
		if err := domain.Complete(ap, now); err != nil {
			return nil, err
		}
	case domain.StatusNoShow:
		if err := domain.MarkNoShow(ap); err != nil {
			return nil, err
		}
	case domain.StatusScheduled:
		if ap.StaffID == nil {
			// A waiting appointment only becomes scheduled by assigning
			// a staff member.
			return nil, httperr.ErrBusiness("staff_required")
		}
		if err := domain.CanTransition(domain.Status(ap.Status), target); err != nil {
			return nil, err
		}
		ap.Status = string(domain.StatusScheduled)
	default:
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	if err := uc.repo.SaveAppointment(ctx, ap, false); err != nil {
		return nil, err
	}

	uc.activity.Dispatch(activity.Event{
		Action:       "appointment_status_changed",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		CustomerName: &ap.CustomerName,
		Message:      fmt.Sprintf("Appointment for %s marked %s", ap.CustomerName, ap.Status),
	})

	return ap, nil
}
