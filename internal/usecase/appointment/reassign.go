package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/appointment-desk/internal/activity"
	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

type ReassignResult struct {
	Appointment     *models.Appointment
	CapacityWarning string
}

// ReassignAppointment hands an appointment to a (different) staff member.
// It is also the only path that moves a waiting appointment onto the
// calendar.
type ReassignAppointment struct {
	repo     domain.Repository
	capacity *StaffCapacity
	activity *activity.Dispatcher
}

func NewReassignAppointment(
	repo domain.Repository,
	capacity *StaffCapacity,
	act *activity.Dispatcher,
) *ReassignAppointment {
	return &ReassignAppointment{
		repo:     repo,
		capacity: capacity,
		activity: act,
	}
}

func (uc *ReassignAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	staffID string,
) (*ReassignResult, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	staff, err := uc.repo.GetStaff(ctx, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	if staff.ServiceType != ap.Service.RequiredStaffType {
		return nil, httperr.ErrBusiness("staff_type_mismatch")
	}

	if err := domain.Assign(ap, staff.ID); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAppointment(ctx, ap, true); err != nil {
		return nil, err
	}

	result := &ReassignResult{Appointment: ap}

	if booked, capacity, err := uc.capacity.Execute(ctx, staff.ID, ap.StartTime); err == nil && booked >= int64(capacity) {
		result.CapacityWarning = fmt.Sprintf(
			"%s is at daily capacity (%d/%d)",
			staff.Name, booked, capacity,
		)
	}

	uc.activity.Dispatch(activity.Event{
		Action:       "appointment_assigned",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		CustomerName: &ap.CustomerName,
		StaffName:    &staff.Name,
		Message: fmt.Sprintf(
			"Appointment for %s assigned to %s",
			ap.CustomerName, staff.Name,
		),
	})

	return result, nil
}
