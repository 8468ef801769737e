package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/appointment-desk/internal/activity"
	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerName string
	ServiceID    string

	Date string // 2006-01-02
	Time string // 15:04

	// Optional; omitted means the appointment joins the waiting queue.
	StaffID *string
}

type CreateAppointmentResult struct {
	Appointment *models.Appointment

	// Set when the assignee is at or over daily capacity. Capacity is
	// advisory: the booking still goes through.
	CapacityWarning string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	capacity *StaffCapacity
	activity *activity.Dispatcher
	loc      *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	capacity *StaffCapacity,
	act *activity.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		capacity: capacity,
		activity: act,
		loc:      loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentResult, error) {

	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		return nil, httperr.ErrBusiness("customer_name_required")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	var staff *models.Staff
	if in.StaffID != nil && *in.StaffID != "" {
		staff, err = uc.repo.GetStaff(ctx, *in.StaffID)
		if err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		if staff.ServiceType != svc.RequiredStaffType {
			return nil, httperr.ErrBusiness("staff_type_mismatch")
		}
	}

	ap := &models.Appointment{
		CustomerName: customerName,
		ServiceID:    svc.ID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus(staff != nil)),
	}
	if staff != nil {
		ap.StaffID = &staff.ID
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	result := &CreateAppointmentResult{Appointment: ap}

	if staff != nil {
		if booked, capacity, err := uc.capacity.Execute(ctx, staff.ID, start); err == nil && booked >= int64(capacity) {
			result.CapacityWarning = fmt.Sprintf(
				"%s is at daily capacity (%d/%d)",
				staff.Name, booked, capacity,
			)
		}
	}

	var staffName *string
	if staff != nil {
		staffName = &staff.Name
	}
	uc.activity.Dispatch(activity.Event{
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
		CustomerName: &ap.CustomerName,
		StaffName:    staffName,
		Message:      createdMessage(ap, staff),
	})

	return result, nil
}

func createdMessage(ap *models.Appointment, staff *models.Staff) string {
	if staff == nil {
		return fmt.Sprintf("Appointment for %s added to the waiting queue", ap.CustomerName)
	}
	return fmt.Sprintf(
		"Appointment for %s scheduled with %s at %s",
		ap.CustomerName, staff.Name, ap.StartTime.Format("2006-01-02 15:04"),
	)
}
