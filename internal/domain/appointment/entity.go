package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCompleted); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusNoShow); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

// Assign puts the appointment on the staff member's calendar. A waiting
// appointment becomes scheduled; a scheduled one stays scheduled
// (reassignment). The conflict check happens at persistence time.
func Assign(ap *models.Appointment, staffID string) error {
	if err := CanTransition(Status(ap.Status), StatusScheduled); err != nil {
		return err
	}

	ap.StaffID = &staffID
	ap.Status = string(StatusScheduled)
	return nil
}

// InitialStatus is Scheduled when a staff member is assigned up front,
// Waiting otherwise.
func InitialStatus(hasStaff bool) Status {
	if hasStaff {
		return StatusScheduled
	}
	return StatusWaiting
}
