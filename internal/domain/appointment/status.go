package appointment

import "github.com/BruksfildServices01/appointment-desk/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusWaiting   Status = "Waiting"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusNoShow    Status = "NoShow"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusWaiting, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Active statuses occupy their staff's time slot and count toward conflicts.
func (s Status) Active() bool {
	return s == StatusScheduled || s == StatusWaiting
}

// Terminal statuses admit no further transitions.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func ActiveStatuses() []string {
	return []string{string(StatusScheduled), string(StatusWaiting)}
}

// ===============================
// State machine
// ===============================

// CanTransition validates a status change:
//
//	Waiting   -> Scheduled | Cancelled
//	Scheduled -> Scheduled | Completed | Cancelled | NoShow
//
// Self-transition on Scheduled covers reschedules and reassignments.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}

	if from.Terminal() {
		return httperr.ErrBusiness("invalid_transition")
	}

	switch from {
	case StatusWaiting:
		if to == StatusScheduled || to == StatusCancelled {
			return nil
		}
	case StatusScheduled:
		if to == StatusScheduled || to == StatusCompleted ||
			to == StatusCancelled || to == StatusNoShow {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_transition")
}
