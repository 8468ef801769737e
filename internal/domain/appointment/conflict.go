package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

// ===============================
// Conflict Detection
// ===============================

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// intersect. End instants are excluded, so back-to-back bookings where one
// ends exactly when the next begins never conflict.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// ConflictIDs returns the ids of every appointment in existing whose
// interval overlaps the candidate's. Inactive appointments and the
// candidate itself (on update) are skipped; existing is assumed to be
// already scoped to the candidate's staff member.
func ConflictIDs(candidate *models.Appointment, existing []models.Appointment) []string {
	var ids []string
	for _, other := range existing {
		if other.ID == candidate.ID {
			continue
		}
		if !Status(other.Status).Active() {
			continue
		}
		if Overlaps(candidate.StartTime, candidate.EndTime, other.StartTime, other.EndTime) {
			ids = append(ids, other.ID)
		}
	}
	return ids
}
