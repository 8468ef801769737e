package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

// ListFilter narrows an appointment listing. Zero values mean "no filter";
// DayStart/DayEnd bound a single day when both are set.
type ListFilter struct {
	Page  int
	Limit int

	DayStart *time.Time
	DayEnd   *time.Time

	StaffID    string
	Status     string
	SearchTerm string
}

type Repository interface {
	// -------- Staff / Service lookups --------
	GetStaff(
		ctx context.Context,
		id string,
	) (*models.Staff, error)

	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	ListAvailableStaff(
		ctx context.Context,
	) ([]models.Staff, error)

	// -------- Appointment (create / update, conflict-checked) --------

	// CreateAppointment inserts the appointment. When a staff member is
	// assigned, the overlap check against that staff's active appointments
	// and the insert run as one atomic unit.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveAppointment persists changes to an existing appointment.
	// recheckConflict re-runs the overlap check (excluding the record
	// itself) inside the same transaction; callers set it whenever the
	// occupied interval or the staff assignment changed.
	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
		recheckConflict bool,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// -------- Appointment (read) --------
	ListAppointments(
		ctx context.Context,
		f ListFilter,
	) ([]models.Appointment, int64, error)

	ListAppointmentsForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	CountScheduledForStaffDay(
		ctx context.Context,
		staffID string,
		dayStart time.Time,
		dayEnd time.Time,
	) (int64, error)
}
