package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Staff / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetStaff(
	ctx context.Context,
	id string,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).First(&staff, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) ListAvailableStaff(
	ctx context.Context,
) ([]models.Staff, error) {

	var staff []models.Staff
	if err := r.db.WithContext(ctx).
		Where("status = ?", models.StaffAvailable).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// --------------------------------------------------
// Appointment (create / update, conflict-checked)
// --------------------------------------------------

// lockActiveForStaff fetches the staff member's active appointments for
// update, serializing concurrent bookings on the same calendar rows.
func lockActiveForStaff(
	tx *gorm.DB,
	staffID string,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var active []models.Appointment
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"staff_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			staffID, domain.ActiveStatuses(), end, start,
		).
		Find(&active).Error

	return active, err
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ap.StaffID != nil {
			active, err := lockActiveForStaff(tx, *ap.StaffID, ap.StartTime, ap.EndTime)
			if err != nil {
				return err
			}
			if ids := domain.ConflictIDs(ap, active); len(ids) > 0 {
				return httperr.ErrTimeConflict(ids)
			}
		}
		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrTimeConflict(nil)
	}
	return err
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
	recheckConflict bool,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if recheckConflict && ap.StaffID != nil {
			active, err := lockActiveForStaff(tx, *ap.StaffID, ap.StartTime, ap.EndTime)
			if err != nil {
				return err
			}
			if ids := domain.ConflictIDs(ap, active); len(ids) > 0 {
				return httperr.ErrTimeConflict(ids)
			}
		}
		return tx.Save(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrTimeConflict(nil)
	}
	return err
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Staff").
		First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.DayStart != nil && f.DayEnd != nil {
		q = q.Where("start_time >= ? AND start_time < ?", *f.DayStart, *f.DayEnd)
	}
	if f.StaffID != "" {
		q = q.Where("staff_id = ?", f.StaffID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.SearchTerm != "" {
		q = q.Where("customer_name ILIKE ?", "%"+f.SearchTerm+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 25
	}

	var aps []models.Appointment
	if err := q.
		Preload("Service").
		Preload("Staff").
		Order("start_time ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&aps).Error; err != nil {
		return nil, 0, err
	}

	return aps, total, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) CountScheduledForStaffDay(
	ctx context.Context,
	staffID string,
	dayStart time.Time,
	dayEnd time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"staff_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			staffID, string(domain.StatusScheduled), dayStart, dayEnd,
		).
		Count(&count).Error

	return count, err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
