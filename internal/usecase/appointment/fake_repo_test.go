package appointment

import (
	"context"
	"fmt"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
)

// fakeRepo is an in-memory domain.Repository with the same conflict
// semantics as the Postgres implementation: insert and update fail with
// time_conflict when the interval overlaps another active appointment
// of the same staff member.
type fakeRepo struct {
	staff        map[string]*models.Staff
	services     map[string]*models.Service
	appointments map[string]*models.Appointment

	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		staff:        map[string]*models.Staff{},
		services:     map[string]*models.Service{},
		appointments: map[string]*models.Appointment{},
	}
}

func (r *fakeRepo) addStaff(s models.Staff) *models.Staff {
	r.staff[s.ID] = &s
	return &s
}

func (r *fakeRepo) addService(s models.Service) *models.Service {
	r.services[s.ID] = &s
	return &s
}

func (r *fakeRepo) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, fmt.Errorf("staff %s not found", id)
	}
	copied := *s
	return &copied, nil
}

func (r *fakeRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	copied := *s
	return &copied, nil
}

func (r *fakeRepo) ListAvailableStaff(ctx context.Context) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range r.staff {
		if s.Status == models.StaffAvailable {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) activeForStaff(staffID string) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.StaffID == nil || *ap.StaffID != staffID {
			continue
		}
		if !domain.Status(ap.Status).Active() {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeRepo) checkConflict(ap *models.Appointment) error {
	if ap.StaffID == nil {
		return nil
	}
	if ids := domain.ConflictIDs(ap, r.activeForStaff(*ap.StaffID)); len(ids) > 0 {
		return httperr.ErrTimeConflict(ids)
	}
	return nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.checkConflict(ap); err != nil {
		return err
	}

	if ap.ID == "" {
		r.nextID++
		ap.ID = fmt.Sprintf("ap-%d", r.nextID)
	}
	if svc, ok := r.services[ap.ServiceID]; ok {
		ap.Service = *svc
	}

	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *fakeRepo) SaveAppointment(ctx context.Context, ap *models.Appointment, recheckConflict bool) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return fmt.Errorf("appointment %s not found", ap.ID)
	}
	if recheckConflict {
		if err := r.checkConflict(ap); err != nil {
			return err
		}
	}

	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found", id)
	}

	copied := *ap
	if svc, ok := r.services[ap.ServiceID]; ok {
		copied.Service = *svc
	}
	if ap.StaffID != nil {
		if s, ok := r.staff[*ap.StaffID]; ok {
			staffCopy := *s
			copied.Staff = &staffCopy
		}
	}
	return &copied, nil
}

func (r *fakeRepo) ListAppointments(ctx context.Context, f domain.ListFilter) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		if f.StaffID != "" && (ap.StaffID == nil || *ap.StaffID != f.StaffID) {
			continue
		}
		if f.DayStart != nil && f.DayEnd != nil {
			if ap.StartTime.Before(*f.DayStart) || !ap.StartTime.Before(*f.DayEnd) {
				continue
			}
		}
		got, _ := r.GetAppointment(ctx, ap.ID)
		out = append(out, *got)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, int64(len(out)), nil
}

func (r *fakeRepo) ListAppointmentsForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	f := domain.ListFilter{DayStart: &dayStart, DayEnd: &dayEnd}
	out, _, err := r.ListAppointments(ctx, f)
	return out, err
}

func (r *fakeRepo) CountScheduledForStaffDay(ctx context.Context, staffID string, dayStart, dayEnd time.Time) (int64, error) {
	var count int64
	for _, ap := range r.appointments {
		if ap.StaffID == nil || *ap.StaffID != staffID {
			continue
		}
		if domain.Status(ap.Status) != domain.StatusScheduled {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		count++
	}
	return count, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
