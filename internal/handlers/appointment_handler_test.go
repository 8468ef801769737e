package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-desk/internal/activity"
	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
	ucAppointment "github.com/BruksfildServices01/appointment-desk/internal/usecase/appointment"
	ucDashboard "github.com/BruksfildServices01/appointment-desk/internal/usecase/dashboard"
)

// stubRepo backs the handler tests with just enough store behavior for
// the request paths under test.
type stubRepo struct {
	staff        map[string]*models.Staff
	services     map[string]*models.Service
	appointments map[string]*models.Appointment
	nextID       int
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		staff:        map[string]*models.Staff{},
		services:     map[string]*models.Service{},
		appointments: map[string]*models.Appointment{},
	}
}

func (r *stubRepo) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *stubRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *stubRepo) ListAvailableStaff(ctx context.Context) ([]models.Staff, error) {
	return nil, nil
}

func (r *stubRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		r.nextID++
		ap.ID = fmt.Sprintf("ap-%d", r.nextID)
	}
	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *stubRepo) SaveAppointment(ctx context.Context, ap *models.Appointment, recheckConflict bool) error {
	copied := *ap
	r.appointments[ap.ID] = &copied
	return nil
}

func (r *stubRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ap
	if svc, ok := r.services[ap.ServiceID]; ok {
		copied.Service = *svc
	}
	return &copied, nil
}

func (r *stubRepo) ListAppointments(ctx context.Context, f domain.ListFilter) ([]models.Appointment, int64, error) {
	return nil, 0, nil
}

func (r *stubRepo) ListAppointmentsForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (r *stubRepo) CountScheduledForStaffDay(ctx context.Context, staffID string, dayStart, dayEnd time.Time) (int64, error) {
	return 0, nil
}

var _ domain.Repository = (*stubRepo)(nil)

// recordCache records the keys each Delete call received.
type recordCache struct {
	deleted []string
}

func (c *recordCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *recordCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (c *recordCache) Delete(ctx context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func newTestHandler(t *testing.T) (*gin.Engine, *stubRepo, *recordCache) {
	t.Helper()

	repo := newStubRepo()
	repo.services["svc-haircut"] = &models.Service{
		ID:                "svc-haircut",
		Name:              "Haircut",
		RequiredStaffType: "Stylist",
		DurationMinutes:   30,
	}
	repo.staff["st-ana"] = &models.Staff{
		ID:            "st-ana",
		Name:          "Ana",
		ServiceType:   "Stylist",
		DailyCapacity: 3,
		Status:        models.StaffAvailable,
	}

	act := activity.NewNop()
	capacityUC := ucAppointment.NewStaffCapacity(repo)
	c := &recordCache{}

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, capacityUC, act, time.UTC),
		ucAppointment.NewListAppointments(repo, time.UTC),
		ucAppointment.NewCancelAppointment(repo, act, time.UTC),
		ucAppointment.NewUpdateStatus(repo, act, time.UTC),
		ucAppointment.NewRescheduleAppointment(repo, act, time.UTC),
		ucAppointment.NewReassignAppointment(repo, capacityUC, act),
		c,
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/appointments", h.Create)
	r.PATCH("/appointments/:id", h.Update)
	r.PATCH("/appointments/:id/cancel", h.Cancel)

	return r, repo, c
}

func TestCreateBindsMultipartForm(t *testing.T) {
	r, repo, _ := newTestHandler(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("customerName", "Maria Silva"))
	require.NoError(t, w.WriteField("serviceId", "svc-haircut"))
	require.NoError(t, w.WriteField("date", "2026-01-26"))
	require.NoError(t, w.WriteField("time", "10:00"))
	require.NoError(t, w.WriteField("staffId", "st-ana"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/appointments", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, repo.appointments, 1)
	for _, ap := range repo.appointments {
		assert.Equal(t, "Maria Silva", ap.CustomerName)
		assert.Equal(t, string(domain.StatusScheduled), ap.Status)
		require.NotNil(t, ap.StaffID)
		assert.Equal(t, "st-ana", *ap.StaffID)
	}
}

func TestCreateBindsJSON(t *testing.T) {
	r, repo, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(
		`{"customerName":"Maria Silva","serviceId":"svc-haircut","date":"2026-01-26","time":"10:00"}`,
	))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, repo.appointments, 1)
}

func TestUpdateRejectsMixedFieldGroups(t *testing.T) {
	r, repo, _ := newTestHandler(t)

	staffID := "st-ana"
	repo.appointments["ap-1"] = &models.Appointment{
		ID:           "ap-1",
		CustomerName: "Maria Silva",
		ServiceID:    "svc-haircut",
		StaffID:      &staffID,
		StartTime:    time.Date(2026, 1, 26, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 1, 26, 10, 30, 0, 0, time.UTC),
		Status:       string(domain.StatusScheduled),
	}

	bodies := []string{
		`{"staffId":"st-ana","date":"2026-01-27","time":"11:00"}`,
		`{"status":"Completed","date":"2026-01-27","time":"11:00"}`,
		`{"staffId":"st-ana","status":"Completed"}`,
	}

	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPatch, "/appointments/ap-1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "invalid_request", body)
	}

	// The record is untouched.
	kept := repo.appointments["ap-1"]
	assert.Equal(t, string(domain.StatusScheduled), kept.Status)
	assert.Equal(t, 10, kept.StartTime.Hour())
}

func TestRescheduleInvalidatesBothDays(t *testing.T) {
	r, repo, c := newTestHandler(t)

	staffID := "st-ana"
	repo.appointments["ap-1"] = &models.Appointment{
		ID:           "ap-1",
		CustomerName: "Maria Silva",
		ServiceID:    "svc-haircut",
		StaffID:      &staffID,
		StartTime:    time.Date(2026, 1, 26, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 1, 26, 10, 30, 0, 0, time.UTC),
		Status:       string(domain.StatusScheduled),
	}

	req := httptest.NewRequest(http.MethodPatch, "/appointments/ap-1", strings.NewReader(
		`{"date":"2026-01-28","time":"14:00"}`,
	))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	oldKey := ucDashboard.SummaryCacheKey(time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC))
	newKey := ucDashboard.SummaryCacheKey(time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, c.deleted, oldKey)
	assert.Contains(t, c.deleted, newKey)
}

func TestRescheduleSameDayInvalidatesOnce(t *testing.T) {
	r, repo, c := newTestHandler(t)

	staffID := "st-ana"
	repo.appointments["ap-1"] = &models.Appointment{
		ID:           "ap-1",
		CustomerName: "Maria Silva",
		ServiceID:    "svc-haircut",
		StaffID:      &staffID,
		StartTime:    time.Date(2026, 1, 26, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2026, 1, 26, 10, 30, 0, 0, time.UTC),
		Status:       string(domain.StatusScheduled),
	}

	req := httptest.NewRequest(http.MethodPatch, "/appointments/ap-1", strings.NewReader(
		`{"date":"2026-01-26","time":"14:00"}`,
	))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{
		ucDashboard.SummaryCacheKey(time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)),
	}, c.deleted)
}
