package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/appointment-desk/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-desk/internal/dto"
	"github.com/BruksfildServices01/appointment-desk/internal/httperr"
	"github.com/BruksfildServices01/appointment-desk/internal/models"
	"github.com/BruksfildServices01/appointment-desk/internal/timezone"
)

type ListAppointmentsInput struct {
	Page  int
	Limit int

	Date       string // optional, 2006-01-02
	StaffID    string
	Status     string
	SearchTerm string
}

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, int64, error) {

	f := domain.ListFilter{
		Page:       in.Page,
		Limit:      in.Limit,
		StaffID:    in.StaffID,
		SearchTerm: in.SearchTerm,
	}

	if in.Status != "" {
		if !domain.Status(in.Status).Valid() {
			return nil, 0, httperr.ErrBusiness("invalid_status")
		}
		f.Status = in.Status
	}

	if in.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
		if err != nil {
			return nil, 0, httperr.ErrBusiness("invalid_date")
		}
		dayStart, dayEnd := timezone.DayWindow(date)
		f.DayStart = &dayStart
		f.DayEnd = &dayEnd
	}

	appointments, total, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toListDTO(ap, uc.loc))
	}

	return out, total, nil
}

func toListDTO(ap models.Appointment, loc *time.Location) dto.AppointmentListDTO {
	var staffName *string
	if ap.Staff != nil {
		staffName = &ap.Staff.Name
	}

	return dto.AppointmentListDTO{
		ID:           ap.ID,
		CustomerName: ap.CustomerName,
		ServiceName:  ap.Service.Name,
		StaffName:    staffName,
		DateTime:     ap.StartTime,
		Status:       ap.Status,
		TimeSlot: dto.TimeSlot{
			Start: ap.StartTime.In(loc).Format("15:04"),
			End:   ap.EndTime.In(loc).Format("15:04"),
		},
	}
}
