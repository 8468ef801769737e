package dto

import "time"

// TimeSlot mirrors the occupied interval as clock strings for table cells.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AppointmentListDTO struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	ServiceName  string    `json:"serviceName"`
	StaffName    *string   `json:"staffName"`
	DateTime     time.Time `json:"dateTime"`
	Status       string    `json:"status"`
	TimeSlot     TimeSlot  `json:"timeSlot"`
}

type StaffLoadDTO struct {
	Name        string `json:"name"`
	Load        string `json:"load"` // "booked/capacity"
	Status      string `json:"status"`
	ServiceType string `json:"serviceType"`
}

type DashboardSummaryDTO struct {
	TotalToday   int            `json:"totalToday"`
	Completed    int            `json:"completed"`
	Pending      int            `json:"pending"`
	WaitingQueue int            `json:"waitingQueue"`
	StaffLoad    []StaffLoadDTO `json:"staffLoad"`
	Date         string         `json:"date"`
}

type ActivityLogDTO struct {
	ID           string    `json:"id"`
	Time         string    `json:"time"`
	Message      string    `json:"message"`
	Action       string    `json:"action"`
	StaffName    *string   `json:"staffName"`
	CustomerName *string   `json:"customerName"`
	CreatedAt    time.Time `json:"createdAt"`
}
