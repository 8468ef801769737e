package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CustomerName string `gorm:"size:100;not null" json:"customerName"`

	ServiceID string  `gorm:"size:36;not null;index" json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	// Null until a staff member is assigned; the appointment waits in the
	// queue in the meantime.
	StaffID *string `gorm:"size:36;index:idx_appointments_staff_day" json:"staffId"`
	Staff   *Staff  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	StartTime time.Time `gorm:"index:idx_appointments_staff_day" json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Status string `gorm:"size:20;default:'Scheduled';index" json:"status"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
