package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StaffAvailable = "Available"
	StaffOnLeave   = "OnLeave"
)

type Staff struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	ServiceType   string `gorm:"size:50;not null;index" json:"serviceType"`
	DailyCapacity int    `gorm:"not null;default:1" json:"dailyCapacity"`
	Status        string `gorm:"size:20;default:'Available'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
