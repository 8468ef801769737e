package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name              string `gorm:"size:100;not null" json:"name"`
	RequiredStaffType string `gorm:"size:50;not null;index" json:"requiredStaffType"`
	DurationMinutes   int    `gorm:"not null" json:"durationMinutes"`
	Status            string `gorm:"size:20;default:'Available'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
