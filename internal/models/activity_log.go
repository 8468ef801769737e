package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is the append-only action trail behind the dashboard's
// recent-activity feed. Rows are never updated or deleted.
type ActivityLog struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Action string `gorm:"size:50;not null" json:"action"`

	Entity   string  `gorm:"size:50" json:"entity"`
	EntityID *string `gorm:"size:36" json:"entityId"`

	ActorID *string `gorm:"size:36" json:"actorId"`

	CustomerName *string `gorm:"size:100" json:"customerName"`
	StaffName    *string `gorm:"size:100" json:"staffName"`

	Message  string `gorm:"size:255" json:"message"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
