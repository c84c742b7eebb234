package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a standing instruction to text a phone number once a day.
// A row starts pending (inactive, no trigger id); registering its recurring
// trigger activates it. Cancellation deactivates, never deletes.
type Schedule struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Phone         string    `gorm:"index;not null"`
	MessageType   string    `gorm:"type:varchar(10);not null"` // meal or workout
	ScheduledTime string    `gorm:"type:varchar(5);not null"`  // "HH:MM", 24-hour
	IsActive      bool      `gorm:"default:false"`
	TriggerID     *int      `gorm:"index"` // cron entry id, null until registered
	gorm.Model
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
