// models/message_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageLog records one outbound delivery attempt. Rows are append-only:
// every pipeline firing writes exactly one, whether the send worked or not.
type MessageLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Phone          string    `gorm:"index;not null"`
	MessageType    string    `gorm:"type:varchar(10)"`
	MessageContent string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage   string    `gorm:"type:text"`
	ProviderSID    string    `gorm:"type:varchar(64)"`
	SentAt         time.Time
	gorm.Model
}

func (m *MessageLog) BeforeCreate(tx *gorm.DB) (err error) {
	m.ID = uuid.New()
	return
}
