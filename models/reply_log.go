// models/reply_log.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReplyLog records one inbound message and the response it got. CreatedAt
// doubles as the received-at timestamp.
type ReplyLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Phone           string    `gorm:"index;not null"`
	IncomingMessage string    `gorm:"type:text"`
	BotResponse     string    `gorm:"type:text;not null"`
	gorm.Model
}

func (r *ReplyLog) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
