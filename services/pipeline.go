// services/pipeline.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"uplift-backend/models"
)

// DeliveryPipeline runs one reminder firing end to end: generate the text,
// send it, record the attempt. Exactly one MessageLog row is written per
// firing no matter how the upstream calls go, and no store transaction is
// held open across them.
type DeliveryPipeline struct {
	db      *gorm.DB
	content ContentProvider
	sender  MessageSender
}

func NewDeliveryPipeline(db *gorm.DB, content ContentProvider, sender MessageSender) *DeliveryPipeline {
	return &DeliveryPipeline{db: db, content: content, sender: sender}
}

func (p *DeliveryPipeline) Fire(phone, messageType string, scheduleID uuid.UUID) {
	ctx := context.Background()

	text, degraded := p.content.GenerateMotivational(ctx, messageType)
	if degraded {
		log.Printf("Schedule %s: using fallback %s text", scheduleID, messageType)
	}

	status := "sent"
	errorMsg := ""
	sid, err := p.sender.Send(phone, text)
	if err != nil {
		log.Printf("Schedule %s: failed to send to %s: %v", scheduleID, phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else {
		log.Printf("Schedule %s: message sent to %s, SID: %s", scheduleID, phone, sid)
	}

	entry := models.MessageLog{
		Phone:          phone,
		MessageType:    messageType,
		MessageContent: text,
		Status:         status,
		ErrorMessage:   errorMsg,
		ProviderSID:    sid,
		SentAt:         time.Now(),
	}
	if err := p.db.Create(&entry).Error; err != nil {
		log.Printf("Schedule %s: failed to log delivery: %v", scheduleID, err)
	}
}
