// services/reply_service.go
package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"uplift-backend/models"
)

// ReplyService answers inbound texts. It never returns an error: the reply
// channel always gets supportive text back, generated or canned.
type ReplyService struct {
	db      *gorm.DB
	content ContentProvider
}

func NewReplyService(db *gorm.DB, content ContentProvider) *ReplyService {
	return &ReplyService{db: db, content: content}
}

func (s *ReplyService) HandleInbound(phone, text string) string {
	response, degraded := s.content.GenerateReply(context.Background(), text)
	if degraded {
		log.Printf("Using fallback reply for %s", phone)
	}

	entry := models.ReplyLog{
		Phone:           phone,
		IncomingMessage: text,
		BotResponse:     response,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reply exchange for %s: %v", phone, err)
	}

	return response
}
