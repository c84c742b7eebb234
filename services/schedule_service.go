// services/schedule_service.go
package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"uplift-backend/models"
	"uplift-backend/utils"
)

// Reminder categories accepted by CreateSchedule.
const (
	TypeMeal    = "meal"
	TypeWorkout = "workout"
)

// ScheduleService owns the durable schedule records and keeps them in step
// with the trigger registry.
type ScheduleService struct {
	db        *gorm.DB
	scheduler TriggerScheduler
}

func NewScheduleService(db *gorm.DB, scheduler TriggerScheduler) *ScheduleService {
	return &ScheduleService{db: db, scheduler: scheduler}
}

// CreateSchedule validates the request, persists the schedule and registers
// its daily trigger. On registration failure the row is left in its pending
// state (inactive, no trigger id) for inspection rather than rolled back.
func (s *ScheduleService) CreateSchedule(phone, messageType, timeStr string) (*models.Schedule, error) {
	if messageType != TypeMeal && messageType != TypeWorkout {
		return nil, &ValidationError{Field: "message_type", Reason: "must be either 'meal' or 'workout'"}
	}

	hour, minute, err := utils.ParseClockTime(timeStr)
	if err != nil {
		return nil, &ValidationError{Field: "time", Reason: err.Error()}
	}

	if !utils.ValidatePhone(phone) {
		return nil, &ValidationError{Field: "phone", Reason: "not a valid phone number"}
	}
	formatted := utils.FormatPhone(phone)

	schedule := models.Schedule{
		Phone:         formatted,
		MessageType:   messageType,
		ScheduledTime: utils.NormalizeClockTime(hour, minute),
	}
	if err := s.db.Create(&schedule).Error; err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	triggerID, err := s.scheduler.Register(formatted, messageType, hour, minute, schedule.ID)
	if err != nil {
		log.Printf("Schedule %s left pending: %v", schedule.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrTriggerRegistration, err)
	}

	if err := s.activate(&schedule, triggerID); err != nil {
		// Don't leave a trigger running for a schedule that never activated.
		s.scheduler.Revoke(triggerID)
		return nil, err
	}
	return &schedule, nil
}

func (s *ScheduleService) activate(schedule *models.Schedule, triggerID cron.EntryID) error {
	id := int(triggerID)
	updates := map[string]interface{}{"is_active": true, "trigger_id": id}
	if err := s.db.Model(schedule).Updates(updates).Error; err != nil {
		return fmt.Errorf("store trigger id: %w", err)
	}
	schedule.IsActive = true
	schedule.TriggerID = &id
	return nil
}

// CancelSchedule revokes the schedule's trigger and deactivates the row.
// Cancelling an already-inactive schedule succeeds again; unknown ids return
// ErrNotFound.
func (s *ScheduleService) CancelSchedule(id uuid.UUID) error {
	var schedule models.Schedule
	if err := s.db.First(&schedule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("lookup schedule: %w", err)
	}

	if schedule.TriggerID != nil {
		s.scheduler.Revoke(cron.EntryID(*schedule.TriggerID))
	}

	updates := map[string]interface{}{"is_active": false, "trigger_id": nil}
	if err := s.db.Model(&schedule).Updates(updates).Error; err != nil {
		return fmt.Errorf("deactivate schedule: %w", err)
	}
	return nil
}

// ListActive returns the active schedules for a phone number, oldest first.
func (s *ScheduleService) ListActive(phone string) ([]models.Schedule, error) {
	formatted := utils.FormatPhone(phone)

	var schedules []models.Schedule
	err := s.db.Where("phone = ? AND is_active = ?", formatted, true).
		Order("created_at ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// RebuildTriggers re-registers every active schedule after a restart. The
// cron registry died with the previous process, so stored trigger ids are
// stale until this runs. Schedules whose registration fails are demoted to
// pending; boot continues.
func (s *ScheduleService) RebuildTriggers() error {
	var schedules []models.Schedule
	if err := s.db.Where("is_active = ?", true).Find(&schedules).Error; err != nil {
		return fmt.Errorf("load active schedules: %w", err)
	}

	for i := range schedules {
		schedule := &schedules[i]

		hour, minute, err := utils.ParseClockTime(schedule.ScheduledTime)
		if err != nil {
			log.Printf("Schedule %s has bad scheduled_time %q: %v", schedule.ID, schedule.ScheduledTime, err)
			continue
		}

		triggerID, err := s.scheduler.Register(schedule.Phone, schedule.MessageType, hour, minute, schedule.ID)
		if err != nil {
			log.Printf("Schedule %s demoted to pending: %v", schedule.ID, err)
			demote := map[string]interface{}{"is_active": false, "trigger_id": nil}
			if err := s.db.Model(schedule).Updates(demote).Error; err != nil {
				log.Printf("Schedule %s: failed to demote: %v", schedule.ID, err)
			}
			continue
		}

		if err := s.activate(schedule, triggerID); err != nil {
			log.Printf("Schedule %s: failed to store rebuilt trigger id: %v", schedule.ID, err)
		}
	}

	log.Printf("Rebuilt triggers for %d schedule(s)", len(schedules))
	return nil
}
