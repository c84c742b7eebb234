// controllers/schedule.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"uplift-backend/services"
	"uplift-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScheduleRequest defines the expected JSON structure
type ScheduleRequest struct {
	Phone       string `json:"phone" binding:"required"`
	MessageType string `json:"message_type" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

type ScheduleController struct {
	Schedules *services.ScheduleService
}

// CreateSchedule schedules a new daily SMS reminder
func (sc *ScheduleController) CreateSchedule(c *gin.Context) {
	var input ScheduleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	schedule, err := sc.Schedules.CreateSchedule(input.Phone, input.MessageType, input.Time)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.RespondWithError(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, services.ErrTriggerRegistration):
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to register reminder trigger")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create schedule")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"schedule_id": schedule.ID,
		"message":     fmt.Sprintf("Scheduled %s reminder for %s", schedule.MessageType, schedule.ScheduledTime),
	})
}

// CancelSchedule cancels a scheduled reminder
func (sc *ScheduleController) CancelSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
		return
	}

	if err := sc.Schedules.CancelSchedule(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Schedule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel schedule")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule cancelled"})
}

// ListSchedules returns all active schedules for a phone number
func (sc *ScheduleController) ListSchedules(c *gin.Context) {
	phone := c.Param("phone")

	schedules, err := sc.Schedules.ListActive(phone)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve schedules")
		return
	}

	now := time.Now()
	out := make([]gin.H, 0, len(schedules))
	for _, schedule := range schedules {
		item := gin.H{
			"id":             schedule.ID,
			"message_type":   schedule.MessageType,
			"scheduled_time": schedule.ScheduledTime,
			"created_at":     schedule.CreatedAt,
		}
		if hour, minute, err := utils.ParseClockTime(schedule.ScheduledTime); err == nil {
			item["next_run_at"] = utils.NextOccurrence(hour, minute, now)
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"phone":     utils.FormatPhone(phone),
		"schedules": out,
	})
}
