// services/scheduler.go
package services

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// TriggerScheduler owns the registry of recurring daily firings. The registry
// is in-memory only and dies with the process;
// ScheduleService.RebuildTriggers repopulates it on boot.
type TriggerScheduler interface {
	// Register installs a daily firing and returns its trigger id. Callers
	// must not register the same schedule twice.
	Register(phone, messageType string, hour, minute int, scheduleID uuid.UUID) (cron.EntryID, error)
	// Revoke drops the pending and future firings for a trigger. Unknown or
	// already-revoked ids are a no-op; an in-flight firing is left to finish.
	Revoke(id cron.EntryID)
}

// CronScheduler backs the trigger registry with a robfig/cron runner. Entries
// fire on the runner's goroutines, so Register never waits on a firing.
type CronScheduler struct {
	cron     *cron.Cron
	pipeline *DeliveryPipeline
}

func NewCronScheduler(pipeline *DeliveryPipeline) *CronScheduler {
	return &CronScheduler{
		cron:     cron.New(),
		pipeline: pipeline,
	}
}

func (s *CronScheduler) Start() {
	s.cron.Start()
	log.Println("Reminder scheduler started")
}

// Stop halts dispatching and waits for in-flight firings to complete.
func (s *CronScheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("Reminder scheduler stopped")
}

func (s *CronScheduler) Register(phone, messageType string, hour, minute int, scheduleID uuid.UUID) (cron.EntryID, error) {
	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	id, err := s.cron.AddFunc(spec, func() {
		s.pipeline.Fire(phone, messageType, scheduleID)
	})
	if err != nil {
		return 0, fmt.Errorf("register daily trigger %q: %w", spec, err)
	}
	return id, nil
}

func (s *CronScheduler) Revoke(id cron.EntryID) {
	s.cron.Remove(id)
}
