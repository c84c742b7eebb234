package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"uplift-backend/models"
	"uplift-backend/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Schedule{}, &models.MessageLog{}, &models.ReplyLog{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fakeScheduler struct {
	fail    bool
	lastID  cron.EntryID
	entries map[cron.EntryID]uuid.UUID
	revoked []cron.EntryID
}

var _ services.TriggerScheduler = (*fakeScheduler)(nil)

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{entries: make(map[cron.EntryID]uuid.UUID)}
}

func (f *fakeScheduler) Register(phone, messageType string, hour, minute int, scheduleID uuid.UUID) (cron.EntryID, error) {
	if f.fail {
		return 0, fmt.Errorf("scheduling backend unavailable")
	}
	f.lastID++
	f.entries[f.lastID] = scheduleID
	return f.lastID, nil
}

func (f *fakeScheduler) Revoke(id cron.EntryID) {
	f.revoked = append(f.revoked, id)
	delete(f.entries, id)
}

type fakeProvider struct {
	degraded bool
}

var _ services.ContentProvider = (*fakeProvider)(nil)

func (f *fakeProvider) GenerateMotivational(ctx context.Context, messageType string) (string, bool) {
	if f.degraded {
		return services.FallbackText(messageType), true
	}
	return "Go crush it today!", false
}

func (f *fakeProvider) GenerateReply(ctx context.Context, inbound string) (string, bool) {
	if f.degraded {
		return "I hear you! Remember, every small step counts.", true
	}
	return "Proud of you for checking in!", false
}

type fakeSender struct {
	err   error
	calls int
}

var _ services.MessageSender = (*fakeSender)(nil)

func (f *fakeSender) Send(to, body string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "SM123", nil
}
