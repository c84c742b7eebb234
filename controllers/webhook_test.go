package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"uplift-backend/models"
)

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookReplyAnswersWithTwiML(t *testing.T) {
	r, db := newTestRouter(t)

	w := postForm(r, "/webhook/twilio-reply", url.Values{
		"From": {"+15551234567"},
		"Body": {"I skipped my workout"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/xml") {
		t.Fatalf("expected text/xml response, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "<Message>") {
		t.Fatalf("expected TwiML message, body=%s", w.Body.String())
	}

	var logs []models.ReplyLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("load reply logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected one reply log row, got %d", len(logs))
	}
	if logs[0].IncomingMessage != "I skipped my workout" {
		t.Fatalf("reply log mismatch: %+v", logs[0])
	}
}

func TestWebhookReplyEmptyBodyStillAnswers(t *testing.T) {
	r, db := newTestRouter(t)

	w := postForm(r, "/webhook/twilio-reply", url.Values{
		"From": {"+15551234567"},
		"Body": {""},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<Message>") {
		t.Fatalf("expected a non-empty TwiML message, body=%s", w.Body.String())
	}

	var count int64
	db.Model(&models.ReplyLog{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one reply log row, got %d", count)
	}
}

func TestWebhookTestEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/webhook/webhook-test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "active") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
