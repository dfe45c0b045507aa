package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/example/nitfix/internal/engine"
)

func TestIndexShowsMessages(t *testing.T) {
	interaction := engine.NewInteraction(5 * time.Millisecond)
	interaction.Send("Created PR #7 view at https://example.invalid/pr/7")
	srv := NewServer(interaction)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Created PR #7") {
		t.Errorf("body missing log line:\n%s", body)
	}
	if !strings.Contains(body, "No task is waiting for input.") {
		t.Errorf("idle page missing placeholder:\n%s", body)
	}
}

func TestIndexShowsPendingQuestionForm(t *testing.T) {
	interaction := engine.NewInteraction(5 * time.Millisecond)
	interaction.Start(engine.NewController(nil))
	t.Cleanup(interaction.Stop)
	srv := NewServer(interaction)

	q := engine.NewConfirmation("Remove the working copy?", true)
	answered := make(chan error, 1)
	go func() {
		_, err := interaction.Ask(q)
		answered <- err
	}()

	// Wait for the question to be published.
	deadline := time.Now().Add(time.Second)
	for interaction.Render().Question == nil {
		if time.Now().After(deadline) {
			t.Fatal("question never became pending")
		}
		time.Sleep(time.Millisecond)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "Remove the working copy?") {
		t.Errorf("body missing question text:\n%s", body)
	}
	if !strings.Contains(body, q.ID.String()) {
		t.Errorf("body missing question id:\n%s", body)
	}
	if !strings.Contains(body, `action="/answer"`) {
		t.Errorf("body missing answer form:\n%s", body)
	}

	// Unblock the worker goroutine.
	interaction.Answer(q.ID, "yes")
	if err := <-answered; err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
}

func TestAnswerDeliversMatchingReply(t *testing.T) {
	interaction := engine.NewInteraction(5 * time.Millisecond)
	interaction.Start(engine.NewController(nil))
	t.Cleanup(interaction.Stop)
	srv := NewServer(interaction)

	q := engine.NewInput("Name the branch")
	result := make(chan string, 1)
	go func() {
		value, err := interaction.Ask(q)
		if err != nil {
			result <- "error: " + err.Error()
			return
		}
		result <- value
	}()

	deadline := time.Now().Add(time.Second)
	for interaction.Render().Question == nil {
		if time.Now().After(deadline) {
			t.Fatal("question never became pending")
		}
		time.Sleep(time.Millisecond)
	}

	form := url.Values{"uuid": {q.ID.String()}, "value": {"bugfix_typo_receive"}}
	req := httptest.NewRequest(http.MethodPost, "/answer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", w.Code)
	}
	select {
	case got := <-result:
		if got != "bugfix_typo_receive" {
			t.Errorf("Ask returned %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Ask did not unblock")
	}
}

func TestAnswerDropsStaleReply(t *testing.T) {
	interaction := engine.NewInteraction(5 * time.Millisecond)
	srv := NewServer(interaction)

	// No question outstanding; a stale double-submit is accepted quietly.
	form := url.Values{"uuid": {uuid.NewString()}, "value": {"yes"}}
	req := httptest.NewRequest(http.MethodPost, "/answer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want redirect even for stale replies", w.Code)
	}
}

func TestAnswerRejectsBadID(t *testing.T) {
	srv := NewServer(engine.NewInteraction(5 * time.Millisecond))

	form := url.Values{"uuid": {"not-a-uuid"}, "value": {"yes"}}
	req := httptest.NewRequest(http.MethodPost, "/answer", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAnswerRejectsGet(t *testing.T) {
	srv := NewServer(engine.NewInteraction(5 * time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/answer", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}
