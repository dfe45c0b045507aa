package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultWakeInterval bounds how long the worker stays parked before
// re-checking the liveness flag. Shutdown latency is at most one interval.
const DefaultWakeInterval = 10 * time.Second

// ErrStopped is returned from Ask when the channel is stopped while a
// question is outstanding. The in-flight task unwinds as failed.
var ErrStopped = errors.New("interaction channel stopped")

// Interaction is the single-slot rendezvous between the worker goroutine and
// responder threads. Exactly one task executes at a time, so at most one
// question is ever outstanding; the slot is a single value, not a queue.
//
// One mutex guards the message log, the pending question, and the answer
// slot. Responders only ever call Answer and Render; Ask is worker-only.
type Interaction struct {
	mu        sync.Mutex
	alive     bool
	startedAt time.Time
	messages  []string
	pending   *Question
	answer    *string
	notify    chan struct{}
	done      chan struct{}
	wake      time.Duration
}

// NewInteraction creates an interaction channel with the given wake
// interval; zero means DefaultWakeInterval.
func NewInteraction(wake time.Duration) *Interaction {
	if wake <= 0 {
		wake = DefaultWakeInterval
	}
	return &Interaction{
		notify: make(chan struct{}, 1),
		wake:   wake,
	}
}

// Send appends a line to the message log.
func (s *Interaction) Send(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
}

// Ask publishes q as the pending question and parks the calling goroutine
// until a matching answer arrives or the channel is stopped. Any stale
// answer is discarded first. Must only be called from the worker goroutine.
func (s *Interaction) Ask(q Question) (string, error) {
	s.mu.Lock()
	s.answer = nil
	s.pending = &q
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if s.answer != nil {
			value := *s.answer
			s.answer = nil
			s.pending = nil
			s.mu.Unlock()
			return value, nil
		}
		if !s.alive {
			s.pending = nil
			s.mu.Unlock()
			return "", ErrStopped
		}
		s.mu.Unlock()

		// Genuine bounded wait: woken early by Answer/Stop, otherwise
		// the timeout caps how stale the liveness check can get.
		select {
		case <-s.notify:
		case <-time.After(s.wake):
		}
	}
}

// Answer delivers the operator's reply. A reply whose id does not match the
// outstanding question (or arriving when none is outstanding) is silently
// dropped; stale and duplicate submissions are expected, never errors.
func (s *Interaction) Answer(id uuid.UUID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil || s.pending.ID != id {
		return
	}
	v := value
	s.answer = &v
	s.pending = nil
	s.wakeWorker()
}

// Page is a consistent snapshot of the channel for the display layer.
type Page struct {
	Messages []string
	Question *Question
}

// Render snapshots the message log and the pending question under the same
// lock used by Ask/Answer, so concurrent reads never observe a half state.
func (s *Interaction) Render() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]string, len(s.messages))
	copy(msgs, s.messages)
	var q *Question
	if s.pending != nil {
		copied := *s.pending
		q = &copied
	}
	return Page{Messages: msgs, Question: q}
}

// Start spins up the worker goroutine draining tasks from ctrl. If a worker
// is already active it is stopped first; only one worker runs per channel.
func (s *Interaction) Start(ctrl *Controller) {
	s.mu.Lock()
	if s.done != nil {
		s.mu.Unlock()
		s.Stop()
		s.mu.Lock()
	}
	s.alive = true
	s.startedAt = time.Now()
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		s.run(ctrl)
	}()
}

// Stop clears the liveness flag, wakes the worker, and blocks until the
// worker goroutine has exited. Timing state is reset.
func (s *Interaction) Stop() {
	s.mu.Lock()
	if s.done == nil {
		s.mu.Unlock()
		return
	}
	s.alive = false
	done := s.done
	s.done = nil
	s.wakeWorker()
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	s.startedAt = time.Time{}
	s.mu.Unlock()
}

// StartedAt reports when the current worker was started; zero when stopped.
func (s *Interaction) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// run is the worker loop: one task at a time, handler errors logged and
// swallowed, empty queue parked on the bounded wait.
func (s *Interaction) run(ctrl *Controller) {
	for {
		s.mu.Lock()
		alive := s.alive
		s.mu.Unlock()
		if !alive {
			return
		}

		t, ok := ctrl.next()
		if !ok {
			select {
			case <-s.notify:
			case <-time.After(s.wake):
			}
			continue
		}

		ctx := &Context{Controller: ctrl, Interaction: s, Task: t}
		if err := ctrl.dispatch(t.Name)(ctx); err != nil {
			s.Send("task " + t.Name + " for " + t.Reponame + " failed: " + err.Error())
		}
	}
}

// wakeWorker nudges the worker without blocking; callers hold s.mu.
func (s *Interaction) wakeWorker() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}
