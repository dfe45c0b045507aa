package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/example/nitfix/internal/core/task"
)

// Handler executes one task to completion. Handlers chain follow-up work by
// enqueuing fresh tasks through the context's controller.
type Handler func(*Context) error

// Context is the per-task execution context handed to a handler.
type Context struct {
	Controller  *Controller
	Interaction *Interaction
	Task        task.Task
}

// Confirm asks a yes/no question and blocks for the operator's reply. Only
// interactive tasks may rendezvous; non-interactive tasks get an error.
func (c *Context) Confirm(message string, defaultVal bool) (bool, error) {
	if !c.Task.Interactive {
		return false, fmt.Errorf("non-interactive task %q may not ask questions", c.Task.Name)
	}
	q := NewConfirmation(message, defaultVal)
	value, err := c.Interaction.Ask(q)
	if err != nil {
		return false, err
	}
	return q.parseConfirmation(value), nil
}

// Input asks a free-text question and blocks for the operator's reply.
func (c *Context) Input(message string) (string, error) {
	if !c.Task.Interactive {
		return "", fmt.Errorf("non-interactive task %q may not ask questions", c.Task.Name)
	}
	return c.Interaction.Ask(NewInput(message))
}

// Send appends a line to the interaction log.
func (c *Context) Send(message string) {
	c.Interaction.Send(message)
}

type queued struct {
	t   task.Task
	seq int
}

// Controller owns the ordered task queue and the fixed dispatch table.
// The table is complete at construction; Add refuses unregistered names.
type Controller struct {
	mu       sync.Mutex
	handlers map[string]Handler
	queue    []queued
	seq      int
}

// NewController creates a controller with the given dispatch table.
func NewController(handlers map[string]Handler) *Controller {
	table := make(map[string]Handler, len(handlers))
	for name, h := range handlers {
		table[name] = h
	}
	return &Controller{handlers: table}
}

// Registered reports whether a handler exists for name.
func (c *Controller) Registered(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.handlers[name]
	return ok
}

// Add inserts a task into the queue, honoring priority (higher first) with
// FIFO stability among equal priorities.
func (c *Controller) Add(t task.Task) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, registered := c.handlers[t.Name]
	if err := (task.CanEnqueue(task.EnqueueContext{
		Name:       t.Name,
		Reponame:   t.Reponame,
		Registered: registered,
	})).Error(); err != nil {
		return err
	}

	c.queue = append(c.queue, queued{t: t, seq: c.seq})
	c.seq++
	sort.SliceStable(c.queue, func(i, j int) bool {
		if c.queue[i].t.Priority != c.queue[j].t.Priority {
			return c.queue[i].t.Priority > c.queue[j].t.Priority
		}
		return c.queue[i].seq < c.queue[j].seq
	})
	return nil
}

// Pending returns the number of queued tasks.
func (c *Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// next pops the highest-priority task, if any.
func (c *Controller) next() (task.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		return task.Task{}, false
	}
	head := c.queue[0]
	c.queue = c.queue[1:]
	return head.t, true
}

// dispatch returns the handler for name. Add validated registration, so a
// miss here is a programming error surfaced as a failing handler.
func (c *Controller) dispatch(name string) Handler {
	c.mu.Lock()
	h, ok := c.handlers[name]
	c.mu.Unlock()
	if !ok {
		return func(*Context) error {
			return fmt.Errorf("no handler registered for task %q", name)
		}
	}
	return h
}
