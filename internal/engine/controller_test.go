package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/example/nitfix/internal/core/task"
)

func TestAddRejectsUnregisteredName(t *testing.T) {
	ctrl := NewController(map[string]Handler{
		task.Submit: func(*Context) error { return nil },
	})

	if err := ctrl.Add(task.Task{Name: "release", Reponame: "demo"}); err == nil {
		t.Error("expected error for unregistered task name")
	}
	if err := ctrl.Add(task.Task{Name: task.Submit}); err == nil {
		t.Error("expected error for missing reponame")
	}
	if ctrl.Pending() != 0 {
		t.Errorf("Pending() = %d after rejected adds, want 0", ctrl.Pending())
	}
}

func TestPriorityThenFIFOOrder(t *testing.T) {
	noop := func(*Context) error { return nil }
	ctrl := NewController(map[string]Handler{
		task.Submit:  noop,
		task.PlainPR: noop,
		task.Cleanup: noop,
	})

	// Priorities [5, 20, 5]: the 20 runs first, the 5s keep insertion order
	adds := []task.Task{
		{Name: task.Submit, Priority: 5, Reponame: "first"},
		{Name: task.Cleanup, Priority: 20, Reponame: "urgent"},
		{Name: task.PlainPR, Priority: 5, Reponame: "second"},
	}
	for _, tsk := range adds {
		if err := ctrl.Add(tsk); err != nil {
			t.Fatalf("Add(%s) failed: %v", tsk.Name, err)
		}
	}

	var order []string
	for {
		tsk, ok := ctrl.next()
		if !ok {
			break
		}
		order = append(order, tsk.Reponame)
	}

	want := []string{"urgent", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("executed %d tasks, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestNonInteractiveTaskMayNotAsk(t *testing.T) {
	s := NewInteraction(10 * time.Millisecond)
	ctrl := NewController(map[string]Handler{
		task.PlainPR: func(*Context) error { return nil },
	})

	ctx := &Context{
		Controller:  ctrl,
		Interaction: s,
		Task:        task.Task{Name: task.PlainPR, Interactive: false, Reponame: "demo"},
	}

	if _, err := ctx.Confirm("really?", true); err == nil {
		t.Error("expected error from Confirm on non-interactive task")
	}
	if _, err := ctx.Input("name?"); err == nil {
		t.Error("expected error from Input on non-interactive task")
	}
}

func TestConfirmationParsing(t *testing.T) {
	q := NewConfirmation("continue?", true)
	cases := map[string]bool{
		"":      true, // default
		"yes":   true,
		"y":     true,
		"true":  true,
		"no":    false,
		"nope":  false,
		"NO":    false,
		"other": false,
	}
	for value, want := range cases {
		if got := q.parseConfirmation(value); got != want {
			t.Errorf("parseConfirmation(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestFormHTMLEmbedsIdentifier(t *testing.T) {
	q := NewInput("branch <name>?")
	html := q.FormHTML()
	if !strings.Contains(html, q.ID.String()) {
		t.Error("FormHTML() missing question identifier")
	}
	if !strings.Contains(html, "branch &lt;name&gt;?") {
		t.Error("FormHTML() did not escape the message")
	}

	conf := NewConfirmation("proceed?", false)
	if !strings.Contains(conf.FormHTML(), `value="yes"`) {
		t.Error("confirmation FormHTML() missing yes button")
	}
}
