// Package engine contains the task controller and the interaction channel:
// a single-worker queue whose handlers can pause mid-execution and rendezvous
// with an operator reachable only through an asynchronous web form.
package engine

import (
	"fmt"
	"html"

	"github.com/google/uuid"
)

// QuestionKind tags the question variants.
type QuestionKind int

const (
	// Confirmation is a yes/no question with a default answer.
	Confirmation QuestionKind = iota
	// Input is a free-text question.
	Input
)

// Question is the single outstanding request for operator input. The ID
// correlates an inbound answer with the question it belongs to; answers
// carrying any other ID are dropped.
type Question struct {
	ID      uuid.UUID
	Kind    QuestionKind
	Message string
	Default bool // Confirmation only
}

// NewConfirmation creates a yes/no question.
func NewConfirmation(message string, defaultVal bool) Question {
	return Question{ID: uuid.New(), Kind: Confirmation, Message: message, Default: defaultVal}
}

// NewInput creates a free-text question.
func NewInput(message string) Question {
	return Question{ID: uuid.New(), Kind: Input, Message: message}
}

// FormHTML renders the question as a form fragment, dispatched by kind.
// The question ID travels in a hidden field so the reply can be correlated.
func (q Question) FormHTML() string {
	var controls string
	switch q.Kind {
	case Confirmation:
		controls = `<table><tr><td>
<button type="submit" name="value" value="yes">Yes</button>
</td><td>
<button type="submit" name="value" value="no">No</button>
</td></tr></table>`
	case Input:
		controls = `<input type="text" name="value" value="" />
<input type="submit" value="Save" />`
	}
	return fmt.Sprintf(`<p>%s</p>
<form method="POST" action="/answer">
<input type="hidden" name="uuid" value="%s">
%s
</form>`, html.EscapeString(q.Message), q.ID, controls)
}

// parseConfirmation maps an answer string onto the yes/no domain, falling
// back to the question's default for an empty reply.
func (q Question) parseConfirmation(value string) bool {
	switch value {
	case "":
		return q.Default
	case "yes", "y", "true":
		return true
	}
	return false
}
