// Package web serves the operator form: a single page showing the message
// log and, when a task is blocked on input, the outstanding question.
// Answers arrive by plain form POST; the page is meant to be refreshed.
package web

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/google/uuid"

	"github.com/example/nitfix/internal/engine"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>nitfix</title><meta charset="utf-8"></head>
<body>
<h1>nitfix</h1>
{{range .Messages}}<p>{{.}}</p>
{{end}}{{if .Form}}{{.Form}}{{else}}<p><em>No task is waiting for input.</em></p>{{end}}
</body>
</html>
`))

type pageData struct {
	Messages []string
	Form     template.HTML
}

// Server exposes the interaction channel over HTTP.
type Server struct {
	interaction *engine.Interaction
	mux         *http.ServeMux
}

// NewServer creates the operator web server over the given channel.
func NewServer(interaction *engine.Interaction) *Server {
	s := &Server{
		interaction: interaction,
		mux:         http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/answer", s.handleAnswer)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving the operator form on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve web form on %s: %w", addr, err)
	}
	return nil
}

// handleIndex renders the message log and the pending question, if any.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page := s.interaction.Render()
	data := pageData{Messages: page.Messages}
	if page.Question != nil {
		// FormHTML escapes the question text itself; the fragment is
		// trusted markup here.
		data.Form = template.HTML(page.Question.FormHTML())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// handleAnswer accepts an operator reply. Replies for stale or unknown
// questions are accepted and dropped, mirroring the channel's semantics:
// a late double-submit is normal, not an error.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(r.PostFormValue("uuid"))
	if err != nil {
		http.Error(w, "bad question id", http.StatusBadRequest)
		return
	}
	s.interaction.Answer(id, r.PostFormValue("value"))

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
