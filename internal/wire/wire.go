// Package wire provides dependency injection for the nitfix application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"
	"time"

	"github.com/example/nitfix/internal/adapters/filesystem"
	gitadapter "github.com/example/nitfix/internal/adapters/git"
	"github.com/example/nitfix/internal/adapters/github"
	"github.com/example/nitfix/internal/adapters/sqlite"
	"github.com/example/nitfix/internal/adapters/tmux"
	"github.com/example/nitfix/internal/app"
	"github.com/example/nitfix/internal/config"
	"github.com/example/nitfix/internal/db"
	"github.com/example/nitfix/internal/engine"
	"github.com/example/nitfix/internal/ports/primary"
	"github.com/example/nitfix/internal/ports/secondary"
	"github.com/example/nitfix/internal/web"
)

var (
	cfg           *config.Config
	activityLog   *sqlite.ActivityLog
	fixService    primary.FixService
	submitService *app.SubmissionService
	controller    *engine.Controller
	interaction   *engine.Interaction
	webServer     *web.Server
	once          sync.Once
)

// Config returns the loaded configuration, with defaults when no config
// file exists yet.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// FixService returns the singleton FixService instance.
func FixService() primary.FixService {
	once.Do(initServices)
	return fixService
}

// SubmitService returns the singleton SubmitService instance.
func SubmitService() primary.SubmitService {
	once.Do(initServices)
	return submitService
}

// Controller returns the singleton task controller.
func Controller() *engine.Controller {
	once.Do(initServices)
	return controller
}

// Interaction returns the singleton interaction channel.
func Interaction() *engine.Interaction {
	once.Do(initServices)
	return interaction
}

// WebServer returns the singleton operator web server.
func WebServer() *web.Server {
	once.Do(initServices)
	return webServer
}

// SessionManager returns a tmux-backed session manager. Built per call
// rather than as a singleton: construction fails when no tmux server is
// reachable, and only the attach command needs one.
func SessionManager() (secondary.SessionManager, error) {
	return tmux.NewGotmuxAdapter()
}

// ActivityLog returns the singleton activity log adapter. Exposed directly
// because the status command reads recent entries beyond the port surface.
func ActivityLog() *sqlite.ActivityLog {
	once.Do(initServices)
	return activityLog
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	loaded, err := config.Load()
	if err != nil {
		// No config yet (fresh install, or init not run). Defaults keep
		// read-only commands working.
		loaded = &config.Config{
			WebAddr:    config.DefaultWebAddr,
			BaseBranch: config.DefaultBaseBranch,
		}
	}
	cfg = loaded

	// Secondary adapters
	store := sqlite.NewKVStore(database)
	activityLog = sqlite.NewActivityLog(database)
	gitPort := gitadapter.NewAdapter()
	hosting := github.NewAdapter()
	workspace := filesystem.NewWorkspaceAdapter()

	// Services (primary ports implementation)
	fixService = app.NewFixService(store, gitPort, activityLog)
	submitService = app.NewSubmissionService(store, gitPort, hosting, workspace, activityLog, cfg)

	// Engine: controller over the fixed handler table, one worker channel
	controller = engine.NewController(submitService.Handlers())
	submitService.Bind(controller)
	interaction = engine.NewInteraction(time.Duration(config.DefaultWakeInterval) * time.Second)

	webServer = web.NewServer(interaction)
}
