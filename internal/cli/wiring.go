// wiring.go assembles the controllers shared by the TUI and the
// non-interactive commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/krish230803/Ai-Interview-System/internal/api"
	"github.com/krish230803/Ai-Interview-System/internal/auth"
	"github.com/krish230803/Ai-Interview-System/internal/config"
	"github.com/krish230803/Ai-Interview-System/internal/dashboard"
	"github.com/krish230803/Ai-Interview-System/internal/flow"
	"github.com/krish230803/Ai-Interview-System/internal/log"
	"github.com/krish230803/Ai-Interview-System/internal/retry"
	"github.com/krish230803/Ai-Interview-System/internal/session"
	"github.com/krish230803/Ai-Interview-System/internal/speech"
	"github.com/krish230803/Ai-Interview-System/internal/storage"
	"github.com/krish230803/Ai-Interview-System/internal/tui"
)

// historyFile is the SQLite database holding completed interviews.
const historyFile = "history.db"

// transcriptEnv names a file or FIFO that an external speech-to-text
// tool appends transcript lines to. When set, dictation reads from it.
const transcriptEnv = "AIINTERVIEW_TRANSCRIPT"

// buildDeps wires the full dependency graph. The returned func closes
// everything that holds resources.
func buildDeps() (tui.Deps, func(), error) {
	var deps tui.Deps

	cfg, err := config.Load()
	if err != nil {
		return deps, nil, err
	}

	dir, err := config.Dir()
	if err != nil {
		return deps, nil, err
	}

	logger, err := log.NewLogger(dir)
	if err != nil {
		return deps, nil, fmt.Errorf("opening event log: %w", err)
	}

	client, err := api.NewClient(cfg.API.BaseURL, cfg.Timeout())
	if err != nil {
		return deps, nil, err
	}

	cache, err := storage.NewStore(dir)
	if err != nil {
		return deps, nil, err
	}

	state := session.NewState(cfg.Interview.TotalQuestions)
	policy := retry.Fixed(cfg.Interview.MaxAttempts, cfg.RetryDelay())
	flowCtrl := flow.NewController(client, state, policy, logger)

	history, err := session.NewStore(filepath.Join(dir, historyFile))
	if err != nil {
		return deps, nil, fmt.Errorf("opening history database: %w", err)
	}

	deps = tui.Deps{
		Cfg:      cfg,
		Auth:     auth.NewController(client, cache, logger),
		Flow:     flowCtrl,
		Session:  state,
		Renderer: dashboard.NewRenderer(logger),
		History:  history,
	}

	// Dictation degrades gracefully: without a transcript source the
	// rest of the client works unchanged.
	if capture := wireSpeech(cfg, state, logger); capture != nil {
		deps.Capture = capture
		flowCtrl.SetRecorder(capture)
	}

	closeDeps := func() { _ = history.Close() }
	return deps, closeDeps, nil
}

// wireSpeech builds the capture pipeline when voice input is enabled
// and a transcript source is available. Returns nil otherwise.
func wireSpeech(cfg *config.Config, state *session.State, logger *log.Logger) *speech.Capture {
	if !cfg.Speech.Enabled {
		return nil
	}
	path := os.Getenv(transcriptEnv)
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		_ = logger.Append(log.LogEvent{Event: log.EventSpeechError, Error: err.Error()})
		return nil
	}
	return speech.NewCapture(speech.NewReaderEngine(f), state, cfg.SpeechRestartDelay(), logger)
}
