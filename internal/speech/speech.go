// Package speech implements voice input for answers: a capture loop
// that accumulates recognized text and restarts the engine when a run
// ends early, which recognition backends routinely do on silence.
package speech

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/krish230803/Ai-Interview-System/internal/log"
)

// ErrNoSpeech is the benign "heard nothing" outcome of a recognition
// run. It is never surfaced to the user; the capture loop just keeps
// listening.
var ErrNoSpeech = errors.New("no speech detected")

// ErrAlreadyRecording is returned when Start is called on an active
// capture.
var ErrAlreadyRecording = errors.New("already recording")

// Result is one recognition event. Interim results carry the current
// hypothesis for the in-progress utterance and are replaced wholesale
// by the next event; final results are committed to the answer.
type Result struct {
	Transcript string
	Final      bool
	Err        error
}

// Engine is a speech recognition backend. Start begins one
// recognition run and returns its result stream; the engine closes
// the channel when the run ends, whether by Stop or on its own.
type Engine interface {
	Start() (<-chan Result, error)
	Stop()
}

// Guard exposes the session flags the capture loop consults before
// restarting a run.
type Guard interface {
	IsSubmitting() bool
	SetRecording(bool)
	IsRecording() bool
}

// Capture owns the microphone lifecycle for one answer. Recognized
// text accumulates as committed + interim: finals append to the
// committed prefix, interims overwrite the suffix.
type Capture struct {
	engine       Engine
	guard        Guard
	logger       *log.Logger
	restartDelay time.Duration

	// OnUpdate is called with the full current text after every
	// recognition event. Invoked from the capture goroutine.
	OnUpdate func(text string)

	// OnError is called for real engine failures. No-speech runs do
	// not reach it.
	OnError func(err error)

	mu            sync.Mutex
	committed     string
	interim       string
	active        bool
	stopRequested bool
	done          chan struct{}
}

// NewCapture wires a Capture. logger may be nil.
func NewCapture(engine Engine, guard Guard, restartDelay time.Duration, logger *log.Logger) *Capture {
	return &Capture{
		engine:       engine,
		guard:        guard,
		logger:       logger,
		restartDelay: restartDelay,
	}
}

// Start begins capturing. Committed text already present is kept, so
// a user can stop, type, and resume dictating into the same answer.
func (c *Capture) Start() error {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return ErrAlreadyRecording
	}
	c.active = true
	c.stopRequested = false
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	ch, err := c.engine.Start()
	if err != nil {
		c.mu.Lock()
		c.active = false
		c.mu.Unlock()
		close(done)
		return err
	}

	c.guard.SetRecording(true)
	c.logEvent(log.LogEvent{Event: log.EventSpeechStarted})

	go c.loop(ch, done)
	return nil
}

// Stop ends capturing. Interim text is promoted to committed so
// whatever was on screen stays in the answer.
func (c *Capture) Stop() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.stopRequested = true
	done := c.done
	c.mu.Unlock()

	c.engine.Stop()
	<-done
}

// Active reports whether capture is running.
func (c *Capture) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Text returns the full recognized text: committed plus interim.
func (c *Capture) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text()
}

// SetText replaces the committed text, e.g. after the user edits the
// answer by hand. Pending interim text is discarded.
func (c *Capture) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.committed = text
	c.interim = ""
}

// Clear resets the buffer for the next question.
func (c *Capture) Clear() {
	c.SetText("")
}

func (c *Capture) text() string {
	if c.interim == "" {
		return c.committed
	}
	if c.committed == "" {
		return c.interim
	}
	return strings.TrimRight(c.committed, " ") + " " + c.interim
}

func (c *Capture) loop(ch <-chan Result, done chan struct{}) {
	defer close(done)

	for {
		for res := range ch {
			if res.Err != nil {
				if errors.Is(res.Err, ErrNoSpeech) {
					continue
				}
				c.logEvent(log.LogEvent{Event: log.EventSpeechError, Error: res.Err.Error()})
				c.finish()
				if c.OnError != nil {
					c.OnError(res.Err)
				}
				return
			}
			c.apply(res)
		}

		// The run ended. Restart unless the user stopped it or the
		// answer is already being submitted.
		c.mu.Lock()
		stopped := c.stopRequested
		c.mu.Unlock()
		if stopped || c.guard.IsSubmitting() {
			c.finish()
			return
		}

		time.Sleep(c.restartDelay)

		// Stop may have landed during the delay.
		c.mu.Lock()
		stopped = c.stopRequested
		c.mu.Unlock()
		if stopped {
			c.finish()
			return
		}

		var err error
		ch, err = c.engine.Start()
		if err != nil {
			c.logEvent(log.LogEvent{Event: log.EventSpeechError, Error: err.Error()})
			c.finish()
			if c.OnError != nil {
				c.OnError(err)
			}
			return
		}

		// Stop sets the flag before it reaches the engine, so a Stop
		// racing the restart may have hit the run that already ended.
		// Re-check here and end the fresh run ourselves, or Stop would
		// wait on a run it never reached.
		c.mu.Lock()
		stopped = c.stopRequested
		c.mu.Unlock()
		if stopped {
			c.engine.Stop()
			for range ch {
			}
			c.finish()
			return
		}
	}
}

func (c *Capture) apply(res Result) {
	c.mu.Lock()
	if res.Final {
		t := strings.TrimSpace(res.Transcript)
		if t != "" {
			if c.committed == "" {
				c.committed = t
			} else {
				c.committed = strings.TrimRight(c.committed, " ") + " " + t
			}
		}
		c.interim = ""
	} else {
		c.interim = res.Transcript
	}
	text := c.text()
	c.mu.Unlock()

	if c.OnUpdate != nil {
		c.OnUpdate(text)
	}
}

// finish promotes interim text and clears the recording flags.
func (c *Capture) finish() {
	c.mu.Lock()
	if c.interim != "" {
		if c.committed == "" {
			c.committed = c.interim
		} else {
			c.committed = strings.TrimRight(c.committed, " ") + " " + c.interim
		}
		c.interim = ""
	}
	c.active = false
	c.mu.Unlock()

	c.guard.SetRecording(false)
	c.logEvent(log.LogEvent{Event: log.EventSpeechStopped})
}

func (c *Capture) logEvent(event log.LogEvent) {
	if c.logger == nil {
		return
	}
	_ = c.logger.Append(event)
}
