package speech

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
	"time"
)

// readPollInterval is how long a run waits at end-of-input before
// trying the reader again.
const readPollInterval = 50 * time.Millisecond

var errRunStopped = errors.New("run stopped")

// ReaderEngine adapts a line-oriented reader into an Engine. Each line
// becomes one final transcript. It backs dictation in environments
// without a recognition service: an external transcriber appends lines
// to a file or FIFO and the engine tails it. Hitting end-of-input does
// not end the run; the engine waits and re-reads, so lines appended
// after a regular file has been read through still arrive. Runs end
// only via Stop.
type ReaderEngine struct {
	reader *bufio.Reader
	poll   time.Duration

	// partial holds a line fragment read at end-of-input, completed
	// once the writer appends the rest. Runs are sequential, but Stop
	// can overlap a read, hence the lock.
	mu      sync.Mutex
	partial string
	stopped chan struct{}
}

// NewReaderEngine creates a ReaderEngine over r.
func NewReaderEngine(r io.Reader) *ReaderEngine {
	return &ReaderEngine{reader: bufio.NewReader(r), poll: readPollInterval}
}

// Start begins one run. The run ends when Stop is called or the reader
// fails with a real error; end-of-input just pauses it.
func (e *ReaderEngine) Start() (<-chan Result, error) {
	e.mu.Lock()
	e.stopped = make(chan struct{})
	stopped := e.stopped
	e.mu.Unlock()

	ch := make(chan Result)
	go func() {
		defer close(ch)
		for {
			line, err := e.readLine(stopped)
			if err != nil {
				if errors.Is(err, errRunStopped) {
					return
				}
				select {
				case ch <- Result{Err: err}:
				case <-stopped:
				}
				return
			}
			select {
			case ch <- Result{Transcript: line, Final: true}:
			case <-stopped:
				return
			}
		}
	}()
	return ch, nil
}

// readLine returns the next complete line, waiting out end-of-input
// until the writer appends more or the run is stopped.
func (e *ReaderEngine) readLine(stopped chan struct{}) (string, error) {
	for {
		chunk, err := e.reader.ReadString('\n')
		if err == nil {
			e.mu.Lock()
			line := e.partial + chunk
			e.partial = ""
			e.mu.Unlock()
			return strings.TrimRight(line, "\r\n"), nil
		}

		e.mu.Lock()
		e.partial += chunk
		e.mu.Unlock()

		if !errors.Is(err, io.EOF) {
			return "", err
		}
		select {
		case <-stopped:
			return "", errRunStopped
		case <-time.After(e.poll):
		}
	}
}

// Stop ends the current run.
func (e *ReaderEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped != nil {
		select {
		case <-e.stopped:
		default:
			close(e.stopped)
		}
	}
}
