// Package spinner renders a single-line progress spinner from a background
// goroutine that can be stopped and joined.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
)

// Frames are the glyphs cycled by the spinner: | / - \
var Frames = bspinner.Line.Frames

// DefaultInterval is the delay between two frames.
const DefaultInterval = 200 * time.Millisecond

// Spinner writes "\r<message> <frame>" to its writer until stopped. Only the
// spinner goroutine writes while it runs; once AwaitStopped returns it never
// writes again.
type Spinner struct {
	w        io.Writer
	message  string
	final    string
	interval time.Duration

	started  bool
	stop     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// New returns a spinner that shows message and prints final on its own line
// once stopped.
func New(w io.Writer, message, final string) *Spinner {
	return &Spinner{
		w:        w,
		message:  message,
		final:    final,
		interval: DefaultInterval,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// WithInterval overrides the frame interval.
func (s *Spinner) WithInterval(d time.Duration) *Spinner {
	if d > 0 {
		s.interval = d
	}
	return s
}

// Start launches the spinner goroutine. Calling Start twice is a no-op.
func (s *Spinner) Start() {
	if s.started {
		return
	}
	s.started = true
	go s.loop()
}

// RequestStop signals the spinner to finish. It does not wait.
func (s *Spinner) RequestStop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// AwaitStopped blocks until the spinner goroutine has written its final line
// and exited. It returns immediately if the spinner was never started.
func (s *Spinner) AwaitStopped() {
	if !s.started {
		return
	}
	<-s.stopped
}

// Stop requests a stop and waits for it.
func (s *Spinner) Stop() {
	s.RequestStop()
	s.AwaitStopped()
}

func (s *Spinner) loop() {
	defer close(s.stopped)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for i := 0; ; i++ {
		_, _ = fmt.Fprintf(s.w, "\r%s %s", s.message, Frames[i%len(Frames)])
		select {
		case <-s.stop:
			pad := len(s.message) + 2 - len(s.final)
			if pad < 0 {
				pad = 0
			}
			_, _ = fmt.Fprintf(s.w, "\r%s%s\n", s.final, strings.Repeat(" ", pad))
			return
		case <-t.C:
		}
	}
}
