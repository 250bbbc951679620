// Package errreport holds the application's current error and publishes
// changes to it on the bubbletea event loop.
//
// Producers call Report from any goroutine. The value only changes when the
// event loop processes the resulting ReportedMsg, so every read and every
// observer callback happens on the UI goroutine.
package errreport

import (
	"io"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the reporter's presentation state.
type State int

const (
	// Idle means there is no current error.
	Idle State = iota
	// Showing means an error is waiting to be acknowledged.
	Showing
)

func (s State) String() string {
	if s == Showing {
		return "showing"
	}
	return "idle"
}

// Change describes an assignment to the current error.
type Change struct {
	Previous error
	Current  error
}

// Shown reports whether the change moves the reporter from Idle to Showing.
func (c Change) Shown() bool {
	return c.Previous == nil && c.Current != nil
}

// Hidden reports whether the change moves the reporter from Showing to Idle.
func (c Change) Hidden() bool {
	return c.Previous != nil && c.Current == nil
}

// ReportedMsg carries a reported error onto the event loop.
type ReportedMsg struct {
	Err error
}

type observer struct {
	id int
	fn func(Change)
}

// Reporter is the single error channel shared by producers and the UI.
// Create one in main and hand the same pointer to everything that needs it.
type Reporter struct {
	logger *slog.Logger

	// Mailbox, written from any goroutine.
	mu      sync.Mutex
	pending error
	wake    chan struct{}
	done    chan struct{}
	closed  sync.Once

	// Event loop only.
	current   error
	observers []observer
	nextID    int
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reporter) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Reporter in the Idle state.
func New(opts ...Option) *Reporter {
	r := &Reporter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report schedules err to become the current error. It never blocks.
// Reports that arrive before the event loop catches up overwrite each other;
// only the latest one is delivered. A nil error is ignored.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	if debugBuild {
		r.logger.Info("error reported", "error", err.Error())
	}

	r.mu.Lock()
	r.pending = err
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
		// Listener already signalled; it will pick up the new value.
	}
}

// Listen returns a command that waits for the next report.
// The returned message is a ReportedMsg, or nil once the reporter is closed.
func (r *Reporter) Listen() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-r.done:
				return nil
			case <-r.wake:
			}
			if err := r.takePending(); err != nil {
				return ReportedMsg{Err: err}
			}
		}
	}
}

func (r *Reporter) takePending() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.pending
	r.pending = nil
	return err
}

// Update applies a ReportedMsg and re-arms the listener.
// Must be called from the event loop. Other messages are ignored.
func (r *Reporter) Update(msg tea.Msg) tea.Cmd {
	reported, ok := msg.(ReportedMsg)
	if !ok || reported.Err == nil {
		return nil
	}
	r.set(reported.Err)
	return r.Listen()
}

// Clear empties the current error. Must be called from the event loop.
// Clearing while Idle does nothing.
func (r *Reporter) Clear() {
	if r.current == nil {
		return
	}
	r.set(nil)
}

// Current returns the current error, or nil.
func (r *Reporter) Current() error {
	return r.current
}

// State returns Showing while an error is current.
func (r *Reporter) State() State {
	if r.current != nil {
		return Showing
	}
	return Idle
}

// Subscribe registers fn to run after every change of the current error.
// Observers run synchronously on the event loop in subscription order.
func (r *Reporter) Subscribe(fn func(Change)) (unsubscribe func()) {
	r.nextID++
	id := r.nextID
	r.observers = append(r.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range r.observers {
			if o.id == id {
				r.observers = append(r.observers[:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

// Close releases any goroutine blocked in a Listen command.
func (r *Reporter) Close() {
	r.closed.Do(func() {
		close(r.done)
	})
}

func (r *Reporter) set(err error) {
	change := Change{Previous: r.current, Current: err}
	r.current = err

	// Copy so observers may unsubscribe while being notified.
	observers := make([]observer, len(r.observers))
	copy(observers, r.observers)
	for _, o := range observers {
		o.fn(change)
	}
}
