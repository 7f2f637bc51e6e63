// Package task provides the cancellable, pausable, single-owner long-running
// operation that hosts clustering runs (spec §4.5). A Task wraps a body
// function with a lifecycle state machine, synchronous listener dispatch,
// and a blocking result handle, so a caller can start a KMeans or G-means
// run, watch its progress, and cancel or pause it mid-flight.
package task

import (
	"sync"
	"time"

	"github.com/TIVerse/gophercluster/core"
)

// State is one of the lifecycle states a Task passes through.
type State int

const (
	// Idle is the state before start() and after reset().
	Idle State = iota
	// Running is the state between start() and the body returning.
	Running
	// Succeeded is a terminal state: the body returned nil.
	Succeeded
	// CancelledState is a terminal state: a cancel was observed.
	CancelledState
	// Errored is a terminal state: the body returned an error or panicked.
	Errored
)

// Checkpoint is handed to a task body so it can cooperatively observe cancel
// and pause requests, and report progress and messages, without reaching
// into the Task's private state.
type Checkpoint interface {
	// IsCancelled reports whether cancel() has been requested. Implements
	// core.Cancelable so external I/O collaborators can poll it too.
	IsCancelled() bool

	// IsInterrupted reports whether Cancel was called with
	// interruptIfRunning=true, meaning any blocking wait inside the body
	// should be unblocked rather than left to finish naturally.
	IsInterrupted() bool

	// Checkpoint blocks if paused, and returns core.ErrCancelled if a
	// cancel was observed either before or during the pause. Bodies should
	// call this at iteration boundaries (spec §5).
	Checkpoint() error

	// Progress reports fraction, a value in [0,1] which is rescaled into
	// the task's configured [beginProgress, endProgress] window and must
	// be monotonically non-decreasing within a run.
	Progress(fraction float64)

	// Message reports a human-readable status string.
	Message(msg string)
}

// Body is the work a Task performs. It receives a Checkpoint for
// cancellation, pause, and progress, and returns an error if it fails.
// A body observing a cancelled Checkpoint should return core.ErrCancelled
// promptly; the Task translates that into the CancelledState outcome.
type Body func(cp Checkpoint) error

// Task is a single-owner, cancellable, pausable unit of work (spec §4.5).
// The zero value is not usable; construct with New.
type Task struct {
	body Body

	mu            sync.Mutex
	cond          *sync.Cond
	state         State
	cancelled     bool
	interrupt     bool
	paused        bool
	err           error
	beginProgress float64
	endProgress   float64
	lastFraction  float64
	listeners     []core.Listener
	done          chan struct{}
}

// New constructs an Idle Task that will run body when started. Progress
// reported to listeners is bounded by a [0,1] window; SetProgressEndpoints
// narrows it before the task starts.
func New(body Body) *Task {
	t := &Task{
		body:          body,
		state:         Idle,
		beginProgress: 0,
		endProgress:   1,
		done:          make(chan struct{}),
	}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// AddListener registers a listener for synchronous lifecycle dispatch. Must
// be called before start(); listener registration is not itself
// synchronized against a concurrent start().
func (t *Task) AddListener(l core.Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, l)
}

// SetProgressEndpoints configures the [begin,end] window progress fractions
// are rescaled into. Only legal while Idle (spec §7: "set-endpoints after
// start" is InvalidState).
func (t *Task) SetProgressEndpoints(begin, end float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Idle {
		return core.NewError(core.InvalidState, "progress endpoints can only be set while idle")
	}
	if begin < 0 || end > 1 || begin > end {
		return core.Wrap(core.InvalidConfiguration, core.ErrInvalidArgument)
	}
	t.beginProgress = begin
	t.endProgress = end
	return nil
}

// State returns the task's current lifecycle state.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start acquires exclusive ownership and runs the body on the calling
// goroutine's behalf via a new goroutine; a second concurrent Start fails
// with RejectedExecution (spec §4.5). Start returns immediately; use Get to
// block for the result.
func (t *Task) Start() error {
	t.mu.Lock()
	if t.state != Idle {
		t.mu.Unlock()
		return core.Wrap(core.RejectedExecution, core.ErrAlreadyRunning)
	}
	if t.cancelled {
		t.state = CancelledState
		t.err = core.ErrCancelled
		t.done = make(chan struct{})
		done := t.done
		listeners := append([]core.Listener(nil), t.listeners...)
		t.mu.Unlock()

		for _, l := range listeners {
			l.OnBegun()
		}
		for _, l := range listeners {
			l.OnEnded(core.OutcomeCancelled)
		}
		close(done)
		return nil
	}
	t.state = Running
	t.paused = false
	t.lastFraction = 0
	t.err = nil
	t.done = make(chan struct{})
	listeners := append([]core.Listener(nil), t.listeners...)
	t.mu.Unlock()

	for _, l := range listeners {
		l.OnBegun()
	}

	go t.run(listeners)
	return nil
}

func (t *Task) run(listeners []core.Listener) {
	outcome := core.Success
	var bodyErr error

	func() {
		defer func() {
			if r := recover(); r != nil {
				outcome = core.OutcomeError
				if e, ok := r.(error); ok {
					bodyErr = e
				} else {
					bodyErr = core.NewError(core.NumericError, "task body panicked")
				}
			}
		}()
		bodyErr = t.body(&checkpoint{t: t, listeners: listeners})
	}()

	t.mu.Lock()
	switch {
	case bodyErr == nil:
		outcome = core.Success
	case bodyErr == core.ErrCancelled || t.cancelled:
		outcome = core.OutcomeCancelled
		bodyErr = core.ErrCancelled
	default:
		outcome = core.OutcomeError
	}

	switch outcome {
	case core.Success:
		t.state = Succeeded
	case core.OutcomeCancelled:
		t.state = CancelledState
	case core.OutcomeError:
		t.state = Errored
	}
	t.err = bodyErr
	done := t.done
	t.mu.Unlock()

	for _, l := range listeners {
		l.OnEnded(outcome)
	}
	close(done)
}

// Cancel requests cooperative cancellation. If the task is paused, it is
// woken so it can observe the cancel at the next checkpoint. interruptIfRunning
// additionally signals that any blocking wait inside the body should be
// unblocked; the body is responsible for honoring that signal via
// Checkpoint.IsInterrupted.
func (t *Task) Cancel(interruptIfRunning bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
	if interruptIfRunning {
		t.interrupt = true
	}
	t.cond.Broadcast()
}

// Pause requests the task park at its next checkpoint until Resume or
// Cancel. Valid only while Running; a no-op otherwise.
func (t *Task) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Running {
		t.paused = true
	}
}

// Resume wakes a parked task.
func (t *Task) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paused = false
	t.cond.Broadcast()
}

// Get blocks until the task reaches a terminal state and returns the
// result: nil on Succeeded, core.ErrCancelled on CancelledState, or the
// captured cause on Errored.
func (t *Task) Get() error {
	t.mu.Lock()
	done := t.done
	state := t.state
	t.mu.Unlock()
	if state == Idle {
		return core.Wrap(core.InvalidState, core.ErrNotTerminal)
	}
	<-done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// GetTimeout blocks until the task reaches a terminal state or timeout
// elapses, whichever comes first, returning core.ErrTimeout in the latter
// case (spec §4.5).
func (t *Task) GetTimeout(timeout time.Duration) error {
	t.mu.Lock()
	done := t.done
	state := t.state
	t.mu.Unlock()
	if state == Idle {
		return core.Wrap(core.InvalidState, core.ErrNotTerminal)
	}
	select {
	case <-done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.err
	case <-time.After(timeout):
		return core.ErrTimeout
	}
}

// Reset returns a terminal task to Idle so it can be started again. Legal
// only from a terminal state (spec §4.5).
func (t *Task) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch t.state {
	case Succeeded, CancelledState, Errored:
		t.state = Idle
		t.cancelled = false
		t.interrupt = false
		t.err = nil
		t.lastFraction = 0
		return nil
	default:
		return core.Wrap(core.InvalidState, core.ErrNotTerminal)
	}
}

// checkpoint is the Body-facing view of a Task's cancel/pause/progress state.
type checkpoint struct {
	t         *Task
	listeners []core.Listener
}

func (c *checkpoint) IsCancelled() bool {
	c.t.mu.Lock()
	defer c.t.mu.Unlock()
	return c.t.cancelled
}

func (c *checkpoint) IsInterrupted() bool {
	c.t.mu.Lock()
	defer c.t.mu.Unlock()
	return c.t.interrupt
}

func (c *checkpoint) Checkpoint() error {
	t := c.t
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancelled {
		return core.ErrCancelled
	}

	for t.paused && !t.cancelled {
		t.mu.Unlock()
		for _, l := range c.listeners {
			l.OnPaused()
		}
		t.mu.Lock()

		for t.paused && !t.cancelled {
			t.cond.Wait()
		}

		if !t.paused {
			t.mu.Unlock()
			for _, l := range c.listeners {
				l.OnResumed()
			}
			t.mu.Lock()
		}
	}

	if t.cancelled {
		return core.ErrCancelled
	}
	return nil
}

func (c *checkpoint) Progress(fraction float64) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	t := c.t
	t.mu.Lock()
	if fraction < t.lastFraction {
		fraction = t.lastFraction
	}
	t.lastFraction = fraction
	scaled := t.beginProgress + fraction*(t.endProgress-t.beginProgress)
	t.mu.Unlock()

	for _, l := range c.listeners {
		l.OnProgress(scaled)
	}
}

func (c *checkpoint) Message(msg string) {
	for _, l := range c.listeners {
		l.OnMessage(msg)
	}
}
