// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/events"
)

// Looper is the dispatch-cycle state machine shared by all drivers.
// One cycle is: determine the start cause and call NewEvents; drain and
// deliver all events that arrived since the last cycle; deliver the
// coalesced redraws; call AboutToWait; idle per the control flow in
// effect at that point. All handler hooks run sequentially on the
// goroutine driving the Looper; everything arriving from other
// goroutines comes in through the Queue or the atomic request flags.
type Looper struct {
	// Queue is the single channel through which all events reach the
	// dispatch thread.
	Queue events.Queue

	// Waiter is the backend idle primitive.
	Waiter Waiter

	// App is the driver app, used to service the active-loop
	// capability passed to handler hooks.
	App winit.App

	// MainQueue carries functions marshaled onto the dispatch thread
	// by RunOnMain; drained at each cycle boundary.
	MainQueue chan FuncRun

	state atomic.Int32 // winit.AppStates

	exit    atomic.Bool
	suspend atomic.Bool
	resume  atomic.Bool
	inHook  atomic.Bool

	redrawMu      sync.Mutex
	redrawPending []events.WindowID

	// dispatch-thread-only state
	running bool
	inCycle bool
	started bool
	control winit.ControlFlow
	active  *Active
	handler winit.ApplicationHandler

	prevIdle struct {
		mode     winit.ControlFlowModes
		deadline time.Time
		start    time.Time
	}
}

// Init initializes the queue, waiter, and main queue. The app is the
// driver app the active-loop capability delegates to.
func (l *Looper) Init(app winit.App) {
	l.App = app
	l.Queue.Init()
	if l.Waiter == nil {
		l.Waiter = NewChanWaiter()
	}
	l.Queue.Wake = l.Waiter.Wake
	l.MainQueue = make(chan FuncRun, 16)
	l.control = winit.ControlWait()
}

// State returns the loop lifecycle state. Safe from any goroutine.
func (l *Looper) State() winit.AppStates {
	return winit.AppStates(l.state.Load())
}

func (l *Looper) setState(s winit.AppStates) {
	l.state.Store(int32(s))
}

// Send enqueues an event and wakes the loop. Safe from any goroutine.
func (l *Looper) Send(ev events.Event) {
	l.Queue.Send(ev)
}

// RequestExit requests that the loop exit at the end of the current
// cycle. In-flight events for the cycle are still delivered.
func (l *Looper) RequestExit() {
	l.exit.Store(true)
	l.Waiter.Wake()
}

// Exiting returns whether exit has been requested.
func (l *Looper) Exiting() bool {
	return l.exit.Load()
}

// RequestSuspend asks the loop to deliver Suspended at the next cycle.
// Drivers call it when the platform revokes the rendering context.
func (l *Looper) RequestSuspend() {
	l.suspend.Store(true)
	l.Waiter.Wake()
}

// RequestResume asks the loop to deliver Resumed at the next cycle.
func (l *Looper) RequestResume() {
	l.resume.Store(true)
	l.Waiter.Wake()
}

// RequestRedraw registers a pending redraw for the given window and
// wakes the loop. Requests coalesce: no matter how many arrive before
// the next redraw opportunity, exactly one WindowPaint is delivered,
// after all other pending events for the window and before AboutToWait.
func (l *Looper) RequestRedraw(id events.WindowID) {
	l.redrawMu.Lock()
	if !slices.Contains(l.redrawPending, id) {
		l.redrawPending = append(l.redrawPending, id)
	}
	l.redrawMu.Unlock()
	l.Waiter.Wake()
}

// DropRedraw discards any pending redraw for the given window, for use
// when the window is destroyed.
func (l *Looper) DropRedraw(id events.WindowID) {
	l.redrawMu.Lock()
	l.redrawPending = slices.DeleteFunc(l.redrawPending, func(w events.WindowID) bool { return w == id })
	l.redrawMu.Unlock()
}

func (l *Looper) takeRedraws() []events.WindowID {
	l.redrawMu.Lock()
	defer l.redrawMu.Unlock()
	r := l.redrawPending
	l.redrawPending = nil
	return r
}

// SetControlFlow sets the idle policy for the next idle period.
// Dispatch thread only; the last value set during a cycle wins.
func (l *Looper) SetControlFlow(cf winit.ControlFlow) {
	l.control = cf
}

// ControlFlow returns the currently set idle policy.
func (l *Looper) ControlFlow() winit.ControlFlow {
	return l.control
}

// Run runs the loop until the handler requests exit. A loop left open
// by Pump is taken over: dispatch continues with the new handler in the
// same lifecycle. It fails with a [winit.EventLoopError] when called
// from a handler hook (hooks must not reenter the loop).
func (l *Looper) Run(h winit.ApplicationHandler) error {
	if err := l.start(h); err != nil {
		return err
	}
	for l.runCycle(false, 0) {
	}
	l.finish()
	return nil
}

// Pump runs a single dispatch cycle, idling for at most timeout
// (0 means do not block). The first Pump after construction or after a
// completed run starts the loop.
func (l *Looper) Pump(h winit.ApplicationHandler, timeout time.Duration) (winit.PumpStatus, error) {
	if err := l.start(h); err != nil {
		return winit.PumpExited, err
	}
	if !l.runCycle(true, timeout) {
		l.finish()
		return winit.PumpExited, nil
	}
	return winit.PumpContinue, nil
}

func (l *Looper) start(h winit.ApplicationHandler) error {
	if l.inCycle {
		return &winit.EventLoopError{Op: "run", Err: errors.New("already dispatching; handler hooks must not reenter the loop")}
	}
	if l.running {
		// between cycles of a pump session: the caller takes over with
		// its handler, keeping the lifecycle
		l.handler = h
		return nil
	}
	if l.State() == winit.Exited {
		// restart for run-on-demand: the loop begins a fresh lifecycle
		l.setState(winit.Idle)
		l.started = false
		l.exit.Store(false)
	}
	l.running = true
	l.handler = h
	l.active = &Active{App: l.App, Looper: l}
	return nil
}

func (l *Looper) finish() {
	l.running = false
	l.handler = nil
	if l.active != nil {
		l.active.valid.Store(false)
		l.active = nil
	}
}

// runCycle runs one dispatch cycle, returning false once the loop has
// exited. When bounded, the idle step lasts at most timeout.
func (l *Looper) runCycle(bounded bool, timeout time.Duration) bool {
	l.inCycle = true
	defer func() { l.inCycle = false }()
	h := l.handler
	l.drainMain()

	// 1. start cause and lifecycle transitions
	cause := l.startCause()
	l.hook(func() { h.NewEvents(l.active, cause) })
	if !l.started {
		l.started = true
		l.setState(winit.Running)
		l.hook(func() { h.Resumed(l.active) })
	} else {
		if l.suspend.CompareAndSwap(true, false) && l.State() == winit.Running {
			l.setState(winit.Suspended)
			l.hook(func() { h.Suspended(l.active) })
		}
		if l.resume.CompareAndSwap(true, false) && l.State() == winit.Suspended {
			l.setState(winit.Running)
			l.hook(func() { h.Resumed(l.active) })
		}
	}

	// 2. drain the events that have arrived since the last cycle.
	// The count is snapshotted so events generated during dispatch are
	// delivered next cycle rather than extending this one.
	n := int(l.Queue.Len())
	evs := make([]events.Event, 0, n)
	for i := 0; i < n; i++ {
		e := l.Queue.NextEvent()
		if e == nil {
			break
		}
		evs = append(evs, e)
	}
	evs = CompressEvents(evs)
	evs = deferTerminal(evs)
	for _, e := range evs {
		e := e
		switch {
		case e.Type().IsUser():
			l.hook(func() { h.UserEvent(l.active, e) })
		case e.Type().IsDevice():
			l.hook(func() { h.DeviceEvent(l.active, e) })
		default:
			l.hook(func() { h.WindowEvent(l.active, e) })
		}
	}

	// 3. coalesced redraws, after all other events for their windows
	for _, id := range l.takeRedraws() {
		ev := events.NewWindow(events.WindowPaint, id)
		l.hook(func() { h.WindowEvent(l.active, ev) })
	}

	// 4. end of cycle
	l.hook(func() { h.AboutToWait(l.active) })

	if l.exit.Load() {
		l.setState(winit.ExitRequested)
		l.hook(func() { h.Exiting(l.active) })
		l.setState(winit.Exited)
		return false
	}

	// 5. idle per the control flow in effect now
	l.idle(bounded, timeout)
	return true
}

func (l *Looper) idle(bounded bool, timeout time.Duration) {
	cf := l.control
	l.prevIdle.mode = cf.Mode
	l.prevIdle.deadline = cf.Deadline
	l.prevIdle.start = time.Now()

	if l.Queue.Len() > 0 { // events arrived during dispatch; no blocking
		l.Waiter.Poll()
		return
	}

	switch cf.Mode {
	case winit.Poll:
		l.Waiter.Poll()
	case winit.Wait:
		if bounded {
			if timeout > 0 {
				l.Waiter.WaitTimeout(timeout)
			} else {
				l.Waiter.Poll()
			}
		} else {
			l.Waiter.Wait()
		}
	case winit.WaitUntil:
		d := time.Until(cf.Deadline)
		if bounded && d > timeout {
			d = timeout
		}
		if d > 0 {
			l.Waiter.WaitTimeout(d)
		} else {
			// deadline already passed: immediate wake
			l.Waiter.Poll()
		}
	}
}

func (l *Looper) startCause() winit.StartCause {
	if !l.started {
		return winit.StartCause{Cause: winit.Init}
	}
	p := l.prevIdle
	switch p.mode {
	case winit.Wait:
		return winit.StartCause{Cause: winit.WaitCancelled, Start: p.start}
	case winit.WaitUntil:
		if time.Now().Before(p.deadline) {
			return winit.StartCause{
				Cause:           winit.WaitCancelled,
				Start:           p.start,
				RequestedResume: p.deadline,
				HasResume:       true,
			}
		}
		return winit.StartCause{
			Cause:           winit.ResumeTimeReached,
			Start:           p.start,
			RequestedResume: p.deadline,
			HasResume:       true,
		}
	}
	return winit.StartCause{Cause: winit.PollResumed}
}

// hook runs one handler hook with the active-loop capability validated
// for its duration, so that a retained capability fails cleanly.
func (l *Looper) hook(f func()) {
	l.active.valid.Store(true)
	l.inHook.Store(true)
	f()
	l.inHook.Store(false)
	l.active.valid.Store(false)
	l.drainMain()
}

// InHook returns whether a handler hook is currently executing on the
// dispatch thread. RunOnMain uses it to run directly instead of
// deadlocking when called from hook code.
func (l *Looper) InHook() bool {
	return l.inHook.Load()
}

func (l *Looper) drainMain() {
	for {
		select {
		case fr := <-l.MainQueue:
			fr.F()
			if fr.Done != nil {
				fr.Done <- struct{}{}
			}
		default:
			return
		}
	}
}

// deferTerminal moves close and destroy events after all other events
// for the same window, preserving relative order otherwise. Cross
// window ordering is unspecified by the contract.
func deferTerminal(evs []events.Event) []events.Event {
	hasTerminal := false
	for _, e := range evs {
		if e.Type().IsTerminal() {
			hasTerminal = true
			break
		}
	}
	if !hasTerminal {
		return evs
	}
	out := make([]events.Event, 0, len(evs))
	var term []events.Event
	for _, e := range evs {
		if e.Type().IsTerminal() {
			term = append(term, e)
		} else {
			out = append(out, e)
		}
	}
	return append(out, term...)
}
