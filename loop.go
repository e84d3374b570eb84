// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

import (
	"errors"
	"sync/atomic"
	"time"
)

// loopConstructed guards the one-EventLoop-per-process constraint.
var loopConstructed atomic.Bool

// EventLoop is the process-wide singleton run loop. Construct it once
// with [NewEventLoop], then drive it with exactly one of the run entry
// points. The EventLoop itself must stay on the goroutine that runs it;
// only a [Proxy] may cross goroutine boundaries.
type EventLoop struct {
	app      App
	consumed atomic.Bool
}

// NewEventLoop returns the process's event loop. Constructing a second
// loop in the same process fails with an [EventLoopError], as does
// constructing one with no driver active.
func NewEventLoop() (*EventLoop, error) {
	if TheApp == nil {
		return nil, &EventLoopError{Op: "construct", Err: errors.New("no driver active; import github.com/asterwyx/winit/driver")}
	}
	if !loopConstructed.CompareAndSwap(false, true) {
		return nil, &EventLoopError{Op: "construct", Err: errors.New("an event loop was already constructed in this process")}
	}
	return &EventLoop{app: TheApp}, nil
}

// Run runs the loop to completion, blocking until the handler requests
// exit. It consumes the loop: any later Run, RunOnDemand, or PumpEvents
// on it fails with an [EventLoopError]. Process exit codes are the
// application's responsibility.
func (l *EventLoop) Run(h ApplicationHandler) error {
	if !l.consumed.CompareAndSwap(false, true) {
		return &EventLoopError{Op: "run", Err: ErrClosed}
	}
	return l.app.Run(h)
}

// RunOnDemand runs the loop until the handler requests exit, like Run,
// but does not consume the loop: it may be called again afterwards, for
// embedding in a foreign run loop.
func (l *EventLoop) RunOnDemand(h ApplicationHandler) error {
	if l.consumed.Load() {
		return &EventLoopError{Op: "run_on_demand", Err: ErrClosed}
	}
	return l.app.RunOnDemand(h)
}

// PumpEvents runs a single dispatch cycle, idling for at most timeout
// (0 means do not block). It returns [PumpExited] once the handler has
// requested exit; pumping after that fails.
func (l *EventLoop) PumpEvents(h ApplicationHandler, timeout time.Duration) (PumpStatus, error) {
	if l.consumed.Load() {
		return PumpExited, &EventLoopError{Op: "pump_events", Err: ErrClosed}
	}
	return l.app.PumpEvents(h, timeout)
}

// CreateProxy returns a proxy for injecting user events into the loop
// from any goroutine.
func (l *EventLoop) CreateProxy() *Proxy {
	return &Proxy{app: l.app}
}

// Proxy is a cloneable handle for injecting user events into a running
// loop from any goroutine. It is the one sanctioned cross-thread entry
// point: SendEvent is safe to call concurrently with dispatch and wakes
// the loop out of Wait / WaitUntil idling.
type Proxy struct {
	app App
}

// SendEvent enqueues a user event carrying data and wakes the loop.
// Events sent before the loop's next cycle are delivered in send order,
// before that cycle's AboutToWait. Sending to an exited loop fails with
// an [EventLoopError] wrapping [ErrClosed].
func (p *Proxy) SendEvent(data any) error {
	if p.app.State() == Exited {
		return &EventLoopError{Op: "send_event", Err: ErrClosed}
	}
	return p.app.SendUserEvent(data)
}
