// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

import (
	"github.com/asterwyx/winit/events"
)

// ActiveEventLoop is the restricted capability passed to every handler
// hook during dispatch. It creates windows, queries screens, and steers
// the loop's control flow. It must not be retained past the hook that
// received it: outside a hook its methods fail with [ErrUnavailable].
type ActiveEventLoop interface {

	// NewWindow creates a new window from the given attributes. A nil
	// attrs is valid and means defaults. Windows may only be created
	// while the loop is Running (between Resumed and Suspended).
	NewWindow(attrs *WindowAttributes) (Window, error)

	// Screens returns a point-in-time snapshot of the available
	// screens, in implementation-defined order not guaranteed stable
	// across calls.
	Screens() []*Screen

	// PrimaryScreen returns the primary screen, or nil if the backend
	// cannot determine one.
	PrimaryScreen() *Screen

	// SetControlFlow sets the idle policy for the next idle period.
	// The last value set during a cycle wins.
	SetControlFlow(cf ControlFlow)

	// ControlFlow returns the currently set idle policy.
	ControlFlow() ControlFlow

	// Exit requests that the loop exit. In-flight events for the
	// current cycle are still delivered; Exiting runs at the end of
	// the cycle. Irreversible for this loop instance.
	Exit()

	// Exiting returns whether exit has been requested.
	Exiting() bool

	// State returns the current loop state.
	State() AppStates
}

// ApplicationHandler is the callback surface the application implements.
// All hooks run sequentially on the single dispatch goroutine, never
// concurrently and never reentrantly. Any hook may set the control flow
// or request exit through the [ActiveEventLoop] it receives.
type ApplicationHandler interface {

	// NewEvents is called at the start of every dispatch cycle with
	// the reason the cycle is starting.
	NewEvents(el ActiveEventLoop, cause StartCause)

	// Resumed is called when the loop starts or resumes from a
	// suspension. Windows may be created from Resumed until the next
	// Suspended.
	Resumed(el ActiveEventLoop)

	// Suspended is called when the platform suspends the application.
	// Window handles may be invalid until the next Resumed.
	Suspended(el ActiveEventLoop)

	// WindowEvent is called for every event keyed by a window,
	// including keyboard, pointer, touch, and IME input. Events for
	// one window arrive in order; there is no ordering guarantee
	// across windows except that close and destroy events for a window
	// come after all its other events.
	WindowEvent(el ActiveEventLoop, e events.Event)

	// DeviceEvent is called for raw device events.
	DeviceEvent(el ActiveEventLoop, e events.Event)

	// UserEvent is called for events injected through a [Proxy], in
	// send order.
	UserEvent(el ActiveEventLoop, e events.Event)

	// AboutToWait is called at the end of every cycle, after all
	// events including coalesced redraws have been delivered and
	// before the loop idles.
	AboutToWait(el ActiveEventLoop)

	// Exiting is called exactly once before the loop tears down.
	Exiting(el ActiveEventLoop)
}

// HandlerBase is a no-op [ApplicationHandler] for embedding, so that
// applications implement only the hooks they need.
type HandlerBase struct{}

func (HandlerBase) NewEvents(el ActiveEventLoop, cause StartCause)  {}
func (HandlerBase) Resumed(el ActiveEventLoop)                      {}
func (HandlerBase) Suspended(el ActiveEventLoop)                    {}
func (HandlerBase) WindowEvent(el ActiveEventLoop, e events.Event)  {}
func (HandlerBase) DeviceEvent(el ActiveEventLoop, e events.Event)  {}
func (HandlerBase) UserEvent(el ActiveEventLoop, e events.Event)    {}
func (HandlerBase) AboutToWait(el ActiveEventLoop)                  {}
func (HandlerBase) Exiting(el ActiveEventLoop)                      {}

var _ ApplicationHandler = HandlerBase{}
