// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

import (
	"time"

	"github.com/asterwyx/winit/events"
)

// TheApp is the active driver [App]; only one is ever in effect per
// process. The driver package sets it at init time.
var TheApp App

// App is the contract every platform driver implements: producing
// normalized events from native notifications, implementing window
// operations either synchronously or with a confirming event,
// enumerating screens as point-in-time snapshots, and surfacing the
// loop's idling on the native platform's own wait primitive.
//
// Applications do not use App directly; they go through [EventLoop]
// and the [ActiveEventLoop] passed to handler hooks.
type App interface {

	// Platform returns the platform type of this driver.
	Platform() Platforms

	// SystemPlatform returns the platform of the underlying operating
	// system, which differs from Platform for drivers like X11 and
	// Offscreen that run on top of another platform.
	SystemPlatform() Platforms

	// Name is the overall name of the application, used for the
	// application-specific data directory.
	Name() string

	// SetName sets the application name.
	SetName(name string)

	// GetScreens re-enumerates the screens, marking replaced
	// snapshots stale.
	GetScreens()

	// Screens returns the current screen snapshots.
	Screens() []*Screen

	// PrimaryScreen returns the primary screen, or nil if unknown.
	PrimaryScreen() *Screen

	// NWindows returns the number of open windows.
	NWindows() int

	// Window returns the window at the given index in the (creation
	// ordered) window list, or nil for an invalid index.
	Window(win int) Window

	// WindowByID returns the window with the given id, or nil.
	WindowByID(id events.WindowID) Window

	// NewWindow creates a new native window. A nil attrs is valid and
	// means defaults.
	NewWindow(attrs *WindowAttributes) (Window, error)

	// RemoveWindow removes the given window from the app's list of
	// windows. It does not close it; see [Window.Close] for that.
	RemoveWindow(win Window)

	// Run runs the dispatch loop to completion, blocking until the
	// handler requests exit. It consumes the loop: a second Run fails
	// with an [EventLoopError].
	Run(h ApplicationHandler) error

	// RunOnDemand is like Run but restartable: after it returns it may
	// be called again, for embedding in a foreign run loop.
	RunOnDemand(h ApplicationHandler) error

	// PumpEvents runs a single dispatch cycle, idling for at most
	// timeout (0 means do not block), for manual integration with an
	// external loop.
	PumpEvents(h ApplicationHandler, timeout time.Duration) (PumpStatus, error)

	// SendUserEvent injects a user event carrying data. It is the one
	// operation safe to call from any goroutine concurrently with
	// dispatch; it wakes the loop out of Wait / WaitUntil idling.
	SendUserEvent(data any) error

	// WakeUp wakes an idling loop without delivering an event.
	WakeUp()

	// State returns the loop lifecycle state.
	State() AppStates

	// RunOnMain runs the given function on the dispatch thread and
	// waits for it. Native window operations that must happen on the
	// main thread go through it. If the loop is not running, the
	// function is called directly.
	RunOnMain(f func())

	// IsDark returns whether the system color theme is dark.
	IsDark() bool

	// DataDir returns the OS data directory: ~/Library on Mac,
	// ~/.config on Linux, ~/AppData/Roaming on Windows.
	DataDir() string

	// AppDataDir returns the application-specific data directory,
	// DataDir plus Name, creating it first.
	AppDataDir() string
}
