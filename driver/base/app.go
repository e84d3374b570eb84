// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/events"
	"github.com/mitchellh/go-homedir"
)

// Apper is the interface that driver apps implement over the [App]
// base, giving the base access to the full driver behavior.
type Apper interface {
	winit.App

	// Loop returns the app's dispatch loop.
	Loop() *Looper

	// NextWindowID mints a fresh process-unique window id.
	NextWindowID() events.WindowID
}

// App contains the data and logic common to all driver apps.
// Specific driver apps embed it (usually through [AppMulti]) and
// override the operations the platform handles differently.
type App struct {
	// This is the driver app as the outermost type, so that the base
	// calls reach the driver overrides.
	This Apper

	// Mu protects the window and screen lists and any resources
	// shared between the dispatch thread and native callbacks.
	Mu sync.Mutex

	// Looper is the dispatch loop for this app.
	Looper Looper

	// Nm is the overall name of the application.
	Nm string

	// Dark is the cached system theme; the theme monitor updates it.
	Dark atomic.Bool

	runConsumed atomic.Bool
}

// Init initializes the base for the given driver app: it wires the
// loop, publishes the app as [winit.TheApp], and loads and applies the
// persisted device settings.
func (a *App) Init(this Apper) {
	a.This = this
	a.Looper.Init(this)
	a.Dark.Store(winit.SystemIsDark())
	winit.TheApp = this

	ds, err := winit.OpenDeviceSettings(this.AppDataDir())
	if err != nil {
		slog.Error("error opening device settings", "err", err)
	}
	ds.Apply()
}

func (a *App) Loop() *Looper { return &a.Looper }

func (a *App) Name() string { return a.Nm }

func (a *App) SetName(name string) { a.Nm = name }

func (a *App) State() winit.AppStates { return a.Looper.State() }

// Run runs the dispatch loop to completion. It consumes the loop:
// a second Run fails.
func (a *App) Run(h winit.ApplicationHandler) error {
	if !a.runConsumed.CompareAndSwap(false, true) {
		return &winit.EventLoopError{Op: "run", Err: winit.ErrClosed}
	}
	return a.Looper.Run(h)
}

// RunOnDemand is like Run but restartable.
func (a *App) RunOnDemand(h winit.ApplicationHandler) error {
	return a.Looper.Run(h)
}

// PumpEvents runs a single dispatch cycle.
func (a *App) PumpEvents(h winit.ApplicationHandler, timeout time.Duration) (winit.PumpStatus, error) {
	return a.Looper.Pump(h, timeout)
}

// SendUserEvent injects a user event carrying data, waking the loop.
// It fails once the loop has exited.
func (a *App) SendUserEvent(data any) error {
	if a.Looper.State() == winit.Exited {
		return &winit.EventLoopError{Op: "send", Err: winit.ErrClosed}
	}
	a.Looper.Send(events.NewCustom(data))
	return nil
}

// WakeUp wakes an idling loop without delivering an event.
func (a *App) WakeUp() {
	a.Looper.Waiter.Wake()
}

// RunOnMain runs the given function on the dispatch thread and waits
// for it. If the loop is not running, or the caller is already hook
// code on the dispatch thread, f is called directly.
func (a *App) RunOnMain(f func()) {
	if a.Looper.InHook() {
		f()
		return
	}
	switch a.Looper.State() {
	case winit.Running, winit.Suspended, winit.ExitRequested:
		done := make(chan struct{})
		a.Looper.MainQueue <- FuncRun{F: f, Done: done}
		a.Looper.Waiter.Wake()
		<-done
	default:
		f()
	}
}

// IsDark returns whether the system color theme is dark.
func (a *App) IsDark() bool { return a.Dark.Load() }

// DataDir returns the OS-specific data directory: ~/Library on Mac,
// ~/.config on Linux, ~/AppData/Roaming on Windows.
func (a *App) DataDir() string {
	hd, err := homedir.Dir()
	if err != nil {
		slog.Error("error finding home directory", "err", err)
		hd = os.TempDir()
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(hd, "Library")
	case "windows":
		return filepath.Join(hd, "AppData", "Roaming")
	default:
		return filepath.Join(hd, ".config")
	}
}

// AppDataDir returns the application-specific data directory, creating
// it first.
func (a *App) AppDataDir() string {
	pdir := filepath.Join(a.This.DataDir(), a.This.Name())
	if err := os.MkdirAll(pdir, 0755); err != nil {
		slog.Error("error making app data dir", "dir", pdir, "err", err)
	}
	return pdir
}
