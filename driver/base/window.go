// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"sync"
	"sync/atomic"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/units"
)

// Window contains the data and logic common to all driver windows.
// Specific driver windows embed it and override the operations that
// reach the native window; the base holds the last state confirmed by
// the platform, which drivers update from their native callbacks.
type Window[A Apper] struct {
	// App is the driver app that owns this window.
	App A

	// Mu protects the cached state below, which is written from native
	// callbacks and read from the dispatch thread.
	Mu sync.Mutex

	// Id is the unique identifier of the window.
	Id events.WindowID

	// EvSrc mints this window's events onto the app queue.
	EvSrc *events.Source

	// Nm is the name of the window.
	Nm string

	// Titl is the displayed title of the window.
	Titl string

	// Flgs are the state flags, updated as the platform confirms
	// changes.
	Flgs winit.WindowFlags

	// PixSize is the last confirmed surface size in physical pixels.
	PixSize units.PhysicalSize

	// DecoSize is the extra size of the native decorations, zero where
	// the backend cannot measure them.
	DecoSize units.PhysicalSize

	// Pos is the last confirmed outer position.
	Pos units.PhysicalPosition

	// Scale is the last confirmed UI scale factor.
	Scale float32

	// Cur is the current cursor shape.
	Cur winit.Cursors

	// CursorOn is whether the cursor is enabled (not captured).
	CursorOn bool

	// destroyed is set once the native window is gone.
	destroyed atomic.Bool
}

// Init initializes the common window state from the resolved
// attributes, minting an id from the app.
func (w *Window[A]) Init(app A, attrs *winit.WindowAttributes) {
	w.App = app
	w.Id = app.NextWindowID()
	w.EvSrc = events.NewSource(&app.Loop().Queue, w.Id)
	w.Titl = attrs.GetTitle()
	w.Scale = 1
	w.Cur = attrs.Cursor
	w.CursorOn = true
	w.Flgs.SetFlag(attrs.Resizable, winit.Resizable)
	w.Flgs.SetFlag(attrs.Decorated, winit.Decorated)
	w.Flgs.SetFlag(attrs.Maximized, winit.Maximized)
	w.Flgs.SetFlag(attrs.Fullscreen, winit.Fullscreen)
}

func (w *Window[A]) ID() events.WindowID { return w.Id }

func (w *Window[A]) Name() string { return w.Nm }

func (w *Window[A]) SetName(name string) { w.Nm = name }

func (w *Window[A]) Title() string {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Titl
}

func (w *Window[A]) InnerSize() units.PhysicalSize {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.PixSize
}

func (w *Window[A]) OuterSize() units.PhysicalSize {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.PixSize.Add(w.DecoSize)
}

func (w *Window[A]) Position() units.PhysicalPosition {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Pos
}

func (w *Window[A]) ScaleFactor() float32 {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Scale
}

func (w *Window[A]) Is(flag winit.WindowFlags) bool {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Flgs.HasFlag(flag)
}

func (w *Window[A]) Flags() winit.WindowFlags {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Flgs
}

func (w *Window[A]) Events() *events.Source { return w.EvSrc }

// RequestRedraw registers a coalesced redraw with the dispatch loop.
func (w *Window[A]) RequestRedraw() {
	if w.IsClosed() {
		return
	}
	w.App.Loop().RequestRedraw(w.Id)
}

func (w *Window[A]) IsClosed() bool { return w.destroyed.Load() }

// SetClosed marks the window destroyed, drops any pending redraw for
// it, and sends the final WindowDestroy event. Idempotent; drivers call
// it from their native destroy notification.
func (w *Window[A]) SetClosed() {
	if !w.destroyed.CompareAndSwap(false, true) {
		return
	}
	w.App.Loop().DropRedraw(w.Id)
	w.EvSrc.Window(events.WindowDestroy)
	w.App.RemoveWindow(w.App.WindowByID(w.Id))
}
