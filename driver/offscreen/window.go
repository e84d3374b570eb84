// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/driver/base"
	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/units"
)

// Window is an offscreen window. All operations apply synchronously to
// the cached state and are confirmed by the same events a native
// backend would send.
type Window struct {
	base.Window[*App]

	// restore is the surface size to restore when leaving fullscreen.
	restore units.PhysicalSize

	imeAllowed bool
}

func (w *Window) SetTitle(title string) {
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
}

func (w *Window) SetSize(sz units.Size) *units.PhysicalSize {
	if w.IsClosed() {
		return nil
	}
	w.Mu.Lock()
	ps := sz.ToPhysical(w.Scale)
	w.PixSize = ps
	w.Mu.Unlock()
	w.EvSrc.WindowResize(ps)
	return &ps
}

func (w *Window) SetPosition(pos units.Position) {
	if w.IsClosed() {
		return
	}
	w.Mu.Lock()
	pp := pos.ToPhysical(w.Scale)
	w.Pos = pp
	w.Mu.Unlock()
	w.EvSrc.WindowMove(pp)
}

func (w *Window) SetFullscreen(fullscreen bool) {
	if w.IsClosed() || w.Is(winit.Fullscreen) == fullscreen {
		return
	}
	sc := w.Screen()
	w.Mu.Lock()
	var sz units.PhysicalSize
	if fullscreen {
		w.restore = w.PixSize
		sz = units.PhysicalFromPoint(sc.PixSize)
	} else {
		sz = w.restore
	}
	w.PixSize = sz
	w.Flgs.SetFlag(fullscreen, winit.Fullscreen)
	w.Mu.Unlock()
	w.EvSrc.WindowResize(sz)
}

func (w *Window) SetDecorated(decorated bool) {
	w.Mu.Lock()
	w.Flgs.SetFlag(decorated, winit.Decorated)
	w.Mu.Unlock()
}

func (w *Window) SetCursor(c winit.Cursors) error {
	w.Mu.Lock()
	w.Cur = c
	w.Mu.Unlock()
	return nil
}

func (w *Window) SetCursorEnabled(enabled bool) {
	w.Mu.Lock()
	w.CursorOn = enabled
	w.Mu.Unlock()
}

func (w *Window) SetIMEAllowed(allowed bool) {
	w.Mu.Lock()
	was := w.imeAllowed
	w.imeAllowed = allowed
	w.Mu.Unlock()
	if was == allowed {
		return
	}
	if allowed {
		w.EvSrc.Window(events.ImeEnabled)
	} else {
		w.EvSrc.Window(events.ImeDisabled)
	}
}

func (w *Window) Raise() {
	if w.IsClosed() {
		return
	}
	w.Mu.Lock()
	wasMin := w.Flgs.HasFlag(winit.Minimized)
	w.Flgs.SetFlag(false, winit.Minimized)
	w.Mu.Unlock()
	if wasMin {
		w.EvSrc.Window(events.WindowMinimize)
		w.EvSrc.WindowOcclusion(false)
	}
	w.focus(true)
}

func (w *Window) Minimize() {
	if w.IsClosed() {
		return
	}
	w.Mu.Lock()
	w.Flgs.SetFlag(true, winit.Minimized)
	w.Mu.Unlock()
	w.EvSrc.Window(events.WindowMinimize)
	w.EvSrc.WindowOcclusion(true)
	w.focus(false)
}

func (w *Window) SetVisible(visible bool) {
	if w.IsClosed() {
		return
	}
	if visible {
		w.EvSrc.Window(events.WindowShow)
	}
}

func (w *Window) Screen() *winit.Screen {
	return w.App.PrimaryScreen()
}

// Close destroys the window; WindowDestroy is the last event delivered
// for it.
func (w *Window) Close() {
	w.SetClosed()
}

// focus moves keyboard focus to or away from the window, sending the
// matching focus events. The offscreen driver keeps focus on the most
// recently raised window.
func (w *Window) focus(on bool) {
	if on {
		w.App.Mu.Lock()
		var prev *Window
		for _, ow := range w.App.Windows {
			if ow != w && ow.Flgs.HasFlag(winit.Focused) {
				prev = ow
			}
		}
		w.App.Mu.Unlock()
		if prev != nil {
			prev.focus(false)
		}
		if !w.Is(winit.Focused) {
			w.Mu.Lock()
			w.Flgs.SetFlag(true, winit.Focused)
			w.Mu.Unlock()
			w.EvSrc.Window(events.WindowFocus)
		}
	} else if w.Is(winit.Focused) {
		w.Mu.Lock()
		w.Flgs.SetFlag(false, winit.Focused)
		w.Mu.Unlock()
		w.EvSrc.Window(events.WindowFocusLost)
	}
}
