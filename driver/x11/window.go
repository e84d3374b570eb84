// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build x11

package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/driver/base"
	"github.com/asterwyx/winit/units"
)

const windowEventMask = xproto.EventMaskStructureNotify |
	xproto.EventMaskExposure |
	xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow |
	xproto.EventMaskFocusChange

// Window is an X11 window. Setters issue protocol requests; the
// authoritative state comes back as X events, which the reader
// goroutine translates and the callbacks here cache and confirm.
type Window struct {
	base.Window[*App]

	// XWin is the X window id.
	XWin xproto.Window

	xw *xwindow.Window

	restorePos  units.PhysicalPosition
	restoreSize units.PhysicalSize
}

func newXWindow(a *App, attrs *winit.WindowAttributes) (*Window, error) {
	sc := a.PrimaryScreen()
	lastPos, lastSize := a.LastWindowPlacement()
	size, pos, _ := attrs.Fixup(sc, lastPos, lastSize)

	xw, err := xwindow.Generate(a.XU)
	if err != nil {
		return nil, &winit.OSError{Op: "create window", Err: err}
	}
	err = xw.CreateChecked(a.XU.RootWin(), pos.X, pos.Y, size.Width, size.Height,
		xproto.CwEventMask, windowEventMask)
	if err != nil {
		return nil, &winit.OSError{Op: "create window", Err: err}
	}

	w := &Window{XWin: xw.Id, xw: xw}
	w.Init(a, attrs)
	w.Mu.Lock()
	w.PixSize = size
	w.Pos = pos
	w.Mu.Unlock()

	ewmh.WmNameSet(a.XU, xw.Id, attrs.GetTitle())
	icccm.WmProtocolsSet(a.XU, xw.Id, []string{"WM_DELETE_WINDOW"})
	if !attrs.Resizable {
		icccm.WmNormalHintsSet(a.XU, xw.Id, &icccm.NormalHints{
			Flags:     icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize,
			MinWidth:  uint(size.Width),
			MinHeight: uint(size.Height),
			MaxWidth:  uint(size.Width),
			MaxHeight: uint(size.Height),
		})
	}
	if !attrs.Decorated {
		w.setDecorated(false)
	}
	if attrs.Visible {
		xw.Map()
	}
	if attrs.Fullscreen {
		w.SetFullscreen(true)
	}
	return w, nil
}

func (w *Window) SetTitle(title string) {
	if w.IsClosed() {
		return
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	ewmh.WmNameSet(w.App.XU, w.XWin, title)
}

// SetSize issues an asynchronous configure request; the ConfigureNotify
// that comes back mints the confirming WindowResize.
func (w *Window) SetSize(sz units.Size) *units.PhysicalSize {
	if w.IsClosed() {
		return nil
	}
	ps := sz.ToPhysical(1)
	w.xw.Resize(ps.Width, ps.Height)
	return nil
}

func (w *Window) SetPosition(pos units.Position) {
	if w.IsClosed() {
		return
	}
	pp := pos.ToPhysical(1)
	w.xw.Move(pp.X, pp.Y)
}

func (w *Window) SetFullscreen(fullscreen bool) {
	if w.IsClosed() || w.Is(winit.Fullscreen) == fullscreen {
		return
	}
	action := ewmh.StateRemove
	if fullscreen {
		w.Mu.Lock()
		w.restorePos = w.Pos
		w.restoreSize = w.PixSize
		w.Mu.Unlock()
		action = ewmh.StateAdd
	}
	ewmh.WmStateReq(w.App.XU, w.XWin, action, "_NET_WM_STATE_FULLSCREEN")
	w.Mu.Lock()
	w.Flgs.SetFlag(fullscreen, winit.Fullscreen)
	w.Mu.Unlock()
}

// motif hints: flags, functions, decorations, input mode, status
func (w *Window) setDecorated(decorated bool) {
	deco := uint(0)
	if decorated {
		deco = 1
	}
	xprop.ChangeProp32(w.App.XU, w.XWin, "_MOTIF_WM_HINTS", "_MOTIF_WM_HINTS",
		1<<1, 0, deco, 0, 0)
}

func (w *Window) SetDecorated(decorated bool) {
	if w.IsClosed() {
		return
	}
	w.setDecorated(decorated)
	w.Mu.Lock()
	w.Flgs.SetFlag(decorated, winit.Decorated)
	w.Mu.Unlock()
}

func (w *Window) SetCursor(c winit.Cursors) error {
	if w.IsClosed() {
		return winit.ErrClosed
	}
	// cursor themes need the render extension; not wired up yet
	return winit.ErrNotSupported
}

func (w *Window) SetCursorEnabled(enabled bool) {
	if w.IsClosed() {
		return
	}
	conn := w.App.XU.Conn()
	if enabled {
		xproto.UngrabPointer(conn, xproto.TimeCurrentTime)
	} else {
		xproto.GrabPointer(conn, true, w.XWin,
			xproto.EventMaskPointerMotion|xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
			xproto.GrabModeAsync, xproto.GrabModeAsync, w.XWin, xproto.CursorNone,
			xproto.TimeCurrentTime)
	}
	w.Mu.Lock()
	w.CursorOn = enabled
	w.Mu.Unlock()
}

// SetIMEAllowed is not supported; X input methods need an XIM bridge.
func (w *Window) SetIMEAllowed(allowed bool) {}

func (w *Window) Raise() {
	if w.IsClosed() {
		return
	}
	ewmh.ActiveWindowReq(w.App.XU, w.XWin)
}

func (w *Window) Minimize() {
	if w.IsClosed() {
		return
	}
	ewmh.ClientEvent(w.App.XU, w.XWin, "WM_CHANGE_STATE", icccm.StateIconic)
}

func (w *Window) SetVisible(visible bool) {
	if w.IsClosed() {
		return
	}
	if visible {
		w.xw.Map()
	} else {
		w.xw.Unmap()
	}
}

// Screen returns the screen snapshot whose geometry contains the
// window's center, or the primary screen.
func (w *Window) Screen() *winit.Screen {
	pos := w.Position()
	sz := w.OuterSize()
	cx, cy := pos.X+sz.Width/2, pos.Y+sz.Height/2
	for _, sc := range w.App.Screens() {
		if cx >= sc.Geometry.Min.X && cx < sc.Geometry.Max.X &&
			cy >= sc.Geometry.Min.Y && cy < sc.Geometry.Max.Y {
			return sc
		}
	}
	return w.App.PrimaryScreen()
}

func (w *Window) Close() {
	if w.IsClosed() {
		return
	}
	w.xw.Destroy()
	w.SetClosed()
}

// configured handles a ConfigureNotify, confirming moves and resizes.
func (w *Window) configured(x, y, width, height int) {
	w.Mu.Lock()
	oldSize := w.PixSize
	oldPos := w.Pos
	w.PixSize = units.PhysicalSize{Width: width, Height: height}
	w.Pos = units.PhysicalPosition{X: x, Y: y}
	w.Mu.Unlock()
	if width != oldSize.Width || height != oldSize.Height {
		w.EvSrc.WindowResize(units.PhysicalSize{Width: width, Height: height})
	}
	if x != oldPos.X || y != oldPos.Y {
		w.EvSrc.WindowMove(units.PhysicalPosition{X: x, Y: y})
	}
}
