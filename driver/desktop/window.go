// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/driver/base"
	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/units"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a desktop window backed by a glfw window. Setters issue
// requests to the window system; the authoritative state comes back
// through the glfw callbacks, which update the cached base state and
// mint the confirming events.
type Window struct {
	base.Window[*App]

	// Glw is the underlying glfw window. Valid only while the window
	// is not closed; native calls go through the main thread.
	Glw *glfw.Window

	// restorePos and restoreSize hold the windowed placement to go
	// back to when leaving fullscreen.
	restorePos  units.PhysicalPosition
	restoreSize units.PhysicalSize
}

// newGlfwWindow creates the native window for the given attributes.
// Main thread only.
func newGlfwWindow(a *App, attrs *winit.WindowAttributes) (*Window, error) {
	sc := a.PrimaryScreen()
	if sc == nil {
		return nil, &winit.OSError{Op: "create window", Err: winit.ErrUnavailable}
	}
	lastPos, lastSize := a.LastWindowPlacement()
	size, pos, hasPos := attrs.Fixup(sc, lastPos, lastSize)

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfwBool(attrs.Resizable))
	glfw.WindowHint(glfw.Decorated, glfwBool(attrs.Decorated))
	glfw.WindowHint(glfw.TransparentFramebuffer, glfwBool(attrs.Transparent))
	glfw.WindowHint(glfw.Maximized, glfwBool(attrs.Maximized))
	glfw.WindowHint(glfw.Visible, glfw.False) // shown after placement
	glfw.WindowHint(glfw.Floating, glfwBool(attrs.Level == winit.LevelAlwaysOnTop))
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	var mon *glfw.Monitor
	if attrs.Fullscreen {
		mon = glfw.GetPrimaryMonitor()
	}
	// glfw sizes are in screen coordinates, not physical pixels
	scale := sc.DevicePixelRatio
	cw := int(float32(size.Width) / scale)
	ch := int(float32(size.Height) / scale)
	glw, err := glfw.CreateWindow(cw, ch, attrs.GetTitle(), mon, nil)
	if err != nil {
		return nil, &winit.OSError{Op: "create window", Err: err}
	}

	w := &Window{Glw: glw}
	w.Init(a, attrs)
	w.Mu.Lock()
	w.PixSize = size
	w.Scale = scale
	w.Mu.Unlock()

	if hasPos && !attrs.Fullscreen {
		glw.SetPos(int(float32(pos.X)/scale), int(float32(pos.Y)/scale))
	}
	w.updateGeometry()
	w.connectEvents()
	if attrs.Cursor != winit.CursorArrow {
		w.SetCursor(attrs.Cursor)
	}
	if attrs.Visible {
		glw.Show()
		w.EvSrc.Window(events.WindowShow)
	}
	return w, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (w *Window) connectEvents() {
	g := w.Glw
	g.SetKeyCallback(w.keyEvent)
	g.SetCharModsCallback(w.charEvent)
	g.SetMouseButtonCallback(w.mouseButtonEvent)
	g.SetCursorPosCallback(w.cursorPosEvent)
	g.SetCursorEnterCallback(w.cursorEnterEvent)
	g.SetScrollCallback(w.scrollEvent)
	g.SetDropCallback(w.dropEvent)
	g.SetCloseCallback(w.closeReq)
	g.SetFramebufferSizeCallback(w.sizeChanged)
	g.SetPosCallback(w.posChanged)
	g.SetFocusCallback(w.focusChanged)
	g.SetIconifyCallback(w.iconifyChanged)
	g.SetContentScaleCallback(w.scaleChanged)
	g.SetRefreshCallback(w.refresh)
}

// updateGeometry refreshes the cached size, position, and decoration
// extents from the native window. Main thread only.
func (w *Window) updateGeometry() {
	fbw, fbh := w.Glw.GetFramebufferSize()
	x, y := w.Glw.GetPos()
	sx, _ := w.Glw.GetContentScale()
	if sx <= 0 {
		sx = 1
	}
	l, t, r, b := w.Glw.GetFrameSize()
	w.Mu.Lock()
	w.PixSize = units.PhysicalSize{Width: fbw, Height: fbh}
	w.Pos = units.PhysicalPosition{X: int(float32(x) * sx), Y: int(float32(y) * sx)}
	w.Scale = sx
	w.DecoSize = units.PhysicalSize{
		Width:  int(float32(l+r) * sx),
		Height: int(float32(t+b) * sx),
	}
	w.Mu.Unlock()
}

func (w *Window) SetTitle(title string) {
	if w.IsClosed() {
		return
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	w.App.RunOnMain(func() { w.Glw.SetTitle(title) })
}

// SetSize issues an asynchronous resize request; the WindowResize event
// confirms the applied size.
func (w *Window) SetSize(sz units.Size) *units.PhysicalSize {
	if w.IsClosed() {
		return nil
	}
	s := w.ScaleFactor()
	ps := sz.ToPhysical(s)
	w.App.RunOnMain(func() {
		w.Glw.SetSize(int(float32(ps.Width)/s), int(float32(ps.Height)/s))
	})
	return nil
}

func (w *Window) SetPosition(pos units.Position) {
	if w.IsClosed() {
		return
	}
	s := w.ScaleFactor()
	pp := pos.ToPhysical(s)
	w.App.RunOnMain(func() {
		w.Glw.SetPos(int(float32(pp.X)/s), int(float32(pp.Y)/s))
	})
}

func (w *Window) SetFullscreen(fullscreen bool) {
	if w.IsClosed() || w.Is(winit.Fullscreen) == fullscreen {
		return
	}
	w.App.RunOnMain(func() {
		if fullscreen {
			w.Mu.Lock()
			w.restorePos = w.Pos
			w.restoreSize = w.PixSize
			w.Mu.Unlock()
			mon := w.glfwMonitor()
			vm := mon.GetVideoMode()
			w.Glw.SetMonitor(mon, 0, 0, vm.Width, vm.Height, vm.RefreshRate)
		} else {
			w.Mu.Lock()
			pos, sz, s := w.restorePos, w.restoreSize, w.Scale
			w.Mu.Unlock()
			w.Glw.SetMonitor(nil,
				int(float32(pos.X)/s), int(float32(pos.Y)/s),
				int(float32(sz.Width)/s), int(float32(sz.Height)/s), 0)
		}
		w.Mu.Lock()
		w.Flgs.SetFlag(fullscreen, winit.Fullscreen)
		w.Mu.Unlock()
	})
}

func (w *Window) SetDecorated(decorated bool) {
	if w.IsClosed() {
		return
	}
	w.App.RunOnMain(func() {
		w.Glw.SetAttrib(glfw.Decorated, glfwBool(decorated))
		w.Mu.Lock()
		w.Flgs.SetFlag(decorated, winit.Decorated)
		w.Mu.Unlock()
	})
}

func (w *Window) SetCursorEnabled(enabled bool) {
	if w.IsClosed() {
		return
	}
	w.App.RunOnMain(func() {
		if enabled {
			w.Glw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			w.Glw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		}
		w.Mu.Lock()
		w.CursorOn = enabled
		w.Mu.Unlock()
	})
}

// SetIMEAllowed is not supported by glfw; composition always reaches
// the character callback.
func (w *Window) SetIMEAllowed(allowed bool) {}

func (w *Window) Raise() {
	if w.IsClosed() {
		return
	}
	w.App.RunOnMain(func() {
		if w.Is(winit.Minimized) {
			w.Glw.Restore()
		}
		w.Glw.Focus()
	})
}

func (w *Window) Minimize() {
	if w.IsClosed() {
		return
	}
	w.App.RunOnMain(w.Glw.Iconify)
}

func (w *Window) SetVisible(visible bool) {
	if w.IsClosed() {
		return
	}
	w.App.RunOnMain(func() {
		if visible {
			w.Glw.Show()
			w.EvSrc.Window(events.WindowShow)
		} else {
			w.Glw.Hide()
		}
	})
}

// Screen returns the screen snapshot whose geometry contains the
// window's center, or the primary screen.
func (w *Window) Screen() *winit.Screen {
	pos := w.Position()
	sz := w.OuterSize()
	s := w.ScaleFactor()
	cx := int(float32(pos.X+sz.Width/2) / s)
	cy := int(float32(pos.Y+sz.Height/2) / s)
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
	w.App.RunOnMain(func() {
		w.Glw.Destroy()
	})
	w.SetClosed()
}

// glfwMonitor returns the monitor the window is mostly on.
func (w *Window) glfwMonitor() *glfw.Monitor {
	sc := w.Screen()
	for _, mon := range glfw.GetMonitors() {
		if mon.GetName() == sc.Name {
			return mon
		}
	}
	return glfw.GetPrimaryMonitor()
}

// native callbacks

func (w *Window) closeReq(gw *glfw.Window) {
	// the application decides; keep the native window alive
	gw.SetShouldClose(false)
	w.EvSrc.Window(events.WindowClose)
}

func (w *Window) sizeChanged(gw *glfw.Window, width, height int) {
	w.Mu.Lock()
	w.PixSize = units.PhysicalSize{Width: width, Height: height}
	w.Mu.Unlock()
	w.EvSrc.WindowResize(units.PhysicalSize{Width: width, Height: height})
}

func (w *Window) posChanged(gw *glfw.Window, x, y int) {
	s := w.ScaleFactor()
	pp := units.PhysicalPosition{X: int(float32(x) * s), Y: int(float32(y) * s)}
	w.Mu.Lock()
	w.Pos = pp
	w.Mu.Unlock()
	w.EvSrc.WindowMove(pp)
}

func (w *Window) focusChanged(gw *glfw.Window, focused bool) {
	w.Mu.Lock()
	w.Flgs.SetFlag(focused, winit.Focused)
	w.Mu.Unlock()
	if focused {
		w.EvSrc.Window(events.WindowFocus)
	} else {
		w.EvSrc.Window(events.WindowFocusLost)
	}
}

func (w *Window) iconifyChanged(gw *glfw.Window, iconified bool) {
	w.Mu.Lock()
	w.Flgs.SetFlag(iconified, winit.Minimized)
	w.Mu.Unlock()
	w.EvSrc.Window(events.WindowMinimize)
}

func (w *Window) scaleChanged(gw *glfw.Window, x, y float32) {
	if x <= 0 {
		return
	}
	w.Mu.Lock()
	old := w.Scale
	w.Scale = x
	suggested := units.PhysicalSize{
		Width:  int(float32(w.PixSize.Width) * x / old),
		Height: int(float32(w.PixSize.Height) * x / old),
	}
	w.Mu.Unlock()
	w.EvSrc.WindowScale(x, suggested)
}

func (w *Window) refresh(gw *glfw.Window) {
	w.RequestRedraw()
}
