// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

import (
	"unicode/utf8"

	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/units"
)

// Window is a live handle to a native OS window, exclusively identified
// by an [events.WindowID]. The application owns it: explicit creation
// through [ActiveEventLoop.NewWindow], explicit Close destroys the
// native window.
//
// Mutating methods are best-effort requests that take effect
// asynchronously relative to the caller: the authoritative state arrives
// later as events (a SetSize is followed by a WindowResize once the OS
// confirms the new size). Callers must not assume immediate consistency
// after a setter. Reads are synchronous best-effort and may be stale by
// one frame.
type Window interface {

	// ID returns the unique identifier of the window.
	ID() events.WindowID

	// Name returns the name of the window, used for internal tracking;
	// see Title for the displayed title.
	Name() string

	// SetName sets the name of the window.
	SetName(name string)

	// Title returns the current displayed title of the window.
	Title() string

	// SetTitle requests a change of the displayed title.
	SetTitle(title string)

	// InnerSize returns the size of the window's surface in physical
	// pixels, excluding decorations.
	InnerSize() units.PhysicalSize

	// OuterSize returns the size of the whole window in physical
	// pixels, including decorations where the backend reports them;
	// backends that cannot measure decorations return the inner size.
	OuterSize() units.PhysicalSize

	// SetSize requests a change of the surface size. If the backend
	// applies it synchronously the new physical size is returned;
	// nil means the request was issued and a WindowResize event will
	// confirm it.
	SetSize(sz units.Size) *units.PhysicalSize

	// Position returns the window's outer position in desktop
	// coordinates.
	Position() units.PhysicalPosition

	// SetPosition requests a change of the window position.
	SetPosition(pos units.Position)

	// ScaleFactor returns the window's current UI scale factor,
	// always > 0.
	ScaleFactor() float32

	// SetFullscreen requests entering (true) or leaving (false)
	// borderless fullscreen on the window's current screen.
	SetFullscreen(fullscreen bool)

	// Is returns whether the given window state flag is set.
	Is(flag WindowFlags) bool

	// Flags returns all state flags of the window.
	Flags() WindowFlags

	// SetDecorated requests adding or removing the native decorations.
	SetDecorated(decorated bool)

	// SetCursor sets the cursor shape shown over the window.
	SetCursor(c Cursors) error

	// SetCursorEnabled enables or disables the cursor; while disabled
	// the pointer is captured and only raw deltas are reported.
	SetCursorEnabled(enabled bool)

	// SetIMEAllowed sets whether IME composition events are delivered
	// to this window.
	SetIMEAllowed(allowed bool)

	// RequestRedraw requests a WindowPaint event. Idempotent within a
	// cycle: any number of requests before the next redraw opportunity
	// coalesce into exactly one WindowPaint, delivered after all other
	// queued events for this window and before AboutToWait.
	RequestRedraw()

	// Raise requests that the window be brought to the top of the
	// stack and focused, de-iconifying it if needed.
	Raise()

	// Minimize requests that the window be iconified.
	Minimize()

	// SetVisible shows or hides the window.
	SetVisible(visible bool)

	// Screen returns the screen the window is currently on.
	Screen() *Screen

	// Events returns the event source minting this window's events.
	Events() *events.Source

	// Close destroys the native window. A WindowDestroy event is the
	// last event delivered for it; using the handle afterwards is
	// undefined.
	Close()

	// IsClosed returns whether the native window has been destroyed.
	IsClosed() bool
}

// WindowFlags are the binary state properties of a window.
type WindowFlags int64

const (
	// Fullscreen indicates a window occupying the entire screen.
	Fullscreen WindowFlags = 1 << iota

	// Minimized indicates a window reduced to an icon; otherwise the
	// window should be assumed visible.
	Minimized

	// Maximized indicates a window filling the working area.
	Maximized

	// Focused indicates the window receiving keyboard input.
	Focused

	// Decorated indicates a window with native decorations.
	Decorated

	// Resizable indicates the user can resize the window.
	Resizable
)

// HasFlag returns whether the given flag bits are set.
func (f WindowFlags) HasFlag(flag WindowFlags) bool { return f&flag != 0 }

// SetFlag sets or clears the given flag bits.
func (f *WindowFlags) SetFlag(on bool, flags ...WindowFlags) {
	for _, fl := range flags {
		if on {
			*f |= fl
		} else {
			*f &^= fl
		}
	}
}

// WindowLevels is the z-group a window belongs to.
type WindowLevels int32

const (
	// LevelNormal is the default level.
	LevelNormal WindowLevels = iota

	// LevelAlwaysOnBottom keeps the window below normal windows.
	LevelAlwaysOnBottom

	// LevelAlwaysOnTop keeps the window above normal windows.
	LevelAlwaysOnTop
)

// WindowAttributes is the configuration snapshot used when creating a
// window. It is consumed by the driver; later changes go through the
// [Window] setters.
type WindowAttributes struct {
	// Title is the window title.
	Title string

	// Size is the requested surface size, logical or physical; zero
	// means a driver-dependent default derived from the screen.
	Size units.Size

	// Position is the requested outer position; nil means the driver
	// places the window (cascade or center).
	Position units.Position

	// Resizable is whether the user can resize the window.
	Resizable bool

	// Decorated is whether the window has native decorations.
	Decorated bool

	// Transparent is whether the window supports an alpha channel.
	Transparent bool

	// Visible is whether the window is shown on creation.
	Visible bool

	// Maximized is whether the window starts maximized.
	Maximized bool

	// Fullscreen is whether the window starts borderless fullscreen.
	Fullscreen bool

	// Level is the z-group of the window.
	Level WindowLevels

	// Cursor is the initial cursor shape.
	Cursor Cursors
}

// DefaultWindowAttributes returns the default attributes: a visible,
// resizable, decorated window with a driver-chosen size and placement.
func DefaultWindowAttributes() *WindowAttributes {
	return &WindowAttributes{
		Resizable: true,
		Decorated: true,
		Visible:   true,
	}
}

// GetTitle returns a sanitized form of the title: length capped at
// 4096, truncated to valid UTF-8, no NUL bytes. a may be nil.
func (a *WindowAttributes) GetTitle() string {
	if a == nil {
		return ""
	}
	return sanitizeUTF8(a.Title, 4096)
}

func sanitizeUTF8(s string, n int) string {
	if n < len(s) {
		s = s[:n]
	}
	i := 0
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == 0 || (r == utf8.RuneError && n == 1) {
			break
		}
		i += n
	}
	return s[:i]
}

// Fixup resolves the attributes against the given screen and the
// existing windows: fills in a default size, clamps to the screen, and
// places unpositioned windows by cascading off the last window or
// centering on the screen. Drivers call it before creating the native
// window; sc must be non-nil.
func (a *WindowAttributes) Fixup(sc *Screen, lastPos *units.PhysicalPosition, lastSize *units.PhysicalSize) (size units.PhysicalSize, pos units.PhysicalPosition, hasPos bool) {
	scsz := units.PhysicalFromPoint(sc.PixSize)

	if a.Size != nil {
		size = a.Size.ToPhysical(sc.DevicePixelRatio)
	}
	if size.Width <= 0 {
		size.Width = int(WindowSizeFraction * float32(scsz.Width))
	}
	if size.Height <= 0 {
		size.Height = int(WindowSizeFraction * float32(scsz.Height))
	}
	if size.Width > scsz.Width {
		size.Width = scsz.Width
	}
	if size.Height > scsz.Height {
		size.Height = scsz.Height
	}

	if a.Position != nil {
		pos = a.Position.ToPhysical(sc.DevicePixelRatio)
		hasPos = true
	} else if lastPos != nil && lastSize != nil {
		nwbig := size.Width > lastSize.Width || size.Height > lastSize.Height
		if !nwbig { // place centered on top of the last window
			pos.X = lastPos.X + (lastSize.Width-size.Width)/2
			pos.Y = lastPos.Y + (lastSize.Height-size.Height)/2
		} else { // cascade to the right and down a bit
			pos.X = lastPos.X + lastSize.Width
			pos.Y = lastPos.Y + 72
		}
		hasPos = true
	} else { // center on the screen
		pos.X = (scsz.Width - size.Width) / 2
		pos.Y = (scsz.Height - size.Height) / 2
		hasPos = true
	}

	// keep the window on the screen
	if pos.X+size.Width > scsz.Width {
		pos.X = scsz.Width - size.Width
	}
	if pos.Y+size.Height > scsz.Height {
		pos.Y = scsz.Height - size.Height
	}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	return size, pos, hasPos
}

// WindowSizeFraction is the fraction of the screen a window with no
// requested size occupies. The device settings update this at driver
// startup.
var WindowSizeFraction = float32(0.8)
