// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of an event. The set is closed: any component
// dispatching events must handle (or explicitly pass through) every variant,
// and adding a variant is a breaking change to the contract. The type
// includes both the source of the event and its action (MouseDown and
// MouseUp are separate types). Unless otherwise noted, events are Unique,
// meaning they are always delivered. Non-unique events are subject to
// compression: if an undelivered event of the same type for the same window
// is already queued, the newer one replaces it, with positions and deltas
// folded in.
type Types int64

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See [Mouse.Button] for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse moves with no button down.
	// Not unique; the Prev position is updated during compression.
	MouseMove

	// MouseDrag is sent when the mouse moves with a button down.
	// The Start position is where the button was first pressed.
	// Not unique; the Prev position is updated during compression.
	MouseDrag

	// Click represents a MouseDown followed by a MouseUp at nearly the
	// same position, with the same button. Synthesized by the event
	// source, not reported by platforms.
	Click

	// DoubleClick represents two Clicks in rapid succession.
	DoubleClick

	// MouseEnter is sent when the pointer enters the window.
	MouseEnter

	// MouseLeave is sent when the pointer leaves the window.
	MouseLeave

	// Scroll is a scroll wheel or scroll gesture event.
	// Not unique; the Delta is integrated during compression.
	Scroll

	// KeyDown is sent when a key is pressed down, including repeats.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	// KeyChord is sent when character input is produced, carrying the
	// layout-dependent logical rune. It can lag the KeyDown that
	// produced it.
	KeyChord

	// TouchStart is the start of a touch sequence.
	TouchStart

	// TouchMove is a movement within a touch sequence.
	// Not unique per finger.
	TouchMove

	// TouchEnd is the normal end of a touch sequence.
	TouchEnd

	// TouchCancel is sent when the system cancels a touch sequence.
	TouchCancel

	// Magnify is a pinch-to-zoom gesture event.
	Magnify

	// Rotate is a two-finger rotation gesture event.
	Rotate

	// WindowResize is sent after the window surface size has changed,
	// carrying the new physical size. It confirms both OS-driven
	// resizes and SetSize requests. Not unique; compressed to minimize
	// lag during continuous resizing.
	WindowResize

	// WindowMove is sent after the window position has changed.
	// Not unique.
	WindowMove

	// WindowClose is a request from the OS or user to close the
	// window. The window is not closed until the application does so.
	WindowClose

	// WindowDestroy is sent after the native window has been
	// destroyed. It is the last event delivered for its window.
	WindowDestroy

	// WindowFocus is sent when the window gains keyboard focus.
	WindowFocus

	// WindowFocusLost is sent when the window loses keyboard focus.
	WindowFocusLost

	// WindowShow is sent once when the window first becomes visible.
	WindowShow

	// WindowMinimize is sent when the window is iconified or restored.
	WindowMinimize

	// WindowPaint is the coalesced redraw event: any number of
	// RequestRedraw calls before a redraw opportunity produce exactly
	// one WindowPaint at that opportunity, ordered after all other
	// pending events for the window.
	WindowPaint

	// WindowScaleChange is sent when the window's scale factor
	// changes (moved to a different monitor, system DPI change),
	// carrying the new scale and the suggested new physical size.
	WindowScaleChange

	// WindowThemeChange is sent when the system light/dark theme
	// changes.
	WindowThemeChange

	// WindowOcclusion is sent when the window becomes fully occluded
	// or visible again.
	WindowOcclusion

	// ModifiersChange is sent when the modifier key state changes,
	// carrying the new snapshot.
	ModifiersChange

	// ImeEnabled is sent when IME input becomes active on the window.
	ImeEnabled

	// ImePreedit reports in-progress IME composition text.
	// Not unique; newer preedits replace older undelivered ones.
	ImePreedit

	// ImeCommit delivers finished IME composition text.
	ImeCommit

	// ImeDisabled is sent when IME input is deactivated.
	ImeDisabled

	// DropFiles is sent when files are dragged and dropped onto the
	// window.
	DropFiles

	// DeviceMove is a raw, unaccelerated device motion delta,
	// not associated with any window.
	DeviceMove

	// DeviceButton is a raw device button press or release.
	DeviceButton

	// DeviceKey is a raw device key press or release.
	DeviceKey

	// DeviceAdded is sent when an input device is connected.
	DeviceAdded

	// DeviceRemoved is sent when an input device is disconnected.
	DeviceRemoved

	// Custom is a user-defined event injected through a loop proxy,
	// with arbitrary Data.
	Custom

	// TypesN is the number of event types.
	TypesN
)

var typeNames = map[Types]string{
	UnknownType:       "UnknownType",
	MouseDown:         "MouseDown",
	MouseUp:           "MouseUp",
	MouseMove:         "MouseMove",
	MouseDrag:         "MouseDrag",
	Click:             "Click",
	DoubleClick:       "DoubleClick",
	MouseEnter:        "MouseEnter",
	MouseLeave:        "MouseLeave",
	Scroll:            "Scroll",
	KeyDown:           "KeyDown",
	KeyUp:             "KeyUp",
	KeyChord:          "KeyChord",
	TouchStart:        "TouchStart",
	TouchMove:         "TouchMove",
	TouchEnd:          "TouchEnd",
	TouchCancel:       "TouchCancel",
	Magnify:           "Magnify",
	Rotate:            "Rotate",
	WindowResize:      "WindowResize",
	WindowMove:        "WindowMove",
	WindowClose:       "WindowClose",
	WindowDestroy:     "WindowDestroy",
	WindowFocus:       "WindowFocus",
	WindowFocusLost:   "WindowFocusLost",
	WindowShow:        "WindowShow",
	WindowMinimize:    "WindowMinimize",
	WindowPaint:       "WindowPaint",
	WindowScaleChange: "WindowScaleChange",
	WindowThemeChange: "WindowThemeChange",
	WindowOcclusion:   "WindowOcclusion",
	ModifiersChange:   "ModifiersChange",
	ImeEnabled:        "ImeEnabled",
	ImePreedit:        "ImePreedit",
	ImeCommit:         "ImeCommit",
	ImeDisabled:       "ImeDisabled",
	DropFiles:         "DropFiles",
	DeviceMove:        "DeviceMove",
	DeviceButton:      "DeviceButton",
	DeviceKey:         "DeviceKey",
	DeviceAdded:       "DeviceAdded",
	DeviceRemoved:     "DeviceRemoved",
	Custom:            "Custom",
}

func (t Types) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "Types(?)"
}

// IsDevice returns whether this is a raw device event type, keyed by
// DeviceID instead of WindowID.
func (t Types) IsDevice() bool {
	return t >= DeviceMove && t <= DeviceRemoved
}

// IsUser returns whether this is a user-defined event type.
func (t Types) IsUser() bool {
	return t == Custom
}

// IsWindow returns whether this event type is keyed by a WindowID.
// Everything that is not a device or user event belongs to a window,
// including keyboard, pointer, touch, and IME input.
func (t Types) IsWindow() bool {
	return t != UnknownType && !t.IsDevice() && !t.IsUser()
}

// IsTerminal returns whether this event type ends its window's event
// stream ordering: close requests and destruction are always delivered
// after all other pending events for the same window.
func (t Types) IsTerminal() bool {
	return t == WindowClose || t == WindowDestroy
}

// EventFlags encode boolean event properties.
type EventFlags int64

const (
	// Handled indicates that the event has been handled.
	Handled EventFlags = 1 << iota

	// Unique indicates that the event is always delivered and never
	// compressed with like events.
	Unique
)
