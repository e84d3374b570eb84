// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the closed set of event types flowing from the
// platform drivers to the application: window lifecycle and geometry
// changes, keyboard / pointer / touch input, IME, raw device events, and
// user-defined events. Events are immutable once produced and are consumed
// exactly once by the application handler.
package events

import (
	"fmt"
	"image"
	"time"

	"github.com/asterwyx/winit/events/key"
)

// WindowID is an opaque, totally ordered identifier for a window,
// unique for the lifetime of the window it names and never reused while
// that window is live. Window events are correlated to windows by it.
type WindowID int64

// DeviceID is an opaque, totally ordered identifier for an input
// device, with the same uniqueness guarantee as [WindowID].
type DeviceID int64

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// AsBase returns the [Base] common event data.
	AsBase() *Base

	// IsSame returns whether the given event is the same underlying
	// event as this one.
	IsSame(o Event) bool

	// WindowID returns the window the event belongs to, or 0 for
	// device and user events.
	WindowID() WindowID

	// DeviceID returns the device the event belongs to, or 0 for
	// window and user events.
	DeviceID() DeviceID

	// Time returns the time the event was generated.
	Time() time.Time

	// IsUnique returns whether the event is always delivered,
	// as opposed to being subject to compression.
	IsUnique() bool

	// IsHandled returns whether the event has been marked as handled.
	IsHandled() bool

	// SetHandled marks the event as handled.
	SetHandled()

	// HasPos returns whether the event has a position.
	HasPos() bool

	// Pos returns the position of the event in window-local physical
	// pixels, already converted to the window's current scale factor.
	Pos() image.Point

	// Modifiers returns the modifier key state snapshot taken when the
	// event was generated.
	Modifiers() key.Modifiers
}

// Base is the base type for all events, providing the common data.
// Specific event types embed it and add their payloads.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// Flags are the boolean event properties.
	Flags EventFlags

	// GenTime is when the event was generated.
	GenTime time.Time

	// Win is the window the event belongs to, if any.
	Win WindowID

	// Dev is the device the event belongs to, if any.
	Dev DeviceID

	// Mods is the modifier key snapshot at generation time.
	Mods key.Modifiers

	// Where is the event position in window-local physical pixels.
	Where image.Point

	// Prev is the previous position for move / drag events.
	Prev image.Point

	// Start is the position where the button was first pressed, for
	// drag events.
	Start image.Point

	// Button is the mouse button for mouse events.
	Button Buttons

	// Data is the arbitrary payload of a [Custom] event.
	Data any
}

// Init stamps the generation time and marks the event unique.
// Non-unique event constructors clear the flag after calling it.
func (ev *Base) Init() {
	ev.GenTime = time.Now()
	ev.Flags |= Unique
}

func (ev *Base) Type() Types        { return ev.Typ }
func (ev *Base) AsBase() *Base      { return ev }
func (ev *Base) WindowID() WindowID { return ev.Win }
func (ev *Base) DeviceID() DeviceID { return ev.Dev }
func (ev *Base) Time() time.Time    { return ev.GenTime }

func (ev *Base) IsSame(o Event) bool { return ev == o.AsBase() }

func (ev *Base) IsUnique() bool { return ev.Flags&Unique != 0 }

// SetUnique marks the event as not subject to compression.
func (ev *Base) SetUnique() { ev.Flags |= Unique }

func (ev *Base) IsHandled() bool { return ev.Flags&Handled != 0 }
func (ev *Base) SetHandled()     { ev.Flags |= Handled }

func (ev *Base) HasPos() bool    { return false }
func (ev *Base) Pos() image.Point { return ev.Where }

func (ev *Base) Modifiers() key.Modifiers { return ev.Mods }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Win: %d, Time: %v}", ev.Typ, ev.Win, ev.GenTime.Format("04:05"))
}

// WindowBase is the base for window lifecycle events that carry no
// payload beyond the common data: focus, show, close, destroy, minimize,
// and paint.
type WindowBase struct {
	Base
}

// NewWindow returns a new window lifecycle event of the given type.
func NewWindow(typ Types, win WindowID) *WindowBase {
	ev := &WindowBase{}
	ev.Typ = typ
	ev.Win = win
	ev.Init()
	return ev
}

// CustomEvent is a user-defined event injected through a loop proxy.
// The Data field of the Base holds the arbitrary payload.
type CustomEvent struct {
	Base
}

// NewCustom returns a new user event carrying the given data.
func NewCustom(data any) *CustomEvent {
	ev := &CustomEvent{}
	ev.Typ = Custom
	ev.Data = data
	ev.Init()
	return ev
}

func (ev *CustomEvent) String() string {
	return fmt.Sprintf("%v{Data: %v, Time: %v}", ev.Typ, ev.Data, ev.GenTime.Format("04:05"))
}
