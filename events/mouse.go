// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"github.com/asterwyx/winit/events/key"
)

// ScrollWheelSpeed controls how fast the scroll wheel moves, as a
// multiplier applied by drivers when converting line deltas to pixels.
// The device settings update this at driver startup.
var ScrollWheelSpeed = float32(1)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
	Back
	Forward
)

func (b Buttons) String() string {
	switch b {
	case NoButton:
		return "NoButton"
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	case Back:
		return "Back"
	case Forward:
		return "Forward"
	}
	return "Buttons(?)"
}

// Mouse is the event for all pointer events except [Scroll]:
// button presses and releases, moves, drags, enter / leave, and the
// synthesized [Click] and [DoubleClick].
type Mouse struct {
	Base
}

func (ev *Mouse) HasPos() bool { return true }

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Typ, ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.GenTime.Format("04:05"))
}

// NewMouse returns a new mouse event of the given type.
// Position is in window-local physical pixels.
func NewMouse(typ Types, win WindowID, but Buttons, where image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = typ
	ev.Win = win
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	ev.Init()
	return ev
}

// NewMouseMove returns a new MouseMove event. Not unique.
func NewMouseMove(win WindowID, where, prev image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseMove
	ev.Win = win
	ev.Where = where
	ev.Prev = prev
	ev.Mods = mods
	ev.Init()
	ev.Flags &^= Unique
	return ev
}

// NewMouseDrag returns a new MouseDrag event. Not unique.
func NewMouseDrag(win WindowID, but Buttons, where, prev, start image.Point, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Typ = MouseDrag
	ev.Win = win
	ev.Button = but
	ev.Where = where
	ev.Prev = prev
	ev.Start = start
	ev.Mods = mods
	ev.Init()
	ev.Flags &^= Unique
	return ev
}

// DeltaKinds describes the unit of a scroll delta.
type DeltaKinds int32

const (
	// DeltaPixels is an exact pixel delta, typical of touchpads.
	DeltaPixels DeltaKinds = iota

	// DeltaLines is a delta in text lines, typical of wheel clicks.
	// Consumers multiply by their line height (see the scroll wheel
	// speed device setting).
	DeltaLines
)

// MouseScroll is a scroll wheel or scroll gesture event, recording the
// scroll delta.
type MouseScroll struct {
	Mouse

	// Delta is the amount of scrolling in each axis.
	Delta image.Point

	// DeltaKind is the unit of Delta.
	DeltaKind DeltaKinds
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v, Pos: %v, Mods: %v, Time: %v}", ev.Typ, ev.Delta, ev.Where, ev.Mods.ModifiersString(), ev.GenTime.Format("04:05"))
}

// NewScroll returns a new Scroll event. Not unique; deltas are
// integrated during compression.
func NewScroll(win WindowID, where, delta image.Point, kind DeltaKinds, mods key.Modifiers) *MouseScroll {
	ev := &MouseScroll{}
	ev.Typ = Scroll
	ev.Win = win
	ev.Where = where
	ev.Delta = delta
	ev.DeltaKind = kind
	ev.Mods = mods
	ev.Init()
	ev.Flags &^= Unique
	return ev
}
