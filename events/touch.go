// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// Sequence identifies a single touch from start through move to end or
// cancel. It is unique per in-progress touch; backends may reuse it once
// the touch has ended.
type Sequence int64

// Touch is a touch event, part of a sequence of Start / Move / End (or
// Cancel) events sharing a [Sequence].
type Touch struct {
	Base

	// Sequence identifies the finger this event belongs to.
	Sequence Sequence

	// Force is the normalized pressure in [0, 1], or -1 when the
	// device does not report pressure.
	Force float32
}

func (ev *Touch) HasPos() bool { return true }

func (ev *Touch) String() string {
	return fmt.Sprintf("%v{Seq: %d, Pos: %v, Time: %v}", ev.Typ, ev.Sequence, ev.Where, ev.GenTime.Format("04:05"))
}

// NewTouch returns a new touch event of the given type. TouchMove events
// are not unique per finger.
func NewTouch(typ Types, win WindowID, seq Sequence, where image.Point, force float32) *Touch {
	ev := &Touch{}
	ev.Typ = typ
	ev.Win = win
	ev.Sequence = seq
	ev.Where = where
	ev.Force = force
	ev.Init()
	if typ == TouchMove {
		ev.Flags &^= Unique
	}
	return ev
}

// TouchMagnify is a pinch-to-zoom gesture event.
type TouchMagnify struct {
	Touch

	// ScaleFactor is the multiplicative scale change of this step
	// relative to the previous one.
	ScaleFactor float32
}

// NewMagnify returns a new Magnify gesture event.
func NewMagnify(win WindowID, where image.Point, scale float32) *TouchMagnify {
	ev := &TouchMagnify{}
	ev.Typ = Magnify
	ev.Win = win
	ev.Where = where
	ev.ScaleFactor = scale
	ev.Init()
	return ev
}

// TouchRotate is a two-finger rotation gesture event.
type TouchRotate struct {
	Touch

	// Rotation is the rotation delta of this step in radians.
	Rotation float32
}

// NewRotate returns a new Rotate gesture event. The delta is given in
// degrees, as most platforms report it, and stored in radians.
func NewRotate(win WindowID, where image.Point, degrees float32) *TouchRotate {
	ev := &TouchRotate{}
	ev.Typ = Rotate
	ev.Win = win
	ev.Where = where
	ev.Rotation = degrees * math32.Pi / 180
	ev.Init()
	return ev
}
