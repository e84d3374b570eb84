// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"time"

	"github.com/asterwyx/winit/events/key"
	"github.com/asterwyx/winit/units"
)

// DoubleClickInterval is the maximum time between successive clicks for
// them to count as a double click. The device settings update this at
// driver startup.
var DoubleClickInterval = 500 * time.Millisecond

// DoubleClickRadius is the maximum distance in physical pixels between
// a press and a release for a Click, and between successive clicks for
// a DoubleClick.
var DoubleClickRadius = 5

// Source mints events for one window and sends them onto the shared
// app queue. Drivers call its methods from their native callbacks; the
// Source stamps the window, time, and current modifier snapshot, tracks
// pointer state, and synthesizes Click and DoubleClick events. It is
// only used from the native callback thread, which the queue then
// marshals onto the dispatch thread.
type Source struct {
	// Queue is the shared app queue the source sends onto.
	Queue *Queue

	// Win is the window all minted events are keyed by.
	Win WindowID

	// Mods is the current modifier snapshot, updated by key events.
	Mods key.Modifiers

	// Last holds pointer state for deltas and click synthesis.
	Last struct {
		MousePos      image.Point
		MouseButton   Buttons
		MouseDownPos  image.Point
		MouseDownTime time.Time
		ClickTime     time.Time
		ClickPos      image.Point
	}

	// ResettingPos suppresses move events while the driver warps the
	// pointer back (disabled-cursor mode).
	ResettingPos bool

	// keysDown tracks pressed physical keys, for auto-repeat
	// detection.
	keysDown map[key.Codes]bool
}

// NewSource returns a new source for the given window, sending onto
// the given queue.
func NewSource(q *Queue, win WindowID) *Source {
	return &Source{Queue: q, Win: win}
}

// Key sends a KeyDown or KeyUp event and updates the modifier
// snapshot, also sending a ModifiersChange when it changed. A KeyDown
// for a key already held is marked as an auto-repeat.
func (s *Source) Key(typ Types, rn rune, code key.Codes, mods key.Modifiers) {
	if mods != s.Mods {
		s.Mods = mods
		s.Queue.Send(NewModifiers(s.Win, mods))
	}
	ev := NewKey(typ, s.Win, rn, code, mods)
	switch typ {
	case KeyDown:
		if s.keysDown == nil {
			s.keysDown = map[key.Codes]bool{}
		}
		ev.Repeat = s.keysDown[code]
		s.keysDown[code] = true
	case KeyUp:
		delete(s.keysDown, code)
	}
	s.Queue.Send(ev)
}

// KeyChord sends a KeyChord character-input event.
func (s *Source) KeyChord(rn rune, code key.Codes, mods key.Modifiers) {
	s.Queue.Send(NewKey(KeyChord, s.Win, rn, code, mods))
}

// MouseButton sends a MouseDown or MouseUp event, synthesizing Click
// and DoubleClick events on release near the press position.
func (s *Source) MouseButton(typ Types, but Buttons, where image.Point, mods key.Modifiers) {
	s.Mods = mods
	ev := NewMouse(typ, s.Win, but, where, mods)
	s.Queue.Send(ev)
	switch typ {
	case MouseDown:
		s.Last.MouseButton = but
		s.Last.MouseDownPos = where
		s.Last.MouseDownTime = ev.GenTime
	case MouseUp:
		if s.Last.MouseButton != but || !near(where, s.Last.MouseDownPos, DoubleClickRadius) {
			s.Last.MouseButton = NoButton
			return
		}
		ctyp := Click
		if ev.GenTime.Sub(s.Last.ClickTime) < DoubleClickInterval && near(where, s.Last.ClickPos, DoubleClickRadius) {
			ctyp = DoubleClick
		}
		s.Queue.Send(NewMouse(ctyp, s.Win, but, where, mods))
		s.Last.ClickTime = ev.GenTime
		s.Last.ClickPos = where
		s.Last.MouseButton = NoButton
	}
}

// MouseMove sends a MouseMove, or a MouseDrag if a button is down,
// relative to the last reported position.
func (s *Source) MouseMove(where image.Point) {
	if s.ResettingPos {
		return
	}
	if s.Last.MouseButton != NoButton {
		s.Queue.Send(NewMouseDrag(s.Win, s.Last.MouseButton, where, s.Last.MousePos, s.Last.MouseDownPos, s.Mods))
	} else {
		s.Queue.Send(NewMouseMove(s.Win, where, s.Last.MousePos, s.Mods))
	}
	s.Last.MousePos = where
}

// MouseEnter sends a MouseEnter or MouseLeave event.
func (s *Source) MouseEnter(entered bool, where image.Point) {
	typ := MouseEnter
	if !entered {
		typ = MouseLeave
	}
	s.Queue.Send(NewMouse(typ, s.Win, NoButton, where, s.Mods))
}

// Scroll sends a Scroll event at the given position.
func (s *Source) Scroll(where, delta image.Point, kind DeltaKinds) {
	s.Queue.Send(NewScroll(s.Win, where, delta, kind, s.Mods))
}

// Touch sends a touch event of the given type.
func (s *Source) Touch(typ Types, seq Sequence, where image.Point, force float32) {
	s.Queue.Send(NewTouch(typ, s.Win, seq, where, force))
}

// Window sends a payload-free window lifecycle event of the given type.
func (s *Source) Window(typ Types) {
	if typ == WindowFocusLost {
		// key releases are lost without focus; held-key tracking
		// restarts on the next press
		clear(s.keysDown)
	}
	s.Queue.Send(NewWindow(typ, s.Win))
}

// WindowResize sends a WindowResize confirmation with the new physical
// size.
func (s *Source) WindowResize(sz units.PhysicalSize) {
	s.Queue.Send(NewWindowResize(s.Win, sz))
}

// WindowMove sends a WindowMove confirmation with the new position.
func (s *Source) WindowMove(pos units.PhysicalPosition) {
	s.Queue.Send(NewWindowMove(s.Win, pos))
}

// WindowScale sends a WindowScaleChange with the new scale and
// suggested surface size.
func (s *Source) WindowScale(scale float32, suggested units.PhysicalSize) {
	s.Queue.Send(NewWindowScale(s.Win, scale, suggested))
}

// WindowOcclusion sends a WindowOcclusion event.
func (s *Source) WindowOcclusion(occluded bool) {
	s.Queue.Send(NewWindowOcclusion(s.Win, occluded))
}

// WindowTheme sends a WindowThemeChange event.
func (s *Source) WindowTheme(dark bool) {
	s.Queue.Send(NewWindowTheme(s.Win, dark))
}

// Ime sends an IME event of the given type.
func (s *Source) Ime(typ Types, text string, cursorStart, cursorEnd int) {
	s.Queue.Send(NewIme(typ, s.Win, text, cursorStart, cursorEnd))
}

// DropFiles sends a DropFiles event at the last pointer position.
func (s *Source) DropFiles(files []string) {
	ev := NewDropFiles(s.Win, files)
	ev.Where = s.Last.MousePos
	s.Queue.Send(ev)
}

func near(a, b image.Point, radius int) bool {
	d := a.Sub(b)
	if d.X < 0 {
		d.X = -d.X
	}
	if d.Y < 0 {
		d.Y = -d.Y
	}
	return d.X <= radius && d.Y <= radius
}
