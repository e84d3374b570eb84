// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/asterwyx/winit/events/key"
)

// Key is a keyboard event. It carries both the physical, layout
// independent key [key.Codes] and the logical, layout dependent Rune the
// key produced, along with the modifier snapshot valid at the instant of
// the event.
type Key struct {
	Base

	// Rune is the logical key: the character the key produces under the
	// active layout and modifiers, or 0 if it produces none.
	Rune rune

	// Code is the physical key code, independent of layout.
	Code key.Codes

	// Repeat is whether this KeyDown is an auto-repeat of a held key.
	Repeat bool
}

func (ev *Key) String() string {
	if ev.Rune != 0 {
		return fmt.Sprintf("%v{Rune: %q, Code: %v, Mods: %v, Time: %v}", ev.Typ, ev.Rune, ev.Code, ev.Mods.ModifiersString(), ev.GenTime.Format("04:05"))
	}
	return fmt.Sprintf("%v{Code: %v, Mods: %v, Time: %v}", ev.Typ, ev.Code, ev.Mods.ModifiersString(), ev.GenTime.Format("04:05"))
}

// NewKey returns a new key event of the given type (KeyDown, KeyUp, or
// KeyChord).
func NewKey(typ Types, win WindowID, rn rune, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Typ = typ
	ev.Win = win
	ev.Rune = rn
	ev.Code = code
	ev.Mods = mods
	ev.Init()
	return ev
}

// ModifiersEvent reports a change in the modifier key state; the Mods of
// the Base is the new snapshot.
type ModifiersEvent struct {
	Base
}

// NewModifiers returns a new ModifiersChange event with the given new
// snapshot.
func NewModifiers(win WindowID, mods key.Modifiers) *ModifiersEvent {
	ev := &ModifiersEvent{}
	ev.Typ = ModifiersChange
	ev.Win = win
	ev.Mods = mods
	ev.Init()
	return ev
}
