// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build x11

package x11

import (
	"image"
	"log/slog"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/events/key"
)

// readEvents runs on its own goroutine, blocking on the X connection
// and translating protocol events into normalized events on the app
// queue, which wakes the dispatch loop.
func (a *App) readEvents() {
	wmDelete, err := xprop.Atm(a.XU, "WM_DELETE_WINDOW")
	if err != nil {
		slog.Error("x11: error interning WM_DELETE_WINDOW", "err", err)
	}
	for {
		xev, xerr := a.XU.Conn().WaitForEvent()
		if xerr != nil {
			slog.Error("x11: protocol error", "err", xerr)
			continue
		}
		if xev == nil { // connection closed
			return
		}
		switch ev := xev.(type) {
		case xproto.ConfigureNotifyEvent:
			if w := a.windowFor(ev.Window); w != nil {
				w.configured(int(ev.X), int(ev.Y), int(ev.Width), int(ev.Height))
			}
		case xproto.ExposeEvent:
			if w := a.windowFor(ev.Window); w != nil && ev.Count == 0 {
				w.RequestRedraw()
			}
		case xproto.ClientMessageEvent:
			if w := a.windowFor(ev.Window); w != nil &&
				len(ev.Data.Data32) > 0 && xproto.Atom(ev.Data.Data32[0]) == wmDelete {
				w.EvSrc.Window(events.WindowClose)
			}
		case xproto.DestroyNotifyEvent:
			if w := a.windowFor(ev.Window); w != nil {
				w.SetClosed()
			}
		case xproto.MapNotifyEvent:
			if w := a.windowFor(ev.Window); w != nil {
				w.EvSrc.Window(events.WindowShow)
			}
		case xproto.FocusInEvent:
			if w := a.windowFor(ev.Event); w != nil {
				w.Mu.Lock()
				w.Flgs.SetFlag(true, winit.Focused)
				w.Mu.Unlock()
				w.EvSrc.Window(events.WindowFocus)
			}
		case xproto.FocusOutEvent:
			if w := a.windowFor(ev.Event); w != nil {
				w.Mu.Lock()
				w.Flgs.SetFlag(false, winit.Focused)
				w.Mu.Unlock()
				w.EvSrc.Window(events.WindowFocusLost)
			}
		case xproto.EnterNotifyEvent:
			if w := a.windowFor(ev.Event); w != nil {
				w.EvSrc.MouseEnter(true, image.Pt(int(ev.EventX), int(ev.EventY)))
			}
		case xproto.LeaveNotifyEvent:
			if w := a.windowFor(ev.Event); w != nil {
				w.EvSrc.MouseEnter(false, image.Pt(int(ev.EventX), int(ev.EventY)))
			}
		case xproto.MotionNotifyEvent:
			if w := a.windowFor(ev.Event); w != nil {
				w.EvSrc.MouseMove(image.Pt(int(ev.EventX), int(ev.EventY)))
			}
		case xproto.ButtonPressEvent:
			a.buttonEvent(ev.Event, ev.Detail, ev.State, int(ev.EventX), int(ev.EventY), true)
		case xproto.ButtonReleaseEvent:
			a.buttonEvent(ev.Event, ev.Detail, ev.State, int(ev.EventX), int(ev.EventY), false)
		case xproto.KeyPressEvent:
			a.keyEvent(ev.Event, ev.Detail, ev.State, true)
		case xproto.KeyReleaseEvent:
			a.keyEvent(ev.Event, ev.Detail, ev.State, false)
		case randr.ScreenChangeNotifyEvent:
			a.GetScreens()
		}
	}
}

func stateMods(state uint16) key.Modifiers {
	var mods key.Modifiers
	mods.SetFlag(state&xproto.ModMaskShift != 0, key.Shift)
	mods.SetFlag(state&xproto.ModMaskControl != 0, key.Control)
	mods.SetFlag(state&xproto.ModMask1 != 0, key.Alt)
	mods.SetFlag(state&xproto.ModMask4 != 0, key.Meta)
	return mods
}

// X buttons 4-7 are scroll ticks, reported on press only.
func (a *App) buttonEvent(xid xproto.Window, detail xproto.Button, state uint16, x, y int, press bool) {
	w := a.windowFor(xid)
	if w == nil {
		return
	}
	pos := image.Pt(x, y)
	mods := stateMods(state)
	if detail >= 4 && detail <= 7 {
		if !press {
			return
		}
		tick := int(events.ScrollWheelSpeed)
		if tick < 1 {
			tick = 1
		}
		var d image.Point
		switch detail {
		case 4:
			d.Y = tick
		case 5:
			d.Y = -tick
		case 6:
			d.X = tick
		case 7:
			d.X = -tick
		}
		w.EvSrc.Scroll(pos, d, events.DeltaLines)
		return
	}
	var but events.Buttons
	switch detail {
	case 1:
		but = events.Left
	case 2:
		but = events.Middle
	case 3:
		but = events.Right
	case 8:
		but = events.Back
	case 9:
		but = events.Forward
	default:
		return
	}
	typ := events.MouseDown
	if !press {
		typ = events.MouseUp
	}
	w.EvSrc.MouseButton(typ, but, pos, mods)
}

func (a *App) keyEvent(xid xproto.Window, detail xproto.Keycode, state uint16, press bool) {
	w := a.windowFor(xid)
	if w == nil {
		return
	}
	mods := stateMods(state)
	sym := keybind.LookupString(a.XU, state, detail)
	code, rn := keysymToKey(sym)
	typ := events.KeyDown
	if !press {
		typ = events.KeyUp
	}
	w.EvSrc.Key(typ, rn, code, mods)
	if press && rn != 0 && !code.IsModifier() {
		w.EvSrc.KeyChord(rn, code, mods)
	}
}

// keysymToKey maps a keysym name from keybind.LookupString to the HID
// code and logical rune.
func keysymToKey(sym string) (key.Codes, rune) {
	if len(sym) == 1 {
		r := rune(sym[0])
		lr := r
		if lr >= 'A' && lr <= 'Z' {
			lr += 'a' - 'A'
		}
		for c, cr := range key.CodeRuneMap {
			if cr == lr {
				return c, r
			}
		}
		return key.CodeUnknown, r
	}
	if c, ok := keysymCodes[sym]; ok {
		return c, key.CodeRuneMap[c]
	}
	return key.CodeUnknown, 0
}

var keysymCodes = map[string]key.Codes{
	"Return":    key.CodeReturnEnter,
	"Escape":    key.CodeEscape,
	"BackSpace": key.CodeDeleteBackspace,
	"Tab":       key.CodeTab,
	"space":     key.CodeSpacebar,
	"Delete":    key.CodeDeleteForward,
	"Home":      key.CodeHome,
	"End":       key.CodeEnd,
	"Prior":     key.CodePageUp,
	"Next":      key.CodePageDown,
	"Insert":    key.CodeInsert,
	"Left":      key.CodeLeftArrow,
	"Right":     key.CodeRightArrow,
	"Up":        key.CodeUpArrow,
	"Down":      key.CodeDownArrow,
	"Caps_Lock": key.CodeCapsLock,
	"F1":        key.CodeF1,
	"F2":        key.CodeF2,
	"F3":        key.CodeF3,
	"F4":        key.CodeF4,
	"F5":        key.CodeF5,
	"F6":        key.CodeF6,
	"F7":        key.CodeF7,
	"F8":        key.CodeF8,
	"F9":        key.CodeF9,
	"F10":       key.CodeF10,
	"F11":       key.CodeF11,
	"F12":       key.CodeF12,
	"Shift_L":   key.CodeLeftShift,
	"Shift_R":   key.CodeRightShift,
	"Control_L": key.CodeLeftControl,
	"Control_R": key.CodeRightControl,
	"Alt_L":     key.CodeLeftAlt,
	"Alt_R":     key.CodeRightAlt,
	"Super_L":   key.CodeLeftMeta,
	"Super_R":   key.CodeRightMeta,
}
