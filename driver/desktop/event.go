// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func glfwMods(m glfw.ModifierKey) key.Modifiers {
	var mods key.Modifiers
	mods.SetFlag(m&glfw.ModShift != 0, key.Shift)
	mods.SetFlag(m&glfw.ModControl != 0, key.Control)
	mods.SetFlag(m&glfw.ModAlt != 0, key.Alt)
	mods.SetFlag(m&glfw.ModSuper != 0, key.Meta)
	return mods
}

func glfwButton(b glfw.MouseButton) events.Buttons {
	switch b {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonRight:
		return events.Right
	case glfw.MouseButtonMiddle:
		return events.Middle
	}
	return events.NoButton
}

// keyEvent handles the glfw key callback for one window.
func (w *Window) keyEvent(gw *glfw.Window, k glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	code := glfwKeyCodes[k]
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	rn := key.CodeRuneMap[code]
	w.EvSrc.Key(typ, rn, code, glfwMods(mod))
}

// charEvent handles the glfw character callback, carrying the
// layout-dependent logical rune.
func (w *Window) charEvent(gw *glfw.Window, char rune, mod glfw.ModifierKey) {
	w.EvSrc.KeyChord(char, key.CodeUnknown, glfwMods(mod))
}

func (w *Window) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.MouseDown
	if action == glfw.Release {
		typ = events.MouseUp
	}
	w.EvSrc.MouseButton(typ, glfwButton(button), w.curPos(), glfwMods(mod))
}

// pointerDeviceID is the synthetic device id raw pointer deltas are
// reported under; joysticks start above it.
const pointerDeviceID events.DeviceID = 1

func (w *Window) cursorPosEvent(gw *glfw.Window, x, y float64) {
	p := w.toPix(x, y)
	w.Mu.Lock()
	captured := !w.CursorOn
	w.Mu.Unlock()
	if captured {
		// disabled-cursor mode reports raw unaccelerated deltas too
		last := w.EvSrc.Last.MousePos
		w.App.Loop().Send(events.NewDeviceMove(pointerDeviceID,
			float32(p.X-last.X), float32(p.Y-last.Y)))
	}
	w.EvSrc.MouseMove(p)
}

func (w *Window) cursorEnterEvent(gw *glfw.Window, entered bool) {
	w.EvSrc.MouseEnter(entered, w.curPos())
}

func (w *Window) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	d := image.Pt(
		int(xoff*float64(events.ScrollWheelSpeed)),
		int(yoff*float64(events.ScrollWheelSpeed)),
	)
	w.EvSrc.Scroll(w.curPos(), d, events.DeltaLines)
}

func (w *Window) dropEvent(gw *glfw.Window, names []string) {
	w.EvSrc.DropFiles(names)
}

// curPos returns the current pointer position in physical pixels.
func (w *Window) curPos() image.Point {
	x, y := w.Glw.GetCursorPos()
	return w.toPix(x, y)
}

// toPix converts glfw screen coordinates to physical pixels.
func (w *Window) toPix(x, y float64) image.Point {
	s := w.ScaleFactor()
	return image.Pt(int(float32(x)*s), int(float32(y)*s))
}

// glfwKeyCodes maps glfw layout-independent keys to HID codes; keys not
// present map to CodeUnknown.
var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.KeyA:            key.CodeA,
	glfw.KeyB:            key.CodeB,
	glfw.KeyC:            key.CodeC,
	glfw.KeyD:            key.CodeD,
	glfw.KeyE:            key.CodeE,
	glfw.KeyF:            key.CodeF,
	glfw.KeyG:            key.CodeG,
	glfw.KeyH:            key.CodeH,
	glfw.KeyI:            key.CodeI,
	glfw.KeyJ:            key.CodeJ,
	glfw.KeyK:            key.CodeK,
	glfw.KeyL:            key.CodeL,
	glfw.KeyM:            key.CodeM,
	glfw.KeyN:            key.CodeN,
	glfw.KeyO:            key.CodeO,
	glfw.KeyP:            key.CodeP,
	glfw.KeyQ:            key.CodeQ,
	glfw.KeyR:            key.CodeR,
	glfw.KeyS:            key.CodeS,
	glfw.KeyT:            key.CodeT,
	glfw.KeyU:            key.CodeU,
	glfw.KeyV:            key.CodeV,
	glfw.KeyW:            key.CodeW,
	glfw.KeyX:            key.CodeX,
	glfw.KeyY:            key.CodeY,
	glfw.KeyZ:            key.CodeZ,
	glfw.Key1:            key.Code1,
	glfw.Key2:            key.Code2,
	glfw.Key3:            key.Code3,
	glfw.Key4:            key.Code4,
	glfw.Key5:            key.Code5,
	glfw.Key6:            key.Code6,
	glfw.Key7:            key.Code7,
	glfw.Key8:            key.Code8,
	glfw.Key9:            key.Code9,
	glfw.Key0:            key.Code0,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyBackspace:    key.CodeDeleteBackspace,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyMinus:        key.CodeHyphenMinus,
	glfw.KeyEqual:        key.CodeEqualSign,
	glfw.KeyLeftBracket:  key.CodeLeftSquareBracket,
	glfw.KeyRightBracket: key.CodeRightSquareBracket,
	glfw.KeyBackslash:    key.CodeBackslash,
	glfw.KeySemicolon:    key.CodeSemicolon,
	glfw.KeyApostrophe:   key.CodeApostrophe,
	glfw.KeyGraveAccent:  key.CodeGraveAccent,
	glfw.KeyComma:        key.CodeComma,
	glfw.KeyPeriod:       key.CodeFullStop,
	glfw.KeySlash:        key.CodeSlash,
	glfw.KeyCapsLock:     key.CodeCapsLock,
	glfw.KeyF1:           key.CodeF1,
	glfw.KeyF2:           key.CodeF2,
	glfw.KeyF3:           key.CodeF3,
	glfw.KeyF4:           key.CodeF4,
	glfw.KeyF5:           key.CodeF5,
	glfw.KeyF6:           key.CodeF6,
	glfw.KeyF7:           key.CodeF7,
	glfw.KeyF8:           key.CodeF8,
	glfw.KeyF9:           key.CodeF9,
	glfw.KeyF10:          key.CodeF10,
	glfw.KeyF11:          key.CodeF11,
	glfw.KeyF12:          key.CodeF12,
	glfw.KeyPause:        key.CodePause,
	glfw.KeyInsert:       key.CodeInsert,
	glfw.KeyHome:         key.CodeHome,
	glfw.KeyPageUp:       key.CodePageUp,
	glfw.KeyDelete:       key.CodeDeleteForward,
	glfw.KeyEnd:          key.CodeEnd,
	glfw.KeyPageDown:     key.CodePageDown,
	glfw.KeyRight:        key.CodeRightArrow,
	glfw.KeyLeft:         key.CodeLeftArrow,
	glfw.KeyDown:         key.CodeDownArrow,
	glfw.KeyUp:           key.CodeUpArrow,
	glfw.KeyKPDivide:     key.CodeKeypadSlash,
	glfw.KeyKPMultiply:   key.CodeKeypadAsterisk,
	glfw.KeyKPSubtract:   key.CodeKeypadMinus,
	glfw.KeyKPAdd:        key.CodeKeypadPlus,
	glfw.KeyKPEnter:      key.CodeKeypadEnter,
	glfw.KeyKP1:          key.CodeKeypad1,
	glfw.KeyKP2:          key.CodeKeypad2,
	glfw.KeyKP3:          key.CodeKeypad3,
	glfw.KeyKP4:          key.CodeKeypad4,
	glfw.KeyKP5:          key.CodeKeypad5,
	glfw.KeyKP6:          key.CodeKeypad6,
	glfw.KeyKP7:          key.CodeKeypad7,
	glfw.KeyKP8:          key.CodeKeypad8,
	glfw.KeyKP9:          key.CodeKeypad9,
	glfw.KeyKP0:          key.CodeKeypad0,
	glfw.KeyKPDecimal:    key.CodeKeypadFullStop,
	glfw.KeyNumLock:      key.CodeKeypadNumLock,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftMeta,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightMeta,
}
