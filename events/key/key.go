// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes, logical keys, and modifier
// state used by keyboard events. Codes identify the physical location of a
// key independent of the active keyboard layout, following the USB HID
// usage tables; the logical key is the layout-dependent rune the key
// produces with the modifiers that were down at the instant of the event.
package key

import (
	"fmt"
	"strings"
)

// Modifiers are the modifier keys as a bit flag set. The modifier state
// carried on an event is a snapshot taken when the event was generated;
// it is never re-queried later.
type Modifiers int64

const (
	// Shift is the shift modifier (either side).
	Shift Modifiers = 1 << iota

	// Control is the control modifier (either side).
	Control

	// Alt is the alt/option modifier (either side).
	Alt

	// Meta is the system modifier: command on macOS, the windows key
	// on Windows, super on Linux.
	Meta
)

// HasFlag returns whether the given modifier bit is set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f != 0
}

// SetFlag sets or clears the given modifier bits.
func (m *Modifiers) SetFlag(on bool, f ...Modifiers) {
	for _, fl := range f {
		if on {
			*m |= fl
		} else {
			*m &^= fl
		}
	}
}

// ModifiersString returns the canonical + separated name list, in the
// fixed order Shift, Control, Alt, Meta.
func (m Modifiers) ModifiersString() string {
	var sb strings.Builder
	for _, f := range []Modifiers{Shift, Control, Alt, Meta} {
		if m.HasFlag(f) {
			sb.WriteString(f.name() + "+")
		}
	}
	return strings.TrimSuffix(sb.String(), "+")
}

func (m Modifiers) name() string {
	switch m {
	case Shift:
		return "Shift"
	case Control:
		return "Control"
	case Alt:
		return "Alt"
	case Meta:
		return "Meta"
	}
	return ""
}

// Codes is the identity of a physical key relative to an ideal
// "standard" keyboard, independent of the current layout.
type Codes int32

const (
	CodeUnknown Codes = 0

	CodeA Codes = 4
	CodeB Codes = 5
	CodeC Codes = 6
	CodeD Codes = 7
	CodeE Codes = 8
	CodeF Codes = 9
	CodeG Codes = 10
	CodeH Codes = 11
	CodeI Codes = 12
	CodeJ Codes = 13
	CodeK Codes = 14
	CodeL Codes = 15
	CodeM Codes = 16
	CodeN Codes = 17
	CodeO Codes = 18
	CodeP Codes = 19
	CodeQ Codes = 20
	CodeR Codes = 21
	CodeS Codes = 22
	CodeT Codes = 23
	CodeU Codes = 24
	CodeV Codes = 25
	CodeW Codes = 26
	CodeX Codes = 27
	CodeY Codes = 28
	CodeZ Codes = 29

	Code1 Codes = 30
	Code2 Codes = 31
	Code3 Codes = 32
	Code4 Codes = 33
	Code5 Codes = 34
	Code6 Codes = 35
	Code7 Codes = 36
	Code8 Codes = 37
	Code9 Codes = 38
	Code0 Codes = 39

	CodeReturnEnter        Codes = 40
	CodeEscape             Codes = 41
	CodeDeleteBackspace    Codes = 42
	CodeTab                Codes = 43
	CodeSpacebar           Codes = 44
	CodeHyphenMinus        Codes = 45
	CodeEqualSign          Codes = 46
	CodeLeftSquareBracket  Codes = 47
	CodeRightSquareBracket Codes = 48
	CodeBackslash          Codes = 49
	CodeSemicolon          Codes = 51
	CodeApostrophe         Codes = 52
	CodeGraveAccent        Codes = 53
	CodeComma              Codes = 54
	CodeFullStop           Codes = 55
	CodeSlash              Codes = 56
	CodeCapsLock           Codes = 57

	CodeF1  Codes = 58
	CodeF2  Codes = 59
	CodeF3  Codes = 60
	CodeF4  Codes = 61
	CodeF5  Codes = 62
	CodeF6  Codes = 63
	CodeF7  Codes = 64
	CodeF8  Codes = 65
	CodeF9  Codes = 66
	CodeF10 Codes = 67
	CodeF11 Codes = 68
	CodeF12 Codes = 69

	CodePrintScreen    Codes = 70
	CodeScrollLock     Codes = 71
	CodePause          Codes = 72
	CodeInsert         Codes = 73
	CodeHome           Codes = 74
	CodePageUp         Codes = 75
	CodeDeleteForward  Codes = 76
	CodeEnd            Codes = 77
	CodePageDown       Codes = 78
	CodeRightArrow     Codes = 79
	CodeLeftArrow      Codes = 80
	CodeDownArrow      Codes = 81
	CodeUpArrow        Codes = 82
	CodeKeypadNumLock  Codes = 83
	CodeKeypadSlash    Codes = 84
	CodeKeypadAsterisk Codes = 85
	CodeKeypadMinus    Codes = 86
	CodeKeypadPlus     Codes = 87
	CodeKeypadEnter    Codes = 88
	CodeKeypad1        Codes = 89
	CodeKeypad2        Codes = 90
	CodeKeypad3        Codes = 91
	CodeKeypad4        Codes = 92
	CodeKeypad5        Codes = 93
	CodeKeypad6        Codes = 94
	CodeKeypad7        Codes = 95
	CodeKeypad8        Codes = 96
	CodeKeypad9        Codes = 97
	CodeKeypad0        Codes = 98
	CodeKeypadFullStop Codes = 99

	CodeLeftControl  Codes = 224
	CodeLeftShift    Codes = 225
	CodeLeftAlt      Codes = 226
	CodeLeftMeta     Codes = 227
	CodeRightControl Codes = 228
	CodeRightShift   Codes = 229
	CodeRightAlt     Codes = 230
	CodeRightMeta    Codes = 231
)

// IsModifier returns whether the code is for a modifier key.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftControl && c <= CodeRightMeta
}

func (c Codes) String() string {
	if r, ok := CodeRuneMap[c]; ok {
		return string(r)
	}
	return fmt.Sprintf("Code(%d)", int32(c))
}

// CodeRuneMap gives the unshifted US-layout rune for key codes that
// produce one. It is a fallback for backends that cannot report the
// layout-dependent logical key; backends that can should prefer the
// native lookup.
var CodeRuneMap = map[Codes]rune{
	CodeA: 'a',
	CodeB: 'b',
	CodeC: 'c',
	CodeD: 'd',
	CodeE: 'e',
	CodeF: 'f',
	CodeG: 'g',
	CodeH: 'h',
	CodeI: 'i',
	CodeJ: 'j',
	CodeK: 'k',
	CodeL: 'l',
	CodeM: 'm',
	CodeN: 'n',
	CodeO: 'o',
	CodeP: 'p',
	CodeQ: 'q',
	CodeR: 'r',
	CodeS: 's',
	CodeT: 't',
	CodeU: 'u',
	CodeV: 'v',
	CodeW: 'w',
	CodeX: 'x',
	CodeY: 'y',
	CodeZ: 'z',

	Code1: '1',
	Code2: '2',
	Code3: '3',
	Code4: '4',
	Code5: '5',
	Code6: '6',
	Code7: '7',
	Code8: '8',
	Code9: '9',
	Code0: '0',

	CodeReturnEnter:        '\n',
	CodeTab:                '\t',
	CodeSpacebar:           ' ',
	CodeHyphenMinus:        '-',
	CodeEqualSign:          '=',
	CodeLeftSquareBracket:  '[',
	CodeRightSquareBracket: ']',
	CodeBackslash:          '\\',
	CodeSemicolon:          ';',
	CodeApostrophe:         '\'',
	CodeGraveAccent:        '`',
	CodeComma:              ',',
	CodeFullStop:           '.',
	CodeSlash:              '/',

	CodeKeypadSlash:    '/',
	CodeKeypadAsterisk: '*',
	CodeKeypadMinus:    '-',
	CodeKeypadPlus:     '+',
	CodeKeypadEnter:    '\n',
	CodeKeypad1:        '1',
	CodeKeypad2:        '2',
	CodeKeypad3:        '3',
	CodeKeypad4:        '4',
	CodeKeypad5:        '5',
	CodeKeypad6:        '6',
	CodeKeypad7:        '7',
	CodeKeypad8:        '8',
	CodeKeypad9:        '9',
	CodeKeypad0:        '0',
	CodeKeypadFullStop: '.',
}
