// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Ime is an input-method-editor event: activation, in-progress preedit
// composition, committed text, or deactivation. IME events are only
// delivered for windows that have allowed IME input.
type Ime struct {
	Base

	// Text is the preedit or committed text, depending on the type.
	Text string

	// CursorStart and CursorEnd delimit the cursor range within a
	// preedit in bytes; both are -1 when the cursor is hidden.
	CursorStart int
	CursorEnd   int
}

func (ev *Ime) String() string {
	return fmt.Sprintf("%v{Text: %q, Time: %v}", ev.Typ, ev.Text, ev.GenTime.Format("04:05"))
}

// NewIme returns a new IME event of the given type. ImePreedit events
// are not unique; newer preedits replace undelivered older ones.
func NewIme(typ Types, win WindowID, text string, cursorStart, cursorEnd int) *Ime {
	ev := &Ime{}
	ev.Typ = typ
	ev.Win = win
	ev.Text = text
	ev.CursorStart = cursorStart
	ev.CursorEnd = cursorEnd
	ev.Init()
	if typ == ImePreedit {
		ev.Flags &^= Unique
	}
	return ev
}
