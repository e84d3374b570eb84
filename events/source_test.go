// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/asterwyx/winit/events/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource() *Source {
	q := &Queue{}
	q.Init()
	return NewSource(q, 1)
}

func drain(q *Queue) []Event {
	var evs []Event
	for {
		ev := q.NextEvent()
		if ev == nil {
			return evs
		}
		evs = append(evs, ev)
	}
}

func types(evs []Event) []Types {
	ts := make([]Types, len(evs))
	for i, ev := range evs {
		ts[i] = ev.Type()
	}
	return ts
}

func TestClickSynthesis(t *testing.T) {
	s := newTestSource()
	pos := image.Pt(100, 100)
	s.MouseButton(MouseDown, Left, pos, 0)
	s.MouseButton(MouseUp, Left, pos.Add(image.Pt(2, 2)), 0)
	assert.Equal(t, []Types{MouseDown, MouseUp, Click}, types(drain(s.Queue)))
}

func TestNoClickWhenMoved(t *testing.T) {
	s := newTestSource()
	s.MouseButton(MouseDown, Left, image.Pt(100, 100), 0)
	s.MouseButton(MouseUp, Left, image.Pt(100+DoubleClickRadius+1, 100), 0)
	assert.Equal(t, []Types{MouseDown, MouseUp}, types(drain(s.Queue)))
}

func TestNoClickAcrossButtons(t *testing.T) {
	s := newTestSource()
	pos := image.Pt(50, 50)
	s.MouseButton(MouseDown, Left, pos, 0)
	s.MouseButton(MouseUp, Right, pos, 0)
	assert.Equal(t, []Types{MouseDown, MouseUp}, types(drain(s.Queue)))
}

func TestDoubleClickSynthesis(t *testing.T) {
	s := newTestSource()
	pos := image.Pt(100, 100)
	s.MouseButton(MouseDown, Left, pos, 0)
	s.MouseButton(MouseUp, Left, pos, 0)
	s.MouseButton(MouseDown, Left, pos, 0)
	s.MouseButton(MouseUp, Left, pos, 0)
	assert.Equal(t, []Types{MouseDown, MouseUp, Click, MouseDown, MouseUp, DoubleClick},
		types(drain(s.Queue)))
}

func TestMoveVersusDrag(t *testing.T) {
	s := newTestSource()
	s.MouseMove(image.Pt(10, 10))
	s.MouseButton(MouseDown, Left, image.Pt(10, 10), 0)
	s.MouseMove(image.Pt(20, 20))
	evs := drain(s.Queue)
	require.Equal(t, []Types{MouseMove, MouseDown, MouseDrag}, types(evs))

	drag := evs[2].(*Mouse)
	assert.Equal(t, image.Pt(20, 20), drag.Pos())
	assert.Equal(t, image.Pt(10, 10), drag.Prev)
	assert.Equal(t, image.Pt(10, 10), drag.Start)
	assert.False(t, drag.IsUnique())
}

func TestMoveSuppressedWhileResetting(t *testing.T) {
	s := newTestSource()
	s.ResettingPos = true
	s.MouseMove(image.Pt(5, 5))
	assert.Empty(t, drain(s.Queue))
}

func TestModifiersChange(t *testing.T) {
	s := newTestSource()
	s.Key(KeyDown, 0, key.CodeLeftShift, key.Shift)
	s.Key(KeyDown, 'a', key.CodeA, key.Shift)
	s.Key(KeyUp, 0, key.CodeLeftShift, 0)
	evs := drain(s.Queue)
	require.Equal(t, []Types{ModifiersChange, KeyDown, KeyDown, ModifiersChange, KeyUp}, types(evs))

	mc := evs[0].(*ModifiersEvent)
	assert.Equal(t, key.Shift, mc.Mods)
	assert.Equal(t, key.Modifiers(0), evs[3].Modifiers())
}

func TestKeyRepeat(t *testing.T) {
	s := newTestSource()
	s.Key(KeyDown, 'a', key.CodeA, 0)
	s.Key(KeyDown, 'a', key.CodeA, 0)
	s.Key(KeyDown, 'a', key.CodeA, 0)
	s.Key(KeyUp, 'a', key.CodeA, 0)
	s.Key(KeyDown, 'a', key.CodeA, 0)
	evs := drain(s.Queue)
	require.Len(t, evs, 5)
	repeats := make([]bool, len(evs))
	for i, ev := range evs {
		repeats[i] = ev.(*Key).Repeat
	}
	assert.Equal(t, []bool{false, true, true, false, false}, repeats)

	// keys repeat independently: 'a' is still held, but the first
	// press of 'b' is fresh
	s.Key(KeyDown, 'b', key.CodeB, 0)
	s.Key(KeyDown, 'a', key.CodeA, 0)
	evs = drain(s.Queue)
	require.Len(t, evs, 2)
	assert.False(t, evs[0].(*Key).Repeat)
	assert.True(t, evs[1].(*Key).Repeat)
}

func TestKeyRepeatResetOnFocusLost(t *testing.T) {
	s := newTestSource()
	s.Key(KeyDown, 'a', key.CodeA, 0)
	s.Window(WindowFocusLost)
	s.Key(KeyDown, 'a', key.CodeA, 0)
	evs := drain(s.Queue)
	require.Len(t, evs, 3)
	assert.False(t, evs[2].(*Key).Repeat, "the release was lost with focus; the next press is fresh")
}

func TestEventStamping(t *testing.T) {
	s := newTestSource()
	s.Scroll(image.Pt(1, 2), image.Pt(0, 3), DeltaLines)
	evs := drain(s.Queue)
	require.Len(t, evs, 1)
	sc := evs[0].(*MouseScroll)
	assert.Equal(t, WindowID(1), sc.WindowID())
	assert.False(t, sc.Time().IsZero())
	assert.Equal(t, image.Pt(0, 3), sc.Delta)
	assert.False(t, sc.IsUnique())
}
