// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"image"
	"testing"
	"time"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evTypes(evs []events.Event) []events.Types {
	ts := make([]events.Types, len(evs))
	for i, ev := range evs {
		ts[i] = ev.Type()
	}
	return ts
}

func TestCompressMouseMoves(t *testing.T) {
	evs := []events.Event{
		events.NewMouseMove(1, image.Pt(10, 10), image.Pt(0, 0), 0),
		events.NewMouseMove(1, image.Pt(20, 20), image.Pt(10, 10), 0),
		events.NewMouseMove(1, image.Pt(30, 30), image.Pt(20, 20), 0),
	}
	out := CompressEvents(evs)
	require.Len(t, out, 1)
	assert.Equal(t, image.Pt(30, 30), out[0].Pos())
	// the merged move spans the whole run
	assert.Equal(t, image.Pt(0, 0), out[0].AsBase().Prev)
}

func TestCompressKeepsUnique(t *testing.T) {
	evs := []events.Event{
		events.NewMouse(events.MouseDown, 1, events.Left, image.Pt(1, 1), 0),
		events.NewMouse(events.MouseDown, 1, events.Left, image.Pt(1, 1), 0),
	}
	assert.Len(t, CompressEvents(evs), 2)
}

func TestCompressDistinctWindows(t *testing.T) {
	evs := []events.Event{
		events.NewMouseMove(1, image.Pt(10, 10), image.Pt(0, 0), 0),
		events.NewMouseMove(2, image.Pt(20, 20), image.Pt(10, 10), 0),
	}
	assert.Len(t, CompressEvents(evs), 2)
}

func TestCompressBrokenRun(t *testing.T) {
	// a unique event breaks the merge run; the moves around it stay
	// separate and keep their types
	evs := []events.Event{
		events.NewMouseMove(1, image.Pt(10, 10), image.Pt(0, 0), 0),
		events.NewMouse(events.MouseDown, 1, events.Left, image.Pt(10, 10), 0),
		events.NewMouseMove(1, image.Pt(20, 20), image.Pt(10, 10), 0),
	}
	out := CompressEvents(evs)
	assert.Equal(t, []events.Types{events.MouseMove, events.MouseDown, events.MouseMove},
		evTypes(out))
}

func TestCompressTouchFingers(t *testing.T) {
	// moves from different fingers never merge
	evs := []events.Event{
		events.NewTouch(events.TouchMove, 1, 7, image.Pt(100, 100), -1),
		events.NewTouch(events.TouchMove, 1, 8, image.Pt(200, 200), -1),
	}
	assert.Len(t, CompressEvents(evs), 2)

	// moves from the same finger do
	evs = []events.Event{
		events.NewTouch(events.TouchMove, 1, 7, image.Pt(100, 100), -1),
		events.NewTouch(events.TouchMove, 1, 7, image.Pt(120, 120), -1),
	}
	out := CompressEvents(evs)
	require.Len(t, out, 1)
	assert.Equal(t, image.Pt(120, 120), out[0].Pos())
	assert.EqualValues(t, 7, out[0].(*events.Touch).Sequence)
}

func TestCompressScrollIntegration(t *testing.T) {
	evs := []events.Event{
		events.NewScroll(1, image.Pt(5, 5), image.Pt(0, 2), events.DeltaLines, 0),
		events.NewScroll(1, image.Pt(5, 5), image.Pt(1, 3), events.DeltaLines, 0),
	}
	out := CompressEvents(evs)
	require.Len(t, out, 1)
	assert.Equal(t, image.Pt(1, 5), out[0].(*events.MouseScroll).Delta)
}

func TestDeferTerminal(t *testing.T) {
	evs := []events.Event{
		events.NewWindow(events.WindowClose, 1),
		events.NewWindowResize(1, units.Physical(100, 100)),
		events.NewWindow(events.WindowFocus, 1),
	}
	out := deferTerminal(evs)
	assert.Equal(t, []events.Types{events.WindowResize, events.WindowFocus, events.WindowClose},
		evTypes(out))
}

func TestDeferTerminalKeepsRelativeOrder(t *testing.T) {
	evs := []events.Event{
		events.NewWindow(events.WindowClose, 1),
		events.NewWindow(events.WindowDestroy, 1),
		events.NewWindow(events.WindowFocus, 1),
	}
	out := deferTerminal(evs)
	assert.Equal(t, []events.Types{events.WindowFocus, events.WindowClose, events.WindowDestroy},
		evTypes(out))
}

func TestChanWaiter(t *testing.T) {
	w := NewChanWaiter()

	// a wake before the wait makes it return immediately
	w.Wake()
	done := make(chan struct{})
	go func() {
		w.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Wake")
	}

	// wakes coalesce: many wakes satisfy one wait, and Poll clears the rest
	w.Wake()
	w.Wake()
	w.Wake()
	w.Poll()
	start := time.Now()
	w.WaitTimeout(20 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestStartCause(t *testing.T) {
	l := &Looper{}

	assert.Equal(t, winit.Init, l.startCause().Cause)

	l.started = true
	l.prevIdle.mode = winit.Poll
	assert.Equal(t, winit.PollResumed, l.startCause().Cause)

	l.prevIdle.mode = winit.Wait
	l.prevIdle.start = time.Now()
	assert.Equal(t, winit.WaitCancelled, l.startCause().Cause)

	l.prevIdle.mode = winit.WaitUntil
	l.prevIdle.deadline = time.Now().Add(time.Hour)
	sc := l.startCause()
	assert.Equal(t, winit.WaitCancelled, sc.Cause)
	assert.True(t, sc.HasResume)
	assert.Equal(t, l.prevIdle.deadline, sc.RequestedResume)

	l.prevIdle.deadline = time.Now().Add(-time.Millisecond)
	sc = l.startCause()
	assert.Equal(t, winit.ResumeTimeReached, sc.Cause)
	assert.True(t, sc.HasResume)
}
