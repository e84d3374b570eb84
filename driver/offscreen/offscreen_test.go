// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"os"
	"testing"
	"time"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Init()
	os.Exit(m.Run())
}

// recorder is an [winit.ApplicationHandler] that logs the dispatch
// sequence and forwards to optional per-test hooks.
type recorder struct {
	winit.HandlerBase

	causes []winit.StartCause
	seq    []string
	winEvs []events.Event
	usrEvs []events.Event

	onNewEvents   func(el winit.ActiveEventLoop, cause winit.StartCause)
	onResumed     func(el winit.ActiveEventLoop)
	onSuspended   func(el winit.ActiveEventLoop)
	onWindowEvent func(el winit.ActiveEventLoop, e events.Event)
	onUserEvent   func(el winit.ActiveEventLoop, e events.Event)
	onAboutToWait func(el winit.ActiveEventLoop)
	onExiting     func(el winit.ActiveEventLoop)
}

func (r *recorder) NewEvents(el winit.ActiveEventLoop, cause winit.StartCause) {
	r.causes = append(r.causes, cause)
	r.seq = append(r.seq, "new_events")
	if r.onNewEvents != nil {
		r.onNewEvents(el, cause)
	}
}

func (r *recorder) Resumed(el winit.ActiveEventLoop) {
	r.seq = append(r.seq, "resumed")
	if r.onResumed != nil {
		r.onResumed(el)
	}
}

func (r *recorder) Suspended(el winit.ActiveEventLoop) {
	r.seq = append(r.seq, "suspended")
	if r.onSuspended != nil {
		r.onSuspended(el)
	}
}

func (r *recorder) WindowEvent(el winit.ActiveEventLoop, e events.Event) {
	r.winEvs = append(r.winEvs, e)
	r.seq = append(r.seq, "window:"+e.Type().String())
	if r.onWindowEvent != nil {
		r.onWindowEvent(el, e)
	}
}

func (r *recorder) UserEvent(el winit.ActiveEventLoop, e events.Event) {
	r.usrEvs = append(r.usrEvs, e)
	r.seq = append(r.seq, "user")
	if r.onUserEvent != nil {
		r.onUserEvent(el, e)
	}
}

func (r *recorder) AboutToWait(el winit.ActiveEventLoop) {
	r.seq = append(r.seq, "about_to_wait")
	if r.onAboutToWait != nil {
		r.onAboutToWait(el)
	}
}

func (r *recorder) Exiting(el winit.ActiveEventLoop) {
	r.seq = append(r.seq, "exiting")
	if r.onExiting != nil {
		r.onExiting(el)
	}
}

// pump runs one non-blocking dispatch cycle with the given handler.
func pump(t *testing.T, r *recorder) {
	t.Helper()
	status, err := TheApp.PumpEvents(r, 0)
	require.NoError(t, err)
	require.Equal(t, winit.PumpContinue, status)
}

// exitLoop finishes any dispatch session left open by an earlier test,
// so the next run entry point starts a fresh lifecycle.
func exitLoop(t *testing.T) {
	t.Helper()
	if TheApp.State() == winit.Exited {
		return
	}
	r := &recorder{}
	r.onAboutToWait = func(el winit.ActiveEventLoop) { el.Exit() }
	status, err := TheApp.PumpEvents(r, 0)
	require.NoError(t, err)
	require.Equal(t, winit.PumpExited, status)
}

// newWindow creates a window directly on the app, outside any hook.
func newWindow(t *testing.T, attrs *winit.WindowAttributes) winit.Window {
	t.Helper()
	w, err := TheApp.NewWindow(attrs)
	require.NoError(t, err)
	t.Cleanup(func() {
		if !w.IsClosed() {
			w.Close()
			pump(t, &recorder{})
		}
	})
	return w
}

func winTypes(evs []events.Event) []events.Types {
	ts := make([]events.Types, len(evs))
	for i, ev := range evs {
		ts[i] = ev.Type()
	}
	return ts
}

func TestWindowCreation(t *testing.T) {
	r := &recorder{}
	var win winit.Window
	r.onResumed = func(el winit.ActiveEventLoop) {
		if win != nil {
			return
		}
		var err error
		win, err = el.NewWindow(&winit.WindowAttributes{
			Title:   "test",
			Size:    units.Logical(800, 600),
			Visible: true,
		})
		require.NoError(t, err)
	}
	pump(t, r)

	require.NotNil(t, win)
	assert.Equal(t, units.Physical(800, 600), win.InnerSize())
	assert.Equal(t, "test", win.Title())
	assert.EqualValues(t, 1, win.ScaleFactor())
	assert.True(t, win.Is(winit.Focused))

	// the creation burst is delivered in the same cycle, confirming
	// show, size, position, and focus
	got := winTypes(r.winEvs)
	assert.Contains(t, got, events.WindowShow)
	assert.Contains(t, got, events.WindowResize)
	assert.Contains(t, got, events.WindowFocus)

	win.Close()
	r2 := &recorder{}
	pump(t, r2)
	assert.Contains(t, winTypes(r2.winEvs), events.WindowDestroy)
	assert.True(t, win.IsClosed())
}

func TestScaleChange(t *testing.T) {
	win := newWindow(t, &winit.WindowAttributes{Size: units.Logical(800, 600), Visible: true})
	pump(t, &recorder{})
	defer SetScreenScale(1)

	SetScreenScale(2)
	r := &recorder{}
	pump(t, r)

	var sc *events.WindowScaleEvent
	for _, ev := range r.winEvs {
		if ev.Type() == events.WindowScaleChange {
			sc = ev.(*events.WindowScaleEvent)
		}
	}
	require.NotNil(t, sc)
	assert.EqualValues(t, 2, sc.Scale)
	assert.Equal(t, units.Physical(1600, 1200), sc.SuggestedSize)
	assert.EqualValues(t, 2, win.ScaleFactor())

	// applying the suggested size preserves the logical size
	win.SetSize(sc.SuggestedSize)
	assert.Equal(t, units.Logical(800, 600), win.InnerSize().ToLogical(win.ScaleFactor()))
}

func TestRedrawCoalescing(t *testing.T) {
	win := newWindow(t, &winit.WindowAttributes{Size: units.Logical(100, 100), Visible: true})
	pump(t, &recorder{})

	win.SetSize(units.Logical(200, 200))
	for i := 0; i < 5; i++ {
		win.RequestRedraw()
	}
	r := &recorder{}
	pump(t, r)

	paints := 0
	for _, ev := range r.winEvs {
		if ev.Type() == events.WindowPaint {
			paints++
		}
	}
	assert.Equal(t, 1, paints, "redraw requests must coalesce into one paint")

	// the paint comes after the resize and before AboutToWait
	assert.Equal(t, []string{"new_events", "window:WindowResize", "window:WindowPaint", "about_to_wait"}, r.seq)
}

func TestWaitUntilPastDeadline(t *testing.T) {
	r := &recorder{}
	r.onAboutToWait = func(el winit.ActiveEventLoop) {
		el.SetControlFlow(winit.ControlWaitUntil(time.Now().Add(-time.Second)))
	}
	start := time.Now()
	status, err := TheApp.PumpEvents(r, time.Second)
	require.NoError(t, err)
	require.Equal(t, winit.PumpContinue, status)
	assert.Less(t, time.Since(start), 500*time.Millisecond,
		"a deadline in the past must not block")

	r2 := &recorder{}
	pump(t, r2)
	require.NotEmpty(t, r2.causes)
	assert.Equal(t, winit.ResumeTimeReached, r2.causes[0].Cause)
	assert.True(t, r2.causes[0].HasResume)
}

func TestControlFlowLastWriteWins(t *testing.T) {
	r := &recorder{}
	r.onAboutToWait = func(el winit.ActiveEventLoop) {
		el.SetControlFlow(winit.ControlPoll())
		el.SetControlFlow(winit.ControlWaitUntil(time.Now().Add(-time.Minute)))
		assert.Equal(t, winit.WaitUntil, el.ControlFlow().Mode)
	}
	pump(t, r)

	r2 := &recorder{}
	r2.onAboutToWait = func(el winit.ActiveEventLoop) {
		el.SetControlFlow(winit.ControlPoll())
	}
	pump(t, r2)
	require.NotEmpty(t, r2.causes)
	assert.Equal(t, winit.ResumeTimeReached, r2.causes[0].Cause,
		"the WaitUntil set last must govern the idle")

	r3 := &recorder{}
	pump(t, r3)
	assert.Equal(t, winit.PollResumed, r3.causes[0].Cause)
}

func TestUserEventsInSendOrder(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, TheApp.SendUserEvent("first"))
		require.NoError(t, TheApp.SendUserEvent("second"))
	}()
	<-done

	r := &recorder{}
	pump(t, r)
	require.Len(t, r.usrEvs, 2)
	assert.Equal(t, "first", r.usrEvs[0].AsBase().Data)
	assert.Equal(t, "second", r.usrEvs[1].AsBase().Data)
	// both delivered before the cycle's AboutToWait
	assert.Equal(t, []string{"new_events", "user", "user", "about_to_wait"}, r.seq)
}

func TestTerminalEventsOrderedLast(t *testing.T) {
	win := newWindow(t, &winit.WindowAttributes{Size: units.Logical(100, 100), Visible: true})
	pump(t, &recorder{})

	// a close request racing ahead of other window events must still be
	// delivered after them
	src := win.Events()
	src.Window(events.WindowClose)
	src.Window(events.WindowFocus)

	r := &recorder{}
	pump(t, r)
	got := winTypes(r.winEvs)
	require.Contains(t, got, events.WindowClose)
	require.Contains(t, got, events.WindowFocus)
	assert.Equal(t, events.WindowClose, got[len(got)-1])
}

func TestExitDeliversPendingEvents(t *testing.T) {
	winA := newWindow(t, &winit.WindowAttributes{Size: units.Logical(100, 100), Visible: true})
	winB := newWindow(t, &winit.WindowAttributes{Size: units.Logical(100, 100), Visible: true})
	pump(t, &recorder{})

	winA.Events().Window(events.WindowFocus)
	winB.Events().Window(events.WindowFocusLost)

	r := &recorder{}
	sawB := false
	r.onWindowEvent = func(el winit.ActiveEventLoop, e events.Event) {
		if e.WindowID() == winA.ID() {
			el.Exit()
			assert.True(t, el.Exiting())
		}
		if e.WindowID() == winB.ID() {
			sawB = true
		}
	}
	status, err := TheApp.PumpEvents(r, 0)
	require.NoError(t, err)
	assert.Equal(t, winit.PumpExited, status)
	assert.True(t, sawB, "events queued before exit must still be delivered")
	assert.Equal(t, "exiting", r.seq[len(r.seq)-1])
	assert.Equal(t, winit.Exited, TheApp.State())

	// sends to an exited loop fail
	err = TheApp.SendUserEvent("late")
	require.Error(t, err)
	assert.ErrorIs(t, err, winit.ErrClosed)
}

func TestRunOnDemandRestarts(t *testing.T) {
	exitLoop(t)
	for i := 0; i < 2; i++ {
		r := &recorder{}
		cycles := 0
		r.onAboutToWait = func(el winit.ActiveEventLoop) {
			cycles++
			if cycles >= 3 {
				el.Exit()
			}
			el.SetControlFlow(winit.ControlPoll())
		}
		require.NoError(t, TheApp.RunOnDemand(r))
		assert.Equal(t, winit.Init, r.causes[0].Cause)
		assert.Equal(t, "resumed", r.seq[1])
		assert.Equal(t, "exiting", r.seq[len(r.seq)-1])
	}
}

func TestRunAfterPump(t *testing.T) {
	// a pump session left open must hand the loop over to a later run
	pump(t, &recorder{})

	r := &recorder{}
	cycles := 0
	r.onAboutToWait = func(el winit.ActiveEventLoop) {
		cycles++
		if cycles >= 2 {
			el.Exit()
		}
		el.SetControlFlow(winit.ControlPoll())
	}
	require.NoError(t, TheApp.RunOnDemand(r))
	assert.Equal(t, "exiting", r.seq[len(r.seq)-1])
	assert.Equal(t, winit.Exited, TheApp.State())
}

func TestRunReentryFails(t *testing.T) {
	r := &recorder{}
	var reErr error
	r.onAboutToWait = func(el winit.ActiveEventLoop) {
		reErr = TheApp.RunOnDemand(&recorder{})
	}
	pump(t, r)

	require.Error(t, reErr, "hooks must not reenter the loop")
	var ele *winit.EventLoopError
	assert.ErrorAs(t, reErr, &ele)
}

func TestSuspendResume(t *testing.T) {
	pump(t, &recorder{})
	loop := TheApp.Loop()

	loop.RequestSuspend()
	r := &recorder{}
	pump(t, r)
	assert.Equal(t, []string{"new_events", "suspended", "about_to_wait"}, r.seq)
	assert.Equal(t, winit.Suspended, TheApp.State())

	// suspending an already suspended loop does nothing
	loop.RequestSuspend()
	r2 := &recorder{}
	pump(t, r2)
	assert.NotContains(t, r2.seq, "suspended")
	assert.Equal(t, winit.Suspended, TheApp.State())

	loop.RequestResume()
	r3 := &recorder{}
	pump(t, r3)
	assert.Equal(t, []string{"new_events", "resumed", "about_to_wait"}, r3.seq)
	assert.Equal(t, winit.Running, TheApp.State())

	// resuming a running loop does nothing
	loop.RequestResume()
	r4 := &recorder{}
	pump(t, r4)
	assert.NotContains(t, r4.seq, "resumed")
	assert.Equal(t, winit.Running, TheApp.State())
}

func TestActiveCapabilityExpires(t *testing.T) {
	var escaped winit.ActiveEventLoop
	r := &recorder{}
	r.onAboutToWait = func(el winit.ActiveEventLoop) {
		escaped = el
	}
	pump(t, r)

	require.NotNil(t, escaped)
	_, err := escaped.NewWindow(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, winit.ErrUnavailable)
	assert.Nil(t, escaped.Screens())
}

func TestSetSizeSynchronous(t *testing.T) {
	win := newWindow(t, &winit.WindowAttributes{Size: units.Logical(300, 200), Visible: true})
	pump(t, &recorder{})

	got := win.SetSize(units.Logical(640, 480))
	require.NotNil(t, got, "the offscreen driver applies resizes synchronously")
	assert.Equal(t, units.Physical(640, 480), *got)
	assert.Equal(t, units.Physical(640, 480), win.InnerSize())

	// the confirming event still arrives
	r := &recorder{}
	pump(t, r)
	assert.Contains(t, winTypes(r.winEvs), events.WindowResize)
}

func TestFullscreenRoundTrip(t *testing.T) {
	win := newWindow(t, &winit.WindowAttributes{Size: units.Logical(400, 300), Visible: true})
	pump(t, &recorder{})

	win.SetFullscreen(true)
	assert.True(t, win.Is(winit.Fullscreen))
	sc := win.Screen()
	assert.Equal(t, units.PhysicalFromPoint(sc.PixSize), win.InnerSize())

	win.SetFullscreen(false)
	assert.False(t, win.Is(winit.Fullscreen))
	assert.Equal(t, units.Physical(400, 300), win.InnerSize())
}

func TestScreenSnapshot(t *testing.T) {
	scs := TheApp.Screens()
	require.Len(t, scs, 1)
	sc := scs[0]
	assert.Equal(t, "offscreen", sc.Name)
	assert.False(t, sc.IsStale())

	mode, err := sc.CurrentMode()
	require.NoError(t, err)
	assert.Equal(t, sc.PixSize, mode.Size)

	// re-enumeration marks the old snapshot stale but keeps it readable
	SetScreenScale(2)
	defer SetScreenScale(1)
	assert.True(t, sc.IsStale())
	assert.Equal(t, "offscreen", sc.Name)
	_, err = sc.CurrentMode()
	assert.ErrorIs(t, err, winit.ErrUnavailable)
	_, err = sc.VideoModes()
	assert.ErrorIs(t, err, winit.ErrUnavailable)
}

func TestWindowEventsAfterCloseDropped(t *testing.T) {
	win := newWindow(t, &winit.WindowAttributes{Size: units.Logical(100, 100), Visible: true})
	pump(t, &recorder{})

	win.Close()
	win.RequestRedraw() // ignored once closed
	r := &recorder{}
	pump(t, r)
	got := winTypes(r.winEvs)
	assert.Contains(t, got, events.WindowDestroy)
	assert.NotContains(t, got, events.WindowPaint)
	assert.Equal(t, events.WindowDestroy, got[len(got)-1])
}
