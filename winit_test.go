// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit_test

import (
	"os"
	"testing"
	"time"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/driver/offscreen"
	"github.com/asterwyx/winit/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	offscreen.Init()
	os.Exit(m.Run())
}

type exitingHandler struct {
	winit.HandlerBase
}

func (exitingHandler) AboutToWait(el winit.ActiveEventLoop) {
	el.Exit()
}

func TestEventLoopSingleton(t *testing.T) {
	el, err := winit.NewEventLoop()
	require.NoError(t, err)
	require.NotNil(t, el)

	_, err = winit.NewEventLoop()
	require.Error(t, err, "a second event loop in the same process must fail")
	var ele *winit.EventLoopError
	assert.ErrorAs(t, err, &ele)

	proxy := el.CreateProxy()
	require.NoError(t, proxy.SendEvent("before run"))

	require.NoError(t, el.Run(exitingHandler{}))

	// Run consumes the loop
	err = el.Run(exitingHandler{})
	assert.ErrorIs(t, err, winit.ErrClosed)
	err = el.RunOnDemand(exitingHandler{})
	assert.ErrorIs(t, err, winit.ErrClosed)
	_, err = el.PumpEvents(exitingHandler{}, 0)
	assert.ErrorIs(t, err, winit.ErrClosed)

	// and the proxy now reports the loop as gone
	err = proxy.SendEvent("after exit")
	assert.ErrorIs(t, err, winit.ErrClosed)
}

func TestGetTitle(t *testing.T) {
	var nilAttrs *winit.WindowAttributes
	assert.Equal(t, "", nilAttrs.GetTitle())

	assert.Equal(t, "hello", (&winit.WindowAttributes{Title: "hello"}).GetTitle())
	assert.Equal(t, "héllo", (&winit.WindowAttributes{Title: "héllo"}).GetTitle())

	// NUL bytes and invalid UTF-8 truncate
	assert.Equal(t, "ab", (&winit.WindowAttributes{Title: "ab\x00cd"}).GetTitle())
	assert.Equal(t, "ab", (&winit.WindowAttributes{Title: "ab\xffcd"}).GetTitle())

	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, (&winit.WindowAttributes{Title: string(long)}).GetTitle(), 4096)
}

func testScreen() *winit.Screen {
	sc := &winit.Screen{
		PixSize:          image1920,
		DevicePixelRatio: 1,
	}
	return sc
}

var image1920 = units.Physical(1920, 1080).Point()

func TestFixupDefaults(t *testing.T) {
	sc := testScreen()
	a := winit.DefaultWindowAttributes()
	size, pos, hasPos := a.Fixup(sc, nil, nil)

	// default size is a fraction of the screen, centered
	assert.Equal(t, int(winit.WindowSizeFraction*1920), size.Width)
	assert.Equal(t, int(winit.WindowSizeFraction*1080), size.Height)
	assert.True(t, hasPos)
	assert.Equal(t, (1920-size.Width)/2, pos.X)
	assert.Equal(t, (1080-size.Height)/2, pos.Y)
}

func TestFixupClampsToScreen(t *testing.T) {
	sc := testScreen()
	a := &winit.WindowAttributes{
		Size:     units.Logical(4000, 3000),
		Position: units.PhysicalPosition{X: 1900, Y: 1000},
	}
	size, pos, hasPos := a.Fixup(sc, nil, nil)
	assert.Equal(t, units.Physical(1920, 1080), size)
	assert.True(t, hasPos)
	assert.Equal(t, units.PhysicalPosition{X: 0, Y: 0}, pos)
}

func TestFixupCascade(t *testing.T) {
	sc := testScreen()
	lastPos := &units.PhysicalPosition{X: 100, Y: 100}
	ls := units.Physical(400, 300)
	lastSize := &ls

	// same-size window stacks centered on the last one
	a := &winit.WindowAttributes{Size: units.Physical(400, 300)}
	_, pos, _ := a.Fixup(sc, lastPos, lastSize)
	assert.Equal(t, units.PhysicalPosition{X: 100, Y: 100}, pos)

	// bigger window cascades right and down
	a = &winit.WindowAttributes{Size: units.Physical(600, 400)}
	_, pos, _ = a.Fixup(sc, lastPos, lastSize)
	assert.Equal(t, units.PhysicalPosition{X: 500, Y: 172}, pos)
}

func TestFixupScaled(t *testing.T) {
	sc := testScreen()
	sc.DevicePixelRatio = 2
	a := &winit.WindowAttributes{Size: units.Logical(400, 300)}
	size, _, _ := a.Fixup(sc, nil, nil)
	assert.Equal(t, units.Physical(800, 600), size)
}

func TestDeviceSettings(t *testing.T) {
	dir := t.TempDir()

	// missing file yields defaults
	ds, err := winit.OpenDeviceSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, winit.DefaultDeviceSettings(), ds)

	ds.DoubleClickInterval = 300 * time.Millisecond
	ds.ScrollWheelSpeed = 2.5
	ds.WindowSizeFraction = 0.5
	require.NoError(t, ds.Save(dir))

	got, err := winit.OpenDeviceSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestErrors(t *testing.T) {
	ee := &winit.EventLoopError{Op: "run", Err: winit.ErrClosed}
	assert.ErrorIs(t, ee, winit.ErrClosed)
	assert.Contains(t, ee.Error(), "run")

	oe := &winit.OSError{Op: "create window", Err: winit.ErrNotSupported}
	assert.ErrorIs(t, oe, winit.ErrNotSupported)
	assert.Contains(t, oe.Error(), "create window")
}
