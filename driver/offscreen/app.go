// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless driver with no native display.
// Window operations are applied synchronously to in-memory state and
// confirmed by the same events a native backend would send, which makes
// it the driver used for testing and for offscreen rendering.
package offscreen

import (
	"image"
	"runtime"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/driver/base"
	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/units"
)

func init() {
	runtime.LockOSThread()
}

// TheApp is the single offscreen app instance.
var TheApp = &App{}

// Init initializes the offscreen driver and publishes it as the active
// app.
func Init() {
	TheApp.Nm = "app"
	TheApp.GetScreens()
	TheApp.App.Init(TheApp)
}

// App is the offscreen driver app.
type App struct {
	base.AppMulti[*Window]
}

func (a *App) Platform() winit.Platforms { return winit.Offscreen }

func (a *App) SystemPlatform() winit.Platforms {
	switch runtime.GOOS {
	case "darwin":
		return winit.MacOS
	case "windows":
		return winit.Windows
	default:
		return winit.Linux
	}
}

// GetScreens installs the synthetic screen. There is always exactly one,
// 1920x1080 at scale factor 1 unless changed with [SetScreenScale].
func (a *App) GetScreens() {
	a.Mu.Lock()
	cur := a.Primary
	a.Mu.Unlock()
	scale := float32(1)
	if cur != nil {
		scale = cur.DevicePixelRatio
	}
	sc := makeScreen(scale)
	a.SetScreens([]*winit.Screen{sc}, sc)
}

func makeScreen(scale float32) *winit.Screen {
	sz := image.Pt(1920, 1080)
	sc := &winit.Screen{
		Name:             "offscreen",
		Geometry:         image.Rectangle{Max: sz},
		PixSize:          sz,
		DevicePixelRatio: scale,
		PhysicalSize:     image.Pt(508, 286),
		Depth:            32,
		RefreshRate:      60000,
		Modes:            []winit.VideoMode{{Size: sz, RefreshRate: 60000, Depth: 32}},
	}
	sc.UpdatePhysicalDPI()
	return sc
}

func (a *App) NewWindow(attrs *winit.WindowAttributes) (winit.Window, error) {
	if attrs == nil {
		attrs = winit.DefaultWindowAttributes()
	}
	a.Mu.Lock()
	sc := a.Primary
	a.Mu.Unlock()
	lastPos, lastSize := a.LastWindowPlacement()
	size, pos, _ := attrs.Fixup(sc, lastPos, lastSize)

	w := &Window{}
	w.Init(a, attrs)
	w.Mu.Lock()
	w.PixSize = size
	w.Pos = pos
	w.Scale = sc.DevicePixelRatio
	w.Mu.Unlock()
	a.AddWindow(w)

	if attrs.Visible {
		w.EvSrc.Window(events.WindowShow)
	}
	w.EvSrc.WindowResize(size)
	w.EvSrc.WindowMove(pos)
	w.focus(true)
	if attrs.Fullscreen {
		w.SetFullscreen(true)
	}
	return w, nil
}

// SetScreenScale changes the synthetic screen's scale factor, replacing
// the screen snapshot and sending every open window a WindowScaleChange
// with its suggested new surface size. A test helper standing in for a
// system DPI change.
func SetScreenScale(scale float32) {
	a := TheApp
	a.Mu.Lock()
	old := float32(1)
	if a.Primary != nil {
		old = a.Primary.DevicePixelRatio
	}
	wins := make([]*Window, len(a.Windows))
	copy(wins, a.Windows)
	a.Mu.Unlock()
	if scale == old {
		return
	}
	sc := makeScreen(scale)
	a.SetScreens([]*winit.Screen{sc}, sc)
	for _, w := range wins {
		w.Mu.Lock()
		w.Scale = scale
		suggested := units.PhysicalSize{
			Width:  int(float32(w.PixSize.Width) * scale / old),
			Height: int(float32(w.PixSize.Height) * scale / old),
		}
		w.Mu.Unlock()
		w.EvSrc.WindowScale(scale, suggested)
	}
}
