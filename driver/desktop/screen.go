// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/asterwyx/winit"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GetScreens re-enumerates the monitors, replacing the snapshots and
// marking the old ones stale. Called at startup and from the glfw
// monitor connection callback.
func (a *App) GetScreens() {
	mons := glfw.GetMonitors()
	prim := glfw.GetPrimaryMonitor()
	scs := make([]*winit.Screen, 0, len(mons))
	var primary *winit.Screen
	for i, mon := range mons {
		sc := monitorScreen(mon, i)
		if sc == nil {
			continue
		}
		scs = append(scs, sc)
		if mon == prim {
			primary = sc
		}
	}
	if primary == nil && len(scs) > 0 {
		primary = scs[0]
	}
	a.SetScreens(scs, primary)
}

// monitorScreen takes a snapshot of one monitor, or nil if the monitor
// has no current video mode (it is being disconnected).
func monitorScreen(mon *glfw.Monitor, n int) *winit.Screen {
	vm := mon.GetVideoMode()
	if vm == nil || vm.Width == 0 {
		return nil
	}
	x, y := mon.GetPos()
	pw, ph := mon.GetPhysicalSize()
	sx, _ := mon.GetContentScale()
	if sx <= 0 {
		sx = 1
	}
	sz := image.Pt(vm.Width, vm.Height)
	sc := &winit.Screen{
		Name:             mon.GetName(),
		ScreenNumber:     n,
		Geometry:         image.Rect(x, y, x+vm.Width, y+vm.Height),
		PixSize:          image.Pt(int(float32(sz.X)*sx), int(float32(sz.Y)*sx)),
		DevicePixelRatio: sx,
		PhysicalSize:     image.Pt(pw, ph),
		Depth:            vm.RedBits + vm.GreenBits + vm.BlueBits,
		RefreshRate:      vm.RefreshRate * 1000,
	}
	for _, m := range mon.GetVideoModes() {
		sc.Modes = append(sc.Modes, winit.VideoMode{
			Size:        image.Pt(m.Width, m.Height),
			RefreshRate: m.RefreshRate * 1000,
			Depth:       m.RedBits + m.GreenBits + m.BlueBits,
		})
	}
	sc.UpdatePhysicalDPI()
	return sc
}

func monitorChange(mon *glfw.Monitor, event glfw.PeripheralEvent) {
	TheApp.GetScreens()
}
