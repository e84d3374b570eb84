// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build x11

package x11

import (
	"image"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/asterwyx/winit"
)

// GetScreens re-enumerates the outputs through RandR, replacing the
// snapshots and marking the old ones stale. Without RandR the core
// protocol root screen is reported as a single monitor.
func (a *App) GetScreens() {
	if !a.haveRandr {
		a.coreScreen()
		return
	}
	conn := a.XU.Conn()
	root := a.XU.RootWin()
	res, err := randr.GetScreenResourcesCurrent(conn, root).Reply()
	if err != nil {
		a.coreScreen()
		return
	}
	prim, _ := randr.GetOutputPrimary(conn, root).Reply()

	var scs []*winit.Screen
	var primary *winit.Screen
	n := 0
	for _, out := range res.Outputs {
		oi, err := randr.GetOutputInfo(conn, out, res.ConfigTimestamp).Reply()
		if err != nil || oi.Connection != randr.ConnectionConnected || oi.Crtc == 0 {
			continue
		}
		ci, err := randr.GetCrtcInfo(conn, oi.Crtc, res.ConfigTimestamp).Reply()
		if err != nil || ci.Width == 0 {
			continue
		}
		sc := &winit.Screen{
			Name:         string(oi.Name),
			ScreenNumber: n,
			Geometry: image.Rect(int(ci.X), int(ci.Y),
				int(ci.X)+int(ci.Width), int(ci.Y)+int(ci.Height)),
			PixSize:          image.Pt(int(ci.Width), int(ci.Height)),
			DevicePixelRatio: 1,
			PhysicalSize:     image.Pt(int(oi.MmWidth), int(oi.MmHeight)),
			Depth:            24,
		}
		for _, mid := range oi.Modes {
			for _, m := range res.Modes {
				if m.Id == uint32(mid) {
					rate := 0
					if m.Htotal > 0 && m.Vtotal > 0 {
						rate = int(1000 * m.DotClock / (uint32(m.Htotal) * uint32(m.Vtotal)))
					}
					sc.Modes = append(sc.Modes, winit.VideoMode{
						Size:        image.Pt(int(m.Width), int(m.Height)),
						RefreshRate: rate,
						Depth:       24,
					})
					if mid == ci.Mode {
						sc.RefreshRate = rate
					}
					break
				}
			}
		}
		sc.UpdatePhysicalDPI()
		scs = append(scs, sc)
		if prim != nil && out == prim.Output {
			primary = sc
		}
		n++
	}
	if len(scs) == 0 {
		a.coreScreen()
		return
	}
	if primary == nil {
		primary = scs[0]
	}
	a.SetScreens(scs, primary)
}

// coreScreen reports the core protocol root screen as a single monitor.
func (a *App) coreScreen() {
	scr := xproto.Setup(a.XU.Conn()).DefaultScreen(a.XU.Conn())
	sz := image.Pt(int(scr.WidthInPixels), int(scr.HeightInPixels))
	sc := &winit.Screen{
		Name:             "default",
		Geometry:         image.Rectangle{Max: sz},
		PixSize:          sz,
		DevicePixelRatio: 1,
		PhysicalSize:     image.Pt(int(scr.WidthInMillimeters), int(scr.HeightInMillimeters)),
		Depth:            int(scr.RootDepth),
	}
	sc.UpdatePhysicalDPI()
	a.SetScreens([]*winit.Screen{sc}, sc)
}
