// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build x11

// Package x11 provides a pure-Go driver speaking the X protocol
// directly through xgb, with no cgo. It is selected with the x11 build
// tag; the glfw desktop driver is the default on Linux.
package x11

import (
	"log"
	"runtime"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/driver/base"
)

func init() {
	runtime.LockOSThread()
}

// TheApp is the single x11 app instance.
var TheApp = &App{}

// Init connects to the X server and publishes the x11 driver as the
// active app. A goroutine reading the X connection feeds the dispatch
// queue; the loop itself idles on channels.
func Init() {
	TheApp.Nm = "app"
	xu, err := xgbutil.NewConn()
	if err != nil {
		log.Fatalln("winit/driver/x11: failed to connect to the X server:", err)
	}
	TheApp.XU = xu
	keybind.Initialize(xu)
	if err := randr.Init(xu.Conn()); err == nil {
		TheApp.haveRandr = true
		root := xu.RootWin()
		randr.SelectInput(xu.Conn(), root,
			randr.NotifyMaskScreenChange|randr.NotifyMaskCrtcChange|randr.NotifyMaskOutputChange)
	}
	TheApp.GetScreens()
	TheApp.App.Init(TheApp)
	go TheApp.readEvents()
	go winit.MonitorTheme(TheApp.themeChanged)
}

// App is the x11 driver app.
type App struct {
	base.AppMulti[*Window]

	// XU is the xgbutil connection shared by all windows.
	XU *xgbutil.XUtil

	haveRandr bool
}

func (a *App) Platform() winit.Platforms { return winit.X11 }

func (a *App) SystemPlatform() winit.Platforms { return winit.Linux }

func (a *App) NewWindow(attrs *winit.WindowAttributes) (winit.Window, error) {
	if attrs == nil {
		attrs = winit.DefaultWindowAttributes()
	}
	w, err := newXWindow(a, attrs)
	if err != nil {
		return nil, err
	}
	a.AddWindow(w)
	return w, nil
}

func (a *App) themeChanged(dark bool) {
	a.Dark.Store(dark)
	a.Mu.Lock()
	wins := make([]*Window, len(a.Windows))
	copy(wins, a.Windows)
	a.Mu.Unlock()
	for _, w := range wins {
		w.EvSrc.WindowTheme(dark)
	}
}

// windowFor returns the driver window for an X window id, or nil.
func (a *App) windowFor(xid xproto.Window) *Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, w := range a.Windows {
		if w.XWin == xid {
			return w
		}
	}
	return nil
}
