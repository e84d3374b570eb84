// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop provides the default driver for desktop platforms,
// built on glfw. The dispatch loop idles on the native message pump, so
// Wait and WaitUntil consume no CPU between events.
package desktop

import (
	"log"
	"runtime"
	"time"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/driver/base"
	"github.com/asterwyx/winit/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// TheApp is the single desktop app instance.
var TheApp = &App{}

// Init initializes glfw and publishes the desktop driver as the active
// app. It must be called on the main thread.
func Init() {
	TheApp.Nm = "app"
	TheApp.Looper.Waiter = &glfwWaiter{}
	if err := glfw.Init(); err != nil {
		log.Fatalln("winit/driver/desktop: failed to initialize glfw:", err)
	}
	glfw.SetMonitorCallback(monitorChange)
	glfw.SetJoystickCallback(joystickChange)
	TheApp.GetScreens()
	TheApp.App.Init(TheApp)
	go winit.MonitorTheme(TheApp.themeChanged)
}

// App is the desktop driver app.
type App struct {
	base.AppMulti[*Window]
}

func (a *App) Platform() winit.Platforms {
	switch runtime.GOOS {
	case "darwin":
		return winit.MacOS
	case "windows":
		return winit.Windows
	default:
		return winit.Linux
	}
}

func (a *App) SystemPlatform() winit.Platforms { return a.Platform() }

func (a *App) NewWindow(attrs *winit.WindowAttributes) (winit.Window, error) {
	if attrs == nil {
		attrs = winit.DefaultWindowAttributes()
	}
	var w *Window
	var err error
	a.RunOnMain(func() {
		w, err = newGlfwWindow(a, attrs)
	})
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

func joystickChange(joy glfw.Joystick, event glfw.PeripheralEvent) {
	typ := events.DeviceAdded
	if event == glfw.Disconnected {
		typ = events.DeviceRemoved
	}
	TheApp.Looper.Send(events.NewDeviceChange(typ, pointerDeviceID+1+events.DeviceID(joy)))
}

// glfwWaiter idles the dispatch loop on the glfw message pump, so that
// native events and PostEmptyEvent wakes both cut the idle short.
// Wait must run on the main thread; Wake is safe from any goroutine.
type glfwWaiter struct{}

func (glfwWaiter) Wait() { glfw.WaitEvents() }

func (glfwWaiter) WaitTimeout(d time.Duration) { glfw.WaitEventsTimeout(d.Seconds()) }

func (glfwWaiter) Poll() { glfw.PollEvents() }

func (glfwWaiter) Wake() { glfw.PostEmptyEvent() }
