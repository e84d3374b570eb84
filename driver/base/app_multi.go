// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"sync/atomic"

	"github.com/asterwyx/winit"
	"github.com/asterwyx/winit/events"
	"github.com/asterwyx/winit/units"
)

// AppMulti contains the data and logic common to driver apps that
// support multiple windows. The generic parameter is the driver's
// concrete window type.
type AppMulti[W winit.Window] struct {
	App

	// Windows are the windows of the app, in order of creation.
	Windows []W

	// AllScreens are the screen snapshots from the last enumeration.
	AllScreens []*winit.Screen

	// Primary is the primary screen, if known.
	Primary *winit.Screen

	lastWinID atomic.Int64
}

// NextWindowID returns a fresh process-unique window id.
func (a *AppMulti[W]) NextWindowID() events.WindowID {
	return events.WindowID(a.lastWinID.Add(1))
}

func (a *AppMulti[W]) Screens() []*winit.Screen {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	scs := make([]*winit.Screen, len(a.AllScreens))
	copy(scs, a.AllScreens)
	return scs
}

func (a *AppMulti[W]) PrimaryScreen() *winit.Screen {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return a.Primary
}

// SetScreens installs a fresh enumeration, marking the replaced
// snapshots stale. Drivers call it under their display reconfiguration
// notifications.
func (a *AppMulti[W]) SetScreens(scs []*winit.Screen, primary *winit.Screen) {
	a.Mu.Lock()
	old := a.AllScreens
	a.AllScreens = scs
	a.Primary = primary
	a.Mu.Unlock()
	for _, sc := range old {
		sc.SetStale()
	}
}

func (a *AppMulti[W]) NWindows() int {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return len(a.Windows)
}

func (a *AppMulti[W]) Window(win int) winit.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if win >= 0 && win < len(a.Windows) {
		return a.Windows[win]
	}
	return nil
}

func (a *AppMulti[W]) WindowByID(id events.WindowID) winit.Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, w := range a.Windows {
		if w.ID() == id {
			return w
		}
	}
	return nil
}

// AddWindow appends a newly created window to the window list.
func (a *AppMulti[W]) AddWindow(w W) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	a.Windows = append(a.Windows, w)
}

func (a *AppMulti[W]) RemoveWindow(win winit.Window) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for i, w := range a.Windows {
		if winit.Window(w) == win {
			a.Windows = append(a.Windows[:i], a.Windows[i+1:]...)
			break
		}
	}
}

// LastWindowPlacement returns the position and size of the most
// recently created open window, for cascade placement of the next one.
// Both are nil when there are no windows.
func (a *AppMulti[W]) LastWindowPlacement() (*units.PhysicalPosition, *units.PhysicalSize) {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	if len(a.Windows) == 0 {
		return nil, nil
	}
	w := a.Windows[len(a.Windows)-1]
	pos := w.Position()
	sz := w.OuterSize()
	return &pos, &sz
}
