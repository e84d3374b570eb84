// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"sync/atomic"

	"github.com/asterwyx/winit"
)

// Active is the capability passed to every handler hook. It delegates
// to the driver app and the Looper, but only while the hook it was
// handed to is running: a capability retained past its hook fails every
// call with [winit.ErrUnavailable].
type Active struct {
	App    winit.App
	Looper *Looper

	valid atomic.Bool
}

var _ winit.ActiveEventLoop = (*Active)(nil)

func (a *Active) check() error {
	if !a.valid.Load() {
		return &winit.EventLoopError{Op: "active", Err: winit.ErrUnavailable}
	}
	return nil
}

func (a *Active) NewWindow(attrs *winit.WindowAttributes) (winit.Window, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	return a.App.NewWindow(attrs)
}

func (a *Active) Screens() []*winit.Screen {
	if a.check() != nil {
		return nil
	}
	return a.App.Screens()
}

func (a *Active) PrimaryScreen() *winit.Screen {
	if a.check() != nil {
		return nil
	}
	return a.App.PrimaryScreen()
}

func (a *Active) SetControlFlow(cf winit.ControlFlow) {
	if a.check() != nil {
		return
	}
	a.Looper.SetControlFlow(cf)
}

func (a *Active) ControlFlow() winit.ControlFlow {
	if a.check() != nil {
		return winit.ControlFlow{}
	}
	return a.Looper.ControlFlow()
}

func (a *Active) Exit() {
	if a.check() != nil {
		return
	}
	a.Looper.RequestExit()
}

func (a *Active) Exiting() bool {
	if a.check() != nil {
		return false
	}
	return a.Looper.Exiting()
}

func (a *Active) State() winit.AppStates {
	return a.Looper.State()
}
