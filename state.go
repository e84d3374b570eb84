// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

// AppStates are the states of the event loop lifecycle. Transitions only
// move forward except for the Running ⇄ Suspended pair.
type AppStates int32

const (
	// Idle means the loop has been constructed but no run entry point
	// has been called.
	Idle AppStates = iota

	// Running means the loop is dispatching. Windows may be created.
	Running

	// Suspended means the platform revoked the rendering context
	// (mobile backgrounding and the like); window handles may be
	// invalid until the loop resumes.
	Suspended

	// ExitRequested means the handler requested exit; the current
	// cycle's deliveries finish first. Set once, irreversible for this
	// loop instance.
	ExitRequested

	// Exited means the Exiting hook has run and the loop is done.
	Exited
)

func (s AppStates) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Suspended:
		return "Suspended"
	case ExitRequested:
		return "ExitRequested"
	case Exited:
		return "Exited"
	}
	return "AppStates(?)"
}

// PumpStatus is the result of a single PumpEvents step.
type PumpStatus int32

const (
	// PumpContinue means the loop is still live and expects another
	// pump.
	PumpContinue PumpStatus = iota

	// PumpExited means the loop has exited; further pumps fail.
	PumpExited
)
