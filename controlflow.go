// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

import "time"

// ControlFlowModes describes the event loop's idle policy between
// dispatch cycles.
type ControlFlowModes int32

const (
	// Poll runs the next cycle as soon as the current one completes,
	// without blocking, after checking for newly arrived events.
	Poll ControlFlowModes = iota

	// Wait blocks until an event arrives.
	Wait

	// WaitUntil blocks until an event arrives or a deadline passes,
	// whichever comes first.
	WaitUntil
)

func (m ControlFlowModes) String() string {
	switch m {
	case Poll:
		return "Poll"
	case Wait:
		return "Wait"
	case WaitUntil:
		return "WaitUntil"
	}
	return "ControlFlowModes(?)"
}

// ControlFlow is the idle policy for the next idle period. The handler
// may set it at any point during a dispatch cycle; the value in effect
// when the cycle ends is the one honored (last write wins), and it is
// re-read each cycle rather than sticky.
type ControlFlow struct {
	// Mode is the idle mode.
	Mode ControlFlowModes

	// Deadline is the monotonic wake deadline for WaitUntil.
	// A deadline already in the past means an immediate wake.
	Deadline time.Time
}

// ControlPoll returns a Poll control flow.
func ControlPoll() ControlFlow { return ControlFlow{Mode: Poll} }

// ControlWait returns a Wait control flow.
func ControlWait() ControlFlow { return ControlFlow{Mode: Wait} }

// ControlWaitUntil returns a WaitUntil control flow with the given
// deadline.
func ControlWaitUntil(deadline time.Time) ControlFlow {
	return ControlFlow{Mode: WaitUntil, Deadline: deadline}
}

// StartCauses describes why a dispatch cycle is starting.
type StartCauses int32

const (
	// Init is sent once for the first cycle after a run entry point is
	// called.
	Init StartCauses = iota

	// PollResumed means the previous cycle set [Poll] and the loop did
	// not block.
	PollResumed

	// ResumeTimeReached means a WaitUntil deadline has been reached.
	ResumeTimeReached

	// WaitCancelled means a Wait or WaitUntil idle was cut short by an
	// arriving event before any deadline.
	WaitCancelled
)

func (c StartCauses) String() string {
	switch c {
	case Init:
		return "Init"
	case PollResumed:
		return "Poll"
	case ResumeTimeReached:
		return "ResumeTimeReached"
	case WaitCancelled:
		return "WaitCancelled"
	}
	return "StartCauses(?)"
}

// StartCause is the reason a dispatch cycle is starting, passed to the
// handler's NewEvents hook.
type StartCause struct {
	// Cause is the reason.
	Cause StartCauses

	// Start is when the preceding idle began, for ResumeTimeReached
	// and WaitCancelled.
	Start time.Time

	// RequestedResume is the WaitUntil deadline that was in effect,
	// if any. The actual resume time for ResumeTimeReached is
	// guaranteed to be at or after it.
	RequestedResume time.Time

	// HasResume is whether RequestedResume is set.
	HasResume bool
}
