// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates that a resource, handle, or backend
	// extension is not present on this platform at this moment: a stale
	// screen handle after a reconfiguration, a native handle queried off
	// the main thread. Recoverable; treat as "feature absent".
	ErrUnavailable = errors.New("unavailable")

	// ErrNotSupported indicates that the operation is meaningless on
	// this backend. Recoverable, same treatment as [ErrUnavailable].
	ErrNotSupported = errors.New("not supported")

	// ErrClosed indicates that the event loop has exited and can no
	// longer accept events or, on most backends, be run again.
	ErrClosed = errors.New("event loop closed")
)

// EventLoopError is a loop construction or run failure: constructing a
// second loop in the same process, running a consumed loop again, or
// running off the required thread. It is fatal to that attempt and is
// surfaced synchronously at the call that caused it; it does not corrupt
// any other loop state.
type EventLoopError struct {
	// Op is the operation that failed.
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *EventLoopError) Error() string {
	return fmt.Sprintf("winit: event loop %s: %v", e.Op, e.Err)
}

func (e *EventLoopError) Unwrap() error { return e.Err }

// OSError is a failed native call, attached to the operation that
// triggered it. Synchronous operations propagate it to the caller;
// inherently async fire-and-forget operations log it instead.
type OSError struct {
	// Op is the operation that failed.
	Op string

	// Err is the underlying native error.
	Err error
}

func (e *OSError) Error() string {
	return fmt.Sprintf("winit: os error in %s: %v", e.Op, e.Err)
}

func (e *OSError) Unwrap() error { return e.Err }
