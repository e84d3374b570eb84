// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package winit provides a cross-platform abstraction over native
// windowing and input systems: creating and managing on-screen windows,
// pumping a platform event loop, translating native input and system
// notifications into a uniform event stream, and enumerating displays.
//
// An application constructs one [EventLoop], implements
// [ApplicationHandler], and calls one of the run entry points. Platform
// drivers live under driver/ and are selected at build time; importing
// the driver package activates the one for the target platform:
//
//	import _ "github.com/asterwyx/winit/driver"
//
// All handler hooks run sequentially on a single dispatch goroutine.
// The one sanctioned cross-thread entry point is the [Proxy], which
// injects user events from any goroutine and wakes an idling loop.
package winit
