// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver initializes the appropriate driver for the platform
// and build tags. Applications import it for side effects:
//
//	import _ "github.com/asterwyx/winit/driver"
//
// The glfw desktop driver is the default. The offscreen driver is used
// under the offscreen build tag and automatically when testing; the
// pure-Go X11 driver is selected with the x11 build tag.
package driver
