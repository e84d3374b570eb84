// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build x11 && !offscreen

package driver

import "github.com/asterwyx/winit/driver/x11"

func init() {
	x11.Init()
}
