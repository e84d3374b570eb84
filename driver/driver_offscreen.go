// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen

package driver

import "github.com/asterwyx/winit/driver/offscreen"

func init() {
	offscreen.Init()
}
