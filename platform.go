// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

// Platforms are all the supported platforms.
type Platforms int32

const (
	// MacOS is a Mac OS machine (aka Darwin).
	MacOS Platforms = iota

	// Linux is a Linux machine.
	Linux

	// Windows is a Microsoft Windows machine.
	Windows

	// X11 is the pure-Go X11 backend, selected with the "x11" build
	// tag; the system platform is still Linux.
	X11

	// Offscreen is the headless driver used for testing, selected
	// using the "offscreen" build tag or automatically under tests.
	Offscreen

	// PlatformsN is the number of platforms.
	PlatformsN
)

func (p Platforms) String() string {
	switch p {
	case MacOS:
		return "MacOS"
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	case X11:
		return "X11"
	case Offscreen:
		return "Offscreen"
	}
	return "Platforms(?)"
}
