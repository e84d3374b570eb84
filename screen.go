// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

import (
	"image"
	"sync/atomic"
)

// Screen contains the information about one physical or logical screen,
// taken as a point-in-time snapshot when the driver (re)enumerates the
// displays. The struct fields are the cached snapshot and remain
// readable after the screen goes away; queries that would need the live
// display fail with [ErrUnavailable] once the handle is stale.
type Screen struct {
	// Name is the name of the screen as reported by the system.
	Name string

	// ScreenNumber is the index of this screen in the list of screens,
	// beginning at 0.
	ScreenNumber int

	// Geometry is the placement and size of the screen in the overall
	// desktop, in window-manager coordinates.
	Geometry image.Rectangle

	// PixSize is the size of the screen in raw physical pixels.
	PixSize image.Point

	// DevicePixelRatio is the factor scaling the screen's "natural"
	// pixel coordinates into physical pixels; 2.0 on retina-class
	// displays. Always > 0.
	DevicePixelRatio float32

	// PhysicalSize is the screen's physical size in millimeters.
	PhysicalSize image.Point

	// PhysicalDPI is the physical dots per inch, computed as
	// 25.4 * (PixSize.X / PhysicalSize.X).
	PhysicalDPI float32

	// Depth is the color depth in bits.
	Depth int

	// RefreshRate is the vertical refresh rate in millihertz, or 0
	// if unknown.
	RefreshRate int

	// Modes are the video modes the screen supports, if the backend
	// reports them.
	Modes []VideoMode

	// stale is set when the display this snapshot was taken from is
	// disconnected or reconfigured away.
	stale atomic.Bool
}

// VideoMode is one display mode of a screen.
type VideoMode struct {
	// Size is the mode's size in physical pixels.
	Size image.Point

	// RefreshRate is the vertical refresh rate in millihertz.
	RefreshRate int

	// Depth is the color depth in bits.
	Depth int
}

// SetStale marks the snapshot as no longer backed by a live display.
// Drivers call it during display reconfiguration.
func (sc *Screen) SetStale() { sc.stale.Store(true) }

// IsStale returns whether the underlying display has gone away since
// this snapshot was taken.
func (sc *Screen) IsStale() bool { return sc.stale.Load() }

// CurrentMode returns the screen's current video mode. It fails with
// [ErrUnavailable] if the handle is stale.
func (sc *Screen) CurrentMode() (VideoMode, error) {
	if sc.IsStale() {
		return VideoMode{}, ErrUnavailable
	}
	return VideoMode{Size: sc.PixSize, RefreshRate: sc.RefreshRate, Depth: sc.Depth}, nil
}

// VideoModes returns the supported display modes. It fails with
// [ErrUnavailable] if the handle is stale, and with [ErrNotSupported]
// on backends that do not enumerate modes.
func (sc *Screen) VideoModes() ([]VideoMode, error) {
	if sc.IsStale() {
		return nil, ErrUnavailable
	}
	if sc.Modes == nil {
		return nil, ErrNotSupported
	}
	return sc.Modes, nil
}

// UpdatePhysicalDPI recomputes PhysicalDPI from PixSize and
// PhysicalSize; a zero physical size leaves the standard 96 dpi.
func (sc *Screen) UpdatePhysicalDPI() {
	if sc.PhysicalSize.X <= 0 {
		sc.PhysicalDPI = 96
		return
	}
	sc.PhysicalDPI = 25.4 * float32(sc.PixSize.X) / float32(sc.PhysicalSize.X)
}
