// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

// Cursors are the standard cursor shapes. Backends map them to the
// nearest native shape; shapes with no native equivalent fall back to
// [CursorArrow] and SetCursor reports [ErrNotSupported].
type Cursors int32

const (
	// CursorArrow is the default pointer arrow.
	CursorArrow Cursors = iota

	// CursorIBeam is the text-selection I-beam.
	CursorIBeam

	// CursorCrosshair is a precision crosshair.
	CursorCrosshair

	// CursorHand is the pointing hand used over links.
	CursorHand

	// CursorResizeEW resizes horizontally.
	CursorResizeEW

	// CursorResizeNS resizes vertically.
	CursorResizeNS

	// CursorResizeNWSE resizes along the top-left / bottom-right
	// diagonal.
	CursorResizeNWSE

	// CursorResizeNESW resizes along the top-right / bottom-left
	// diagonal.
	CursorResizeNESW

	// CursorNotAllowed indicates the action is unavailable.
	CursorNotAllowed

	// CursorsN is the number of cursor shapes.
	CursorsN
)

func (c Cursors) String() string {
	switch c {
	case CursorArrow:
		return "Arrow"
	case CursorIBeam:
		return "IBeam"
	case CursorCrosshair:
		return "Crosshair"
	case CursorHand:
		return "Hand"
	case CursorResizeEW:
		return "ResizeEW"
	case CursorResizeNS:
		return "ResizeNS"
	case CursorResizeNWSE:
		return "ResizeNWSE"
	case CursorResizeNESW:
		return "ResizeNESW"
	case CursorNotAllowed:
		return "NotAllowed"
	}
	return "Cursors(?)"
}
