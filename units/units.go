// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units provides position and size types that carry explicit
// logical-vs-physical pixel semantics. Logical units are UI-scale-independent
// coordinates; physical units are raw device pixels. The two are distinct
// types so that mixing them up is a compile error, not a runtime surprise.
// Conversion is always physical = round(logical * scale), with scale > 0.
package units

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// LogicalSize is a size in logical (scale-independent) pixels.
type LogicalSize struct {
	Width  float32
	Height float32
}

// Logical returns a new [LogicalSize].
func Logical(width, height float32) LogicalSize {
	return LogicalSize{Width: width, Height: height}
}

// ToPhysical converts to physical pixels using the given scale factor.
func (s LogicalSize) ToPhysical(scale float32) PhysicalSize {
	return PhysicalSize{
		Width:  int(math32.Round(s.Width * scale)),
		Height: int(math32.Round(s.Height * scale)),
	}
}

// Add returns the sum of the two logical sizes.
func (s LogicalSize) Add(o LogicalSize) LogicalSize {
	return LogicalSize{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// MulScalar returns the size scaled by the given factor, still in
// logical units.
func (s LogicalSize) MulScalar(f float32) LogicalSize {
	return LogicalSize{Width: s.Width * f, Height: s.Height * f}
}

func (s LogicalSize) String() string {
	return fmt.Sprintf("%gx%g (logical)", s.Width, s.Height)
}

// PhysicalSize is a size in physical (raw device) pixels.
type PhysicalSize struct {
	Width  int
	Height int
}

// Physical returns a new [PhysicalSize].
func Physical(width, height int) PhysicalSize {
	return PhysicalSize{Width: width, Height: height}
}

// ToLogical converts to logical pixels using the given scale factor.
func (s PhysicalSize) ToLogical(scale float32) LogicalSize {
	return LogicalSize{
		Width:  float32(s.Width) / scale,
		Height: float32(s.Height) / scale,
	}
}

// Add returns the sum of the two physical sizes.
func (s PhysicalSize) Add(o PhysicalSize) PhysicalSize {
	return PhysicalSize{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Point returns the size as an [image.Point], for interoperating with
// the standard image geometry used throughout the drivers.
func (s PhysicalSize) Point() image.Point {
	return image.Point{X: s.Width, Y: s.Height}
}

// PhysicalFromPoint returns the [PhysicalSize] for an [image.Point].
func PhysicalFromPoint(p image.Point) PhysicalSize {
	return PhysicalSize{Width: p.X, Height: p.Y}
}

func (s PhysicalSize) String() string {
	return fmt.Sprintf("%dx%d (physical)", s.Width, s.Height)
}

// LogicalPosition is a position in logical (scale-independent) pixels.
type LogicalPosition struct {
	X float32
	Y float32
}

// ToPhysical converts to physical pixels using the given scale factor.
func (p LogicalPosition) ToPhysical(scale float32) PhysicalPosition {
	return PhysicalPosition{
		X: int(math32.Round(p.X * scale)),
		Y: int(math32.Round(p.Y * scale)),
	}
}

// Add returns the sum of the two logical positions.
func (p LogicalPosition) Add(o LogicalPosition) LogicalPosition {
	return LogicalPosition{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p LogicalPosition) String() string {
	return fmt.Sprintf("(%g,%g) (logical)", p.X, p.Y)
}

// PhysicalPosition is a position in physical (raw device) pixels.
// Unlike sizes, positions can be negative (multi-monitor layouts place
// secondary screens at negative desktop coordinates).
type PhysicalPosition struct {
	X int
	Y int
}

// ToLogical converts to logical pixels using the given scale factor.
func (p PhysicalPosition) ToLogical(scale float32) LogicalPosition {
	return LogicalPosition{X: float32(p.X) / scale, Y: float32(p.Y) / scale}
}

// Add returns the sum of the two physical positions.
func (p PhysicalPosition) Add(o PhysicalPosition) PhysicalPosition {
	return PhysicalPosition{X: p.X + o.X, Y: p.Y + o.Y}
}

// Point returns the position as an [image.Point].
func (p PhysicalPosition) Point() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

func (p PhysicalPosition) String() string {
	return fmt.Sprintf("(%d,%d) (physical)", p.X, p.Y)
}

// Size is either a [LogicalSize] or a [PhysicalSize]. It is used at
// configuration boundaries (window attributes) where the caller may
// specify either unit; everything internal resolves to physical pixels
// via [Size.ToPhysical] as soon as a scale factor is known.
type Size interface {
	// ToPhysical resolves the size to physical pixels at the given
	// scale factor.
	ToPhysical(scale float32) PhysicalSize
}

// Position is either a [LogicalPosition] or a [PhysicalPosition],
// resolved at a configuration boundary like [Size].
type Position interface {
	// ToPhysical resolves the position to physical pixels at the given
	// scale factor.
	ToPhysical(scale float32) PhysicalPosition
}

// ToPhysical is implemented by PhysicalSize trivially so that it
// satisfies [Size].
func (s PhysicalSize) ToPhysical(scale float32) PhysicalSize { return s }

// ToPhysical is implemented by PhysicalPosition trivially so that it
// satisfies [Position].
func (p PhysicalPosition) ToPhysical(scale float32) PhysicalPosition { return p }
