// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/asterwyx/winit/units"
)

// WindowResizeEvent confirms a change of the window surface size, whether
// driven by the OS, the user, or an earlier SetSize request.
type WindowResizeEvent struct {
	Base

	// Size is the new surface size in physical pixels.
	Size units.PhysicalSize
}

func (ev *WindowResizeEvent) String() string {
	return fmt.Sprintf("%v{Size: %v, Time: %v}", ev.Typ, ev.Size, ev.GenTime.Format("04:05"))
}

// NewWindowResize returns a new WindowResize event. Not unique;
// compressed during continuous resizing.
func NewWindowResize(win WindowID, sz units.PhysicalSize) *WindowResizeEvent {
	ev := &WindowResizeEvent{}
	ev.Typ = WindowResize
	ev.Win = win
	ev.Size = sz
	ev.Init()
	ev.Flags &^= Unique
	return ev
}

// WindowMoveEvent confirms a change of the window position in desktop
// coordinates.
type WindowMoveEvent struct {
	Base

	// Position is the new outer position in physical pixels.
	Position units.PhysicalPosition
}

func (ev *WindowMoveEvent) String() string {
	return fmt.Sprintf("%v{Position: %v, Time: %v}", ev.Typ, ev.Position, ev.GenTime.Format("04:05"))
}

// NewWindowMove returns a new WindowMove event. Not unique.
func NewWindowMove(win WindowID, pos units.PhysicalPosition) *WindowMoveEvent {
	ev := &WindowMoveEvent{}
	ev.Typ = WindowMove
	ev.Win = win
	ev.Position = pos
	ev.Init()
	ev.Flags &^= Unique
	return ev
}

// WindowScaleEvent reports a change of the window's scale factor,
// with the backend's suggested new surface size (the size that keeps the
// same logical dimensions at the new scale).
type WindowScaleEvent struct {
	Base

	// Scale is the new scale factor.
	Scale float32

	// SuggestedSize is the suggested new physical surface size.
	SuggestedSize units.PhysicalSize
}

func (ev *WindowScaleEvent) String() string {
	return fmt.Sprintf("%v{Scale: %g, SuggestedSize: %v, Time: %v}", ev.Typ, ev.Scale, ev.SuggestedSize, ev.GenTime.Format("04:05"))
}

// NewWindowScale returns a new WindowScaleChange event.
func NewWindowScale(win WindowID, scale float32, suggested units.PhysicalSize) *WindowScaleEvent {
	ev := &WindowScaleEvent{}
	ev.Typ = WindowScaleChange
	ev.Win = win
	ev.Scale = scale
	ev.SuggestedSize = suggested
	ev.Init()
	return ev
}

// WindowOcclusionEvent reports that the window became fully occluded or
// visible again.
type WindowOcclusionEvent struct {
	Base

	// Occluded is whether the window is now fully occluded.
	Occluded bool
}

// NewWindowOcclusion returns a new WindowOcclusion event.
func NewWindowOcclusion(win WindowID, occluded bool) *WindowOcclusionEvent {
	ev := &WindowOcclusionEvent{}
	ev.Typ = WindowOcclusion
	ev.Win = win
	ev.Occluded = occluded
	ev.Init()
	return ev
}

// WindowThemeEvent reports a change of the system light/dark theme.
type WindowThemeEvent struct {
	Base

	// Dark is whether the system theme is now dark.
	Dark bool
}

// NewWindowTheme returns a new WindowThemeChange event.
func NewWindowTheme(win WindowID, dark bool) *WindowThemeEvent {
	ev := &WindowThemeEvent{}
	ev.Typ = WindowThemeChange
	ev.Win = win
	ev.Dark = dark
	ev.Init()
	return ev
}

// DropFilesEvent is sent when files are dragged and dropped onto the
// window.
type DropFilesEvent struct {
	Base

	// Files are the paths of the dropped files.
	Files []string
}

func (ev *DropFilesEvent) HasPos() bool { return true }

func (ev *DropFilesEvent) String() string {
	return fmt.Sprintf("%v{Files: %v, Pos: %v, Time: %v}", ev.Typ, ev.Files, ev.Where, ev.GenTime.Format("04:05"))
}

// NewDropFiles returns a new DropFiles event.
func NewDropFiles(win WindowID, files []string) *DropFilesEvent {
	ev := &DropFilesEvent{}
	ev.Typ = DropFiles
	ev.Win = win
	ev.Files = files
	ev.Init()
	return ev
}
