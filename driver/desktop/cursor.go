// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"sync"

	"github.com/asterwyx/winit"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfw has no native diagonal resize or not-allowed shapes; SetCursor
// falls back to the arrow for those and reports ErrNotSupported.
var cursorShapes = map[winit.Cursors]glfw.StandardCursor{
	winit.CursorArrow:     glfw.ArrowCursor,
	winit.CursorIBeam:     glfw.IBeamCursor,
	winit.CursorCrosshair: glfw.CrosshairCursor,
	winit.CursorHand:      glfw.HandCursor,
	winit.CursorResizeEW:  glfw.HResizeCursor,
	winit.CursorResizeNS:  glfw.VResizeCursor,
}

var (
	cursorMu    sync.Mutex
	cursorCache = map[glfw.StandardCursor]*glfw.Cursor{}
)

// getCursor returns the shared glfw cursor object for the shape,
// creating it on first use. Main thread only.
func getCursor(shape glfw.StandardCursor) *glfw.Cursor {
	cursorMu.Lock()
	defer cursorMu.Unlock()
	if c, ok := cursorCache[shape]; ok {
		return c
	}
	c := glfw.CreateStandardCursor(shape)
	cursorCache[shape] = c
	return c
}

func (w *Window) SetCursor(c winit.Cursors) error {
	if w.IsClosed() {
		return winit.ErrClosed
	}
	shape, ok := cursorShapes[c]
	if !ok {
		shape = glfw.ArrowCursor
	}
	w.App.RunOnMain(func() {
		w.Glw.SetCursor(getCursor(shape))
		w.Mu.Lock()
		w.Cur = c
		w.Mu.Unlock()
	})
	if !ok {
		return winit.ErrNotSupported
	}
	return nil
}
