// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/asterwyx/winit/events/key"
)

// Device is a raw device event, keyed by a [DeviceID] instead of a
// window: unaccelerated motion deltas, raw button and key transitions,
// and device connection changes. Raw events are delivered regardless of
// window focus and are not subject to pointer acceleration or window
// clipping.
type Device struct {
	Base

	// DX, DY are the raw motion delta for DeviceMove events, in
	// device-defined units (not necessarily pixels).
	DX float32
	DY float32

	// RawButton is the platform button number for DeviceButton events.
	RawButton int

	// Code is the physical key code for DeviceKey events.
	Code key.Codes

	// Pressed is the transition direction for DeviceButton and
	// DeviceKey events.
	Pressed bool
}

func (ev *Device) String() string {
	switch ev.Typ {
	case DeviceMove:
		return fmt.Sprintf("%v{Dev: %d, Delta: (%g,%g), Time: %v}", ev.Typ, ev.Dev, ev.DX, ev.DY, ev.GenTime.Format("04:05"))
	case DeviceButton:
		return fmt.Sprintf("%v{Dev: %d, Button: %d, Pressed: %v, Time: %v}", ev.Typ, ev.Dev, ev.RawButton, ev.Pressed, ev.GenTime.Format("04:05"))
	case DeviceKey:
		return fmt.Sprintf("%v{Dev: %d, Code: %v, Pressed: %v, Time: %v}", ev.Typ, ev.Dev, ev.Code, ev.Pressed, ev.GenTime.Format("04:05"))
	}
	return fmt.Sprintf("%v{Dev: %d, Time: %v}", ev.Typ, ev.Dev, ev.GenTime.Format("04:05"))
}

// NewDeviceMove returns a new raw motion event. Not unique; deltas are
// integrated during compression.
func NewDeviceMove(dev DeviceID, dx, dy float32) *Device {
	ev := &Device{}
	ev.Typ = DeviceMove
	ev.Dev = dev
	ev.DX = dx
	ev.DY = dy
	ev.Init()
	ev.Flags &^= Unique
	return ev
}

// NewDeviceButton returns a new raw button event.
func NewDeviceButton(dev DeviceID, button int, pressed bool) *Device {
	ev := &Device{}
	ev.Typ = DeviceButton
	ev.Dev = dev
	ev.RawButton = button
	ev.Pressed = pressed
	ev.Init()
	return ev
}

// NewDeviceKey returns a new raw key event.
func NewDeviceKey(dev DeviceID, code key.Codes, pressed bool) *Device {
	ev := &Device{}
	ev.Typ = DeviceKey
	ev.Dev = dev
	ev.Code = code
	ev.Pressed = pressed
	ev.Init()
	return ev
}

// NewDeviceChange returns a new DeviceAdded or DeviceRemoved event.
func NewDeviceChange(typ Types, dev DeviceID) *Device {
	ev := &Device{}
	ev.Typ = typ
	ev.Dev = dev
	ev.Init()
	return ev
}
