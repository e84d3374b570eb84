// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package winit

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/asterwyx/winit/events"
	"github.com/pelletier/go-toml/v2"
)

// DeviceSettings are the user-tunable input and window defaults,
// persisted as TOML in the app data directory. Drivers load them at
// startup and apply them to the event sources.
type DeviceSettings struct {
	// DoubleClickInterval is the maximum time between clicks for a
	// double click.
	DoubleClickInterval time.Duration `toml:"double-click-interval"`

	// ScrollWheelSpeed is the multiplier applied when converting
	// scroll wheel line deltas to pixels.
	ScrollWheelSpeed float32 `toml:"scroll-wheel-speed"`

	// WindowSizeFraction is the fraction of the screen that a window
	// with no requested size occupies.
	WindowSizeFraction float32 `toml:"window-size-fraction"`
}

// DefaultDeviceSettings returns the default settings.
func DefaultDeviceSettings() *DeviceSettings {
	return &DeviceSettings{
		DoubleClickInterval: 500 * time.Millisecond,
		ScrollWheelSpeed:    1,
		WindowSizeFraction:  0.8,
	}
}

// settingsFile is the name of the settings file within the app data
// directory.
const settingsFile = "device-settings.toml"

// OpenDeviceSettings reads the settings from dir, returning the
// defaults if no settings file exists.
func OpenDeviceSettings(dir string) (*DeviceSettings, error) {
	ds := DefaultDeviceSettings()
	b, err := os.ReadFile(filepath.Join(dir, settingsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ds, nil
		}
		return ds, err
	}
	if err := toml.Unmarshal(b, ds); err != nil {
		return DefaultDeviceSettings(), err
	}
	return ds, nil
}

// Save writes the settings to dir.
func (ds *DeviceSettings) Save(dir string) error {
	b, err := toml.Marshal(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, settingsFile), b, 0o644)
}

// Apply installs the settings into the event and window machinery.
func (ds *DeviceSettings) Apply() {
	events.DoubleClickInterval = ds.DoubleClickInterval
	events.ScrollWheelSpeed = ds.ScrollWheelSpeed
	WindowSizeFraction = ds.WindowSizeFraction
}
