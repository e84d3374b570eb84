// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !darwin && !windows

package winit

import (
	"os/exec"
	"strings"
)

// SystemIsDark returns whether the system color theme is dark (as
// opposed to light). On Linux it asks gsettings; desktops without it
// report light.
func SystemIsDark() bool {
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false
	}
	return strings.Contains(string(out), "dark")
}

// MonitorTheme watches the system theme and calls the given function
// with the new value whenever it changes. There is no portable change
// notification on this platform, so it is a no-op; drivers report theme
// changes only where the platform delivers them.
func MonitorTheme(fn func(dark bool)) {}
