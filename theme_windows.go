// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package winit

import (
	"log/slog"
	"time"

	"golang.org/x/sys/windows/registry"
)

const (
	themeRegKey  = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize` // in HKCU
	themeRegName = `AppsUseLightTheme`
)

// SystemIsDark returns whether the system color theme is dark (as
// opposed to light).
func SystemIsDark() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, themeRegKey, registry.QUERY_VALUE)
	if err != nil {
		slog.Error("winit: error opening theme registry key", "err", err)
		return false
	}
	defer k.Close()
	val, _, err := k.GetIntegerValue(themeRegName)
	if err != nil {
		slog.Error("winit: error reading theme registry value", "err", err)
		return false
	}
	// dark mode is 0
	return val == 0
}

// MonitorTheme watches the system theme and calls the given function
// with the new value whenever it changes. It does not return, so it is
// typically run in its own goroutine; drivers use it to feed
// WindowThemeChange events. The registry has no change notification
// accessible without a window handle, so this polls.
func MonitorTheme(fn func(dark bool)) {
	wasDark := SystemIsDark()
	tick := time.NewTicker(2 * time.Second)
	defer tick.Stop()
	for range tick.C {
		isDark := SystemIsDark()
		if isDark != wasDark {
			fn(isDark)
			wasDark = isDark
		}
	}
}
