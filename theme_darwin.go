// Copyright (c) 2024, The winit Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package winit

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

const plistPath = `/Library/Preferences/.GlobalPreferences.plist`

var plist = filepath.Join(os.Getenv("HOME"), plistPath)

// SystemIsDark returns whether the system color theme is dark (as
// opposed to light).
func SystemIsDark() bool {
	cmd := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle")
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false
		}
	}
	return true
}

// MonitorTheme watches the system theme and calls the given function
// with the new value whenever it changes. It does not return, so it is
// typically run in its own goroutine; drivers use it to feed
// WindowThemeChange events.
func MonitorTheme(fn func(dark bool)) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("winit: theme watcher failed", "err", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(plist); err != nil {
		slog.Error("winit: theme watcher failed to watch preferences", "err", err)
		return
	}

	wasDark := SystemIsDark()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				isDark := SystemIsDark()
				if isDark != wasDark {
					fn(isDark)
					wasDark = isDark
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("winit: theme watcher error", "err", err)
		}
	}
}
