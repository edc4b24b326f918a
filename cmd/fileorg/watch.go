package main

import (
	"time"

	"github.com/esdraskololo/File-Organizer-Tool/internal/config"
	"github.com/esdraskololo/File-Organizer-Tool/internal/watcher"
)

// printDurationUnit is the rounding applied to durations shown to the user.
const printDurationUnit = time.Second

// newDirectoryWatcher builds a watcher from the user's preferences.
func newDirectoryWatcher(prefs *config.Preferences, handler watcher.Handler) *watcher.Watcher {
	cfg := watcher.DefaultConfig()
	if prefs.Watch.DebounceSeconds > 0 {
		cfg.Debounce = time.Duration(prefs.Watch.DebounceSeconds) * time.Second
	}
	if len(prefs.Watch.IgnorePatterns) > 0 {
		cfg.IgnorePatterns = prefs.Watch.IgnorePatterns
	}
	return watcher.New(cfg, handler)
}
