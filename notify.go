package main

import (
	"time"

	"github.com/gen2brain/beeep"
	"golang.org/x/time/rate"
)

// notifyLimiter keeps a burst of copies from stacking up notifications.
var notifyLimiter = rate.NewLimiter(rate.Every(2*time.Second), 1)

// desktopNotify is swapped out in tests.
var desktopNotify = func(title, body string) error {
	return beeep.Notify(title, body, "")
}

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
func notifyDesktop(title, body string) {
	if body == "" {
		return
	}
	// Skip without a display; beeep would error.
	if headless() {
		return
	}
	if err := desktopNotify(title, body); err != nil {
		logDebug("notify: %v", err)
	}
}

// notifyCopied announces a copy when enabled. It reports whether a
// notification was sent.
func notifyCopied(c string) bool {
	if !gs.NotifyOnCopy {
		return false
	}
	if !notifyLimiter.Allow() {
		logDebug("notify: rate limited")
		return false
	}
	go notifyDesktop("Color copied", c)
	return true
}
