package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"huepick/eui"
	"huepick/picker"

	clipboard "golang.design/x/clipboard"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	doDebug bool

	// clipboardReady is set once clipboard.Init succeeds.
	clipboardReady bool
)

// options are the effective run settings: the loaded settings with any
// command line overrides applied. Overrides are not written back.
type options struct {
	hue           string
	resolve       picker.Resolve
	copyOnRelease bool
}

// flagValues holds the overridable flags and which of them were given.
type flagValues struct {
	hue           string
	analytic      bool
	copyOnRelease bool
	set           map[string]bool
}

func resolveOptions(s settings, f flagValues) options {
	o := options{
		hue:           s.InitialHue,
		resolve:       picker.ParseResolve(s.Resolve),
		copyOnRelease: s.CopyOnRelease,
	}
	if f.set["hue"] {
		if _, err := eui.ParseColor(f.hue); err != nil {
			logWarn("-hue %q: %v", f.hue, err)
		} else {
			o.hue = f.hue
		}
	}
	if f.set["analytic"] {
		o.resolve = picker.ResolveSample
		if f.analytic {
			o.resolve = picker.ResolveAnalytic
		}
	}
	if f.set["copy"] {
		o.copyOnRelease = f.copyOnRelease
	}
	return o
}

func main() {
	var fv flagValues
	flag.StringVar(&fv.hue, "hue", "", "initial hue, e.g. \"rgba(0, 128, 255, 1)\" or \"#0080ff\"")
	flag.BoolVar(&fv.analytic, "analytic", false, "compute picked colors instead of sampling the rendered palette")
	flag.BoolVar(&fv.copyOnRelease, "copy", false, "copy the picked color to the clipboard on release")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.StringVar(&settingsPath, "settings", settingsPath, "path to settings.json")
	flag.Parse()

	fv.set = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { fv.set[f.Name] = true })

	setupLogging(doDebug)
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v", r)
			panic(r)
		}
	}()

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard init: %v", err)
	} else {
		clipboardReady = true
	}

	loadSettings()
	opts := resolveOptions(gs, fv)
	logDebug("settings loaded=%v hue=%s resolve=%s copy=%v", settingsLoaded, opts.hue, opts.resolve, opts.copyOnRelease)

	if err := eui.EnsureFontSource(goregular.TTF); err != nil {
		logError("font: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runGame(ctx, opts)
}
