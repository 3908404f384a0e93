// Package app wires blueprint loading, rule compilation, and profile
// output into the mousemapper command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/mousemapper/mousemapper/internal/config"
	"github.com/mousemapper/mousemapper/internal/config/watcher"
	"github.com/mousemapper/mousemapper/internal/device"
	"github.com/mousemapper/mousemapper/internal/karabiner"
	"github.com/mousemapper/mousemapper/internal/profile"
	"github.com/mousemapper/mousemapper/internal/script"
)

// ErrNoBlueprint indicates no blueprint path was given.
var ErrNoBlueprint = errors.New("no blueprint path given")

// DefaultTitle is used when a blueprint declares no title.
const DefaultTitle = "MouseMapper Profile"

// Options configures the application.
type Options struct {
	// BlueprintPath is the blueprint file (.toml, .yaml, .yml, or .lua).
	BlueprintPath string

	// OutputPath is the profile destination. Empty writes to stdout.
	OutputPath string

	// Scan lists connected USB devices instead of generating.
	Scan bool

	// ValidateOnly checks the blueprint and emitted profile without
	// writing anything.
	ValidateOnly bool

	// Watch regenerates the profile whenever the blueprint changes.
	Watch bool

	// CopyToClipboard puts the generated profile JSON on the clipboard.
	CopyToClipboard bool

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string
}

// App is the mousemapper application.
type App struct {
	opts Options
	log  *Logger
	out  io.Writer
}

// New creates an App from options.
func New(opts Options) *App {
	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(opts.LogLevel),
		Output: os.Stderr,
		Prefix: "mousemapper",
	})
	return &App{opts: opts, log: logger, out: os.Stdout}
}

// SetOutput redirects stdout output, used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// SetLogger replaces the application logger, used by tests.
func (a *App) SetLogger(l *Logger) {
	a.log = l
}

// Run executes the selected mode.
func (a *App) Run(ctx context.Context) error {
	if a.opts.Scan {
		return a.scan(ctx)
	}

	if err := a.generate(ctx); err != nil {
		return err
	}

	if a.opts.Watch {
		return a.watch(ctx)
	}
	return nil
}

// scan lists connected USB devices.
func (a *App) scan(ctx context.Context) error {
	devices, err := device.Scan(ctx)
	if err != nil {
		return err
	}
	a.log.Info("found %d devices", len(devices))
	_, err = fmt.Fprint(a.out, device.Table(devices))
	return err
}

// generate runs one blueprint-to-profile pass.
func (a *App) generate(ctx context.Context) error {
	if a.opts.BlueprintPath == "" {
		return ErrNoBlueprint
	}

	bp, err := loadBlueprint(a.opts.BlueprintPath)
	if err != nil {
		return err
	}

	dev, err := a.resolveDevice(ctx, bp.Device)
	if err != nil {
		return err
	}

	manipulators, err := config.Build(bp, dev)
	if err != nil {
		return err
	}

	title := bp.Title
	if title == "" {
		title = DefaultTitle
	}
	prof := profile.New(title)
	prof.AddRule(title, manipulators...)

	data, err := prof.JSON()
	if err != nil {
		return err
	}
	if err := profile.Validate(data); err != nil {
		return err
	}

	log := a.log.WithField("generation", uuid.NewString()[:8])
	log.Debug("compiled %d manipulators", prof.ManipulatorCount())

	if a.opts.ValidateOnly {
		log.Info("blueprint %s is valid (%d manipulators)", a.opts.BlueprintPath, prof.ManipulatorCount())
		return nil
	}

	if a.opts.CopyToClipboard {
		if err := clipboard.WriteAll(string(data)); err != nil {
			return fmt.Errorf("copying profile to clipboard: %w", err)
		}
		log.Info("profile copied to clipboard")
	}

	if a.opts.OutputPath == "" {
		if _, err := a.out.Write(append(data, '\n')); err != nil {
			return err
		}
	} else {
		if err := profile.Write(a.opts.OutputPath, data); err != nil {
			return err
		}
		log.Info("wrote %s (%d manipulators)", a.opts.OutputPath, prof.ManipulatorCount())
	}
	return nil
}

// watch regenerates the profile on every blueprint change until the
// context is canceled.
func (a *App) watch(ctx context.Context) error {
	w, err := watcher.New(a.opts.BlueprintPath, 0)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	log := a.log.WithComponent("watch")
	log.Info("watching %s", a.opts.BlueprintPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-w.Events():
			log.Debug("blueprint changed at %s", ev.Time.Format("15:04:05"))
			if err := a.generate(ctx); err != nil {
				// A broken edit shouldn't kill the watch; the next save
				// gets another chance.
				log.Error("regeneration failed: %v", err)
			}
		case werr := <-w.Errors():
			log.Warn("watch error: %v", werr)
		}
	}
}

// loadBlueprint picks the loader by extension.
func loadBlueprint(path string) (*config.Blueprint, error) {
	if strings.EqualFold(filepath.Ext(path), ".lua") {
		return script.Load(path)
	}
	return config.LoadFile(path)
}

// resolveDevice turns a blueprint device entry into a compiler DeviceID.
// Explicit ids win; otherwise a name is resolved against connected
// hardware. An empty entry means no device restriction.
func (a *App) resolveDevice(ctx context.Context, entry config.DeviceEntry) (karabiner.DeviceID, error) {
	if entry.VendorID != 0 && entry.ProductID != 0 {
		return karabiner.DeviceID{VendorID: entry.VendorID, ProductID: entry.ProductID}, nil
	}
	if entry.Name == "" {
		return karabiner.DeviceID{}, nil
	}

	devices, err := device.Scan(ctx)
	if err != nil {
		return karabiner.DeviceID{}, fmt.Errorf("resolving device %q: %w", entry.Name, err)
	}
	d, err := device.FindByName(devices, entry.Name)
	if err != nil {
		return karabiner.DeviceID{}, err
	}
	a.log.Info("resolved device %q to %s", entry.Name, d)
	return karabiner.DeviceID{VendorID: d.VendorID, ProductID: d.ProductID}, nil
}
