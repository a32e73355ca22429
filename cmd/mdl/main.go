// seehuhn.de/go/wireframe - a scripted 3D wireframe renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command mdl renders wireframe scripts.
//
// Usage:
//
//	mdl [flags] script...
//
// Every script is run on a fresh canvas.  The display command of a script
// shows the current picture; with the window viewer, press Space or Enter
// to continue and Escape to stop.  With -watch, the scripts are rendered
// again whenever they change on disk.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/canvas"
	"seehuhn.de/go/wireframe/config"
	"seehuhn.de/go/wireframe/internal/viewer"
)

var (
	configFile = flag.String("config", "", "read settings from `file` (.yaml, .yml or .toml)")
	outFile    = flag.String("o", "", "save the final picture to `file`")
	width      = flag.Int("width", 0, "image width in pixels")
	height     = flag.Int("height", 0, "image height in pixels")
	step       = flag.Float64("step", 0, "parameter step for curves and surfaces")
	mode       = flag.String("mode", "", "transform mode, compose or replace")
	viewerKind = flag.String("viewer", "", "how to display pictures: window, command or none")
	watch      = flag.Bool("watch", false, "render again when a script changes")
	verbose    = flag.Bool("v", false, "print debug messages")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	wireframe.SetLogger(logger)

	if err := run(logger, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, files []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := checkOutput(*outFile); err != nil {
		return err
	}

	r := &renderer{cfg: cfg, files: files, logger: logger}
	switch cfg.Viewer {
	case config.ViewerWindow:
		w := viewer.NewWindow("mdl", cfg.Width, cfg.Height, cfg.ViewerScale)
		r.viewer = w
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			<-w.Closed()
			cancel()
		}()
		err = w.Run(func() error { return r.loop(ctx) })
	case config.ViewerCommand:
		cmd, cmdErr := viewer.NewCommand(cfg.ViewerCommand)
		if cmdErr != nil {
			return cmdErr
		}
		r.viewer = cmd
		err = r.loop(ctx)
	default:
		err = r.loop(ctx)
	}
	if errors.Is(err, viewer.ErrClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads the config file, if any, and applies the command line
// flags which were set explicitly.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "step":
			cfg.Step = *step
		case "mode":
			cfg.Mode = *mode
		case "viewer":
			cfg.Viewer = *viewerKind
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkOutput reports an error if fname has an extension Save cannot write.
func checkOutput(fname string) error {
	if fname == "" {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(fname))
	if !slices.Contains(canvas.Formats(), ext) {
		return fmt.Errorf("%s: %w (use one of %s)", fname, canvas.ErrUnsupportedFormat,
			strings.Join(canvas.Formats(), " "))
	}
	return nil
}

type renderer struct {
	cfg    *config.Config
	files  []string
	viewer canvas.Viewer
	logger *slog.Logger
}

// loop renders all scripts once and then, in watch mode, re-renders
// scripts as they change until ctx is cancelled.
func (r *renderer) loop(ctx context.Context) error {
	for _, fname := range r.files {
		err := r.render(fname)
		if err != nil && (!*watch || errors.Is(err, viewer.ErrClosed)) {
			return err
		} else if err != nil {
			r.logger.Error("render failed", "error", err)
		}
	}
	if !*watch {
		return nil
	}
	return r.watch(ctx)
}

func (r *renderer) render(fname string) error {
	c, err := wireframe.RenderFile(r.cfg, fname, r.viewer)
	if err != nil {
		return err
	}
	if *outFile != "" {
		if err := c.Save(*outFile); err != nil {
			return err
		}
		b := c.Bounds()
		r.logger.Info("image saved", "file", *outFile, "width", b.Dx(), "height", b.Dy())
	}
	return nil
}

// settleTime is how long to wait after a change before rendering, so that
// editors can finish writing the file.
const settleTime = 100 * time.Millisecond

func (r *renderer) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace files instead of writing them, so the
	// directories are watched rather than the files themselves.
	watched := make(map[string]string)
	for _, fname := range r.files {
		abs, err := filepath.Abs(fname)
		if err != nil {
			return err
		}
		watched[abs] = fname
	}
	dirs := make(map[string]bool)
	for abs := range watched {
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}
	r.logger.Info("watching for changes", "scripts", len(watched))

	pending := make(map[string]bool)
	timer := time.NewTimer(settleTime)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			fname, isScript := watched[filepath.Clean(event.Name)]
			if !isScript {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				pending[fname] = true
				timer.Reset(settleTime)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("watcher error", "error", err)

		case <-timer.C:
			for _, fname := range r.files {
				if !pending[fname] {
					continue
				}
				delete(pending, fname)
				r.logger.Debug("script changed", "file", fname)
				if err := r.render(fname); errors.Is(err, viewer.ErrClosed) {
					return err
				} else if err != nil {
					r.logger.Error("render failed", "error", err)
				}
			}
		}
	}
}
