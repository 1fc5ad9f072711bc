package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 || args[0] == "-" {
		return fmt.Errorf("%w: watch needs exactly one menu file", cli.ErrUsage)
	}
	if cfg.Debounce <= 0 {
		return fmt.Errorf("%w: -debounce must be positive", cli.ErrUsage)
	}
	log := newLog(cfg.Verbose)
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("could not start gops agent: %w", err)
		}
		defer agent.Close()
	}
	rep := cfg.reporter()
	opts, err := cfg.runOpts(cc.Out, rep)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	file := args[0]
	onChange := func() {
		if _, err := render(cc.In, file, cc.Out, log, opts); err != nil {
			rep.fatal(err)
		}
	}
	onChange()
	fw := &fileWatcher{path: file, debounce: cfg.Debounce, log: log}
	return fw.watch(ctx, onChange)
}

// fileWatcher calls back after a file is written, created or renamed
// into place. Events closer together than debounce are coalesced.
type fileWatcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
}

func (fw *fileWatcher) watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer w.Close()
	// editors often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(fw.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", fw.path, err)
	}
	fw.log.Info("watching", "file", fw.path, "debounce", fw.debounce)

	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			fw.log.Info("stopped watching", "file", fw.path)
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !relevant(ev, fw.path) {
				continue
			}
			fw.log.Debug("file event", "file", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.AfterFunc(fw.debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(fw.debounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			fw.log.Warn("watcher error", "error", err)
		case <-fire:
			onChange()
		}
	}
}

func relevant(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(path) {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
