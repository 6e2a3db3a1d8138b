//go:build cgo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/appengine-ltd/farmstead/internal/gui"
)

func main() {
	opts, done, err := prepare(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if done {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := setup(ctx, opts.cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		if err := rt.Close(); err != nil {
			rt.l.WithError(err).Warn("Shutdown incomplete.")
		}
	}()

	if opts.headless {
		err = runConsole(ctx, rt, opts, os.Stdin, os.Stdout)
	} else {
		app := gui.NewApp(gui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
		}, rt.l, rt.console)
		if opts.cfg.GenerateOnStart {
			app.Commands().EnqueueCommand("visuals")
		}
		err = app.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		rt.l.WithError(err).Error("Farmstead stopped.")
		stop()
		os.Exit(1)
	}
}
