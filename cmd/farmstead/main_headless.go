//go:build !cgo
// +build !cgo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
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
	if !opts.headless {
		fmt.Fprintln(os.Stderr, "This build has no window support (cgo disabled); using the text console.")
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

	if err := runConsole(ctx, rt, opts, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		rt.l.WithError(err).Error("Farmstead stopped.")
	}
}
