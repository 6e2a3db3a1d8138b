package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/appengine-ltd/farmstead/internal/assets"
	"github.com/appengine-ltd/farmstead/internal/config"
	"github.com/appengine-ltd/farmstead/internal/console"
	"github.com/appengine-ltd/farmstead/internal/game"
	"github.com/appengine-ltd/farmstead/internal/logger"
	"github.com/sirupsen/logrus"
)

// version, commit, date are set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const serviceName = "farmstead"

type options struct {
	showVersion bool
	headless    bool
	writeConfig bool
	cfg         config.Config
}

// parseFlags layers command-line flags over an already loaded config.
func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := options{cfg: cfg}
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&opts.headless, "headless", false, "use the text console instead of the window")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "save the effective config and exit")
	fs.Int64Var(&opts.cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.Func("money", "starting money (default 999999)", func(v string) error {
		money, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		opts.cfg.StartingMoney = &money
		return nil
	})
	fs.IntVar(&opts.cfg.MaxEnergy, "energy", cfg.MaxEnergy, "daily energy allowance")
	fs.StringVar(&opts.cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&opts.cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&opts.cfg.ImageModel, "image-model", cfg.ImageModel, "image generation model")
	fs.BoolVar(&opts.cfg.GenerateOnStart, "visuals", cfg.GenerateOnStart, "generate estate visuals at startup")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.cfg.ImageModel = config.NormalizeImageModel(opts.cfg.ImageModel)
	return opts, nil
}

type services struct {
	l       logrus.FieldLogger
	console *console.Console
	closers []func() error
}

func setup(ctx context.Context, cfg config.Config) (*services, error) {
	l := logger.CreateLogger(serviceName, cfg.LogLevel, cfg.LogFormat)

	factory := game.NewFactory(cfg.Seed)
	state := game.NewGameState(factory, game.StateConfig{Money: cfg.StartingMoney, MaxEnergy: cfg.MaxEnergy})
	store := game.NewStore(l, factory, state)

	rt := &services{l: l}
	var visuals console.Visuals
	if cfg.GeminiAPIKey != "" {
		gen, err := assets.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.ImageModel)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, gen.Close)
		visuals = assets.NewRefresher(l, gen, store, cfg.AssetTimeout())
	} else {
		l.Infof("%s not set, estate visuals disabled.", config.EnvGeminiAPIKey)
	}

	rt.console = console.New(l, store, visuals)
	l.WithFields(logrus.Fields{"version": version, "day": state.Day, "money": state.Money}).Info("Estate ready.")
	return rt, nil
}

func (rt *services) Close() error {
	var errs []error
	for _, c := range rt.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// prepare loads config and flags. A true done means the invocation was fully
// handled (version or write-config).
func prepare(args []string, stdout, stderr io.Writer) (options, bool, error) {
	cfg, err := config.Load()
	if err != nil {
		return options{}, false, fmt.Errorf("load config: %w", err)
	}
	opts, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return options{}, false, err
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "Farmstead %s (%s) %s\n", version, commit, date)
		return opts, true, nil
	}
	if opts.writeConfig {
		if err := config.Save(opts.cfg); err != nil {
			return options{}, false, fmt.Errorf("save config: %w", err)
		}
		path, _ := config.Path()
		fmt.Fprintf(stdout, "wrote %s\n", path)
		return opts, true, nil
	}
	return opts, false, nil
}

func runConsole(ctx context.Context, rt *services, opts options, in io.Reader, out io.Writer) error {
	if opts.cfg.GenerateOnStart {
		fmt.Fprintln(out, rt.console.Execute(ctx, "visuals").Text)
	}
	return rt.console.Run(ctx, in, out)
}
