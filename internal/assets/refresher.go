package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/appengine-ltd/farmstead/internal/game"
	"github.com/sirupsen/logrus"
)

var ErrRefreshInProgress = errors.New("visuals refresh already in progress")

type Dispatcher interface {
	Dispatch(action game.Action) game.Result
}

// Refresher regenerates building icons and the map background and merges
// whatever succeeded into the store. Only one refresh runs at a time.
type Refresher struct {
	l       logrus.FieldLogger
	gen     Generator
	store   Dispatcher
	timeout time.Duration
	busy    atomic.Bool
}

func NewRefresher(l logrus.FieldLogger, gen Generator, store Dispatcher, timeout time.Duration) *Refresher {
	return &Refresher{l: l, gen: gen, store: store, timeout: timeout}
}

func (r *Refresher) Busy() bool {
	return r.busy.Load()
}

// Start runs Refresh in the background and reports through done, which may
// be nil.
func (r *Refresher) Start(ctx context.Context, done func(game.Result, error)) error {
	if !r.busy.CompareAndSwap(false, true) {
		return ErrRefreshInProgress
	}
	go func() {
		res, err := r.refresh(ctx)
		if done != nil {
			done(res, err)
		}
	}()
	return nil
}

// Refresh blocks until icons and background have been requested and merged.
// The returned error joins every failed request.
func (r *Refresher) Refresh(ctx context.Context) (game.Result, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return game.Result{}, ErrRefreshInProgress
	}
	return r.refresh(ctx)
}

func (r *Refresher) refresh(ctx context.Context) (game.Result, error) {
	defer r.busy.Store(false)

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	buildings := game.Buildings()
	r.l.WithField("buildings", len(buildings)).Info("Generating estate visuals.")

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		icons = make(map[game.BuildingID]string, len(buildings))
		errs  []error
	)
	for _, b := range buildings {
		wg.Add(1)
		go func(b game.Building) {
			defer wg.Done()
			ref, err := r.gen.GenerateImage(ctx, ImageRequest{Prompt: b.ImagePrompt()})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("icon %s: %w", b.ID, external(err)))
				return
			}
			icons[b.ID] = ref
		}(b)
	}
	wg.Wait()

	background, err := r.gen.GenerateImage(ctx, ImageRequest{Prompt: MapPrompt(buildings), AspectRatio: AspectWide})
	if err != nil {
		errs = append(errs, fmt.Errorf("map background: %w", external(err)))
		background = ""
	}

	res := r.store.Dispatch(game.MergeAssetsAction{Icons: icons, Background: background})
	joined := errors.Join(errs...)
	if joined != nil {
		r.l.WithError(joined).Warnf("Estate visuals partially generated: %d of %d icons.", len(icons), len(buildings))
		return res, joined
	}
	r.l.Info("Estate visuals generated.")
	return res, nil
}

func external(err error) error {
	if errors.Is(err, ErrExternalService) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrExternalService, err)
}
