package assets

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/appengine-ltd/farmstead/internal/game"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeGenerator struct {
	mu      sync.Mutex
	calls   []ImageRequest
	fail    func(prompt string) bool
	entered chan struct{}
	release chan struct{}
}

func (f *fakeGenerator) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	prompt := req.Prompt
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
		<-f.release
	}
	if f.fail != nil && f.fail(prompt) {
		return "", errors.New("quota exceeded")
	}
	return "data:image/png;base64," + strings.ToUpper(prompt[:4]), nil
}

func newTestStore() *game.Store {
	l, _ := test.NewNullLogger()
	f := game.NewFactory(5)
	return game.NewStore(l, f, game.NewGameState(f, game.StateConfig{}))
}

func TestRefreshMergesEveryAsset(t *testing.T) {
	l, _ := test.NewNullLogger()
	store := newTestStore()
	gen := &fakeGenerator{}

	res, err := NewRefresher(l, gen, store, 0).Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !res.OK() {
		t.Fatalf("merge failed: %+v", res)
	}
	snap := store.Snapshot()
	if len(snap.BuildingIcons) != len(game.Buildings()) {
		t.Fatalf("expected %d icons, got %d", len(game.Buildings()), len(snap.BuildingIcons))
	}
	if snap.MapBackground == "" {
		t.Fatalf("expected map background")
	}
	if len(gen.calls) != len(game.Buildings())+1 {
		t.Fatalf("expected one call per building plus the map, got %d", len(gen.calls))
	}
}

func TestRefreshRequestsAspectRatios(t *testing.T) {
	l, _ := test.NewNullLogger()
	gen := &fakeGenerator{}

	if _, err := NewRefresher(l, gen, newTestStore(), 0).Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	mapPrompt := MapPrompt(game.Buildings())
	wide := 0
	for _, req := range gen.calls {
		want := ""
		if req.Prompt == mapPrompt {
			want = AspectWide
			wide++
		}
		if req.AspectRatio != want {
			t.Fatalf("expected ratio %q for %.30q, got %q", want, req.Prompt, req.AspectRatio)
		}
	}
	if wide != 1 {
		t.Fatalf("expected exactly one map background request, got %d", wide)
	}
}

func TestRefreshKeepsPartialSuccesses(t *testing.T) {
	l, _ := test.NewNullLogger()
	store := newTestStore()
	market, _ := game.BuildingByID(game.BuildingMarket)
	gen := &fakeGenerator{fail: func(prompt string) bool {
		return prompt == market.ImagePrompt() || strings.Contains(prompt, "terrain sprite")
	}}

	_, err := NewRefresher(l, gen, store, 0).Refresh(context.Background())
	if !errors.Is(err, ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
	if !strings.Contains(err.Error(), "icon MARKET") || !strings.Contains(err.Error(), "map background") {
		t.Fatalf("expected both failures reported, got %v", err)
	}
	snap := store.Snapshot()
	if _, ok := snap.BuildingIcons[game.BuildingMarket]; ok {
		t.Fatalf("failed icon should not be merged")
	}
	if len(snap.BuildingIcons) != len(game.Buildings())-1 {
		t.Fatalf("expected remaining icons merged, got %d", len(snap.BuildingIcons))
	}
	if snap.MapBackground != "" {
		t.Fatalf("background should stay empty")
	}
}

func TestRefreshRejectsConcurrentRun(t *testing.T) {
	l, _ := test.NewNullLogger()
	gen := &fakeGenerator{entered: make(chan struct{}, 1), release: make(chan struct{})}
	r := NewRefresher(l, gen, newTestStore(), 0)

	done := make(chan error, 1)
	if err := r.Start(context.Background(), func(_ game.Result, err error) { done <- err }); err != nil {
		t.Fatalf("start: %v", err)
	}
	<-gen.entered
	if !r.Busy() {
		t.Fatalf("expected refresher busy")
	}
	if _, err := r.Refresh(context.Background()); !errors.Is(err, ErrRefreshInProgress) {
		t.Fatalf("expected in-progress rejection, got %v", err)
	}
	close(gen.release)
	if err := <-done; err != nil {
		t.Fatalf("background refresh: %v", err)
	}
	if r.Busy() {
		t.Fatalf("busy flag not cleared")
	}
}

func TestMapPromptSectors(t *testing.T) {
	prompt := MapPrompt(game.Buildings())
	for _, want := range []string{
		"a Livestock Market stone foundation at coordinates (150, 120) in the north-west sector",
		"a Steakhouse stone foundation at coordinates (980, 580) in the middle-east sector",
		"a Slaughterhouse stone foundation at coordinates (130, 640) in the south-west sector",
		"a Animal Pens stone foundation at coordinates (550, 80) in the north-center sector",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("map prompt missing %q", want)
		}
	}
}
