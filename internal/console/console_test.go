package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/appengine-ltd/farmstead/internal/game"
	"github.com/sirupsen/logrus/hooks/test"
)

func newTestConsole(t *testing.T, animals ...game.Animal) *Console {
	t.Helper()
	l, _ := test.NewNullLogger()
	f := game.NewFactory(11)
	money := 10000
	s := game.NewGameState(f, game.StateConfig{Money: &money})
	s.Animals = animals
	return New(l, game.NewStore(l, f, s), nil)
}

func pig(id, name string) game.Animal {
	return game.Animal{
		ID:       id,
		Species:  game.SpeciesPig,
		Name:     name,
		AgeDays:  1,
		Weight:   60,
		Quality:  50,
		Gender:   game.GenderFemale,
		Location: game.LocationPen,
	}
}

func mustApply(t *testing.T, c *Console, line string) Output {
	t.Helper()
	out := c.Execute(context.Background(), line)
	if out.Notice == game.NoticeError || strings.HasPrefix(out.Text, "Did you mean") {
		t.Fatalf("%q: expected the command to apply, got %+v", line, out)
	}
	return out
}

func TestSlaughterToTableScript(t *testing.T) {
	c := newTestConsole(t, pig("pig-a", "Pig #12"))

	mustApply(t, c, "slaughter pig 12")
	s := c.Store().Snapshot()
	if s.Inventory["PORK"] != 21 || s.Inventory["PIG_CORPSE"] != 1 || len(s.Animals) != 0 {
		t.Fatalf("unexpected slaughter outcome: %+v", s.Inventory)
	}

	for _, line := range []string{
		"dissect pig corpse",
		"extract outer hide",
		"extract pork loin",
		"cut pig liver",
		"extract eye of swine",
		"finish",
		"cook roast pork",
	} {
		mustApply(t, c, line)
	}
	s = c.Store().Snapshot()
	if s.Inventory["PIG_CORPSE"] != 0 || s.Dissection != nil {
		t.Fatalf("corpse not consumed: %+v", s.Inventory)
	}
	if s.Inventory["PORK"] != 30 || s.Inventory["ROAST_PORK"] != 2 || s.Inventory["EYE"] != 2 {
		t.Fatalf("unexpected inventory %+v", s.Inventory)
	}
	if s.Energy != 500-20-4*game.ExtractEnergyCost-15 {
		t.Fatalf("unexpected energy %d", s.Energy)
	}

	before := s.Money
	mustApply(t, c, "sell roast pork all")
	s = c.Store().Snapshot()
	if s.Inventory["ROAST_PORK"] != 0 || s.Money <= before {
		t.Fatalf("sale did not complete: money=%d stock=%d", s.Money, s.Inventory["ROAST_PORK"])
	}
}

func TestBuyByMarketPosition(t *testing.T) {
	c := newTestConsole(t)
	mustApply(t, c, "buy 1")
	s := c.Store().Snapshot()
	if len(s.Animals) != 1 || len(s.MarketAnimals) != game.MarketCapacity-1 {
		t.Fatalf("expected one purchase, got animals=%d market=%d", len(s.Animals), len(s.MarketAnimals))
	}
}

func TestRejectionsLeaveStateAlone(t *testing.T) {
	c := newTestConsole(t, pig("pig-a", "Pig #12"))
	before := c.Store().Snapshot()

	out := c.Execute(context.Background(), "extract outer hide")
	if out.Notice != game.NoticeError {
		t.Fatalf("expected error without a session, got %+v", out)
	}
	out = c.Execute(context.Background(), "mate pig 12 natural")
	if out.Notice != game.NoticeError {
		t.Fatalf("expected natural mating without a male to fail, got %+v", out)
	}
	after := c.Store().Snapshot()
	if after.Money != before.Money || after.Energy != before.Energy {
		t.Fatalf("state changed on rejection")
	}
}

func TestAmbiguousNameAsksBack(t *testing.T) {
	c := newTestConsole(t, pig("pig-a", "Pig #12"), pig("pig-b", "Pig #40"))
	out := c.Execute(context.Background(), "pet pig")
	if !strings.HasPrefix(out.Text, "Did you mean pet?") || !strings.Contains(out.Text, "pet pig 12") {
		t.Fatalf("expected clarify, got %q", out.Text)
	}
}

func TestPronounFollowsLastAnimal(t *testing.T) {
	c := newTestConsole(t, pig("pig-a", "Pig #12"), pig("pig-b", "Pig #40"))
	mustApply(t, c, "move pig 40 house")
	mustApply(t, c, "pet it")
	a, _, _ := c.Store().Snapshot().FindAnimal("pig-b")
	if !a.IsPet || a.Location != game.LocationHouse {
		t.Fatalf("expected pig 40 adopted in the house, got %+v", a)
	}
}

type fakeVisuals struct{}

func (fakeVisuals) Start(_ context.Context, done func(game.Result, error)) error {
	done(game.Result{Notice: game.NoticeSuccess}, nil)
	return nil
}

func TestVisualsReportThroughNotices(t *testing.T) {
	c := newTestConsole(t)
	if out := c.Execute(context.Background(), "visuals"); out.Notice != game.NoticeError {
		t.Fatalf("expected error without a generator, got %+v", out)
	}

	c.visuals = fakeVisuals{}
	c.Execute(context.Background(), "visuals")
	notices := c.Notices()
	if len(notices) != 1 || notices[0].Notice != game.NoticeSuccess {
		t.Fatalf("expected one success notice, got %+v", notices)
	}
}

func TestRunLoop(t *testing.T) {
	c := newTestConsole(t)
	var out bytes.Buffer
	if err := c.Run(context.Background(), strings.NewReader("status\nsleep\nquit\nstatus\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Day 1 | $10000") || !strings.Contains(text, "Day 2 begins") || !strings.Contains(text, "Farewell.") {
		t.Fatalf("unexpected transcript:\n%s", text)
	}
	if c.Store().Snapshot().Day != 2 {
		t.Fatalf("expected day 2")
	}
}

func TestShopHugeQuantityIsRefused(t *testing.T) {
	c := newTestConsole(t)
	before := c.Store().Snapshot()

	out := c.Execute(context.Background(), "shop iron cleaver 18446744073709552")
	if out.Notice != game.NoticeError {
		t.Fatalf("expected refusal, got %+v", out)
	}
	after := c.Store().Snapshot()
	if after.Money != before.Money || after.Inventory["IRON_CLEAVER"] != 0 {
		t.Fatalf("state changed: money=%d cleavers=%d", after.Money, after.Inventory["IRON_CLEAVER"])
	}
}
