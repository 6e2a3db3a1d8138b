package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuyChickenScenario(t *testing.T) {
	f := NewFactory(42)
	s := testState()
	chicken := f.NewAnimal(1, speciesPtr(SpeciesChicken))
	s.MarketAnimals = []Animal{chicken, f.NewAnimal(1, nil)}
	price := Price(chicken)

	next, res := BuyAnimal(s, chicken.ID)
	if !res.OK() {
		t.Fatalf("buy failed: %v", res.Err)
	}
	if next.Money != 999999-price {
		t.Fatalf("expected money %d, got %d", 999999-price, next.Money)
	}
	got, _, ok := next.FindAnimal(chicken.ID)
	if !ok || got.Location != LocationPen {
		t.Fatalf("expected chicken in pen, got %+v ok=%v", got, ok)
	}
	if _, _, onOffer := next.findMarketAnimal(chicken.ID); onOffer {
		t.Fatalf("chicken still on offer after purchase")
	}
	if len(next.MarketAnimals) != 1 {
		t.Fatalf("expected one animal left on offer, got %d", len(next.MarketAnimals))
	}
	if len(s.MarketAnimals) != 2 || len(s.Animals) != 0 {
		t.Fatalf("input state mutated")
	}
}

func TestBuyAnimalInsufficientFundsLeavesStateUnchanged(t *testing.T) {
	f := NewFactory(1)
	s := testState()
	cow := f.NewAnimal(1, speciesPtr(SpeciesCow))
	s.MarketAnimals = []Animal{cow}
	s.Money = Price(cow) - 1
	before := s.Clone()

	next, res := BuyAnimal(s, cow.ID)
	if !errors.Is(res.Err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", res.Err)
	}
	if !reflect.DeepEqual(next, before) {
		t.Fatalf("state changed on failed purchase")
	}
}

func TestBuyAnimalUnknownID(t *testing.T) {
	_, res := BuyAnimal(testState(), "ghost")
	if !errors.Is(res.Err, ErrInvalidTarget) {
		t.Fatalf("expected invalid target, got %v", res.Err)
	}
}

func TestResupplyMarket(t *testing.T) {
	f := NewFactory(9)
	s := testState()
	s.Day = 6
	s.MarketAnimals = []Animal{f.NewAnimal(2, nil)}

	next, res := ResupplyMarket(f, s)
	if !res.OK() {
		t.Fatalf("resupply failed: %v", res.Err)
	}
	if len(next.MarketAnimals) != MarketCapacity {
		t.Fatalf("expected full market, got %d", len(next.MarketAnimals))
	}
	if next.Money != s.Money-MarketRefreshCost {
		t.Fatalf("expected refresh cost deducted")
	}
	for _, a := range next.MarketAnimals[1:] {
		if a.AcquiredAt != 6 {
			t.Fatalf("expected new stock tagged day 6, got %d", a.AcquiredAt)
		}
	}

	again, res := ResupplyMarket(f, next)
	if !errors.Is(res.Err, ErrCapacityReached) || res.Notice != NoticeInfo {
		t.Fatalf("expected capacity info, got %+v", res)
	}
	if again.Money != next.Money {
		t.Fatalf("full market should not charge")
	}
}

func TestResupplyMarketNeedsFunds(t *testing.T) {
	f := NewFactory(9)
	s := testState()
	s.Money = MarketRefreshCost - 1

	next, res := ResupplyMarket(f, s)
	if !errors.Is(res.Err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", res.Err)
	}
	if len(next.MarketAnimals) != 0 {
		t.Fatalf("market should stay empty")
	}
}
