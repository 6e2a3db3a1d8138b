package game

import "testing"

func TestNewGameStateHonoursZeroMoney(t *testing.T) {
	zero := 0
	s := NewGameState(NewFactory(3), StateConfig{Money: &zero})
	if s.Money != 0 {
		t.Fatalf("expected a penniless start, got %d", s.Money)
	}
}

func TestNewGameStateDefaults(t *testing.T) {
	s := NewGameState(NewFactory(3), StateConfig{})
	if s.Money != DefaultMoney {
		t.Fatalf("expected default money %d, got %d", DefaultMoney, s.Money)
	}
	if s.Energy != MaxEnergyDefault || s.MaxEnergy != MaxEnergyDefault {
		t.Fatalf("expected energy %d, got %d/%d", MaxEnergyDefault, s.Energy, s.MaxEnergy)
	}
	if s.Day != 1 || len(s.MarketAnimals) != MarketCapacity {
		t.Fatalf("expected day one with a full market, got day %d and %d offers", s.Day, len(s.MarketAnimals))
	}
	for _, b := range Buildings() {
		if s.BuildingLevels[b.ID] != 1 {
			t.Fatalf("expected %s at level 1, got %d", b.ID, s.BuildingLevels[b.ID])
		}
	}
}
