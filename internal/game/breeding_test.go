package game

import (
	"errors"
	"testing"
)

func TestNaturalMating(t *testing.T) {
	s := testState()
	boar := testAnimal("boar", SpeciesPig, 50, 50)
	boar.Gender = GenderMale
	s.Animals = []Animal{boar, testAnimal("sow", SpeciesPig, 50, 50)}

	next, res := Mate(s, "boar", "sow", MatingNatural)
	if !res.OK() {
		t.Fatalf("mating failed: %v", res.Err)
	}
	sow, _, _ := next.FindAnimal("sow")
	if !sow.Pregnant || sow.PregnancyDays != 0 {
		t.Fatalf("expected sow pregnant, got %+v", sow)
	}
	male, _, _ := next.FindAnimal("boar")
	if male != boar {
		t.Fatalf("male should be untouched")
	}
	if next.Energy != 490 || next.Money != s.Money {
		t.Fatalf("unexpected costs: energy=%d money=%d", next.Energy, next.Money)
	}
}

func TestArtificialMatingCosts(t *testing.T) {
	s := testState()
	s.Animals = []Animal{testAnimal("cow", SpeciesCow, 300, 70)}

	next, res := Mate(s, "", "cow", MatingArtificial)
	if !res.OK() {
		t.Fatalf("mating failed: %v", res.Err)
	}
	if next.Energy != 440 || next.Money != s.Money-500 {
		t.Fatalf("unexpected costs: energy=%d money=%d", next.Energy, next.Money)
	}

	s.Money = 499
	if _, res := Mate(s, "", "cow", MatingArtificial); !errors.Is(res.Err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", res.Err)
	}
	s.Money = 1000
	s.Energy = 59
	if _, res := Mate(s, "", "cow", MatingArtificial); !errors.Is(res.Err, ErrInsufficientEnergy) {
		t.Fatalf("expected insufficient energy, got %v", res.Err)
	}
}

func TestNaturalMatingNeedsMale(t *testing.T) {
	s := testState()
	s.Animals = []Animal{testAnimal("ewe", SpeciesSheep, 20, 60)}
	if _, res := Mate(s, "", "ewe", MatingNatural); !errors.Is(res.Err, ErrInvalidTarget) {
		t.Fatalf("expected missing male rejected, got %v", res.Err)
	}
}
