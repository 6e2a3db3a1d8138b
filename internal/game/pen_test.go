package game

import (
	"errors"
	"testing"
)

func TestEnhanceWeightCapsAtSpeciesCeiling(t *testing.T) {
	s := testState()
	spec, _ := SpeciesByID(SpeciesChicken)
	s.Animals = []Animal{testAnimal("hen", SpeciesChicken, spec.WeightCap()-0.5, 50)}

	next, res := Enhance(s, "hen", EnhanceWeight)
	if !res.OK() {
		t.Fatalf("enhance failed: %v", res.Err)
	}
	if got := next.Animals[0].Weight; got != spec.WeightCap() {
		t.Fatalf("expected weight capped at %.2f, got %.2f", spec.WeightCap(), got)
	}
	if next.Money != s.Money-EnhanceCost {
		t.Fatalf("expected %d deducted", EnhanceCost)
	}
}

func TestEnhanceQualityCapsAt100(t *testing.T) {
	s := testState()
	s.Animals = []Animal{testAnimal("cow", SpeciesCow, 100, 98)}

	next, _ := Enhance(s, "cow", EnhanceQuality)
	if next.Animals[0].Quality != 100 {
		t.Fatalf("expected quality 100, got %d", next.Animals[0].Quality)
	}
	if s.Animals[0].Quality != 98 {
		t.Fatalf("input animal mutated")
	}
}

func TestEnhanceFailures(t *testing.T) {
	s := testState()
	s.Animals = []Animal{testAnimal("cow", SpeciesCow, 100, 50)}

	if _, res := Enhance(s, "ghost", EnhanceWeight); !errors.Is(res.Err, ErrInvalidTarget) {
		t.Fatalf("expected invalid target for missing animal, got %v", res.Err)
	}
	s.Money = EnhanceCost - 1
	next, res := Enhance(s, "cow", EnhanceQuality)
	if !errors.Is(res.Err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", res.Err)
	}
	if next.Animals[0].Quality != 50 || next.Money != EnhanceCost-1 {
		t.Fatalf("state changed on failure")
	}
}

func TestRelocateAndAdoptPet(t *testing.T) {
	s := testState()
	s.Animals = []Animal{testAnimal("ewe", SpeciesSheep, 10, 60)}

	next, res := Relocate(s, "ewe", LocationHouse)
	if !res.OK() || next.Animals[0].Location != LocationHouse {
		t.Fatalf("expected ewe in house, got %+v (%v)", next.Animals[0], res.Err)
	}
	if _, res := Relocate(s, "ewe", Location("ROOF")); !errors.Is(res.Err, ErrInvalidTarget) {
		t.Fatalf("expected invalid location rejection")
	}
	if _, res := Relocate(s, "ghost", LocationPen); !errors.Is(res.Err, ErrInvalidTarget) {
		t.Fatalf("expected missing animal rejection")
	}

	next, res = AdoptPet(next, "ewe")
	if !res.OK() || !next.Animals[0].IsPet {
		t.Fatalf("expected ewe to be a pet")
	}
	if len(next.AnimalsAt(LocationHouse)) != 1 {
		t.Fatalf("expected one animal in house")
	}
}
