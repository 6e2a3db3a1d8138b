package game

import "math"

const EnhanceCost = 100

type EnhanceKind string

const (
	EnhanceWeight  EnhanceKind = "WEIGHT"
	EnhanceQuality EnhanceKind = "QUALITY"
)

func Enhance(s GameState, animalID string, kind EnhanceKind) (GameState, Result) {
	if kind != EnhanceWeight && kind != EnhanceQuality {
		return s, invalidTarget("Unknown enhancement %q.", kind)
	}
	animal, idx, ok := s.FindAnimal(animalID)
	if !ok {
		return s, invalidTarget("No animal %q in the estate.", animalID)
	}
	if s.Money < EnhanceCost {
		return s, lacksFunds(EnhanceCost, s.Money)
	}

	next := s.Clone()
	next.Money -= EnhanceCost
	switch kind {
	case EnhanceWeight:
		animal.Weight = math.Min(animal.Spec().WeightCap(), animal.Weight+2)
	case EnhanceQuality:
		animal.Quality = min(100, animal.Quality+5)
	}
	next.Animals[idx] = animal
	return next, succeeded("Specimen properties optimized: %s.", animal.Name)
}

func Relocate(s GameState, animalID string, loc Location) (GameState, Result) {
	if !loc.Valid() {
		return s, invalidTarget("Unknown location %q.", loc)
	}
	animal, idx, ok := s.FindAnimal(animalID)
	if !ok {
		return s, invalidTarget("No animal %q in the estate.", animalID)
	}

	next := s.Clone()
	animal.Location = loc
	next.Animals[idx] = animal
	return next, informed("Asset redeployed to %s.", loc)
}

// AdoptPet marks an animal as a household pet.
func AdoptPet(s GameState, animalID string) (GameState, Result) {
	animal, idx, ok := s.FindAnimal(animalID)
	if !ok {
		return s, invalidTarget("No animal %q in the estate.", animalID)
	}

	next := s.Clone()
	animal.IsPet = true
	next.Animals[idx] = animal
	return next, succeeded("%s is now an official pet.", animal.Name)
}
