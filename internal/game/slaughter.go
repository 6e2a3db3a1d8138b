package game

import (
	"math"
	"slices"
)

type SlaughterMethod string

const (
	MethodStandard   SlaughterMethod = "STANDARD"
	MethodIndustrial SlaughterMethod = "INDUSTRIAL"
	MethodArtisan    SlaughterMethod = "ARTISAN"
)

var slaughterCosts = map[SlaughterMethod]int{
	MethodStandard:   20,
	MethodIndustrial: 50,
	MethodArtisan:    40,
}

// SlaughterCost falls back to the standard cost for unknown methods.
func SlaughterCost(method SlaughterMethod) int {
	if cost, ok := slaughterCosts[method]; ok {
		return cost
	}
	return slaughterCosts[MethodStandard]
}

func Slaughter(s GameState, animalID string, method SlaughterMethod) (GameState, Result) {
	animal, idx, ok := s.FindAnimal(animalID)
	if !ok {
		return s, invalidTarget("No animal %q in the estate.", animalID)
	}
	cost := SlaughterCost(method)
	if s.Energy < cost {
		return s, lacksEnergy(cost, s.Energy)
	}

	spec := animal.Spec()
	meat := int(math.Floor(animal.Weight * spec.Outputs.MeatRatio / 2))
	byproduct := int(math.Floor(spec.Outputs.ByproductRatio * float64(animal.Quality) / 50))

	next := s.Clone()
	next.Energy -= cost
	next.Animals = slices.Delete(next.Animals, idx, idx+1)
	next.Inventory[spec.Outputs.Meat] += meat
	next.Inventory[spec.Outputs.Byproduct] += byproduct
	next.Inventory[spec.Outputs.Corpse]++
	return next, succeeded("Material extraction complete: %d meat, %d byproduct, 1 corpse.", meat, byproduct)
}
