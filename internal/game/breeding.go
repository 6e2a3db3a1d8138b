package game

type MatingMode string

const (
	MatingNatural    MatingMode = "NATURAL"
	MatingArtificial MatingMode = "ARTIFICIAL"
)

const (
	naturalMatingEnergy    = 10
	artificialMatingEnergy = 60
	artificialMatingCost   = 500
)

// Mate starts a pregnancy on the female. The male, when given, is left as is.
func Mate(s GameState, maleID, femaleID string, mode MatingMode) (GameState, Result) {
	var energyCost, moneyCost int
	switch mode {
	case MatingNatural:
		energyCost = naturalMatingEnergy
		if maleID == "" {
			return s, invalidTarget("Natural mating needs a male.")
		}
		if _, _, ok := s.FindAnimal(maleID); !ok {
			return s, invalidTarget("No animal %q in the estate.", maleID)
		}
	case MatingArtificial:
		energyCost = artificialMatingEnergy
		moneyCost = artificialMatingCost
	default:
		return s, invalidTarget("Unknown mating mode %q.", mode)
	}

	female, idx, ok := s.FindAnimal(femaleID)
	if !ok {
		return s, invalidTarget("No animal %q in the estate.", femaleID)
	}
	if s.Energy < energyCost {
		return s, lacksEnergy(energyCost, s.Energy)
	}
	if s.Money < moneyCost {
		return s, lacksFunds(moneyCost, s.Money)
	}

	next := s.Clone()
	next.Energy -= energyCost
	next.Money -= moneyCost
	female.Pregnant = true
	female.PregnancyDays = 0
	next.Animals[idx] = female
	return next, succeeded("Propagating new bloodline: %s is expecting.", female.Name)
}
