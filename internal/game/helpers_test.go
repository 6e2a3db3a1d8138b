package game

func testState() GameState {
	levels := make(map[BuildingID]int, len(buildings))
	for _, b := range buildings {
		levels[b.ID] = 1
	}
	return GameState{
		Day:            1,
		Money:          999999,
		Energy:         500,
		MaxEnergy:      500,
		Inventory:      map[string]int{},
		BuildingLevels: levels,
		BuildingIcons:  map[BuildingID]string{},
	}
}

func testAnimal(id string, species Species, weight float64, quality int) Animal {
	return Animal{
		ID:       id,
		Species:  species,
		Name:     id,
		AgeDays:  1,
		Weight:   weight,
		Quality:  quality,
		Gender:   GenderFemale,
		Location: LocationPen,
	}
}

func speciesPtr(s Species) *Species {
	return &s
}
