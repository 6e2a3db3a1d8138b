package game

// AdvanceDay closes the current day: animals grow, due pregnancies deliver,
// the market is restocked, energy refills and the daily expense is paid.
func AdvanceDay(f *Factory, s GameState) (GameState, Result) {
	next := s.Clone()
	tomorrow := s.Day + 1

	births := make([]Animal, 0)
	for i, a := range next.Animals {
		grown := f.Grow(a)
		if grown.Pregnant && grown.PregnancyDays >= grown.Spec().PregnancyDays {
			species := grown.Species
			births = append(births, f.NewAnimal(tomorrow, &species))
			grown.Pregnant = false
			grown.PregnancyDays = 0
		}
		next.Animals[i] = grown
	}
	next.Animals = append(next.Animals, births...)

	next.MarketAnimals = f.marketBatch(tomorrow, MarketCapacity)
	next.Day = tomorrow
	next.Energy = next.MaxEnergy
	next.Money -= DailyExpenses

	if len(births) > 0 {
		return next, informed("Day %d begins. %d newborn(s) joined the pens.", tomorrow, len(births))
	}
	return next, informed("Day %d begins. Resources replenished.", tomorrow)
}
