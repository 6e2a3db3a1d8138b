package game

import "slices"

func BuyAnimal(s GameState, animalID string) (GameState, Result) {
	animal, idx, ok := s.findMarketAnimal(animalID)
	if !ok {
		return s, invalidTarget("No animal %q on offer.", animalID)
	}
	price := Price(animal)
	if s.Money < price {
		return s, lacksFunds(price, s.Money)
	}

	next := s.Clone()
	next.Money -= price
	next.MarketAnimals = slices.Delete(next.MarketAnimals, idx, idx+1)
	animal.Location = LocationPen
	next.Animals = append(next.Animals, animal)
	return next, succeeded("Asset acquired: %s for $%d.", animal.Name, price)
}

// ResupplyMarket tops the market up to capacity for a flat fee.
func ResupplyMarket(f *Factory, s GameState) (GameState, Result) {
	missing := MarketCapacity - len(s.MarketAnimals)
	if missing <= 0 {
		return s, Result{Notice: NoticeInfo, Message: "Market is already fully stocked.", Err: ErrCapacityReached}
	}
	if s.Money < MarketRefreshCost {
		return s, lacksFunds(MarketRefreshCost, s.Money)
	}

	next := s.Clone()
	next.Money -= MarketRefreshCost
	next.MarketAnimals = append(next.MarketAnimals, f.marketBatch(s.Day, missing)...)
	return next, succeeded("Supply convoy arrived with %d new livestock.", missing)
}
