package game

const MaxBuildingLevel = 5

var buildingUpgradeCosts = map[int]int{
	1: 500,
	2: 1500,
	3: 4000,
	4: 10000,
	5: 25000,
}

// UpgradeCost is the price of moving a building off level.
func UpgradeCost(level int) int {
	return buildingUpgradeCosts[level]
}

func UpgradeBuilding(s GameState, id BuildingID) (GameState, Result) {
	b, ok := BuildingByID(id)
	if !ok {
		return s, invalidTarget("No building %q.", id)
	}
	level := max(1, s.BuildingLevels[id])
	if level >= MaxBuildingLevel {
		return s, Result{Notice: NoticeInfo, Message: b.Label + " is already at the top level.", Err: ErrCapacityReached}
	}
	cost := UpgradeCost(level)
	if s.Money < cost {
		return s, lacksFunds(cost, s.Money)
	}

	next := s.Clone()
	next.Money -= cost
	next.BuildingLevels[id] = level + 1
	return next, succeeded("%s upgraded to level %d.", b.Label, level+1)
}

// MergeAssets folds generated imagery into the state. Icons overwrite by
// building; an empty background keeps the previous one.
func MergeAssets(s GameState, icons map[BuildingID]string, background string) (GameState, Result) {
	next := s.Clone()
	merged := 0
	for id, ref := range icons {
		if ref == "" {
			continue
		}
		next.BuildingIcons[id] = ref
		merged++
	}
	if background != "" {
		next.MapBackground = background
	}
	return next, succeeded("Estate visuals updated: %d icons.", merged)
}
