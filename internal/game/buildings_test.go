package game

import (
	"errors"
	"testing"
)

func TestUpgradeBuildingLadder(t *testing.T) {
	s := testState()
	s.Money = 500 + 1500 + 4000 + 10000

	for level := 1; level < MaxBuildingLevel; level++ {
		var res Result
		s, res = UpgradeBuilding(s, BuildingRestaurant)
		if !res.OK() {
			t.Fatalf("upgrade from %d failed: %v", level, res.Err)
		}
	}
	if s.BuildingLevels[BuildingRestaurant] != MaxBuildingLevel || s.Money != 0 {
		t.Fatalf("unexpected level=%d money=%d", s.BuildingLevels[BuildingRestaurant], s.Money)
	}
	if _, res := UpgradeBuilding(s, BuildingRestaurant); !errors.Is(res.Err, ErrCapacityReached) {
		t.Fatalf("expected max level capacity, got %v", res.Err)
	}
	if _, res := UpgradeBuilding(s, BuildingPen); !errors.Is(res.Err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", res.Err)
	}
	if _, res := UpgradeBuilding(s, BuildingID("CASTLE")); !errors.Is(res.Err, ErrInvalidTarget) {
		t.Fatalf("expected unknown building rejected")
	}
}

func TestMergeAssetsKeepsPreviousBackground(t *testing.T) {
	s := testState()
	s.MapBackground = "data:old"
	s.BuildingIcons[BuildingPen] = "data:pen-old"

	next, _ := MergeAssets(s, map[BuildingID]string{BuildingMarket: "data:market", BuildingPen: ""}, "")
	if next.MapBackground != "data:old" {
		t.Fatalf("empty background should keep previous")
	}
	if next.BuildingIcons[BuildingMarket] != "data:market" || next.BuildingIcons[BuildingPen] != "data:pen-old" {
		t.Fatalf("unexpected icons %+v", next.BuildingIcons)
	}
	if _, ok := s.BuildingIcons[BuildingMarket]; ok {
		t.Fatalf("input icons mutated")
	}
}

func TestMergeAssetsCountsOnlyMergedIcons(t *testing.T) {
	s := testState()

	_, res := MergeAssets(s, map[BuildingID]string{
		BuildingMarket: "data:market",
		BuildingPen:    "",
		BuildingShop:   "",
	}, "data:map")
	if !res.OK() {
		t.Fatalf("merge failed: %v", res.Err)
	}
	if res.Message != "Estate visuals updated: 1 icons." {
		t.Fatalf("unexpected message %q", res.Message)
	}

	_, res = MergeAssets(s, map[BuildingID]string{BuildingPen: ""}, "")
	if res.Message != "Estate visuals updated: 0 icons." {
		t.Fatalf("unexpected message %q", res.Message)
	}
}
