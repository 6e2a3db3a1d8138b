package game

import (
	"maps"
	"slices"
)

const (
	MaxEnergyDefault  = 500
	DailyExpenses     = 50
	MarketCapacity    = 4
	MarketRefreshCost = 100
	DefaultMoney      = 999999
)

type DissectionSession struct {
	CorpseItemID   string   `json:"corpse_item_id"`
	Species        Species  `json:"species"`
	ExtractedParts []string `json:"extracted_parts"`
}

func (d DissectionSession) Extracted(partID string) bool {
	return slices.Contains(d.ExtractedParts, partID)
}

// Complete reports whether every part of the species has been removed.
func (d DissectionSession) Complete() bool {
	return len(d.ExtractedParts) >= len(anatomy[d.Species])
}

type GameState struct {
	Day            int                   `json:"day"`
	Money          int                   `json:"money"`
	Energy         int                   `json:"energy"`
	MaxEnergy      int                   `json:"max_energy"`
	Animals        []Animal              `json:"animals"`
	Inventory      map[string]int        `json:"inventory"`
	MarketAnimals  []Animal              `json:"market_animals"`
	BuildingLevels map[BuildingID]int    `json:"building_levels"`
	BuildingIcons  map[BuildingID]string `json:"building_icons,omitempty"`
	MapBackground  string                `json:"map_background,omitempty"`
	Dissection     *DissectionSession    `json:"dissection,omitempty"`
}

type StateConfig struct {
	// Money is the opening balance; nil means DefaultMoney. Zero is a valid
	// choice.
	Money     *int
	MaxEnergy int
}

// NewGameState builds day one with a freshly stocked market.
func NewGameState(f *Factory, cfg StateConfig) GameState {
	if cfg.MaxEnergy <= 0 {
		cfg.MaxEnergy = MaxEnergyDefault
	}
	money := DefaultMoney
	if cfg.Money != nil {
		money = *cfg.Money
	}
	levels := make(map[BuildingID]int, len(buildings))
	for _, b := range buildings {
		levels[b.ID] = 1
	}
	return GameState{
		Day:            1,
		Money:          money,
		Energy:         cfg.MaxEnergy,
		MaxEnergy:      cfg.MaxEnergy,
		Inventory:      map[string]int{},
		MarketAnimals:  f.marketBatch(1, MarketCapacity),
		BuildingLevels: levels,
		BuildingIcons:  map[BuildingID]string{},
	}
}

// Clone returns a deep copy; transitions always work on one.
func (s GameState) Clone() GameState {
	out := s
	out.Animals = slices.Clone(s.Animals)
	out.MarketAnimals = slices.Clone(s.MarketAnimals)
	out.Inventory = maps.Clone(s.Inventory)
	if out.Inventory == nil {
		out.Inventory = map[string]int{}
	}
	out.BuildingLevels = maps.Clone(s.BuildingLevels)
	if out.BuildingLevels == nil {
		out.BuildingLevels = map[BuildingID]int{}
	}
	out.BuildingIcons = maps.Clone(s.BuildingIcons)
	if out.BuildingIcons == nil {
		out.BuildingIcons = map[BuildingID]string{}
	}
	if s.Dissection != nil {
		session := *s.Dissection
		session.ExtractedParts = slices.Clone(s.Dissection.ExtractedParts)
		out.Dissection = &session
	}
	return out
}

func (s GameState) FindAnimal(id string) (Animal, int, bool) {
	for i, a := range s.Animals {
		if a.ID == id {
			return a, i, true
		}
	}
	return Animal{}, -1, false
}

func (s GameState) findMarketAnimal(id string) (Animal, int, bool) {
	for i, a := range s.MarketAnimals {
		if a.ID == id {
			return a, i, true
		}
	}
	return Animal{}, -1, false
}

// AnimalsAt lists live animals assigned to a zone.
func (s GameState) AnimalsAt(loc Location) []Animal {
	out := make([]Animal, 0, len(s.Animals))
	for _, a := range s.Animals {
		if a.Location == loc {
			out = append(out, a)
		}
	}
	return out
}

func (s GameState) Count(itemID string) int {
	return s.Inventory[itemID]
}
