package game

import "fmt"

type Species string

const (
	SpeciesChicken Species = "CHICKEN"
	SpeciesPig     Species = "PIG"
	SpeciesSheep   Species = "SHEEP"
	SpeciesCow     Species = "COW"
)

// AllSpecies is the fixed draw order used by the factory.
var AllSpecies = []Species{SpeciesChicken, SpeciesPig, SpeciesSheep, SpeciesCow}

type SpeciesOutputs struct {
	Meat           string
	Byproduct      string
	Corpse         string
	MeatRatio      float64
	ByproductRatio float64
}

type SpeciesSpec struct {
	ID            Species
	Name          string
	BasePrice     int
	GrowthRate    float64
	MaxWeight     float64
	BaseQuality   int
	PregnancyDays int
	Outputs       SpeciesOutputs
}

// WeightCap is the hard ceiling for an animal's weight.
func (s SpeciesSpec) WeightCap() float64 {
	return s.MaxWeight * 1.1
}

var speciesCatalog = map[Species]SpeciesSpec{
	SpeciesChicken: {
		ID:            SpeciesChicken,
		Name:          "Chicken",
		BasePrice:     50,
		GrowthRate:    0.5,
		MaxWeight:     5,
		BaseQuality:   50,
		PregnancyDays: 2,
		Outputs:       SpeciesOutputs{Meat: "CHICKEN_MEAT", Byproduct: "FEATHERS", Corpse: "CHICKEN_CORPSE", MeatRatio: 0.6, ByproductRatio: 2},
	},
	SpeciesPig: {
		ID:            SpeciesPig,
		Name:          "Pig",
		BasePrice:     200,
		GrowthRate:    2,
		MaxWeight:     120,
		BaseQuality:   50,
		PregnancyDays: 4,
		Outputs:       SpeciesOutputs{Meat: "PORK", Byproduct: "PIG_SKIN", Corpse: "PIG_CORPSE", MeatRatio: 0.7, ByproductRatio: 1},
	},
	SpeciesSheep: {
		ID:            SpeciesSheep,
		Name:          "Sheep",
		BasePrice:     300,
		GrowthRate:    1.5,
		MaxWeight:     80,
		BaseQuality:   60,
		PregnancyDays: 4,
		Outputs:       SpeciesOutputs{Meat: "MUTTON", Byproduct: "WOOL", Corpse: "SHEEP_CORPSE", MeatRatio: 0.5, ByproductRatio: 3},
	},
	SpeciesCow: {
		ID:            SpeciesCow,
		Name:          "Cow",
		BasePrice:     500,
		GrowthRate:    3,
		MaxWeight:     600,
		BaseQuality:   70,
		PregnancyDays: 6,
		Outputs:       SpeciesOutputs{Meat: "BEEF", Byproduct: "LEATHER", Corpse: "COW_CORPSE", MeatRatio: 0.6, ByproductRatio: 1},
	},
}

func SpeciesByID(id Species) (SpeciesSpec, bool) {
	spec, ok := speciesCatalog[id]
	return spec, ok
}

// corpseSpecies maps a corpse item to the species it came from.
var corpseSpecies = map[string]Species{
	"CHICKEN_CORPSE": SpeciesChicken,
	"PIG_CORPSE":     SpeciesPig,
	"SHEEP_CORPSE":   SpeciesSheep,
	"COW_CORPSE":     SpeciesCow,
}

func SpeciesForCorpse(itemID string) (Species, bool) {
	species, ok := corpseSpecies[itemID]
	return species, ok
}

type ItemCategory string

const (
	CategoryMeat      ItemCategory = "MEAT"
	CategoryByproduct ItemCategory = "BYPRODUCT"
	CategoryDish      ItemCategory = "DISH"
	CategoryGoods     ItemCategory = "GOODS"
	CategoryCorpse    ItemCategory = "CORPSE"
	CategoryTool      ItemCategory = "TOOL"
	CategoryFood      ItemCategory = "FOOD"
	CategoryOrgan     ItemCategory = "ORGAN"
)

type ItemSpec struct {
	ID       string
	Name     string
	Category ItemCategory
	Price    int
	// BuyPrice is zero for items the shop does not stock.
	BuyPrice int
}

func (i ItemSpec) Purchasable() bool {
	return i.BuyPrice > 0
}

var itemCatalog = []ItemSpec{
	{ID: "CHICKEN_MEAT", Name: "Raw Chicken", Category: CategoryMeat, Price: 10},
	{ID: "PORK", Name: "Raw Pork", Category: CategoryMeat, Price: 25},
	{ID: "BEEF", Name: "Raw Beef", Category: CategoryMeat, Price: 50},
	{ID: "MUTTON", Name: "Raw Mutton", Category: CategoryMeat, Price: 35},
	{ID: "FEATHERS", Name: "Feathers", Category: CategoryByproduct, Price: 5},
	{ID: "PIG_SKIN", Name: "Pig Skin", Category: CategoryByproduct, Price: 10},
	{ID: "LEATHER", Name: "Raw Hide", Category: CategoryByproduct, Price: 20},
	{ID: "WOOL", Name: "Wool", Category: CategoryByproduct, Price: 15},
	{ID: "FRIED_CHICKEN", Name: "Fried Chicken", Category: CategoryDish, Price: 45},
	{ID: "ROAST_PORK", Name: "Roast Pork", Category: CategoryDish, Price: 90},
	{ID: "STEAK", Name: "Premium Steak", Category: CategoryDish, Price: 180},
	{ID: "LAMB_CHOPS", Name: "Lamb Chops", Category: CategoryDish, Price: 120},
	{ID: "PILLOW", Name: "Pillow", Category: CategoryGoods, Price: 60},
	{ID: "FOOTBALL", Name: "Football", Category: CategoryGoods, Price: 80},
	{ID: "WALLET", Name: "Wallet", Category: CategoryGoods, Price: 150},
	{ID: "SWEATER", Name: "Sweater", Category: CategoryGoods, Price: 100},
	{ID: "TROPHY_MOUNT", Name: "Animal Mount", Category: CategoryGoods, Price: 400},
	{ID: "CHICKEN_CORPSE", Name: "Chicken Corpse", Category: CategoryCorpse, Price: 30},
	{ID: "PIG_CORPSE", Name: "Pig Corpse", Category: CategoryCorpse, Price: 120},
	{ID: "SHEEP_CORPSE", Name: "Sheep Corpse", Category: CategoryCorpse, Price: 180},
	{ID: "COW_CORPSE", Name: "Cow Corpse", Category: CategoryCorpse, Price: 350},
	{ID: "BASIC_FEED", Name: "Standard Feed", Category: CategoryFood, Price: 5, BuyPrice: 20},
	{ID: "PREMIUM_FEED", Name: "Premium Grain", Category: CategoryFood, Price: 20, BuyPrice: 75},
	{ID: "IRON_CLEAVER", Name: "Iron Cleaver", Category: CategoryTool, Price: 100, BuyPrice: 500},
	{ID: "ENERGY_DRINK", Name: "Red Cow Drink", Category: CategoryFood, Price: 15, BuyPrice: 50},
	{ID: "LIVER", Name: "Prime Liver", Category: CategoryOrgan, Price: 60},
	{ID: "HEART_ORG", Name: "Pure Heart", Category: CategoryOrgan, Price: 100},
	{ID: "KIDNEY", Name: "Clean Kidney", Category: CategoryOrgan, Price: 50},
	{ID: "EYE", Name: "Glistening Eye", Category: CategoryOrgan, Price: 80},
}

var itemIndex = func() map[string]ItemSpec {
	out := make(map[string]ItemSpec, len(itemCatalog))
	for _, item := range itemCatalog {
		out[item.ID] = item
	}
	return out
}()

func ItemCatalog() []ItemSpec {
	out := make([]ItemSpec, len(itemCatalog))
	copy(out, itemCatalog)
	return out
}

func ItemByID(id string) (ItemSpec, bool) {
	item, ok := itemIndex[id]
	return item, ok
}

// ShopItems lists the catalog entries the general store sells, in shelf order.
func ShopItems() []ItemSpec {
	out := make([]ItemSpec, 0, 4)
	for _, item := range itemCatalog {
		if item.Purchasable() {
			out = append(out, item)
		}
	}
	return out
}

type ItemCount struct {
	ItemID string
	Count  int
}

type Recipe struct {
	ID         string
	Name       string
	Inputs     []ItemCount
	Output     ItemCount
	EnergyCost int
	UnlockCost int
}

var cookingRecipes = []Recipe{
	{ID: "R_CHICKEN", Name: "Fry Chicken", Inputs: []ItemCount{{ItemID: "CHICKEN_MEAT", Count: 1}}, Output: ItemCount{ItemID: "FRIED_CHICKEN", Count: 2}, EnergyCost: 10},
	{ID: "R_PORK", Name: "Roast Pork", Inputs: []ItemCount{{ItemID: "PORK", Count: 1}}, Output: ItemCount{ItemID: "ROAST_PORK", Count: 2}, EnergyCost: 15, UnlockCost: 100},
	{ID: "R_SHEEP", Name: "Grill Lamb", Inputs: []ItemCount{{ItemID: "MUTTON", Count: 1}}, Output: ItemCount{ItemID: "LAMB_CHOPS", Count: 2}, EnergyCost: 15, UnlockCost: 150},
	{ID: "R_COW", Name: "Grill Steak", Inputs: []ItemCount{{ItemID: "BEEF", Count: 1}}, Output: ItemCount{ItemID: "STEAK", Count: 3}, EnergyCost: 25, UnlockCost: 500},
}

var craftingRecipes = []Recipe{
	{ID: "C_PILLOW", Name: "Sew Pillow", Inputs: []ItemCount{{ItemID: "FEATHERS", Count: 5}}, Output: ItemCount{ItemID: "PILLOW", Count: 1}, EnergyCost: 10},
	{ID: "C_FOOTBALL", Name: "Stitch Football", Inputs: []ItemCount{{ItemID: "PIG_SKIN", Count: 2}}, Output: ItemCount{ItemID: "FOOTBALL", Count: 1}, EnergyCost: 15, UnlockCost: 200},
	{ID: "C_SWEATER", Name: "Knit Sweater", Inputs: []ItemCount{{ItemID: "WOOL", Count: 3}}, Output: ItemCount{ItemID: "SWEATER", Count: 1}, EnergyCost: 20, UnlockCost: 200},
	{ID: "C_WALLET", Name: "Craft Wallet", Inputs: []ItemCount{{ItemID: "LEATHER", Count: 1}}, Output: ItemCount{ItemID: "WALLET", Count: 2}, EnergyCost: 25, UnlockCost: 500},
}

func CookingRecipes() []Recipe {
	return append([]Recipe(nil), cookingRecipes...)
}

func CraftingRecipes() []Recipe {
	return append([]Recipe(nil), craftingRecipes...)
}

func findRecipe(recipes []Recipe, id string) (Recipe, bool) {
	for _, recipe := range recipes {
		if recipe.ID == id {
			return recipe, true
		}
	}
	return Recipe{}, false
}

type DissectionPart struct {
	ID          string
	Label       string
	OutputItem  string
	OutputCount int
	Requires    []string
}

var anatomy = map[Species][]DissectionPart{
	SpeciesChicken: {
		{ID: "c_wing_l", Label: "Left Wing", OutputItem: "FEATHERS", OutputCount: 5},
		{ID: "c_wing_r", Label: "Right Wing", OutputItem: "FEATHERS", OutputCount: 5},
		{ID: "c_breast", Label: "Breast Meat", OutputItem: "CHICKEN_MEAT", OutputCount: 4},
		{ID: "c_heart", Label: "Chicken Heart", OutputItem: "HEART_ORG", OutputCount: 1, Requires: []string{"c_breast"}},
	},
	SpeciesPig: {
		{ID: "p_skin", Label: "Outer Hide", OutputItem: "PIG_SKIN", OutputCount: 5},
		{ID: "p_loin", Label: "Pork Loin", OutputItem: "PORK", OutputCount: 10, Requires: []string{"p_skin"}},
		{ID: "p_liver", Label: "Pig Liver", OutputItem: "LIVER", OutputCount: 1, Requires: []string{"p_skin"}},
		{ID: "p_eye", Label: "Eye of Swine", OutputItem: "EYE", OutputCount: 2},
	},
	SpeciesSheep: {
		{ID: "s_wool", Label: "Thick Wool", OutputItem: "WOOL", OutputCount: 8},
		{ID: "s_ribs", Label: "Lamb Ribs", OutputItem: "MUTTON", OutputCount: 12, Requires: []string{"s_wool"}},
		{ID: "s_heart", Label: "Sheep Heart", OutputItem: "HEART_ORG", OutputCount: 1, Requires: []string{"s_wool"}},
	},
	SpeciesCow: {
		{ID: "cow_hide", Label: "Vast Hide", OutputItem: "LEATHER", OutputCount: 10},
		{ID: "cow_tenderloin", Label: "Tenderloin", OutputItem: "BEEF", OutputCount: 20, Requires: []string{"cow_hide"}},
		{ID: "cow_liver", Label: "Huge Liver", OutputItem: "LIVER", OutputCount: 2, Requires: []string{"cow_hide"}},
		{ID: "cow_kidney", Label: "Kidney", OutputItem: "KIDNEY", OutputCount: 1, Requires: []string{"cow_hide"}},
	},
}

func DissectionParts(species Species) []DissectionPart {
	return append([]DissectionPart(nil), anatomy[species]...)
}

func dissectionPart(species Species, partID string) (DissectionPart, bool) {
	for _, part := range anatomy[species] {
		if part.ID == partID {
			return part, true
		}
	}
	return DissectionPart{}, false
}

type BuildingID string

const (
	BuildingMarket     BuildingID = "MARKET"
	BuildingPen        BuildingID = "PEN"
	BuildingBreeding   BuildingID = "BREEDING"
	BuildingShop       BuildingID = "SHOP"
	BuildingHouse      BuildingID = "HOUSE"
	BuildingSlaughter  BuildingID = "SLAUGHTER"
	BuildingWorkshop   BuildingID = "WORKSHOP"
	BuildingRestaurant BuildingID = "RESTAURANT"
)

// Estate map size in layout units; building X and Y fall inside it.
const (
	MapWidth  = 1400
	MapHeight = 900
)

type Building struct {
	ID     BuildingID
	Label  string
	X, Y   int
	Width  int
	Height int
	Color  string
	Prompt string
}

const buildingPromptStyle = "Age of Empires II style, 45-degree isometric building sprite, %s, 2D equidistant view, sharp sprite art, white background"

var buildings = []Building{
	{ID: BuildingMarket, Label: "Livestock Market", X: 150, Y: 120, Width: 180, Height: 180, Color: "blue", Prompt: "medieval market stall with wooden crates and blue canvas roof, stone base"},
	{ID: BuildingPen, Label: "Animal Pens", X: 550, Y: 80, Width: 180, Height: 180, Color: "green", Prompt: "medieval farm barn, stone walls, timber frames, thatched roof"},
	{ID: BuildingBreeding, Label: "Breeding Center", X: 950, Y: 140, Width: 180, Height: 180, Color: "pink", Prompt: "medieval stone manor or monastery wing, pink banners"},
	{ID: BuildingShop, Label: "General Store", X: 115, Y: 380, Width: 180, Height: 180, Color: "emerald", Prompt: "merchant guild hall, dark stone, emerald-colored roof tiles"},
	{ID: BuildingHouse, Label: "My House", X: 620, Y: 410, Width: 180, Height: 180, Color: "purple", Prompt: "nobleman's cottage, purple flags, stone tower, lush vine details"},
	{ID: BuildingSlaughter, Label: "Slaughterhouse", X: 130, Y: 640, Width: 180, Height: 180, Color: "red", Prompt: "medieval dark mill, red wood panels, stone chimney, water-powered mechanics"},
	{ID: BuildingWorkshop, Label: "Workshop", X: 500, Y: 650, Width: 180, Height: 180, Color: "amber", Prompt: "medieval blacksmith forge, brick walls, timber beams, orange forge glow"},
	{ID: BuildingRestaurant, Label: "Steakhouse", X: 980, Y: 580, Width: 180, Height: 180, Color: "orange", Prompt: "grand medieval feast hall, tavern style, orange banners, outdoor stone tables"},
}

// Buildings returns the estate layout in map order.
func Buildings() []Building {
	return append([]Building(nil), buildings...)
}

func BuildingByID(id BuildingID) (Building, bool) {
	for _, b := range buildings {
		if b.ID == id {
			return b, true
		}
	}
	return Building{}, false
}

// ImagePrompt is the full text sent to the image generator for this building.
func (b Building) ImagePrompt() string {
	return fmt.Sprintf(buildingPromptStyle, b.Prompt)
}
