package game

// Action is a player intent the Store can apply.
type Action interface {
	Name() string
}

type BuyAnimalAction struct {
	AnimalID string
}

type ResupplyMarketAction struct{}

type EnhanceAction struct {
	AnimalID string
	Kind     EnhanceKind
}

type RelocateAction struct {
	AnimalID string
	Location Location
}

type AdoptPetAction struct {
	AnimalID string
}

type SlaughterAction struct {
	AnimalID string
	Method   SlaughterMethod
}

type StartDissectionAction struct {
	CorpseItemID string
}

type ExtractPartAction struct {
	PartID string
}

type CompleteDissectionAction struct{}

type CookAction struct {
	RecipeID string
}

type CraftAction struct {
	RecipeID string
}

type SellItemsAction struct {
	Items map[string]int
}

type BuyShopItemAction struct {
	ItemID string
	Count  int
}

type MateAction struct {
	MaleID   string
	FemaleID string
	Mode     MatingMode
}

type UpgradeBuildingAction struct {
	Building BuildingID
}

type MergeAssetsAction struct {
	Icons      map[BuildingID]string
	Background string
}

type AdvanceDayAction struct{}

func (BuyAnimalAction) Name() string          { return "buy_animal" }
func (ResupplyMarketAction) Name() string     { return "resupply_market" }
func (EnhanceAction) Name() string            { return "enhance" }
func (RelocateAction) Name() string           { return "relocate" }
func (AdoptPetAction) Name() string           { return "adopt_pet" }
func (SlaughterAction) Name() string          { return "slaughter" }
func (StartDissectionAction) Name() string    { return "start_dissection" }
func (ExtractPartAction) Name() string        { return "extract_part" }
func (CompleteDissectionAction) Name() string { return "complete_dissection" }
func (CookAction) Name() string               { return "cook" }
func (CraftAction) Name() string              { return "craft" }
func (SellItemsAction) Name() string          { return "sell_items" }
func (BuyShopItemAction) Name() string        { return "buy_shop_item" }
func (MateAction) Name() string               { return "mate" }
func (UpgradeBuildingAction) Name() string    { return "upgrade_building" }
func (MergeAssetsAction) Name() string        { return "merge_assets" }
func (AdvanceDayAction) Name() string         { return "advance_day" }

// Apply is the single dispatch from (state, action) to the next state.
func Apply(f *Factory, s GameState, action Action) (GameState, Result) {
	switch a := action.(type) {
	case BuyAnimalAction:
		return BuyAnimal(s, a.AnimalID)
	case ResupplyMarketAction:
		return ResupplyMarket(f, s)
	case EnhanceAction:
		return Enhance(s, a.AnimalID, a.Kind)
	case RelocateAction:
		return Relocate(s, a.AnimalID, a.Location)
	case AdoptPetAction:
		return AdoptPet(s, a.AnimalID)
	case SlaughterAction:
		return Slaughter(s, a.AnimalID, a.Method)
	case StartDissectionAction:
		return StartDissection(s, a.CorpseItemID)
	case ExtractPartAction:
		return ExtractPart(s, a.PartID)
	case CompleteDissectionAction:
		return CompleteDissection(s)
	case CookAction:
		return Cook(s, a.RecipeID)
	case CraftAction:
		return Craft(s, a.RecipeID)
	case SellItemsAction:
		return SellItems(s, a.Items)
	case BuyShopItemAction:
		return BuyShopItem(s, a.ItemID, a.Count)
	case MateAction:
		return Mate(s, a.MaleID, a.FemaleID, a.Mode)
	case UpgradeBuildingAction:
		return UpgradeBuilding(s, a.Building)
	case MergeAssetsAction:
		return MergeAssets(s, a.Icons, a.Background)
	case AdvanceDayAction:
		return AdvanceDay(f, s)
	default:
		return s, invalidTarget("unsupported action %T", action)
	}
}
