package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/farmstead/internal/game"
	"github.com/appengine-ltd/farmstead/internal/parser"
)

func (c *Console) parseContext(s game.GameState) parser.ParseContext {
	ctx := parser.ParseContext{LastEntity: c.last}
	for _, a := range s.Animals {
		ctx.Animals = append(ctx.Animals, a.Name)
	}
	for _, a := range s.MarketAnimals {
		ctx.Market = append(ctx.Market, a.Name)
	}
	for id, n := range s.Inventory {
		if n != 0 {
			ctx.Inventory = append(ctx.Inventory, id)
		}
	}
	for _, item := range game.ShopItems() {
		ctx.Shop = append(ctx.Shop, item.ID, item.Name)
	}
	for _, r := range append(game.CookingRecipes(), game.CraftingRecipes()...) {
		ctx.Recipes = append(ctx.Recipes, r.Name, r.ID)
	}
	if s.Dissection != nil {
		for _, p := range game.DissectionParts(s.Dissection.Species) {
			ctx.Parts = append(ctx.Parts, p.Label, p.ID)
		}
	}
	for _, b := range game.Buildings() {
		ctx.Buildings = append(ctx.Buildings, string(b.ID), b.Label)
	}
	return ctx
}

func rejected(format string, args ...any) (game.Action, Output) {
	return nil, Output{Notice: game.NoticeError, Text: fmt.Sprintf("[%s] %s", game.NoticeError, fmt.Sprintf(format, args...))}
}

func arg(intent parser.Intent, i int) string {
	if i < len(intent.Args) {
		return intent.Args[i]
	}
	return ""
}

// toAction resolves parsed names to ids. A nil action comes with the
// message explaining why nothing was dispatched.
func (c *Console) toAction(s game.GameState, intent parser.Intent) (game.Action, Output) {
	switch intent.Verb {
	case "buy":
		a, ok := findAnimal(s.MarketAnimals, arg(intent, 0))
		if !ok {
			return rejected("No animal %q at the market.", arg(intent, 0))
		}
		return game.BuyAnimalAction{AnimalID: a.ID}, Output{}
	case "resupply":
		return game.ResupplyMarketAction{}, Output{}
	case "enhance":
		a, ok := c.ownAnimal(s, arg(intent, 0))
		if !ok {
			return rejected("No animal %q in the estate.", arg(intent, 0))
		}
		return game.EnhanceAction{AnimalID: a.ID, Kind: game.EnhanceKind(strings.ToUpper(arg(intent, 1)))}, Output{}
	case "move":
		a, ok := c.ownAnimal(s, arg(intent, 0))
		if !ok {
			return rejected("No animal %q in the estate.", arg(intent, 0))
		}
		return game.RelocateAction{AnimalID: a.ID, Location: game.Location(strings.ToUpper(arg(intent, 1)))}, Output{}
	case "pet":
		a, ok := c.ownAnimal(s, arg(intent, 0))
		if !ok {
			return rejected("No animal %q in the estate.", arg(intent, 0))
		}
		return game.AdoptPetAction{AnimalID: a.ID}, Output{}
	case "slaughter":
		a, ok := c.ownAnimal(s, arg(intent, 0))
		if !ok {
			return rejected("No animal %q in the estate.", arg(intent, 0))
		}
		method := game.MethodStandard
		if m := arg(intent, 1); m != "" {
			method = game.SlaughterMethod(strings.ToUpper(m))
		}
		switch method {
		case game.MethodStandard, game.MethodIndustrial, game.MethodArtisan:
		default:
			return rejected("Unknown slaughter method %q.", arg(intent, 1))
		}
		return game.SlaughterAction{AnimalID: a.ID, Method: method}, Output{}
	case "dissect":
		item, ok := findItem(arg(intent, 0))
		if !ok {
			return rejected("No item %q.", arg(intent, 0))
		}
		c.last = item.Name
		return game.StartDissectionAction{CorpseItemID: item.ID}, Output{}
	case "extract":
		if s.Dissection == nil {
			return rejected("Nothing on the table.")
		}
		part, ok := findPart(s.Dissection.Species, arg(intent, 0))
		if !ok {
			return rejected("No part %q on this %s.", arg(intent, 0), strings.ToLower(string(s.Dissection.Species)))
		}
		return game.ExtractPartAction{PartID: part.ID}, Output{}
	case "finish":
		return game.CompleteDissectionAction{}, Output{}
	case "cook":
		r, ok := findRecipe(game.CookingRecipes(), arg(intent, 0))
		if !ok {
			return rejected("No cooking recipe %q.", arg(intent, 0))
		}
		return game.CookAction{RecipeID: r.ID}, Output{}
	case "craft":
		r, ok := findRecipe(game.CraftingRecipes(), arg(intent, 0))
		if !ok {
			return rejected("No crafting recipe %q.", arg(intent, 0))
		}
		return game.CraftAction{RecipeID: r.ID}, Output{}
	case "sell":
		item, ok := findItem(arg(intent, 0))
		if !ok {
			return rejected("No item %q.", arg(intent, 0))
		}
		count := quantity(intent.Quantity, s.Inventory[item.ID])
		if count <= 0 {
			return rejected("No %s to sell.", item.Name)
		}
		c.last = item.Name
		return game.SellItemsAction{Items: map[string]int{item.ID: count}}, Output{}
	case "shop":
		item, ok := findItem(arg(intent, 0))
		if !ok {
			return rejected("No item %q.", arg(intent, 0))
		}
		count := quantity(intent.Quantity, 1)
		return game.BuyShopItemAction{ItemID: item.ID, Count: count}, Output{}
	case "mate":
		return c.mateAction(s, intent)
	case "upgrade":
		b, ok := findBuilding(arg(intent, 0))
		if !ok {
			return rejected("No building %q.", arg(intent, 0))
		}
		return game.UpgradeBuildingAction{Building: b.ID}, Output{}
	case "sleep":
		return game.AdvanceDayAction{}, Output{}
	default:
		return rejected("Nothing to do for %q.", intent.Verb)
	}
}

func (c *Console) mateAction(s game.GameState, intent parser.Intent) (game.Action, Output) {
	female, ok := c.ownAnimal(s, arg(intent, 0))
	if !ok {
		return rejected("No animal %q in the estate.", arg(intent, 0))
	}
	var maleID string
	var mode game.MatingMode
	for _, a := range intent.Args[1:] {
		switch a {
		case "natural":
			mode = game.MatingNatural
		case "artificial":
			mode = game.MatingArtificial
		default:
			male, ok := findAnimal(s.Animals, a)
			if !ok {
				return rejected("No animal %q in the estate.", a)
			}
			maleID = male.ID
		}
	}
	if mode == "" {
		mode = game.MatingArtificial
		if maleID != "" {
			mode = game.MatingNatural
		}
	}
	return game.MateAction{MaleID: maleID, FemaleID: female.ID, Mode: mode}, Output{}
}

func (c *Console) ownAnimal(s game.GameState, ref string) (game.Animal, bool) {
	a, ok := findAnimal(s.Animals, ref)
	if ok {
		c.last = a.Name
	}
	return a, ok
}

// findAnimal accepts a 1-based list position, a name or an id.
func findAnimal(animals []game.Animal, ref string) (game.Animal, bool) {
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(animals) {
		return animals[n-1], true
	}
	for _, a := range animals {
		if parser.Normalise(a.Name) == ref || parser.Normalise(a.ID) == parser.Normalise(ref) {
			return a, true
		}
	}
	return game.Animal{}, false
}

func findItem(ref string) (game.ItemSpec, bool) {
	for _, item := range game.ItemCatalog() {
		if parser.Normalise(item.ID) == ref || parser.Normalise(item.Name) == ref {
			return item, true
		}
	}
	return game.ItemSpec{}, false
}

func findRecipe(recipes []game.Recipe, ref string) (game.Recipe, bool) {
	for _, r := range recipes {
		if parser.Normalise(r.ID) == ref || parser.Normalise(r.Name) == ref {
			return r, true
		}
	}
	return game.Recipe{}, false
}

func findPart(species game.Species, ref string) (game.DissectionPart, bool) {
	for _, p := range game.DissectionParts(species) {
		if parser.Normalise(p.ID) == ref || parser.Normalise(p.Label) == ref {
			return p, true
		}
	}
	return game.DissectionPart{}, false
}

func findBuilding(ref string) (game.Building, bool) {
	for _, b := range game.Buildings() {
		if parser.Normalise(string(b.ID)) == ref || parser.Normalise(b.Label) == ref {
			return b, true
		}
	}
	return game.Building{}, false
}

// quantity resolves a parsed amount, defaulting to one.
func quantity(q *parser.Quantity, all int) int {
	switch {
	case q == nil:
		return 1
	case q.All:
		return all
	default:
		return q.N
	}
}
