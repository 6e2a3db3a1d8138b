package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/appengine-ltd/farmstead/internal/game"
)

func statusView(s game.GameState) string {
	line := fmt.Sprintf("Day %d | $%d | Energy %d/%d | %d animals", s.Day, s.Money, s.Energy, s.MaxEnergy, len(s.Animals))
	if s.Dissection != nil {
		line += fmt.Sprintf(" | Table: %s (%d/%d parts)", s.Dissection.CorpseItemID, len(s.Dissection.ExtractedParts), len(game.DissectionParts(s.Dissection.Species)))
	}
	return line
}

func marketView(s game.GameState) string {
	if len(s.MarketAnimals) == 0 {
		return fmt.Sprintf("The market is empty. Resupply costs $%d.", game.MarketRefreshCost)
	}
	var b strings.Builder
	b.WriteString("Livestock market:")
	for i, a := range s.MarketAnimals {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, describeAnimal(a))
	}
	return b.String()
}

func animalsView(s game.GameState) string {
	if len(s.Animals) == 0 {
		return "No animals yet. Visit the market."
	}
	var b strings.Builder
	for _, loc := range game.AllLocations {
		animals := s.AnimalsAt(loc)
		if len(animals) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:", loc)
		for _, a := range animals {
			fmt.Fprintf(&b, "\n  - %s", describeAnimal(a))
		}
	}
	return b.String()
}

func describeAnimal(a game.Animal) string {
	flags := ""
	if a.IsPet {
		flags += " pet"
	}
	if a.Pregnant {
		flags += fmt.Sprintf(" pregnant(%d/%d)", a.PregnancyDays, a.Spec().PregnancyDays)
	}
	return fmt.Sprintf("%s %s %.1fkg Q%d age %d $%d%s", a.Name, strings.ToLower(string(a.Gender)), a.Weight, a.Quality, a.AgeDays, game.Price(a), flags)
}

func inventoryView(s game.GameState) string {
	ids := make([]string, 0, len(s.Inventory))
	for id, n := range s.Inventory {
		if n != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return "Storage is empty."
	}
	sort.Strings(ids)
	var b strings.Builder
	b.WriteString("Storage:")
	for _, id := range ids {
		name := id
		if item, ok := game.ItemByID(id); ok {
			name = item.Name
		}
		fmt.Fprintf(&b, "\n  %-20s x%d", name, s.Inventory[id])
	}
	return b.String()
}

func recipesView(s game.GameState) string {
	var b strings.Builder
	b.WriteString("Kitchen:")
	writeRecipes(&b, s, game.CookingRecipes())
	b.WriteString("\nWorkshop:")
	writeRecipes(&b, s, game.CraftingRecipes())
	return b.String()
}

func writeRecipes(b *strings.Builder, s game.GameState, recipes []game.Recipe) {
	for _, r := range recipes {
		inputs := make([]string, 0, len(r.Inputs))
		for _, in := range r.Inputs {
			inputs = append(inputs, fmt.Sprintf("%d %s (have %d)", in.Count, in.ItemID, s.Count(in.ItemID)))
		}
		fmt.Fprintf(b, "\n  %s: %s -> %d %s, %d energy", r.Name, strings.Join(inputs, ", "), r.Output.Count, r.Output.ItemID, r.EnergyCost)
	}
}

// ViewNames lists the read-only panels in display order.
var ViewNames = []string{"status", "market", "animals", "inventory", "recipes"}

// View renders one named panel of the state.
func View(name string, s game.GameState) (string, bool) {
	switch name {
	case "status":
		return statusView(s), true
	case "market":
		return marketView(s), true
	case "animals":
		return animalsView(s), true
	case "inventory":
		return inventoryView(s), true
	case "recipes":
		return recipesView(s), true
	default:
		return "", false
	}
}
