package game

// ApplyRecipe converts inputs to the recipe output. Inputs are only taken
// from stacks that are currently nonzero, so short stock is not rejected.
func ApplyRecipe(s GameState, recipe Recipe) (GameState, Result) {
	if s.Energy < recipe.EnergyCost {
		return s, lacksEnergy(recipe.EnergyCost, s.Energy)
	}

	next := s.Clone()
	next.Energy -= recipe.EnergyCost
	for _, in := range recipe.Inputs {
		if next.Inventory[in.ItemID] != 0 {
			next.Inventory[in.ItemID] -= in.Count
		}
	}
	next.Inventory[recipe.Output.ItemID] += recipe.Output.Count
	return next, succeeded("%s: +%d %s.", recipe.Name, recipe.Output.Count, recipe.Output.ItemID)
}

func Cook(s GameState, recipeID string) (GameState, Result) {
	recipe, ok := findRecipe(cookingRecipes, recipeID)
	if !ok {
		return s, invalidTarget("No cooking recipe %q.", recipeID)
	}
	return ApplyRecipe(s, recipe)
}

func Craft(s GameState, recipeID string) (GameState, Result) {
	recipe, ok := findRecipe(craftingRecipes, recipeID)
	if !ok {
		return s, invalidTarget("No crafting recipe %q.", recipeID)
	}
	return ApplyRecipe(s, recipe)
}
