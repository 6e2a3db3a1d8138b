package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/farmstead/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateSpeciesDoc(),
		generateItemsDoc(),
		generateRecipesDoc(),
		generateAnatomyDoc(),
		generateBuildingsDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateSpeciesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Species\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`SpeciesByID`).\n\n")
	b.WriteString("| ID | Name | Base Price | Growth /day | Max Weight | Base Quality | Pregnancy (days) | Meat | Byproduct | Corpse |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, id := range game.AllSpecies {
		s, _ := game.SpeciesByID(id)
		writeRow(&b,
			string(s.ID),
			s.Name,
			strconv.Itoa(s.BasePrice),
			formatFloat(s.GrowthRate),
			formatFloat(s.MaxWeight),
			strconv.Itoa(s.BaseQuality),
			strconv.Itoa(s.PregnancyDays),
			fmt.Sprintf("%s x%s", s.Outputs.Meat, formatFloat(s.Outputs.MeatRatio)),
			fmt.Sprintf("%s x%s", s.Outputs.Byproduct, formatFloat(s.Outputs.ByproductRatio)),
			s.Outputs.Corpse,
		)
	}
	return docFile{Name: "species.md", Title: "Species", Content: b.String()}
}

func generateItemsDoc() docFile {
	items := game.ItemCatalog()

	var b strings.Builder
	b.WriteString("# Items\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`ItemCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total items: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Category | Sell Price | Shop Price |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, item := range items {
		shop := ""
		if item.Purchasable() {
			shop = strconv.Itoa(item.BuyPrice)
		}
		writeRow(&b, item.ID, item.Name, string(item.Category), strconv.Itoa(item.Price), shop)
	}
	return docFile{Name: "items.md", Title: "Items", Content: b.String()}
}

func generateRecipesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Recipes\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`CookingRecipes`, `CraftingRecipes`).\n\n")
	for _, group := range []struct {
		title   string
		recipes []game.Recipe
	}{
		{title: "Kitchen", recipes: game.CookingRecipes()},
		{title: "Workshop", recipes: game.CraftingRecipes()},
	} {
		b.WriteString("## " + group.title + "\n\n")
		b.WriteString("| ID | Name | Inputs | Output | Energy | Unlock Cost |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for _, r := range group.recipes {
			writeRow(&b, r.ID, r.Name, formatCounts(r.Inputs), formatCounts([]game.ItemCount{r.Output}), strconv.Itoa(r.EnergyCost), strconv.Itoa(r.UnlockCost))
		}
		b.WriteString("\n")
	}
	return docFile{Name: "recipes.md", Title: "Recipes", Content: b.String()}
}

func generateAnatomyDoc() docFile {
	var b strings.Builder
	b.WriteString("# Anatomy\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`DissectionParts`).\n\n")
	b.WriteString("| Species | Part | Label | Yields | Requires |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, species := range game.AllSpecies {
		for _, p := range game.DissectionParts(species) {
			writeRow(&b, string(species), p.ID, p.Label, fmt.Sprintf("%d %s", p.OutputCount, p.OutputItem), strings.Join(p.Requires, ", "))
		}
	}
	return docFile{Name: "anatomy.md", Title: "Anatomy", Content: b.String()}
}

func generateBuildingsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Buildings\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`Buildings`) and `internal/game/buildings.go`.\n\n")
	b.WriteString("| ID | Label | Position | Size |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, bl := range game.Buildings() {
		writeRow(&b, string(bl.ID), bl.Label, fmt.Sprintf("%d,%d", bl.X, bl.Y), fmt.Sprintf("%dx%d", bl.Width, bl.Height))
	}
	b.WriteString("\n| Level | Upgrade Cost |\n")
	b.WriteString("| --- | --- |\n")
	for level := 1; level < game.MaxBuildingLevel; level++ {
		writeRow(&b, fmt.Sprintf("%d -> %d", level, level+1), strconv.Itoa(game.UpgradeCost(level)))
	}
	return docFile{Name: "buildings.md", Title: "Buildings", Content: b.String()}
}

func writeRow(b *strings.Builder, cells ...string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(escape(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

func formatCounts(counts []game.ItemCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d %s", c.Count, c.ItemID))
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
