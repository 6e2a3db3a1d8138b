package parser

var farmCommands = []CommandDef{
	{Canonical: "help", Aliases: []string{"h", "commands", "?"}},
	{Canonical: "status", Aliases: []string{"stats", "money", "energy", "day"}},
	{Canonical: "market", Aliases: []string{"livestock", "stock"}},
	{Canonical: "animals", Aliases: []string{"herd", "pens", "my animals"}, MaxArgs: 1},
	{Canonical: "inventory", Aliases: []string{"inv", "items", "storage", "warehouse"}},
	{Canonical: "recipes", Aliases: []string{"cookbook", "patterns"}},

	{Canonical: "buy", Aliases: []string{"purchase", "acquire"}, MinArgs: 1, MaxArgs: 1, Target: MarketTarget},
	{Canonical: "resupply", Aliases: []string{"restock", "refresh market"}},
	{Canonical: "enhance", Aliases: []string{"boost", "supplement"}, MinArgs: 2, MaxArgs: 2, Target: AnimalTarget},
	{Canonical: "move", Aliases: []string{"relocate", "send", "assign"}, MinArgs: 2, MaxArgs: 2, Target: AnimalTarget},
	{Canonical: "pet", Aliases: []string{"adopt", "keep"}, MinArgs: 1, MaxArgs: 1, Target: AnimalTarget},
	{Canonical: "slaughter", Aliases: []string{"butcher", "process"}, MinArgs: 1, MaxArgs: 2, Target: AnimalTarget},

	{Canonical: "dissect", Aliases: []string{"autopsy", "open up"}, MinArgs: 1, MaxArgs: 1, Target: InventoryTarget},
	{Canonical: "extract", Aliases: []string{"remove", "cut"}, MinArgs: 1, MaxArgs: 1, Target: PartTarget},
	{Canonical: "finish", Aliases: []string{"done", "close table"}},

	{Canonical: "cook", Aliases: []string{"roast", "grill"}, MinArgs: 1, MaxArgs: 1, Target: RecipeTarget},
	{Canonical: "craft", Aliases: []string{"make", "sew", "knit"}, MinArgs: 1, MaxArgs: 1, Target: RecipeTarget},
	{Canonical: "sell", Aliases: []string{"trade"}, MinArgs: 1, MaxArgs: 1, Target: InventoryTarget, Counted: true},
	{Canonical: "shop", Aliases: []string{"order", "procure"}, MinArgs: 1, MaxArgs: 1, Target: ShopTarget, Counted: true},

	{Canonical: "mate", Aliases: []string{"breed"}, MinArgs: 1, MaxArgs: 3, Target: AnimalTarget},
	{Canonical: "upgrade", Aliases: []string{"improve", "expand"}, MinArgs: 1, MaxArgs: 1, Target: BuildingTarget},
	{Canonical: "visuals", Aliases: []string{"generate", "redraw"}},
	{Canonical: "sleep", Aliases: []string{"rest", "next day", "end day"}},
	{Canonical: "quit", Aliases: []string{"exit", "q"}},
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range farmCommands {
		r.Register(def)
	}
	return r
}
