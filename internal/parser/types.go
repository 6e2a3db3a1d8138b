package parser

import "strings"

// Kind separates read-only queries from commands that change the farm.
type Kind int

const (
	Command Kind = iota
	Query
	Help
	Unknown
)

// Quantity is a trailing amount such as "3" or "all".
type Quantity struct {
	Raw string
	N   int
	All bool
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       Kind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

// Line renders the intent back into the command a player would type.
func (in Intent) Line() string {
	if in.Verb == "" {
		return ""
	}
	parts := []string{Normalise(in.Verb)}
	for _, a := range in.Args {
		if n := Normalise(a); n != "" {
			parts = append(parts, n)
		}
	}
	if in.Quantity != nil && in.Quantity.Raw != "" {
		parts = append(parts, Normalise(in.Quantity.Raw))
	}
	return strings.Join(parts, " ")
}

func (in Intent) ask(prompt string, options []Intent) Intent {
	in.Clarify = &ClarifyQuestion{Prompt: prompt, Options: options}
	return in
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the names the player can currently refer to. Entries
// may be ids or display names; they are normalised before matching.
type ParseContext struct {
	Animals    []string
	Market     []string
	Inventory  []string
	Shop       []string
	Recipes    []string
	Parts      []string
	Buildings  []string
	LastEntity string
}

type Target int

const (
	NoTarget Target = iota
	AnimalTarget
	MarketTarget
	InventoryTarget
	ShopTarget
	RecipeTarget
	PartTarget
	BuildingTarget
)

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	// Target names the pool the first argument is resolved against.
	Target Target
	// Counted commands take a trailing quantity.
	Counted bool
}
