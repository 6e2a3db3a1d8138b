package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// pool is a normalised, de-duplicated set of names the player can refer to.
type pool []string

func newPool(names []string) pool {
	seen := make(map[string]bool, len(names))
	out := make(pool, 0, len(names))
	for _, name := range names {
		n := Normalise(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func (ctx ParseContext) pool(t Target) pool {
	switch t {
	case AnimalTarget:
		return newPool(ctx.Animals)
	case MarketTarget:
		return newPool(ctx.Market)
	case InventoryTarget:
		return newPool(ctx.Inventory)
	case ShopTarget:
		return newPool(ctx.Shop)
	case RecipeTarget:
		return newPool(ctx.Recipes)
	case PartTarget:
		return newPool(ctx.Parts)
	case BuildingTarget:
		return newPool(ctx.Buildings)
	default:
		return nil
	}
}

type ranked struct {
	name  string
	score float64
}

// rank scores each name against phrase, best first. The preferred name, the
// entity referred to last, wins close calls.
func (p pool) rank(phrase, prefer string) []ranked {
	phrase = Normalise(phrase)
	if phrase == "" {
		return nil
	}
	prefer = Normalise(prefer)

	var out []ranked
	for _, name := range p {
		var score float64
		switch {
		case name == phrase:
			score = 1
		case len(phrase) >= 2 && strings.HasPrefix(name, phrase):
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(phrase, name)
			if dist > tolerance(len(name)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		if prefer != "" && name == prefer {
			score += 0.08
		}
		out = append(out, ranked{name: name, score: clampScore(score)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].name < out[j].name
	})
	return out
}

// pick returns the best name, or the top two when they are too close to
// call.
func (p pool) pick(phrase, prefer string) (names []string, score float64, tie bool) {
	r := p.rank(phrase, prefer)
	if len(r) == 0 {
		return nil, 0, false
	}
	if len(r) > 1 && r[0].score-r[1].score < 0.05 && r[1].score > 0.6 {
		return []string{r[0].name, r[1].name}, r[0].score, true
	}
	return []string{r[0].name}, r[0].score, false
}

// span greedily joins up to three tokens into one name ("eye of swine") when
// the joined phrase is a near-exact hit.
func (p pool) span(tokens []string, prefer string) (string, int) {
	for n := min(3, len(tokens)); n > 1; n-- {
		phrase := strings.Join(tokens[:n], " ")
		if r := p.rank(phrase, prefer); len(r) > 0 && r[0].score > 0.9 {
			return phrase, n
		}
	}
	return tokens[0], 1
}

// targetAt reports the pool for the argument at pos. Mating names two
// animals; every other command names at most one entity.
func targetAt(def CommandDef, pos int) Target {
	switch {
	case pos == 0:
		return def.Target
	case pos == 1 && def.Canonical == "mate":
		return AnimalTarget
	default:
		return NoTarget
	}
}
