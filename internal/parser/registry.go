package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type verb struct {
	def CommandDef
	// phrases holds the tokenised canonical name first, then each alias.
	phrases [][]string
}

type Registry struct {
	verbs []*verb
	index map[string]*verb
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*verb)}
}

// Register adds def, replacing any earlier command with the same name.
func (r *Registry) Register(def CommandDef) {
	def.Canonical = Normalise(def.Canonical)
	if def.Canonical == "" {
		return
	}
	v := &verb{def: def}
	for _, phrase := range append([]string{def.Canonical}, def.Aliases...) {
		if tokens := strings.Fields(Normalise(phrase)); len(tokens) > 0 {
			v.phrases = append(v.phrases, tokens)
		}
	}
	if existing, ok := r.index[def.Canonical]; ok {
		*existing = *v
		return
	}
	r.index[def.Canonical] = v
	r.verbs = append(r.verbs, v)
}

func (r *Registry) lookup(canonical string) (CommandDef, bool) {
	v, ok := r.index[Normalise(canonical)]
	if !ok {
		return CommandDef{}, false
	}
	return v.def, true
}

// Commands lists the registered commands in registration order.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.verbs))
	for _, v := range r.verbs {
		out = append(out, v.def)
	}
	return out
}

type verbMatch struct {
	verb  string
	used  int
	score float64
}

func (m verbMatch) beats(o verbMatch) bool {
	if m.score != o.score {
		return m.score > o.score
	}
	if m.used != o.used {
		return m.used > o.used
	}
	return m.verb < o.verb
}

// match scores each verb by its best phrase against the head of tokens and
// returns one entry per verb, best first.
func (r *Registry) match(tokens []string) []verbMatch {
	if len(tokens) == 0 {
		return nil
	}
	line := strings.Join(tokens, " ")
	var out []verbMatch
	for _, v := range r.verbs {
		var best verbMatch
		for i, phrase := range v.phrases {
			m, ok := scorePhrase(tokens, line, phrase, i > 0)
			if ok && m.beats(best) {
				best = m
			}
		}
		if best.score > 0 {
			best.verb = v.def.Canonical
			out = append(out, best)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].beats(out[j]) })
	return out
}

// scorePhrase rates an exact hit 1 (0.97 through an alias), a typed prefix
// of a one-word verb 0.9, and otherwise falls back to edit distance.
func scorePhrase(tokens []string, line string, phrase []string, alias bool) (verbMatch, bool) {
	n := min(len(phrase), len(tokens))
	head := strings.Join(tokens[:n], " ")
	text := strings.Join(phrase, " ")

	if n == len(phrase) && head == text {
		if alias {
			return verbMatch{used: n, score: 0.97}, true
		}
		return verbMatch{used: n, score: 1}, true
	}
	if len(phrase) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(text, tokens[0]) {
		return verbMatch{used: 1, score: 0.9}, true
	}

	if len(head) < 3 {
		return verbMatch{}, false
	}
	dist := levenshtein.ComputeDistance(head, text)
	if dist > tolerance(len(text)) {
		return verbMatch{}, false
	}
	score := 0.72 - 0.08*float64(dist)
	if strings.Contains(line, text) {
		score += 0.04
	}
	if alias {
		score += 0.03
	}
	return verbMatch{used: n, score: score}, true
}

// tolerance is the edit distance allowed for a word of the given length.
func tolerance(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
