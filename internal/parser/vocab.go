package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// Normalise lower-cases input and folds separators, so "PIG_CORPSE" and
// "pig corpse" compare equal. Other punctuation is dropped.
func Normalise(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), strings.ContainsRune("-_/'", r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func quantityOf(token string) *Quantity {
	switch token {
	case "all", "everything":
		return &Quantity{Raw: token, All: true}
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return nil
	}
	return &Quantity{Raw: token, N: n}
}

// trailingQuantity only looks at the last token so numbers inside names
// ("pig 12") survive.
func trailingQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return tokens, nil
	}
	last := len(tokens) - 1
	if q := quantityOf(tokens[last]); q != nil {
		return tokens[:last], q
	}
	return tokens, nil
}

var pronouns = map[string]bool{"it": true, "that": true, "them": true, "this": true, "those": true}

// keywords folds the option words of multi-argument commands (locations,
// slaughter methods, enhancements, mating modes) onto one spelling.
var keywords = map[string]string{
	"pen": "pen", "pens": "pen", "yard": "pen",
	"slaughter": "slaughter", "slaughterhouse": "slaughter", "abattoir": "slaughter",
	"house": "house", "home": "house",
	"breeding": "breeding", "barn": "breeding", "stud": "breeding",
	"workshop": "workshop", "shed": "workshop",
	"standard": "standard", "basic": "standard",
	"industrial": "industrial", "fast": "industrial",
	"artisan": "artisan", "careful": "artisan",
	"weight": "weight", "mass": "weight", "feed": "weight",
	"quality": "quality", "grade": "quality",
	"natural": "natural",
	"artificial": "artificial", "ai": "artificial", "insemination": "artificial",
}

// hints catch questions typed in plain English that match no verb.
var hints = []struct {
	kind    Kind
	verb    string
	score   float64
	phrases []string
}{
	{kind: Query, verb: "inventory", score: 0.92, phrases: []string{"what do i have", "what have i got", "check storage", "check my storage"}},
	{kind: Query, verb: "status", score: 0.9, phrases: []string{"how much money", "how am i doing", "what day is it"}},
	{kind: Query, verb: "market", score: 0.86, phrases: []string{"what is for sale", "what s for sale", "whats for sale", "new animals"}},
	{kind: Command, verb: "sleep", score: 0.86, phrases: []string{"go to bed", "call it a day", "end the day"}},
	{kind: Query, verb: "recipes", score: 0.84, phrases: []string{"what can i cook", "what can i make"}},
	{kind: Command, verb: "sleep", score: 0.8, phrases: []string{"sleep", "rest"}},
}

func guess(in Intent) (Intent, bool) {
	padded := " " + in.Normalised + " "
	for _, h := range hints {
		for _, phrase := range h.phrases {
			if strings.Contains(padded, " "+phrase+" ") {
				in.Kind, in.Verb, in.Confidence = h.kind, h.verb, h.score
				return in, true
			}
		}
	}
	return in, false
}

func kindOf(verb string) Kind {
	switch verb {
	case "help":
		return Help
	case "status", "market", "animals", "inventory", "recipes":
		return Query
	default:
		return Command
	}
}
