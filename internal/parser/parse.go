package parser

import (
	"fmt"
	"math"
	"strings"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

// Parse maps one line of player input to an intent. Ambiguous or incomplete
// input comes back with Clarify set.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	in := Intent{Raw: raw, Normalised: Normalise(raw), Kind: Unknown}
	if in.Normalised == "" {
		return in.ask("Enter a command.", nil)
	}
	tokens := strings.Fields(in.Normalised)

	matches := p.registry.match(tokens)
	if len(matches) == 0 || matches[0].score < 0.5 {
		if guessed, ok := guess(in); ok {
			return guessed
		}
		return in.ask("I couldn't map that to a command. Try help, status, market, animals, buy, slaughter, cook, sell, sleep.", nil)
	}
	top := matches[0]
	if len(matches) > 1 {
		if next := matches[1]; top.score-next.score < 0.05 && next.score > 0.65 {
			return in.ask("Did you mean:", []Intent{option(in, top), option(in, next)})
		}
	}

	def, _ := p.registry.lookup(top.verb)
	in.Verb = def.Canonical
	in.Kind = kindOf(def.Canonical)

	rest := tokens[top.used:]
	if def.Counted {
		rest, in.Quantity = trailingQuantity(rest)
	}
	args, argScore, clarify := resolve(ctx, def, rest)
	if clarify != nil {
		in.Clarify = clarify
		in.Confidence = 0.45
		return in
	}
	in.Args = args
	in.Confidence = clampScore(top.score*0.75 + argScore*0.25)

	if len(in.Args) < def.MinArgs {
		return missingArgs(ctx, def, in)
	}
	if def.MaxArgs > 0 && len(in.Args) > def.MaxArgs {
		in.Args = in.Args[:def.MaxArgs:def.MaxArgs]
		in.Confidence = clampScore(in.Confidence - 0.05)
	}
	if in.Confidence < 0.52 {
		return in.ask("I'm not sure what you meant. Try a clearer command.", nil)
	}
	return in
}

func option(in Intent, m verbMatch) Intent {
	return Intent{Raw: in.Raw, Normalised: m.verb, Kind: kindOf(m.verb), Verb: m.verb, Confidence: m.score}
}

// resolve turns argument tokens into entity names, option keywords or raw
// tokens, in that order of preference.
func resolve(ctx ParseContext, def CommandDef, tokens []string) ([]string, float64, *ClarifyQuestion) {
	if len(tokens) == 0 {
		return nil, 0.9, nil
	}
	var args []string
	score := 0.9
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if pronouns[tok] {
			if strings.TrimSpace(ctx.LastEntity) == "" {
				return nil, 0.4, &ClarifyQuestion{Prompt: "What does that pronoun refer to?"}
			}
			args = append(args, Normalise(ctx.LastEntity))
			score -= 0.08
			continue
		}
		if kw, ok := keywords[tok]; ok && i > 0 {
			args = append(args, kw)
			continue
		}

		if t := targetAt(def, len(args)); t != NoTarget {
			names := ctx.pool(t)
			phrase, used := names.span(tokens[i:], ctx.LastEntity)
			hits, conf, tie := names.pick(phrase, ctx.LastEntity)
			if tie {
				return nil, 0.52, &ClarifyQuestion{
					Prompt: fmt.Sprintf("Did you mean %s?", def.Canonical),
					Options: []Intent{
						{Kind: kindOf(def.Canonical), Verb: def.Canonical, Args: []string{hits[0]}, Confidence: conf},
						{Kind: kindOf(def.Canonical), Verb: def.Canonical, Args: []string{hits[1]}, Confidence: conf - 0.01},
					},
				}
			}
			if len(hits) == 1 {
				args = append(args, hits[0])
				score = math.Min(score, conf)
				i += used - 1
				continue
			}
		}

		args = append(args, tok)
		score -= 0.02
	}
	return args, clampScore(score), nil
}

// missingArgs offers up to five targets when the command named none.
func missingArgs(ctx ParseContext, def CommandDef, in Intent) Intent {
	if len(in.Args) == 0 && def.Target != NoTarget {
		var options []Intent
		for _, name := range ctx.pool(def.Target) {
			options = append(options, Intent{Kind: in.Kind, Verb: def.Canonical, Args: []string{name}, Confidence: 0.88})
			if len(options) == 5 {
				break
			}
		}
		if len(options) > 0 {
			in.Confidence = 0.46
			return in.ask(fmt.Sprintf("What should I %s?", def.Canonical), options)
		}
	}
	in.Confidence = 0.42
	return in.ask(fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs), nil)
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
