package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/appengine-ltd/farmstead/internal/game"
	"github.com/appengine-ltd/farmstead/internal/parser"
	"github.com/sirupsen/logrus"
)

// Visuals starts an asynchronous asset refresh.
type Visuals interface {
	Start(ctx context.Context, done func(game.Result, error)) error
}

type Output struct {
	Notice game.Notice
	Text   string
	Quit   bool
}

type Console struct {
	l       logrus.FieldLogger
	parser  *parser.Parser
	store   *game.Store
	visuals Visuals
	last    string
	notices chan Output
}

// New wires a console to the store. visuals may be nil when image
// generation is not configured.
func New(l logrus.FieldLogger, store *game.Store, visuals Visuals) *Console {
	return &Console{
		l:       l,
		parser:  parser.New(),
		store:   store,
		visuals: visuals,
		notices: make(chan Output, 8),
	}
}

func (c *Console) Store() *game.Store {
	return c.store
}

// Notices drains results that arrived from background work.
func (c *Console) Notices() []Output {
	var out []Output
	for {
		select {
		case n := <-c.notices:
			out = append(out, n)
		default:
			return out
		}
	}
}

func (c *Console) Execute(ctx context.Context, line string) Output {
	s := c.store.Snapshot()
	intent := c.parser.Parse(c.parseContext(s), line)
	if intent.Clarify != nil {
		return Output{Notice: game.NoticeInfo, Text: formatClarify(intent.Clarify)}
	}
	c.l.WithFields(logrus.Fields{"verb": intent.Verb, "args": intent.Args}).Debug("Command parsed.")

	if text, ok := View(intent.Verb, s); ok {
		return Output{Notice: game.NoticeInfo, Text: text}
	}
	switch intent.Verb {
	case "help":
		return Output{Notice: game.NoticeInfo, Text: c.help()}
	case "visuals":
		return c.startVisuals(ctx)
	case "quit":
		return Output{Notice: game.NoticeInfo, Text: "Farewell.", Quit: true}
	}

	action, out := c.toAction(s, intent)
	if action == nil {
		return out
	}
	return fromResult(c.store.Dispatch(action))
}

// Run is the line-oriented loop used when no window is available.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, statusView(c.store.Snapshot()))
	for {
		for _, n := range c.Notices() {
			fmt.Fprintln(out, n.Text)
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res := c.Execute(ctx, line)
		fmt.Fprintln(out, res.Text)
		if res.Quit {
			return nil
		}
	}
}

func (c *Console) startVisuals(ctx context.Context) Output {
	if c.visuals == nil {
		return Output{Notice: game.NoticeError, Text: "Visual generation is not configured. Set GEMINI_API_KEY."}
	}
	err := c.visuals.Start(ctx, func(res game.Result, err error) {
		out := Output{Notice: game.NoticeSuccess, Text: "Estate Infrastructure Fully Integrated."}
		if err != nil {
			c.l.WithError(err).Warn("Visuals refresh failed.")
			out = Output{Notice: game.NoticeError, Text: "Construction Error: some visuals could not be rendered."}
		}
		select {
		case c.notices <- out:
		default:
		}
	})
	if err != nil {
		return Output{Notice: game.NoticeInfo, Text: "The architects are already at work."}
	}
	return Output{Notice: game.NoticeInfo, Text: "Architecting estate visuals..."}
}

func (c *Console) help() string {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, cmd := range c.parser.Commands() {
		b.WriteString("\n  ")
		b.WriteString(cmd.Canonical)
		if len(cmd.Aliases) > 0 {
			b.WriteString(" (" + strings.Join(cmd.Aliases, ", ") + ")")
		}
	}
	return b.String()
}

func formatClarify(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, o.Line())
	}
	return q.Prompt + " " + strings.Join(opts, " | ")
}

func fromResult(res game.Result) Output {
	return Output{Notice: res.Notice, Text: fmt.Sprintf("[%s] %s", res.Notice, res.Message)}
}
