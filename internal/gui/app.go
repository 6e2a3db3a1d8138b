//go:build cgo

package gui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/appengine-ltd/farmstead/internal/console"
	"github.com/appengine-ltd/farmstead/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
}

type App struct {
	cfg     AppConfig
	l       logrus.FieldLogger
	console *console.Console
	queue   *commandQueue
}

func NewApp(cfg AppConfig, l logrus.FieldLogger, c *console.Console) *App {
	return &App{cfg: cfg, l: l, console: c, queue: newCommandQueue(16)}
}

// Commands lets other goroutines feed lines into the frame loop.
func (a *App) Commands() CommandSink {
	return a.queue
}

type toast struct {
	text    string
	notice  game.Notice
	expires time.Time
}

type hudState struct {
	app      *App
	ctx      context.Context
	width    int32
	height   int32
	input    string
	messages []string
	panel    int
	toast    toast
	textures *textureCache
	quit     bool
}

func (a *App) Run(ctx context.Context) error {
	ui := &hudState{
		app:      a,
		ctx:      ctx,
		width:    1366,
		height:   820,
		textures: newTextureCache(a.l),
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "farmstead "+a.cfg.Version)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)

	ui.appendMessage(fmt.Sprintf("Welcome to the estate. Type help or press F1. (%s)", a.cfg.Commit))
	for !ui.quit && !rl.WindowShouldClose() && ctx.Err() == nil {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw(a.console.Store().Snapshot())
		rl.EndDrawing()
	}

	ui.textures.unloadAll()
	rl.CloseWindow()
	return nil
}

func (ui *hudState) update() {
	for _, n := range ui.app.console.Notices() {
		ui.show(n)
	}
	for {
		line, ok := ui.app.queue.Dequeue()
		if !ok {
			break
		}
		ui.execute(line)
	}

	if HotkeysEnabled(ui) {
		if hk, ok := pressedHotkey(); ok {
			ui.execute(hk.Command)
			return
		}
		if rl.IsKeyPressed(rl.KeyTab) {
			step := 1
			if ShiftPressed() {
				step = len(console.ViewNames) - 1
			}
			ui.panel = (ui.panel + step) % len(console.ViewNames)
		}
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.input = ""
	}

	captureTextInput(&ui.input, 120)
	if rl.IsKeyPressed(rl.KeyEnter) {
		line := strings.TrimSpace(ui.input)
		ui.input = ""
		if line != "" {
			ui.execute(line)
		}
	}
}

func (ui *hudState) execute(line string) {
	ui.appendMessage("> " + line)
	out := ui.app.console.Execute(ui.ctx, line)
	ui.show(out)
	if out.Quit {
		ui.quit = true
	}
}

func (ui *hudState) show(out console.Output) {
	for _, line := range strings.Split(out.Text, "\n") {
		ui.appendMessage(line)
	}
	if out.Notice == game.NoticeSuccess || out.Notice == game.NoticeError {
		ui.toast = toast{text: out.Text, notice: out.Notice, expires: time.Now().Add(3 * time.Second)}
	}
}

func (ui *hudState) appendMessage(message string) {
	line := strings.TrimRight(message, " ")
	if line == "" {
		return
	}
	ui.messages = append(ui.messages, line)
	if len(ui.messages) > 260 {
		ui.messages = append([]string(nil), ui.messages[len(ui.messages)-260:]...)
	}
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
