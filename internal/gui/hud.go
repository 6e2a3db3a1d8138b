//go:build cgo

package gui

import (
	"fmt"
	"strings"
	"time"

	"github.com/appengine-ltd/farmstead/internal/console"
	"github.com/appengine-ltd/farmstead/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (ui *hudState) draw(s game.GameState) {
	outer := rl.NewRectangle(16, 16, float32(ui.width-32), float32(ui.height-32))
	topH := float32(64)
	inputH := float32(44)
	logH := float32(170)
	sideW := outer.Width * 0.34

	top := rl.NewRectangle(outer.X, outer.Y, outer.Width, topH)
	mapRect := rl.NewRectangle(outer.X, top.Y+topH+spaceS, outer.Width-sideW-spaceS, outer.Height-topH-logH-inputH-3*spaceS)
	side := rl.NewRectangle(mapRect.X+mapRect.Width+spaceS, mapRect.Y, sideW, mapRect.Height)
	logRect := rl.NewRectangle(outer.X, mapRect.Y+mapRect.Height+spaceS, outer.Width, logH)
	inputRect := rl.NewRectangle(outer.X, logRect.Y+logH+spaceS, outer.Width, inputH)

	ui.drawTopBar(top, s)
	ui.drawEstate(mapRect, s)
	ui.drawSidePanel(side, s)
	ui.drawLog(logRect)
	ui.drawInput(inputRect)
	ui.drawToast(outer)
}

func (ui *hudState) drawTopBar(rect rl.Rectangle, s game.GameState) {
	drawPanel(rect, "")
	rl.DrawText(fmt.Sprintf("Day %d", s.Day), int32(rect.X+spaceM), int32(rect.Y+spaceS), 26, AppTheme.Accent)
	rl.DrawText(fmt.Sprintf("$%d", s.Money), int32(rect.X+140), int32(rect.Y+spaceS), 26, AppTheme.TextPrimary)
	drawMeter("Energy", s.Energy, s.MaxEnergy, rl.NewRectangle(rect.X+340, rect.Y+spaceS, 260, 30))
	if s.Dissection != nil {
		total := len(game.DissectionParts(s.Dissection.Species))
		rl.DrawText(fmt.Sprintf("Table: %s %d/%d", s.Dissection.CorpseItemID, len(s.Dissection.ExtractedParts), total), int32(rect.X+640), int32(rect.Y+spaceS+4), 18, AppTheme.TextSecondary)
	}
	legend := hotkeyLegend()
	w := rl.MeasureText(legend, 14)
	rl.DrawText(legend, int32(rect.X+rect.Width)-w-int32(spaceM), int32(rect.Y+rect.Height)-22, 14, AppTheme.TextMuted)
}

// drawEstate scales the fixed estate layout into rect. Generated imagery is
// used when present, plain coloured plots otherwise.
func (ui *hudState) drawEstate(rect rl.Rectangle, s game.GameState) {
	drawPanel(rect, "")
	inner := rl.NewRectangle(rect.X+8, rect.Y+8, rect.Width-16, rect.Height-16)
	if tex, ok := ui.textures.get("map", s.MapBackground); ok {
		drawTextureFit(tex, inner)
	}

	sx := inner.Width / game.MapWidth
	sy := inner.Height / game.MapHeight
	for _, b := range game.Buildings() {
		plot := rl.NewRectangle(inner.X+float32(b.X)*sx, inner.Y+float32(b.Y)*sy, float32(b.Width)*sx, float32(b.Height)*sy)
		if tex, ok := ui.textures.get(string(b.ID), s.BuildingIcons[b.ID]); ok {
			drawTextureFit(tex, plot)
		} else {
			rl.DrawRectangleRounded(plot, 0.12, 6, rl.Fade(buildingColor(b.Color), 0.75))
		}
		rl.DrawRectangleRoundedLinesEx(plot, 0.12, 6, 1.5, AppTheme.Border)

		label := fmt.Sprintf("%s L%d", b.Label, max(1, s.BuildingLevels[b.ID]))
		if n := len(s.AnimalsAt(game.Location(b.ID))); n > 0 {
			label += fmt.Sprintf(" (%d)", n)
		}
		rl.DrawText(label, int32(plot.X)+4, int32(plot.Y+plot.Height)+4, 14, AppTheme.TextPrimary)
	}
}

func (ui *hudState) drawSidePanel(rect rl.Rectangle, s game.GameState) {
	name := console.ViewNames[ui.panel]
	drawPanel(rect, strings.ToUpper(name[:1])+name[1:])
	text, _ := console.View(name, s)
	drawLines(rect, 40, 16, strings.Split(text, "\n"), AppTheme.TextSecondary)
}

func (ui *hudState) drawLog(rect rl.Rectangle) {
	drawPanel(rect, "")
	lineH := int32(22)
	visible := int(rect.Height-16) / int(lineH)
	start := max(0, len(ui.messages)-visible)
	drawLines(rect, 8, 16, ui.messages[start:], AppTheme.TextPrimary)
}

func (ui *hudState) drawInput(rect rl.Rectangle) {
	rl.DrawRectangleRounded(rect, 0.2, 8, AppTheme.PanelRaised)
	rl.DrawRectangleRoundedLinesEx(rect, 0.2, 8, 2, AppTheme.Accent)
	text := ui.input
	clr := AppTheme.TextPrimary
	if text == "" {
		text = "Type a command, e.g. buy 1, slaughter pig 12, sell pork all"
		clr = AppTheme.TextMuted
	} else if (time.Now().UnixMilli()/500)%2 == 0 {
		text += "_"
	}
	rl.DrawText(text, int32(rect.X+spaceM), int32(rect.Y+12), 20, clr)
}

func (ui *hudState) drawToast(outer rl.Rectangle) {
	if ui.toast.text == "" || time.Now().After(ui.toast.expires) {
		return
	}
	clr := AppTheme.Success
	if ui.toast.notice == game.NoticeError {
		clr = AppTheme.Danger
	}
	w := float32(rl.MeasureText(ui.toast.text, 18)) + 2*spaceM
	rect := rl.NewRectangle(outer.X+(outer.Width-w)/2, outer.Y+80, w, 40)
	rl.DrawRectangleRounded(rect, 0.3, 8, rl.Fade(clr, 0.92))
	rl.DrawText(ui.toast.text, int32(rect.X+spaceM), int32(rect.Y+11), 18, AppTheme.TextPrimary)
}
