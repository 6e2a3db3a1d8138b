//go:build cgo

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Success       rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

const (
	spaceS = float32(12)
	spaceM = float32(18)
)

// Estate palette: parchment text on dark soil.
var AppTheme = Theme{
	Background:    rl.NewColor(0x1B, 0x17, 0x12, 255),
	Panel:         rl.NewColor(0x26, 0x20, 0x19, 255),
	PanelRaised:   rl.NewColor(0x31, 0x29, 0x20, 255),
	Border:        rl.NewColor(0x4A, 0x3D, 0x2E, 255),
	TextPrimary:   rl.NewColor(0xEE, 0xE4, 0xCF, 255),
	TextSecondary: rl.NewColor(0xB5, 0xA8, 0x90, 255),
	TextMuted:     rl.NewColor(0x82, 0x77, 0x66, 255),
	Accent:        rl.NewColor(0xD9, 0x9A, 0x2B, 255),
	Success:       rl.NewColor(0x5E, 0x9E, 0x4F, 255),
	Warning:       rl.NewColor(0xC1, 0x8B, 0x2F, 255),
	Danger:        rl.NewColor(0xB8, 0x4A, 0x3A, 255),
}

var buildingColors = map[string]rl.Color{
	"blue":    rl.NewColor(0x3B, 0x6E, 0xA8, 255),
	"green":   rl.NewColor(0x4C, 0x8A, 0x3F, 255),
	"pink":    rl.NewColor(0xC2, 0x5B, 0x8E, 255),
	"emerald": rl.NewColor(0x2E, 0x8B, 0x6B, 255),
	"purple":  rl.NewColor(0x7A, 0x52, 0xA8, 255),
	"red":     rl.NewColor(0xA8, 0x3B, 0x3B, 255),
	"amber":   rl.NewColor(0xC9, 0x8A, 0x1E, 255),
	"orange":  rl.NewColor(0xD0, 0x6A, 0x25, 255),
}

func buildingColor(name string) rl.Color {
	if c, ok := buildingColors[name]; ok {
		return c
	}
	return AppTheme.Border
}

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, AppTheme.Panel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, AppTheme.Border)
	if title != "" {
		rl.DrawText(title, int32(rect.X+spaceS), int32(rect.Y)+8, 20, AppTheme.Accent)
	}
}

func drawLines(rect rl.Rectangle, y int32, size int32, lines []string, clr rl.Color) {
	for i, line := range lines {
		ly := int32(rect.Y) + y + int32(i)*(size+6)
		if ly+size > int32(rect.Y+rect.Height) {
			return
		}
		rl.DrawText(line, int32(rect.X)+14, ly, size, clr)
	}
}

// drawMeter draws a labelled fill bar; it turns amber then red as it empties.
func drawMeter(label string, value, maxValue int, rect rl.Rectangle) {
	pct := 0
	if maxValue > 0 {
		pct = clampInt(value*100/maxValue, 0, 100)
	}
	fillColor := AppTheme.Success
	switch {
	case pct <= 20:
		fillColor = AppTheme.Danger
	case pct <= 35:
		fillColor = AppTheme.Warning
	}

	rl.DrawText(fmt.Sprintf("%s %d/%d", label, value, maxValue), int32(rect.X), int32(rect.Y), 16, AppTheme.TextSecondary)
	track := rl.NewRectangle(rect.X, rect.Y+20, rect.Width, 8)
	rl.DrawRectangleRec(track, AppTheme.PanelRaised)
	if pct > 0 {
		rl.DrawRectangleRec(rl.NewRectangle(track.X+1, track.Y+1, (track.Width-2)*float32(pct)/100, track.Height-2), fillColor)
	}
	rl.DrawRectangleLinesEx(track, 1, AppTheme.Border)
}

func clampInt(v int, min int, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
