//go:build cgo

package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// hotkey maps a function key to the console line it stands for.
type hotkey struct {
	Key     int32
	Label   string
	Command string
}

var hotkeys = []hotkey{
	{Key: rl.KeyF1, Label: "F1 help", Command: "help"},
	{Key: rl.KeyF2, Label: "F2 visuals", Command: "visuals"},
	{Key: rl.KeyF3, Label: "F3 resupply", Command: "resupply"},
	{Key: rl.KeyF5, Label: "F5 sleep", Command: "sleep"},
}

// HotkeysEnabled is false while the player is typing, so letters and
// function keys reach the input line instead.
func HotkeysEnabled(ui *hudState) bool {
	if ui == nil {
		return true
	}
	return strings.TrimSpace(ui.input) == ""
}

func pressedHotkey() (hotkey, bool) {
	for _, hk := range hotkeys {
		if rl.IsKeyPressed(hk.Key) {
			return hk, true
		}
	}
	return hotkey{}, false
}

func ShiftPressed() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func hotkeyLegend() string {
	labels := make([]string, 0, len(hotkeys)+2)
	for _, hk := range hotkeys {
		labels = append(labels, hk.Label)
	}
	labels = append(labels, "Tab panel", "Esc clear")
	return strings.Join(labels, "  ")
}
