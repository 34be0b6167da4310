// Package tui runs arcade games in a terminal with Bubble Tea.
//
// It maps keys and pointer events to input frames, drives ticks, saves
// finished games and serves the same flow to SSH sessions through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the wall
// clock time the tick fired, which games use for timers.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after 1/tickRate s.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
