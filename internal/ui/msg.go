package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timings mirror the tablet app's animations.
const (
	highlightDuration = 2 * time.Second
	stepDuration      = 3500 * time.Millisecond
	guideTickEvery    = 50 * time.Millisecond
)

// msgHighlightDone ends the "just added" highlight for a line.
type msgHighlightDone struct {
	LineID string
}

// msgSettled publishes the price for a scale reading.
type msgSettled struct {
	Reading int
}

// msgGuideTick advances the walkthrough. Gen drops ticks from a superseded
// tick chain.
type msgGuideTick struct {
	Gen int
}

func highlightCmd(id string) tea.Cmd {
	return tea.Tick(highlightDuration, func(time.Time) tea.Msg {
		return msgHighlightDone{LineID: id}
	})
}

func settleCmd(delay time.Duration, reading int) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return msgSettled{Reading: reading} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return msgSettled{Reading: reading}
	})
}

func guideTickCmd(gen int) tea.Cmd {
	return tea.Tick(guideTickEvery, func(time.Time) tea.Msg {
		return msgGuideTick{Gen: gen}
	})
}
