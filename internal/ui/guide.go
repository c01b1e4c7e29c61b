package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

var guideSteps = []string{
	`Press "p" to add a produce item`,
	"Select your item",
	"Place in cart to weigh",
	`Press "enter" to confirm and add to cart`,
}

// guide is the "how to add non-barcode items" walkthrough. Steps advance on
// a timer and stop on the last one.
type guide struct {
	step    int
	elapsed time.Duration
	playing bool
	gen     int
	bar     progress.Model
}

func newGuide() guide {
	return guide{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(40)),
	}
}

// start rewinds to the first step and begins playing.
func (g *guide) start() tea.Cmd {
	g.step = 0
	g.elapsed = 0
	return g.play()
}

func (g *guide) play() tea.Cmd {
	if g.finished() {
		g.step = 0
		g.elapsed = 0
	}
	g.playing = true
	g.gen++
	return guideTickCmd(g.gen)
}

func (g *guide) toggle() tea.Cmd {
	if g.playing {
		g.playing = false
		return nil
	}
	return g.play()
}

func (g *guide) finished() bool {
	return g.step == len(guideSteps)-1 && g.elapsed >= stepDuration
}

func (g *guide) tick(msg msgGuideTick) tea.Cmd {
	if msg.Gen != g.gen || !g.playing {
		return nil
	}
	g.elapsed += guideTickEvery
	if g.elapsed >= stepDuration {
		if g.step < len(guideSteps)-1 {
			g.step++
			g.elapsed = 0
		} else {
			g.elapsed = stepDuration
			g.playing = false
			return nil
		}
	}
	return guideTickCmd(g.gen)
}

func (g guide) percent() float64 {
	p := float64(g.elapsed) / float64(stepDuration)
	if p > 1 {
		return 1
	}
	return p
}

func (g guide) view(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("How to add non-barcode items"))
	b.WriteString("\n\n")
	for i, text := range guideSteps {
		line := fmt.Sprintf("%d. %s", i+1, text)
		switch {
		case i == g.step:
			b.WriteString(styles.Text.Bold(true).Render("▶ " + line))
		case i < g.step:
			b.WriteString(styles.MutedText.Render("✓ " + line))
		default:
			b.WriteString(styles.FaintText.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(g.bar.ViewAs(g.percent()))
	b.WriteString("  ")
	state := "paused"
	if g.playing {
		state = "playing"
	} else if g.finished() {
		state = "done"
	}
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("step %d/%d · %s", g.step+1, len(guideSteps), state)))
	return b.String()
}
