package ui

import "testing"

func ticksPerStep() int {
	return int(stepDuration / guideTickEvery)
}

func TestGuide_AdvancesAndStopsOnLastStep(t *testing.T) {
	g := newGuide()
	if cmd := g.start(); cmd == nil {
		t.Fatalf("start returned nil cmd")
	}

	for i := 0; i < ticksPerStep(); i++ {
		g.tick(msgGuideTick{Gen: g.gen})
	}
	if g.step != 1 {
		t.Fatalf("step = %d, want 1 after one step duration", g.step)
	}

	for i := 0; i < ticksPerStep()*len(guideSteps); i++ {
		g.tick(msgGuideTick{Gen: g.gen})
	}
	if g.step != len(guideSteps)-1 {
		t.Fatalf("step = %d, want last step", g.step)
	}
	if !g.finished() || g.playing {
		t.Fatalf("guide should be finished and stopped")
	}
	if g.percent() != 1 {
		t.Fatalf("percent = %v, want 1", g.percent())
	}
}

func TestGuide_StaleTicksIgnored(t *testing.T) {
	g := newGuide()
	g.start()
	old := g.gen
	g.toggle() // pause
	g.toggle() // resume bumps the generation

	if cmd := g.tick(msgGuideTick{Gen: old}); cmd != nil {
		t.Fatalf("stale tick scheduled another tick")
	}
	if g.elapsed != 0 {
		t.Fatalf("elapsed = %v, want 0", g.elapsed)
	}
}

func TestGuide_PauseHoldsPosition(t *testing.T) {
	g := newGuide()
	g.start()
	g.tick(msgGuideTick{Gen: g.gen})
	g.toggle()
	at := g.elapsed

	if cmd := g.tick(msgGuideTick{Gen: g.gen}); cmd != nil {
		t.Fatalf("paused guide scheduled a tick")
	}
	if g.elapsed != at {
		t.Fatalf("elapsed moved while paused")
	}
}

func TestGuide_PlayAfterFinishRestarts(t *testing.T) {
	g := newGuide()
	g.step = len(guideSteps) - 1
	g.elapsed = stepDuration
	g.play()
	if g.step != 0 || g.elapsed != 0 || !g.playing {
		t.Fatalf("play after finish = step %d elapsed %v playing %v", g.step, g.elapsed, g.playing)
	}
}

func TestThemeCycle(t *testing.T) {
	names := ThemeNames()
	if len(names) < 2 {
		t.Fatalf("ThemeNames = %v, want at least 2", names)
	}
	if got := NextTheme(names[len(names)-1]); got != names[0] {
		t.Fatalf("NextTheme wraps to %q, want %q", got, names[0])
	}
	if got := GetTheme("missing").Name; got != names[0] {
		t.Fatalf("GetTheme(missing) = %q, want %q", got, names[0])
	}
}
