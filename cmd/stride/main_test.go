package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/stride/asset"
	"github.com/lixenwraith/stride/config"
	"github.com/lixenwraith/stride/render"
)

// TestDrainProgressDrawsFinalReport verifies reports queued behind completion still reach the loading screen
func TestDrainProgressDrawsFinalReport(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen, got %v", err)
	}
	defer screen.Fini()
	screen.SetSize(60, 10)

	progress := make(chan int, 101)
	for _, p := range []int{37, 99, 100} {
		progress <- p
	}

	loading := render.NewLoadingScreen(screen)
	loading.Draw(12)
	if got := drainProgress(loading, progress, 12); got != 100 {
		t.Errorf("Expected final progress 100, got %d", got)
	}
	if len(progress) != 0 {
		t.Errorf("Expected drained queue, got %d left", len(progress))
	}

	cells, w, h := screen.GetContents()
	var text strings.Builder
	for i := 0; i < w*h; i++ {
		if r := cells[i].Runes; len(r) > 0 {
			text.WriteRune(r[0])
		}
	}
	if !strings.Contains(text.String(), "loaded: 100%") {
		t.Errorf("Expected 'loaded: 100%%' on screen, got %q", text.String())
	}

	if got := drainProgress(loading, progress, 100); got != 100 {
		t.Errorf("Expected empty queue to keep 100, got %d", got)
	}
}

// TestSceneEnvironmentOverridesBloom verifies configured bloom wins over env.yaml and colours pass through
func TestSceneEnvironmentOverridesBloom(t *testing.T) {
	shipped := asset.Environment{BloomStrength: 1, BloomThreshold: 0.5, Sky: "#0b1020"}
	sc := config.Default().Scene
	sc.BloomStrength, sc.BloomThreshold = 2.5, 0.2

	env := sceneEnvironment(shipped, sc)
	if env.BloomStrength != 2.5 || env.BloomThreshold != 0.2 {
		t.Errorf("Expected bloom 2.5/0.2, got %.1f/%.1f", env.BloomStrength, env.BloomThreshold)
	}
	if env.Sky != shipped.Sky {
		t.Errorf("Expected sky %s, got %s", shipped.Sky, env.Sky)
	}
}
