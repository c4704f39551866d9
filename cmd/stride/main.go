package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/lixenwraith/stride/asset"
	"github.com/lixenwraith/stride/audio"
	"github.com/lixenwraith/stride/config"
	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/core"
	"github.com/lixenwraith/stride/engine"
	"github.com/lixenwraith/stride/input"
	"github.com/lixenwraith/stride/render"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/stride.log")
	assetsFlag = flag.String("assets", "", "Load assets from this directory instead of the built-in set")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}
	if *assetsFlag != "" {
		cfg.Assets.Dir = *assetsFlag
	}

	log, logFile := setupLogging(*debugFlag, cfg.Logging)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(screen, r)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx := engine.NewGameContext(screen, engine.NewTimeProvider(), log)
	ctx.Log.WithField("config", *configFlag).Info("session started")

	// Audio failure is not fatal: footstep state is still tracked, only silent
	sound := audio.NewSoundManager(beep.SampleRate(cfg.Audio.SampleRate))
	if cfg.Audio.Enabled {
		if err := sound.Initialize(constants.AudioBufferDuration); err != nil {
			ctx.Log.WithError(err).Warn("audio initialization failed, continuing without sound")
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(*muteFlag)
	ctx.IsMuted.Store(*muteFlag)

	eventChan := make(chan tcell.Event, 256)
	core.Go(screen, func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	bundle, gate, ok := preload(ctx, cfg, sound, eventChan)
	if !ok {
		return 1
	}
	if bundle == nil {
		return 0
	}

	var sc *scene
	var mountErr error
	if err := gate.Mount(func(b *asset.Bundle) {
		sc, mountErr = newScene(ctx, cfg, b, sound)
	}); err != nil {
		mountErr = err
	}
	if mountErr != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Scene failed to mount: %v\n", mountErr)
		ctx.Log.WithError(mountErr).Error("scene mount failed")
		return 1
	}
	ctx.Log.Info("scene mounted")

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	sc.draw()
	for {
		select {
		case ev, open := <-eventChan:
			if !open {
				return 0
			}
			switch sc.handler.HandleEvent(ev).Type {
			case input.IntentQuit:
				ctx.Log.Info("session ended")
				return 0
			case input.IntentToggleMute:
				ctx.IsMuted.Store(sound.ToggleMute())
			case input.IntentResize:
				ctx.HandleResize()
			}

		case <-frameTicker.C:
			ctx.Tick()
			sc.draw()
		}
	}
}

// preload drives the loading screen until the gate finishes
// A nil bundle with ok set means the user quit before loading completed
func preload(ctx *engine.GameContext, cfg config.Config, sound *audio.SoundManager, events <-chan tcell.Event) (*asset.Bundle, *asset.Gate, bool) {
	manifest, err := asset.NewManifest(constants.DefaultManifest, cfg.Assets.SizeHint)
	if err != nil {
		ctx.Screen.Fini()
		fmt.Fprintf(os.Stderr, "Asset manifest: %v\n", err)
		return nil, nil, false
	}

	var fsys fs.FS = asset.Embedded()
	if cfg.Assets.Dir != "" {
		fsys = os.DirFS(cfg.Assets.Dir)
	}

	opts := asset.DefaultOptions()
	opts.SampleRate = sound.SampleRate()
	gate := asset.NewGate(manifest, opts, ctx.Log)

	loadCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// At most 101 distinct reports, so the buffer never blocks the loaders
	progress := make(chan int, 101)
	type result struct {
		bundle *asset.Bundle
		err    error
	}
	done := make(chan result, 1)
	core.Go(ctx.Screen, func() {
		b, err := gate.Preload(loadCtx, fsys, func(p int) { progress <- p })
		done <- result{b, err}
	})

	loading := render.NewLoadingScreen(ctx.Screen)
	current := 0
	loading.Draw(current)

	for {
		select {
		case p := <-progress:
			current = p
			loading.Draw(current)

		case ev, open := <-events:
			if !open {
				return nil, gate, true
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil, gate, true
				}
			case *tcell.EventResize:
				ctx.HandleResize()
				loading.Draw(current)
			}

		case r := <-done:
			if r.err != nil {
				ctx.Screen.Fini()
				fmt.Fprintf(os.Stderr, "Asset load failed: %v\n", r.err)
				return nil, gate, false
			}
			drainProgress(loading, progress, current)
			ctx.Log.WithField("size_hint", manifest.SizeHint).Info("assets loaded")
			return r.bundle, gate, true
		}
	}
}

// drainProgress draws the reports still queued once preload has returned
// Preload sends every report before returning, so the queue is complete here
func drainProgress(loading *render.LoadingScreen, progress <-chan int, current int) int {
	for {
		select {
		case p := <-progress:
			current = p
			loading.Draw(current)
		default:
			return current
		}
	}
}
