package main

import (
	"fmt"

	"github.com/lixenwraith/stride/asset"
	"github.com/lixenwraith/stride/audio"
	"github.com/lixenwraith/stride/camera"
	"github.com/lixenwraith/stride/config"
	"github.com/lixenwraith/stride/constants"
	"github.com/lixenwraith/stride/core"
	"github.com/lixenwraith/stride/engine"
	"github.com/lixenwraith/stride/input"
	"github.com/lixenwraith/stride/locomotion"
	"github.com/lixenwraith/stride/physics"
	"github.com/lixenwraith/stride/render"
	"github.com/lixenwraith/stride/systems"
)

// scene is the interactive stadium, built once from the loaded bundle
type scene struct {
	ctx          *engine.GameContext
	body         *physics.Body
	controller   *locomotion.Controller
	rig          *camera.Rig
	footsteps    *audio.FootstepLoop
	handler      *input.Handler
	orchestrator *render.RenderOrchestrator
	palette      render.Palette
}

// newScene assembles the collaborators around the locomotion controller and registers their systems
func newScene(ctx *engine.GameContext, cfg config.Config, b *asset.Bundle, sound *audio.SoundManager) (*scene, error) {
	surface, err := physics.NewSurface(b.Surface)
	if err != nil {
		return nil, fmt.Errorf("stadium surface: %w", err)
	}

	env := sceneEnvironment(b.Env, cfg.Scene)

	palette, err := render.NewPalette(env, b.Arrow)
	if err != nil {
		return nil, fmt.Errorf("scene palette: %w", err)
	}

	body := physics.NewBody(surface, core.Point(0, cfg.Scene.SpawnY, 0),
		constants.CharacterHalfHeight, cfg.Locomotion.ArrivalThreshold)
	controller := locomotion.NewController(body, cfg.LocomotionConfig(), ctx.Log)
	rig := camera.NewRig(body, cfg.CameraConfig())

	footsteps := audio.NewFootstepLoop(b.Footsteps, cfg.Audio.PlaybackRate, constants.ResampleQuality,
		cfg.Audio.Volume, constants.FootstepFalloff, sound)
	sound.Add(footsteps.Streamer())

	reflector := systems.NewReflectorSystem(body, footsteps, rig)
	marker := systems.NewMarkerSystem(cfg.Marker.VerticalOffset, cfg.Marker.SpinPeriod)
	controller.Subscribe(reflector)
	controller.Subscribe(marker)

	ctx.World.AddSystem(systems.NewPhysicsSystem(body, cfg.Locomotion.TickRate, constants.MaxTicksPerFrame))
	ctx.World.AddSystem(rig)
	ctx.World.AddSystem(reflector)
	ctx.World.AddSystem(marker)

	s := &scene{
		ctx:          ctx,
		body:         body,
		controller:   controller,
		rig:          rig,
		footsteps:    footsteps,
		orchestrator: render.NewRenderOrchestrator(ctx.Screen),
		palette:      palette,
	}

	s.handler = input.NewHandler(
		input.NewPointer(constants.DragThreshold, constants.ZoomStep),
		input.NewResolver(surface),
		controller,
		rig,
		s.viewport,
		ctx.Log,
	)

	s.orchestrator.Register(render.NewGroundRenderer(surface), render.PriorityGround)
	s.orchestrator.Register(render.NewReflectionRenderer(body, cfg.Scene.ReflectorY), render.PriorityReflection)
	s.orchestrator.Register(render.NewCharacterRenderer(body), render.PriorityCharacter)
	s.orchestrator.Register(render.NewMarkerRenderer(marker, b.Arrow.Glyphs), render.PriorityMarker)
	s.orchestrator.Register(render.NewHUDRenderer(controller, body, footsteps), render.PriorityUI)

	// Snap the camera before the first frame so the first click resolves against a settled view
	rig.Update(0)
	return s, nil
}

// viewport is the projection of the scene area currently on screen
func (s *scene) viewport() camera.Viewport {
	return s.rig.Viewport(s.ctx.Width, s.renderContext().SceneHeight())
}

func (s *scene) renderContext() render.RenderContext {
	return render.RenderContext{
		Palette:      s.palette,
		ScreenWidth:  s.ctx.Width,
		ScreenHeight: s.ctx.Height,
		Frame:        s.ctx.FrameNumber.Load(),
		Muted:        s.ctx.IsMuted.Load(),
	}
}

// draw renders one frame from the current state
func (s *scene) draw() {
	rc := s.renderContext()
	rc.Viewport = s.viewport()
	s.orchestrator.RenderFrame(rc)
}

// sceneEnvironment applies the configured bloom over the shipped environment
func sceneEnvironment(env asset.Environment, sc config.Scene) asset.Environment {
	env.BloomStrength = sc.BloomStrength
	env.BloomThreshold = sc.BloomThreshold
	return env
}
