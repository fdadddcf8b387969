package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Carmen-Shannon/crystal-runner/bubble"
	"github.com/Carmen-Shannon/crystal-runner/cmd/bubbles/internal/settings"
	"github.com/Carmen-Shannon/crystal-runner/cmd/bubbles/internal/sim"
	"github.com/Carmen-Shannon/crystal-runner/engine/camera"
	"github.com/Carmen-Shannon/crystal-runner/engine/light"
	"github.com/Carmen-Shannon/crystal-runner/engine/profiler"
	"github.com/Carmen-Shannon/crystal-runner/engine/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var background = color.NRGBA{R: 0x0b, G: 0x10, B: 0x1e, A: 0xff}

// Game adapts the simulation to ebiten's Update/Draw loop.
type Game struct {
	world    *sim.Simulation
	scene    scene.Scene
	cam      camera.Camera
	ctrl     camera.CameraController
	profiler *profiler.Profiler
	profile  bool

	width, height int
	frameRate     float32
	tps           int
}

// NewGame builds the demo scene: the bubble avatar, a soft key light, and a
// camera following the avatar from slightly above.
func NewGame(s settings.Settings, cfg bubble.Config) *Game {
	sc := scene.NewScene("bubbles",
		scene.WithActive(true),
		scene.WithAmbientColor([3]float32{0.35, 0.4, 0.55}),
		scene.WithLights(light.NewLight(light.LightTypeDirectional,
			light.WithName("key"),
			light.WithDirection(-0.3, -1, -0.4),
			light.WithIntensity(0.4),
		)),
	)

	ctrl := camera.NewCameraController(
		camera.WithTarget(0, 0, 0),
		camera.WithRadius(1.6),
		camera.WithElevation(0.25),
	)
	g := &Game{
		world:     sim.New(sc, cfg, sim.WithTrailRate(float32(s.TrailRate))),
		scene:     sc,
		ctrl:      ctrl,
		cam:       camera.NewCamera(camera.WithController(ctrl), camera.WithViewport(float32(s.Width), float32(s.Height))),
		profiler:  profiler.NewProfiler(),
		profile:   s.Profile,
		width:     s.Width,
		height:    s.Height,
		frameRate: cfg.ReferenceFrameRate,
		tps:       s.TPS(),
	}
	g.profiler.Watch(sc)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1 / float32(g.tps)
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.world.Steer(-1, dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.world.Steer(1, dt)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.Pop()
	}

	g.world.Step(dt)

	g.ctrl.Follow(g.world.CurrentX()*0.5, 0, 0, dt*g.frameRate)
	g.cam.Update()
	g.scene.SyncLights()

	if g.profile {
		g.profiler.Tick()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, sp := range sim.Sprites(g.scene, g.cam) {
		vector.DrawFilledCircle(screen, sp.X, sp.Y, sp.Radius, sp.Color, true)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"A/D or arrows: move   Space: pop   Esc: quit\nx %.2f -> %.2f   particles %d   pops %d   tps %.0f",
		g.world.CurrentX(), g.world.TargetX(), g.world.Particles(), g.world.Pops(), ebiten.ActualTPS(),
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.cam.SetViewport(float32(outsideWidth), float32(outsideHeight))
	}
	return g.width, g.height
}

// runWindow opens the demo window and blocks until it is closed.
func runWindow(s settings.Settings, cfg bubble.Config) error {
	g := NewGame(s, cfg)
	defer g.scene.Dispose()

	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("Crystal Runner: bubbles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop error: %w", err)
	}
	return nil
}
