package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/loop"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

type Game struct {
	sim    *loop.Simulation
	loop   *loop.Loop
	frames *loop.FrameQueue

	statusUI    *ebitenui.UI
	statusTitle *widget.Text
	watcher     *prefabs.Watcher
	debug       bool
}

func NewGame(sim *loop.Simulation, debug bool) *Game {
	g := &Game{
		sim:    sim,
		frames: loop.NewFrameQueue(),
		debug:  debug,
	}
	g.loop = loop.NewLoop(sim, g.frames)
	g.statusUI = NewStatusUI(g)

	if debug {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.loop.Start()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.requestReset()
	}
	g.pollPrefabs()

	g.frames.Pump()

	if status := g.sim.Status(); status.Terminal() {
		g.statusTitle.Label = statusTitle(status)
		g.statusUI.Update()
	}
	return nil
}

func (g *Game) requestReset() {
	if err := g.sim.RequestReset(); err != nil {
		log.Printf("reset: %v", err)
	}
}

func (g *Game) pollPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}

	var specs, scripts bool
	for _, name := range g.watcher.Pending() {
		specs = specs || prefabs.IsSpecFile(name)
		scripts = scripts || prefabs.IsScriptFile(name)
	}
	if scripts {
		g.sim.ReloadScripts()
		log.Printf("prefabs: reloaded scripts")
	}
	if specs {
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("prefabs: reload: %v", err)
			return
		}
		if err := g.sim.SetTuning(tuning); err != nil {
			log.Printf("prefabs: reload: %v", err)
			return
		}
		ebiten.SetTPS(int(tuning.World.TickRate))
		log.Printf("prefabs: reloaded tuning")
	}
}

var kindColors = map[component.EntityKind]color.Color{
	component.KindGround:       colornames.Sienna,
	component.KindPlatform:     colornames.Peru,
	component.KindHazard:       colornames.Crimson,
	component.KindPatrolHazard: colornames.Orangered,
	component.KindGoal:         colornames.Gold,
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)
	v := g.sim.View()
	camX, camY := v.Camera.X, v.Camera.Y

	for _, b := range v.Boxes {
		c, ok := kindColors[b.Kind]
		if !ok {
			continue
		}
		fillBox(screen, b.Box, camX, camY, c)
	}
	fillBox(screen, v.Player, camX, camY, colornames.Navy)
	if g.debug {
		for _, b := range v.Boxes {
			strokeBox(screen, b.Box, camX, camY, color.RGBA{R: 255, A: 200})
		}
		strokeBox(screen, v.Player, camX, camY, colornames.White)
	}

	hud := fmt.Sprintf("Level %d/%d    %s    FPS: %.2f", min(v.Level+1, v.Levels), v.Levels, v.Status, ebiten.ActualFPS())
	if g.debug {
		hud += fmt.Sprintf("\ntick=%d vy=%.1f grounded=%v jump=%.1f/%.1f", v.Tick, v.VY, v.Grounded, v.JumpBudget, v.MaxJump)
		if err := g.loop.Err(); err != nil {
			hud += fmt.Sprintf("\nlast fault: %v", err)
		}
	}
	ebitenutil.DebugPrint(screen, hud)

	if v.Status.Terminal() {
		g.statusUI.Draw(screen)
	}
}

func fillBox(screen *ebiten.Image, b component.AABB, camX, camY float64, c color.Color) {
	vector.FillRect(screen, float32(b.X-camX), float32(b.Y-camY), float32(b.W), float32(b.H), c, false)
}

func strokeBox(screen *ebiten.Image, b component.AABB, camX, camY float64, c color.Color) {
	vector.StrokeRect(screen, float32(b.X-camX), float32(b.Y-camY), float32(b.W), float32(b.H), 1.0, c, false)
}

func (g *Game) Close() {
	g.loop.Stop()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
