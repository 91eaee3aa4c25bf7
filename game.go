package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stormtravel/assets"
	"github.com/milk9111/stormtravel/common"
	"github.com/milk9111/stormtravel/obj"
	"github.com/milk9111/stormtravel/prefabs"
	ebitenrender "github.com/milk9111/stormtravel/render/ebiten"
	"github.com/milk9111/stormtravel/system"
)

type Config struct {
	Stage int
	Debug bool
	Watch bool
	Mute  bool
	Seed  uint64
}

type Game struct {
	cfg    Config
	frames int

	rng      *rand.Rand
	sheet    *ebitenrender.Sheet
	campaign *system.Campaign
	ctrl     *system.Controller
	loop     *system.Loop
	hud      *system.HUD
	ui       prefabs.UISpec
	fonts    *ebitenrender.Fonts

	input    *obj.Input
	ambience *Ambience
	watcher  *prefabs.Watcher

	layer     *ebiten.Image
	composite *ebiten.Image
	paused    bool
	pauseUI   *ebitenui.UI
	endingUI  *ebitenui.UI
	quit      bool
}

func NewGame(cfg Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	fonts, err := ebitenrender.NewFonts()
	if err != nil {
		return nil, err
	}
	ui, err := prefabs.LoadSpec[prefabs.UISpec]("ui.yaml")
	if err != nil {
		return nil, err
	}
	hud, err := system.LoadHUD("hud.tengo")
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		sheet: ebitenrender.NewSheet(assets.SheetImage()),
		hud:   hud,
		ui:    ui,
		fonts: fonts,
		input: obj.NewInput(),
		layer: ebiten.NewImage(common.BaseWidth, common.BaseHeight),

		composite: ebiten.NewImage(common.BaseWidth, common.BaseHeight),
	}

	if !cfg.Mute {
		p, err := assets.SeaPlayer()
		if err != nil {
			log.Printf("audio: sea loop unavailable: %v", err)
		} else {
			g.ambience = NewAmbience(p)
		}
	}

	if err := g.loadCampaign(cfg.Stage); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "levels")
		if err != nil {
			log.Printf("prefabs: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	if cfg.Debug {
		initClipboard()
	}

	g.applyUI(ui)
	return g, nil
}

// loadCampaign builds every stage from disk and starts at stage start.
func (g *Game) loadCampaign(start int) error {
	campaign, err := system.LoadCampaign(g.sheet, g.rng)
	if err != nil {
		return err
	}
	if start > len(campaign.Stages) {
		start = len(campaign.Stages)
	}
	opts := system.Options{
		Start: start,
		Rand:  g.rng,
		Debug: g.cfg.Debug,
	}
	if g.ambience != nil {
		opts.Ambience = g.ambience
	}
	ctrl, err := system.NewController(campaign.Stages, campaign.Player, opts)
	if err != nil {
		return err
	}

	g.campaign = campaign
	g.ctrl = ctrl
	g.loop = system.NewLoop(ctrl)
	return nil
}

func (g *Game) Title() string {
	if g.ui.Title != "" {
		return g.ui.Title
	}
	return "Travelling through Storm"
}

func windowTitle(title string, fps float64) string {
	return fmt.Sprintf("%s (%.0f fps)", title, fps)
}

func (g *Game) Update() error {
	g.frames++
	ebiten.SetWindowTitle(windowTitle(g.Title(), ebiten.ActualFPS()))

	g.reload()
	g.ambience.Update()

	events := g.input.Poll()
	var forward []obj.Event
	for _, ev := range events {
		switch ev.Kind {
		case obj.EventPause:
			g.paused = !g.paused
			g.loop.Pause()
		case obj.EventCopyDebug:
			if g.cfg.Debug {
				copyDebug(g.ctrl.Snapshot())
			}
		case obj.EventQuit:
			g.quit = true
		default:
			forward = append(forward, ev)
		}
	}
	if g.quit {
		return ebiten.Termination
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.loop.Tick(forward)
	if g.ctrl.Quit() {
		return ebiten.Termination
	}
	if g.ctrl.State() == system.StateEnding {
		g.endingUI.Update()
	}
	return nil
}

// reload applies files changed on disk: scripts rebuild the HUD, ui.yaml
// rebuilds the panels and anything else rebuilds the campaign. The current
// stage index is kept.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	paths, err := g.watcher.Poll()
	if err != nil {
		log.Printf("prefabs: %v", err)
	}
	if len(paths) == 0 {
		return
	}

	for _, p := range paths {
		log.Printf("prefabs: %s changed", p)
	}
	plan := planReload(paths)
	if plan.hud {
		if hud, err := system.LoadHUD("hud.tengo"); err != nil {
			log.Printf("prefabs: hud: %v", err)
		} else {
			g.hud = hud
		}
	}
	if plan.ui {
		if ui, err := prefabs.LoadSpec[prefabs.UISpec]("ui.yaml"); err != nil {
			log.Printf("prefabs: ui: %v", err)
		} else {
			g.applyUI(ui)
		}
	}
	if plan.campaign {
		if err := g.loadCampaign(g.ctrl.Index()); err != nil {
			log.Printf("prefabs: campaign: %v", err)
		}
	}
}

type reloadPlan struct {
	hud, ui, campaign bool
}

func planReload(paths []string) reloadPlan {
	var p reloadPlan
	for _, path := range paths {
		switch {
		case filepath.Ext(path) == ".tengo":
			p.hud = true
		case filepath.Base(path) == "ui.yaml":
			p.ui = true
		default:
			p.campaign = true
		}
	}
	return p
}

var (
	newPauseUI  = NewPauseUI
	newEndingUI = NewEndingUI
)

// applyUI swaps in new ui.yaml settings and rebuilds the panels that bake
// its text and colours in.
func (g *Game) applyUI(ui prefabs.UISpec) {
	g.ui = ui
	g.pauseUI = newPauseUI(g)
	g.endingUI = newEndingUI(g)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ui.Background.Or(color.NRGBA{0x22, 0x12, 0x28, 0xff}))

	if g.ctrl.State() == system.StateEnding {
		g.endingUI.Draw(screen)
		return
	}

	g.drawStage(screen)
	g.drawOverlay(screen, g.ctrl.DeathAlpha(), g.ui.Death)
	g.drawOverlay(screen, g.ctrl.TooManyAlpha(), g.ui.TooManyMoves)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// drawStage paints the world, the entities and the player onto the layer,
// outlines the silhouette and composites it at the display alpha.
func (g *Game) drawStage(screen *ebiten.Image) {
	stage := g.ctrl.Stage()
	if stage == nil || !g.ctrl.OverlaysHidden() {
		return
	}

	g.layer.Clear()
	surface := ebitenrender.NewSurface(g.layer)
	stage.Draw(surface, g.ctrl.Offset())
	g.ctrl.Player().Draw(surface)

	g.composite.Clear()
	ebitenrender.Outline(g.composite, g.layer, g.ui.WorldOutline.Or(color.NRGBA{0x65, 0x26, 0x54, 0xff}))

	alpha := float32(min(max(g.ctrl.DisplayAlpha()/255, 0), 1))
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(g.composite, op)

	hud, err := g.hud.Text(g.ctrl.HUDValues())
	if err != nil {
		hud = err.Error()
	}
	ebitenrender.DrawOutlinedText(screen, hud, g.fonts.Small, 4, 2, 10, g.textColor(), g.outlineColor(), alpha)
}

func (g *Game) drawOverlay(screen *ebiten.Image, alpha float64, o prefabs.OverlaySpec) {
	if alpha <= 1 {
		return
	}
	a := float32(min(alpha/255, 1))
	size := o.TitleSize
	if size <= 0 {
		size = 1
	}

	cx := float64(common.BaseWidth) / 2
	ebitenrender.DrawCenteredText(screen, o.Title, g.fonts.Sized(8*size), cx, 30, g.textColor(), g.outlineColor(), a)

	bob := math.Sin(g.ctrl.Clock()/0.6) * 4
	ebitenrender.DrawCenteredText(screen, o.Subtitle, g.fonts.Small, cx, 80+bob, g.textColor(), g.outlineColor(), a)
}

func (g *Game) textColor() color.Color {
	return g.ui.TextColor.Or(color.NRGBA{0x9e, 0x34, 0x55, 0xff})
}

func (g *Game) outlineColor() color.Color {
	return g.ui.TextOutline.Or(color.NRGBA{0x22, 0x12, 0x28, 0xff})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	errs = append(errs, g.ambience.Close())
	return errors.Join(errs...)
}
