// internal/host/game.go
package host

import (
	"errors"
	"log"
	"sort"
	"time"

	"go-decryptviz/internal/app"
	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/demo"
	"go-decryptviz/internal/event"
	"go-decryptviz/internal/ui"
	"go-decryptviz/internal/utils"
	"go-decryptviz/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// errSimulatedFailure подставляется в Fail по клавише F.
var errSimulatedFailure = errors.New("simulated decrypt failure")

// Game ebiten-хост: планировщик кадров, две поверхности, HUD и демо-драйвер.
type Game struct {
	cfg        *config.Config
	res        *render.Resources
	background *offscreen
	foreground *offscreen
	screen     *render.EbitenCanvas

	ctrl   *app.Controller
	hud    *ui.HUD
	driver *demo.Decryptor

	nextID  app.FrameID
	pending map[app.FrameID]app.FrameFunc

	layoutW, layoutH int
	lastUpdateTime   time.Time
}

var _ app.Scheduler = (*Game)(nil)

// NewGame собирает хост. in задаёт стартовые режим и прогресс.
func NewGame(cfg *config.Config, in component.Inputs) *Game {
	g := &Game{
		cfg:            cfg,
		res:            render.NewResources(),
		pending:        make(map[app.FrameID]app.FrameFunc),
		layoutW:        cfg.Window.Width,
		layoutH:        cfg.Window.Height,
		lastUpdateTime: time.Now(),
	}
	g.background = newOffscreen(app.BackgroundSurface, g.res)
	g.foreground = newOffscreen(app.ForegroundSurface, g.res)

	rng := utils.NewPRNGService(cfg.Seed)
	log.Printf("[host] seed %d", rng.Seed())

	events := event.NewDispatcher()
	(&app.LogListener{}).Attach(events)
	g.hud = ui.NewHUD(cfg.Window.Width, cfg.Window.Height)
	g.hud.Attach(events)

	g.ctrl = app.NewController(cfg, rng, g, events, g.background, g.foreground)
	g.driver = demo.NewDecryptor(cfg.Demo, g.ctrl, events)

	g.ctrl.SetMode(in.Mode)
	g.ctrl.SetProgress(in.Progress)
	g.background.resize(cfg.Window.Width, cfg.Window.Height)
	g.foreground.resize(cfg.Window.Width, cfg.Window.Height)
	g.ctrl.Mount()
	return g
}

func (g *Game) RequestFrame(fn app.FrameFunc) app.FrameID {
	g.nextID++
	g.pending[g.nextID] = fn
	return g.nextID
}

func (g *Game) CancelFrame(id app.FrameID) {
	delete(g.pending, id)
}

// runFrames вызывает запросы, поставленные до начала кадра.
func (g *Game) runFrames(now time.Time) {
	ids := make([]app.FrameID, 0, len(g.pending))
	for id := range g.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if fn, ok := g.pending[id]; ok {
			delete(g.pending, id)
			fn(now)
		}
	}
}

func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.lastUpdateTime = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Unmount()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.driver.Fail(errSimulatedFailure)
	}

	if g.layoutW != g.background.w || g.layoutH != g.background.h {
		g.hud = g.rebuildHUD()
		g.background.resize(g.layoutW, g.layoutH)
		g.foreground.resize(g.layoutW, g.layoutH)
	}

	g.driver.Update(deltaTime)
	g.hud.Update(deltaTime)
	g.runFrames(now)
	return nil
}

// rebuildHUD раскладывает HUD под новый размер окна, сохраняя подписку.
func (g *Game) rebuildHUD() *ui.HUD {
	events := g.ctrl.Events()
	events.Unsubscribe(event.ModeChanged, g.hud)
	events.Unsubscribe(event.ProgressCompleted, g.hud)
	hud := ui.NewHUD(g.layoutW, g.layoutH)
	hud.Attach(events)
	return hud
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.background.drawTo(screen)
	g.foreground.drawTo(screen)

	if g.screen == nil || g.screen.Image() != screen {
		g.screen = render.NewEbitenCanvas(screen, g.res)
	}
	g.hud.Draw(g.screen, g.ctrl.Inputs(), time.Now())
}

// Layout следует за размером окна: поверхности пересоздаются в Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run открывает окно и крутит цикл до закрытия.
func Run(cfg *config.Config, in component.Inputs) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(cfg, in)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
