package game

import (
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/clockface/internal/clockface"
	"github.com/iburimskiy/clockface/internal/config"
)

const statusHeight = 20

type Options struct {
	Interval time.Duration
	Clock    clockface.Clock
	// Sound plays on every new second; nil keeps the clock silent.
	// It ticks whether or not the second hand is drawn.
	Sound  *TickSound
	Logger *log.Logger
}

// Game shows a single clock in a window and keeps it ticking.
type Game struct {
	cfg  clockface.Config
	opts Options

	sched      *loopScheduler
	display    *imageDisplay
	updater    *clockface.Updater
	background *ebiten.Image
	shadow     clockface.Color

	lastSecond int
	lastErr    error
}

func NewGame(cfg clockface.Config, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = clockface.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Game{
		cfg:        cfg,
		opts:       opts,
		sched:      newLoopScheduler(nil),
		display:    &imageDisplay{},
		shadow:     clockface.MustParseColor(config.ShadowColor),
		lastSecond: -1,
	}
}

// Size is the logical screen size: the clock, a margin around it and a
// status line.
func (g *Game) Size() (int, int) {
	w := g.cfg.Size + 2*config.WindowMargin
	return w, w + statusHeight
}

func (g *Game) start() {
	g.updater = clockface.StartPeriodicUpdates(
		g.display,
		g.sched,
		func() clockface.Config { return g.cfg },
		g.opts.Clock,
		g.opts.Interval,
	)
}

// Close stops the clock updates.
func (g *Game) Close() {
	if g.updater != nil {
		g.updater.Stop()
	}
}

func (g *Game) Update() error {
	if g.updater == nil {
		g.start()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cfg = g.cfg.WithSeconds(!g.cfg.DrawSeconds)
		g.redraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.cfg = g.cfg.WithMarks(g.cfg.Marks.Next())
		g.redraw()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.pickColor("Face Color", g.cfg.FaceColor, func(s string) (clockface.Config, error) {
			return g.cfg.WithColors(s, "", "")
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.pickColor("Hand Color", g.cfg.HourHandColor, func(s string) (clockface.Config, error) {
			return g.cfg.WithColors("", "", s)
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setErr(g.saveSnapshot())
	}

	g.sched.poll()
	g.playTick()
	return nil
}

func (g *Game) togglePause() {
	if g.updater.Stopped() {
		g.start()
		g.opts.Logger.Println("clock resumed")
		return
	}
	g.updater.Stop()
	g.opts.Logger.Println("clock paused")
}

// redraw repaints the time currently shown with the current config.
func (g *Game) redraw() {
	g.display.SetImage(clockface.Render(g.cfg, g.updater.Last()))
}

func (g *Game) pickColor(title string, current clockface.Color, apply func(string) (clockface.Config, error)) {
	s, ok, err := pickColor(title, current)
	if err != nil || !ok {
		g.setErr(err)
		return
	}
	cfg, err := apply(s)
	g.setErr(err)
	if err != nil {
		return
	}
	g.cfg = cfg
	g.redraw()
}

func (g *Game) saveSnapshot() error {
	path, ok, err := pickSavePath()
	if err != nil || !ok {
		return err
	}
	if err := savePNG(path, g.display); err != nil {
		return err
	}
	g.opts.Logger.Printf("saved clock to %s", path)
	return nil
}

func (g *Game) playTick() {
	if g.opts.Sound == nil || g.updater.Stopped() {
		return
	}
	if g.tickDue(g.updater.Last()) {
		g.opts.Sound.Play()
	}
}

// tickDue reports whether t shows a second not yet ticked for.
func (g *Game) tickDue(t clockface.Time) bool {
	if t.Seconds == g.lastSecond {
		return false
	}
	g.lastSecond = t.Seconds
	return true
}

func (g *Game) setErr(err error) {
	g.lastErr = err
	if err != nil {
		g.opts.Logger.Printf("error: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawClock(screen)

	_, h := g.Size()
	paused := g.updater != nil && g.updater.Stopped()
	ebitenutil.DebugPrintAt(screen, formatStatus(g.opts.Clock.Now(), paused, g.lastErr), 4, h-statusHeight+2)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	if g.background == nil {
		w, h := g.Size()
		top := mustHex(config.BackgroundTop)
		bottom := mustHex(config.BackgroundBottom)

		g.background = ebiten.NewImage(w, h)
		for y := 0; y < h; y++ {
			ratio := float64(y) / float64(h)
			vector.StrokeLine(g.background, 0, float32(y)+.5, float32(w), float32(y)+.5, 1, gradient(top, bottom, ratio), false)
		}
	}
	screen.DrawImage(g.background, nil)
}

func (g *Game) drawClock(screen *ebiten.Image) {
	margin := float64(config.WindowMargin)
	c := float32(margin + g.cfg.Center)
	if r := g.cfg.Radius + g.cfg.FrameWidth/2; r > 0 {
		vector.DrawFilledCircle(screen, c, c+3, float32(r), g.shadow.NRGBA(), true)
	}

	if g.display.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(margin, margin)
	screen.DrawImage(g.display.img, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}
