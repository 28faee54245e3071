package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/clockface/internal/clockface"
	"github.com/iburimskiy/clockface/internal/config"
	"github.com/iburimskiy/clockface/internal/game"
	"github.com/iburimskiy/clockface/internal/server"
)

type cli struct {
	config.Clock `embed:""`

	Window windowCmd `cmd:"" default:"withargs" help:"Show a ticking clock in a window."`
	PNG    pngCmd    `cmd:"" name:"png" help:"Render the clock to a PNG file."`
	Serve  serveCmd  `cmd:"" help:"Serve the clock over HTTP and websocket."`
}

type windowCmd struct {
	Tick       bool    `help:"Play a sound every second."`
	TickSound  string  `help:"Sound file (wav, mp3, flac) to play instead of the built-in click." type:"existingfile"`
	TickVolume float64 `help:"Tick volume; each step of 1 doubles or halves it." default:"0"`
}

func (c *windowCmd) Run(opts *config.Clock, logger *log.Logger) error {
	cfg, err := opts.Build()
	if err != nil {
		return err
	}

	var sound *game.TickSound
	if c.Tick || c.TickSound != "" {
		sound, err = game.NewTickSound(c.TickSound, c.TickVolume)
		if err != nil {
			return fmt.Errorf("tick sound: %w", err)
		}
		if err := sound.Init(); err != nil {
			return fmt.Errorf("audio: %w", err)
		}
	}

	g := game.NewGame(cfg, game.Options{
		Interval: opts.Interval,
		Sound:    sound,
		Logger:   logger,
	})
	defer g.Close()

	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Clock - Space: pause, S: seconds, M: marks, C/H: colors, P: save, Esc/Q: quit")
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		game.ShowError(err)
		return err
	}
	return nil
}

type pngCmd struct {
	Out string `short:"o" help:"Output file." default:"clock.png" type:"path"`
	At  string `help:"Time to show as HH:MM[:SS]; defaults to now."`
}

func (c *pngCmd) Run(opts *config.Clock, logger *log.Logger) error {
	cfg, err := opts.Build()
	if err != nil {
		return err
	}

	t := clockface.TimeOf(clockface.SystemClock{}.Now())
	if c.At != "" {
		t, err = clockface.ParseTimeOfDay(c.At)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := clockface.EncodePNG(f, clockface.Render(cfg, t)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Printf("wrote %s", c.Out)
	return nil
}

type serveCmd struct {
	Addr string `help:"Listen address." default:"${default_addr}"`
}

func (c *serveCmd) Run(opts *config.Clock, logger *log.Logger) error {
	cfg, err := opts.Build()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(cfg, server.Options{
		Interval: opts.Interval,
		Logger:   logger,
	})
	return s.ListenAndServe(ctx, c.Addr)
}

func main() {
	var c cli
	logger := log.New(os.Stderr, "", log.LstdFlags)

	ctx := kong.Parse(&c,
		kong.Name(config.AppName),
		kong.Description("Analog clock renderer."),
		kong.UsageOnError(),
		kong.DefaultEnvars("CLOCKFACE"),
		kong.Configuration(kong.JSON, config.File()),
		kong.Vars{"default_addr": config.DefaultAddr},
		kong.Bind(&c.Clock, logger),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
