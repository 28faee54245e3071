package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/iburimskiy/clockface/internal/clockface"
)

const (
	AppName = "clockface"

	// Window
	WindowMargin = 24
	TPS          = 30

	// Background gradient
	BackgroundTop    = "#1a1d2e"
	BackgroundBottom = "#3b2f4a"
	ShadowColor      = "rgba(0,0,0,0.35)"

	// Tick sound
	TickSampleRate = 44100
	TickFrequency  = 1800.0
	TickLength     = 25 * time.Millisecond

	DefaultAddr = "127.0.0.1:8080"
)

// Dir returns the clockface configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, AppName)
}

// File returns the path to the JSON config file.
func File() string {
	return filepath.Join(Dir(), "config.json")
}

// Clock holds the clock appearance flags shared by every command.
type Clock struct {
	Size       int           `help:"Edge length of the clock bitmap in pixels." default:"100"`
	Face       string        `help:"Face color." default:"white"`
	Frame      string        `help:"Frame and mark color." default:"black"`
	Hand       string        `help:"Color of all three hands." default:"black"`
	HourHand   string        `help:"Hour hand color, overrides --hand."`
	MinuteHand string        `help:"Minute hand color, overrides --hand."`
	SecondHand string        `help:"Second hand color, overrides --hand."`
	Dot        string        `help:"Center dot color. Defaults to the last hand drawn."`
	Marks      string        `help:"Hour marks: ${enum}." enum:"none,all,mixed,quarter" default:"all"`
	Seconds    bool          `help:"Draw the second hand."`
	LineWidth  float64       `help:"Hand and mark width in pixels, 0 to scale with size."`
	FrameWidth float64       `help:"Frame width in pixels, 0 to scale with size."`
	Interval   time.Duration `help:"Redraw interval." default:"1s"`
}

// Build turns the flags into a renderer configuration.
func (o Clock) Build() (clockface.Config, error) {
	c := clockface.New(o.Size)
	if o.LineWidth > 0 {
		c = c.WithLineWidth(o.LineWidth)
	}
	if o.FrameWidth > 0 {
		c = c.WithFrameWidth(o.FrameWidth)
	}

	c, err := c.WithColors(o.Face, o.Frame, o.Hand)
	if err != nil {
		return c, err
	}
	c, err = c.WithHandColors(o.HourHand, o.MinuteHand, o.SecondHand)
	if err != nil {
		return c, err
	}
	c, err = c.WithDotColor(o.Dot)
	if err != nil {
		return c, err
	}

	if o.Marks != "" {
		m, err := clockface.ParseMarkStyle(o.Marks)
		if err != nil {
			return c, err
		}
		c = c.WithMarks(m)
	}
	return c.WithSeconds(o.Seconds), nil
}
