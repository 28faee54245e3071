package clockface

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a parsed color with normalized, non-premultiplied components.
type Color struct {
	R, G, B, A float64

	src string
}

// ParseColor accepts a named color ("red"), hex ("#f00", "#ff0000",
// "#ff000080") or rgb()/rgba() notation ("rgba(255,0,0,0.5)").
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	invalid := &ConfigurationError{Value: s, Err: ErrInvalidColor}

	switch {
	case v == "":
		return Color{}, invalid
	case v == "transparent":
		return Color{src: s}, nil
	case strings.HasPrefix(v, "#"):
		c, ok := parseHex(v)
		if !ok {
			return Color{}, invalid
		}
		c.src = s
		return c, nil
	case strings.HasPrefix(v, "rgb"):
		c, ok := parseFunctional(v)
		if !ok {
			return Color{}, invalid
		}
		c.src = s
		return c, nil
	}

	named, ok := colornames.Map[v]
	if !ok {
		return Color{}, invalid
	}
	c := ColorFrom(named)
	c.src = s
	return c, nil
}

// MustParseColor is ParseColor for known-good literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFrom converts any color.Color into a Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	out := Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
	out.src = out.rgbaString()
	return out
}

func parseHex(v string) (Color, bool) {
	switch len(v) {
	case 4, 7:
		// colorful.Hex scans with Sscanf, which lets spaces through.
		if !isHex(v[1:]) {
			return Color{}, false
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return Color{}, false
		}
		return Color{R: c.R, G: c.G, B: c.B, A: 1}, true
	case 9:
		n, err := strconv.ParseUint(v[1:], 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{
			R: float64(n>>24&0xff) / 255,
			G: float64(n>>16&0xff) / 255,
			B: float64(n>>8&0xff) / 255,
			A: float64(n&0xff) / 255,
		}, true
	}
	return Color{}, false
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

func parseFunctional(v string) (Color, bool) {
	var body string
	var want int
	switch {
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		body, want = v[len("rgba("):len(v)-1], 4
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		body, want = v[len("rgb("):len(v)-1], 3
	default:
		return Color{}, false
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, false
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		p := strings.TrimSpace(parts[i])
		scale := 255.0
		if pct, ok := strings.CutSuffix(p, "%"); ok {
			p, scale = strings.TrimSpace(pct), 100
		}
		f, ok := parseComponent(p)
		if !ok {
			return Color{}, false
		}
		ch[i] = clamp01(f / scale)
	}

	a := 1.0
	if want == 4 {
		f, ok := parseComponent(strings.TrimSpace(parts[3]))
		if !ok {
			return Color{}, false
		}
		a = clamp01(f)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}

// parseComponent reads a finite number; NaN and infinities are rejected.
func parseComponent(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// NRGBA returns the 8-bit non-premultiplied form used for compositing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// String returns the text the color was parsed from.
func (c Color) String() string {
	if c.src != "" {
		return c.src
	}
	return c.rgbaString()
}

func (c Color) rgbaString() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", to8(c.R), to8(c.G), to8(c.B),
		strconv.FormatFloat(c.A, 'g', 3, 64))
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
