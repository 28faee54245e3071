package clockface

import (
	"fmt"
	"strings"
)

// MarkStyle selects which hour marks are drawn around the face.
type MarkStyle int

const (
	NoMarks      MarkStyle = iota // no marks
	AllMarks                      // twelve marks, all the same length
	MixedMarks                    // full length at 12, 3, 6 and 9, shorter elsewhere
	QuarterMarks                  // only 12, 3, 6 and 9
)

var markStyleNames = [...]string{"none", "all", "mixed", "quarter"}

func (m MarkStyle) String() string {
	if m < 0 || int(m) >= len(markStyleNames) {
		return fmt.Sprintf("MarkStyle(%d)", int(m))
	}
	return markStyleNames[m]
}

// Next cycles through the styles in declaration order.
func (m MarkStyle) Next() MarkStyle {
	return (m + 1) % MarkStyle(len(markStyleNames))
}

func ParseMarkStyle(s string) (MarkStyle, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, name := range markStyleNames {
		if v == name {
			return MarkStyle(i), nil
		}
	}
	return 0, &ConfigurationError{Field: "marks", Value: s, Err: ErrInvalidMarkStyle}
}

// Config describes how a clock is drawn. It is a value type: every With
// method returns a modified copy and leaves the receiver alone, so a Config
// can be shared freely between goroutines.
type Config struct {
	Size   int
	Center float64
	Radius float64

	FrameWidth    float64
	MarkWidth     float64
	MarkLen       float64
	HourHandWidth float64
	MinHandWidth  float64
	SecHandWidth  float64
	DotSize       float64

	HourHandLen float64
	MinHandLen  float64
	SecHandLen  float64

	Marks       MarkStyle
	DrawSeconds bool

	FaceColor     Color
	FrameColor    Color
	HourHandColor Color
	MinHandColor  Color
	SecHandColor  Color

	// DotColor overrides the center dot color. When nil the dot takes the
	// color of the last hand drawn.
	DotColor *Color
}

const DefaultSize = 100

// New returns a white clock with black frame and hands, all marks and no
// second hand, sized to size pixels.
func New(size int) Config {
	c := Config{
		Marks:         AllMarks,
		FaceColor:     MustParseColor("white"),
		FrameColor:    MustParseColor("black"),
		HourHandColor: MustParseColor("black"),
		MinHandColor:  MustParseColor("black"),
		SecHandColor:  MustParseColor("black"),
	}
	return c.WithSize(size, true)
}

// WithSize changes the bitmap size. With resizeDependents the frame, line
// widths and lengths are rescaled to the new size; otherwise they are kept
// as they are. The radius is always recomputed.
func (c Config) WithSize(size int, resizeDependents bool) Config {
	c.Size = size
	half := float64(size) / 2
	c.Center = half
	c.Radius = half
	if resizeDependents {
		c.FrameWidth = float64(size) / 50
		c = c.WithLineWidth(float64(size) / 50)
		c.MinHandLen = half * .75
		c.HourHandLen = half * .5
		c.SecHandLen = half * .75
		c.MarkLen = c.Radius - c.Radius*.92 + c.FrameWidth/3
	}
	c.Radius = half - c.FrameWidth
	return c
}

// WithLineWidth sets every line width except the frame from one value.
func (c Config) WithLineWidth(width float64) Config {
	c.HourHandWidth = width
	c.MinHandWidth = width
	c.SecHandWidth = width * .5
	c.DotSize = width
	c.MarkWidth = width
	return c
}

// WithFrameWidth sets the frame width and shrinks the face so the frame
// stays inside the bitmap.
func (c Config) WithFrameWidth(width float64) Config {
	c.FrameWidth = width
	c.Radius = float64(c.Size)/2 - width
	return c
}

// WithColors sets the face, frame and hand colors. An empty string leaves
// that color as it is; hand applies to all three hands.
func (c Config) WithColors(face, frame, hand string) (Config, error) {
	next := c
	if err := setColor(&next.FaceColor, "face", face); err != nil {
		return c, err
	}
	if err := setColor(&next.FrameColor, "frame", frame); err != nil {
		return c, err
	}
	if hand != "" {
		col, err := parseField("hand", hand)
		if err != nil {
			return c, err
		}
		next.HourHandColor, next.MinHandColor, next.SecHandColor = col, col, col
	}
	return next, nil
}

// WithHandColors sets hand colors individually. Empty strings are skipped.
func (c Config) WithHandColors(hour, minute, second string) (Config, error) {
	next := c
	if err := setColor(&next.HourHandColor, "hour hand", hour); err != nil {
		return c, err
	}
	if err := setColor(&next.MinHandColor, "minute hand", minute); err != nil {
		return c, err
	}
	if err := setColor(&next.SecHandColor, "second hand", second); err != nil {
		return c, err
	}
	return next, nil
}

// WithDotColor gives the center dot its own color. An empty string goes
// back to using the last hand's color.
func (c Config) WithDotColor(dot string) (Config, error) {
	if dot == "" {
		c.DotColor = nil
		return c, nil
	}
	col, err := parseField("dot", dot)
	if err != nil {
		return c, err
	}
	c.DotColor = &col
	return c, nil
}

func (c Config) WithMarks(m MarkStyle) Config {
	c.Marks = m
	return c
}

func (c Config) WithSeconds(draw bool) Config {
	c.DrawSeconds = draw
	return c
}

func setColor(dst *Color, field, s string) error {
	if s == "" {
		return nil
	}
	col, err := parseField(field, s)
	if err != nil {
		return err
	}
	*dst = col
	return nil
}

func parseField(field, s string) (Color, error) {
	col, err := ParseColor(s)
	if err != nil {
		if cerr, ok := err.(*ConfigurationError); ok {
			cerr.Field = field
		}
		return Color{}, err
	}
	return col, nil
}
