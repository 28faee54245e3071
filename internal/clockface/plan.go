package clockface

// ShapeKind says what part of the clock a Shape draws.
type ShapeKind int

const (
	FaceShape ShapeKind = iota
	FrameShape
	MarkShape
	HandShape
	DotShape
)

type Hand int

const (
	MinuteHand Hand = iota
	HourHand
	SecondHand
)

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

// Shape is one drawing command. Circles use CX, CY and R; lines run from
// (X0, Y0) to (X1, Y1).
type Shape struct {
	Kind  ShapeKind
	Hand  Hand
	Color Color
	Width float64
	Cap   LineCap

	CX, CY, R      float64
	X0, Y0, X1, Y1 float64
}

// Plan lists the shapes that make up the clock at time t, bottom layer
// first.
func Plan(cfg Config, t Time) []Shape {
	shapes := make([]Shape, 0, 18)
	center := cfg.Center

	shapes = append(shapes,
		Shape{Kind: FaceShape, Color: cfg.FaceColor, CX: center, CY: center, R: cfg.Radius},
		Shape{Kind: FrameShape, Color: cfg.FrameColor, Width: cfg.FrameWidth, CX: center, CY: center, R: cfg.Radius},
	)

	if cfg.Marks != NoMarks {
		for i := 0; i < 12; i++ {
			quarter := i%3 == 0
			if !quarter && cfg.Marks == QuarterMarks {
				continue
			}
			length := cfg.MarkLen
			if !quarter && cfg.Marks == MixedMarks {
				length *= .6
			}
			pos := float64(i * 5)
			x0, y0 := Point(pos, cfg.Radius, center)
			x1, y1 := Point(pos, cfg.Radius-length, center)
			shapes = append(shapes, Shape{
				Kind: MarkShape, Color: cfg.FrameColor, Width: cfg.MarkWidth, Cap: CapButt,
				X0: x0, Y0: y0, X1: x1, Y1: y1,
			})
		}
	}

	hand := func(h Hand, pos, length, width float64, col Color) Shape {
		x, y := Point(pos, length, center)
		return Shape{
			Kind: HandShape, Hand: h, Color: col, Width: width, Cap: CapRound,
			X0: center, Y0: center, X1: x, Y1: y,
		}
	}

	shapes = append(shapes,
		hand(MinuteHand, float64(t.Minutes), cfg.MinHandLen, cfg.MinHandWidth, cfg.MinHandColor),
		hand(HourHand, t.HourPos, cfg.HourHandLen, cfg.HourHandWidth, cfg.HourHandColor),
	)
	if cfg.DrawSeconds {
		shapes = append(shapes,
			hand(SecondHand, float64(t.Seconds), cfg.SecHandLen, cfg.SecHandWidth, cfg.SecHandColor))
	}

	shapes = append(shapes, Shape{
		Kind: DotShape, Color: dotColor(cfg), CX: center, CY: center, R: cfg.DotSize * .75,
	})
	return shapes
}

// dotColor keeps the color of the last hand drawn unless the dot has its
// own.
func dotColor(cfg Config) Color {
	switch {
	case cfg.DotColor != nil:
		return *cfg.DotColor
	case cfg.DrawSeconds:
		return cfg.SecHandColor
	default:
		return cfg.HourHandColor
	}
}
