package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// gradient blends from top (ratio 0) to bottom (ratio 1) in Lab space.
func gradient(top, bottom colorful.Color, ratio float64) color.Color {
	return top.BlendLab(bottom, ratio).Clamped()
}

// formatStatus builds the line shown under the clock.
func formatStatus(now time.Time, paused bool, err error) string {
	status := now.Format("15:04:05 MST")
	if paused {
		status = "paused"
	}
	if err != nil {
		status += fmt.Sprintf(" | %v", err)
	}
	return status
}
