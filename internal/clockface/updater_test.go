package clockface

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	images []*image.RGBA
}

func (d *recordingDisplay) SetImage(img *image.RGBA) {
	d.images = append(d.images, img)
}

type manualScheduler struct {
	interval  time.Duration
	fn        func()
	cancelled int
}

func (s *manualScheduler) Every(d time.Duration, fn func()) func() {
	s.interval = d
	s.fn = fn
	return func() { s.cancelled++ }
}

type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}

func TestStartPeriodicUpdates(t *testing.T) {
	display := &recordingDisplay{}
	sched := &manualScheduler{}
	clock := &steppingClock{now: time.Date(2026, 10, 18, 15, 0, 58, 0, time.UTC)}
	cfg := New(60)

	u := StartPeriodicUpdates(display, sched, func() Config { return cfg }, clock, 0)

	require.Len(t, display.images, 1)
	require.Equal(t, DefaultInterval, sched.interval)
	require.Equal(t, SetTime(15, 0, 58), u.Last())

	sched.fn()
	require.Len(t, display.images, 2)
	require.Equal(t, 59, u.Last().Seconds)

	sched.fn()
	require.Equal(t, SetTime(15, 1, 0), u.Last())
	require.Equal(t, 60, display.images[2].Bounds().Dx())

	cfg = New(80)
	sched.fn()
	require.Len(t, display.images, 4)
	require.Equal(t, 80, display.images[3].Bounds().Dx())
}

func TestUpdaterStop(t *testing.T) {
	display := &recordingDisplay{}
	sched := &manualScheduler{}
	clock := FixedClock{Time: time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)}

	u := StartPeriodicUpdates(display, sched, func() Config { return New(40) }, clock, 5*time.Second)
	require.Equal(t, 5*time.Second, sched.interval)
	require.False(t, u.Stopped())

	u.Stop()
	require.True(t, u.Stopped())
	require.Equal(t, 1, sched.cancelled)

	// a callback already queued by the host must not redraw
	sched.fn()
	require.Len(t, display.images, 1)

	u.Stop()
	require.Equal(t, 1, sched.cancelled)
}

func TestUpdaterRefresh(t *testing.T) {
	display := &recordingDisplay{}
	sched := &manualScheduler{}
	clock := FixedClock{Time: time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)}

	u := StartPeriodicUpdates(display, sched, func() Config { return New(40) }, clock, time.Second)
	u.Refresh()
	require.Len(t, display.images, 2)
	require.Equal(t, 47.5, u.Last().HourPos)
}

// stoppingDisplay stops its updater from inside the first redraw.
type stoppingDisplay struct {
	recordingDisplay
	updater *Updater
}

func (d *stoppingDisplay) SetImage(img *image.RGBA) {
	d.recordingDisplay.SetImage(img)
	d.updater.Stop()
}

func TestUpdaterStopDuringFirstRedraw(t *testing.T) {
	sched := &manualScheduler{}
	display := &stoppingDisplay{}
	u := &Updater{
		display: display,
		config:  func() Config { return New(40) },
		clock:   FixedClock{Time: time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC)},
	}
	display.updater = u

	u.start(sched, time.Second)
	require.True(t, u.Stopped())
	require.Equal(t, 1, sched.cancelled)

	sched.fn()
	require.Len(t, display.images, 1)
}
