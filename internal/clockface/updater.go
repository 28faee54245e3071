package clockface

import (
	"image"
	"sync"
	"time"
)

const DefaultInterval = time.Second

// Display is whatever shows the rendered bitmap: a window image, a network
// stream, a file.
type Display interface {
	SetImage(img *image.RGBA)
}

// Scheduler runs fn every d on the host's event loop until the returned
// cancel function is called.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// Updater keeps a Display showing the current time.
type Updater struct {
	display Display
	config  func() Config
	clock   Clock

	mu      sync.Mutex
	cancel  func()
	stopped bool
	last    Time
}

// StartPeriodicUpdates renders the current time onto display right away
// and then again every interval on sched. config is consulted on every
// tick, so configuration changes show up on the next redraw. The returned
// Updater must be stopped when the display goes away.
func StartPeriodicUpdates(display Display, sched Scheduler, config func() Config, clock Clock, interval time.Duration) *Updater {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	u := &Updater{
		display: display,
		config:  config,
		clock:   clock,
	}
	u.start(sched, interval)
	return u
}

func (u *Updater) start(sched Scheduler, interval time.Duration) {
	u.Refresh()

	cancel := sched.Every(interval, u.tick)
	u.mu.Lock()
	u.cancel = cancel
	stopped := u.stopped
	u.mu.Unlock()
	// Stop may already have run from inside the first redraw.
	if stopped {
		cancel()
	}
}

func (u *Updater) tick() {
	u.mu.Lock()
	stopped := u.stopped
	u.mu.Unlock()
	if stopped {
		return
	}
	u.Refresh()
}

// Refresh reads the clock and redraws immediately.
func (u *Updater) Refresh() {
	h, m, s := CurrentLocalTime(u.clock)
	t := SetTime(h, m, s)
	img := Render(u.config(), t)

	u.mu.Lock()
	u.last = t
	u.mu.Unlock()
	u.display.SetImage(img)
}

// Last returns the time shown by the most recent redraw.
func (u *Updater) Last() Time {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.last
}

// Stop cancels further updates. It is safe to call more than once, also
// from inside Display.SetImage. A tick that has not started drawing when
// Stop returns never draws; one already drawing on another goroutine
// finishes its SetImage.
func (u *Updater) Stop() {
	u.mu.Lock()
	if u.stopped {
		u.mu.Unlock()
		return
	}
	u.stopped = true
	cancel := u.cancel
	u.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (u *Updater) Stopped() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.stopped
}
