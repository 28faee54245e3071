package game

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/clockface/internal/config"
)

var tickFormat = beep.Format{
	SampleRate:  beep.SampleRate(config.TickSampleRate),
	NumChannels: 2,
	Precision:   2,
}

// click streams a short sine burst with a quadratic fade-out.
type click struct {
	freq   float64
	length int
	pos    int
}

func newClick(freq float64, d time.Duration) *click {
	return &click{freq: freq, length: tickFormat.SampleRate.N(d)}
}

func (c *click) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.length {
			break
		}
		t := float64(c.pos) / float64(tickFormat.SampleRate)
		env := 1 - float64(c.pos)/float64(c.length)
		v := math.Sin(2*math.Pi*c.freq*t) * env * env
		samples[i] = [2]float64{v, v}
		c.pos++
		n++
	}
	return n, true
}

func (c *click) Err() error { return nil }

// TickSound plays a short sound every time the second hand moves.
type TickSound struct {
	buffer *beep.Buffer
	volume float64
}

// NewTickSound loads path (wav, mp3 or flac) into memory, or synthesizes a
// click when path is empty. volume is in the exponential units of
// effects.Volume: 0 is unchanged, -1 half as loud.
func NewTickSound(path string, volume float64) (*TickSound, error) {
	var buf *beep.Buffer
	if path == "" {
		buf = beep.NewBuffer(tickFormat)
		buf.Append(newClick(config.TickFrequency, config.TickLength))
	} else {
		var err error
		buf, err = loadSound(path)
		if err != nil {
			return nil, err
		}
	}
	return &TickSound{buffer: buf, volume: volume}, nil
}

func loadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, errors.New("unsupported file type: " + ext)
	}
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != tickFormat.SampleRate {
		s = beep.Resample(4, format.SampleRate, tickFormat.SampleRate, streamer)
	}
	buf := beep.NewBuffer(tickFormat)
	buf.Append(s)
	return buf, nil
}

// Len is the sound length in samples.
func (t *TickSound) Len() int { return t.buffer.Len() }

// Init opens the audio device. It must be called once before Play.
func (t *TickSound) Init() error {
	return speaker.Init(tickFormat.SampleRate, tickFormat.SampleRate.N(time.Second/20))
}

func (t *TickSound) Play() {
	speaker.Play(&effects.Volume{
		Streamer: t.buffer.Streamer(0, t.buffer.Len()),
		Base:     2,
		Volume:   t.volume,
	})
}
