package clockface

import (
	"os"
	"strings"
	"time"
)

// Time is a time of day in clock-position units.
type Time struct {
	// HourPos folds the minutes into the hour: 5 units per hour.
	HourPos float64
	Minutes int
	Seconds int
}

// SetTime converts hours, minutes and seconds to clock positions. Hours
// past noon are folded back by twelve; midnight stays at 0. Values are not
// range checked.
func SetTime(hours, minutes, seconds int) Time {
	if hours > 12 {
		hours -= 12
	}
	return Time{
		HourPos: float64(hours)*5 + float64(minutes)/12,
		Minutes: minutes,
		Seconds: seconds,
	}
}

// TimeOf reads the wall-clock fields of t in its own location.
func TimeOf(t time.Time) Time {
	return SetTime(t.Hour(), t.Minute(), t.Second())
}

// ParseTimeOfDay reads "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return TimeOf(t), nil
		}
	}
	return Time{}, &ConfigurationError{Field: "time", Value: s, Err: ErrInvalidTime}
}

// Noon is the time a freshly configured clock shows.
var Noon = SetTime(12, 0, 0)

type Clock interface {
	Now() time.Time
}

// SystemClock reports the current time in the local zone, looking the zone
// up again on every call so TZ and /etc/localtime changes are picked up
// while a clock is running.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().In(localZone())
}

func localZone() *time.Location {
	if tz, ok := os.LookupEnv("TZ"); ok && tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if data, err := os.ReadFile("/etc/localtime"); err == nil {
		if loc, err := time.LoadLocationFromTZData("Local", data); err == nil {
			return loc
		}
	}
	return time.Local
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

// CurrentLocalTime returns the hour, minute and second c reports.
func CurrentLocalTime(c Clock) (h, m, s int) {
	now := c.Now()
	return now.Hour(), now.Minute(), now.Second()
}
