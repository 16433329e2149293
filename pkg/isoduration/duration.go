package isoduration

import (
	"math"
	"time"
)

const (
	nanosPerSecond = 1_000_000_000

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Duration is a signed span of time held as whole seconds plus a
// nanosecond remainder.
//
// The seconds part is the floor of the duration, so the nanosecond part is
// always in [0, 1e9): -1.5s is stored as -2s + 500000000ns. The zero value is
// the zero duration.
type Duration struct {
	seconds int64
	nanos   int32
}

// New returns seconds+nanos, carrying any nanos outside [0, 1e9) into the
// seconds part.
func New(seconds int64, nanos int64) Duration {
	seconds += nanos / nanosPerSecond
	nanos %= nanosPerSecond
	if nanos < 0 {
		nanos += nanosPerSecond
		seconds--
	}
	return Duration{seconds: seconds, nanos: int32(nanos)}
}

func FromStd(d time.Duration) Duration {
	return New(0, int64(d))
}

// Seconds returns the whole seconds of d, rounded towards negative infinity.
func (d Duration) Seconds() int64 { return d.seconds }

// Nanos returns the non-negative sub-second remainder of d.
func (d Duration) Nanos() int32 { return d.nanos }

func (d Duration) IsZero() bool { return d.seconds == 0 && d.nanos == 0 }

func (d Duration) IsNegative() bool { return d.seconds < 0 }

// Std converts d to a time.Duration. It fails with ErrOverflow when d is
// outside the range of time.Duration (about 292 years).
func (d Duration) Std() (time.Duration, error) {
	const maxSeconds = math.MaxInt64 / nanosPerSecond

	seconds, nanos, negative := d.magnitude()

	maxNanos := uint32(math.MaxInt64 % nanosPerSecond)
	if negative {
		maxNanos++
	}
	if seconds > maxSeconds || (seconds == maxSeconds && nanos > maxNanos) {
		return 0, ErrOverflow
	}

	total := seconds*nanosPerSecond + uint64(nanos)
	if negative {
		return time.Duration(-int64(total)), nil
	}
	return time.Duration(total), nil
}

func (d Duration) String() string {
	return Format(d)
}

// magnitude returns |d| as whole seconds and nanoseconds together with the
// sign of d. The seconds are unsigned so that the most negative Duration can
// be represented.
func (d Duration) magnitude() (seconds uint64, nanos uint32, negative bool) {
	if d.seconds >= 0 {
		return uint64(d.seconds), uint32(d.nanos), false
	}
	if d.nanos == 0 {
		return uint64(-(d.seconds + 1)) + 1, 0, true
	}
	return uint64(-(d.seconds + 1)), uint32(nanosPerSecond - d.nanos), true
}

// fromMagnitude is the inverse of magnitude. It reports false when the result
// does not fit in a Duration.
func fromMagnitude(seconds uint64, nanos uint32, negative bool) (Duration, bool) {
	if !negative {
		if seconds > math.MaxInt64 {
			return Duration{}, false
		}
		return Duration{seconds: int64(seconds), nanos: int32(nanos)}, true
	}
	if nanos == 0 {
		if seconds > 1<<63 {
			return Duration{}, false
		}
		return Duration{seconds: int64(-seconds)}, true
	}
	if seconds > math.MaxInt64 {
		return Duration{}, false
	}
	return Duration{seconds: -int64(seconds) - 1, nanos: int32(nanosPerSecond - nanos)}, true
}
