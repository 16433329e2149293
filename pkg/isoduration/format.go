package isoduration

import (
	"strconv"
	"time"
)

// Format returns the canonical ISO 8601 representation of d, such as
// "P1DT2H30M" or "PT1.5S". Negative durations are prefixed with '-' and the
// zero duration is "PT0S". Days are never folded into larger units.
func Format(d Duration) string {
	seconds, nanos, negative := d.magnitude()
	if seconds == 0 && nanos == 0 {
		return "PT0S"
	}

	// Longest is "P106751991167300DT15H30M7.999999999S"
	buf := make([]byte, 0, 40)
	if negative {
		buf = append(buf, '-')
	}
	buf = append(buf, 'P')

	days := seconds / secondsPerDay
	seconds %= secondsPerDay
	hours := seconds / secondsPerHour
	seconds %= secondsPerHour
	minutes := seconds / secondsPerMinute
	seconds %= secondsPerMinute

	if days > 0 {
		buf = strconv.AppendUint(buf, days, 10)
		buf = append(buf, 'D')
	}
	if hours == 0 && minutes == 0 && seconds == 0 && nanos == 0 {
		return string(buf)
	}

	buf = append(buf, 'T')
	if hours > 0 {
		buf = strconv.AppendUint(buf, hours, 10)
		buf = append(buf, 'H')
	}
	if minutes > 0 {
		buf = strconv.AppendUint(buf, minutes, 10)
		buf = append(buf, 'M')
	}
	if seconds > 0 || nanos > 0 {
		buf = strconv.AppendUint(buf, seconds, 10)
		buf = appendFrac(buf, nanos)
		buf = append(buf, 'S')
	}
	return string(buf)
}

// FormatStd is Format for a time.Duration.
func FormatStd(d time.Duration) string {
	return Format(FromStd(d))
}

// appendFrac appends "." and the nanoseconds as a decimal fraction with
// trailing zeros removed. Nothing is appended for zero.
func appendFrac(buf []byte, nanos uint32) []byte {
	if nanos == 0 {
		return buf
	}

	var digits [9]byte
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = byte('0' + nanos%10)
		nanos /= 10
	}
	end := len(digits)
	for digits[end-1] == '0' {
		end--
	}

	buf = append(buf, '.')
	return append(buf, digits[:end]...)
}
