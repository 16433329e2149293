package isoduration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// designator ranks in the only order they may appear.
type designator int

const (
	noDesignator designator = iota
	day
	hour
	minute
	second
)

func (d designator) String() string {
	return string("?DHMS"[d])
}

func (d designator) seconds() uint64 {
	switch d {
	case day:
		return secondsPerDay
	case hour:
		return secondsPerHour
	case minute:
		return secondsPerMinute
	}
	return 1
}

// Parse parses an ISO 8601 duration of the form [-]P[nD][T[nH][nM][n[.f]S]].
//
// Years and months fail with ErrUnsupportedUnit, since they have no fixed
// length. Durations that do not fit in a Duration fail with ErrOverflow and
// anything else that does not follow the grammar fails with
// ErrMalformedInput. The returned error is a *ParseError.
func Parse(s string) (Duration, error) {
	p := parser{input: s}
	d, err := p.parse()
	if err != nil {
		return Duration{}, err
	}
	return d, nil
}

// ParseStd is Parse for a time.Duration. Durations beyond the range of
// time.Duration fail with ErrOverflow.
func ParseStd(s string) (time.Duration, error) {
	d, err := Parse(s)
	if err != nil {
		return 0, err
	}
	std, err := d.Std()
	if err != nil {
		return 0, &ParseError{
			Input:  s,
			Reason: "duration exceeds the range of time.Duration",
			Err:    err,
		}
	}
	return std, nil
}

type parser struct {
	input string
	pos   int

	seconds uint64
	nanos   uint32
}

func (p *parser) parse() (Duration, error) {
	if p.input == "" {
		return Duration{}, p.fail(ErrMalformedInput, 0, 0, "empty string")
	}

	negative := false
	if p.input[0] == '-' {
		negative = true
		p.pos++
	}
	if p.pos >= len(p.input) || p.input[p.pos] != 'P' {
		return Duration{}, p.fail(ErrMalformedInput, p.pos, p.pos+1, "expected 'P'")
	}
	p.pos++

	inTime := false
	last := noDesignator
	components := 0

	for p.pos < len(p.input) {
		if p.input[p.pos] == 'T' {
			if inTime {
				return Duration{}, p.fail(ErrMalformedInput, p.pos, p.pos+1, "'T' appears more than once")
			}
			inTime = true
			p.pos++
			if p.pos == len(p.input) {
				return Duration{}, p.fail(ErrMalformedInput, p.pos-1, p.pos, "'T' must be followed by hours, minutes or seconds")
			}
			continue
		}

		start := p.pos
		whole := p.digits()
		if whole == "" {
			return Duration{}, p.fail(ErrMalformedInput, start, start+1, "expected a number")
		}
		var frac string
		fracAt := p.pos
		if p.pos < len(p.input) && p.input[p.pos] == '.' {
			p.pos++
			frac = p.digits()
			if frac == "" {
				return Duration{}, p.fail(ErrMalformedInput, start, p.pos, "expected digits after '.'")
			}
		}
		if p.pos == len(p.input) {
			return Duration{}, p.fail(ErrMalformedInput, start, p.pos, "missing designator")
		}

		c := p.input[p.pos]
		p.pos++

		var des designator
		switch {
		case !inTime && (c == 'Y' || c == 'M'):
			unit := "year"
			if c == 'M' {
				unit = "month"
			}
			return Duration{}, p.fail(ErrUnsupportedUnit, start, p.pos, unit+"s have no fixed length")
		case !inTime && c == 'D':
			des = day
		case inTime && c == 'H':
			des = hour
		case inTime && c == 'M':
			des = minute
		case inTime && c == 'S':
			des = second
		case c == 'D':
			return Duration{}, p.fail(ErrMalformedInput, start, p.pos, "'D' is not allowed after 'T'")
		case c == 'H' || c == 'S':
			return Duration{}, p.fail(ErrMalformedInput, start, p.pos, fmt.Sprintf("'%c' is not allowed before 'T'", c))
		default:
			return Duration{}, p.fail(ErrMalformedInput, p.pos-1, p.pos, "unexpected character")
		}

		if des <= last {
			return Duration{}, p.fail(ErrMalformedInput, start, p.pos, fmt.Sprintf("'%v' is repeated or out of order", des))
		}
		if frac != "" && des != second {
			return Duration{}, p.fail(ErrMalformedInput, fracAt, p.pos, "only seconds may have a fraction")
		}

		if err := p.add(whole, des); err != nil {
			return Duration{}, p.fail(err, start, p.pos, fmt.Sprintf("'%v' value is too large", des))
		}
		if frac != "" {
			nanos, ok := fraction(frac)
			if !ok {
				return Duration{}, p.fail(ErrMalformedInput, fracAt, p.pos, "fraction is finer than nanoseconds")
			}
			p.nanos = nanos
		}

		last = des
		components++
	}

	if components == 0 {
		return Duration{}, p.fail(ErrMalformedInput, 0, 0, "no duration components")
	}

	d, ok := fromMagnitude(p.seconds, p.nanos, negative)
	if !ok {
		return Duration{}, p.fail(ErrOverflow, 0, 0, "duration exceeds the representable range")
	}
	return d, nil
}

func (p *parser) digits() string {
	start := p.pos
	for p.pos < len(p.input) && '0' <= p.input[p.pos] && p.input[p.pos] <= '9' {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) add(digits string, des designator) error {
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return ErrOverflow
		}
		return ErrMalformedInput
	}

	unit := des.seconds()
	if value > math.MaxUint64/unit {
		return ErrOverflow
	}
	value *= unit
	if p.seconds > math.MaxUint64-value {
		return ErrOverflow
	}
	p.seconds += value
	return nil
}

func (p *parser) fail(err error, from, to int, reason string) error {
	if to > len(p.input) {
		to = len(p.input)
	}
	if from > to {
		from = to
	}
	return &ParseError{
		Input:  p.input,
		Offset: from,
		Token:  p.input[from:to],
		Reason: reason,
		Err:    err,
	}
}

// fraction converts the digits after a decimal point to nanoseconds. Digits
// beyond the ninth must be zero.
func fraction(digits string) (uint32, bool) {
	var nanos uint32
	for i := 0; i < len(digits); i++ {
		d := uint32(digits[i] - '0')
		if i >= 9 {
			if d != 0 {
				return 0, false
			}
			continue
		}
		nanos = nanos*10 + d
	}
	for i := len(digits); i < 9; i++ {
		nanos *= 10
	}
	return nanos, true
}
