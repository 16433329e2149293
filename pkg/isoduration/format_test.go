package isoduration

import (
	"math"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	Convey("When formatting a duration", t, func() {
		Convey("the zero duration is PT0S", func() {
			So(Format(Duration{}), ShouldEqual, "PT0S")
			So(Format(New(0, 0)), ShouldEqual, "PT0S")
		})
		Convey("single units use a single designator", func() {
			So(Format(New(86400, 0)), ShouldEqual, "P1D")
			So(Format(New(3600, 0)), ShouldEqual, "PT1H")
			So(Format(New(30*60, 0)), ShouldEqual, "PT30M")
			So(Format(New(45, 0)), ShouldEqual, "PT45S")
			So(Format(New(5*86400, 0)), ShouldEqual, "P5D")
		})
		Convey("mixed units appear in D, H, M, S order", func() {
			So(Format(New(2*86400+3*3600+30*60+15, 0)), ShouldEqual, "P2DT3H30M15S")
			So(Format(New(86400+2*3600+30*60, 0)), ShouldEqual, "P1DT2H30M")
			So(Format(New(86400+1, 0)), ShouldEqual, "P1DT1S")
			So(Format(New(3661, 0)), ShouldEqual, "PT1H1M1S")
		})
		Convey("days are not folded into larger units", func() {
			So(Format(New(400*86400, 0)), ShouldEqual, "P400D")
		})
		Convey("fractional seconds use the fewest digits", func() {
			So(Format(New(0, 500_000_000)), ShouldEqual, "PT0.5S")
			So(Format(New(10, 500_000_000)), ShouldEqual, "PT10.5S")
			So(Format(New(0, 120_000_000)), ShouldEqual, "PT0.12S")
			So(Format(New(1, 1)), ShouldEqual, "PT1.000000001S")
			So(Format(New(60, 250_000_000)), ShouldEqual, "PT1M0.25S")
		})
		Convey("negative durations are prefixed with '-'", func() {
			So(Format(New(-1, 0)), ShouldEqual, "-PT1S")
			So(Format(New(-86400-3600, 0)), ShouldEqual, "-P1DT1H")
			So(Format(FromStd(-1500*time.Millisecond)), ShouldEqual, "-PT1.5S")
			So(Format(New(0, -1)), ShouldEqual, "-PT0.000000001S")
		})
		Convey("the extremes of the range are formatted", func() {
			So(Format(New(math.MaxInt64, 999_999_999)), ShouldEqual, "P106751991167300DT15H30M7.999999999S")
			So(Format(New(math.MinInt64, 0)), ShouldEqual, "-P106751991167300DT15H30M8S")
		})
		Convey("formatting is idempotent", func() {
			d := New(2*86400+17, 40_000_000)
			So(Format(d), ShouldEqual, Format(d))
			So(d.String(), ShouldEqual, Format(d))
		})
	})
}

func TestFormatStd(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "PT0S"},
		{time.Nanosecond, "PT0.000000001S"},
		{time.Millisecond, "PT0.001S"},
		{90 * time.Second, "PT1M30S"},
		{36 * time.Hour, "P1DT12H"},
		{-2 * time.Hour, "-PT2H"},
		{math.MaxInt64, "P106751DT23H47M16.854775807S"},
		{math.MinInt64, "-P106751DT23H47M16.854775808S"},
	}
	for _, test := range tests {
		assert.Equal(t, FormatStd(test.d), test.want)
	}
}
