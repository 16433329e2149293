package tomltypes

import (
	"bytes"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDuration(t *testing.T) {
	type config struct {
		HTTPTimeout  *Duration `toml:"httpTimeout,omitempty"`
		SyncInterval *Duration `toml:"syncInterval,omitempty"`
	}

	Convey("When reading a config", t, func() {
		Convey("ISO 8601 durations are decoded", func() {
			var c config
			_, err := toml.Decode(`httpTimeout = "PT10S"`, &c)
			So(err, ShouldBeNil)
			So(*c.HTTPTimeout.Value(), ShouldEqual, 10*time.Second)
		})
		Convey("missing durations have no value", func() {
			var c config
			_, err := toml.Decode(``, &c)
			So(err, ShouldBeNil)
			So(c.SyncInterval.Value(), ShouldBeNil)
		})
		Convey("Go duration syntax is rejected", func() {
			var c config
			_, err := toml.Decode(`httpTimeout = "10s"`, &c)
			So(err, ShouldNotBeNil)
		})
		Convey("calendar units are rejected", func() {
			var c config
			_, err := toml.Decode(`syncInterval = "P1M"`, &c)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unsupported unit")
		})
	})
	Convey("When writing a config", t, func() {
		var buf bytes.Buffer
		err := toml.NewEncoder(&buf).Encode(config{HTTPTimeout: &Duration{90 * time.Minute}})
		So(err, ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, `httpTimeout = "PT1H30M"`)
	})
}
