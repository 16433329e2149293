package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oursky/isoduration/pkg/api"
	"github.com/oursky/isoduration/pkg/utils/channels"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
)

type testHistory struct {
	recent *channels.Broadcaster[[]api.Conversion]
}

func (h testHistory) Recent() *channels.Broadcaster[[]api.Conversion] {
	return h.recent
}

func get(h http.Handler, path string) (int, string) {
	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, httptest.NewRequest("GET", path, nil))
	body, _ := io.ReadAll(rw.Result().Body)
	return rw.Code, string(body)
}

func TestServer(t *testing.T) {
	Convey("Given a dashboard", t, func() {
		history := testHistory{recent: channels.NewBroadcaster([]api.Conversion{
			api.Parse("PT90M"),
			api.Parse("P1Y"),
		})}
		title := "Durations & more"
		server := NewServer(zap.NewNop(), &Config{Title: &title}, history)
		h := server.Handler()

		Convey("the index lists recent conversions", func() {
			code, body := get(h, "/")
			So(code, ShouldEqual, http.StatusOK)
			So(body, ShouldContainSubstring, "<h1>Durations &amp; more</h1>")
			So(body, ShouldContainSubstring, "Recent conversions (2)")
			So(body, ShouldContainSubstring, "<code>PT1H30M</code>")
			So(body, ShouldContainSubstring, "unsupported_unit")
		})
		Convey("a queried value is parsed", func() {
			code, body := get(h, "/?value=PT36H")
			So(code, ShouldEqual, http.StatusOK)
			So(body, ShouldContainSubstring, "<code>P1DT12H</code>")
			So(body, ShouldContainSubstring, "<dd>129600</dd>")
			So(body, ShouldContainSubstring, "<dd>1d</dd>")
		})
		Convey("a rejected value shows the error", func() {
			_, body := get(h, "/?value=P1H1D")
			So(body, ShouldContainSubstring, "malformed input")
		})
		Convey("styles are served", func() {
			code, body := get(h, "/styles.css")
			So(code, ShouldEqual, http.StatusOK)
			So(body, ShouldContainSubstring, "border-collapse")
		})
		Convey("unknown paths are not found", func() {
			code, _ := get(h, "/runners")
			So(code, ShouldEqual, http.StatusNotFound)
		})
	})
}
