package channels

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBroadcaster(t *testing.T) {
	Convey("Given a broadcaster", t, func() {
		b := NewBroadcaster([]int{1})

		Convey("the initial value is readable", func() {
			So(b.Value(), ShouldResemble, []int{1})
		})
		Convey("publishing wakes waiters", func() {
			changed := b.Changed()
			b.Publish([]int{2})
			_, open := <-changed
			So(open, ShouldBeFalse)
			So(b.Value(), ShouldResemble, []int{2})

			select {
			case <-b.Changed():
				t.Fatal("unexpected change")
			default:
			}
		})
		Convey("updates see the current value", func() {
			b.Update(func(v []int) []int { return append(append([]int{}, v...), 3) })
			So(b.Value(), ShouldResemble, []int{1, 3})
		})
	})
}
