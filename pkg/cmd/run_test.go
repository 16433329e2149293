package cmd

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type testModule struct {
	startErr error
	runErr   error
	stopped  chan struct{}
}

func (m *testModule) Start(ctx context.Context, g *errgroup.Group) error {
	if m.startErr != nil {
		return m.startErr
	}
	g.Go(func() error {
		if m.runErr != nil {
			return m.runErr
		}
		<-ctx.Done()
		close(m.stopped)
		return nil
	})
	return nil
}

func TestRunContext(t *testing.T) {
	logger := zap.NewNop()

	Convey("When running modules", t, func() {
		Convey("they stop when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			m := &testModule{stopped: make(chan struct{})}

			done := make(chan error, 1)
			go func() { done <- RunContext(ctx, logger, []Module{m}) }()
			cancel()

			So(<-done, ShouldBeNil)
			_, open := <-m.stopped
			So(open, ShouldBeFalse)
		})
		Convey("a failing module stops the others", func() {
			failure := errors.New("boom")
			m1 := &testModule{stopped: make(chan struct{})}
			m2 := &testModule{runErr: failure}

			err := RunContext(context.Background(), logger, []Module{m1, m2})
			So(err, ShouldEqual, failure)
			_, open := <-m1.stopped
			So(open, ShouldBeFalse)
		})
		Convey("a module failing to start is reported", func() {
			failure := errors.New("no port")
			err := RunContext(context.Background(), logger, []Module{&testModule{startErr: failure}})
			So(errors.Is(err, failure), ShouldBeTrue)
		})
	})
}
