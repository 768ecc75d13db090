package openstate

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	open    atomic.Bool
	calls   atomic.Int32
	block   chan struct{}
	entered chan struct{}
}

func (c *fakeChecker) IsOpenNow(_ context.Context) bool {
	c.calls.Add(1)
	if c.entered != nil {
		c.entered <- struct{}{}
	}
	if c.block != nil {
		<-c.block
	}
	return c.open.Load()
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRecorder() *Recorder {
	return &Recorder{
		StoreOpen: prometheus.NewGauge(prometheus.GaugeOpts{Name: "store_open"}),
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{Name: "refresh_total"}, []string{"result"}),
	}
}

func TestPoller_RefreshStoresValue(t *testing.T) {
	checker := &fakeChecker{}
	recorder := newRecorder()
	poller := NewPoller(checker, time.Minute, recorder, nopLogger{})

	fixed := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	poller.now = func() time.Time { return fixed }

	assert.False(t, poller.IsOpen(), "closed before the first refresh")
	assert.True(t, poller.LastChecked().IsZero())

	checker.open.Store(true)
	require.True(t, poller.Refresh(context.Background()))

	assert.True(t, poller.IsOpen())
	assert.Equal(t, fixed, poller.LastChecked())
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.StoreOpen))

	checker.open.Store(false)
	require.True(t, poller.Refresh(context.Background()))

	assert.False(t, poller.IsOpen())
	assert.Equal(t, float64(0), testutil.ToFloat64(recorder.StoreOpen))
	assert.Equal(t, float64(2), testutil.ToFloat64(recorder.Refreshes.WithLabelValues(resultOK)))
}

func TestPoller_CoalescesOverlappingRefreshes(t *testing.T) {
	checker := &fakeChecker{
		block:   make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	checker.open.Store(true)
	recorder := newRecorder()
	poller := NewPoller(checker, time.Minute, recorder, nopLogger{})

	done := make(chan bool)
	go func() {
		done <- poller.Refresh(context.Background())
	}()

	<-checker.entered

	assert.False(t, poller.Refresh(context.Background()), "second refresh is skipped while the first is in flight")

	close(checker.block)
	assert.True(t, <-done)

	assert.Equal(t, int32(1), checker.calls.Load())
	assert.True(t, poller.IsOpen())
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.Refreshes.WithLabelValues(resultSkipped)))
}

func TestPoller_RunRefreshesImmediatelyAndStops(t *testing.T) {
	checker := &fakeChecker{}
	checker.open.Store(true)
	poller := NewPoller(checker, time.Hour, nil, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- poller.Run(ctx)
	}()

	require.Eventually(t, poller.IsOpen, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after context cancellation")
	}
}

func TestNewPoller_DefaultInterval(t *testing.T) {
	poller := NewPoller(&fakeChecker{}, 0, nil, nopLogger{})

	assert.Equal(t, DefaultInterval, poller.interval)
}
