package live_test

import (
	"context"
	"testing"
	"time"

	"refuge/internal/live"
	"refuge/internal/live/livetest"

	"github.com/stretchr/testify/assert"
)

func TestCell_SubscribeReceivesCurrentThenLatest(t *testing.T) {
	c := live.NewCell("anonymous")
	f := c.Subscribe(context.Background())
	defer f.Close()

	assert.Equal(t, "anonymous", livetest.Next(t, f))

	c.Set("alice")
	assert.Equal(t, "alice", livetest.Next(t, f))
	assert.Equal(t, "alice", c.Get())
}

func TestCell_LastValueIsNeverSkipped(t *testing.T) {
	c := live.NewCell(0)
	f := c.Subscribe(context.Background())
	defer f.Close()

	livetest.Next(t, f)
	for i := 1; i <= 100; i++ {
		c.Set(i)
	}

	got := livetest.Eventually(t, f, func(v int) bool { return v == 100 })
	assert.Equal(t, 100, got)
}

func TestCell_UnsubscribeStopsDelivery(t *testing.T) {
	c := live.NewCell(1)
	f := c.Subscribe(context.Background())
	livetest.Next(t, f)

	f.Close()
	c.Set(2)

	_, ok := <-f.Updates()
	assert.False(t, ok)
}

func TestCell_ResubscribeStartsFreshCycle(t *testing.T) {
	c := live.NewCell("a")
	first := c.Subscribe(context.Background())
	livetest.Next(t, first)
	first.Close()

	c.Set("b")

	second := c.Subscribe(context.Background())
	defer second.Close()
	assert.Equal(t, "b", livetest.Next(t, second))
	livetest.Quiet(t, second, 50*time.Millisecond)
}

func TestCell_CompareAndSet(t *testing.T) {
	c := live.NewCell(1)

	assert.False(t, c.CompareAndSet(func(v int) bool { return v == 2 }, 3))
	assert.Equal(t, 1, c.Get())

	assert.True(t, c.CompareAndSet(func(v int) bool { return v == 1 }, 3))
	assert.Equal(t, 3, c.Get())
}
