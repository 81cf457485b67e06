package alert

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestHistory_CanSendInitially(t *testing.T) {
	h := NewHistory(15 * time.Minute)

	assert.Equal(t, true, h.CanSend())

	_, recorded := h.LastAlert()
	assert.Equal(t, false, recorded)

	_, active := h.TimeUntilNext()
	assert.Equal(t, false, active)
}

func TestHistory_CooldownBlocksRepeat(t *testing.T) {
	h := NewHistory(15 * time.Minute)
	h.Record()

	assert.Equal(t, false, h.CanSend())

	remaining, active := h.TimeUntilNext()
	assert.Equal(t, true, active)
	assert.Equal(t, true, remaining > 14*time.Minute)
	assert.Equal(t, true, remaining <= 15*time.Minute)
}

func TestHistory_CooldownExpires(t *testing.T) {
	h := NewHistory(10 * time.Millisecond)
	h.Record()

	assert.Equal(t, false, h.CanSend())

	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, true, h.CanSend())

	_, active := h.TimeUntilNext()
	assert.Equal(t, false, active)
}

func TestHistory_SeedFromPersistedEvent(t *testing.T) {
	h := NewHistory(15 * time.Minute)
	h.Seed(time.Now().Add(-20 * time.Minute))

	assert.Equal(t, true, h.CanSend())

	last, recorded := h.LastAlert()
	assert.Equal(t, true, recorded)
	assert.Equal(t, true, time.Since(last) >= 20*time.Minute)
}

func TestHistory_SeedRecentBlocks(t *testing.T) {
	h := NewHistory(15 * time.Minute)
	h.Seed(time.Now().Add(-5 * time.Minute))

	assert.Equal(t, false, h.CanSend())
}
