package spawn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottle_Allow(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	th := NewThrottle(5, 2*time.Minute)
	th.now = func() time.Time { return now }

	for i := 4; i >= 0; i-- {
		ok, remaining, _ := th.Allow("u1")
		assert.True(t, ok)
		assert.Equal(t, i, remaining)
	}

	now = now.Add(30 * time.Second)
	ok, _, wait := th.Allow("u1")
	assert.False(t, ok)
	assert.Equal(t, 90*time.Second, wait)

	// other users have their own window
	ok, _, _ = th.Allow("u2")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	ok, remaining, _ := th.Allow("u1")
	assert.True(t, ok)
	assert.Equal(t, 4, remaining)
}

func TestThrottle_Cleanup(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	th := NewThrottle(5, time.Minute)
	th.now = func() time.Time { return now }

	th.Allow("u1")
	now = now.Add(3 * time.Minute)
	th.cleanup()

	_, ok := th.windows.Load("u1")
	assert.False(t, ok)
}
