package spawn

import (
	"context"
	"sync"
	"time"
)

type window struct {
	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// Throttle limits forced spawns per user: at most limit within each window.
type Throttle struct {
	windows sync.Map
	limit   int
	period  time.Duration
	now     func() time.Time
}

func NewThrottle(limit int, period time.Duration) *Throttle {
	return &Throttle{
		limit:  limit,
		period: period,
		now:    time.Now,
	}
}

// Allow records one forced spawn and returns how many are left. When the user
// is over the limit it returns false and the time until the window resets.
func (t *Throttle) Allow(userID string) (bool, int, time.Duration) {
	now := t.now()
	v, _ := t.windows.LoadOrStore(userID, &window{lastReset: now})
	w := v.(*window)

	w.mu.Lock()
	defer w.mu.Unlock()

	if now.Sub(w.lastReset) > t.period {
		w.count = 0
		w.lastReset = now
	}
	if w.count >= t.limit {
		return false, 0, t.period - now.Sub(w.lastReset)
	}
	w.count++
	return true, t.limit - w.count, 0
}

func (t *Throttle) Period() time.Duration {
	return t.period
}

func (t *Throttle) cleanup() {
	now := t.now()
	t.windows.Range(func(key, value interface{}) bool {
		w := value.(*window)
		w.mu.Lock()
		stale := now.Sub(w.lastReset) > 2*t.period
		w.mu.Unlock()
		if stale {
			t.windows.Delete(key)
		}
		return true
	})
}

func (t *Throttle) StartCleanupRoutine(ctx context.Context) {
	ticker := time.NewTicker(t.period)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.cleanup()
			}
		}
	}()
}
