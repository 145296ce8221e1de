package scheduler

import (
	"testing"
	"time"
)

func TestBlacklistCleanupStartStop(t *testing.T) {
	// The first purge fires a day after boot, so a nil db is never touched
	// inside this test.
	j := StartBlacklistCleanupScheduler(nil)
	if j == nil || j.cron == nil {
		t.Fatal("scheduler did not start")
	}

	done := make(chan struct{})
	go func() {
		j.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}

	// Stop must be safe to call again after shutdown.
	j.Stop()
}
