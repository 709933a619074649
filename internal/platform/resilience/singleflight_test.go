package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlightDeduplicatesConcurrentCalls(t *testing.T) {
	var (
		group   SingleFlight
		calls   atomic.Int64
		started = make(chan struct{})
		release = make(chan struct{})
		wg      sync.WaitGroup
	)

	// Hold the first call in flight so later callers must share its result.
	wg.Add(1)
	go func() {
		defer wg.Done()
		val, err, _ := group.Do("bootstrap", func() (any, error) {
			calls.Add(1)
			close(started)
			<-release
			return "payload", nil
		})
		if err != nil || val != "payload" {
			t.Errorf("leader Do = %v, %v", val, err)
		}
	}()
	<-started

	const followers = 7
	for i := 0; i < followers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, err, shared := group.Do("bootstrap", func() (any, error) {
				calls.Add(1)
				return "fresh", nil
			})
			if err != nil {
				t.Errorf("Do: %v", err)
			}
			if !shared || val != "payload" {
				t.Errorf("follower got %v (shared=%v), want shared payload", val, shared)
			}
		}()
	}

	// Let the followers attach to the in-flight call before the leader
	// finishes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("fn ran %d times, want 1", calls.Load())
	}
}

func TestSingleFlightSeparateKeys(t *testing.T) {
	var group SingleFlight
	var calls atomic.Int64

	for _, key := range []string{"a", "b"} {
		if _, err, _ := group.Do(key, func() (any, error) {
			calls.Add(1)
			return nil, nil
		}); err != nil {
			t.Fatalf("Do(%s): %v", key, err)
		}
	}
	if calls.Load() != 2 {
		t.Errorf("fn ran %d times, want 2", calls.Load())
	}
}

func TestSingleFlightKeyReusableAfterCompletion(t *testing.T) {
	var group SingleFlight
	var calls atomic.Int64

	for i := 0; i < 3; i++ {
		group.Do("k", func() (any, error) {
			calls.Add(1)
			return nil, nil
		})
	}
	if calls.Load() != 3 {
		t.Errorf("sequential calls ran fn %d times, want 3", calls.Load())
	}
}
