package trace

import (
	"testing"
	"time"
)

func TestComputeBackoff_GrowsExponentiallyAndCaps(t *testing.T) {
	base := 10 * time.Millisecond
	maxDelay := 50 * time.Millisecond

	d0 := computeBackoff(0, base, maxDelay)
	if d0 < base || d0 > base+base {
		t.Errorf("attempt 0: expected delay in [%v, %v], got %v", base, base+base, d0)
	}

	d3 := computeBackoff(3, base, maxDelay)
	if d3 < maxDelay || d3 > maxDelay+base {
		t.Errorf("attempt 3: expected delay capped near %v, got %v", maxDelay, d3)
	}
}

func TestDefaultRetryPolicy(t *testing.T) {
	p := defaultRetryPolicy()
	if p.maxAttempts != 3 {
		t.Errorf("expected 3 max attempts, got %d", p.maxAttempts)
	}
	if p.baseDelay <= 0 || p.maxDelay <= p.baseDelay {
		t.Errorf("expected baseDelay < maxDelay, got base=%v max=%v", p.baseDelay, p.maxDelay)
	}
}
