package ratelimit

import "testing"

func TestUnconfiguredIsUnlimited(t *testing.T) {
	l := New()
	for i := 0; i < 100; i++ {
		if !l.Allow("anything") {
			t.Fatal("unconfigured provider should never be limited")
		}
	}
}

func TestBucketDepletes(t *testing.T) {
	l := New()
	l.Configure("fundamentals", 2, 0.001)

	if !l.Allow("fundamentals") || !l.Allow("fundamentals") {
		t.Fatal("first two calls should pass")
	}
	if l.Allow("fundamentals") {
		t.Fatal("third call should be limited")
	}
}

func TestNonPositiveConfigIgnored(t *testing.T) {
	l := New()
	l.Configure("x", 0, 5)
	l.Configure("y", 5, -1)
	if !l.Allow("x") || !l.Allow("y") {
		t.Fatal("invalid bucket config should leave provider unlimited")
	}
}
