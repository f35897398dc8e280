package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_Window(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4", 3, time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be within the limit", i+1)
		}
	}

	allowed, err := limiter.Allow(ctx, "1.2.3.4", 3, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Error("fourth request should exceed the limit")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "1.2.3.4", 1, time.Minute); !allowed {
		t.Fatal("first request should pass")
	}
	if allowed, _ := limiter.Allow(ctx, "1.2.3.4", 1, time.Minute); allowed {
		t.Error("second request from the same key should be rejected")
	}
	if allowed, _ := limiter.Allow(ctx, "5.6.7.8", 1, time.Minute); !allowed {
		t.Error("other keys have their own window")
	}
}

func TestMemoryLimiter_WindowExpires(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	if allowed, _ := limiter.Allow(ctx, "1.2.3.4", 1, 10*time.Millisecond); !allowed {
		t.Fatal("first request should pass")
	}

	time.Sleep(20 * time.Millisecond)

	if allowed, _ := limiter.Allow(ctx, "1.2.3.4", 1, 10*time.Millisecond); !allowed {
		t.Error("a new window should open after the old one expires")
	}
}
