package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 after t1, got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	jump := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(jump)
	if now := mock.Now(); !now.Equal(jump) {
		t.Errorf("Expected %v after SetTime, got %v", jump, now)
	}

	mock.Advance(50 * time.Millisecond)
	mock.Advance(1450 * time.Millisecond)
	if now, want := mock.Now(), jump.Add(1500*time.Millisecond); !now.Equal(want) {
		t.Errorf("Expected %v after advances, got %v", want, now)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	done := make(chan bool)
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
			done <- true
		}()
	}
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
			done <- true
		}()
	}
	for i := 0; i < 9; i++ {
		<-done
	}

	if now, want := mock.Now(), start.Add(250*time.Millisecond); !now.Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, now)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
