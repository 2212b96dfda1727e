package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sjsage522/prodlink/services/publisher"

	"github.com/stretchr/testify/assert"
)

// MockPublisher implements the publisher.Publisher interface for testing
type MockPublisher struct {
	mu      sync.Mutex
	trims   int
	trimErr error
}

// Ensure MockPublisher implements publisher.Publisher
var _ publisher.Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(key string, message []byte) error {
	return nil
}

func (m *MockPublisher) TrimStreams() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trims++
	return m.trimErr
}

func (m *MockPublisher) Close() error {
	return nil
}

func (m *MockPublisher) Trims() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trims
}

func TestWorker_TrimsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pub := &MockPublisher{}
	w := NewWorker(ctx, pub, 5*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- w.Start()
	}()

	assert.Eventually(t, func() bool {
		return pub.Trims() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}

func TestWorker_KeepsRunningAfterTrimError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pub := &MockPublisher{trimErr: errors.New("redis down")}
	w := NewWorker(ctx, pub, 5*time.Millisecond)

	go w.Start()

	assert.Eventually(t, func() bool {
		return pub.Trims() >= 3
	}, time.Second, 5*time.Millisecond)
}
