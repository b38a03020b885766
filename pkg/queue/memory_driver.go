package queue

import "context"

// MemoryDriver is a channel-backed in-process queue. It is the default
// driver and the one used in tests.
type MemoryDriver struct {
	ch chan []byte
}

// NewMemoryDriver returns a memory driver with a buffered channel.
func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{ch: make(chan []byte, 1024)}
}

func (d *MemoryDriver) Push(payload []byte) error {
	select {
	case d.ch <- payload:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *MemoryDriver) Pop(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case payload := <-d.ch:
		return payload, nil
	}
}
