package loader

import (
	"context"
	"runtime"
)

// computeSlots bounds the number of decrypt/decode units running at
// once, so that many assets loading concurrently saturate the CPUs
// without oversubscribing them. Each load is already invoked on its
// own goroutine by the asset framework; the pool only limits how many
// of them burn CPU simultaneously.
var computeSlots = make(chan struct{}, runtime.NumCPU())

// offload runs fn under a compute slot, honoring cancellation while
// waiting for one.
func offload(ctx context.Context, fn func() (any, error)) (any, error) {
	select {
	case computeSlots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	defer func() { <-computeSlots }()

	return fn()
}
