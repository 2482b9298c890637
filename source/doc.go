// Package source provides pull-based, lazy item production for the
// stream driver.
//
// A Source yields a fresh Iterator per Produce call; no work happens until
// items are pulled. Each combinator pulls from the previous source on
// demand, providing natural backpressure, and a traversal can be abandoned
// at any point by closing its iterator. Sources may be unbounded; pair
// them with Take or a cancellable context.
//
// Synchronous combinators: Map, Filter, FlatMap, Tap, Take, Concat,
// Reduce, Batch. Buffer decouples producer and consumer with a goroutine
// and a buffered channel.
//
//	src := source.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := source.Map(src, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	items, _ := source.Collect(ctx, doubled)
package source
