// Package stream provides an eager, immutable transformation stream and
// the driver that threads lazy sources through processors into a sink.
//
// Stream holds a fully materialized element sequence; every Map, Filter,
// and FlatMap returns a new Stream and never mutates the receiver, so a
// stream can be traversed any number of times.
//
//	out := stream.Of(1, 2, 3).
//	    Map(func(n int) int { return n * 2 }).
//	    Filter(predicate.GreaterThan(2)).
//	    Collect() // [4 6]
//
// Process bridges a source.Source through a chain of processors to an
// optional sink.Sink, accumulating the final item per source element:
//
//	results, err := stream.Process(ctx, src, snk, double, increment)
//
// The driver propagates the first processor, sink, or source failure and
// stops; items already delivered to the sink stay delivered.
package stream
