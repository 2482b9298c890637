// Package retry provides retry with exponential backoff for flaky
// sources, sinks, and processors.
//
// By default only transient failures are retried: context cancellation
// always aborts, and errors carrying a retryable code (source, sink,
// timeout) are attempted again. Wrap a sink or processor to make an
// individual stream step resilient:
//
//	snk := retry.Sink(remote, retry.DefaultConfig())
//	proc := retry.Processor(enrich, retry.DefaultConfig())
package retry
