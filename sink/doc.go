// Package sink provides the consuming end of a processed stream.
//
// A Sink receives one item at a time and is side-effecting by design:
// writing to a log, a store, or a network peer. The driver delivers each
// item to the sink before pulling the next one, so a slow sink applies
// backpressure naturally.
package sink
