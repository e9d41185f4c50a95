// Package fluentseq provides chainable combinators over lazy, asynchronous
// sequences of elements.
//
// A Sequence is a producer function that, when started with a context,
// returns an unbuffered channel of elements. Receiving from that channel is
// the pull operation: it suspends until the upstream produces the next
// element, and the channel closing signals exhaustion. Sequences are
// constructed from slices, channels, or any arbitrary asynchronous source.
//
// Combinators (Map, Filter, Batch, GroupBy, Interval, and friends) wrap one
// Sequence and return a derived Sequence. Combinators are always lazy:
// building a chain composes functions only, and nothing is pulled from the
// source until a terminal operation (Each, Reduce, Collect) starts the chain.
// Elements flow through every combinator in production order; no stage
// reorders them.
//
// The Stream type is a fluent facade over the same combinators. Each chain
// call consumes its receiver and returns a new Stream; a consumed Stream
// must not be used again. A Sequence likewise supports a single sequential
// traversal by one consumer.
//
// Errors propagate by canceling the stream's context with a cause. A source
// or combinator that fails cancels the context and stops producing; terminal
// operations return the cause. No combinator catches, retries, or suppresses
// errors, and a batch or group being accumulated when the stream is canceled
// is discarded rather than partially delivered.
package fluentseq
