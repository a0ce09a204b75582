// Package atomics provides four lock-free, wait-free concurrent
// primitives for latency-sensitive code that cannot tolerate blocking
// synchronization: Pool, an unbounded LIFO object pool; Mirror, a
// single-writer/many-reader seqlock snapshot; Buffer, a bounded MPMC
// byte FIFO with packed cursors; and Bag, a bounded 32-slot MPMC
// unordered container with packed per-slot state.
//
// Pool, Buffer and Bag each encode all of their coordination state in
// a single atomic word so that every mutation is one compare-and-swap
// on one location; Mirror uses a pair of atomic counters as a seqlock. There is no surrounding system: no I/O, no configuration,
// no persistence. Callers own the lifetime of whatever payloads they
// hand these primitives.
package atomics
