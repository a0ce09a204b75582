package atomics

import "sync/atomic"

// Image is a mutable value that knows how to overwrite its own
// contents from another Image of a compatible type. It is the copy
// target Mirror snapshots into and out of.
type Image[T any] interface {
	// MirrorFrom overwrites the receiver's contents from other.
	MirrorFrom(other Image[T])
}

// Mirror holds a single Image that one writer goroutine updates and
// any number of reader goroutines snapshot, using a seqlock over two
// monotonically increasing counters. Writes cost two CAS-equivalent
// atomic ops; reads are wait-free under the single-writer contract.
type Mirror[T any] struct {
	initial Image[T]

	before atomic.Uint64
	after  atomic.Uint64
}

// NewMirror creates a Mirror backed by initial, which is used as the
// canonical storage and must never be passed to Write or Read as the
// argument.
func NewMirror[T any](initial Image[T]) *Mirror[T] {
	return &Mirror[T]{initial: initial}
}

// Write copies from into the mirror's stored image. It is only safe
// to call from a single writer goroutine at a time — the single-writer
// contract is the caller's responsibility, not something Write
// enforces beyond detecting its violation.
//
// Write panics if from is the mirror's own initial image, or if a
// concurrent second writer is detected (the after-counter CAS fails,
// which cannot happen under a correctly single-writer caller).
func (m *Mirror[T]) Write(from Image[T]) {
	if sameImage(from, m.initial) {
		panic("atomics: Mirror.Write called with the mirror's own initial image")
	}

	b := m.before.Add(1) - 1
	m.initial.MirrorFrom(from)
	if !m.after.CompareAndSwap(b, b+1) {
		panic("atomics: Mirror.Write detected a concurrent writer, violating the single-writer contract")
	}
}

// Read copies the mirror's current contents into into. It is safe to
// call concurrently from any number of reader goroutines and never
// blocks: it retries until it observes a consistent snapshot. A copy
// that overlaps a Write is retried, so a writer that writes
// continuously can make Read loop more than once.
//
// Read panics if into is the mirror's own initial image.
func (m *Mirror[T]) Read(into Image[T]) {
	if sameImage(into, m.initial) {
		panic("atomics: Mirror.Read called with the mirror's own initial image")
	}

	for {
		rev := m.after.Load()
		into.MirrorFrom(m.initial)
		if m.before.Load() == rev {
			return
		}
	}
}

// sameImage reports whether a and b are the same Image instance. Both
// arguments must be comparable in the way Go interfaces holding
// pointer-shaped dynamic types are — precisely the case for any
// realistic Image implementation, which is why Mirror requires
// initial to be passed by pointer.
func sameImage[T any](a, b Image[T]) bool {
	return a == b
}
