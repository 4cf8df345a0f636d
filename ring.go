// FILE: ring.go
package logf

import "sync/atomic"

// ring is a bounded, fixed-capacity, lock-free MPSC queue of logRecord
// values, built on the LMAX-Disruptor-style split between "reserve" (an
// atomic advance of a shared cursor) and "publish" (a release-store into a
// slot-local sequence number). A single shared position counter cannot
// distinguish "slot reserved but not yet written" from "slot written"; the
// per-slot sequence array is what makes that distinction possible under
// genuine multi-producer contention.
//
// A simpler design — two flat buffers swapped via an atomic packed
// (index, position) state — was considered and rejected: it loses records
// when producers reserve past capacity and is harder to reason about under
// contention than the per-slot-sequence handshake used here.
type ring struct {
	// writeCursor and readCursor are each given their own cache line:
	// producers contend on writeCursor, the single consumer owns
	// readCursor, and keeping them apart avoids false sharing between the
	// two sides of the hand-off.
	writeCursor atomic.Uint64
	_           [56]byte
	readCursor  atomic.Uint64
	_           [56]byte

	mask  uint64
	slots []logRecord

	// slotSequences[s&mask] == s once the publisher that reserved sequence
	// s has finished writing its slot; the consumer's acquire-load of this array is the only
	// thing that makes a published record safe to read.
	slotSequences []atomic.Uint64

	// dropped counts emplace calls that found the ring full. It is
	// incremented by the caller, not by emplace itself, so a producer that
	// wants to retry instead of counting a drop remains free to do so.
	dropped atomic.Uint64
}

// errQueueFull is returned by emplace when the ring has no free slots.
// The producer never retries internally; the caller is free to drop the
// record.
var errQueueFull = errQueueFullErr{}

type errQueueFullErr struct{}

func (errQueueFullErr) Error() string { return "logf: ring queue full" }

// newRing constructs a ring of the given capacity, which must be a power of
// two; zero or a non-power-of-two capacity is a construction-time error
// (ConfigInvalid), never a hot-path failure.
func newRing(capacity int) (*ring, error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, fmtErrorf("ring capacity must be a power of two and non-zero, got %d", capacity)
	}

	r := &ring{
		mask:          uint64(capacity - 1),
		slots:         make([]logRecord, capacity),
		slotSequences: make([]atomic.Uint64, capacity),
	}
	for i := range r.slotSequences {
		// Slot i starts "unpublished": its sequence is set capacity
		// behind i, so no slot can be mistaken for published before its
		// first write.
		r.slotSequences[i].Store(uint64(i) - uint64(capacity))
	}
	return r, nil
}

func (r *ring) capacity() uint64 {
	return r.mask + 1
}

// emplace reserves a slot, writes rec into it, then publishes it. It never
// blocks: under contention the reservation is a CAS retry loop; when the
// ring is full it returns errQueueFull immediately.
func (r *ring) emplace(rec logRecord) error {
	for {
		w := r.writeCursor.Load()
		rd := r.readCursor.Load()
		if w-rd >= r.capacity() {
			return errQueueFull
		}
		if r.writeCursor.CompareAndSwap(w, w+1) {
			idx := w & r.mask
			r.slots[idx] = rec
			r.slotSequences[idx].Store(w)
			return nil
		}
		// CAS lost the race with another producer; reload and retry.
	}
}

// readView is an immutable window over the maximal contiguous published
// prefix of the ring, valid until release is called.
type readView struct {
	r     *ring
	begin uint64
	end   uint64
}

// read takes a drain snapshot: it bounds the scan at the current
// writeCursor and walks forward only while each slot's sequence confirms
// that slot has actually been published, so the consumer never reads ahead
// of the publication frontier even though writeCursor may have already
// advanced past records still being written.
func (r *ring) read() readView {
	begin := r.readCursor.Load()
	w := r.writeCursor.Load()

	end := begin
	for end < w && r.slotSequences[end&r.mask].Load() == end {
		end++
	}

	return readView{r: r, begin: begin, end: end}
}

func (v readView) len() int {
	return int(v.end - v.begin)
}

func (v readView) at(i int) *logRecord {
	idx := (v.begin + uint64(i)) & v.r.mask
	return &v.r.slots[idx]
}

// release advances readCursor past the records this view exposed, making
// their slots available for producers to reuse.
func (v readView) release() {
	v.r.readCursor.Store(v.end)
}
