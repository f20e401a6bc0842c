package isobmff

import (
	"io"
	"math"
	"sync"
)

// sharedStream is the single underlying seekable stream behind every
// Reader cloned from the same root. Every read re-seeks the stream to the
// caller's own pos before reading, so clones may interleave reads freely:
// the mutex is held only across one physical I/O operation, never across
// a sub-parse.
type sharedStream struct {
	mu     sync.Mutex
	stream io.ReadSeeker
}

// Reader is a seekable byte cursor with a single active limit. It is
// cloneable: clones share the underlying stream through sharedStream but
// each carries its own pos and limit, so a parent and its in-flight
// sub-parse never corrupt each other's logical position.
type Reader struct {
	shared *sharedStream
	pos    int64
	limit  int64 // unlimited when equal to the unlimited sentinel
}

const unlimited = -1

// NewReader creates a Reader over stream at pos 0 with the limit set to
// streamLen (the stream's total length).
func NewReader(stream io.ReadSeeker, streamLen int64) *Reader {
	return &Reader{
		shared: &sharedStream{stream: stream},
		pos:    0,
		limit:  streamLen,
	}
}

// Clone returns a second handle sharing the underlying stream. The clone
// inherits pos and limit at the instant of cloning; subsequent movement of
// either handle does not disturb the other's logical pos.
func (r *Reader) Clone() *Reader {
	return &Reader{
		shared: r.shared,
		pos:    r.pos,
		limit:  r.limit,
	}
}

// ReadExact fills buf completely. If a limit is set and pos+len(buf) would
// exceed it, it fails with OutOfBounds without advancing pos or touching
// the stream — this is the termination signal list decoders rely on (see
// ReadList in attr.go). On success pos advances by len(buf).
func (r *Reader) ReadExact(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if r.limit != unlimited && r.pos+int64(len(buf)) > r.limit {
		return errOutOfBounds
	}

	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()

	if _, err := r.shared.stream.Seek(r.pos, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.ReadFull(r.shared.stream, buf); err != nil {
		return err
	}
	r.pos += int64(len(buf))
	return nil
}

// SeekFromCurrent moves pos by delta.
func (r *Reader) SeekFromCurrent(delta int64) error {
	return r.SeekFromStart(r.pos + delta)
}

// SeekFromStart moves pos to abs.
func (r *Reader) SeekFromStart(abs int64) error {
	r.pos = abs
	return nil
}

// SetLimit sets limit = pos + relative, evaluated at the current pos. This
// is the operation used right after reading a box header to confine
// subsequent reads to that box's body.
func (r *Reader) SetLimit(relative int64) {
	r.limit = r.pos + relative
}

// ClearLimit removes the active limit (root-level use).
func (r *Reader) ClearLimit() {
	r.limit = unlimited
}

// Remain returns the signed bytes remaining until limit, or a large
// sentinel when unlimited. Callers loop `for r.Remain() > 0 { ... }`.
func (r *Reader) Remain() int64 {
	if r.limit == unlimited {
		return math.MaxInt64
	}
	return r.limit - r.pos
}

// Pos returns the handle's current logical position.
func (r *Reader) Pos() int64 { return r.pos }
