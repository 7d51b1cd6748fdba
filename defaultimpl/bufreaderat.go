package impl

import (
	"errors"
	interf "github.com/SchnorcherSepp/offsetreader/interfaces"
	"github.com/oxtoacart/bpool"
	"io"
)

// interface check: interf.BufReaderAt
var _ interf.BufReaderAt = (*_BufReaderAt)(nil)

// bufPool recycles window buffers of the default size.
// Buffers of other sizes are allocated directly and never pooled.
var bufPool = bpool.NewBytePool(interf.PoolBuffers, interf.DefaultBufferSize)

// @see interf.BufReaderAt
//
// _BufReaderAt keeps one window of the source in memory:
// buf[0:valid] equals the source bytes [start, start+valid) as of the
// last fill. valid == 0 means no window.
type _BufReaderAt struct {
	inner  interf.OffsetReader // data source (no shared cursor!)
	buf    []byte              // window buffer, fixed size
	start  int64               // absolute source offset of buf[0]
	valid  int                 // bytes at the start of buf holding real data
	pooled bool                // buf was taken from bufPool
	stat   *_ReaderStat        // collects statistical data about internal processes
}

// NewBufReaderAt wraps a source in a buffered reader with the default
// window size (see interf.DefaultBufferSize). The window buffer is taken
// from a shared pool and returned by Close().
// debugLvl (@see impl.DebugHigh and impl.DebugOff)
func NewBufReaderAt(inner interf.OffsetReader, debugLvl uint8) (interf.BufReaderAt, error) {
	return newBufReaderAt(inner, bufPool.Get(), true, debugLvl)
}

// NewBufReaderAtSize wraps a source in a buffered reader with a window of
// size bytes. Sizes below interf.MinBufferSize are raised to that limit.
// Sequential reads whose combined span fits in the window cost one source
// call in total, so choose the size to cover the typical access pattern.
// debugLvl (@see impl.DebugHigh and impl.DebugOff)
func NewBufReaderAtSize(inner interf.OffsetReader, size int, debugLvl uint8) (interf.BufReaderAt, error) {
	if size < interf.MinBufferSize {
		size = interf.MinBufferSize
	}
	if size == interf.DefaultBufferSize {
		return newBufReaderAt(inner, bufPool.Get(), true, debugLvl)
	}
	return newBufReaderAt(inner, make([]byte, size), false, debugLvl)
}

func newBufReaderAt(inner interf.OffsetReader, buf []byte, pooled bool, debugLvl uint8) (interf.BufReaderAt, error) {
	// check input
	if inner == nil {
		if pooled {
			bufPool.Put(buf)
		}
		return nil, errors.New("can't create new BufReaderAt with inner=nil")
	}

	// ReaderAt statistic
	stat := &_ReaderStat{
		debugLvl:    debugLvl, // enable debug logging [0, 1, 2] (level: high=2)
		packageName: "impl",   // text for debug logging
	}

	// return new BufReaderAt
	stat.BufNew(len(buf), pooled) // DEBUG
	return &_BufReaderAt{
		inner:  inner,
		buf:    buf,
		start:  0,
		valid:  0,
		pooled: pooled,
		stat:   stat,
	}, nil
}

//--------------------------------------------------------------------------------------------------------------------//

// @see interf.ReaderAt
//
// ReadAt serves [off, off+len(p)) with at most one source call:
//  1. len(p) == 0 is a free no-op.
//  2. len(p) > Capacity() is forwarded to the source (bypass), the window
//     stays untouched and remains valid for future smaller reads.
//  3. a range completely inside the window is copied out (hit), no source call.
//  4. everything else refills the window with one source call starting at
//     off (miss) and copies out what the new window can serve.
//
// A short window after a miss means a short read: n < len(p) is returned
// together with io.EOF, never padded. A failed fill (real error, not
// io.EOF) returns the error and preserves the previous window.
func (r *_BufReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if len(p) == 0 {
		return 0, nil // read nothing -> return nothing
	}
	r.stat.BufReq(off, len(p)) // DEBUG

	// BYPASS: requests bigger than the window can't benefit from buffering
	if len(p) > len(r.buf) {
		n, err = r.inner.ReadAt(p, off)
		r.stat.BufBypass(off, len(p), n, err) // DEBUG
		return n, err
	}

	// HIT: the window covers the requested range completely
	if r.Contains(off, len(p)) {
		i := int(off - r.start)
		copy(p, r.buf[i:i+len(p)])
		r.stat.BufHit(off, len(p)) // DEBUG
		return len(p), nil
	}

	// MISS: realign the window to the requested offset (one source call)
	if err = r.fill(off); err != nil {
		return 0, err // the old window is preserved (see fill)
	}

	// copy what the new window can serve (start == off after fill)
	n = copy(p, r.buf[:r.valid])
	if n < len(p) {
		err = io.EOF // short read: end of the available data
	}
	return n, err
}

// @see interf.BufReaderAt
//
// Contains reports whether the byte range [off, off+n) of the source
// is completely covered by the current window.
// The check uses the subtraction form: off+n can overflow int64 for
// huge offsets and must never decide a hit.
func (r *_BufReaderAt) Contains(off int64, n int) bool {
	return r.valid > 0 && off >= r.start && off-r.start <= int64(r.valid)-int64(n)
}

// @see interf.BufReaderAt
//
// Clear drops the window. The next read of any size triggers a source
// call. Use this after the underlying data changed.
func (r *_BufReaderAt) Clear() {
	r.stat.BufClear() // DEBUG
	r.valid = 0
}

// @see interf.BufReaderAt
func (r *_BufReaderAt) Capacity() int {
	return len(r.buf)
}

// @see interf.ReaderAt
//
// Close drops the window and returns a pooled buffer to the shared pool.
// The inner source is NOT closed (its lifetime is managed by the caller,
// it may back other readers). After Close all reads are forwarded to the
// source unbuffered. Has no effect after the first call.
func (r *_BufReaderAt) Close() error {
	if r.buf != nil {
		r.stat.BufClose(r.pooled) // DEBUG
		if r.pooled {
			bufPool.Put(r.buf)
		}
		r.buf = nil
		r.valid = 0
		r.stat.PrintStatAfterClose("BufReaderAt") // DEBUG
	}
	return nil
}

// @see interf.ReaderAt
//
// Stat returns the number of times internal processes have been run since initialization.
// This method is relevant for testing and debugging purposes.
// The KEY is the internal process, the VALUE is the count.
func (r *_BufReaderAt) Stat() map[string]uint64 {
	return r.stat.Stat()
}

//--------  HELPER  --------------------------------------------------------------------------------------------------//

// fill reads up to Capacity() bytes at off into the window buffer and
// realigns the window to off. io.EOF from the source is swallowed here: a
// short or even empty window is valid data, the caller reports the short
// read. On a real error start/valid are not touched, so the previous
// window (if any) stays intact.
func (r *_BufReaderAt) fill(off int64) error {
	n, err := r.inner.ReadAt(r.buf, off)
	r.stat.BufFill(off, n, err) // DEBUG

	if err != nil && err != io.EOF {
		return err // don't touch start/valid
	}
	r.start = off
	r.valid = n
	return nil
}
