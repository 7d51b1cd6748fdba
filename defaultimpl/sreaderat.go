package impl

import (
	"errors"
	interf "github.com/SchnorcherSepp/offsetreader/interfaces"
	"io"
)

// interface check: interf.ReaderAt
var _ interf.ReaderAt = (*_SubReaderAt)(nil)

// @see interf.ReaderAt
//
// SubReaderAt restricts an inner ReaderAt to the byte range [off, off+n).
// Offset 0 of the SubReaderAt is the byte at offset off of the inner
// reader; reads past the range end with io.EOF. Typical use: random read
// access to one member of an archive without exposing the rest.
type _SubReaderAt struct {
	inner interf.ReaderAt
	off   int64
	n     int64
}

// NewSubReaderAt restricts the inner reader to the byte range [off, off+n).
// Close() closes the inner reader.
func NewSubReaderAt(inner interf.ReaderAt, off, n int64) (interf.ReaderAt, error) {
	// check input
	if inner == nil {
		return nil, errors.New("can't create new SubReaderAt with inner=nil")
	}
	if off < 0 || n < 0 {
		return nil, errors.New("can't create new SubReaderAt with negative off or n")
	}

	// build SubReaderAt
	return &_SubReaderAt{
		inner: inner,
		off:   off,
		n:     n,
	}, nil
}

// @see interf.ReaderAt
func (r *_SubReaderAt) Close() error {
	return r.inner.Close()
}

// @see interf.ReaderAt
func (r *_SubReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	// inner call
	n, err = r.inner.ReadAt(p, r.off+off)

	// check n (enforce limit)
	startP := r.off + off
	endPos := startP + int64(n)
	maxEPos := r.off + r.n
	if endPos > maxEPos {
		// update n
		endPos = maxEPos
		n = int(endPos - startP)
		// enforce min n = 0
		if n < 0 {
			n = 0
		}
		// fix EOF for limit: err is nil AND buffer is NOT full!
		if len(p) > n && err == nil {
			err = io.EOF
		}
	}

	// fix EOF for no data
	if n == 0 && err == nil && len(p) > 0 {
		err = io.EOF
	}

	// return
	return
}

// @see interf.ReaderAt
//
// Stat returns the number of times internal processes have been run since initialization.
// This method is relevant for testing and debugging purposes.
// The KEY is the internal process, the VALUE is the count.
func (r *_SubReaderAt) Stat() map[string]uint64 {
	return r.inner.Stat()
}
