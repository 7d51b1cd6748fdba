package impl

import (
	"errors"
	interf "github.com/SchnorcherSepp/offsetreader/interfaces"
	"io"
)

// interface check: interf.ReaderAt & interf.SharedOffsetReader
var _ interf.ReaderAt = (*_RamReaderAt)(nil)
var _ interf.SharedOffsetReader = (*_RamReaderAt)(nil)

// _RamReaderAt provides data from the ram ([]byte). The data is never
// modified, so ReadAt is safe for any number of concurrent callers
// (shared positional read). Every ReadAt is counted (see Stat), which
// makes this source the reference backend for tests that must prove
// that a buffered reader did NOT touch its source.
type _RamReaderAt struct {
	data []byte
	stat *_ReaderStat
}

// NewRamReaderAt return a ReaderAt implementation that provides data from the ram ([]byte).
// The returned reader is a shared positional source: it can back many
// buffered readers at the same time.
// debugLvl (@see impl.DebugHigh and impl.DebugOff)
func NewRamReaderAt(data []byte, debugLvl uint8) interf.ReaderAt {
	// check nil
	if data == nil {
		data = make([]byte, 0)
	}
	// return
	return &_RamReaderAt{
		data: data,
		stat: &_ReaderStat{
			debugLvl:    debugLvl,
			packageName: "[RAM] impl",
		},
	}
}

//--------------------------------------------------------------------------------------------------------------------//

// @see interf.ReaderAt
func (r *_RamReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	// check off
	if off < 0 {
		return 0, errors.New("RamReaderAt.ReadAt: negative offset")
	}
	// no data
	if off >= int64(len(r.data)) {
		r.stat.RamRead(off, len(p), 0, io.EOF) // DEBUG
		return 0, io.EOF
	}
	// copy & return
	n = copy(p, r.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	r.stat.RamRead(off, len(p), n, err) // DEBUG
	return
}

// @see interf.ReaderAt
func (r *_RamReaderAt) Close() error {
	return nil
}

// @see interf.ReaderAt
//
// Stat returns the number of times internal processes have been run since initialization.
// The KEY is the internal process, the VALUE is the count.
// RamRead counts the ReadAt calls that reached this source.
func (r *_RamReaderAt) Stat() map[string]uint64 {
	return r.stat.Stat()
}
