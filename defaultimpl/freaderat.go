package impl

import (
	"errors"
	interf "github.com/SchnorcherSepp/offsetreader/interfaces"
	"os"
)

// interface check: interf.ReaderAt & interf.SharedOffsetReader
var _ interf.ReaderAt = (*_FileReaderAt)(nil)
var _ interf.SharedOffsetReader = (*_FileReaderAt)(nil)

// _FileReaderAt provides data from a file on disk. It delegates to
// os.File.ReadAt, which is pread() on unix and a positional read on
// windows: no shared cursor is used or moved, so ReadAt is safe for any
// number of concurrent callers (shared positional read).
type _FileReaderAt struct {
	f    *os.File
	name string
	owns bool // Close() closes f
	stat *_ReaderStat
}

// NewFileReaderAt wraps an open file in a ReaderAt. The caller keeps the
// ownership of f: Close() of the returned reader does NOT close the file.
// Don't use the Read/Seek methods of f in parallel, they move the cursor
// the wrapped ReadAt ignores anyway.
// debugLvl (@see impl.DebugHigh and impl.DebugOff)
func NewFileReaderAt(f *os.File, debugLvl uint8) (interf.ReaderAt, error) {
	if f == nil {
		return nil, errors.New("can't create new FileReaderAt with f=nil")
	}
	return newFileReaderAt(f, false, debugLvl), nil
}

// OpenFileReaderAt opens the named file for reading and wraps it in a
// ReaderAt. Close() of the returned reader closes the file.
// debugLvl (@see impl.DebugHigh and impl.DebugOff)
func OpenFileReaderAt(path string, debugLvl uint8) (interf.ReaderAt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return newFileReaderAt(f, true, debugLvl), nil
}

func newFileReaderAt(f *os.File, owns bool, debugLvl uint8) interf.ReaderAt {
	return &_FileReaderAt{
		f:    f,
		name: f.Name(),
		owns: owns,
		stat: &_ReaderStat{
			debugLvl:    debugLvl,
			packageName: "[FILE] impl",
		},
	}
}

//--------------------------------------------------------------------------------------------------------------------//

// @see interf.ReaderAt
func (r *_FileReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if r.f == nil {
		return 0, os.ErrClosed
	}
	n, err = r.f.ReadAt(p, off)
	r.stat.FileRead(r.name, off, len(p), n, err) // DEBUG
	return
}

// @see interf.ReaderAt
//
// Close closes the underlying file if the reader owns it
// (see OpenFileReaderAt). Has no effect after the first call.
func (r *_FileReaderAt) Close() error {
	if r.owns && r.f != nil {
		err := r.f.Close()
		r.f = nil
		r.stat.PrintStatAfterClose(r.name) // DEBUG
		return err
	}
	return nil
}

// @see interf.ReaderAt
//
// Stat returns the number of times internal processes have been run since initialization.
// The KEY is the internal process, the VALUE is the count.
// FileRead counts the ReadAt calls that reached the file.
func (r *_FileReaderAt) Stat() map[string]uint64 {
	return r.stat.Stat()
}
