package interf

import "io"

// OffsetReader is the minimal capability a buffered reader needs from its
// data source: a read that is parameterized with an absolute offset and
// is therefore independent of any shared file cursor.
//
// ReadAt reads up to len(p) bytes starting at the absolute byte offset off
// into p and returns the number of bytes read (0 <= n <= len(p)) and any
// error encountered. When ReadAt returns n < len(p), it returns a non-nil
// error explaining why more bytes were not returned (usually io.EOF near
// the end of the resource). A short read with io.EOF is a valid terminal
// state, not a failure.
//
// An OffsetReader has exactly one holder. The implementation may update
// private bookkeeping during ReadAt, but it must never depend on or mutate
// a read position shared with other readers (no seek+read!).
//
// Implementations must not retain p.
type OffsetReader interface {
	ReadAt(p []byte, off int64) (n int, err error)
}

// SharedOffsetReader is an OffsetReader whose ReadAt is safe for many
// concurrent callers without external synchronization, because the offset
// is passed per call and no shared cursor exists (pread/seek_read style).
//
// *os.File and *bytes.Reader satisfy this contract, as do all source
// implementations of this library. A SharedOffsetReader can back any
// number of buffered readers at the same time; only the buffered readers
// themselves are single-holder objects.
type SharedOffsetReader interface {
	OffsetReader
}

// ReaderAt is the full reader interface of this library. It extends
// io.ReaderAt with a Closer and a Stat method and is implemented by all
// concrete readers (ram, file, drive, buffered, sub, multi).
//
// ReadAt follows the io.ReaderAt contract: when ReadAt returns
// n < len(p), it returns a non-nil error explaining why more bytes were
// not returned. If the n = len(p) bytes returned by ReadAt are at the end
// of the input source, ReadAt may return either err == io.EOF or err == nil.
//
// Close releases internal resources (buffers, connections). Whether the
// underlying data source is closed too is defined per implementation.
//
// Implementations must not retain p.
type ReaderAt interface {
	io.ReaderAt // ReadAt(p []byte, off int64) (n int, err error)
	io.Closer   // Close() error

	// Stat returns the number of times internal processes have been run since initialization.
	// This method is relevant for testing and debugging purposes.
	// The KEY is the internal process, the VALUE is the count.
	Stat() map[string]uint64
}
