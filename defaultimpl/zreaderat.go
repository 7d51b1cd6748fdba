package impl

import (
	interf "github.com/SchnorcherSepp/offsetreader/interfaces"
	"io"
)

// interface check: interf.ReaderAt & interf.SharedOffsetReader
var _ interf.ReaderAt = (*_ZeroReaderAt)(nil)
var _ interf.SharedOffsetReader = (*_ZeroReaderAt)(nil)

type _ZeroReaderAt struct {
	// nope
}

// NewZeroReaderAt is a dummy ReaderAt with no data.
// Every read ends immediately with io.EOF.
func NewZeroReaderAt() interf.ReaderAt {
	return new(_ZeroReaderAt)
}

//--------------------------------------------------------------------------------------------------------------------//

// @see interf.ReaderAt
func (r *_ZeroReaderAt) ReadAt(_ []byte, _ int64) (n int, err error) {
	return 0, io.EOF
}

// @see interf.ReaderAt
func (r *_ZeroReaderAt) Close() error {
	return nil
}

// @see interf.ReaderAt
func (r *_ZeroReaderAt) Stat() map[string]uint64 {
	return make(map[string]uint64)
}
