package interf

// BufReaderAt is a ReaderAt that keeps one contiguous byte range (the
// "window") of its underlying source in memory. Reads that fall completely
// inside the window are served without touching the source; every other
// read refills the window with a single source call, starting exactly at
// the requested offset. Requests bigger than the window are forwarded to
// the source directly and leave the window untouched.
//
// A BufReaderAt is a single-holder object (see OffsetReader): its window
// state is mutated by ReadAt and is not protected by a lock. Give every
// consumer its own BufReaderAt over the same SharedOffsetReader instead of
// sharing one instance.
type BufReaderAt interface {
	ReaderAt

	// Contains reports whether the byte range [off, off+n) of the source
	// is completely covered by the current window.
	Contains(off int64, n int) bool

	// Clear drops the window. The next read of any size triggers a source
	// call. Use this after the underlying data changed.
	Clear()

	// Capacity returns the window size in bytes.
	Capacity() int
}
