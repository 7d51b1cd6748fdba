package impl

import (
	"errors"
	"fmt"
	interf "github.com/SchnorcherSepp/offsetreader/interfaces"
	"io"
	"sync"
)

// interface check: interf.ReaderAt
var _ interf.ReaderAt = (*_MultiReaderAt)(nil)

// @see interf.ReaderAt
//
// MultiReaderAt combines two or more ReaderAt and behaves like a normal
// ReaderAt for one big concatenated resource. All parts except the last
// part must be exactly partSize bytes long; a part that ends early ends
// the whole resource early too.
type _MultiReaderAt struct {
	parts    []interf.ReaderAt
	partSize int64
	mux      *sync.RWMutex
	stat     *_ReaderStat
}

// NewMultiReaderAt combines two or more ReaderAt and behaves like a normal
// ReaderAt for a single resource. partSize is the size of every part
// except the last one. There must be at least two parts!
// Close() closes all parts.
// debugLvl (@see impl.DebugHigh and impl.DebugOff)
func NewMultiReaderAt(parts []interf.ReaderAt, partSize int64, debugLvl uint8) (interf.ReaderAt, error) {
	// ReaderAt statistic
	stat := &_ReaderStat{
		debugLvl:    debugLvl,       // enable debug logging [0, 1, 2] (level: high=2)
		packageName: "[MULTI] impl", // text for debug logging
	}

	// check input
	if len(parts) <= 1 || partSize <= 0 {
		return nil, errors.New("can't create new MultiReaderAt with less than two parts or partSize<1")
	}
	for _, p := range parts {
		if p == nil {
			return nil, errors.New("can't create new MultiReaderAt with a nil part")
		}
	}

	// return
	return &_MultiReaderAt{
		parts:    parts,
		partSize: partSize,
		mux:      new(sync.RWMutex),
		stat:     stat,
	}, nil
}

// @see interf.ReaderAt
func (r *_MultiReaderAt) Close() error {
	r.mux.Lock() // LOCK
	defer r.mux.Unlock()

	for _, inner := range r.parts {
		_ = inner.Close()
	}

	r.stat.PrintStatAfterClose("MultiReaderAt") // DEBUG
	return nil
}

// @see interf.ReaderAt
func (r *_MultiReaderAt) ReadAt(p []byte, off int64) (int, error) {
	r.mux.RLock() // READ LOCK
	defer r.mux.RUnlock()

	// check fast return
	if len(p) == 0 {
		return 0, nil // read nothing -> return nothing
	}
	if off < 0 {
		return 0, errors.New("MultiReaderAt.ReadAt: negative offset")
	}

	// calc part and offset
	partOff := off % r.partSize
	partNo := int((off - partOff) / r.partSize)

	var read int
	var err error
	for {
		var n int

		// part No must exist
		if partNo < len(r.parts) {
			// delegate to inner ReaderAt
			n, err = r.parts[partNo].ReadAt(p[read:], partOff)
		} else {
			// no part found
			n, err = 0, io.EOF
		}

		// a non-final part must hold partSize bytes; if it ends early,
		// the bytes of the next part would land at the wrong offset
		short := partNo < len(r.parts)-1 && partOff+int64(n) < r.partSize

		// update vars
		partNo++    // next part
		partOff = 0 // partOff is 0 after first read
		read += n   // update read n

		// exit
		if err != nil && err != io.EOF {
			// serious error! (no EOF)
			break
		} else {
			if n == 0 {
				// no data! EOF?
				break
			}
			if read == len(p) {
				// success: all we need
				// fix: ignore EOF (buffer is full)
				err = nil
				break
			}
			if short {
				// broken part: return a short read, don't stitch
				err = io.EOF
				break
			}
		}
	}

	// fix EOF
	if read < len(p) && err == nil {
		err = io.EOF
	}

	// return
	r.stat.MultiReq(off, len(p), read, err) // DEBUG
	return read, err
}

// @see interf.ReaderAt
//
// Stat returns the number of times internal processes have been run since initialization.
// This method is relevant for testing and debugging purposes.
// The KEY is the internal process, the VALUE is the count.
func (r *_MultiReaderAt) Stat() map[string]uint64 {
	r.mux.RLock() // READ LOCK
	defer r.mux.RUnlock()

	// summary
	ret := make(map[string]uint64)

	// _MultiReaderAt stats
	for k, v := range r.stat.Stat() {
		if v > 0 {
			ret[k] = v
		}
	}

	// inner stats
	for i, inner := range r.parts {
		for k, v := range inner.Stat() {
			if v > 0 {
				ret[fmt.Sprintf("[%d] %s", i, k)] = v
			}
		}
	}

	return ret
}
