package impl_test

import (
	impl "github.com/SchnorcherSepp/offsetreader/defaultimpl"
	"io"
	"testing"
)

func Test_ZeroReaderAt(t *testing.T) {
	r := impl.NewZeroReaderAt()

	// no data at any offset
	buf := make([]byte, 3)
	if n, err := r.ReadAt(buf, 0); n != 0 || err != io.EOF {
		t.Fatalf("fail: n=%d, e='%v'", n, err)
	}
	if n, err := r.ReadAt(buf, 99999); n != 0 || err != io.EOF {
		t.Fatalf("fail: n=%d, e='%v'", n, err)
	}

	// no stats
	if m := r.Stat(); len(m) != 0 {
		t.Fatalf("fail: stat=%v", m)
	}

	// close test
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	// a buffered reader over an empty source reads nothing
	br, err := impl.NewBufReaderAtSize(r, 16, impl.DebugOff)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := br.ReadAt(buf, 0); n != 0 || err != io.EOF {
		t.Fatalf("fail: n=%d, e='%v'", n, err)
	}
}
