package impl_test

import (
	"bytes"
	impl "github.com/SchnorcherSepp/offsetreader/defaultimpl"
	"io"
	"testing"
)

func TestNewSubReaderAt(t *testing.T) {
	inner := impl.NewRamReaderAt(impl.DemoSeq(100), impl.DebugOff)

	// test with invalid input
	if _, err := impl.NewSubReaderAt(nil, 0, 10); err == nil {
		t.Fatal("no error with inner=nil")
	}
	if _, err := impl.NewSubReaderAt(inner, -1, 10); err == nil {
		t.Fatal("no error with negative off")
	}
	if _, err := impl.NewSubReaderAt(inner, 0, -1); err == nil {
		t.Fatal("no error with negative n")
	}

	// valid input
	if _, err := impl.NewSubReaderAt(inner, 10, 20); err != nil {
		t.Fatal(err)
	}
}

func Test_SubReaderAt_ReadAt(t *testing.T) {
	inner := impl.NewRamReaderAt(impl.DemoSeq(100), impl.DebugOff)

	// sub range: bytes 10..29 of the inner reader
	r, err := impl.NewSubReaderAt(inner, 10, 20)
	if err != nil {
		t.Fatal(err)
	}

	// read at the beginning of the range
	buf := make([]byte, 5)
	if n, err := r.ReadAt(buf, 0); n != 5 || err != nil || !bytes.Equal(buf, []byte{10, 11, 12, 13, 14}) {
		t.Fatalf("fail: n=%d, e='%v', b=%v", n, err, buf)
	}

	// read in the middle of the range
	if n, err := r.ReadAt(buf, 10); n != 5 || err != nil || !bytes.Equal(buf, []byte{20, 21, 22, 23, 24}) {
		t.Fatalf("fail: n=%d, e='%v', b=%v", n, err, buf)
	}

	// read across the range end (short read; the inner reader has more data!)
	if n, err := r.ReadAt(buf, 17); n != 3 || err != io.EOF || !bytes.Equal(buf[:n], []byte{27, 28, 29}) {
		t.Fatalf("fail: n=%d, e='%v', b=%v", n, err, buf[:n])
	}

	// read at the range end
	if n, err := r.ReadAt(buf, 20); n != 0 || err != io.EOF {
		t.Fatalf("fail: n=%d, e='%v'", n, err)
	}

	// read behind the range end
	if n, err := r.ReadAt(buf, 50); n != 0 || err != io.EOF {
		t.Fatalf("fail: n=%d, e='%v'", n, err)
	}

	// Stat() is delegated to the inner reader
	if m := r.Stat(); m["RamRead"] == 0 {
		t.Fatalf("fail: stat=%v", m)
	}

	// close test (closes the inner reader)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}

// Test_SubReaderAt_buffered combines a buffered reader with a sub range:
// the classic "extract one archive member" pattern.
func Test_SubReaderAt_buffered(t *testing.T) {
	data := impl.DemoData(10000)
	src := impl.NewRamReaderAt(data, impl.DebugOff)

	// buffer the source, then restrict to bytes 5000..5999
	br, err := impl.NewBufReaderAtSize(src, 2048, impl.DebugOff)
	if err != nil {
		t.Fatal(err)
	}
	r, err := impl.NewSubReaderAt(br, 5000, 1000)
	if err != nil {
		t.Fatal(err)
	}

	// many small reads inside the member: one source call in total
	buf := make([]byte, 50)
	for off := int64(0); off < 1000; off += 50 {
		if n, err := r.ReadAt(buf, off); n != 50 || err != nil {
			t.Fatalf("fail: n=%d, e='%v', off=%d", n, err, off)
		}
		if !bytes.Equal(buf, data[5000+off:5000+off+50]) {
			t.Fatalf("fail: wrong data at off=%d", off)
		}
	}
	if m := src.Stat(); m["RamRead"] != 1 {
		t.Fatalf("fail: stat=%v", m)
	}
}
