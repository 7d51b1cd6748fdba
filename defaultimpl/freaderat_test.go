package impl_test

import (
	"bytes"
	impl "github.com/SchnorcherSepp/offsetreader/defaultimpl"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func Test_FileReaderAt(t *testing.T) {
	data := impl.DemoSeq(200)
	path := writeTestFile(t, data)
	defer os.Remove(path)

	// test with invalid file
	if _, err := impl.NewFileReaderAt(nil, impl.DebugOff); err == nil {
		t.Fatal("no error with f=nil")
	}
	if _, err := impl.OpenFileReaderAt(filepath.Join(os.TempDir(), "does-not-exist.dat"), impl.DebugOff); err == nil {
		t.Fatal("no error with invalid path")
	}

	// open and read
	r, err := impl.OpenFileReaderAt(path, impl.DebugOff)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 4)
	if n, err := r.ReadAt(buf, 0); n != 4 || err != nil || !bytes.Equal(buf, []byte{0, 1, 2, 3}) {
		t.Fatalf("fail: n=%d, e='%v', b=%v", n, err, buf)
	}
	if n, err := r.ReadAt(buf, 100); n != 4 || err != nil || !bytes.Equal(buf, []byte{100, 101, 102, 103}) {
		t.Fatalf("fail: n=%d, e='%v', b=%v", n, err, buf)
	}
	if n, err := r.ReadAt(buf, 198); n != 2 || err != io.EOF {
		t.Fatalf("fail: n=%d, e='%v'", n, err)
	}
	if m := r.Stat(); m["FileRead"] != 3 {
		t.Fatalf("fail: stat=%v", m)
	}

	// the reader owns the file: Close() closes it
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if n, err := r.ReadAt(buf, 0); n != 0 || err == nil {
		t.Fatalf("fail: n=%d, e='%v'", n, err)
	}
	if err := r.Close(); err != nil { // second close has no effect
		t.Fatal(err)
	}
}

func Test_FileReaderAt_buffered(t *testing.T) {
	data := impl.DemoData(64 * 1024)
	path := writeTestFile(t, data)
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// wrapped file (caller keeps ownership)
	src, err := impl.NewFileReaderAt(f, impl.DebugOff)
	if err != nil {
		t.Fatal(err)
	}

	r, err := impl.NewBufReaderAt(src, impl.DebugOff)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	// many small sequential reads, one file read per window
	buf := make([]byte, 128)
	for off := int64(0); off < int64(len(data)); off += int64(len(buf)) {
		if n, err := r.ReadAt(buf, off); n != len(buf) || err != nil {
			t.Fatalf("fail: n=%d, e='%v', off=%d", n, err, off)
		}
		if !bytes.Equal(buf, data[off:off+int64(len(buf))]) {
			t.Fatalf("fail: wrong data at off=%d", off)
		}
	}

	// 64 kiB data / 8 kiB window = 8 fills
	want := uint64(len(data) / r.Capacity())
	if m := src.Stat(); m["FileRead"] != want {
		t.Fatalf("fail: stat=%v (want FileRead=%d)", m, want)
	}

	// Close() of the buffered reader must NOT close the wrapped file
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if n, err := src.ReadAt(buf, 0); n != len(buf) || err != nil {
		t.Fatalf("fail: n=%d, e='%v'", n, err)
	}
}

//--------  HELPER  --------------------------------------------------------------------------------------------------//

func writeTestFile(t *testing.T, data []byte) string {
	f, err := ioutil.TempFile("", "offsetreader-test-*.dat")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return f.Name()
}
