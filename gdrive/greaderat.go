package gdrive

import (
	"errors"
	"fmt"
	interf "github.com/SchnorcherSepp/offsetreader/interfaces"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"io"
	"log"
	"net/http"
	"sync/atomic"
)

// packageName is the text for debug logging
const packageName = "gdrive"

// interface check: interf.ReaderAt & interf.SharedOffsetReader
var _ interf.ReaderAt = (*_DriveReaderAt)(nil)
var _ interf.SharedOffsetReader = (*_DriveReaderAt)(nil)

// _DriveReaderAt provides data from a file stored in Google Drive.
// Every ReadAt issues one ranged download (HTTP Range header); there is
// no connection state and no shared cursor, so ReadAt is safe for any
// number of concurrent callers (shared positional read).
//
// A single network round trip per ReadAt is expensive. Wrap the reader in
// an impl.BufReaderAt (one per consumer) so that many small reads are
// answered by one ranged download.
type _DriveReaderAt struct {
	google   *drive.Service
	fileId   string
	debugLvl uint8

	reads    uint64 // atomic: ranged downloads
	readErrs uint64 // atomic: failed downloads (EOF is not an error)
}

// NewDriveReaderAt returns a ReaderAt that reads the Drive file identified
// by fileId with ranged downloads. The drive service (see OAuth) is thread
// safe and can be shared by many readers.
// debugLvl (@see impl.DebugHigh and impl.DebugOff)
func NewDriveReaderAt(google *drive.Service, fileId string, debugLvl uint8) (interf.ReaderAt, error) {
	// check input
	if google == nil || fileId == "" {
		return nil, errors.New("can't create new DriveReaderAt with google=nil or fileId=''")
	}

	// return
	return &_DriveReaderAt{
		google:   google,
		fileId:   fileId,
		debugLvl: debugLvl,
	}, nil
}

//--------------------------------------------------------------------------------------------------------------------//

// @see interf.ReaderAt
//
// ReadAt downloads the byte range [off, off+len(p)) of the Drive file
// with one request. A range starting at or after the end of the file
// answers with HTTP 416 and is reported as io.EOF, not as an error.
func (r *_DriveReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if len(p) == 0 {
		return 0, nil // read nothing -> return nothing
	}
	if off < 0 {
		return 0, errors.New("DriveReaderAt.ReadAt: negative offset")
	}

	// ranged download (thread safe; one request per call)
	get := r.google.Files.Get(r.fileId)
	get.Header().Set("Range", fmt.Sprintf("bytes=%d-%d", off, off+int64(len(p))-1))

	atomic.AddUint64(&r.reads, 1)
	resp, err := get.Download()
	if err != nil {
		// requested range not satisfiable -> end of file
		if gErr, ok := err.(*googleapi.Error); ok && gErr.Code == http.StatusRequestedRangeNotSatisfiable {
			if r.debugLvl >= 2 { // Debug level: high=2
				log.Printf("DEBUG: %s/ReadAt: id=%s, off=%d, req=%d: EOF (416)", packageName, r.fileId, off, len(p))
			}
			return 0, io.EOF
		}
		atomic.AddUint64(&r.readErrs, 1)
		log.Printf("ERROR: %s/ReadAt: id=%s, off=%d, req=%d: %v", packageName, r.fileId, off, len(p), err)
		return 0, err
	}
	defer resp.Body.Close()

	// fill p (the server may answer with less than the requested range)
	n, err = io.ReadFull(resp.Body, p)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF // short read: end of file
	}

	if r.debugLvl >= 2 { // Debug level: high=2
		log.Printf("DEBUG: %s/ReadAt: id=%s, off=%d, req=%d, n=%d, err=%v", packageName, r.fileId, off, len(p), n, err)
	}
	return n, err
}

// @see interf.ReaderAt
//
// Close is a no-op: there is no connection state, every ReadAt opens and
// closes its own ranged download.
func (r *_DriveReaderAt) Close() error {
	return nil
}

// @see interf.ReaderAt
//
// Stat returns the number of times internal processes have been run since initialization.
// The KEY is the internal process, the VALUE is the count.
// DriveRead counts the ranged downloads, DriveReadErr the failed ones.
func (r *_DriveReaderAt) Stat() map[string]uint64 {
	ret := map[string]uint64{
		"DriveRead":    atomic.LoadUint64(&r.reads),
		"DriveReadErr": atomic.LoadUint64(&r.readErrs),
	}
	for k, v := range ret {
		if v == 0 {
			delete(ret, k)
		}
	}
	return ret
}
