package impl

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
)

// DebugOff deactivates all debug messages. Errors, warnings or information are still printed.
const DebugOff = 0

// DebugLow shows debug messages that happen very rarely during operation (to keep the log files small).
const DebugLow = 1

// DebugHigh shows all debug messages.
const DebugHigh = 2

//--------------------------------------------------------------------------------------------------------------------//

type _ReaderStat struct {
	debugLvl    uint8  // enable debug logging [0, 1, 2] (level: high=2)
	packageName string // text for debug logging

	_BufNew     uint64
	_BufReq     uint64
	_BufHit     uint64
	_BufFill    uint64
	_BufFillErr uint64
	_BufBypass  uint64
	_BufClear   uint64
	_BufClose   uint64
	_RamRead    uint64
	_FileRead   uint64
	_MultiReq   uint64
}

func (s *_ReaderStat) Stat() map[string]uint64 {
	ret := map[string]uint64{
		"BufNew":     atomic.LoadUint64(&s._BufNew),
		"BufReq":     atomic.LoadUint64(&s._BufReq),
		"BufHit":     atomic.LoadUint64(&s._BufHit),
		"BufFill":    atomic.LoadUint64(&s._BufFill),
		"BufFillErr": atomic.LoadUint64(&s._BufFillErr),
		"BufBypass":  atomic.LoadUint64(&s._BufBypass),
		"BufClear":   atomic.LoadUint64(&s._BufClear),
		"BufClose":   atomic.LoadUint64(&s._BufClose),
		"RamRead":    atomic.LoadUint64(&s._RamRead),
		"FileRead":   atomic.LoadUint64(&s._FileRead),
		"MultiReq":   atomic.LoadUint64(&s._MultiReq),
	}

	// ignore zero values
	for k, v := range ret {
		if v == 0 {
			delete(ret, k)
		}
	}
	return ret
}

func (s *_ReaderStat) PrintStatAfterClose(name string) {
	// final call in .Close()

	first := true
	var sb strings.Builder
	for k, v := range s.Stat() {
		if !first {
			sb.WriteString(", ")
		} else {
			first = false
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(fmt.Sprintf("%d", v))
	}

	if s.debugLvl >= DebugLow { // Debug level: low=1
		log.Printf("DEBUG: %s/stat.PrintStatAfterClose: name=%s: %s", s.packageName, name, sb.String())
	}
}

// ------------------------------------------------------------------------------------------------------------------ //

func (s *_ReaderStat) BufNew(size int, pooled bool) {
	atomic.AddUint64(&s._BufNew, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufNew: size=%d, pooled=%v", s.packageName, size, pooled)
	}
}

func (s *_ReaderStat) BufReq(off int64, req int) {
	atomic.AddUint64(&s._BufReq, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufReq: off=%d, req=%d", s.packageName, off, req)
	}
}

func (s *_ReaderStat) BufHit(off int64, req int) {
	atomic.AddUint64(&s._BufHit, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufHit: off=%d, req=%d", s.packageName, off, req)
	}
}

func (s *_ReaderStat) BufFill(off int64, n int, err error) {
	atomic.AddUint64(&s._BufFill, 1)
	if err != nil && err != io.EOF {
		atomic.AddUint64(&s._BufFillErr, 1)
	}
	if s.debugLvl >= DebugHigh || (err != nil && err != io.EOF) {
		pre := "DEBUG" // Debug level: high=2
		if err != nil && err != io.EOF {
			pre = "ERROR" // Debug level: error=0
		}
		log.Printf("%s: %s/stat.BufFill: off=%d, n=%d, err=%v", pre, s.packageName, off, n, err)
	}
}

func (s *_ReaderStat) BufBypass(off int64, req, n int, err error) {
	atomic.AddUint64(&s._BufBypass, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufBypass: off=%d, req=%d, n=%d, err=%v", s.packageName, off, req, n, err)
	}
}

func (s *_ReaderStat) BufClear() {
	atomic.AddUint64(&s._BufClear, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufClear", s.packageName)
	}
}

func (s *_ReaderStat) BufClose(pooled bool) {
	atomic.AddUint64(&s._BufClose, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.BufClose: pooled=%v", s.packageName, pooled)
	}
}

func (s *_ReaderStat) RamRead(off int64, req, n int, err error) {
	atomic.AddUint64(&s._RamRead, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.RamRead: off=%d, req=%d, n=%d, err=%v", s.packageName, off, req, n, err)
	}
}

func (s *_ReaderStat) FileRead(name string, off int64, req, n int, err error) {
	atomic.AddUint64(&s._FileRead, 1)
	if s.debugLvl >= DebugHigh || (err != nil && err != io.EOF) {
		pre := "DEBUG" // Debug level: high=2
		if err != nil && err != io.EOF {
			pre = "ERROR" // Debug level: error=0
		}
		log.Printf("%s: %s/stat.FileRead: name=%s, off=%d, req=%d, n=%d, err=%v", pre, s.packageName, name, off, req, n, err)
	}
}

func (s *_ReaderStat) MultiReq(off int64, req, n int, err error) {
	atomic.AddUint64(&s._MultiReq, 1)
	if s.debugLvl >= DebugHigh { // Debug level: high=2
		log.Printf("DEBUG: %s/stat.MultiReq: off=%d, req=%d, n=%d, err=%v", s.packageName, off, req, n, err)
	}
}
