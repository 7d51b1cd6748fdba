package impl

import (
	"math/rand"
)

// DemoData returns size deterministic pseudo random bytes (seed 1337).
// Every call with the same size returns the same bytes. Mainly for
// testing and benchmarks.
func DemoData(size int) []byte {
	rnd := rand.New(rand.NewSource(1337))
	b := make([]byte, size)
	_, _ = rnd.Read(b)
	return b
}

// DemoSeq returns size counting bytes: 0, 1, 2, ... 255, 0, 1, ...
// The byte at offset i is always byte(i), which makes wrong reads easy
// to spot in tests.
func DemoSeq(size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
