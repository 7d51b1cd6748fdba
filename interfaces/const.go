package interf

// DefaultBufferSize is the default window size of a buffered reader.
// It is also the width of the shared byte pool (see impl).
// Sequential reads whose combined span fits in this window cost one
// source call in total.
const DefaultBufferSize = 8 * 1024 // 8 kiB (two pages)

// MinBufferSize is the smallest accepted window size.
// Smaller values are raised to this limit by the constructors.
const MinBufferSize = 16

// PoolBuffers is the number of reusable window buffers in the shared
// byte pool. The pool avoids allocating DefaultBufferSize buffers for
// short-lived readers (one reader per consumer is the intended pattern).
const PoolBuffers = 64 // ~ 512 kiB
