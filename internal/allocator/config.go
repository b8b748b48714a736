// Package allocator implements a user-space memory allocator that models
// five classical block-placement policies — first-fit, next-fit, best-fit,
// worst-fit, and binary buddy — over arenas obtained directly from the
// operating system's anonymous-mapping facility.
//
// There is exactly one allocation entry point per policy and a single
// Free dispatcher that routes any returned pointer back to the arena
// that owns it. The package keeps process-wide state (no instances are
// constructed by callers) and performs no internal locking: callers must
// serialize access externally.
package allocator

// Compile-time configuration constants. These are fixed for reproducibility —
// fragmentation studies depend on every run seeing the same arena geometry
// and the same PRNG sequence.
const (
	// HeapBytes is the size, in bytes, of each arena's anonymous mapping.
	// The main arena and the buddy arena are each exactly this size,
	// independently of one another.
	HeapBytes = 4096

	// MinTail is the smallest residual payload size that still justifies
	// splitting a block rather than handing the whole thing to the caller.
	MinTail = 32

	// SkipHeight is the fixed maximum height of the size index's forward
	// links (H in the design).
	SkipHeight = 6

	// MaxOrder bounds the buddy allocator's order space. The initial
	// buddy free block sits at order MaxOrder-1, so its size is
	// 1<<(MaxOrder-1) == HeapBytes.
	MaxOrder = 13

	// MagicFree and MagicAlloc are the sentinels distinguishing a free
	// block header from an allocated one. Distinct, arbitrary 32-bit
	// values; their only requirement is that they not collide.
	MagicFree  uint32 = 0x46524545 // "FREE"
	MagicAlloc uint32 = 0x41434b44 // "ACKD"
)

// noOffset is the sentinel used in place of a null offset throughout the
// address list, size index, and buddy free lists. Arena sizes are capped
// well below 1<<31, so a signed offset with -1 as "none" never collides
// with a legitimate address.
const noOffset int32 = -1
