package allocator

import "unsafe"

// dispatchFree classifies ptr by which arena's address range it falls in,
// verifies the header's magic marks it allocated, and routes it to that
// arena's free path. Anything else — a nil pointer, a foreign pointer, a
// pointer whose magic has already been flipped by a prior free, or
// arbitrary bytes — is silently ignored. The allocator never aborts or
// reports on misuse.
func dispatchFree(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	if buddyInitialized && withinRange(buddyBuf, ptr) {
		off := offsetOfBuddyPayload(buddyBuf, ptr)
		if off < 0 || off >= int32(len(buddyBuf)) {
			return
		}

		h := buddyHeaderAt(buddyBuf, off)
		if h.magic != MagicAlloc {
			return
		}

		freeBuddyBlock(off)

		return
	}

	if mainInitialized && withinRange(mainBuf, ptr) {
		off := offsetOfPayload(mainBuf, ptr)
		if off < 0 || off >= int32(len(mainBuf)) {
			return
		}

		h := headerAt(mainBuf, off)
		if h.magic != MagicAlloc {
			return
		}

		h.magic = MagicFree
		h.isFree = true

		coalesceAndInsert(off)

		return
	}

	// Foreign pointer — neither arena owns it. No-op.
}
