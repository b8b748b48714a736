package allocator

// Both arenas are lazily initialized on first use and remain mapped until
// process exit — there is no unmap path. All
// metadata for the main arena's free set, and the buddy arena's per-order
// free lists, lives inline in the arenas themselves; these package-level
// variables are just the process-wide handles onto that state.
var (
	mainBuf         []byte
	mainInitialized bool

	// addrHead is the lowest-addressed free block in the main arena,
	// noOffset when the arena holds no free blocks at all.
	addrHead int32 = noOffset

	// rover is next-fit's resumption point: a weak reference into the
	// address list. It must never keep a block alive or block
	// coalescing — every coalesce path and every list-goes-empty
	// transition retargets or nulls it. See splitmerge.go.
	rover int32 = noOffset

	// sizeHeads[level] is the first block participating in level, or
	// noOffset. Levels above any given block's height simply don't list it.
	sizeHeads [SkipHeight]int32

	buddyBuf         []byte
	buddyInitialized bool

	// buddyFree[order] is the head of order's free list, or noOffset.
	buddyFree [MaxOrder]int32
)

// ensureMainArena performs the one-time bootstrap of the main arena: it
// obtains the backing mapping, resets the PRNG to its fixed seed, and
// installs a single whole-arena free block.
func ensureMainArena() {
	if mainInitialized {
		return
	}

	buf, err := mapAnonymous(HeapBytes)
	if err != nil {
		fatalf(newMappingError("main", HeapBytes, err))
	}

	mainBuf = buf

	for i := range sizeHeads {
		sizeHeads[i] = noOffset
	}

	resetPRNG()

	payload := uint32(HeapBytes) - uint32(blockHeaderSize)
	installFreeBlock(mainBuf, 0, payload)

	addrHead = 0
	rover = 0
	mainInitialized = true
}

// installFreeBlock writes a fresh free-block header at off with the given
// payload size and links it as the sole entry of the address list and size
// index. Used only by bootstrap and by Reset.
func installFreeBlock(buf []byte, off int32, payload uint32) {
	h := headerAt(buf, off)
	h.magic = MagicFree
	h.isFree = true
	h.payloadSize = payload
	h.prevOff = noOffset
	h.nextOff = noOffset

	height := randHeight()
	h.height = uint8(height)

	for i := 0; i < SkipHeight; i++ {
		if i < height {
			h.fwd[i] = noOffset
			sizeHeads[i] = off
		} else {
			h.fwd[i] = noOffset
		}
	}
}

// ensureBuddyArena performs the one-time bootstrap of the buddy arena: it
// obtains the backing mapping and installs a single free block at order
// MaxOrder-1. That block covers the first 1<<(MaxOrder-1) bytes of the
// mapping, which is all of it in the shipped configuration; any bytes
// beyond it are left unaddressed rather than patched with a partial
// extra block.
func ensureBuddyArena() {
	if buddyInitialized {
		return
	}

	buf, err := mapAnonymous(HeapBytes)
	if err != nil {
		fatalf(newMappingError("buddy", HeapBytes, err))
	}

	buddyBuf = buf

	for i := range buddyFree {
		buddyFree[i] = noOffset
	}

	topOrder := uint8(MaxOrder - 1)
	size := uint32(1) << topOrder

	h := buddyHeaderAt(buddyBuf, 0)
	h.magic = MagicFree
	h.isFree = true
	h.order = topOrder
	h.size = size
	h.prevOff = noOffset
	h.nextOff = noOffset

	buddyFree[topOrder] = 0
	buddyInitialized = true
}

// resetMainArena restores the main arena to its freshly bootstrapped,
// single-free-block state without re-mapping. It is not part of the
// required allocator surface; it exists so benchmark harnesses (and this
// package's own tests) can get a clean arena cheaply across runs.
func resetMainArena() {
	if !mainInitialized {
		return
	}

	for i := range sizeHeads {
		sizeHeads[i] = noOffset
	}

	resetPRNG()

	payload := uint32(HeapBytes) - uint32(blockHeaderSize)
	installFreeBlock(mainBuf, 0, payload)

	addrHead = 0
	rover = 0
	currentStrategyID = stratFirst
}

// resetBuddyArena restores the buddy arena to its freshly bootstrapped state.
func resetBuddyArena() {
	if !buddyInitialized {
		return
	}

	for i := range buddyFree {
		buddyFree[i] = noOffset
	}

	topOrder := uint8(MaxOrder - 1)
	size := uint32(1) << topOrder

	h := buddyHeaderAt(buddyBuf, 0)
	h.magic = MagicFree
	h.isFree = true
	h.order = topOrder
	h.size = size
	h.prevOff = noOffset
	h.nextOff = noOffset

	buddyFree[topOrder] = 0
}
