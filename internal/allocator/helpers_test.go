package allocator

import "testing"

// resetForTest brings both arenas to a known, freshly bootstrapped state
// before a test runs, so tests don't depend on execution order.
func resetForTest(t *testing.T) {
	t.Helper()

	ensureMainArena()
	resetMainArena()

	ensureBuddyArena()
	resetBuddyArena()
}

// mainHeaderBytes is the size of one main-arena block header.
func mainHeaderBytes() int {
	return int(blockHeaderSize)
}

func mainCapacity() int {
	return HeapBytes - mainHeaderBytes()
}
