package allocator

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestDispatchFreeRoutesToBuddyArena(t *testing.T) {
	resetForTest(t)

	ptr := AllocBuddy(64)
	require.NotNil(t, ptr)

	Free(ptr)

	off := offsetOfBuddyPayload(buddyBuf, ptr)
	h := buddyHeaderAt(buddyBuf, off)
	require.Equal(t, MagicFree, h.magic)
	require.True(t, h.isFree)
}

func TestDispatchFreeRoutesToMainArena(t *testing.T) {
	resetForTest(t)

	ptr := AllocFirst(64)
	require.NotNil(t, ptr)

	Free(ptr)

	off := offsetOfPayload(mainBuf, ptr)
	h := headerAt(mainBuf, off)
	require.Equal(t, MagicFree, h.magic)
	require.True(t, h.isFree)
}

func TestDispatchFreeIgnoresPointerOutsideBothArenas(t *testing.T) {
	resetForTest(t)

	stackVar := 42
	before := Stats()

	require.NotPanics(t, func() { Free(unsafe.Pointer(&stackVar)) })

	require.Equal(t, before, Stats())
}

func TestDispatchFreeIgnoresAlreadyFreedMainBlock(t *testing.T) {
	resetForTest(t)

	ptr := AllocFirst(64)
	require.NotNil(t, ptr)

	Free(ptr)
	before := Stats()

	Free(ptr)

	require.Equal(t, before, Stats())
}

func TestDispatchFreeIgnoresAlreadyFreedBuddyBlock(t *testing.T) {
	resetForTest(t)

	ptr := AllocBuddy(64)
	require.NotNil(t, ptr)

	Free(ptr)
	before := BuddyStatsSnapshot()

	Free(ptr)

	require.Equal(t, before, BuddyStatsSnapshot())
}
