package allocator

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// TestFirstFitRoundTrip checks that two allocations, freed in allocation
// order, coalesce back into a single whole free block with the rover at
// its head.
func TestFirstFitRoundTrip(t *testing.T) {
	resetForTest(t)

	a := AllocFirst(128)
	b := AllocFirst(64)
	require.NotNil(t, a)
	require.NotNil(t, b)

	Free(a)
	Free(b)

	require.Equal(t, int32(0), addrHead)
	require.Equal(t, int32(0), rover)
	require.Equal(t, uint32(mainCapacity()), headerAt(mainBuf, addrHead).payloadSize)
}

// TestBestFitPicksSmallestAdequate checks best-fit prefers the smallest
// free block that can still satisfy the request.
func TestBestFitPicksSmallestAdequate(t *testing.T) {
	resetForTest(t)

	free200, free80, free300 := buildThreeFreeBlocks(t)

	got := AllocBest(64)
	require.NotNil(t, got)
	require.Equal(t, payloadPtr(mainBuf, free80), got)

	_ = free200
	_ = free300
}

// TestWorstFitPicksLargest checks worst-fit prefers the largest free
// block, over the same configuration TestBestFitPicksSmallestAdequate
// uses.
func TestWorstFitPicksLargest(t *testing.T) {
	resetForTest(t)

	free200, free80, free300 := buildThreeFreeBlocks(t)

	got := AllocWorst(64)
	require.NotNil(t, got)
	require.Equal(t, payloadPtr(mainBuf, free300), got)

	_ = free200
	_ = free80
}

// buildThreeFreeBlocks carves the single whole block into free regions of
// payload 200, 80, and 300 bytes in address order, each separated by a
// small block left allocated so the three never coalesce with each
// other, and consumes the remaining tail entirely so it can't outrank
// any of the three in a size comparison.
func buildThreeFreeBlocks(t *testing.T) (off200, off80, off300 int32) {
	t.Helper()

	a := AllocFirst(200)
	spacer1 := AllocFirst(16)
	b := AllocFirst(80)
	spacer2 := AllocFirst(16)
	c := AllocFirst(300)
	require.NotNil(t, a)
	require.NotNil(t, spacer1)
	require.NotNil(t, b)
	require.NotNil(t, spacer2)
	require.NotNil(t, c)

	off200 = offsetOfPayload(mainBuf, a)
	off80 = offsetOfPayload(mainBuf, b)
	off300 = offsetOfPayload(mainBuf, c)

	remaining := headerAt(mainBuf, addrHead).payloadSize
	filler := AllocFirst(int(remaining))
	require.NotNil(t, filler)
	require.Equal(t, int32(noOffset), addrHead)

	Free(a)
	Free(b)
	Free(c)

	return off200, off80, off300
}

// TestNextFitRoverFollowsCoalescedWhole checks that freeing next-fit's
// only allocation restores the rover to the arena's single free block.
func TestNextFitRoverFollowsCoalescedWhole(t *testing.T) {
	resetForTest(t)

	ptr := AllocNext(128)
	require.NotNil(t, ptr)

	Free(ptr)

	require.Equal(t, int32(0), rover)
	require.Equal(t, uint32(mainCapacity()), headerAt(mainBuf, rover).payloadSize)
}

// TestZeroSizeReturnsNilUnderEveryPolicy checks every policy rejects a
// zero-byte request without touching the free set.
func TestZeroSizeReturnsNilUnderEveryPolicy(t *testing.T) {
	resetForTest(t)

	require.Nil(t, AllocFirst(0))
	require.Nil(t, AllocNext(0))
	require.Nil(t, AllocBest(0))
	require.Nil(t, AllocWorst(0))
	require.Nil(t, AllocBuddy(0))
}

// TestOversizeReturnsNil checks every main-arena fit policy rejects a
// request that exceeds the arena's usable capacity.
func TestOversizeReturnsNil(t *testing.T) {
	resetForTest(t)

	tooBig := mainCapacity() + 1

	require.Nil(t, AllocFirst(tooBig))
	require.Nil(t, AllocNext(tooBig))
	require.Nil(t, AllocBest(tooBig))
	require.Nil(t, AllocWorst(tooBig))
}

// TestSplitThresholdLeavesWholeBlockUnsplit checks that a request whose
// residual would be smaller than a header plus MinTail bytes consumes
// the whole block rather than splitting off an unusable tail.
func TestSplitThresholdLeavesWholeBlockUnsplit(t *testing.T) {
	resetForTest(t)

	// The fresh arena is a single free block; size the request so its
	// leftover payload would be less than MinTail.
	whole := mainCapacity()
	smallTail := mainHeaderBytes() + MinTail - 1
	request := whole - smallTail

	ptr := AllocFirst(request)
	require.NotNil(t, ptr)

	off := offsetOfPayload(mainBuf, ptr)
	// No split occurred: the caller's block retains the full original
	// payload, which exceeds the request.
	require.Equal(t, uint32(whole), headerAt(mainBuf, off).payloadSize)
	require.Equal(t, int32(noOffset), addrHead)
}

// TestAllocFirstFailsWhenNoBlockFits exercises first-fit's null path
// without mutating any state beyond the strategy identifier.
func TestAllocFirstFailsWhenNoBlockFits(t *testing.T) {
	resetForTest(t)

	require.NotNil(t, AllocFirst(mainCapacity()))
	require.Nil(t, AllocFirst(1))
	require.Equal(t, StrategyFirst, CurrentStrategy())
}

// TestForeignPointerFreeIsNoOp checks that freeing a pointer neither
// arena ever handed out leaves the allocator unaffected.
func TestForeignPointerFreeIsNoOp(t *testing.T) {
	resetForTest(t)

	var stray int
	Free(unsafe.Pointer(&stray))

	ptr := AllocFirst(64)
	require.NotNil(t, ptr)
}

// TestDoubleFreeIsNoOp checks that freeing the same pointer twice leaves
// the free set exactly as the first free did.
func TestDoubleFreeIsNoOp(t *testing.T) {
	resetForTest(t)

	ptr := AllocFirst(64)
	require.NotNil(t, ptr)

	Free(ptr)
	before := Stats()

	Free(ptr)
	after := Stats()

	require.Equal(t, before, after)
}

// TestFreeNilIsNoOp checks that Free(nil) never panics.
func TestFreeNilIsNoOp(t *testing.T) {
	resetForTest(t)
	require.NotPanics(t, func() { Free(nil) })
}
