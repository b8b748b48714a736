package allocator

import "unsafe"

// allocBuddy is the power-of-two buddy allocator's entry point.
// Allocation rounds the request (plus its header) up to the smallest
// order k that fits, finds the smallest non-empty free list at or above
// k, and splits that block downward, pushing each right half onto the
// freelist one order below as it goes.
func allocBuddy(n int) unsafe.Pointer {
	ensureBuddyArena()
	currentStrategyID = stratBuddy

	if n <= 0 || n > HeapBytes {
		return nil
	}

	need := uint32(n) + uint32(buddyHeaderSize)

	k := 0
	for (uint32(1) << uint(k)) < need {
		k++
	}

	if k >= MaxOrder {
		return nil
	}

	j := k
	for j < MaxOrder && buddyFree[j] == noOffset {
		j++
	}

	if j >= MaxOrder {
		return nil
	}

	off := buddyListPop(j)

	for j > k {
		j--

		size := uint32(1) << uint(j)
		rightOff := off + int32(size)
		buddyInstallFree(rightOff, uint8(j), size)
		buddyListPush(j, rightOff)
	}

	h := buddyHeaderAt(buddyBuf, off)
	h.magic = MagicAlloc
	h.isFree = false
	h.order = uint8(k)
	h.size = uint32(1) << uint(k)

	return buddyPayloadPtr(buddyBuf, off)
}

// freeBuddyBlock marks off free, pushes it onto its order's list, then
// repeatedly looks for its XOR buddy and merges upward while that buddy
// exists, is free, and is the same order.
func freeBuddyBlock(off int32) {
	h := buddyHeaderAt(buddyBuf, off)
	order := h.order

	h.magic = MagicFree
	h.isFree = true
	buddyListPush(int(order), off)

	for order < MaxOrder-1 {
		buddyOff := off ^ (int32(1) << order)
		if buddyOff < 0 || buddyOff >= int32(len(buddyBuf)) {
			break
		}

		bh := buddyHeaderAt(buddyBuf, buddyOff)
		if !bh.isFree || bh.magic != MagicFree || bh.order != order {
			break
		}

		buddyListRemove(int(order), off)
		buddyListRemove(int(order), buddyOff)

		lower := off
		if buddyOff < off {
			lower = buddyOff
		}

		order++

		lh := buddyHeaderAt(buddyBuf, lower)
		lh.magic = MagicFree
		lh.isFree = true
		lh.order = order
		lh.size = uint32(1) << order

		buddyListPush(int(order), lower)

		off = lower
	}
}

func buddyListPop(order int) int32 {
	off := buddyFree[order]
	if off == noOffset {
		return noOffset
	}

	h := buddyHeaderAt(buddyBuf, off)
	buddyFree[order] = h.nextOff

	if h.nextOff != noOffset {
		buddyHeaderAt(buddyBuf, h.nextOff).prevOff = noOffset
	}

	h.prevOff, h.nextOff = noOffset, noOffset

	return off
}

func buddyListPush(order int, off int32) {
	h := buddyHeaderAt(buddyBuf, off)
	h.prevOff = noOffset
	h.nextOff = buddyFree[order]

	if buddyFree[order] != noOffset {
		buddyHeaderAt(buddyBuf, buddyFree[order]).prevOff = off
	}

	buddyFree[order] = off
}

func buddyListRemove(order int, off int32) {
	h := buddyHeaderAt(buddyBuf, off)

	if h.prevOff == noOffset {
		buddyFree[order] = h.nextOff
	} else {
		buddyHeaderAt(buddyBuf, h.prevOff).nextOff = h.nextOff
	}

	if h.nextOff != noOffset {
		buddyHeaderAt(buddyBuf, h.nextOff).prevOff = h.prevOff
	}

	h.prevOff, h.nextOff = noOffset, noOffset
}

func buddyInstallFree(off int32, order uint8, size uint32) {
	h := buddyHeaderAt(buddyBuf, off)
	h.magic = MagicFree
	h.isFree = true
	h.order = order
	h.size = size
	h.prevOff, h.nextOff = noOffset, noOffset
}
