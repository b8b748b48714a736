package allocator

import "fmt"

// This file holds the read-only observers layered onto the required
// alloc_X/Free surface: aggregate statistics, an invariant-checking
// Validate, and an enumeration callback over the main arena's free
// blocks. None of
// them are called from the hot allocate/free paths — they exist for the
// benchmark harness and for this package's own tests.

// MainStats summarizes the main arena's free set.
type MainStats struct {
	FreeRegions int
	FreeBytes   uint32
	LargestFree uint32
}

// Stats walks the address list once and summarizes the main arena's free
// set. O(n); diagnostic use only.
func Stats() MainStats {
	if !mainInitialized {
		return MainStats{}
	}

	var s MainStats

	for cur := addrHead; cur != noOffset; cur = headerAt(mainBuf, cur).nextOff {
		size := headerAt(mainBuf, cur).payloadSize
		s.FreeRegions++
		s.FreeBytes += size

		if size > s.LargestFree {
			s.LargestFree = size
		}
	}

	return s
}

// BuddyStats summarizes the buddy arena's per-order free lists.
type BuddyStats struct {
	FreeBlocksByOrder [MaxOrder]int
	FreeBytes         uint32
}

// BuddyStatsSnapshot walks every per-order free list once.
func BuddyStatsSnapshot() BuddyStats {
	var s BuddyStats

	if !buddyInitialized {
		return s
	}

	for order := 0; order < MaxOrder; order++ {
		for cur := buddyFree[order]; cur != noOffset; cur = buddyHeaderAt(buddyBuf, cur).nextOff {
			s.FreeBlocksByOrder[order]++
			s.FreeBytes += buddyHeaderAt(buddyBuf, cur).size
		}
	}

	return s
}

// Validate walks the main arena's address list and size index and checks
// that every free block is correctly marked, address-ordered with no
// missed coalescing, and consistently present in both structures. It
// never mutates state and is never called from AllocX/Free — it's an
// expensive, optional correctness check.
func Validate() error {
	if !mainInitialized {
		return nil
	}

	seen := 0

	var prev int32 = noOffset

	for cur := addrHead; cur != noOffset; cur = headerAt(mainBuf, cur).nextOff {
		h := headerAt(mainBuf, cur)
		if h.magic != MagicFree || !h.isFree {
			return fmt.Errorf("allocator: block at %d in address list is not marked free", cur)
		}

		if prev != noOffset {
			if !(prev < cur) {
				return fmt.Errorf("allocator: address list not strictly increasing at %d -> %d", prev, cur)
			}

			if adjacent(prev, cur) {
				return fmt.Errorf("allocator: missed coalescing between %d and %d", prev, cur)
			}
		}

		prev = cur
		seen++
	}

	indexed := 0

	for level := 0; level < SkipHeight; level++ {
		var lastKey int32 = noOffset

		for cur := sizeHeads[level]; cur != noOffset; cur = headerAt(mainBuf, cur).fwd[level] {
			if lastKey != noOffset && !sizeKeyLess(lastKey, cur) {
				return fmt.Errorf("allocator: size index level %d not ordered at %d -> %d", level, lastKey, cur)
			}

			lastKey = cur

			if level == 0 {
				indexed++
			}
		}
	}

	if indexed != seen {
		return fmt.Errorf("allocator: address list has %d members but size index has %d", seen, indexed)
	}

	if rover != noOffset {
		inList := false

		for cur := addrHead; cur != noOffset; cur = headerAt(mainBuf, cur).nextOff {
			if cur == rover {
				inList = true

				break
			}
		}

		if !inList {
			return fmt.Errorf("allocator: rover %d does not reference a current free block", rover)
		}
	}

	return nil
}

// FreeBlockVisitor is called once per free region in the main arena, in
// address order.
type FreeBlockVisitor func(offset int, size int)

// VisitFreeBlocks enumerates the main arena's free set in address order.
func VisitFreeBlocks(visit FreeBlockVisitor) {
	if !mainInitialized {
		return
	}

	for cur := addrHead; cur != noOffset; cur = headerAt(mainBuf, cur).nextOff {
		h := headerAt(mainBuf, cur)
		visit(int(cur), int(h.payloadSize))
	}
}

// Reset restores the main arena to its freshly bootstrapped state (one
// whole free block, rover at head) without re-mapping. Exposed for
// benchmark harnesses and tests that want a clean arena across runs.
func Reset() {
	resetMainArena()
}

// ResetBuddy restores the buddy arena to its freshly bootstrapped state
// (one free block at order MaxOrder-1) without re-mapping.
func ResetBuddy() {
	resetBuddyArena()
}
