package allocator

import "unsafe"

// The four fit policies all operate on the main arena, all bootstrap it on
// first use, all record the policy identifier on entry (whether or not the
// call ultimately succeeds), and all short-circuit to nil when request==0.
// Failure is a first-class outcome here: a nil return, no partial mutation
// beyond the strategy identifier.

func allocFirst(n int) unsafe.Pointer {
	ensureMainArena()
	currentStrategyID = stratFirst

	if n <= 0 || n > HeapBytes {
		return nil
	}

	request := uint32(n)

	cur := addrHead
	for cur != noOffset {
		if headerAt(mainBuf, cur).payloadSize >= request {
			return commitAllocation(cur, request, true)
		}

		cur = headerAt(mainBuf, cur).nextOff
	}

	return nil
}

func allocNext(n int) unsafe.Pointer {
	ensureMainArena()
	currentStrategyID = stratNext

	if n <= 0 || n > HeapBytes {
		return nil
	}

	if addrHead == noOffset {
		return nil
	}

	request := uint32(n)

	start := rover
	if start == noOffset {
		start = addrHead
	}

	cur := start

	for {
		if headerAt(mainBuf, cur).payloadSize >= request {
			return commitAllocation(cur, request, true)
		}

		next := headerAt(mainBuf, cur).nextOff
		if next == noOffset {
			next = addrHead
		}

		if next == start {
			break
		}

		cur = next
	}

	return nil
}

func allocBest(n int) unsafe.Pointer {
	ensureMainArena()
	currentStrategyID = stratBest

	if n <= 0 || n > HeapBytes {
		return nil
	}

	request := uint32(n)

	cur := sizeIndexFirstGE(request)
	if cur == noOffset {
		return nil
	}

	return commitAllocation(cur, request, false)
}

func allocWorst(n int) unsafe.Pointer {
	ensureMainArena()
	currentStrategyID = stratWorst

	if n <= 0 || n > HeapBytes {
		return nil
	}

	request := uint32(n)

	cur := sizeIndexMax()
	if cur == noOffset || headerAt(mainBuf, cur).payloadSize < request {
		return nil
	}

	return commitAllocation(cur, request, false)
}

// commitAllocation removes the chosen block from the free set, splits it
// if a useful residual remains, reinserts any residual tail at the
// block's former address-list position, and — only for the rover-bearing
// policies — updates the rover. updatesRover is true for first-fit and
// next-fit; best-fit and worst-fit leave the rover where it was, except
// when the block it referenced is the one just consumed, in which case
// it must be retargeted so it never references an allocated block.
func commitAllocation(chosen int32, request uint32, updatesRover bool) unsafe.Pointer {
	prevAddr, nextAddr := freeSetNeighbors(chosen)
	freeSetRemove(chosen)

	tailOff := splitBlock(chosen, request)
	if tailOff != noOffset {
		freeSetAddAfter(prevAddr, tailOff)
	}

	if updatesRover || rover == chosen {
		if tailOff != noOffset {
			rover = tailOff
		} else if nextAddr != noOffset {
			rover = nextAddr
		} else {
			rover = addrHead
		}
	}

	return payloadPtr(mainBuf, chosen)
}
