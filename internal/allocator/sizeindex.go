package allocator

// The size index is a multi-level forward-link structure keyed on
// (payload_size, address), strictly ordered — equal-size blocks break
// ties by address, which removes ambiguity from worst-fit/best-fit and
// makes the index a genuine total order.

// sizeKeyLess reports whether the block at a sorts strictly before the
// block at b under the (size, address) order.
func sizeKeyLess(a, b int32) bool {
	ah, bh := headerAt(mainBuf, a), headerAt(mainBuf, b)
	if ah.payloadSize != bh.payloadSize {
		return ah.payloadSize < bh.payloadSize
	}

	return a < b
}

// forwardAt returns the forward pointer at level for cur, treating
// noOffset as the virtual head whose forward pointer is sizeHeads[level].
func forwardAt(cur int32, level int) int32 {
	if cur == noOffset {
		return sizeHeads[level]
	}

	return headerAt(mainBuf, cur).fwd[level]
}

func setForwardAt(cur int32, level int, val int32) {
	if cur == noOffset {
		sizeHeads[level] = val
		return
	}

	headerAt(mainBuf, cur).fwd[level] = val
}

// findPredecessors walks the index from the top level down, returning at
// each level the last node whose key is strictly less than target's key
// (noOffset meaning "before the head"). target must already carry the key
// being searched for — its own payloadSize and its own offset as address.
func findPredecessors(target int32) [SkipHeight]int32 {
	var update [SkipHeight]int32

	cur := int32(noOffset)

	for level := SkipHeight - 1; level >= 0; level-- {
		for {
			next := forwardAt(cur, level)
			if next == noOffset || !sizeKeyLess(next, target) {
				break
			}

			cur = next
		}

		update[level] = cur
	}

	return update
}

// sizeIndexInsert splices a free block, already carrying its own key
// (payloadSize and offset), into the size index at a height drawn from
// randHeight.
func sizeIndexInsert(off int32) {
	h := headerAt(mainBuf, off)
	height := randHeight()
	h.height = uint8(height)

	update := findPredecessors(off)

	for level := 0; level < height; level++ {
		h.fwd[level] = forwardAt(update[level], level)
		setForwardAt(update[level], level, off)
	}

	for level := height; level < SkipHeight; level++ {
		h.fwd[level] = noOffset
	}
}

// sizeIndexRemove detaches off from every level of the size index it
// participates in.
func sizeIndexRemove(off int32) {
	h := headerAt(mainBuf, off)
	update := findPredecessors(off)

	for level := 0; level < int(h.height); level++ {
		if forwardAt(update[level], level) != off {
			continue
		}

		setForwardAt(update[level], level, h.fwd[level])
	}
}

// sizeIndexFirstGE returns the smallest free block whose payload is at
// least k, the lowest-addressed one among equal sizes, or noOffset if none
// qualifies. Expected O(log n).
func sizeIndexFirstGE(k uint32) int32 {
	cur := int32(noOffset)

	for level := SkipHeight - 1; level >= 0; level-- {
		for {
			next := forwardAt(cur, level)
			if next == noOffset || headerAt(mainBuf, next).payloadSize >= k {
				break
			}

			cur = next
		}
	}

	return forwardAt(cur, 0)
}

// sizeIndexMax returns the greatest (size, address) free block, or
// noOffset if the index is empty.
func sizeIndexMax() int32 {
	cur := int32(noOffset)

	for level := SkipHeight - 1; level >= 0; level-- {
		for {
			next := forwardAt(cur, level)
			if next == noOffset {
				break
			}

			cur = next
		}
	}

	return cur
}
