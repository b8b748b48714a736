package allocator

import "unsafe"

// blockHeader is placed at the base of every block in the main arena,
// free or allocated. Free blocks use every field; an allocated block
// only needs magic, isFree and payloadSize — the link fields are simply
// left stale once a block is allocated.
//
// Link fields are offsets relative to the main arena's base, not Go
// pointers. That keeps the structure entirely inside the mmap'd byte
// range and makes the header trivially relocatable if the arena were
// ever copied.
type blockHeader struct {
	magic       uint32
	payloadSize uint32
	prevOff     int32 // address-list predecessor, noOffset if none
	nextOff     int32 // address-list successor, noOffset if none
	fwd         [SkipHeight]int32
	height      uint8
	isFree      bool
}

var blockHeaderSize = int32(unsafe.Sizeof(blockHeader{}))

// headerAt reinterprets the bytes at off within buf as a *blockHeader.
func headerAt(buf []byte, off int32) *blockHeader {
	return (*blockHeader)(unsafe.Pointer(&buf[off]))
}

// payloadPtr returns the address handed to a caller for the block at off.
func payloadPtr(buf []byte, off int32) unsafe.Pointer {
	return unsafe.Pointer(&buf[off+blockHeaderSize])
}

// blockTotalSize is header + payload for a block with the given payload size.
func blockTotalSize(payload uint32) int32 {
	return blockHeaderSize + int32(payload)
}

// offsetOfPayload maps a payload pointer, previously returned to a caller,
// back to its header's offset within buf. The caller must already know
// ptr lies within buf's address range.
func offsetOfPayload(buf []byte, ptr unsafe.Pointer) int32 {
	base := uintptr(unsafe.Pointer(&buf[0]))
	addr := uintptr(ptr)

	return int32(addr-base) - blockHeaderSize
}

// withinRange reports whether ptr's address falls inside buf's backing range.
func withinRange(buf []byte, ptr unsafe.Pointer) bool {
	if len(buf) == 0 || ptr == nil {
		return false
	}

	base := uintptr(unsafe.Pointer(&buf[0]))
	addr := uintptr(ptr)
	end := base + uintptr(len(buf))

	return addr >= base && addr < end
}

// buddyHeader is placed at the base of every block in the buddy arena,
// free or allocated.
type buddyHeader struct {
	magic   uint32
	size    uint32
	prevOff int32 // per-order free-list predecessor, noOffset if none
	nextOff int32 // per-order free-list successor, noOffset if none
	order   uint8
	isFree  bool
}

var buddyHeaderSize = int32(unsafe.Sizeof(buddyHeader{}))

func buddyHeaderAt(buf []byte, off int32) *buddyHeader {
	return (*buddyHeader)(unsafe.Pointer(&buf[off]))
}

func buddyPayloadPtr(buf []byte, off int32) unsafe.Pointer {
	return unsafe.Pointer(&buf[off+buddyHeaderSize])
}

// offsetOfBuddyPayload is offsetOfPayload's counterpart for the buddy arena.
func offsetOfBuddyPayload(buf []byte, ptr unsafe.Pointer) int32 {
	base := uintptr(unsafe.Pointer(&buf[0]))
	addr := uintptr(ptr)

	return int32(addr-base) - buddyHeaderSize
}
