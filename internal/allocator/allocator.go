package allocator

import "unsafe"

// AllocFirst allocates n bytes using the first-fit policy: the lowest
// address-ordered free block large enough to satisfy the request.
func AllocFirst(n int) unsafe.Pointer { return allocFirst(n) }

// AllocNext allocates n bytes using the next-fit policy: search resumes
// from the rover left by the previous rover-bearing allocation.
func AllocNext(n int) unsafe.Pointer { return allocNext(n) }

// AllocBest allocates n bytes using the best-fit policy: the smallest
// free block that still satisfies the request, ties broken by address.
func AllocBest(n int) unsafe.Pointer { return allocBest(n) }

// AllocWorst allocates n bytes using the worst-fit policy: the largest
// free block, provided it's large enough.
func AllocWorst(n int) unsafe.Pointer { return allocWorst(n) }

// AllocBuddy allocates n bytes from the independent buddy arena, rounding
// up to the nearest power-of-two block that fits n plus its header.
func AllocBuddy(n int) unsafe.Pointer { return allocBuddy(n) }

// Free returns ptr, previously returned by any AllocX, to the arena that
// owns it. A nil pointer, a pointer this package never handed out, or a
// pointer already freed once is silently ignored — see dispatch.go.
func Free(ptr unsafe.Pointer) { dispatchFree(ptr) }
