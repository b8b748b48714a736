//go:build linux || darwin

package allocator

import "golang.org/x/sys/unix"

// mapAnonymous requests a zero-initialized private anonymous mapping of n
// bytes via the raw mmap(2) syscall.
func mapAnonymous(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}
