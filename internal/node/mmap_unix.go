//go:build unix && !linux

package node

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapNodes reserves the arena backing as one anonymous private mapping.
// No huge-page advice here; MADV_HUGEPAGE is Linux-only.
func mapNodes(n uint32) ([]Node, func(), error) {
	size := int(n) * int(unsafe.Sizeof(Node{}))
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, err
	}
	nodes := unsafe.Slice((*Node)(unsafe.Pointer(&buf[0])), n)
	release := func() { _ = unix.Munmap(buf) }
	return nodes, release, nil
}
