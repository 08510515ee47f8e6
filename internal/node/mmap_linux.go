//go:build linux

package node

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapNodes reserves the full arena backing as one anonymous private mapping.
// Linux overcommits, so the 256 MiB is address space only until touched, and
// the pages arrive zeroed. Transparent huge pages are requested; the advice
// may be refused and that is fine.
func mapNodes(n uint32) ([]Node, func(), error) {
	size := int(n) * int(unsafe.Sizeof(Node{}))
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, nil, err
	}
	_ = unix.Madvise(buf, unix.MADV_HUGEPAGE)
	nodes := unsafe.Slice((*Node)(unsafe.Pointer(&buf[0])), n)
	release := func() { _ = unix.Munmap(buf) }
	return nodes, release, nil
}
