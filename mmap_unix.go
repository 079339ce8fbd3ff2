//go:build unix

package vis

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapReadOnly maps the whole of f read-only, MAP_SHARED, for Load's
// original buffer.
func mmapReadOnly(f *os.File, size int64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	return unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
}

// mmapReadWrite maps the whole of f read-write, MAP_SHARED, for Save's
// temp-file target.
func mmapReadWrite(f *os.File, size int64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	return unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func munmap(data []byte) error {
	if data == nil {
		return nil
	}
	return unix.Munmap(data)
}

// msync flushes a read-write mapping's dirty pages to disk synchronously,
// so Save's rename only ever replaces the destination with fully durable
// content.
func msync(data []byte) error {
	if data == nil {
		return nil
	}
	return unix.Msync(data, unix.MS_SYNC)
}
