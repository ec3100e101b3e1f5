//go:build darwin || freebsd

package sys

import (
	"syscall"
	"unsafe"
)

type sysctl struct{}

// Host returns the __sysctl(2) primitive.
func Host() Querier {
	return sysctl{}
}

func (sysctl) Query(mib MIB, buf []byte) (int, error) {
	if len(mib) == 0 || len(buf) == 0 {
		return 0, syscall.EINVAL
	}
	n := uintptr(len(buf))

	//nolint:gosec // raw sysctl needs the buffer address
	_, _, errno := syscall.Syscall6(
		syscall.SYS___SYSCTL,
		uintptr(unsafe.Pointer(&mib[0])),
		uintptr(len(mib)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&n)),
		0,
		0,
	)
	if errno != 0 {
		return 0, errno
	}
	return int(n), nil
}
