//go:build !openbsd

package kern

import "syscall"

// System is a placeholder on non-OpenBSD platforms so the portable core and
// its tests build everywhere. Every kernel call reports ENOSYS.
type System struct{}

var _ Interface = System{}

func (System) OpenProcHandle() (ProcHandle, error) {
	return nil, syscall.ENOSYS
}

func (System) Args(pid int32, buf []byte) (int, error) {
	return 0, syscall.ENOSYS
}

func (System) ArgsFlat(pid int32, buf []byte) (int, error) {
	return 0, syscall.ENOSYS
}

func (System) Signal(pid int32, sig syscall.Signal) error {
	return syscall.ENOSYS
}
