//go:build openbsd

package kern

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// System is the live-kernel implementation of Interface.
type System struct{}

var _ Interface = System{}

// sysctl issues a raw __sysctl(2) call. oldlen is in/out: on entry the
// capacity of old, on return the number of bytes the kernel wrote (or, when
// old is nil, the size it would need).
func sysctl(mib []int32, old []byte, oldlen *uint64) error {
	var oldp unsafe.Pointer
	if len(old) > 0 {
		oldp = unsafe.Pointer(&old[0])
	}
	_, _, errno := unix.Syscall6(
		unix.SYS___SYSCTL,
		uintptr(unsafe.Pointer(&mib[0])),
		uintptr(len(mib)),
		uintptr(oldp),
		uintptr(unsafe.Pointer(oldlen)),
		0, 0,
	)
	if errno != 0 {
		return errno
	}
	return nil
}

// OpenProcHandle opens the process-query session. The sysctl interface is
// connectionless, so the handle's job is owning the kernel reply buffer
// until Close invalidates it.
func (System) OpenProcHandle() (ProcHandle, error) {
	return &sysctlHandle{}, nil
}

type sysctlHandle struct {
	buf    []byte
	closed bool
}

func (h *sysctlHandle) Procs() ([]byte, int, error) {
	if h.closed {
		return nil, 0, syscall.EBADF
	}

	mib := []int32{CtlKern, KernProc, KernProcAll, 0, int32(SizeofKinfoProc), 0}
	var size uint64
	if err := sysctl(mib, nil, &size); err != nil {
		return nil, 0, fmt.Errorf("kern.proc size probe: %w", err)
	}

	// The table can grow between the size probe and the copy, in which case
	// the kernel reports ENOMEM. Pad the buffer and retry, the same
	// accommodation libkvm makes inside kvm_getprocs.
	size += size / 8
	for {
		count := size / uint64(SizeofKinfoProc)
		if count == 0 {
			count = 1
		}
		mib[5] = int32(count)
		buf := make([]byte, count*uint64(SizeofKinfoProc))
		n := uint64(len(buf))
		err := sysctl(mib, buf, &n)
		if err == nil {
			h.buf = buf[:n]
			return h.buf, int(n) / SizeofKinfoProc, nil
		}
		if err != syscall.ENOMEM {
			return nil, 0, fmt.Errorf("kern.proc: %w", err)
		}
		size *= 2
	}
}

// Close drops the kernel reply buffer. Borrowed views handed out by Procs
// are stale from here on.
func (h *sysctlHandle) Close() error {
	h.buf = nil
	h.closed = true
	return nil
}

func (System) Args(pid int32, buf []byte) (int, error) {
	mib := []int32{CtlKern, KernProcArgs, pid, KernProcArgv}
	n := uint64(len(buf))
	if err := sysctl(mib, buf, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ArgsFlat serves the historical flattened argument-space protocol. The
// token and terminator layout of the flattened space is not interpreted at
// this level.
func (System) ArgsFlat(pid int32, buf []byte) (int, error) {
	mib := []int32{CtlKern, KernProcArgs, pid, KernProcArgv}
	n := uint64(len(buf))
	if err := sysctl(mib, buf, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (System) Signal(pid int32, sig syscall.Signal) error {
	return unix.Kill(int(pid), sig)
}
