package proc

import (
	"syscall"
	"unsafe"

	"procsnap/kern"
)

// stubHandle is a ProcHandle over a canned reply. Close optionally poisons
// the lent buffer, modelling the kernel invalidating handle-owned memory.
type stubHandle struct {
	buf      []byte
	count    int
	procsErr error

	poisonOnClose bool
	closes        int
}

func (h *stubHandle) Procs() ([]byte, int, error) {
	if h.procsErr != nil {
		return nil, 0, h.procsErr
	}
	return h.buf, h.count, nil
}

func (h *stubHandle) Close() error {
	h.closes++
	if h.poisonOnClose {
		for i := range h.buf {
			h.buf[i] = 0xff
		}
	}
	return nil
}

// stubKern is a scriptable kern.Interface. Call counts let tests assert the
// negative-pid short circuits never reach the kernel.
type stubKern struct {
	handle  *stubHandle
	openErr error

	args     func(pid int32, buf []byte) (int, error)
	argsFlat func(pid int32, buf []byte) (int, error)
	signal   func(pid int32, sig syscall.Signal) error

	openCalls   int
	argsCalls   int
	flatCalls   int
	signalCalls int
}

func (k *stubKern) OpenProcHandle() (kern.ProcHandle, error) {
	k.openCalls++
	if k.openErr != nil {
		return nil, k.openErr
	}
	return k.handle, nil
}

func (k *stubKern) Args(pid int32, buf []byte) (int, error) {
	k.argsCalls++
	return k.args(pid, buf)
}

func (k *stubKern) ArgsFlat(pid int32, buf []byte) (int, error) {
	k.flatCalls++
	return k.argsFlat(pid, buf)
}

func (k *stubKern) Signal(pid int32, sig syscall.Signal) error {
	k.signalCalls++
	return k.signal(pid, sig)
}

// packProcs lays out kinfo_proc records the way the kernel reply does.
func packProcs(pids ...int32) []byte {
	buf := make([]byte, len(pids)*kern.SizeofKinfoProc)
	for i, pid := range pids {
		kp := kern.KinfoProc{Pid: pid}
		rec := (*(*[kern.SizeofKinfoProc]byte)(unsafe.Pointer(&kp)))[:]
		copy(buf[i*kern.SizeofKinfoProc:], rec)
	}
	return buf
}
