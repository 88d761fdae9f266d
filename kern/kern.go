package kern

import (
	"syscall"
	"unsafe"
)

// sysctl mib components, from OpenBSD sys/sysctl.h.
const (
	CtlKern      = 1
	KernArgMax   = 8
	KernProcArgs = 55
	KernProc     = 66

	// op for the KERN_PROC node
	KernProcAll = 0

	// ops for the KERN_PROC_ARGS node
	KernProcArgv = 1
	KernProcEnv  = 3
)

// KinfoProc is the leading portion of OpenBSD's struct kinfo_proc as
// exported by the KERN_PROC sysctl. The kernel copies out
// min(elem_size, sizeof(kinfo_proc)) bytes per record and spaces records at
// the caller-declared element size, so declaring a prefix is ABI-valid as
// long as SizeofKinfoProc is what goes into the mib.
type KinfoProc struct {
	Forw    uint64
	Back    uint64
	Paddr   uint64
	Addr    uint64
	Fd      uint64
	Stats   uint64
	Limit   uint64
	Vmspace uint64
	Sigacts uint64
	Sess    uint64
	Tsess   uint64
	Ru      uint64

	Eflag   int32
	Exitsig int32
	Flag    int32

	Pid   int32
	Ppid  int32
	Sid   int32
	Pgid  int32
	Tpgid int32

	UID  uint32
	Ruid uint32
	Gid  uint32
	Rgid uint32

	Groups  [16]uint32
	Ngroups int16
	Jobc    int16
	Tdev    uint32

	Estcpu     uint32
	RtimeSec   uint32
	RtimeUsec  uint32
	Cpticks    int32
	Pctcpu     uint32
	Swtime     uint32
	Slptime    uint32
	Schedflags int32

	Uticks uint64
	Sticks uint64
	Iticks uint64

	Tracep    uint64
	Traceflag int32
	Holdcnt   int32
	Siglist   int32
	Sigmask   uint32
	Sigignore uint32
	Sigcatch  uint32

	Stat     int8
	Priority uint8
	Usrpri   uint8
	Nice     uint8
	Xstat    uint16
	Acflag   uint16

	Comm [24]byte
}

// SizeofKinfoProc is the element size declared to the KERN_PROC sysctl.
const SizeofKinfoProc = int(unsafe.Sizeof(KinfoProc{}))

// Command returns the NUL-terminated command name of the record.
func (k *KinfoProc) Command() string {
	for i, b := range k.Comm {
		if b == 0 {
			return string(k.Comm[:i])
		}
	}
	return string(k.Comm[:])
}

// ProcHandle is an open kernel process-query session. The buffer returned by
// Procs is owned by the handle and is invalidated by Close; callers must
// copy out anything they want to keep before closing.
type ProcHandle interface {
	// Procs runs the all-processes query and returns the raw records along
	// with the kernel-reported record count. The bytes are borrowed from
	// the handle.
	Procs() ([]byte, int, error)

	// Close releases the session and everything it owns.
	Close() error
}

// Interface is the kernel boundary consumed by package proc. System talks to
// the live kernel; tests substitute stubs.
type Interface interface {
	// OpenProcHandle opens a read-only, no-file-backed query session.
	OpenProcHandle() (ProcHandle, error)

	// Args fills buf with the NUL-separated argument vector of pid and
	// returns the number of bytes used. The kernel reports syscall.ENOMEM
	// when buf is too small and syscall.ESRCH when the process is gone;
	// it cannot be asked for the exact size up front.
	Args(pid int32, buf []byte) (int, error)

	// ArgsFlat is the legacy flattened argument-space query. Unlike Args
	// it reports its size accurately: a nil buf probes for the exact
	// length without copying any data.
	ArgsFlat(pid int32, buf []byte) (int, error)

	// Signal delivers sig to pid. Signal 0 performs the kernel's
	// existence and permission checks without delivering anything.
	Signal(pid int32, sig syscall.Signal) error
}
