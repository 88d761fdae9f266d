package proc

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrHandleOpen reports that the kernel query handle could not be
	// opened. Terminal for the call; there is no automatic recovery.
	ErrHandleOpen = errors.New("kernel query handle open failed")

	// ErrSnapshotQuery reports that the all-processes query failed.
	ErrSnapshotQuery = errors.New("process snapshot query failed")

	// ErrShortSnapshot reports a kernel reply carrying fewer bytes than the
	// reported record count requires. The snapshot is all-or-nothing, so a
	// truncated reply is discarded rather than returned partially.
	ErrShortSnapshot = errors.New("short process snapshot reply")

	// ErrNoSuchProcess reports that the target process does not exist.
	// It is the expected outcome when a process exits between being listed
	// and being queried.
	ErrNoSuchProcess = errors.New("no such process")

	// ErrAccessDenied reports that the target process exists but the
	// caller lacks the privileges to inspect it.
	ErrAccessDenied = errors.New("access denied")
)

// KernelError carries an unexpected errno from the kernel boundary. The
// expected conditions (ENOMEM during buffer growth, ESRCH for a vanished
// process) never surface as a KernelError.
type KernelError struct {
	Op    string
	Errno syscall.Errno
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("%s: kernel error: %v", e.Op, e.Errno)
}

func (e *KernelError) Unwrap() error { return e.Errno }
