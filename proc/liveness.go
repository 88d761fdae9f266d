package proc

import (
	"errors"
	"syscall"
)

// IsAlive reports whether pid exists. The probe is signal 0, which runs the
// kernel's existence and permission checks without delivering anything.
// A permission error still proves existence, because the kernel only checks
// permissions against live processes. Negative pids are never alive and
// short-circuit without a kernel call.
func (ins *Inspector) IsAlive(pid int32) bool {
	if pid < 0 {
		return false
	}
	err := ins.kern.Signal(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}

// ClassifyFailure resolves a permission-shaped kernel failure against pid
// into the correct semantic error: ErrNoSuchProcess if a liveness re-probe
// shows the process gone, ErrAccessDenied otherwise.
//
// The target can exit between the original failure and the re-probe, so the
// answer is best-effort under that race, not a linearizable guarantee.
func (ins *Inspector) ClassifyFailure(pid int32) error {
	if !ins.IsAlive(pid) {
		return ErrNoSuchProcess
	}
	return ErrAccessDenied
}
