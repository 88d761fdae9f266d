package proc

import (
	"fmt"
	"unsafe"

	"procsnap/kern"
)

// Table is a copied snapshot of the kernel process table at a single
// instant. It owns its records outright; nothing in it aliases handle or
// kernel memory, so it stays valid indefinitely.
type Table struct {
	Procs []kern.KinfoProc
}

// Len returns the number of records in the table.
func (t *Table) Len() int { return len(t.Procs) }

// PIDs returns the process IDs in table order.
func (t *Table) PIDs() []int32 {
	pids := make([]int32, len(t.Procs))
	for i := range t.Procs {
		pids[i] = t.Procs[i].Pid
	}
	return pids
}

// Snapshot enumerates all live processes through a one-shot kernel query.
//
// The query handle lends out kernel-owned memory that is invalidated when
// the handle closes, so the records are copied into caller-owned memory
// before the deferred Close runs. The handle is closed exactly once on every
// path, and no partial table is ever returned: the result length always
// equals the kernel-reported count at the time of the call.
func (ins *Inspector) Snapshot() (*Table, error) {
	h, err := ins.kern.OpenProcHandle()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHandleOpen, err)
	}
	// close exactly once on every path; a close failure leaves nothing actionable
	defer func() {
		_ = h.Close()
	}()

	raw, count, err := h.Procs()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotQuery, err)
	}
	if len(raw) < count*kern.SizeofKinfoProc {
		return nil, fmt.Errorf("%w: %d records reported, %d bytes returned",
			ErrShortSnapshot, count, len(raw))
	}

	procs := make([]kern.KinfoProc, count)
	for i := range procs {
		// raw borrows handle-owned memory; this copy must complete before
		// the deferred Close invalidates it
		procs[i] = *(*kern.KinfoProc)(unsafe.Pointer(&raw[i*kern.SizeofKinfoProc]))
	}
	return &Table{Procs: procs}, nil
}
