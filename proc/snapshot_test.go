package proc

import (
	"errors"
	"syscall"
	"testing"
)

func TestSnapshot_CountMatchesKernel(t *testing.T) {
	h := &stubHandle{buf: packProcs(1, 42, 9999), count: 3}
	ins := NewWithInterface(&stubKern{handle: h})

	table, err := ins.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("table.Len() = %d, want 3", table.Len())
	}

	want := []int32{1, 42, 9999}
	for i, pid := range table.PIDs() {
		if pid != want[i] {
			t.Errorf("PIDs()[%d] = %d, want %d", i, pid, want[i])
		}
	}
	if h.closes != 1 {
		t.Errorf("handle closed %d times, want 1", h.closes)
	}
}

func TestSnapshot_CopiesBeforeClose(t *testing.T) {
	// The handle scribbles over its buffer on Close. If the table aliased
	// handle memory instead of owning a copy, the pids would be garbage.
	h := &stubHandle{buf: packProcs(7, 8), count: 2, poisonOnClose: true}
	ins := NewWithInterface(&stubKern{handle: h})

	table, err := ins.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if got := table.Procs[0].Pid; got != 7 {
		t.Errorf("Procs[0].Pid = %d, want 7 (table aliases handle memory?)", got)
	}
	if got := table.Procs[1].Pid; got != 8 {
		t.Errorf("Procs[1].Pid = %d, want 8 (table aliases handle memory?)", got)
	}
}

func TestSnapshot_ConsecutiveTablesIndependent(t *testing.T) {
	k := &stubKern{handle: &stubHandle{buf: packProcs(1, 2), count: 2}}
	ins := NewWithInterface(k)

	first, err := ins.Snapshot()
	if err != nil {
		t.Fatalf("first Snapshot() error = %v", err)
	}

	k.handle = &stubHandle{buf: packProcs(1, 2), count: 2}
	second, err := ins.Snapshot()
	if err != nil {
		t.Fatalf("second Snapshot() error = %v", err)
	}

	first.Procs[0].Pid = -1
	if second.Procs[0].Pid != 1 {
		t.Errorf("mutating the first table changed the second: pid = %d", second.Procs[0].Pid)
	}
}

func TestSnapshot_OpenFailure(t *testing.T) {
	ins := NewWithInterface(&stubKern{openErr: syscall.EPERM})

	_, err := ins.Snapshot()
	if !errors.Is(err, ErrHandleOpen) {
		t.Fatalf("Snapshot() error = %v, want ErrHandleOpen", err)
	}
}

func TestSnapshot_QueryFailureStillCloses(t *testing.T) {
	h := &stubHandle{procsErr: syscall.EINVAL}
	ins := NewWithInterface(&stubKern{handle: h})

	_, err := ins.Snapshot()
	if !errors.Is(err, ErrSnapshotQuery) {
		t.Fatalf("Snapshot() error = %v, want ErrSnapshotQuery", err)
	}
	if h.closes != 1 {
		t.Errorf("handle closed %d times, want 1", h.closes)
	}
}

func TestSnapshot_ShortReplyIsAllOrNothing(t *testing.T) {
	// Two records reported but only one record's worth of bytes returned.
	h := &stubHandle{buf: packProcs(1), count: 2}
	ins := NewWithInterface(&stubKern{handle: h})

	table, err := ins.Snapshot()
	if !errors.Is(err, ErrShortSnapshot) {
		t.Fatalf("Snapshot() error = %v, want ErrShortSnapshot", err)
	}
	if table != nil {
		t.Errorf("Snapshot() returned a partial table: %v", table)
	}
	if h.closes != 1 {
		t.Errorf("handle closed %d times, want 1", h.closes)
	}
}
