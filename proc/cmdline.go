package proc

import (
	"bytes"
	"errors"
	"syscall"
)

// initialArgBufSize is the first guess for the argument-space growth loop.
const initialArgBufSize = 128

// FetchArgv returns the command-line argument vector of pid. The strings
// are copied out, so their lifetime is independent of any internal buffer.
// A negative pid yields an empty vector without any kernel interaction.
func (ins *Inspector) FetchArgv(pid int32) ([]string, error) {
	if pid < 0 {
		return []string{}, nil
	}
	raw, err := ins.FetchArgvRaw(pid)
	if err != nil {
		return nil, err
	}
	return ParseArgv(raw), nil
}

// FetchArgvRaw retrieves the raw NUL-separated argument buffer of pid.
//
// The argv kernel interface cannot be pre-queried for an exact size, so the
// fetch probes with growing buffers: on ENOMEM the guess doubles and the
// identical query is reissued, bounded only by the allocator. A successful
// reply reports the used length and the buffer is truncated to it, so the
// result never holds partial data.
//
// ESRCH at any point surfaces as ErrNoSuchProcess: the target exiting
// mid-probe is ordinary process churn, not a defect. Any other errno is
// fatal and surfaces as a *KernelError. Each call allocates and returns its
// own buffer; nothing is shared across calls.
func (ins *Inspector) FetchArgvRaw(pid int32) ([]byte, error) {
	if pid < 0 {
		return []byte{}, nil
	}
	for size := initialArgBufSize; ; size *= 2 {
		buf := make([]byte, size)
		n, err := ins.kern.Args(pid, buf)
		if err == nil {
			return buf[:n], nil
		}
		if errors.Is(err, syscall.ENOMEM) {
			continue // buffer too small; double and reissue
		}
		return nil, mapArgsError("argv query", err)
	}
}

// FetchArgvFlat retrieves the flattened argument space of pid through the
// legacy two-call protocol: a nil-buffer probe reports the exact size, so an
// exact allocation replaces the growth loop.
//
// The flattened form has no discrete token boundaries and the argv/env
// split inside it is not interpreted here; callers get the raw bytes.
// Experimental, not interchangeable with FetchArgvRaw.
func (ins *Inspector) FetchArgvFlat(pid int32) ([]byte, error) {
	if pid < 0 {
		return []byte{}, nil
	}
	size, err := ins.kern.ArgsFlat(pid, nil)
	if err != nil {
		return nil, mapArgsError("flat args size probe", err)
	}
	if size == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, size)
	n, err := ins.kern.ArgsFlat(pid, buf)
	if err != nil {
		return nil, mapArgsError("flat args query", err)
	}
	return buf[:n], nil
}

func mapArgsError(op string, err error) error {
	if errors.Is(err, syscall.ESRCH) {
		return ErrNoSuchProcess
	}
	var errno syscall.Errno
	errors.As(err, &errno)
	return &KernelError{Op: op, Errno: errno}
}

// ParseArgv splits a raw NUL-separated argument buffer into its tokens.
//
// The buffer holds contiguous NUL-terminated strings with a zero-length
// token marking the end of argv. Parsing stops at that marker or at buffer
// exhaustion, whichever comes first; a trailing run without a terminator is
// emitted as the final token. Order is preserved, and the returned strings
// do not alias the buffer.
func ParseArgv(buf []byte) []string {
	argv := []string{}
	for len(buf) > 0 {
		i := bytes.IndexByte(buf, 0)
		if i == 0 {
			break // end-of-argv marker
		}
		if i < 0 {
			argv = append(argv, string(buf))
			break
		}
		argv = append(argv, string(buf[:i]))
		buf = buf[i+1:]
	}
	return argv
}
