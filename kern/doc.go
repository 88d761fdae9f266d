// Package kern is the boundary to the OpenBSD kernel's process-query ABI.
//
// It exposes the sysctl process table (KERN_PROC), the per-process argument
// space (KERN_PROC_ARGS), and probe-signal delivery behind a small Interface
// so that everything above it can be exercised against stub kernels.
//
// The real implementation, System, is build-tagged for OpenBSD; on other
// platforms every call reports ENOSYS so the portable core and its tests
// still build.
package kern
