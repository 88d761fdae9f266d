// Package proc provides one-shot process introspection on OpenBSD: a copied
// snapshot of the whole process table, raw command-line retrieval through
// the kernel's growth-retry argument-space protocol, liveness probing, and
// classification of permission-shaped failures into "denied" or "gone".
//
// Every call is synchronous and independent. The process table may change
// between any two calls; a pid disappearing in between surfaces as
// ErrNoSuchProcess and must be treated as normal churn, not corruption.
package proc
