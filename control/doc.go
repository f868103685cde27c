// Package control provides the thread-safe configuration store and metrics
// registry used by cueue's benchmark binary (cmd/cueue-bench) to observe and
// retune a running producer/consumer pair without restarting it.
package control
