// Package idgen is the sole process-wide resource of the compilation
// pipelines: a monotonic source of unique state labels, drawn on by the
// scanner pipeline (the parser pipeline needs no state labels). The
// original implementation stamped each intermediate NFA/DFA state with a
// type-4 UUID; any scheme producing labels unique within one artifact's
// construction is equivalent, so a counter suffices and avoids the
// allocation cost of random UUIDs.
package idgen

import "sync/atomic"

// Gen is a monotonic, concurrency-safe unique-label source. The zero value
// is ready to use.
type Gen struct {
	next uint64
}

// Next returns a label distinct from every previously returned label of
// this generator.
func (g *Gen) Next() uint64 {
	return atomic.AddUint64(&g.next, 1) - 1
}

// Default is the process-wide generator. Every scanner construction draws
// from it, so labels stay globally unique even when two artifacts are built
// concurrently on the same host.
var Default = &Gen{}

// Next draws the next label from Default.
func Next() uint64 {
	return Default.Next()
}
