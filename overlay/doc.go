// Package overlay implements LiveOverlay: a bounded, concurrent, per-edge
// live-traffic override layer with TTL expiry and a choice of capacity
// policies.
//
// Concurrency story (grounded on the teacher's core.Graph dual-mutex
// design, generalized to a single immutable snapshot): the live map is
// held behind an atomic.Pointer swapped wholesale by a writer-side mutex.
// Readers (Lookup, LivePenalty) load the pointer once and never take a
// lock — the map they observe is a point-in-time snapshot that never
// mutates underneath them, so there is no way to observe a torn entry.
// Writers (ApplyBatch, Clear, RunScheduledSweep) are serialized by a
// single mutex and publish a new snapshot atomically when they finish.
package overlay
