// Package buffer implements the per-edge time-ordered sample store: the
// "Buffer" component of the spec, keyed by Timestamp with bounded maximum
// age and a static slot that bypasses both ordering and eviction.
//
// Storage is a google/btree.BTreeG ordered by timestamp, giving the
// O(log n) predecessor/successor/range-delete the registry's temporal
// lookups and eviction sweeps need.
package buffer

import (
	"errors"

	"github.com/google/btree"

	"example.com/frametf/quat"
	"example.com/frametf/r3"
	"example.com/frametf/tstamp"
)

// Errors returned by Lookup. The registry package translates these into
// its own typed Error at the package boundary.
var (
	// ErrEmpty means the edge has no dynamic samples at all.
	ErrEmpty = errors.New("buffer: no dynamic samples stored")
	// ErrExtrapolation means the query timestamp falls outside the
	// stored dynamic range.
	ErrExtrapolation = errors.New("buffer: timestamp outside stored range")
)

const btreeDegree = 32

type sample struct {
	ts     tstamp.Timestamp
	parent string
	trans  r3.Vec
	rot    quat.Number
}

func less(a, b *sample) bool {
	return a.ts.Before(b.ts)
}

// Sample is the result of a Lookup: the edge's parent frame name, and the
// translation/rotation at (or interpolated to) the queried time.
type Sample struct {
	Parent      string
	Translation r3.Vec
	Rotation    quat.Number
}

// Buffer stores the time-ordered samples of a single parent-child edge.
type Buffer struct {
	tree    *btree.BTreeG[*sample]
	static  *sample
	maxAge  tstamp.Duration
	bounded bool
}

// New creates a Buffer that evicts entries older than maxAge relative to
// its newest sample after every insertion (the hosted registry's shape).
func New(maxAge tstamp.Duration) *Buffer {
	return &Buffer{
		tree:    btree.NewG(btreeDegree, less),
		maxAge:  maxAge,
		bounded: true,
	}
}

// NewUnbounded creates a Buffer that never evicts on its own; the caller
// must call DeleteBefore explicitly (the freestanding registry's shape).
func NewUnbounded() *Buffer {
	return &Buffer{
		tree:    btree.NewG(btreeDegree, less),
		bounded: false,
	}
}

// Insert stores a sample at ts with the given parent, translation, and
// rotation. ts == tstamp.Zero() overwrites the static slot instead of the
// ordered map. Re-inserting an existing key replaces it. After a
// non-static insertion on a bounded Buffer, entries older than
// newest-maxAge are evicted.
func (b *Buffer) Insert(ts tstamp.Timestamp, parent string, trans r3.Vec, rot quat.Number) {
	s := &sample{ts: ts, parent: parent, trans: trans, rot: rot}
	if ts.IsZero() {
		b.static = s
		return
	}
	b.tree.ReplaceOrInsert(s)
	if b.bounded {
		if newest, ok := b.tree.Max(); ok {
			b.DeleteBefore(newest.ts.Add(-b.maxAge))
		}
	}
}

// DeleteBefore removes every non-static entry with timestamp strictly
// less than cutoff. The static slot is unaffected.
func (b *Buffer) DeleteBefore(cutoff tstamp.Timestamp) {
	var stale []*sample
	b.tree.AscendLessThan(&sample{ts: cutoff}, func(s *sample) bool {
		stale = append(stale, s)
		return true
	})
	for _, s := range stale {
		b.tree.Delete(s)
	}
}

// Len reports the number of dynamic (non-static) samples currently stored.
func (b *Buffer) Len() int {
	return b.tree.Len()
}

// LatestParent returns the parent frame name recorded by this edge's most
// recent sample — the dynamic newest if any exist, else the static sample,
// else false. This is how the registry's ancestor walk climbs the frame
// tree: the parent pointer lives on the sample, not the Buffer.
func (b *Buffer) LatestParent() (string, bool) {
	if newest, ok := b.tree.Max(); ok {
		return newest.parent, true
	}
	if b.static != nil {
		return b.static.parent, true
	}
	return "", false
}

// Lookup returns the sample at t, interpolating between the surrounding
// dynamic samples when t falls strictly between two stored keys.
//
// The static slot takes precedence whenever the dynamic map is empty (so a
// permanently-mounted edge can coexist on a path with a moving one) or when
// t is exactly tstamp.Zero().
func (b *Buffer) Lookup(t tstamp.Timestamp) (Sample, error) {
	if b.static != nil && (t.IsZero() || b.tree.Len() == 0) {
		return sampleOf(b.static), nil
	}

	if exact, ok := b.tree.Get(&sample{ts: t}); ok {
		return sampleOf(exact), nil
	}

	if b.tree.Len() == 0 {
		return Sample{}, ErrEmpty
	}

	oldest, _ := b.tree.Min()
	newest, _ := b.tree.Max()
	if t.Before(oldest.ts) || t.After(newest.ts) {
		return Sample{}, ErrExtrapolation
	}

	var before, after *sample
	b.tree.DescendLessThan(&sample{ts: t}, func(s *sample) bool {
		before = s
		return false
	})
	b.tree.AscendGreaterOrEqual(&sample{ts: t}, func(s *sample) bool {
		after = s
		return false
	})

	alpha := float64(t.Sub(before.ts)) / float64(after.ts.Sub(before.ts))
	return Sample{
		// The edge's parent at a point strictly between two samples is
		// the parent recorded by the earlier one; it holds until the
		// next sample supersedes it.
		Parent:      before.parent,
		Translation: r3.Lerp(before.trans, after.trans, alpha),
		Rotation:    quat.Slerp(before.rot, after.rot, alpha),
	}, nil
}

func sampleOf(s *sample) Sample {
	return Sample{Parent: s.parent, Translation: s.trans, Rotation: s.rot}
}
