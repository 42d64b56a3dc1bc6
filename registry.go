package frametf

import (
	"errors"

	"github.com/benbjohnson/clock"

	"example.com/frametf/internal/buffer"
	"example.com/frametf/tstamp"
)

const maxChainDepth = 64

// Registry is a mapping from child-frame name to the Buffer of samples on
// that child's edge to its parent. It answers get_transform queries by
// resolving the tree path between two frames, interpolating and composing
// along the way.
//
// A Registry is either hosted (constructed with NewHosted, backed by a
// clock.Clock for now() and opportunistic eviction) or freestanding
// (constructed with NewFreestanding, unbounded until the caller calls
// DeleteTransformsBefore). The data path — AddTransform, GetTransform — is
// identical in both shapes.
type Registry struct {
	edges  map[string]*buffer.Buffer
	maxAge tstamp.Duration
	hosted bool
	clock  clock.Clock
}

// NewHosted constructs a Registry for a wall-clock environment. Every
// AddTransform opportunistically evicts samples on the touched Buffer
// older than now()-maxAge.
func NewHosted(maxAge tstamp.Duration) *Registry {
	return NewHostedWithClock(maxAge, clock.New())
}

// NewHostedWithClock is NewHosted with an injectable clock.Clock, the
// same seam go.viam.com/rdk's collectors use to drive eviction tests
// deterministically with clock.NewMock instead of sleeping on wall time.
func NewHostedWithClock(maxAge tstamp.Duration, c clock.Clock) *Registry {
	return &Registry{
		edges:  make(map[string]*buffer.Buffer),
		maxAge: maxAge,
		hosted: true,
		clock:  c,
	}
}

// NewFreestanding constructs a Registry with no notion of wall-clock time.
// Buffers never evict on their own; the caller must call
// DeleteTransformsBefore to bound memory.
func NewFreestanding() *Registry {
	return &Registry{edges: make(map[string]*buffer.Buffer)}
}

// Now returns the current wall-clock time as a Timestamp. It is only
// meaningful on a hosted Registry; on a freestanding one it returns Zero.
func (r *Registry) Now() tstamp.Timestamp {
	if !r.hosted {
		return tstamp.Zero()
	}
	return tstamp.FromUnixNano(r.clock.Now().UnixNano())
}

// AddTransform routes t into the Buffer keyed by t.Child, creating one if
// none exists. Insertion does not validate tree shape: re-parenting a
// child (a t.Parent differing from previously stored samples on the same
// edge) is permitted, since the parent is recorded per-sample. On a
// hosted Registry, the touched Buffer is opportunistically swept for
// entries older than now()-maxAge after insertion.
func (r *Registry) AddTransform(t Transform) error {
	buf, ok := r.edges[t.Child]
	if !ok {
		if r.hosted {
			buf = buffer.New(r.maxAge)
		} else {
			buf = buffer.NewUnbounded()
		}
		r.edges[t.Child] = buf
	}
	buf.Insert(t.Timestamp, t.Parent, t.Translation, t.Rotation)
	if r.hosted {
		buf.DeleteBefore(r.Now().Add(-r.maxAge))
	}
	return nil
}

// DeleteTransformsBefore sweeps every Buffer in the Registry, removing
// non-static entries older than cutoff. It is the only eviction mechanism
// on a freestanding Registry, and is available on a hosted one too.
func (r *Registry) DeleteTransformsBefore(cutoff tstamp.Timestamp) {
	for _, buf := range r.edges {
		buf.DeleteBefore(cutoff)
	}
}

// GetTransform computes the composed transform expressing the from frame
// in terms of the to frame at time t: parent=to, child=from, timestamp=t.
//
// from == to returns the identity transform without consulting the
// Registry. Otherwise each frame's ancestor chain is walked by following
// the parent of its Buffer's latest sample; the chains are intersected to
// find the lowest common ancestor L, the edges on from→L and to→L are
// sampled at t and composed, and the two half-chains are combined.
func (r *Registry) GetTransform(from, to string, t tstamp.Timestamp) (Transform, error) {
	if from == to {
		return Identity(from, t), nil
	}

	fromChain, err := r.ancestorChain(from)
	if err != nil {
		return Transform{}, err
	}
	toChain, err := r.ancestorChain(to)
	if err != nil {
		return Transform{}, err
	}

	toIndex := make(map[string]int, len(toChain))
	for i, f := range toChain {
		toIndex[f] = i
	}

	fromDepth, toDepth := -1, -1
	for i, f := range fromChain {
		if j, ok := toIndex[f]; ok {
			fromDepth, toDepth = i, j
			break
		}
	}
	if fromDepth < 0 {
		return Transform{}, newError(FrameNotFound, from, "no common ancestor with "+to)
	}

	fromToL, err := r.composePath(fromChain[:fromDepth+1], t)
	if err != nil {
		return Transform{}, err
	}
	toToL, err := r.composePath(toChain[:toDepth+1], t)
	if err != nil {
		return Transform{}, err
	}
	lToTo := toToL.Inverse()

	result, err := Compose(lToTo, fromToL)
	if err != nil {
		return Transform{}, err
	}
	result.Parent = to
	result.Child = from
	result.Timestamp = t
	return result, nil
}

// ancestorChain walks from frame upward via the parent-of-latest-sample
// rule, returning [frame, parent(frame), parent(parent(frame)), ...] up
// to a root (a frame with no Buffer).
func (r *Registry) ancestorChain(frame string) ([]string, error) {
	chain := []string{frame}
	current := frame
	for depth := 0; depth < maxChainDepth; depth++ {
		buf, ok := r.edges[current]
		if !ok {
			return chain, nil
		}
		parent, ok := buf.LatestParent()
		if !ok {
			return chain, nil
		}
		current = parent
		chain = append(chain, current)
	}
	return nil, newError(FrameNotFound, frame, "ancestor chain exceeds maximum depth")
}

// composePath samples and composes the edges along chain, a sequence of
// frames from a leaf to an ancestor L (chain[0] is the leaf, chain[len-1]
// is L). It returns the transform from chain[0]'s frame to L. A
// single-element chain (the leaf is already L) returns identity.
func (r *Registry) composePath(chain []string, t tstamp.Timestamp) (Transform, error) {
	if len(chain) == 1 {
		return Identity(chain[0], t), nil
	}

	edge := chain[0]
	smp, err := r.edges[edge].Lookup(t)
	if err != nil {
		return Transform{}, translateBufferErr(err, edge)
	}
	acc := Transform{
		Translation: smp.Translation,
		Rotation:    smp.Rotation,
		Timestamp:   t,
		Parent:      smp.Parent,
		Child:       edge,
	}

	for i := 1; i < len(chain)-1; i++ {
		edge = chain[i]
		smp, err = r.edges[edge].Lookup(t)
		if err != nil {
			return Transform{}, translateBufferErr(err, edge)
		}
		step := Transform{
			Translation: smp.Translation,
			Rotation:    smp.Rotation,
			Timestamp:   t,
			Parent:      smp.Parent,
			Child:       edge,
		}
		acc, err = Compose(step, acc)
		if err != nil {
			return Transform{}, err
		}
	}
	return acc, nil
}

func translateBufferErr(err error, edge string) error {
	switch {
	case errors.Is(err, buffer.ErrEmpty):
		return newError(Empty, edge, "no samples on this edge")
	case errors.Is(err, buffer.ErrExtrapolation):
		return newError(Extrapolation, edge, "timestamp outside this edge's stored range")
	default:
		return err
	}
}
