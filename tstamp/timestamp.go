// Package tstamp provides the registry's notion of time: a saturating,
// totally-ordered 128-bit nanosecond counter with a distinguished zero
// value reserved for static (time-invariant) samples.
package tstamp

import (
	"fmt"
	"time"

	"github.com/holiman/uint256"
)

// Timestamp is an unsigned 128-bit count of nanoseconds since an arbitrary
// epoch. The zero value is the static-transform sentinel (see package
// internal/buffer's Buffer). Arithmetic saturates: it never wraps.
type Timestamp struct {
	nanos uint256.Int
}

// Duration is a signed span of nanoseconds, same resolution as time.Duration.
type Duration = time.Duration

// max128 holds 2^128 - 1, the ceiling every Timestamp saturates at.
var max128 = func() uint256.Int {
	var z uint256.Int
	z.SetAllOne()
	// uint256.Int is 4 little-endian uint64 words; keep only the low 128
	// bits (words 0 and 1) set, per the spec's 128-bit timestamp.
	z[2] = 0
	z[3] = 0
	return z
}()

// Zero is the static-transform sentinel timestamp.
func Zero() Timestamp { return Timestamp{} }

// Max is the largest representable Timestamp.
func Max() Timestamp { return Timestamp{nanos: max128} }

// FromUnixNano builds a Timestamp representing ns nanoseconds after the
// Unix epoch. Negative values saturate to Zero.
func FromUnixNano(ns int64) Timestamp {
	if ns <= 0 {
		return Zero()
	}
	var t Timestamp
	t.nanos.SetUint64(uint64(ns))
	return t
}

// IsZero reports whether t is the static-transform sentinel.
func (t Timestamp) IsZero() bool {
	return t.nanos.IsZero()
}

// Cmp returns -1, 0, or +1 as t is less than, equal to, or greater than u.
func (t Timestamp) Cmp(u Timestamp) int {
	return t.nanos.Cmp(&u.nanos)
}

// Before reports whether t occurs strictly before u.
func (t Timestamp) Before(u Timestamp) bool { return t.Cmp(u) < 0 }

// After reports whether t occurs strictly after u.
func (t Timestamp) After(u Timestamp) bool { return t.Cmp(u) > 0 }

// Equal reports whether t and u denote the same instant.
func (t Timestamp) Equal(u Timestamp) bool { return t.Cmp(u) == 0 }

// Add returns t shifted by d, saturating at Zero and Max.
func (t Timestamp) Add(d Duration) Timestamp {
	if d >= 0 {
		return t.addNanos(uint64(d))
	}
	return t.subNanos(uint64(-d))
}

// Sub returns the duration from u to t (t - u), saturating at
// [math.MinInt64, math.MaxInt64] nanoseconds the way time.Duration does.
func (t Timestamp) Sub(u Timestamp) Duration {
	if t.Cmp(u) >= 0 {
		diff, _ := new(uint256.Int).SubOverflow(&t.nanos, &u.nanos)
		if !diff.IsUint64() {
			return Duration(1<<63 - 1)
		}
		v := diff.Uint64()
		if v > uint64(1<<63-1) {
			return Duration(1<<63 - 1)
		}
		return Duration(v)
	}
	neg := u.Sub(t)
	if neg == Duration(1<<63-1) {
		return Duration(-(1 << 63))
	}
	return -neg
}

func (t Timestamp) addNanos(n uint64) Timestamp {
	var delta uint256.Int
	delta.SetUint64(n)
	sum, overflow := new(uint256.Int).AddOverflow(&t.nanos, &delta)
	if overflow || sum.Cmp(&max128) > 0 {
		return Max()
	}
	return Timestamp{nanos: *sum}
}

func (t Timestamp) subNanos(n uint64) Timestamp {
	var delta uint256.Int
	delta.SetUint64(n)
	diff, underflow := new(uint256.Int).SubOverflow(&t.nanos, &delta)
	if underflow {
		return Zero()
	}
	return Timestamp{nanos: *diff}
}

// String implements fmt.Stringer.
func (t Timestamp) String() string {
	return fmt.Sprintf("%sns", t.nanos.String())
}
