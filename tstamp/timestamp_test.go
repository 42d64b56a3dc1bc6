package tstamp

import "testing"

func TestZeroIsZero(t *testing.T) {
	if !Zero().IsZero() {
		t.Error("Zero().IsZero() = false, want true")
	}
	if FromUnixNano(1).IsZero() {
		t.Error("FromUnixNano(1).IsZero() = true, want false")
	}
}

func TestOrdering(t *testing.T) {
	a := FromUnixNano(100)
	b := FromUnixNano(200)

	if !a.Before(b) {
		t.Error("a.Before(b) = false, want true")
	}
	if !b.After(a) {
		t.Error("b.After(a) = false, want true")
	}
	if !a.Equal(a) {
		t.Error("a.Equal(a) = false, want true")
	}
}

func TestAddSaturatesAtMax(t *testing.T) {
	got := Max().Add(1)
	if !got.Equal(Max()) {
		t.Errorf("Max().Add(1) = %v, want Max()", got)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	a := FromUnixNano(1000)
	got := a.Add(500).Sub(a)
	if got != 500 {
		t.Errorf("a.Add(500).Sub(a) = %v, want 500", got)
	}
}

func TestSubSaturatesAtZero(t *testing.T) {
	a := FromUnixNano(100)
	b := FromUnixNano(50)
	got := b.Add(-100)
	if !got.Equal(Zero()) {
		t.Errorf("b.Add(-100) = %v, want Zero()", got)
	}
	_ = a
}

func TestSubReturnsNegativeDuration(t *testing.T) {
	small := FromUnixNano(10)
	big := FromUnixNano(1000)
	// small - big is negative; Sub reports it as a negative Duration,
	// it does not saturate at zero (only Timestamp values saturate).
	got := small.Sub(big)
	if got != -990 {
		t.Errorf("small.Sub(big) = %v, want -990", got)
	}
}
