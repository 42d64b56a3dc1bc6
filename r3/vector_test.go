package r3

import "testing"

func TestAddSubScale(t *testing.T) {
	p := Vec{1, 2, 3}
	q := Vec{4, -1, 0.5}

	if got, want := p.Add(q), (Vec{5, 1, 3.5}); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := p.Sub(q), (Vec{-3, 3, 2.5}); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := p.Scale(2), (Vec{2, 4, 6}); got != want {
		t.Errorf("Scale: got %v, want %v", got, want)
	}
}

func TestDot(t *testing.T) {
	p := Vec{1, 0, 0}
	q := Vec{0, 1, 0}
	if got := p.Dot(q); got != 0 {
		t.Errorf("Dot: got %v, want 0", got)
	}
	if got := p.Dot(p); got != 1 {
		t.Errorf("Dot: got %v, want 1", got)
	}
}

func TestLerpBoundaries(t *testing.T) {
	p := Vec{0, 0, 0}
	q := Vec{2, 4, 6}

	if got := Lerp(p, q, 0); got != p {
		t.Errorf("Lerp(0): got %v, want %v", got, p)
	}
	if got := Lerp(p, q, 1); got != q {
		t.Errorf("Lerp(1): got %v, want %v", got, q)
	}
	if got, want := Lerp(p, q, 0.5), (Vec{1, 2, 3}); got != want {
		t.Errorf("Lerp(0.5): got %v, want %v", got, want)
	}
}

func TestAlmostEqual(t *testing.T) {
	p := Vec{1, 1, 1}
	q := Vec{1 + 1e-10, 1, 1 - 1e-10}
	if !p.AlmostEqual(q, 1e-9) {
		t.Errorf("expected %v ~= %v within 1e-9", p, q)
	}
	if p.AlmostEqual(Vec{2, 1, 1}, 1e-9) {
		t.Errorf("expected %v != %v", p, Vec{2, 1, 1})
	}
}
