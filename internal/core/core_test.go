package core

import (
	"testing"
	"time"
)

func TestWrapNegativeAndOverflow(t *testing.T) {
	cases := []struct{ v, n, want int }{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{-1, 4, 3},
		{-9, 4, 3},
		{13, 6, 1},
	}
	for _, tc := range cases {
		if got := Wrap(tc.v, tc.n); got != tc.want {
			t.Fatalf("Wrap(%d, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
}

func TestByteGridWrappedAccess(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(-1, -1, 7)
	if got := g.Cells()[g.Index(3, 2)]; got != 7 {
		t.Fatalf("expected wrapped write at (3,2), got %d", got)
	}
	if got := g.At(7, 5); got != 7 {
		t.Fatalf("expected wrapped read of 7, got %d", got)
	}
	g.Clear()
	if got := g.At(3, 2); got != 0 {
		t.Fatalf("expected cleared grid, got %d", got)
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 64; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of range: %f", i, x)
		}
	}
	if NewRNG(1).Bernoulli(0) {
		t.Fatal("Bernoulli(0) must never succeed")
	}
	if !NewRNG(1).Bernoulli(1) {
		t.Fatal("Bernoulli(1) must always succeed")
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("expected 100ms interval, got %v", fs.Interval())
	}
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step with the primed accumulator")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}

	fs.SetTPS(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("non-positive TPS should fall back to 60, got %v", fs.Interval())
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("expected y=2, got %+v ok=%v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("unexpected match for missing key")
	}
}
