package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name      string
		v, b1, b2 float64
		expected  bool
	}{
		{"inside ascending", 5, 0, 10, true},
		{"near bound ascending (exclusive)", 0, 0, 10, false},
		{"far bound ascending (inclusive)", 10, 0, 10, true},
		{"outside ascending", 11, 0, 10, false},
		{"inside descending", 5, 10, 0, true},
		{"near bound descending (inclusive)", 10, 10, 0, true},
		{"far bound descending (exclusive)", 0, 10, 0, false},
		{"degenerate range", 3, 3, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Between(tc.v, tc.b1, tc.b2); got != tc.expected {
				t.Errorf("Between(%v, %v, %v) = %v, expected %v", tc.v, tc.b1, tc.b2, got, tc.expected)
			}
		})
	}
}

func TestWithinEdges(t *testing.T) {
	b := Box{Pos: Pt(10, 10), Size: Size{Width: 20, Height: 15}}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"centre", Pt(20, 17), true},
		{"top-left corner (open edges)", Pt(10, 10), false},
		{"top-right corner", Pt(30, 10), false},
		{"bottom-left corner", Pt(10, 25), false},
		{"bottom-right corner (closed edges)", Pt(30, 25), true},
		{"left edge", Pt(10, 17), false},
		{"right edge", Pt(30, 17), true},
		{"top edge", Pt(20, 10), false},
		{"bottom edge", Pt(20, 25), true},
		{"outside right", Pt(31, 17), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Within(tc.p, b); got != tc.expected {
				t.Errorf("Within(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCorners(t *testing.T) {
	b := Box{Pos: Pt(5, 10), Size: Size{Width: 20, Height: 15}}
	c := Corners(b)

	expected := [4]Vec2{Pt(5, 10), Pt(25, 10), Pt(5, 25), Pt(25, 25)}
	if c != expected {
		t.Errorf("Corners() = %v, expected %v", c, expected)
	}
	if b.FarCorner() != Pt(25, 25) {
		t.Errorf("FarCorner() = %v, expected (25, 25)", b.FarCorner())
	}
}

func TestAddAndAddTo(t *testing.T) {
	a := Pt(1, 2)
	b := Pt(3, 4)

	sum := Add(a, b)
	if sum != Pt(4, 6) {
		t.Errorf("Add() = %v, expected (4, 6)", sum)
	}
	if a != Pt(1, 2) {
		t.Error("Add() must not modify its operands")
	}

	ret := AddTo(&a, b)
	if a != Pt(4, 6) {
		t.Errorf("AddTo() left a = %v, expected (4, 6)", a)
	}
	if ret != &a {
		t.Error("AddTo() should return its first argument")
	}

	a.AddTo(Pt(-4, -6))
	if !a.Equal(Pt(0, 0)) {
		t.Errorf("method AddTo() left a = %v, expected origin", a)
	}
}

func TestHeroCollisionBounds(t *testing.T) {
	hero := Box{Pos: Pt(100, 50), Size: Size{Width: 30, Height: 20}}
	hit := HeroCollisionBounds(hero)

	if !approx(hit.Size.Width, 18) || !approx(hit.Size.Height, 12) {
		t.Errorf("hitbox size = %v, expected 18x12", hit.Size)
	}
	if !approx(hit.Pos.X, 106) || !approx(hit.Pos.Y, 54) {
		t.Errorf("hitbox pos = %v, expected (106, 54)", hit.Pos)
	}
}

func TestCollides(t *testing.T) {
	hero := Box{Pos: Pt(0, 0), Size: Size{Width: 30, Height: 20}}

	tests := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"1x1 at visual corner misses hitbox", Box{Pos: Pt(0, 0), Size: Size{Width: 1, Height: 1}}, false},
		{"larger overlapping obstacle hits", Box{Pos: Pt(0, 0), Size: Size{Width: 10, Height: 10}}, true},
		{"obstacle containing the hero", Box{Pos: Pt(-100, -100), Size: Size{Width: 1000, Height: 1000}}, true},
		{"obstacle inside the hitbox", Box{Pos: Pt(10, 8), Size: Size{Width: 2, Height: 2}}, true},
		{"far away", Box{Pos: Pt(200, 200), Size: Size{Width: 10, Height: 10}}, false},
		{"overlaps visual box edge only", Box{Pos: Pt(26, 0), Size: Size{Width: 20, Height: 20}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(hero, tc.other); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIsOutOfBounds(t *testing.T) {
	floor := 200.0
	tests := []struct {
		y        float64
		expected bool
	}{
		{199, false},
		{200, false},
		{200.5, true},
		{-10000, false}, // no ceiling
	}

	for _, tc := range tests {
		b := Box{Pos: Pt(0, tc.y), Size: Size{Width: 10, Height: 10}}
		if got := IsOutOfBounds(b, floor); got != tc.expected {
			t.Errorf("IsOutOfBounds(y=%v) = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
