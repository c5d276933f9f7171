package core

import "testing"

func TestNewScaling(t *testing.T) {
	s := NewScaling(1000, 400, DefaultOriginalWidth, DefaultOriginalHeight)

	if s.ScaleX != 2 || s.ScaleY != 2 {
		t.Errorf("scale = (%v, %v), expected (2, 2)", s.ScaleX, s.ScaleY)
	}
	if s.Bottom != 400 {
		t.Errorf("Bottom = %v, expected 400", s.Bottom)
	}
	if s.MinScale() != 2 {
		t.Errorf("MinScale() = %v, expected 2", s.MinScale())
	}
}

func TestNewScalingFallsBackToDefaults(t *testing.T) {
	s := NewScaling(250, 100, 0, -1)
	if s.ScaleX != 0.5 || s.ScaleY != 0.5 {
		t.Errorf("scale = (%v, %v), expected (0.5, 0.5)", s.ScaleX, s.ScaleY)
	}
}

func TestHeroSizeAfterResize(t *testing.T) {
	tests := []struct {
		w, h float64
	}{
		{500, 200},
		{640, 384},
		{1920, 1080},
		{123, 77},
	}

	for _, tc := range tests {
		s := NewScaling(tc.w, tc.h, DefaultOriginalWidth, DefaultOriginalHeight)
		got := s.HeroSize()
		want := Size{Width: 15 * 2 * s.ScaleX, Height: 10 * 2 * s.ScaleY}
		if got != want {
			t.Errorf("HeroSize() for %vx%v = %v, expected %v", tc.w, tc.h, got, want)
		}
	}
}
