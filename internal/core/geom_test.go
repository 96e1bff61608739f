package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"contained", NewBox(0, 0, 10, 10), NewBox(2, 2, 3, 3), true},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching bottom edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"left of", NewBox(0, 0, 10, 10), NewBox(-20, 0, 10, 10), false},
		{"above", NewBox(0, 20, 10, 10), NewBox(0, 0, 10, 10), false},
		{"fractional overlap", NewBox(0, 0, 1, 1), NewBox(0.999, 0.5, 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v and %v", tt.a, tt.b)
			}
		})
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBox(10, 20, 5, 5).Translate(-3, 4.5)
	if b.X != 7 || b.Y != 24.5 {
		t.Errorf("Translate = (%v, %v), want (7, 24.5)", b.X, b.Y)
	}
	if b.W != 5 || b.H != 5 {
		t.Errorf("Translate changed size to %vx%v", b.W, b.H)
	}
}

func TestBoxWithin(t *testing.T) {
	tests := []struct {
		box  Box
		want bool
	}{
		{NewBox(0, 0, 400, 400), true},
		{NewBox(10, 10, 40, 40), true},
		{NewBox(-1, 0, 10, 10), false},
		{NewBox(395, 0, 10, 10), false},
		{NewBox(0, 395, 10, 10), false},
	}
	for _, tt := range tests {
		if got := tt.box.Within(400, 400); got != tt.want {
			t.Errorf("%v.Within(400, 400) = %v, want %v", tt.box, got, tt.want)
		}
	}
}

func TestBoxCells(t *testing.T) {
	r := NewBox(50, 310, 40, 40).Cells(0.2, 0.05)
	if r.X != 10 || r.Y != 15 || r.W != 8 || r.H != 2 {
		t.Errorf("Cells = %+v, want {10 15 8 2}", r)
	}

	tiny := NewBox(0, 0, 1, 1).Cells(0.1, 0.1)
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny box should cover one cell, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{60, 0, 120, 60},
		{-0.5, 0, 120, 0},
		{130, 0, 120, 120},
	}
	for _, tt := range tests {
		if got := ClampF(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
