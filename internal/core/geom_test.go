package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectInsetAndCenter(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	in := r.Inset(1)
	if in != NewRect(1, 1, 18, 8) {
		t.Errorf("Inset(1) = %+v", in)
	}
	if r.Inset(20).W != 0 {
		t.Error("Inset must not produce negative sizes")
	}

	c := r.CenterIn(6, 4)
	if c != NewRect(7, 3, 6, 4) {
		t.Errorf("CenterIn(6, 4) = %+v", c)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotateCW)

	if len(f.Actions) != 2 || f.Actions[0] != ActionLeft || f.Actions[1] != ActionRotateCW {
		t.Fatalf("Actions = %v, expected [Left RotateCW]", f.Actions)
	}
	f.Clear()
	if len(f.Actions) != 0 {
		t.Errorf("Actions after Clear = %v, expected none", f.Actions)
	}
	if ActionToggleGhost.String() != "ToggleGhost" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
