package geometry

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{25, 40}, true},
		{"top-left corner inclusive", Point{10, 20}, true},
		{"right edge exclusive", Point{40, 40}, false},
		{"bottom edge exclusive", Point{25, 60}, false},
		{"left of rect", Point{9, 40}, false},
		{"above rect", Point{25, 19}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestKeySquaredDistanceTo(t *testing.T) {
	k := Key{Rect: Rect{X: 0, Y: 0, Width: 20, Height: 10}}
	// Center is (10, 5).
	if got := k.SquaredDistanceTo(Point{10, 5}); got != 0 {
		t.Errorf("SquaredDistanceTo(center) = %d, want 0", got)
	}
	if got := k.SquaredDistanceTo(Point{13, 9}); got != 25 {
		t.Errorf("SquaredDistanceTo = %d, want 25", got)
	}
}

func TestKeyCode(t *testing.T) {
	k := Key{Codes: []Code{'e', 'é'}}
	if got := k.Code(); got != 'e' {
		t.Errorf("Code() = %v, want e", got)
	}
	if !k.HasCode('é') {
		t.Error("HasCode(é) = false, want true")
	}
	if k.HasCode('x') {
		t.Error("HasCode(x) = true, want false")
	}

	empty := Key{}
	if got := empty.Code(); got != CodeNone {
		t.Errorf("empty Code() = %v, want CodeNone", got)
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeSpace, "Space"},
		{CodeEnter, "Enter"},
		{CodeModeChange, "ModeChange"},
		{CodeShift, "Shift"},
		{CodeNone, "None"},
		{'a', "a"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", int32(tt.code), got, tt.want)
		}
	}
}

func TestCodeIsCharacter(t *testing.T) {
	if !Code('a').IsCharacter() {
		t.Error("'a' should be a character")
	}
	if CodeModeChange.IsCharacter() {
		t.Error("ModeChange should not be a character")
	}
}
