package records

import "testing"

func TestString(t *testing.T) {
	r := Record{"s": "hello", "n": 5, "nil": nil}
	if got := r.String("s"); got != "hello" {
		t.Errorf("String(s) = %q", got)
	}
	if got := r.String("n"); got != "" {
		t.Errorf("String(n) = %q, want empty for non-string", got)
	}
	if got := r.String("missing"); got != "" {
		t.Errorf("String(missing) = %q", got)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"int", 7, 7},
		{"int64", int64(8), 8},
		{"float64", float64(9), 9},
		{"numeric_string", "2022", 2022},
		{"bad_string", "x", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{"k": tt.v}
			if got := r.Int("k"); got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	r := Record{"nil": nil, "empty": "", "full": "x", "zero": 0}
	for key, want := range map[string]bool{
		"nil": true, "empty": true, "full": false, "zero": false, "missing": true,
	} {
		if got := r.Empty(key); got != want {
			t.Errorf("Empty(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestClone(t *testing.T) {
	r := Record{"a": "1"}
	c := r.Clone()
	c["a"] = "2"
	if r.String("a") != "1" {
		t.Error("Clone() shares the underlying map")
	}
}
