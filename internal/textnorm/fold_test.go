package textnorm

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain_lowercased", "Outros", "outros"},
		{"diacritics_stripped", "Não tenho interesse", "nao tenho interesse"},
		{"surrounding_space_trimmed", "  Cálculo 2  ", "calculo 2"},
		{"decomposed_form_matches_composed", "Na\u0303o", "nao"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetContains(t *testing.T) {
	s := NewSet([]string{"Não tenho interesse", "outros"})

	tests := []struct {
		name string
		v    string
		want bool
	}{
		{"exact", "outros", true},
		{"case_differs", "OUTROS", true},
		{"diacritics_differ", "nao tenho interesse", true},
		{"not_a_member", "quero adiantar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
