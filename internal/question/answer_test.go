package question

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		submitted string
		canonical string
		want      bool
	}{
		{"  42 ", "42", true},
		{"Blue", "blue", true},
		{"BLUE", "Blue", true},
		{"42", "42", true},
		{"4.0", "4", false}, // no numeric coercion
		{"1/2", "0.5", false},
		{"", "42", false},
		{"   ", "", true},
		{"forty two", "42", false},
	}

	for _, tt := range tests {
		if got := Grade(tt.submitted, tt.canonical); got != tt.want {
			t.Errorf("Grade(%q, %q) = %v, want %v", tt.submitted, tt.canonical, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Blue ", "blue"},
		{"42", "42"},
		{"\tHalf\n", "half"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
