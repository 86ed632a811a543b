package palette

import (
	"errors"
	"slices"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	p, err := New([]string{"#41484f", "#015651"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestNew_NormalizesCase(t *testing.T) {
	p, err := New([]string{"#41484F"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := p.Color(0); got != "#41484f" {
		t.Errorf("Color(0) = %q, want %q", got, "#41484f")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		want   error
	}{
		{"empty palette", nil, ErrEmptyPalette},
		{"missing hash", []string{"41484f"}, ErrInvalidColor},
		{"shorthand form", []string{"#48f"}, ErrInvalidColor},
		{"non-hex digits", []string{"#41484g"}, ErrInvalidColor},
		{"non-hex last digit", []string{"#fffffz"}, ErrInvalidColor},
		{"embedded space", []string{"#41 84f"}, ErrInvalidColor},
		{"too long", []string{"#41484f00"}, ErrInvalidColor},
		{"one bad among good", []string{"#41484f", "oops"}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.colors); !errors.Is(err, tt.want) {
				t.Errorf("New(%v) error = %v, want %v", tt.colors, err, tt.want)
			}
		})
	}
}

func TestPalette_Cycling(t *testing.T) {
	p, err := New([]string{"#111111", "#222222", "#333333"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Node i and node i+P receive the identical color.
	for i := 0; i < 3; i++ {
		if p.Color(i) != p.Color(i+p.Len()) {
			t.Errorf("Color(%d) != Color(%d)", i, i+p.Len())
		}
	}
	if p.Color(4) != "#222222" {
		t.Errorf("Color(4) = %q, want %q", p.Color(4), "#222222")
	}
}

func TestLinkRGBA(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#41484f", "rgba(65,72,79,0.3)"},
		{"#ffffff", "rgba(255,255,255,0.3)"},
		{"#000000", "rgba(0,0,0,0.3)"},
	}

	for _, tt := range tests {
		got, err := LinkRGBA(tt.hex)
		if err != nil {
			t.Fatalf("LinkRGBA(%q) error: %v", tt.hex, err)
		}
		if got != tt.want {
			t.Errorf("LinkRGBA(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestLinkRGBA_Invalid(t *testing.T) {
	// "#41484g" is the scanner trap: Sscanf-style hex parsing reads it as
	// three valid bytes, so per-digit validation has to reject it.
	for _, hex := range []string{"nope", "#41484g", "#48f", ""} {
		if _, err := LinkRGBA(hex); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("LinkRGBA(%q) error = %v, want ErrInvalidColor", hex, err)
		}
	}
}

func TestBuiltin(t *testing.T) {
	for _, name := range Names() {
		p, ok := Builtin(name)
		if !ok {
			t.Errorf("Builtin(%q) not found", name)
			continue
		}
		if p.Len() == 0 {
			t.Errorf("Builtin(%q) is empty", name)
		}
		// Every shipped color must survive re-validation.
		if _, err := New(p.Colors()); err != nil {
			t.Errorf("Builtin(%q) colors invalid: %v", name, err)
		}
	}

	if _, ok := Builtin("neon"); ok {
		t.Error("Builtin(neon) should not exist")
	}

	want := []string{NameDefault, NameEarthy, NameHighContrast}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
