package primitives

import (
	"errors"
	"testing"
)

func TestNewPuzzle_Valid(t *testing.T) {
	p, err := NewPuzzle("ihy", "aws", "ern", "ftl")
	if err != nil {
		t.Fatalf("NewPuzzle() error = %v", err)
	}

	if got := string(p.Letters()); got != "ihyawsernftl" {
		t.Errorf("Letters() = %q, want declaration order %q", got, "ihyawsernftl")
	}
	if p.Alphabet().Count() != 12 {
		t.Errorf("alphabet count = %d, want 12", p.Alphabet().Count())
	}

	wantSides := map[rune]int{
		'i': 0, 'h': 0, 'y': 0,
		'a': 1, 'w': 1, 's': 1,
		'e': 2, 'r': 2, 'n': 2,
		'f': 3, 't': 3, 'l': 3,
	}
	for r, want := range wantSides {
		side, ok := p.SideOf(r)
		if !ok {
			t.Errorf("SideOf(%q) not found", r)
			continue
		}
		if side != want {
			t.Errorf("SideOf(%q) = %d, want %d", r, side, want)
		}
	}
}

func TestNewPuzzle_NormalizesCase(t *testing.T) {
	p, err := NewPuzzle("IHY", "AwS", " ern ", "FTL")
	if err != nil {
		t.Fatalf("NewPuzzle() error = %v", err)
	}
	if p.Sides() != [NumSides]string{"ihy", "aws", "ern", "ftl"} {
		t.Errorf("Sides() = %v, want lowercased sides", p.Sides())
	}
}

func TestNewPuzzle_Invalid(t *testing.T) {
	tests := []struct {
		name                     string
		top, left, bottom, right string
	}{
		{"short side", "ih", "aws", "ern", "ftl"},
		{"long side", "ihya", "aws", "ern", "ftl"},
		{"empty side", "", "aws", "ern", "ftl"},
		{"duplicate within side", "iiy", "aws", "ern", "ftl"},
		{"duplicate across sides", "ihy", "aws", "ern", "fta"},
		{"digit", "ih1", "aws", "ern", "ftl"},
		{"punctuation", "ihy", "aws", "er.", "ftl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPuzzle(tt.top, tt.left, tt.bottom, tt.right)
			if err == nil {
				t.Fatalf("NewPuzzle(%q, %q, %q, %q) succeeded, want error", tt.top, tt.left, tt.bottom, tt.right)
			}
			if !errors.Is(err, ErrInvalidPuzzle) {
				t.Errorf("error %v is not ErrInvalidPuzzle", err)
			}
		})
	}
}

func TestPuzzle_SideOf_Unknown(t *testing.T) {
	p, err := NewPuzzle("ihy", "aws", "ern", "ftl")
	if err != nil {
		t.Fatalf("NewPuzzle() error = %v", err)
	}

	for _, r := range []rune{'z', 'q', 'A', '-'} {
		if _, ok := p.SideOf(r); ok {
			t.Errorf("SideOf(%q) = ok, want not found", r)
		}
	}
}
