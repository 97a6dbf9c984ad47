package domain_test

import (
	"testing"

	"go.trai.ch/packlink/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("/work/lib-x")
	is2 := domain.NewInternedString("/work/lib-x")

	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}

	if is1.String() != "/work/lib-x" {
		t.Errorf("Expected String() to return %q, got %q", "/work/lib-x", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	if zero.String() != "" {
		t.Errorf("Expected zero value to be empty, got %q", zero.String())
	}
}

func TestNewInternedStrings(t *testing.T) {
	t.Run("Convert slice of strings to InternedStrings", func(t *testing.T) {
		paths := []string{"./app-a", "./app-b", "./lib-x"}

		interned := domain.NewInternedStrings(paths)

		if len(interned) != len(paths) {
			t.Fatalf("Expected %d interned strings, got %d", len(paths), len(interned))
		}
		for i, expected := range paths {
			if interned[i].String() != expected {
				t.Errorf("Expected interned string at index %d to be %q, got %q", i, expected, interned[i].String())
			}
		}
	})

	t.Run("Empty slice returns empty slice", func(t *testing.T) {
		if got := domain.NewInternedStrings([]string{}); len(got) != 0 {
			t.Errorf("Expected empty slice, got %d elements", len(got))
		}
	})

	t.Run("Duplicate strings share a handle", func(t *testing.T) {
		interned := domain.NewInternedStrings([]string{"./lib", "./lib"})

		if interned[0].Value() != interned[1].Value() {
			t.Errorf("Expected handles to be equal for identical strings")
		}
	})
}
