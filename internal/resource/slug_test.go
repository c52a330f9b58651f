package resource

import (
	"errors"
	"testing"
)

func TestSlugifyDerivesIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		tokens   []string
		expected string
	}{
		{name: "plain", title: "KCP 32RX-170", tokens: []string{"kcp"}, expected: "32rx-170"},
		{name: "whitespace-collapses", title: "  Pump   Truck  ", expected: "pump-truck"},
		{name: "cyrillic-dropped", title: "Автобетононасос KCP 38ZX", tokens: []string{"kcp"}, expected: "38zx"},
		{name: "punctuation-dropped", title: "Model #7 (new!)", expected: "model-7-new"},
		{name: "hyphen-runs-collapse", title: "a -- b", expected: "a-b"},
		{name: "token-without-match", title: "Everdigm 43", tokens: []string{"kcp"}, expected: "everdigm-43"},
		{name: "only-cyrillic", title: "Насос", expected: ""},
		{name: "empty", title: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title, tt.tokens...); got != tt.expected {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestUniqueSlugProbesSuffixes(t *testing.T) {
	existing := map[string]bool{"32rx-170": true, "32rx-170-1": true}
	taken := func(candidate string) (bool, error) {
		return existing[candidate], nil
	}

	slug, err := UniqueSlug("32rx-170", taken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "32rx-170-2" {
		t.Fatalf("expected suffix probing to reach -2, got %q", slug)
	}
}

func TestUniqueSlugReturnsBaseWhenFree(t *testing.T) {
	slug, err := UniqueSlug("fresh", func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "fresh" {
		t.Fatalf("expected base slug, got %q", slug)
	}
}

func TestUniqueSlugPropagatesLookupFailure(t *testing.T) {
	lookupErr := errors.New("store down")
	if _, err := UniqueSlug("x", func(string) (bool, error) { return false, lookupErr }); !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup failure to propagate, got %v", err)
	}
}

func TestUniqueSlugEmptyBase(t *testing.T) {
	slug, err := UniqueSlug("", func(string) (bool, error) {
		t.Fatalf("taken must not be called for an empty base")
		return false, nil
	})
	if err != nil || slug != "" {
		t.Fatalf("expected empty slug, got %q (%v)", slug, err)
	}
}
