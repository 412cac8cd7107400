package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func page(index int, words ...string) NormalizedPage {
	tokens := make(map[string]struct{}, len(words))
	for _, w := range words {
		tokens[w] = struct{}{}
	}
	return NormalizedPage{Index: index, Tokens: tokens, TokenCount: len(tokens)}
}

func TestContainment(t *testing.T) {
	tests := []struct {
		name string
		a, b NormalizedPage
		want float64
	}{
		{"full containment", page(0, "a", "b"), page(1, "a", "b", "c"), 1.0},
		{"half containment", page(0, "a", "b"), page(1, "a", "x"), 0.5},
		{"disjoint", page(0, "a", "b"), page(1, "x", "y"), 0.0},
		{"identical", page(0, "a", "b"), page(1, "a", "b"), 1.0},
		{"empty a scores zero", page(0), page(1, "a", "b"), 0.0},
		{"empty b", page(0, "a"), page(1), 0.0},
		{"both empty", page(0), page(1), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Containment(tt.a, tt.b), 1e-9)
		})
	}
}

func TestContainmentDirectional(t *testing.T) {
	small := page(0, "a", "b")
	big := page(1, "a", "b", "c", "d")

	// All of small is in big, but only half of big is in small.
	assert.InDelta(t, 1.0, Containment(small, big), 1e-9)
	assert.InDelta(t, 0.5, Containment(big, small), 1e-9)
}

func TestContainmentPure(t *testing.T) {
	a := page(0, "a", "b")
	b := page(1, "a")
	before := len(a.Tokens) + len(b.Tokens)
	_ = Containment(a, b)
	_ = Containment(b, a)
	assert.Equal(t, before, len(a.Tokens)+len(b.Tokens))
}
