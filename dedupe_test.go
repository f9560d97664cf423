package morfem

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDedupe(t *testing.T) {
	rootCas := NewDecomposition([]Morpheme{newRootMorpheme("cas")})
	casA := NewDecomposition([]Morpheme{
		newRootMorpheme("cas"),
		NewMorpheme("a", NewRule(CategoryEnding, "def.fem.sg", "a")),
	})
	// Same surfaces as casA but a different meaning: distinct hypothesis.
	casAPlural := NewDecomposition([]Morpheme{
		newRootMorpheme("cas"),
		NewMorpheme("a", NewRule(CategorySuffix, "plural", "a")),
	})

	tests := []struct {
		decompositions []Decomposition
		want           []Decomposition
	}{
		{
			decompositions: []Decomposition{},
			want:           []Decomposition{},
		},
		{
			decompositions: []Decomposition{casA, casA, casA},
			want:           []Decomposition{casA},
		},
		{
			// First-seen order is kept.
			decompositions: []Decomposition{casA, rootCas, casA, rootCas},
			want:           []Decomposition{casA, rootCas},
		},
		{
			decompositions: []Decomposition{casA, casAPlural},
			want:           []Decomposition{casA, casAPlural},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("decompositions = %v", tt.decompositions), func(t *testing.T) {
			if got := dedupe(tt.decompositions); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanonicalKey_DistinguishesAllomorphSets(t *testing.T) {
	a := NewDecomposition([]Morpheme{
		NewMorpheme("tor", NewRule(CategorySuffix, "agent", "tor", "toare")),
	})
	b := NewDecomposition([]Morpheme{
		NewMorpheme("tor", NewRule(CategorySuffix, "agent", "tor")),
	})
	if canonicalKey(a) == canonicalKey(b) {
		t.Errorf("canonicalKey() identical for different allomorph sets: %v", canonicalKey(a))
	}
}
