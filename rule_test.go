package morfem

import (
	"fmt"
	"reflect"
	"testing"
)

func TestNewRule_SortsAllomorphs(t *testing.T) {
	tests := []struct {
		allomorphs []string
		want       []string
	}{
		{allomorphs: []string{"ul", "l", "u"}, want: []string{"l", "u", "ul"}},
		{allomorphs: []string{"ând", "ind"}, want: []string{"ind", "ând"}},
		{allomorphs: []string{"a"}, want: []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("allomorphs = %v", tt.allomorphs), func(t *testing.T) {
			rule := NewRule(CategorySuffix, "test", tt.allomorphs...)
			if !reflect.DeepEqual(rule.Allomorphs, tt.want) {
				t.Errorf("Allomorphs = %v, want %v", rule.Allomorphs, tt.want)
			}
		})
	}
}

func TestRuleSet_Ordered(t *testing.T) {
	set := NewRuleSet(false, map[string]Rule{
		"re":  NewRule(CategoryPrefix, "repetition", "re"),
		"des": NewRule(CategoryPrefix, "reversal", "des"),
		"ne":  NewRule(CategoryPrefix, "negation", "ne"),
	})
	got := set.ordered()
	want := []Rule{
		NewRule(CategoryPrefix, "reversal", "des"),
		NewRule(CategoryPrefix, "negation", "ne"),
		NewRule(CategoryPrefix, "repetition", "re"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ordered() = %v, want %v", got, want)
	}
}

func TestDecomposition_Surface(t *testing.T) {
	d := NewDecomposition([]Morpheme{
		NewMorpheme("ne", NewRule(CategoryPrefix, "negation", "ne")),
		newRootMorpheme("lucr"),
		NewMorpheme("ând", NewRule(CategorySuffix, "gerund", "ând", "ind")),
	})
	if got := d.Surface(); got != "nelucrând" {
		t.Errorf("Surface() = %v, want %v", got, "nelucrând")
	}
}

func TestDecomposition_Root(t *testing.T) {
	d := NewDecomposition([]Morpheme{
		NewMorpheme("ne", NewRule(CategoryPrefix, "negation", "ne")),
		newRootMorpheme("lucr"),
	})
	root, ok := d.Root()
	if !ok {
		t.Fatal("Root() not found")
	}
	if root.Surface != "lucr" {
		t.Errorf("Root().Surface = %v, want %v", root.Surface, "lucr")
	}

	empty := NewDecomposition([]Morpheme{
		NewMorpheme("ne", NewRule(CategoryPrefix, "negation", "ne")),
	})
	if _, ok := empty.Root(); ok {
		t.Error("Root() found in decomposition without root")
	}
}

func TestDecomposition_String(t *testing.T) {
	d := NewDecomposition([]Morpheme{
		newRootMorpheme("cas"),
		NewMorpheme("a", NewRule(CategoryEnding, "def.fem.sg", "a")),
	})
	want := "cas(root:root) + a(ending:def.fem.sg)"
	if got := d.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}
