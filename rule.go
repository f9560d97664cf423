package morfem

import (
	"sort"
	"strings"
)

// Category classifies a morpheme by its position in the word.
type Category string

const (
	CategoryPrefix Category = "prefix"
	CategoryRoot   Category = "root"
	CategorySuffix Category = "suffix"
	CategoryEnding Category = "ending"
)

// Rule describes one affix: all surface strings (allomorphs) that realize it
// and the grammatical meaning they carry.
type Rule struct {
	Category   Category
	Meaning    string
	Allomorphs []string
}

// NewRule builds a Rule with its allomorphs sorted, so that rules compare
// and serialize deterministically regardless of how the dataset listed them.
func NewRule(category Category, meaning string, allomorphs ...string) Rule {
	sorted := make([]string, len(allomorphs))
	copy(sorted, allomorphs)
	sort.Strings(sorted)
	return Rule{
		Category:   category,
		Meaning:    meaning,
		Allomorphs: sorted,
	}
}

// RuleSet is one affix category of the dataset: canonical name -> Rule.
// Optional controls the empty hypothesis during matching: when true the
// "no affix here" branch is always explored alongside any matches, when
// false it is explored only if nothing matched at all.
type RuleSet struct {
	Optional bool
	Rules    map[string]Rule
}

func NewRuleSet(optional bool, rules map[string]Rule) RuleSet {
	return RuleSet{
		Optional: optional,
		Rules:    rules,
	}
}

// ordered returns the rules sorted by canonical name. Matching iterates this
// instead of the map so decomposition never depends on map iteration order.
func (rs RuleSet) ordered() []Rule {
	names := make([]string, 0, len(rs.Rules))
	for name := range rs.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	rules := make([]Rule, len(names))
	for i, name := range names {
		rules[i] = rs.Rules[name]
	}
	return rules
}

// RuleTable is the full rule dataset: the five affix sub-tables a
// decomposition may draw from. It is built once and never mutated, so a
// single table can be shared by any number of concurrent Decompose calls.
type RuleTable struct {
	Prefixes       RuleSet
	NounSuffixes   RuleSet
	PluralSuffixes RuleSet
	NounEndings    RuleSet
	VerbSuffixes   RuleSet
}

// Morpheme is one matched surface form together with the rule it realizes.
type Morpheme struct {
	Surface string
	Rule    Rule
}

func NewMorpheme(surface string, rule Rule) Morpheme {
	return Morpheme{
		Surface: surface,
		Rule:    rule,
	}
}

func newRootMorpheme(surface string) Morpheme {
	return NewMorpheme(surface, NewRule(CategoryRoot, "root", surface))
}

// Decomposition is one full segmentation hypothesis. Concatenating the
// morpheme surfaces in order reproduces the lower-cased input word exactly.
type Decomposition struct {
	Morphemes []Morpheme
}

func NewDecomposition(morphemes []Morpheme) Decomposition {
	return Decomposition{
		Morphemes: morphemes,
	}
}

// Surface reassembles the word the decomposition was derived from.
func (d Decomposition) Surface() string {
	var b strings.Builder
	for _, m := range d.Morphemes {
		b.WriteString(m.Surface)
	}
	return b.String()
}

// Root returns the root morpheme, if present.
func (d Decomposition) Root() (Morpheme, bool) {
	for _, m := range d.Morphemes {
		if m.Rule.Category == CategoryRoot {
			return m, true
		}
	}
	return Morpheme{}, false
}

func (d Decomposition) String() string {
	parts := make([]string, len(d.Morphemes))
	for i, m := range d.Morphemes {
		parts[i] = m.Surface + "(" + string(m.Rule.Category) + ":" + m.Rule.Meaning + ")"
	}
	return strings.Join(parts, " + ")
}
