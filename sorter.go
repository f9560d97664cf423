package morfem

import "sort"

// sortDecompositions orders results canonically: fewer morphemes first, ties
// broken lexicographically by canonical key. Decompose output is thereby
// independent of the order in which the search happened to visit rules.
func sortDecompositions(decompositions []Decomposition) {
	sort.Sort(byComplexity(decompositions))
}

type byComplexity []Decomposition

func (ds byComplexity) Len() int { return len(ds) }
func (ds byComplexity) Less(i, j int) bool {
	if len(ds[i].Morphemes) != len(ds[j].Morphemes) {
		return len(ds[i].Morphemes) < len(ds[j].Morphemes)
	}
	return canonicalKey(ds[i]) < canonicalKey(ds[j])
}
func (ds byComplexity) Swap(i, j int) { ds[i], ds[j] = ds[j], ds[i] }
