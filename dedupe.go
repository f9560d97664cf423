package morfem

import "strings"

// canonicalKey serializes a decomposition as the ordered sequence of
// (surface, category, meaning, allomorph set) of its morphemes. Allomorphs
// are sorted at rule construction, so structurally identical decompositions
// always produce identical keys.
func canonicalKey(d Decomposition) string {
	var b strings.Builder
	for i, m := range d.Morphemes {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(m.Surface)
		b.WriteByte('/')
		b.WriteString(string(m.Rule.Category))
		b.WriteByte('/')
		b.WriteString(m.Rule.Meaning)
		b.WriteByte('/')
		b.WriteString(strings.Join(m.Rule.Allomorphs, ","))
	}
	return b.String()
}

// dedupe drops structurally identical decompositions, keeping the first
// occurrence of each key in its first-seen position.
func dedupe(decompositions []Decomposition) []Decomposition {
	seen := make(map[string]struct{}, len(decompositions))
	unique := make([]Decomposition, 0, len(decompositions))
	for _, d := range decompositions {
		key := canonicalKey(d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, d)
	}
	return unique
}
