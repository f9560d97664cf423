package morfem

import "strings"

// findPrefixes enumerates every way to strip zero or more leading prefixes
// from word. Each matched allomorph produces two branches: stop after it, or
// keep stripping against the shortened remainder. The empty-prefix hypothesis
// is offered only when no prefix matched at all. Every consumed allomorph is
// at least one byte long, so the remainder strictly shrinks and the recursion
// terminates.
func (s *searcher) findPrefixes(word string, set RuleSet) ([]affixMatch, error) {
	var matches []affixMatch
	for _, rule := range set.ordered() {
		for _, allomorph := range rule.Allomorphs {
			if allomorph == "" || !strings.HasPrefix(word, allomorph) {
				continue
			}
			remainder := word[len(allomorph):]
			head := NewMorpheme(allomorph, rule)
			s.tracer.CandidateMatched(StagePrefix, head, remainder)

			if err := s.spend(); err != nil {
				return nil, err
			}
			matches = append(matches, affixMatch{
				morphemes: []Morpheme{head},
				remainder: remainder,
			})

			continuations, err := s.findPrefixes(remainder, set)
			if err != nil {
				return nil, err
			}
			for _, c := range continuations {
				if len(c.morphemes) == 0 {
					continue
				}
				if err := s.spend(); err != nil {
					return nil, err
				}
				morphemes := make([]Morpheme, 0, 1+len(c.morphemes))
				morphemes = append(morphemes, head)
				morphemes = append(morphemes, c.morphemes...)
				matches = append(matches, affixMatch{
					morphemes: morphemes,
					remainder: c.remainder,
				})
			}
		}
	}
	if len(matches) == 0 {
		return []affixMatch{{remainder: word}}, nil
	}
	return matches, nil
}
