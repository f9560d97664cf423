package morfem

import "strings"

// findSuffixes enumerates every way to strip zero or more trailing affixes
// from word using one rule sub-table. The empty hypothesis (nothing stripped,
// full word as remainder) is always included for an Optional set; for a
// non-Optional set it is included only when no affix matched at all.
func (s *searcher) findSuffixes(word string, set RuleSet, stage Stage) ([]affixMatch, error) {
	matches, err := s.matchSuffixes(word, set, stage)
	if err != nil {
		return nil, err
	}
	if set.Optional || len(matches) == 0 {
		matches = append(matches, affixMatch{remainder: word})
	}
	return matches, nil
}

// matchSuffixes is the recursive core: every rule/allomorph pair that is a
// literal suffix of word yields the single-suffix branch plus every
// continuation found on the shortened remainder. Morphemes are accumulated
// in left-to-right surface order (continuation first, stripped suffix last),
// so concatenating them after the remainder reproduces word exactly.
func (s *searcher) matchSuffixes(word string, set RuleSet, stage Stage) ([]affixMatch, error) {
	var matches []affixMatch
	for _, rule := range set.ordered() {
		for _, allomorph := range rule.Allomorphs {
			if allomorph == "" || !strings.HasSuffix(word, allomorph) {
				continue
			}
			remainder := word[:len(word)-len(allomorph)]
			head := NewMorpheme(allomorph, rule)
			s.tracer.CandidateMatched(stage, head, remainder)

			if err := s.spend(); err != nil {
				return nil, err
			}
			matches = append(matches, affixMatch{
				morphemes: []Morpheme{head},
				remainder: remainder,
			})

			if remainder == "" {
				continue
			}
			continuations, err := s.matchSuffixes(remainder, set, stage)
			if err != nil {
				return nil, err
			}
			for _, c := range continuations {
				if err := s.spend(); err != nil {
					return nil, err
				}
				morphemes := make([]Morpheme, 0, len(c.morphemes)+1)
				morphemes = append(morphemes, c.morphemes...)
				morphemes = append(morphemes, head)
				matches = append(matches, affixMatch{
					morphemes: morphemes,
					remainder: c.remainder,
				})
			}
		}
	}
	return matches, nil
}
