package morfem

// Normalizer runs a chain of character filters over a word before it is
// handed to a Decomposer. The core decomposition only lower-cases its input;
// anything beyond that (diacritic variant mapping and the like) is the
// caller's choice and lives here.
type Normalizer struct {
	charFilters []CharFilter
}

func NewNormalizer(charFilters ...CharFilter) Normalizer {
	return Normalizer{
		charFilters: charFilters,
	}
}

func (n Normalizer) Normalize(s string) string {
	for _, c := range n.charFilters {
		s = c.Filter(s)
	}
	return s
}
