package morfem

// affixMatch is one matcher hypothesis: the morphemes consumed so far in
// left-to-right surface order, and the remainder of the word they left.
type affixMatch struct {
	morphemes []Morpheme
	remainder string
}

// searcher carries per-call search state. A fresh searcher is created for
// every Decompose call, so calls share nothing but the immutable rule table.
type searcher struct {
	tracer    Tracer
	remaining int
}

func newSearcher(tracer Tracer, budget int) *searcher {
	return &searcher{
		tracer:    tracer,
		remaining: budget,
	}
}

// spend consumes one unit of the hypothesis budget.
func (s *searcher) spend() error {
	s.remaining--
	if s.remaining < 0 {
		return ErrTooManyHypotheses
	}
	return nil
}
