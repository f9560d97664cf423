package morfem

import (
	"errors"
	"fmt"
	"strings"
)

// PartOfSpeech selects which suffix and ending stages apply.
type PartOfSpeech string

const (
	Noun PartOfSpeech = "noun"
	Verb PartOfSpeech = "verb"
)

var (
	// ErrEmptyWord is returned when the input word is empty.
	ErrEmptyWord = errors.New("morfem: empty word")
	// ErrTooManyHypotheses is returned when the hypothesis budget is
	// exhausted before the search completes. No partial result is returned.
	ErrTooManyHypotheses = errors.New("morfem: hypothesis budget exhausted")
)

// UnsupportedPartOfSpeechError is returned for any part of speech outside
// {noun, verb}.
type UnsupportedPartOfSpeechError struct {
	PartOfSpeech PartOfSpeech
}

func (e *UnsupportedPartOfSpeechError) Error() string {
	return fmt.Sprintf("morfem: unsupported part of speech: %q", string(e.PartOfSpeech))
}

// DefaultMaxHypotheses bounds the search on pathological rule tables.
const DefaultMaxHypotheses = 100000

// Decomposer enumerates every segmentation of a word into prefixes, a root,
// suffixes and endings that is consistent with its rule table. It holds no
// mutable state across calls, so one Decomposer is safe for concurrent use.
type Decomposer struct {
	table         RuleTable
	tracer        Tracer
	maxHypotheses int
}

type DecomposerOption func(*Decomposer)

// WithTracer installs a diagnostic trace hook. The default is a no-op.
func WithTracer(tracer Tracer) DecomposerOption {
	return func(d *Decomposer) {
		d.tracer = tracer
	}
}

// WithMaxHypotheses overrides the hypothesis budget.
func WithMaxHypotheses(n int) DecomposerOption {
	return func(d *Decomposer) {
		d.maxHypotheses = n
	}
}

func NewDecomposer(table RuleTable, options ...DecomposerOption) *Decomposer {
	d := &Decomposer{
		table:         table,
		tracer:        nopTracer{},
		maxHypotheses: DefaultMaxHypotheses,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// NewDecomposerFromStorage loads the rule table from storage once and builds
// a Decomposer around it.
func NewDecomposerFromStorage(storage RuleStorage, options ...DecomposerOption) (*Decomposer, error) {
	table, err := storage.GetRuleTable()
	if err != nil {
		return nil, fmt.Errorf("load rule table: %w", err)
	}
	return NewDecomposer(table, options...), nil
}

// Decompose returns every decomposition of word consistent with the rule
// table for the given part of speech. The word is lower-cased first; each
// returned decomposition reassembles the lower-cased word exactly. Results
// are deduplicated and ordered by morpheme count, ties broken by canonical
// key, so the output is deterministic for a given word and table. At least
// one decomposition is always returned for a valid input: when no affix
// matches anywhere, the whole word is reported as a bare root.
func (d *Decomposer) Decompose(word string, pos PartOfSpeech) ([]Decomposition, error) {
	if pos != Noun && pos != Verb {
		return nil, &UnsupportedPartOfSpeechError{PartOfSpeech: pos}
	}
	if word == "" {
		return nil, ErrEmptyWord
	}
	word = strings.ToLower(word)

	s := newSearcher(d.tracer, d.maxHypotheses)
	s.tracer.StageStarted(StagePrefix, word)
	prefixMatches, err := s.findPrefixes(word, d.table.Prefixes)
	if err != nil {
		return nil, err
	}

	var all []Decomposition
	for _, pm := range prefixMatches {
		var decompositions []Decomposition
		switch pos {
		case Noun:
			decompositions, err = d.decomposeNoun(s, pm)
		case Verb:
			decompositions, err = d.decomposeVerb(s, pm)
		}
		if err != nil {
			return nil, err
		}
		all = append(all, decompositions...)
	}

	if len(all) == 0 {
		all = []Decomposition{NewDecomposition([]Morpheme{newRootMorpheme(word)})}
	}
	all = dedupe(all)
	sortDecompositions(all)
	return all, nil
}

// decomposeNoun strips, from the right of the post-prefix remainder, the
// layers ending -> plural -> noun suffix. Because each stage strips strictly
// from the right, the surface order of the layers is the reverse of the
// stripping order: root, noun suffixes, plurals, endings.
func (d *Decomposer) decomposeNoun(s *searcher, pm affixMatch) ([]Decomposition, error) {
	s.tracer.StageStarted(StageNounEnding, pm.remainder)
	endingMatches, err := s.findSuffixes(pm.remainder, d.table.NounEndings, StageNounEnding)
	if err != nil {
		return nil, err
	}

	var decompositions []Decomposition
	for _, em := range endingMatches {
		s.tracer.StageStarted(StagePlural, em.remainder)
		pluralMatches, err := s.findSuffixes(em.remainder, d.table.PluralSuffixes, StagePlural)
		if err != nil {
			return nil, err
		}
		for _, plm := range pluralMatches {
			s.tracer.StageStarted(StageNounSuffix, plm.remainder)
			suffixMatches, err := s.findSuffixes(plm.remainder, d.table.NounSuffixes, StageNounSuffix)
			if err != nil {
				return nil, err
			}
			for _, sm := range suffixMatches {
				if sm.remainder == "" {
					s.tracer.BranchPruned(StageNounSuffix, sm.remainder)
					continue
				}
				morphemes := make([]Morpheme, 0,
					len(pm.morphemes)+1+len(sm.morphemes)+len(plm.morphemes)+len(em.morphemes))
				morphemes = append(morphemes, pm.morphemes...)
				morphemes = append(morphemes, newRootMorpheme(sm.remainder))
				morphemes = append(morphemes, sm.morphemes...)
				morphemes = append(morphemes, plm.morphemes...)
				morphemes = append(morphemes, em.morphemes...)
				decompositions = append(decompositions, NewDecomposition(morphemes))
			}
		}
	}
	return decompositions, nil
}

func (d *Decomposer) decomposeVerb(s *searcher, pm affixMatch) ([]Decomposition, error) {
	s.tracer.StageStarted(StageVerbSuffix, pm.remainder)
	suffixMatches, err := s.findSuffixes(pm.remainder, d.table.VerbSuffixes, StageVerbSuffix)
	if err != nil {
		return nil, err
	}

	var decompositions []Decomposition
	for _, sm := range suffixMatches {
		if sm.remainder == "" {
			s.tracer.BranchPruned(StageVerbSuffix, sm.remainder)
			continue
		}
		morphemes := make([]Morpheme, 0, len(pm.morphemes)+1+len(sm.morphemes))
		morphemes = append(morphemes, pm.morphemes...)
		morphemes = append(morphemes, newRootMorpheme(sm.remainder))
		morphemes = append(morphemes, sm.morphemes...)
		decompositions = append(decompositions, NewDecomposition(morphemes))
	}
	return decompositions, nil
}
