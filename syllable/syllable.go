// Package syllable splits Romanian words into syllables for hyphenation.
// It is a linear scan over vowel/consonant patterns and shares nothing with
// the morphological decomposition engine.
package syllable

import "strings"

type Syllabifier struct {
	vowels      map[rune]struct{}
	diphthongs  map[string]struct{}
	triphthongs map[string]struct{}
	clusters    map[string]struct{}
}

func NewSyllabifier() *Syllabifier {
	return &Syllabifier{
		vowels: runeSet("aăâeioîu"),
		diphthongs: stringSet(
			"ea", "eo", "eu", "ia", "ie", "ii", "io", "iu",
			"îi", "oa", "ua", "uă", "ue", "ui", "uo",
		),
		triphthongs: stringSet(
			"eai", "eau", "iai", "iau", "iei", "ioa", "oai",
		),
		// Consonant clusters that stay in one syllable.
		clusters: stringSet(
			"bl", "br", "cl", "cr", "dr", "fl", "fr", "gl", "gr",
			"pl", "pr", "sc", "sk", "sl", "sm", "sn", "sp", "st",
			"șt", "tr", "vr", "zl", "zn", "zv",
		),
	}
}

func (s *Syllabifier) isVowel(r rune) bool {
	_, ok := s.vowels[r]
	return ok
}

// Boundaries splits word into its syllables, in order.
func (s *Syllabifier) Boundaries(word string) []string {
	runes := []rune(strings.ToLower(word))
	var syllables []string
	var current []rune

	flush := func() {
		syllables = append(syllables, string(current))
		current = current[:0]
	}

	i := 0
	for i < len(runes) {
		current = append(current, runes[i])

		if i+2 < len(runes) {
			if _, ok := s.triphthongs[string(runes[i:i+3])]; ok {
				current = append(current, runes[i+1], runes[i+2])
				i += 3
				flush()
				continue
			}
		}
		if i+1 < len(runes) {
			if _, ok := s.diphthongs[string(runes[i:i+2])]; ok {
				current = append(current, runes[i+1])
				i += 2
				flush()
				continue
			}
		}

		if i+2 < len(runes) && s.isVowel(runes[i]) && !s.isVowel(runes[i+1]) {
			if s.isVowel(runes[i+2]) {
				// V-CV: the consonant opens the next syllable.
				flush()
			} else if _, ok := s.clusters[string(runes[i+1:i+3])]; ok {
				// V-CCV with an unsplittable cluster: both consonants move on.
				flush()
			} else {
				// VC-CV: the first consonant closes this syllable.
				current = append(current, runes[i+1])
				flush()
				i++
			}
		}
		i++
	}
	if len(current) > 0 {
		flush()
	}
	return syllables
}

// Syllabify returns word with its syllables joined by hyphens.
func (s *Syllabifier) Syllabify(word string) string {
	return strings.Join(s.Boundaries(word), "-")
}

func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

func stringSet(ss ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		m[s] = struct{}{}
	}
	return m
}
