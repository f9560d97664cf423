package morfem

import "strings"

// CharFilter rewrites raw input text before decomposition.
type CharFilter interface {
	Filter(string) string
}

// MappingCharFilter replaces every occurrence of each key with its value.
type MappingCharFilter struct {
	mapper map[string]string
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	return &MappingCharFilter{mapper: mapper}
}

func (c *MappingCharFilter) Filter(s string) string {
	for k, v := range c.mapper {
		s = strings.Replace(s, k, v, -1)
	}
	return s
}

// NewCedillaCharFilter maps the legacy cedilla forms of ș and ț (U+015F,
// U+0163 and their capitals) to the comma-below forms the rule datasets use.
// Romanian text from older encodings routinely mixes the two.
func NewCedillaCharFilter() *MappingCharFilter {
	return NewMappingCharFilter(map[string]string{
		"ş": "ș",
		"ţ": "ț",
		"Ş": "Ș",
		"Ţ": "Ț",
	})
}

// LowercaseCharFilter lower-cases the whole input.
type LowercaseCharFilter struct{}

func NewLowercaseCharFilter() LowercaseCharFilter {
	return LowercaseCharFilter{}
}

func (LowercaseCharFilter) Filter(s string) string {
	return strings.ToLower(s)
}
