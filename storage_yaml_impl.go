package morfem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLRuleStorage loads a rule dataset from a YAML file. Dataset validation
// happens here: the engine itself assumes every rule it is given has a
// non-empty allomorph set.
type YAMLRuleStorage struct {
	path string
}

func NewYAMLRuleStorage(path string) YAMLRuleStorage {
	return YAMLRuleStorage{path: path}
}

type yamlRule struct {
	Meaning    string   `yaml:"meaning"`
	Allomorphs []string `yaml:"allomorphs"`
}

type yamlRuleSet struct {
	Optional bool                `yaml:"optional"`
	Rules    map[string]yamlRule `yaml:"rules"`
}

type yamlRuleTable struct {
	Prefixes       yamlRuleSet `yaml:"prefixes"`
	NounSuffixes   yamlRuleSet `yaml:"noun_suffixes"`
	PluralSuffixes yamlRuleSet `yaml:"plural_suffixes"`
	NounEndings    yamlRuleSet `yaml:"noun_endings"`
	VerbSuffixes   yamlRuleSet `yaml:"verb_suffixes"`
}

func (s YAMLRuleStorage) GetRuleTable() (RuleTable, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return RuleTable{}, fmt.Errorf("read rule dataset: %w", err)
	}
	var parsed yamlRuleTable
	if err := yaml.UnmarshalStrict(raw, &parsed); err != nil {
		return RuleTable{}, fmt.Errorf("parse rule dataset %s: %w", s.path, err)
	}

	table := RuleTable{}
	for _, conv := range []struct {
		name     string
		category Category
		in       yamlRuleSet
		out      *RuleSet
	}{
		{"prefixes", CategoryPrefix, parsed.Prefixes, &table.Prefixes},
		{"noun_suffixes", CategorySuffix, parsed.NounSuffixes, &table.NounSuffixes},
		{"plural_suffixes", CategorySuffix, parsed.PluralSuffixes, &table.PluralSuffixes},
		{"noun_endings", CategoryEnding, parsed.NounEndings, &table.NounEndings},
		{"verb_suffixes", CategorySuffix, parsed.VerbSuffixes, &table.VerbSuffixes},
	} {
		set, err := conv.in.toRuleSet(conv.category)
		if err != nil {
			return RuleTable{}, fmt.Errorf("rule dataset %s: table %s: %w", s.path, conv.name, err)
		}
		*conv.out = set
	}
	return table, nil
}

func (ys yamlRuleSet) toRuleSet(category Category) (RuleSet, error) {
	rules := make(map[string]Rule, len(ys.Rules))
	for name, yr := range ys.Rules {
		if len(yr.Allomorphs) == 0 {
			return RuleSet{}, fmt.Errorf("rule %s: empty allomorph set", name)
		}
		for _, a := range yr.Allomorphs {
			if a == "" {
				return RuleSet{}, fmt.Errorf("rule %s: empty allomorph", name)
			}
		}
		rules[name] = NewRule(category, yr.Meaning, yr.Allomorphs...)
	}
	return NewRuleSet(ys.Optional, rules), nil
}
