package morfem

// NewRomanianRuleTable returns the built-in Romanian rule dataset.
// Allomorph variants cover the usual phonological alternations
// (des/dez before voiced consonants, în/îm before labials, răs/răz).
func NewRomanianRuleTable() RuleTable {
	return RuleTable{
		Prefixes: NewRuleSet(false, map[string]Rule{
			"ne":   NewRule(CategoryPrefix, "negation", "ne"),
			"re":   NewRule(CategoryPrefix, "repetition", "re"),
			"des":  NewRule(CategoryPrefix, "reversal", "des", "dez"),
			"în":   NewRule(CategoryPrefix, "inchoative", "în", "îm"),
			"pre":  NewRule(CategoryPrefix, "anteriority", "pre"),
			"răs":  NewRule(CategoryPrefix, "intensifier", "răs", "răz"),
			"stră": NewRule(CategoryPrefix, "remoteness", "stră"),
		}),
		NounSuffixes: NewRuleSet(false, map[string]Rule{
			"tor":  NewRule(CategorySuffix, "agent", "tor", "toare"),
			"ar":   NewRule(CategorySuffix, "occupation", "ar"),
			"ist":  NewRule(CategorySuffix, "adherent", "ist"),
			"ime":  NewRule(CategorySuffix, "collective", "ime"),
			"ire":  NewRule(CategorySuffix, "nominalization", "ire", "are", "ere"),
			"eală": NewRule(CategorySuffix, "result", "eală"),
			"iță":  NewRule(CategorySuffix, "diminutive", "iță"),
			"uț":   NewRule(CategorySuffix, "diminutive", "uț"),
		}),
		PluralSuffixes: NewRuleSet(true, map[string]Rule{
			"i":   NewRule(CategorySuffix, "plural", "i"),
			"uri": NewRule(CategorySuffix, "plural", "uri"),
			"e":   NewRule(CategorySuffix, "plural", "e"),
		}),
		NounEndings: NewRuleSet(true, map[string]Rule{
			"ul":  NewRule(CategoryEnding, "def.masc.sg", "ul", "l", "u"),
			"a":   NewRule(CategoryEnding, "def.fem.sg", "a"),
			"lui": NewRule(CategoryEnding, "gen/dat.masc.sg", "lui"),
			"ei":  NewRule(CategoryEnding, "gen/dat.fem.sg", "ei"),
			"lor": NewRule(CategoryEnding, "gen/dat.pl", "lor"),
		}),
		VerbSuffixes: NewRuleSet(false, map[string]Rule{
			"esc":  NewRule(CategorySuffix, "present.1sg", "esc"),
			"ește": NewRule(CategorySuffix, "present.3sg", "ește"),
			"ează": NewRule(CategorySuffix, "present.3sg", "ează"),
			"at":   NewRule(CategorySuffix, "participle", "at", "t"),
			"ând":  NewRule(CategorySuffix, "gerund", "ând", "ind"),
		}),
	}
}
