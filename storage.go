package morfem

// RuleStorage supplies a rule dataset. The engine never mutates what it
// returns; a returned RuleTable must be safe to share across calls.
type RuleStorage interface {
	GetRuleTable() (RuleTable, error)
}

// StaticRuleStorage serves a table that was built in code.
type StaticRuleStorage struct {
	table RuleTable
}

func NewStaticRuleStorage(table RuleTable) StaticRuleStorage {
	return StaticRuleStorage{table: table}
}

func (s StaticRuleStorage) GetRuleTable() (RuleTable, error) {
	return s.table, nil
}
