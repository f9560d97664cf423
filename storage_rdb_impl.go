package morfem

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(
		"mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbConfig.User, dbConfig.Password, dbConfig.Addr, dbConfig.Port, dbConfig.DB),
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

type DBConfig struct {
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

// StorageRdbImpl loads and saves rule datasets in MySQL. See schema.sql for
// the table layout.
type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

type ruleTableRow struct {
	Name     string `db:"name"`
	Optional bool   `db:"optional"`
}

type ruleRow struct {
	ID        int64  `db:"id"`
	TableName string `db:"table_name"`
	Name      string `db:"name"`
	Meaning   string `db:"meaning"`
}

type allomorphRow struct {
	RuleID  int64  `db:"rule_id"`
	Surface string `db:"surface"`
}

func (s *StorageRdbImpl) GetRuleTable() (RuleTable, error) {
	var tableRows []ruleTableRow
	if err := s.DB.Select(&tableRows, `select name, optional from rule_tables`); err != nil {
		return RuleTable{}, fmt.Errorf("select rule_tables: %w", err)
	}
	optional := make(map[string]bool, len(tableRows))
	for _, r := range tableRows {
		optional[r.Name] = r.Optional
	}

	var ruleRows []ruleRow
	if err := s.DB.Select(&ruleRows, `select id, table_name, name, meaning from rules`); err != nil {
		return RuleTable{}, fmt.Errorf("select rules: %w", err)
	}
	if len(ruleRows) == 0 {
		return RuleTable{}, fmt.Errorf("no rules stored: %w", sql.ErrNoRows)
	}

	ruleIDs := make([]int64, len(ruleRows))
	for i, r := range ruleRows {
		ruleIDs[i] = r.ID
	}
	query, args, err := sqlx.In(`select rule_id, surface from allomorphs where rule_id in (?)`, ruleIDs)
	if err != nil {
		return RuleTable{}, err
	}
	var allomorphRows []allomorphRow
	if err := s.DB.Select(&allomorphRows, query, args...); err != nil {
		return RuleTable{}, fmt.Errorf("select allomorphs: %w", err)
	}
	allomorphs := make(map[int64][]string, len(ruleRows))
	for _, a := range allomorphRows {
		allomorphs[a.RuleID] = append(allomorphs[a.RuleID], a.Surface)
	}

	sets := make(map[string]map[string]Rule)
	for _, r := range ruleRows {
		surfaces := allomorphs[r.ID]
		if len(surfaces) == 0 {
			return RuleTable{}, fmt.Errorf("rule %s.%s: empty allomorph set", r.TableName, r.Name)
		}
		if sets[r.TableName] == nil {
			sets[r.TableName] = make(map[string]Rule)
		}
		sets[r.TableName][r.Name] = NewRule(categoryForTable(r.TableName), r.Meaning, surfaces...)
	}

	newSet := func(name string) RuleSet {
		return NewRuleSet(optional[name], sets[name])
	}
	return RuleTable{
		Prefixes:       newSet("prefixes"),
		NounSuffixes:   newSet("noun_suffixes"),
		PluralSuffixes: newSet("plural_suffixes"),
		NounEndings:    newSet("noun_endings"),
		VerbSuffixes:   newSet("verb_suffixes"),
	}, nil
}

// SaveRuleTable persists a full dataset, for example to seed a database from
// NewRomanianRuleTable. Rows that already exist are left in place.
func (s *StorageRdbImpl) SaveRuleTable(table RuleTable) error {
	for _, t := range []struct {
		name string
		set  RuleSet
	}{
		{"prefixes", table.Prefixes},
		{"noun_suffixes", table.NounSuffixes},
		{"plural_suffixes", table.PluralSuffixes},
		{"noun_endings", table.NounEndings},
		{"verb_suffixes", table.VerbSuffixes},
	} {
		if err := s.saveRuleSet(t.name, t.set); err != nil {
			return fmt.Errorf("save table %s: %w", t.name, err)
		}
	}
	return nil
}

func (s *StorageRdbImpl) saveRuleSet(tableName string, set RuleSet) error {
	if _, err := s.DB.NamedExec(
		`insert into rule_tables (name, optional) values (:name, :optional)
		on duplicate key update optional = :optional`,
		map[string]interface{}{
			"name":     tableName,
			"optional": set.Optional,
		}); err != nil {
		return err
	}

	for name, rule := range set.Rules {
		res, err := s.DB.NamedExec(
			`insert into rules (table_name, name, meaning) values (:table_name, :name, :meaning)`,
			map[string]interface{}{
				"table_name": tableName,
				"name":       name,
				"meaning":    rule.Meaning,
			})
		if err != nil {
			if mysqlErr, ok := err.(*mysql.MySQLError); ok && mysqlErr.Number == 1062 {
				continue
			}
			return err
		}
		ruleID, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for _, surface := range rule.Allomorphs {
			if _, err := s.DB.NamedExec(
				`insert into allomorphs (rule_id, surface) values (:rule_id, :surface)`,
				map[string]interface{}{
					"rule_id": ruleID,
					"surface": surface,
				}); err != nil {
				return err
			}
		}
	}
	return nil
}

func categoryForTable(tableName string) Category {
	switch tableName {
	case "prefixes":
		return CategoryPrefix
	case "noun_endings":
		return CategoryEnding
	default:
		return CategorySuffix
	}
}
