// Package formuladb is a persistent sqlite-backed cache in front of
// the text formula files (spec.md §5/§6): repeated searches over the
// same (family, order, kind, depth, budget) key are served from disk
// instead of re-running the DFS searcher.
package formuladb

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/santa23kit/solver/internal/cube"
	"github.com/santa23kit/solver/internal/globe"
	"github.com/santa23kit/solver/internal/wreath"
	"github.com/santa23kit/solver/internal/xerr"
)

// DB wraps a sqlite connection holding cached formula sets.
type DB struct {
	sql *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS formula_sets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	family TEXT NOT NULL,
	puzzle_order INTEGER NOT NULL,
	kind TEXT NOT NULL,
	max_depth INTEGER NOT NULL,
	max_inner_budget INTEGER NOT NULL,
	max_conjugate_depth INTEGER NOT NULL,
	cost_ceiling INTEGER NOT NULL,
	UNIQUE(family, puzzle_order, kind, max_depth, max_inner_budget, max_conjugate_depth, cost_ceiling)
);
CREATE TABLE IF NOT EXISTS formulas (
	set_id INTEGER NOT NULL REFERENCES formula_sets(id),
	move_text TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_formulas_set_id ON formulas(set_id);
`

// Open opens (creating if necessary) a formula cache database at path.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening formula cache %q: %v", xerr.MissingResource, path, err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: creating formula cache schema: %v", xerr.MissingResource, err)
	}
	return &DB{sql: sqlDB}, nil
}

// Close releases the underlying connection.
func (d *DB) Close() error { return d.sql.Close() }

// cubeKey is the lookup identity for one cube SearchConfig's result,
// per kind ("normal" or "rainbow").
type cubeKey struct {
	order, maxDepth, innerBudget, conjugateDepth, costCeiling int
}

func keyFromConfig(cfg cube.SearchConfig) cubeKey {
	return cubeKey{
		order:          cfg.Order,
		maxDepth:       cfg.MaxDepth,
		innerBudget:    cfg.MaxInnerBudget,
		conjugateDepth: cfg.MaxConjugateDepth,
		costCeiling:    cfg.CostChangeCeiling,
	}
}

func (d *DB) findSetID(family, kind string, k cubeKey) (int64, bool, error) {
	var id int64
	err := d.sql.QueryRow(
		`SELECT id FROM formula_sets WHERE family=? AND puzzle_order=? AND kind=? AND max_depth=? AND max_inner_budget=? AND max_conjugate_depth=? AND cost_ceiling=?`,
		family, k.order, kind, k.maxDepth, k.innerBudget, k.conjugateDepth, k.costCeiling,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (d *DB) loadSet(id int64) ([]*cube.Formula, error) {
	rows, err := d.sql.Query(`SELECT move_text FROM formulas WHERE set_id=?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*cube.Formula
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		f, err := cube.ParseFormula(text)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (d *DB) storeSet(family, kind string, k cubeKey, formulas []*cube.Formula) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	res, err := tx.Exec(
		`INSERT INTO formula_sets(family, puzzle_order, kind, max_depth, max_inner_budget, max_conjugate_depth, cost_ceiling) VALUES (?,?,?,?,?,?,?)`,
		family, k.order, kind, k.maxDepth, k.innerBudget, k.conjugateDepth, k.costCeiling,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	setID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO formulas(set_id, move_text) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, f := range formulas {
		if _, err := stmt.Exec(setID, f.String()); err != nil {
			stmt.Close()
			tx.Rollback()
			return err
		}
	}
	stmt.Close()
	return tx.Commit()
}

// LoadOrSearchCube returns the cached (normal, rainbow) formula sets for
// cfg, running cube.SearchFormulas and persisting the result on a
// cache miss. Formulas returned from cache have no facelet-change map
// precomputed; callers that need it should call Formula.Precompute.
func (d *DB) LoadOrSearchCube(cfg cube.SearchConfig) (cube.SearchResult, error) {
	k := keyFromConfig(cfg)
	normalID, ok, err := d.findSetID("cube", "normal", k)
	if err != nil {
		return cube.SearchResult{}, err
	}
	if ok {
		rainbowID, ok2, err := d.findSetID("cube", "rainbow", k)
		if err != nil {
			return cube.SearchResult{}, err
		}
		if ok2 {
			normal, err := d.loadSet(normalID)
			if err != nil {
				return cube.SearchResult{}, err
			}
			rainbow, err := d.loadSet(rainbowID)
			if err != nil {
				return cube.SearchResult{}, err
			}
			return cube.SearchResult{Normal: normal, Rainbow: rainbow}, nil
		}
	}

	result := cube.SearchFormulas(cfg)
	if err := d.storeSet("cube", "normal", k, result.Normal); err != nil {
		return cube.SearchResult{}, err
	}
	if err := d.storeSet("cube", "rainbow", k, result.Rainbow); err != nil {
		return cube.SearchResult{}, err
	}
	return result, nil
}

// LoadOrSearchWreath caches wreath.SearchFormulas results keyed by
// (size, max_depth).
func (d *DB) LoadOrSearchWreath(cfg wreath.SearchConfig) ([]*wreath.Formula, error) {
	k := cubeKey{order: cfg.Size, maxDepth: cfg.MaxDepth}
	id, ok, err := d.findSetID("wreath", "default", k)
	if err != nil {
		return nil, err
	}
	if ok {
		texts, err := d.loadTexts(id)
		if err != nil {
			return nil, err
		}
		out := make([]*wreath.Formula, 0, len(texts))
		for _, t := range texts {
			f, err := wreath.ParseFormula(t)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
		return out, nil
	}
	result := wreath.SearchFormulas(cfg)
	if err := d.storeTexts("wreath", "default", k, formulaStrings(result.Formulas)); err != nil {
		return nil, err
	}
	return result.Formulas, nil
}

// LoadOrSearchGlobe caches globe.SearchFormulas results keyed by
// (height*1000+width, max_depth).
func (d *DB) LoadOrSearchGlobe(cfg globe.SearchConfig) ([]*globe.Formula, error) {
	k := cubeKey{order: cfg.Height*1000 + cfg.Width, maxDepth: cfg.MaxDepth}
	id, ok, err := d.findSetID("globe", "default", k)
	if err != nil {
		return nil, err
	}
	if ok {
		texts, err := d.loadTexts(id)
		if err != nil {
			return nil, err
		}
		out := make([]*globe.Formula, 0, len(texts))
		for _, t := range texts {
			f, err := globe.ParseFormula(t)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
		return out, nil
	}
	result := globe.SearchFormulas(cfg)
	if err := d.storeTexts("globe", "default", k, formulaStrings(result.Formulas)); err != nil {
		return nil, err
	}
	return result.Formulas, nil
}

type stringer interface{ String() string }

func formulaStrings[T stringer](fs []T) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

func (d *DB) loadTexts(setID int64) ([]string, error) {
	rows, err := d.sql.Query(`SELECT move_text FROM formulas WHERE set_id=?`, setID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, rows.Err()
}

func (d *DB) storeTexts(family, kind string, k cubeKey, texts []string) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	res, err := tx.Exec(
		`INSERT INTO formula_sets(family, puzzle_order, kind, max_depth, max_inner_budget, max_conjugate_depth, cost_ceiling) VALUES (?,?,?,?,?,?,?)`,
		family, k.order, kind, k.maxDepth, k.innerBudget, k.conjugateDepth, k.costCeiling,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	setID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO formulas(set_id, move_text) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, t := range texts {
		if _, err := stmt.Exec(setID, t); err != nil {
			stmt.Close()
			tx.Rollback()
			return err
		}
	}
	stmt.Close()
	return tx.Commit()
}
