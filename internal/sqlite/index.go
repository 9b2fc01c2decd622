package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// DBFileName is the index database created inside the data directory.
const DBFileName = "pokedex.db"

// filterLimit caps the number of results when present in a filter.
const filterLimit = "limit"

// Index is a SQLite copy of a roster used for filtering and aggregation.
type Index struct {
	db   *sql.DB
	path string
}

// Open creates a fresh index. With a non-empty dataDir the database lives
// at dataDir/pokedex.db and any previous file is replaced; otherwise the
// index is in memory.
func Open(dataDir string) (*Index, error) {
	dsn := ":memory:"
	var path string
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
		path = filepath.Join(dataDir, DBFileName)
		// The index is rebuilt from the roster on every open.
		_ = os.Remove(path)
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	// A single connection keeps an in-memory database alive and shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Index{db: db, path: path}, nil
}

// Path returns the database file path, or "" for an in-memory index.
func (x *Index) Path() string {
	return x.path
}

// Close releases the database. Idempotent.
func (x *Index) Close() error {
	if x.db == nil {
		return nil
	}
	err := x.db.Close()
	x.db = nil
	return err
}

// Load replaces the index contents with pokemon. Loading is transactional:
// either every record is indexed or the previous contents remain.
func (x *Index) Load(pokemon []*types.Pokemon) error {
	tx, err := x.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM abilities"); err != nil {
		return fmt.Errorf("clearing abilities: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM pokemon"); err != nil {
		return fmt.Errorf("clearing pokemon: %w", err)
	}

	insertPokemon, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO pokemon (seq, %s) VALUES (?, %s)",
		strings.Join(pokemonColumns, ", "),
		placeholders(len(pokemonColumns)),
	))
	if err != nil {
		return fmt.Errorf("preparing pokemon insert: %w", err)
	}
	defer insertPokemon.Close()

	insertAbility, err := tx.Prepare("INSERT INTO abilities (seq, ordinal, name) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing ability insert: %w", err)
	}
	defer insertAbility.Close()

	for i, p := range pokemon {
		seq := i + 1
		if _, err := insertPokemon.Exec(seq,
			p.Name, p.NationalNumber, p.Type, p.Species, p.Height, p.Weight,
			p.Total, p.HP, p.Attack, p.Defense, p.SpAttack, p.SpDefense, p.Speed,
		); err != nil {
			return fmt.Errorf("indexing %q: %w", p.Name, err)
		}
		for ord, a := range p.Abilities {
			if _, err := insertAbility.Exec(seq, ord, a); err != nil {
				return fmt.Errorf("indexing ability %q of %q: %w", a, p.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// Count returns the number of indexed records.
func (x *Index) Count() (int, error) {
	var n int
	if err := x.db.QueryRow("SELECT COUNT(*) FROM pokemon").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting pokemon: %w", err)
	}
	return n, nil
}

// Fetch returns the records matching every filter entry, in roster order.
// Keys are roster field names (matched ignoring case) or "limit". Values
// must be strings, numbers, or booleans; Abilities matches any one ability.
// An empty filter returns every record.
func (x *Index) Fetch(filter map[string]any) ([]*types.Pokemon, error) {
	query := "SELECT seq, " + strings.Join(pokemonColumns, ", ") + " FROM pokemon"
	var conditions []string
	var args []any
	limit := 0

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := filter[key]
		if strings.EqualFold(key, filterLimit) {
			l, ok := toInt(val)
			if !ok {
				return nil, fmt.Errorf("%w: %s", types.ErrInvalidFilter, key)
			}
			limit = l
			continue
		}

		field, ok := types.LookupField(key)
		if !ok {
			return nil, fmt.Errorf("%w: filter key %q", types.ErrInvalidField, key)
		}
		switch val.(type) {
		case string, bool, int, int64, float64:
		default:
			return nil, fmt.Errorf("%w: %s", types.ErrInvalidFilter, key)
		}

		if !slices.Contains(types.StatFields, field) {
			val = textValue(val)
		}
		if field == types.FieldAbilities {
			conditions = append(conditions, "seq IN (SELECT seq FROM abilities WHERE name = ?)")
		} else {
			conditions = append(conditions, filterColumns[field]+" = ?")
		}
		args = append(args, val)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY seq"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := x.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching pokemon: %w", err)
	}

	results := []*types.Pokemon{}
	bySeq := make(map[int]*types.Pokemon)
	for rows.Next() {
		var seq int
		p := &types.Pokemon{}
		if err := rows.Scan(&seq,
			&p.Name, &p.NationalNumber, &p.Type, &p.Species, &p.Height, &p.Weight,
			&p.Total, &p.HP, &p.Attack, &p.Defense, &p.SpAttack, &p.SpDefense, &p.Speed,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning pokemon: %w", err)
		}
		results = append(results, p)
		bySeq[seq] = p
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if err := x.loadAbilities(bySeq); err != nil {
		return nil, err
	}
	return results, nil
}

// loadAbilities fills Abilities for the records keyed by seq. It runs after
// the pokemon rows are closed because the index holds one connection.
func (x *Index) loadAbilities(bySeq map[int]*types.Pokemon) error {
	if len(bySeq) == 0 {
		return nil
	}
	rows, err := x.db.Query("SELECT seq, name FROM abilities ORDER BY seq, ordinal")
	if err != nil {
		return fmt.Errorf("fetching abilities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seq int
		var name string
		if err := rows.Scan(&seq, &name); err != nil {
			return fmt.Errorf("scanning ability: %w", err)
		}
		if p, ok := bySeq[seq]; ok {
			p.Abilities = append(p.Abilities, name)
		}
	}
	return rows.Err()
}

// TypeCounts returns the number of records per primary type, ordered by
// type name.
func (x *Index) TypeCounts() ([]types.TypeCount, error) {
	rows, err := x.db.Query("SELECT type, COUNT(*) FROM pokemon GROUP BY type ORDER BY type")
	if err != nil {
		return nil, fmt.Errorf("counting types: %w", err)
	}
	defer rows.Close()

	out := []types.TypeCount{}
	for rows.Next() {
		var tc types.TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning type count: %w", err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

// placeholders returns n comma-separated "?" markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// textValue renders a filter value for a TEXT column so that 123 matches
// "123" rather than "123.0".
func textValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(n)
	}
}

// toInt converts numeric filter values to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
