package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"minifigdb/internal/schema"

	_ "modernc.org/sqlite"
)

// Store is the sole component that touches the persistent database. It
// translates table and record operations into SQL against a SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and enables foreign
// key enforcement. The pool is capped at a single connection: SQLite allows
// one writer anyway, and a single connection keeps PRAGMA state and
// in-memory databases stable across calls.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateTable creates the table if it does not exist. Columns follow the
// attribute declaration order; a lone primary key is declared inline and a
// composite one as a trailing PRIMARY KEY clause. Every attribute with a
// foreign key gets a constraint: ON DELETE CASCADE when the attribute is
// the table's designated parent column, ON DELETE RESTRICT otherwise.
func (s *Store) CreateTable(ctx context.Context, table *schema.Table, parentColumn string) error {
	if len(table.Attributes) == 0 {
		return &schema.Error{Op: "create table", Detail: fmt.Sprintf("table %q has no attributes", table.Name)}
	}

	pks := table.PrimaryKeys()

	var columns, constraints []string
	for _, attr := range table.Attributes {
		col := attr.Name + " " + string(attr.Type)
		if attr.PrimaryKey && len(pks) == 1 {
			col += " PRIMARY KEY"
		}
		columns = append(columns, col)

		if attr.ForeignKey != nil {
			action := "ON DELETE RESTRICT"
			if parentColumn != "" && attr.Name == parentColumn {
				action = "ON DELETE CASCADE"
			}
			constraints = append(constraints, fmt.Sprintf("FOREIGN KEY(%s) REFERENCES %s(%s) %s",
				attr.Name, attr.ForeignKey.Table, attr.ForeignKey.Column, action))
		}
	}
	if len(pks) > 1 {
		constraints = append(constraints, "PRIMARY KEY ("+strings.Join(pks, ", ")+")")
	}

	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)",
		table.Name, strings.Join(append(columns, constraints...), ",\n"))

	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return &Error{Op: "create table " + table.Name, Err: err}
	}
	return nil
}

// DropTable drops the table if it exists. Foreign key enforcement is
// suspended for the statement so dependent joint tables can be dropped in
// any order, then restored.
func (s *Store) DropTable(ctx context.Context, table *schema.Table) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return &Error{Op: "drop table " + table.Name, Err: err}
	}
	_, dropErr := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table.Name)
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil && dropErr == nil {
		dropErr = err
	}
	if dropErr != nil {
		return &Error{Op: "drop table " + table.Name, Err: dropErr}
	}
	return nil
}

// InsertRecord inserts the record with insert-or-ignore semantics: a row
// whose primary key already exists is a silent no-op, which makes re-import
// and shared child rows idempotent. Constraint violations other than a
// primary key conflict still fail.
func (s *Store) InsertRecord(ctx context.Context, table *schema.Table, record schema.Record) error {
	columns := make([]string, 0, len(record.Elements))
	placeholders := make([]string, 0, len(record.Elements))
	args := make([]any, 0, len(record.Elements))
	for _, el := range record.Elements {
		columns = append(columns, el.Attribute.Name)
		placeholders = append(placeholders, "?")
		args = append(args, el.Value)
	}

	stmt := fmt.Sprintf("INSERT OR IGNORE INTO %s (%s) VALUES (%s)",
		table.Name, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	if _, err := s.db.ExecContext(ctx, stmt, args...); err != nil {
		return &Error{Op: "insert into " + table.Name, Err: err}
	}
	return nil
}

// DeleteRecord deletes the single row matching the record's primary key
// value. Deleting an absent row is a no-op.
func (s *Store) DeleteRecord(ctx context.Context, table *schema.Table, record schema.Record) error {
	pk, err := record.PrimaryKey()
	if err != nil {
		return err
	}

	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table.Name, pk.Attribute.Name)
	if _, err := s.db.ExecContext(ctx, stmt, pk.Value); err != nil {
		return &Error{Op: "delete from " + table.Name, Err: err}
	}
	return nil
}

// Records returns every row of the table, columns ordered per the table's
// attribute list.
func (s *Store) Records(ctx context.Context, table *schema.Table) ([]schema.Record, error) {
	stmt := fmt.Sprintf("SELECT %s FROM %s", columnList(table), table.Name)
	return s.queryRecords(ctx, table, stmt)
}

// QueryRecords returns every row whose attribute column equals value. The
// attribute must belong to the table.
func (s *Store) QueryRecords(ctx context.Context, table *schema.Table, attribute schema.Attribute, value any) ([]schema.Record, error) {
	if !table.HasAttribute(attribute.Name) {
		return nil, &schema.Error{Op: "query", Detail: fmt.Sprintf("table %q has no attribute %q", table.Name, attribute.Name)}
	}

	stmt := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", columnList(table), table.Name, attribute.Name)
	return s.queryRecords(ctx, table, stmt, value)
}

func (s *Store) queryRecords(ctx context.Context, table *schema.Table, stmt string, args ...any) ([]schema.Record, error) {
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, &Error{Op: "query " + table.Name, Err: err}
	}
	defer rows.Close()

	var records []schema.Record
	for rows.Next() {
		values := make([]any, len(table.Attributes))
		dests := make([]any, len(table.Attributes))
		for i := range values {
			dests[i] = &values[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, &Error{Op: "scan " + table.Name, Err: err}
		}

		elements := make([]schema.Element, 0, len(table.Attributes))
		for i, attr := range table.Attributes {
			el, err := schema.NewElement(attr, values[i])
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
		records = append(records, schema.Record{Elements: elements})
	}
	if err := rows.Err(); err != nil {
		return nil, &Error{Op: "iterate " + table.Name, Err: err}
	}
	return records, nil
}

func columnList(table *schema.Table) string {
	names := make([]string, 0, len(table.Attributes))
	for _, attr := range table.Attributes {
		names = append(names, attr.Name)
	}
	return strings.Join(names, ", ")
}
