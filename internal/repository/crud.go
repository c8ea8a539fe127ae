package repository

// crud.go implements the one CRUD repository shared by all six inventory
// entities.  Instead of six hand-written near-copies, each entity supplies a
// Schema describing its table, its mutable columns and how a row scans; the
// Repo methods build the SQL from that description.  The audit columns
// (creado_por / actualizado_por) and the server-side timestamps
// (fecha_creacion / fecha_actualizacion) are opt-in flags because the
// smaller tables do not carry them.

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Scanner is the subset of sql.Row / sql.Rows a schema's Scan func needs.
type Scanner interface {
	Scan(dest ...any) error
}

// Schema describes how one entity maps onto its table.
type Schema[T any] struct {
	Table   string // table name used for INSERT/UPDATE/DELETE
	Alias   string // alias of the base table inside Select
	Select  string // enriched SELECT ... FROM ... JOIN ..., no WHERE clause
	OrderBy string // optional ORDER BY body for List; empty keeps insertion order
	Columns []string // mutable columns, in the order Args yields their values

	// Args returns the values for Columns taken from an entity; Scan fills
	// an entity from one row of Select.  Both must stay in sync with the
	// column lists above.
	Args func(e *T) []any
	Scan func(s Scanner, e *T) error

	Audit  bool // stamp creado_por / actualizado_por from the acting user
	Stamps bool // maintain fecha_creacion / fecha_actualizacion server-side
}

// Repo is a generic CRUD repository over a single table.  All methods take a
// context so callers control cancellation; the pooled connection is acquired
// per statement and released on every exit path by database/sql itself.
type Repo[T any] struct {
	db     *sql.DB
	schema Schema[T]
}

// NewRepo constructs a Repo for one entity schema.  Dependency injection of
// the DB handle keeps the repository testable.
func NewRepo[T any](db *sql.DB, schema Schema[T]) *Repo[T] {
	return &Repo[T]{db: db, schema: schema}
}

// List returns all rows enriched with their parent joins.  Ordering is
// insertion order unless the schema specifies otherwise.
func (r *Repo[T]) List(ctx context.Context) ([]*T, error) {
	q := r.schema.Select
	if r.schema.OrderBy != "" {
		q += " ORDER BY " + r.schema.OrderBy
	}
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		e := new(T)
		if err := r.schema.Scan(rows, e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single enriched row by primary key.  It returns ErrNotFound
// when no row matches.
func (r *Repo[T]) Get(ctx context.Context, id uint64) (*T, error) {
	q := r.schema.Select + " WHERE " + r.schema.Alias + ".id = ?"
	e := new(T)
	if err := r.schema.Scan(r.db.QueryRowContext(ctx, q, id), e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create inserts a new row and returns its generated id.  actor is the id of
// the authenticated user performing the write; a nil actor is tolerated and
// stored as NULL.
func (r *Repo[T]) Create(ctx context.Context, e *T, actor *uint64) (uint64, error) {
	args := r.schema.Args(e)
	if r.schema.Audit {
		args = append(args, actor)
	}
	res, err := r.db.ExecContext(ctx, r.insertQuery(), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces all mutable fields of a row (full replace, not a patch)
// and returns ErrNotFound when the id matches nothing.
func (r *Repo[T]) Update(ctx context.Context, id uint64, e *T, actor *uint64) error {
	args := r.schema.Args(e)
	if r.schema.Audit {
		args = append(args, actor)
	}
	args = append(args, id)
	res, err := r.db.ExecContext(ctx, r.updateQuery(), args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a row by primary key (hard delete, no tombstone) and
// returns ErrNotFound when the id matches nothing, so deleting twice reports
// not found on the second call.
func (r *Repo[T]) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+r.schema.Table+" WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo[T]) insertQuery() string {
	cols := append([]string(nil), r.schema.Columns...)
	vals := make([]string, len(cols))
	for i := range vals {
		vals[i] = "?"
	}
	if r.schema.Audit {
		cols = append(cols, "creado_por")
		vals = append(vals, "?")
	}
	if r.schema.Stamps {
		cols = append(cols, "fecha_creacion")
		vals = append(vals, "NOW()")
	}
	return "INSERT INTO " + r.schema.Table +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(vals, ", ") + ")"
}

func (r *Repo[T]) updateQuery() string {
	sets := make([]string, 0, len(r.schema.Columns)+2)
	for _, c := range r.schema.Columns {
		sets = append(sets, c+" = ?")
	}
	if r.schema.Audit {
		sets = append(sets, "actualizado_por = ?")
	}
	if r.schema.Stamps {
		sets = append(sets, "fecha_actualizacion = NOW()")
	}
	return "UPDATE " + r.schema.Table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
}
