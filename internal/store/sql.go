package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQL is a Store on top of sqlx. The default DSN is a private in-memory
// SQLite database, so it is as volatile as Memory.
type SQL struct {
	db *sqlx.DB
}

// OpenSQL opens dsn (":memory:" when empty) and creates the schema.
func OpenSQL(dsn string) (*SQL, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	xdb, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// every new connection to :memory: is a fresh, empty database
	xdb.SetMaxOpenConns(1)
	xdb.SetMaxIdleConns(1)
	xdb.SetConnMaxLifetime(0)
	if err := xdb.Ping(); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	s := &SQL{db: xdb}
	if err := s.ensureSchema(context.Background()); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQL) Close() error { return s.db.Close() }

func (s *SQL) List(ctx context.Context) ([]Resource, error) {
	out := []Resource{}
	if err := s.db.SelectContext(ctx, &out, "SELECT id, name, description FROM resources ORDER BY id ASC"); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return out, nil
}

func (s *SQL) Get(ctx context.Context, id int64) (Resource, error) {
	var r Resource
	err := s.db.GetContext(ctx, &r, "SELECT id, name, description FROM resources WHERE id=?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Resource{}, ErrNotFound
	}
	if err != nil {
		return Resource{}, fmt.Errorf("get resource %d: %w", id, err)
	}
	return r, nil
}

func (s *SQL) Create(ctx context.Context, name, description string) (Resource, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO resources (name, description) VALUES (?,?)", name, description)
	if err != nil {
		return Resource{}, fmt.Errorf("insert resource: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Resource{}, fmt.Errorf("insert resource: %w", err)
	}
	return Resource{ID: id, Name: name, Description: description}, nil
}

func (s *SQL) Update(ctx context.Context, id int64, name, description string) (Resource, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE resources SET name=?, description=? WHERE id=?", name, description, id)
	if err != nil {
		return Resource{}, fmt.Errorf("update resource %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Resource{}, fmt.Errorf("update resource %d: %w", id, err)
	}
	if n == 0 {
		return Resource{}, ErrNotFound
	}
	return Resource{ID: id, Name: name, Description: description}, nil
}

func (s *SQL) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM resources WHERE id=?", id)
	if err != nil {
		return fmt.Errorf("delete resource %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete resource %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AUTOINCREMENT keeps ids monotonic across deletes; plain rowid may reuse the max.
func (s *SQL) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS resources (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
