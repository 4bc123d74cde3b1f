// pkg/db/pool.go
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"guestbook/pkg/sqlexec"
)

// Pool adapts a *sqlx.DB connection pool to sqlexec.Provider.
// Each Acquire checks out one dedicated connection; Release hands it back.
type Pool struct {
	db *sqlx.DB
}

// NewPool creates a Pool over db.
func NewPool(db *sqlx.DB) *Pool {
	return &Pool{db: db}
}

// Acquire checks a connection out of the pool.
func (p *Pool) Acquire(ctx context.Context) (sqlexec.Conn, error) {
	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &pooledConn{conn: conn}, nil
}

// Release returns a connection obtained from Acquire to the pool.
func (p *Pool) Release(conn sqlexec.Conn) error {
	pc, ok := conn.(*pooledConn)
	if !ok {
		return fmt.Errorf("release: connection %T was not acquired from this pool", conn)
	}
	return pc.conn.Close()
}

type pooledConn struct {
	conn *sqlx.Conn
}

// PrepareContext rebinds '?' placeholders to the driver's bind style.
func (c *pooledConn) PrepareContext(ctx context.Context, query string) (sqlexec.Stmt, error) {
	stmt, err := c.conn.PreparexContext(ctx, c.conn.Rebind(query))
	if err != nil {
		return nil, err
	}
	return &pooledStmt{stmt: stmt}, nil
}

type pooledStmt struct {
	stmt *sqlx.Stmt
}

func (s *pooledStmt) QueryContext(ctx context.Context, args ...any) (sqlexec.Rows, error) {
	rows, err := s.stmt.QueryxContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *pooledStmt) ExecContext(ctx context.Context, args ...any) (sql.Result, error) {
	return s.stmt.ExecContext(ctx, args...)
}

func (s *pooledStmt) Close() error {
	return s.stmt.Close()
}
