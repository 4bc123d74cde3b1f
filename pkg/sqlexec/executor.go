// pkg/sqlexec/executor.go
package sqlexec

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

// Provider hands out pooled connections and takes them back.
// pkg/db.Pool adapts *sqlx.DB to this interface.
type Provider interface {
	Acquire(ctx context.Context) (Conn, error)
	Release(conn Conn) error
}

// Conn is a single connection checked out of a Provider.
type Conn interface {
	PrepareContext(ctx context.Context, query string) (Stmt, error)
}

// Stmt is a prepared statement. Arguments are bound positionally at execution.
type Stmt interface {
	QueryContext(ctx context.Context, args ...any) (Rows, error)
	ExecContext(ctx context.Context, args ...any) (sql.Result, error)
	Close() error
}

// Rows is a forward-only result cursor.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Executor runs one statement per call against a connection taken from its
// Provider. It keeps no state between calls and is safe for concurrent use.
type Executor struct {
	provider     Provider
	logger       *slog.Logger
	queryTimeout time.Duration
	logSQL       bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithQueryTimeout bounds every call with a deadline. Zero disables it.
func WithQueryTimeout(d time.Duration) Option {
	return func(e *Executor) { e.queryTimeout = d }
}

// WithSQLLogging logs each statement at debug level with its duration and
// argument count. Argument values are never logged.
func WithSQLLogging(enabled bool) Option {
	return func(e *Executor) { e.logSQL = enabled }
}

// NewExecutor creates an Executor. A nil logger falls back to slog.Default().
func NewExecutor(provider Provider, logger *slog.Logger, opts ...Option) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Executor{provider: provider, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// QueryForList runs stmt as a query and maps every row, in driver order.
// The result is never nil.
func QueryForList[T any](ctx context.Context, e *Executor, stmt Statement, mapper RowMapper[T]) ([]T, error) {
	return QueryForListWith(ctx, e, stmt.Build, mapper)
}

// QueryForListWith is QueryForList with a caller-supplied StatementBuilder.
func QueryForListWith[T any](ctx context.Context, e *Executor, build StatementBuilder, mapper RowMapper[T]) ([]T, error) {
	result := []T{}
	err := e.query(ctx, "query for list", build, func(rows Rows) error {
		rowNum := 0
		for rows.Next() {
			rowNum++
			v, err := mapper(rowOf(rows), rowNum)
			if err != nil {
				return err
			}
			result = append(result, v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// QueryForObject runs stmt as a query and maps the first row only. The bool
// result is false when the query produced no rows.
func QueryForObject[T any](ctx context.Context, e *Executor, stmt Statement, mapper RowMapper[T]) (T, bool, error) {
	return QueryForObjectWith(ctx, e, stmt.Build, mapper)
}

// QueryForObjectWith is QueryForObject with a caller-supplied StatementBuilder.
func QueryForObjectWith[T any](ctx context.Context, e *Executor, build StatementBuilder, mapper RowMapper[T]) (T, bool, error) {
	var (
		result T
		found  bool
	)
	err := e.query(ctx, "query for object", build, func(rows Rows) error {
		if !rows.Next() {
			return rows.Err()
		}
		v, err := mapper(rowOf(rows), 1)
		if err != nil {
			return err
		}
		result, found = v, true
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return result, found, nil
}

// Update runs stmt as an insert, update or delete and returns the number of
// affected rows reported by the driver.
func (e *Executor) Update(ctx context.Context, stmt Statement) (int64, error) {
	return e.UpdateWith(ctx, stmt.Build)
}

// UpdateWith is Update with a caller-supplied StatementBuilder.
func (e *Executor) UpdateWith(ctx context.Context, build StatementBuilder) (int64, error) {
	const op = "update"
	var affected int64
	err := e.withStatement(ctx, op, build, func(ctx context.Context, ps *PreparedStatement) error {
		res, err := ps.Stmt.ExecContext(ctx, ps.Args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

func (e *Executor) query(ctx context.Context, op string, build StatementBuilder, consume func(Rows) error) error {
	return e.withStatement(ctx, op, build, func(ctx context.Context, ps *PreparedStatement) error {
		rows, err := ps.Stmt.QueryContext(ctx, ps.Args...)
		if err != nil {
			return err
		}
		defer e.closeQuietly("rows", rows.Close)
		return consume(rows)
	})
}

// withStatement owns the connection and statement lifecycle. Deferred
// cleanups run cursor, then statement, then connection, and each one runs
// regardless of the others.
func (e *Executor) withStatement(ctx context.Context, op string, build StatementBuilder, run func(context.Context, *PreparedStatement) error) (err error) {
	if e.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.queryTimeout)
		defer cancel()
	}

	var (
		start   = time.Now()
		sqlText string
		argc    int
	)
	defer func() {
		if err != nil {
			err = wrap(op, sqlText, err)
		}
		if e.logSQL {
			e.logger.Debug("sql executed", "op", op, "sql", sqlText, "argc", argc, "duration", time.Since(start), "error", err)
		}
	}()

	conn, err := e.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	defer e.closeQuietly("connection", func() error { return e.provider.Release(conn) })

	ps, err := build(ctx, conn)
	if err != nil {
		return err
	}
	if ps == nil || ps.Stmt == nil {
		return errNoStatement
	}
	sqlText, argc = ps.SQL, len(ps.Args)
	defer e.closeQuietly("statement", ps.Stmt.Close)

	return run(ctx, ps)
}

func (e *Executor) closeQuietly(resource string, closeFn func() error) {
	if err := closeFn(); err != nil {
		e.logger.Warn("failed to release resource", "resource", resource, "error", err)
	}
}
