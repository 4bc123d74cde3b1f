// pkg/sqlexec/statement.go
package sqlexec

import "context"

// Statement is SQL text with positional '?' placeholders and the arguments
// bound to them, in order.
type Statement struct {
	SQL  string
	Args []any
}

// NewStatement creates a Statement.
func NewStatement(sql string, args ...any) Statement {
	return Statement{SQL: sql, Args: args}
}

// PreparedStatement is a statement prepared on a connection together with the
// arguments it will be executed with.
type PreparedStatement struct {
	SQL  string
	Stmt Stmt
	Args []any
}

// StatementBuilder prepares a statement on an open connection. The Executor
// owns the returned statement and closes it.
type StatementBuilder func(ctx context.Context, conn Conn) (*PreparedStatement, error)

// Build prepares s on conn. It is the default StatementBuilder.
func (s Statement) Build(ctx context.Context, conn Conn) (*PreparedStatement, error) {
	stmt, err := conn.PrepareContext(ctx, s.SQL)
	if err != nil {
		return nil, &DataAccessError{Op: "prepare", SQL: s.SQL, Err: err}
	}
	return &PreparedStatement{SQL: s.SQL, Stmt: stmt, Args: s.Args}, nil
}
