// pkg/sqlexec/errors.go
package sqlexec

import (
	"errors"
	"fmt"
)

// ErrDataAccess matches every error returned by an Executor.
var ErrDataAccess = errors.New("data access failure")

var errNoStatement = errors.New("sqlexec: statement builder returned no statement")

// DataAccessError is the only error kind an Executor returns. It wraps the
// driver error that caused it.
type DataAccessError struct {
	Op  string
	SQL string
	Err error
}

func (e *DataAccessError) Error() string {
	if e.SQL == "" {
		return fmt.Sprintf("%s: %s: %v", ErrDataAccess, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s %q: %v", ErrDataAccess, e.Op, e.SQL, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

func (e *DataAccessError) Is(target error) bool { return target == ErrDataAccess }

func wrap(op, sql string, err error) error {
	var dae *DataAccessError
	if errors.As(err, &dae) {
		return err
	}
	return &DataAccessError{Op: op, SQL: sql, Err: err}
}
