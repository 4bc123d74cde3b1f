// pkg/sqlexec/row.go
package sqlexec

import "errors"

// Row is the current row of a cursor.
type Row interface {
	Scan(dest ...any) error
}

// RowMapper converts one row into a value. rowNum is the 1-based position of
// the row in the result.
type RowMapper[T any] func(row Row, rowNum int) (T, error)

type structScanner interface {
	StructScan(dest any) error
}

var errStructScanUnsupported = errors.New("sqlexec: cursor does not support struct scanning")

type cursorRow struct {
	rows Rows
}

func (r cursorRow) Scan(dest ...any) error { return r.rows.Scan(dest...) }

func (r cursorRow) StructScan(dest any) error {
	ss, ok := r.rows.(structScanner)
	if !ok {
		return errStructScanUnsupported
	}
	return ss.StructScan(dest)
}

func rowOf(rows Rows) Row { return cursorRow{rows: rows} }

// StructMapper maps columns onto the fields of T by their `db` tags.
// It requires a cursor that supports struct scanning, such as *sqlx.Rows.
func StructMapper[T any]() RowMapper[T] {
	return func(row Row, _ int) (T, error) {
		var v T
		ss, ok := row.(structScanner)
		if !ok {
			return v, errStructScanUnsupported
		}
		err := ss.StructScan(&v)
		return v, err
	}
}

// ScalarMapper maps a single-column row onto T.
func ScalarMapper[T any]() RowMapper[T] {
	return func(row Row, _ int) (T, error) {
		var v T
		err := row.Scan(&v)
		return v, err
	}
}
