// internal/repository/sqlstore/schema.go
package sqlstore

import (
	"context"
	"fmt"

	"guestbook/pkg/db"
	"guestbook/pkg/sqlexec"
)

// Bootstrap DDL for development and test databases. Production schemas are
// managed outside this service.
var createTable = map[string]string{
	db.DriverPostgres: `CREATE TABLE IF NOT EXISTS guestbook (
		no       BIGSERIAL PRIMARY KEY,
		name     VARCHAR(100) NOT NULL,
		message  TEXT NOT NULL,
		password VARCHAR(64) NOT NULL,
		reg_date TIMESTAMPTZ NOT NULL
	)`,
	db.DriverMySQL: `CREATE TABLE IF NOT EXISTS guestbook (
		no       BIGINT AUTO_INCREMENT PRIMARY KEY,
		name     VARCHAR(100) NOT NULL,
		message  TEXT NOT NULL,
		password VARCHAR(64) NOT NULL,
		reg_date DATETIME NOT NULL
	) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci`,
	db.DriverSQLite: `CREATE TABLE IF NOT EXISTS guestbook (
		no       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		message  TEXT NOT NULL,
		password TEXT NOT NULL,
		reg_date DATETIME NOT NULL
	)`,
}

// EnsureSchema creates the guestbook table if it does not exist.
func EnsureSchema(ctx context.Context, exec *sqlexec.Executor, driver string) error {
	ddl, ok := createTable[driver]
	if !ok {
		return fmt.Errorf("no guestbook schema for driver %q", driver)
	}
	if _, err := exec.Update(ctx, sqlexec.NewStatement(ddl)); err != nil {
		return fmt.Errorf("failed to create guestbook table: %w", err)
	}
	return nil
}
