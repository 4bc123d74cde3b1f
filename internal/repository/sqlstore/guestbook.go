// internal/repository/sqlstore/guestbook.go
package sqlstore

import (
	"context"
	"fmt"
	"time"

	"guestbook/internal/domain"
	"guestbook/internal/repository"
	"guestbook/internal/util"
	"guestbook/pkg/sqlexec"
)

const (
	selectEntries = `SELECT no, name, message, password, reg_date FROM guestbook`

	findAllQuery      = selectEntries + ` ORDER BY no DESC`
	findByNumberQuery = selectEntries + ` WHERE no = ?`
	insertQuery       = `INSERT INTO guestbook (name, message, password, reg_date)
              VALUES (?, ?, ?, ?) RETURNING no`
	deleteQuery = `DELETE FROM guestbook WHERE no = ? AND password = ?`
)

var entryMapper = sqlexec.StructMapper[domain.GuestbookEntry]()

// GuestbookRepository implements repository.GuestbookRepository on top of a
// sqlexec.Executor.
type GuestbookRepository struct {
	exec *sqlexec.Executor
}

// NewGuestbookRepository creates a new GuestbookRepository.
func NewGuestbookRepository(exec *sqlexec.Executor) repository.GuestbookRepository {
	return &GuestbookRepository{exec: exec}
}

// FindAll retrieves every entry ordered by descending number.
func (r *GuestbookRepository) FindAll(ctx context.Context) ([]domain.GuestbookEntry, error) {
	entries, err := sqlexec.QueryForList(ctx, r.exec, sqlexec.NewStatement(findAllQuery), entryMapper)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guestbook entries: %w", err)
	}
	return entries, nil
}

// FindByNumber retrieves a single entry by its number.
func (r *GuestbookRepository) FindByNumber(ctx context.Context, number int64) (*domain.GuestbookEntry, error) {
	entry, found, err := sqlexec.QueryForObject(ctx, r.exec, sqlexec.NewStatement(findByNumberQuery, number), entryMapper)
	if err != nil {
		return nil, fmt.Errorf("failed to get guestbook entry %d: %w", number, err)
	}
	if !found {
		return nil, util.ErrNotFound
	}
	return &entry, nil
}

// Insert stores a new entry and records the number the database assigned.
func (r *GuestbookRepository) Insert(ctx context.Context, entry *domain.GuestbookEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	stmt := sqlexec.NewStatement(insertQuery, entry.Name, entry.Message, entry.Password, entry.CreatedAt)
	number, found, err := sqlexec.QueryForObject(ctx, r.exec, stmt, sqlexec.ScalarMapper[int64]())
	if err != nil {
		return fmt.Errorf("failed to create guestbook entry: %w", err)
	}
	if !found {
		return fmt.Errorf("failed to create guestbook entry: no identity returned")
	}
	entry.Number = number
	return nil
}

// DeleteByNumberAndPassword deletes the entry when number and password both
// match. Zero rows affected covers both a wrong password and a missing entry.
func (r *GuestbookRepository) DeleteByNumberAndPassword(ctx context.Context, number int64, password string) (int64, error) {
	affected, err := r.exec.Update(ctx, sqlexec.NewStatement(deleteQuery, number, password))
	if err != nil {
		return 0, fmt.Errorf("failed to delete guestbook entry %d: %w", number, err)
	}
	return affected, nil
}
