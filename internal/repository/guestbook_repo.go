// internal/repository/guestbook_repo.go
package repository

import (
	"context"

	"guestbook/internal/domain"
)

// GuestbookRepository defines the interface for guestbook data operations.
type GuestbookRepository interface {
	// FindAll returns every entry, newest first.
	FindAll(ctx context.Context) ([]domain.GuestbookEntry, error)
	// FindByNumber returns the entry with the given number or util.ErrNotFound.
	FindByNumber(ctx context.Context, number int64) (*domain.GuestbookEntry, error)
	// Insert persists entry and sets its Number to the assigned identity.
	Insert(ctx context.Context, entry *domain.GuestbookEntry) error
	// DeleteByNumberAndPassword removes the entry only when both match and
	// returns the number of rows removed.
	DeleteByNumberAndPassword(ctx context.Context, number int64, password string) (int64, error)
}
