// internal/service/guestbook_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"guestbook/internal/domain"
	"guestbook/internal/repository"
	"guestbook/internal/util"
)

// GuestbookService defines the interface for guestbook business logic.
type GuestbookService interface {
	List(ctx context.Context) ([]domain.GuestbookEntry, error)
	Get(ctx context.Context, number int64) (*domain.GuestbookEntry, error)
	Add(ctx context.Context, name, message, password string) (*domain.GuestbookEntry, error)
	Delete(ctx context.Context, number int64, password string) (bool, error)
}

// guestbookService implements the GuestbookService interface.
type guestbookService struct {
	repo repository.GuestbookRepository
}

// NewGuestbookService creates a new instance of GuestbookService.
func NewGuestbookService(repo repository.GuestbookRepository) GuestbookService {
	return &guestbookService{repo: repo}
}

// List returns all entries, newest first.
func (s *guestbookService) List(ctx context.Context) ([]domain.GuestbookEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return entries, nil
}

// Get returns a single entry.
func (s *guestbookService) Get(ctx context.Context, number int64) (*domain.GuestbookEntry, error) {
	if number <= 0 {
		return nil, util.ErrInvalidInput
	}
	entry, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", number, err)
	}
	return entry, nil
}

// Add validates and stores a new entry.
func (s *guestbookService) Add(ctx context.Context, name, message, password string) (*domain.GuestbookEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(message) == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	entry := domain.NewGuestbookEntry(name, message, password)
	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	return entry, nil
}

// Delete removes an entry when the password matches. It reports false when
// nothing was removed, either because the number is unknown or because the
// password is wrong.
func (s *guestbookService) Delete(ctx context.Context, number int64, password string) (bool, error) {
	if number <= 0 {
		return false, util.ErrInvalidInput
	}
	affected, err := s.repo.DeleteByNumberAndPassword(ctx, number, password)
	if err != nil {
		return false, fmt.Errorf("delete entry %d: %w", number, err)
	}
	return affected > 0, nil
}
