// internal/domain/guestbook.go
package domain

import "time"

// GuestbookEntry is a single message left in the guestbook.
type GuestbookEntry struct {
	Number    int64     `db:"no" json:"no"`              // Primary key, assigned by the database
	Name      string    `db:"name" json:"name"`          // Author name
	Message   string    `db:"message" json:"message"`    // Message body
	Password  string    `db:"password" json:"-"`         // Compared on delete, never serialized
	CreatedAt time.Time `db:"reg_date" json:"created_at"` // Timestamp of creation
}

// NewGuestbookEntry creates a new GuestbookEntry. Number is assigned on insert.
func NewGuestbookEntry(name, message, password string) *GuestbookEntry {
	return &GuestbookEntry{
		Name:      name,
		Message:   message,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
}
