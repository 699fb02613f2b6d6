package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is the domain entity, mapped 1:1 to the books table.
type Book struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
