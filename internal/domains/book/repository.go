package book

import "context"

// Repository is the storage contract for the book collection. Pass-through
// to the store; failures propagate unmodified and nothing is retried.
type Repository interface {
	// List returns a page of books in insertion order. An offset past the
	// end of the collection yields an empty slice, not an error.
	List(ctx context.Context, offset, limit int) ([]Book, error)

	Create(ctx context.Context, b *Book) error
}
