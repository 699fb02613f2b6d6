package book

import "context"

// Service currently adds no rules beyond delegation; it is the seam where
// future business logic for books attaches.
type Service interface {
	List(ctx context.Context, offset, limit int) ([]Book, error)
	Create(ctx context.Context, title string) (*Book, error)
}
