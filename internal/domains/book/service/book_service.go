package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/book"
)

type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context, offset, limit int) ([]book.Book, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *bookService) Create(ctx context.Context, title string) (*book.Book, error) {
	b := &book.Book{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return b, nil
}
