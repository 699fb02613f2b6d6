package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-backend/internal/domains/book"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, offset, limit int) ([]book.Book, error) {
	query := `
		SELECT id, title, created_at
		FROM books
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0, limit)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `INSERT INTO books (id, title, created_at) VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, b.ID, b.Title, b.CreatedAt); err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}
