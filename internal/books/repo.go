package books

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf/pkg/models"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]models.Book, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT isbn, amazon_url, author, language, pages, publisher, title, year
		FROM books
		ORDER BY isbn
	`)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	out := make([]models.Book, 0, 16)
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(
			&b.ISBN, &b.AmazonURL, &b.Author, &b.Language, &b.Pages, &b.Publisher, &b.Title, &b.Year,
		); err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT isbn, amazon_url, author, language, pages, publisher, title, year
		FROM books
		WHERE isbn = $1
	`, isbn)

	var b models.Book
	if err := row.Scan(
		&b.ISBN, &b.AmazonURL, &b.Author, &b.Language, &b.Pages, &b.Publisher, &b.Title, &b.Year,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("scan getByISBN: %w", err)
	}
	return &b, nil
}

// Create inserts one row. A duplicate isbn comes back as the driver's
// *pgconn.PgError (constraint books_pkey), deliberately not wrapped.
func (r *Repo) Create(ctx context.Context, b models.Book) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO books (isbn, amazon_url, author, language, pages, publisher, title, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, b.ISBN, b.AmazonURL, b.Author, b.Language, b.Pages, b.Publisher, b.Title, b.Year)
	return err
}

// Update overwrites every field of the row at isbn; the payload isbn may
// differ, which re-keys the record subject to the same constraint.
func (r *Repo) Update(ctx context.Context, isbn string, b models.Book) error {
	cmd, err := r.Pool.Exec(ctx, `
		UPDATE books
		SET isbn = $1, amazon_url = $2, author = $3, language = $4,
		    pages = $5, publisher = $6, title = $7, year = $8
		WHERE isbn = $9
	`, b.ISBN, b.AmazonURL, b.Author, b.Language, b.Pages, b.Publisher, b.Title, b.Year, isbn)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBookNotFound
	}
	return nil
}
