package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf/pkg/database"
)

func main() {
	booksIn := flag.String("books", "data/books.csv", "input CSV path for books")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool := database.MustOpen(ctx, database.DefaultConfig())
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	n, err := importBooks(ctx, pool, *booksIn)
	if err != nil {
		log.Fatalf("import books failed: %v", err)
	}

	log.Printf("imported %d books from %s", n, *booksIn)
}

func importBooks(ctx context.Context, pool *pgxpool.Pool, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return 0, err
	}

	const upsert = `
		INSERT INTO books (isbn, amazon_url, author, language, pages, publisher, title, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (isbn) DO UPDATE SET
			amazon_url = excluded.amazon_url,
			author = excluded.author,
			language = excluded.language,
			pages = excluded.pages,
			publisher = excluded.publisher,
			title = excluded.title,
			year = excluded.year
	`

	count := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if len(row) == 0 {
			continue
		}

		isbn := valueAt(header, row, "isbn")
		title := valueAt(header, row, "title")
		if isbn == "" || title == "" {
			continue
		}

		pages, err := parseInt(valueAt(header, row, "pages"))
		if err != nil {
			return count, fmt.Errorf("parse pages for %s: %w", isbn, err)
		}
		year, err := parseInt(valueAt(header, row, "year"))
		if err != nil {
			return count, fmt.Errorf("parse year for %s: %w", isbn, err)
		}

		if _, err := pool.Exec(
			ctx,
			upsert,
			isbn,
			valueAt(header, row, "amazon_url"),
			valueAt(header, row, "author"),
			valueAt(header, row, "language"),
			pages,
			valueAt(header, row, "publisher"),
			title,
			year,
		); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return n, nil
}
