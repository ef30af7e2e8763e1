package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	DSN string
}

func DefaultConfig() Config {
	// env override for docker compose / CI
	if dsn := os.Getenv("BOOKSHELF_DB_DSN"); dsn != "" {
		return Config{DSN: dsn}
	}

	// local default
	return Config{
		DSN: "host=127.0.0.1 port=5432 user=bookshelf password=bookshelf dbname=bookshelf sslmode=disable",
	}
}

func Open(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return pool, nil
}

func MustOpen(ctx context.Context, cfg Config) *pgxpool.Pool {
	pool, err := Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	return pool
}
