package utils

import (
	"os"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("BOOKSHELF_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("BOOKSHELF_JWT_ISSUER")
	if issuer == "" {
		issuer = "bookshelf"
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: 24 * time.Hour,
	}
}

type ServerConfig struct {
	HTTPAddr string
	FeedAddr string
}

func LoadServerConfig() ServerConfig {
	httpAddr := os.Getenv("BOOKSHELF_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	feedAddr := os.Getenv("BOOKSHELF_FEED_ADDR")
	if feedAddr == "" {
		feedAddr = ":7070"
	}

	return ServerConfig{
		HTTPAddr: httpAddr,
		FeedAddr: feedAddr,
	}
}
