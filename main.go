package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"gatehouse/config"
	"gatehouse/handlers"
	"gatehouse/store"
	"gatehouse/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Println("environment: ", cfg.Env)

	// Initialize the database connection pool
	dbPool, pgErr := store.Open(cfg.DatabaseURL)
	if pgErr != nil {
		log.Fatalf("Failed to connect to database: %v", pgErr)
	}
	defer dbPool.Close()

	redisPool := utils.OpenRedisPool(cfg.RedisURL)
	defer redisPool.Close()

	auth := &handlers.Auth{
		Users:       store.NewUsers(dbPool),
		Invitations: store.NewInvitations(dbPool),
		Tokens:      utils.NewJWTTokens(cfg.JWTSecret, 24*time.Hour),
		Mail:        utils.NewSendgridMailer(cfg.SendgridAPIKey, cfg.AppURL),
		Cache:       utils.NewRedisCache(redisPool),
		Client:      &http.Client{Timeout: 10 * time.Second},

		GithubClientID:     cfg.GithubClientID,
		GithubClientSecret: cfg.GithubClientSecret,
	}

	// Set up the HTTP server and handlers
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signin", handlers.Handle(auth.SignIn))
	mux.HandleFunc("GET /api/auth/invitations/{hash}", handlers.Handle(auth.ValidateInvitation))
	mux.HandleFunc("POST /api/auth/register/{hash}", handlers.Handle(auth.Register))
	mux.HandleFunc("POST /api/auth/invitations", handlers.Handle(auth.CreateInvitation))
	mux.HandleFunc("DELETE /api/auth/unregister", handlers.Handle(auth.Unregister))
	mux.HandleFunc("GET /api/auth/github", handlers.Handle(auth.GitHubAuthorize))
	mux.HandleFunc("GET /api/auth/github/callback", handlers.Handle(auth.GitHubCallback))

	// Start the server
	fmt.Println("Starting server on " + cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
