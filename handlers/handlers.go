// Package handlers implements the authentication and registration HTTP
// surface. Handlers validate request shape, call the collaborator services
// below, and map outcomes to status codes; all cross-request state lives in
// the collaborators.
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"gatehouse/models"
)

type UserStore interface {
	Read(ctx context.Context, filter models.UserFilter) (*models.User, error)
	Save(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, user *models.User) error
}

type InvitationStore interface {
	Read(ctx context.Context, filter models.InvitationFilter) (*models.UserInvitation, error)
	Save(ctx context.Context, inv *models.UserInvitation) error
	Delete(ctx context.Context, inv *models.UserInvitation) error
}

type TokenService interface {
	CreateToken(userID string) (string, error)
}

type Mailer interface {
	SendUserInvitation(email, hash string) error
}

type Cache interface {
	Delete(ctx context.Context, key string) error
}

// Doer is the outbound HTTP client used for the OAuth token exchange.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// userCacheKey names the cached user listing cleared after user mutations.
const userCacheKey = "user"

type contextKey string

// AuthEmailKey is the request-context key under which upstream
// authentication middleware stores the signed-in user's email.
const AuthEmailKey contextKey = "auth_email"

// Auth holds the collaborator services shared by the handler set.
type Auth struct {
	Users       UserStore
	Invitations InvitationStore
	Tokens      TokenService
	Mail        Mailer
	Cache       Cache
	Client      Doer

	GithubClientID     string
	GithubClientSecret string
}

// Handle adapts an error-returning handler. Expected failures are written by
// the handler itself; anything returned here is unexpected and goes through
// this single 500 path.
func Handle(h func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			log.Println("unhandled error on", r.Method, r.URL.Path, ":", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("error encoding response:", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{"data": data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"status": status, "error": message})
}
