package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"gatehouse/models"
	"gatehouse/utils"

	"github.com/google/uuid"
)

// SignIn verifies credentials against the stored hash and issues a session
// token bound to the user id.
func (a *Auth) SignIn(w http.ResponseWriter, r *http.Request) error {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Email == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return nil
	}

	user, err := a.Users.Read(r.Context(), models.UserFilter{Email: creds.Email, ActiveOnly: true})
	if err != nil {
		return err
	}
	// Same message whether the email or the password was wrong.
	if user == nil || !utils.CheckPasswordHash(creds.Password, user.Password) {
		log.Println("failed sign-in attempt for:", creds.Email)
		writeError(w, http.StatusUnauthorized, "Wrong email or password")
		return nil
	}

	token, err := a.Tokens.CreateToken(user.ID.String())
	if err != nil {
		return err
	}

	user.Password = ""
	writeData(w, http.StatusOK, map[string]any{"user": user, "token": token})
	return nil
}

// ValidateInvitation answers whether a registration hash is still usable.
func (a *Auth) ValidateInvitation(w http.ResponseWriter, r *http.Request) error {
	hash := r.PathValue("hash")
	if hash == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return nil
	}

	inv, err := a.readInvitation(r.Context(), hash, "")
	if err != nil {
		return err
	}
	if inv == nil {
		writeError(w, http.StatusForbidden, "Invalid hash")
		return nil
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// RegisterRequest is the registration payload completing an invitation.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Register completes an invited registration: the hash and email must match
// a stored invitation, and the email must not belong to any existing user.
// The consumed invitation is deleted afterwards.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) error {
	hash := r.PathValue("hash")

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return nil
	}

	inv, err := a.readInvitation(r.Context(), hash, req.Email)
	if err != nil {
		return err
	}
	if inv == nil {
		writeError(w, http.StatusForbidden, "Invalid hash")
		return nil
	}

	// Active or not, an existing owner blocks the email.
	existing, err := a.Users.Read(r.Context(), models.UserFilter{Email: req.Email})
	if err != nil {
		return err
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Email is already taken")
		return nil
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:     req.Email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Password:  hashed,
		Active:    true,
		Role:      &models.Role{ID: 1, Name: "User"},
	}
	created, err := a.Users.Save(r.Context(), user)
	if err != nil {
		return err
	}
	created.Password = ""

	if err := a.Cache.Delete(r.Context(), userCacheKey); err != nil {
		return err
	}

	// Not atomic with the save above: if this fails the user stays created
	// and the invitation stays usable.
	if err := a.Invitations.Delete(r.Context(), inv); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// InvitationRequest is the payload for inviting an email address.
type InvitationRequest struct {
	Email string `json:"email"`
}

// CreateInvitation stores a fresh single-use hash for the address and mails
// it as a registration link.
func (a *Auth) CreateInvitation(w http.ResponseWriter, r *http.Request) error {
	var req InvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return nil
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return nil
	}

	existing, err := a.Users.Read(r.Context(), models.UserFilter{Email: req.Email})
	if err != nil {
		return err
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Email is already taken")
		return nil
	}

	inv := &models.UserInvitation{Email: req.Email, Hash: uuid.NewString()}
	if err := a.Invitations.Save(r.Context(), inv); err != nil {
		return err
	}

	if err := a.Mail.SendUserInvitation(inv.Email, inv.Hash); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Unregister deletes the account of the authenticated user. The email is
// attached to the request context by upstream authentication middleware.
func (a *Auth) Unregister(w http.ResponseWriter, r *http.Request) error {
	email, _ := r.Context().Value(AuthEmailKey).(string)
	if email == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return nil
	}

	user, err := a.Users.Read(r.Context(), models.UserFilter{Email: email})
	if err != nil {
		return err
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return nil
	}

	if err := a.Users.Delete(r.Context(), user); err != nil {
		return err
	}
	if err := a.Cache.Delete(r.Context(), userCacheKey); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// readInvitation looks up an invitation by hash, or by hash and email when
// an email is supplied. Store errors propagate unchanged.
func (a *Auth) readInvitation(ctx context.Context, hash, email string) (*models.UserInvitation, error) {
	filter := models.InvitationFilter{Hash: hash}
	if email != "" {
		filter.Email = email
	}
	return a.Invitations.Read(ctx, filter)
}
