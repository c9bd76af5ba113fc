package store

import (
	"context"
	"errors"
	"fmt"

	"gatehouse/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Invitations implements handlers.InvitationStore.
type Invitations struct {
	db *pgxpool.Pool
}

func NewInvitations(db *pgxpool.Pool) *Invitations {
	return &Invitations{db: db}
}

// Read returns the invitation matching the filter, or nil when none exists.
func (s *Invitations) Read(ctx context.Context, filter models.InvitationFilter) (*models.UserInvitation, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT email, hash FROM user_invitations WHERE hash = $1"
	args := []any{filter.Hash}
	if filter.Email != "" {
		stmt += " AND email = $2"
		args = append(args, filter.Email)
	}

	var inv models.UserInvitation
	if err := s.db.QueryRow(ctx, stmt, args...).Scan(&inv.Email, &inv.Hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading invitation: %w", err)
	}

	return &inv, nil
}

func (s *Invitations) Save(ctx context.Context, inv *models.UserInvitation) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "INSERT INTO user_invitations (email, hash) VALUES ($1, $2);"
	if _, err := s.db.Exec(ctx, stmt, inv.Email, inv.Hash); err != nil {
		return fmt.Errorf("saving invitation: %w", err)
	}

	return nil
}

func (s *Invitations) Delete(ctx context.Context, inv *models.UserInvitation) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "DELETE FROM user_invitations WHERE hash = $1;"
	if _, err := s.db.Exec(ctx, stmt, inv.Hash); err != nil {
		return fmt.Errorf("deleting invitation: %w", err)
	}

	return nil
}
