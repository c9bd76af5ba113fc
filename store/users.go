package store

import (
	"context"
	"errors"
	"fmt"

	"gatehouse/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Users implements handlers.UserStore.
type Users struct {
	db *pgxpool.Pool
}

func NewUsers(db *pgxpool.Pool) *Users {
	return &Users{db: db}
}

// Read returns the user owning the filtered email, or nil when none exists.
func (s *Users) Read(ctx context.Context, filter models.UserFilter) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT id, email, firstname, lastname, password_hash, is_active FROM users WHERE email = $1"
	if filter.ActiveOnly {
		stmt += " AND is_active = TRUE"
	}

	var u models.User
	row := s.db.QueryRow(ctx, stmt, filter.Email)
	if err := row.Scan(&u.ID, &u.Email, &u.Firstname, &u.Lastname, &u.Password, &u.Active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading user: %w", err)
	}

	return &u, nil
}

// Save inserts the user and fills in the generated id.
func (s *Users) Save(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	roleID := 1
	if user.Role != nil {
		roleID = user.Role.ID
	}

	stmt := `INSERT INTO users (email, firstname, lastname, password_hash, is_active, role_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`
	err := s.db.QueryRow(ctx, stmt,
		user.Email, user.Firstname, user.Lastname, user.Password, user.Active, roleID,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("saving user: %w", err)
	}

	return user, nil
}

func (s *Users) Delete(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "DELETE FROM users WHERE id = $1;"
	if _, err := s.db.Exec(ctx, stmt, user.ID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}
