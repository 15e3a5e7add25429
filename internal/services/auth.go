// Package services contains the application services of Todokeeper. This
// file defines the authentication service: local account registration and
// password verification. Services validate input, delegate persistence to
// the repositories and map failures to the sentinel errors in
// internal/common.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/cryptox"
	"github.com/dmitrijs2005/todokeeper/internal/models"
	"github.com/dmitrijs2005/todokeeper/internal/repositories/users"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: create a local account; the username must be free.
//   - Authenticate: verify a password and return the account id.
//
// Failures surface as common sentinel errors: ErrValidation for malformed
// input, ErrAlreadyExists for a taken username, ErrUnauthorized when the
// username/password pair does not check out. Unknown username and wrong
// password both yield ErrUnauthorized so the caller cannot tell them apart.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Authenticate(ctx context.Context, username string, password []byte) (int64, error)
}

// authService is the concrete AuthService backed by the local database.
type authService struct {
	db *sql.DB
}

// NewAuthService constructs an AuthService bound to the given DB.
func NewAuthService(db *sql.DB) AuthService {
	return &authService{db: db}
}

func (a *authService) getUserRepo() users.Repository {
	return users.NewSQLiteRepository(a.db)
}

// Register derives a password record and inserts the account. Uniqueness is
// enforced by the store's constraint, not by a lookup beforehand.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	if username == "" {
		return fmt.Errorf("%w: username must not be empty", common.ErrValidation)
	}
	if len(password) == 0 {
		return fmt.Errorf("%w: password must not be empty", common.ErrValidation)
	}

	user := &models.User{
		Username:       username,
		PasswordRecord: cryptox.HashPassword(password),
	}

	if _, err := a.getUserRepo().Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Authenticate verifies the password against the stored record and returns
// the account id on success.
func (a *authService) Authenticate(ctx context.Context, username string, password []byte) (int64, error) {
	user, err := a.getUserRepo().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, common.ErrUnauthorized
		}
		return 0, fmt.Errorf("failed to load user: %w", err)
	}

	if !cryptox.VerifyPassword(user.PasswordRecord, password) {
		return 0, common.ErrUnauthorized
	}

	return user.ID, nil
}
