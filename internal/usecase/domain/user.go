// Package domain contains application usecases orchestrating the core rules by user.
package domain

import (
	"context"
	"fmt"
	"strings"

	"team-focus-service/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account, hashes the password and issues the opaque
// token. The token is valid for the account's lifetime.
func (u *Usecase) Register(ctx context.Context, name, username, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	username = strings.TrimSpace(username)
	if name == "" || username == "" || password == "" {
		return nil, fmt.Errorf("%w: name, username and password are required", entities.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	usr, err := u.repo.CreateUser(ctx, entities.User{
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Token:        uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("user registered", "user_id", usr.ID, "username", usr.Username)
	return usr, nil
}

// UpdateProfile changes name, username and/or password of the token's owner.
// Empty fields keep their current value; the token is never rotated here.
func (u *Usecase) UpdateProfile(ctx context.Context, token, name, username, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	updated := *usr
	if name = strings.TrimSpace(name); name != "" {
		updated.Name = name
	}
	if username = strings.TrimSpace(username); username != "" {
		updated.Username = username
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updated.PasswordHash = string(hash)
	}

	return u.repo.UpdateUser(ctx, updated)
}

// DeleteAccount removes the token's owner; memberships cascade.
func (u *Usecase) DeleteAccount(ctx context.Context, token string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.Authenticate(ctx, token)
	if err != nil {
		return err
	}
	return u.repo.DeleteUser(ctx, usr.ID)
}
