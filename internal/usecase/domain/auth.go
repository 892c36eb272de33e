// Package domain contains application usecases orchestrating the core rules by authorization.
package domain

import (
	"context"
	"errors"
	"fmt"

	"team-focus-service/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// Authenticate resolves the opaque bearer token to a user. A token that was
// never issued, including the empty one, yields ErrUnauthenticated.
func (u *Usecase) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if token == "" {
		return nil, entities.ErrUnauthenticated
	}

	usr, err := u.repo.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrUnauthenticated
		}
		return nil, err
	}
	return usr, nil
}

// RequireMember resolves the token and checks team membership. The token and
// membership lookups stay separate so that an invalid credential and a valid
// non-member remain distinct outcomes.
func (u *Usecase) RequireMember(ctx context.Context, token string, teamID int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	ok, err := u.repo.IsMember(ctx, teamID, usr.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		u.log.Infow("membership check failed", "team_id", teamID, "user_id", usr.ID)
		return nil, entities.ErrForbidden
	}
	return usr, nil
}

// RequireOwner resolves the token and checks that it belongs to the given user.
func (u *Usecase) RequireOwner(ctx context.Context, token string, ownerUserID int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	usr, err := u.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if usr.ID != ownerUserID {
		u.log.Infow("ownership check failed", "owner_id", ownerUserID, "user_id", usr.ID)
		return nil, entities.ErrForbidden
	}
	return usr, nil
}

// Login verifies credentials and returns the user carrying its token. Both an
// unknown username and a wrong password yield ErrUnauthenticated.
func (u *Usecase) Login(ctx context.Context, username, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	usr, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrUnauthenticated
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, entities.ErrUnauthenticated
	}
	return usr, nil
}
