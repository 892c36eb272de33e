package postgres

import (
	"context"
	"errors"
	"fmt"

	"team-focus-service/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUserQuery = `
INSERT INTO users(name, username, password_hash, token)
VALUES ($1, $2, $3, $4)
RETURNING id`
	selectUserByIDQuery       = `SELECT id, name, username, password_hash, token FROM users WHERE id=$1`
	selectUserByTokenQuery    = `SELECT id, name, username, password_hash, token FROM users WHERE token=$1`
	selectUserByUsernameQuery = `SELECT id, name, username, password_hash, token FROM users WHERE username=$1`
	updateUserQuery           = `
UPDATE users SET name=$2, username=$3, password_hash=$4
WHERE id=$1
RETURNING id, name, username, password_hash, token`
	deleteUserQuery = `DELETE FROM users WHERE id=$1`
)

// CreateUser inserts a user with its credentials already prepared by the caller.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	err := p.db.QueryRow(ctx, insertUserQuery, user.Name, user.Username, user.PasswordHash, user.Token).
		Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUsernameTaken
		}
		p.log.Errorw("failed to insert user", "error", err, "username", user.Username)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID, "username", user.Username)
	return &user, nil
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, userID int64) (*entities.User, error) {
	return p.scanUser(ctx, selectUserByIDQuery, userID)
}

// GetUserByToken resolves the opaque bearer token to a user.
func (p *Postgres) GetUserByToken(ctx context.Context, token string) (*entities.User, error) {
	return p.scanUser(ctx, selectUserByTokenQuery, token)
}

// GetUserByUsername fetches a user by its unique username.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return p.scanUser(ctx, selectUserByUsernameQuery, username)
}

func (p *Postgres) scanUser(ctx context.Context, query string, arg any) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// UpdateUser rewrites profile fields. The token column is left untouched.
func (p *Postgres) UpdateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, updateUserQuery, user.ID, user.Name, user.Username, user.PasswordHash).
		Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUsernameTaken
		}
		p.log.Errorw("failed to update user", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("update user: %w", err)
	}

	p.log.Infow("user updated", "user_id", u.ID)
	return &u, nil
}

// DeleteUser removes a user; memberships and authored comments cascade.
func (p *Postgres) DeleteUser(ctx context.Context, userID int64) error {
	tag, err := p.db.Exec(ctx, deleteUserQuery, userID)
	if err != nil {
		p.log.Errorw("failed to delete user", "error", err, "user_id", userID)
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	p.log.Infow("user deleted", "user_id", userID)
	return nil
}
