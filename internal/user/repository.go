package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already exists")
)

// pgUniqueViolation is the postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

type CreateParams struct {
	Email             string
	PasswordHash      string
	Subscription      string
	AvatarURL         string
	VerificationToken string
}

const queryCreate = `
INSERT INTO users (email, password_hash, subscription, avatar_url, verification_token)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, email, password_hash, subscription, avatar_url, session_token, verified, verification_token, created_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, params CreateParams) (User, error) {
	row := r.db.QueryRowContext(ctx, queryCreate,
		params.Email, params.PasswordHash, params.Subscription, params.AvatarURL, params.VerificationToken)

	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return User{}, fmt.Errorf("create user %s: %w", params.Email, ErrDuplicateEmail)
		}
		return User{}, fmt.Errorf("create user %s: %w", params.Email, err)
	}
	return u, nil
}

const userColumns = "id, email, password_hash, subscription, avatar_url, session_token, verified, verification_token, created_at, updated_at"

func (r *SQLRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = $1 LIMIT 1"
	row := r.db.QueryRowContext(ctx, query, email)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user with email %s: %w", email, err)
	}
	return &u, nil
}

func (r *SQLRepository) Find(ctx context.Context, userID string) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1 LIMIT 1"
	row := r.db.QueryRowContext(ctx, query, userID)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user with id %s: %w", userID, err)
	}
	return &u, nil
}

func (r *SQLRepository) SaveSessionToken(ctx context.Context, userID, token string) error {
	const query = "UPDATE users SET session_token = $1, updated_at = now() WHERE id = $2"
	return r.exec(ctx, query, token, userID)
}

func (r *SQLRepository) ClearSessionToken(ctx context.Context, userID string) error {
	const query = "UPDATE users SET session_token = NULL, updated_at = now() WHERE id = $1"
	return r.exec(ctx, query, userID)
}

func (r *SQLRepository) UpdateAvatarURL(ctx context.Context, userID, avatarURL string) error {
	const query = "UPDATE users SET avatar_url = $1, updated_at = now() WHERE id = $2"
	return r.exec(ctx, query, avatarURL, userID)
}

func (r *SQLRepository) Delete(ctx context.Context, userID string) error {
	const query = "DELETE FROM users WHERE id = $1"
	return r.exec(ctx, query, userID)
}

func (r *SQLRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Subscription, &u.AvatarURL,
		&u.SessionToken, &u.Verified, &u.VerificationToken, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
