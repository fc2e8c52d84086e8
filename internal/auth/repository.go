package auth

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/userkit/internal/user"
)

// consumedToken replaces the verification token once it has been used. It is
// deliberately non-empty so a consumed token can never match a lookup or an
// empty comparison again.
const consumedToken = "consumed"

type SQLRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// Verify flips the verified flag for the user holding the token and burns the
// token in the same statement. Zero affected rows means the token is unknown
// or already consumed.
func (r *SQLRepository) Verify(ctx context.Context, verificationToken string) error {
	const query = `
UPDATE users SET verified = true, verification_token = $2, updated_at = now()
WHERE verification_token = $1 AND NOT verified
`

	res, err := r.db.ExecContext(ctx, query, verificationToken, consumedToken)
	if err != nil {
		return fmt.Errorf("execute query: %w", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return user.ErrNotFound
	}

	return nil
}
