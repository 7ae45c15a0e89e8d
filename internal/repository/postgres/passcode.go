package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/thevanityindia/vanity-server/internal/model"
)

var _ model.PasscodeStore = (*PasscodeRepository)(nil)

type PasscodeRepository struct {
	db *Connection
}

func NewPasscodeRepository(db *Connection) *PasscodeRepository {
	return &PasscodeRepository{
		db: db,
	}
}

func (r *PasscodeRepository) Upsert(ctx context.Context, passcode model.Passcode) error {
	query := `INSERT INTO passcodes (email, code, expires_at, consumed, created_at)
			  VALUES ($1, $2, $3, FALSE, $4)
			  ON CONFLICT (email) DO UPDATE
			  SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at,
			      consumed = FALSE, created_at = EXCLUDED.created_at`

	_, err := r.db.Exec(ctx, query, passcode.Email, passcode.Code, passcode.ExpiresAt, passcode.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert passcode: %w", err)
	}

	return nil
}

func (r *PasscodeRepository) GetByEmail(ctx context.Context, email string) (model.Passcode, error) {
	var passcode model.Passcode
	query := `SELECT email, code, expires_at, consumed, created_at
			  FROM passcodes WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&passcode.Email, &passcode.Code, &passcode.ExpiresAt, &passcode.Consumed, &passcode.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Passcode{}, model.ErrNotFound
		}
		return model.Passcode{}, fmt.Errorf("failed to get passcode by email: %w", err)
	}

	return passcode, nil
}

func (r *PasscodeRepository) Consume(ctx context.Context, email string) error {
	query := `UPDATE passcodes SET consumed = TRUE WHERE email = $1`

	tag, err := r.db.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to consume passcode: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
