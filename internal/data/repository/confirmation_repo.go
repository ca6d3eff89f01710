package repository

import (
	"context"
	"fmt"

	"reviewhub/internal/data/entity"
	"reviewhub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ConfirmationRepository interface {
	Create(ctx context.Context, code *entity.ConfirmationCode) error
	FindLiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ConfirmationCode, error)
	MarkAsUsed(ctx context.Context, codeID uuid.UUID) error
}

type confirmationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConfirmationRepository(db database.PgxIface, log *zap.Logger) ConfirmationRepository {
	return &confirmationRepository{
		db:  db,
		log: log.With(zap.String("repository", "confirmation")),
	}
}

func (r *confirmationRepository) Create(ctx context.Context, code *entity.ConfirmationCode) error {
	query := `
		INSERT INTO confirmation_codes (id, user_id, code_hash, expires_at, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		code.ID,
		code.UserID,
		code.CodeHash,
		code.ExpiresAt,
		code.IsUsed,
		code.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create confirmation code",
			zap.Error(err),
			zap.String("user_id", code.UserID.String()),
		)
		return fmt.Errorf("create confirmation code: %w", err)
	}

	return nil
}

// FindLiveByUserID returns unused, unexpired codes, newest first. The code
// itself is hashed, so the caller has to compare candidates one by one.
func (r *confirmationRepository) FindLiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ConfirmationCode, error) {
	query := `
		SELECT id, user_id, code_hash, expires_at, is_used, created_at
		FROM confirmation_codes
		WHERE user_id = $1
		  AND is_used = false
		  AND expires_at > NOW()
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find live confirmation codes",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find live confirmation codes: %w", err)
	}
	defer rows.Close()

	var codes []*entity.ConfirmationCode
	for rows.Next() {
		var code entity.ConfirmationCode
		err := rows.Scan(
			&code.ID,
			&code.UserID,
			&code.CodeHash,
			&code.ExpiresAt,
			&code.IsUsed,
			&code.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan confirmation code row", zap.Error(err))
			return nil, fmt.Errorf("scan confirmation code: %w", err)
		}
		codes = append(codes, &code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate confirmation code rows: %w", err)
	}

	return codes, nil
}

func (r *confirmationRepository) MarkAsUsed(ctx context.Context, codeID uuid.UUID) error {
	query := `UPDATE confirmation_codes SET is_used = true WHERE id = $1 AND is_used = false`

	result, err := r.db.Exec(ctx, query, codeID)
	if err != nil {
		r.log.Error("Failed to mark confirmation code as used",
			zap.Error(err),
			zap.String("code_id", codeID.String()),
		)
		return fmt.Errorf("mark confirmation code %s as used: %w", codeID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("confirmation code %s already consumed", codeID.String())
	}

	return nil
}
