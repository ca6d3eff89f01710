package repository

import (
	"context"
	"fmt"
	"time"

	"reviewhub/internal/data/entity"
	"reviewhub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenreTitleRepository interface {
	Create(ctx context.Context, link *entity.GenreTitle) error
	ReplaceForTitle(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error
}

type genreTitleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreTitleRepository(db database.PgxIface, log *zap.Logger) GenreTitleRepository {
	return &genreTitleRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre_title")),
	}
}

func (r *genreTitleRepository) Create(ctx context.Context, link *entity.GenreTitle) error {
	query := `
		INSERT INTO genre_titles (id, title_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		link.ID,
		link.TitleID,
		link.GenreID,
		link.CreatedAt,
	)

	if err != nil {
		if !database.IsUniqueViolation(err) {
			r.log.Error("Failed to create genre-title link",
				zap.Error(err),
				zap.String("title_id", link.TitleID.String()),
				zap.String("genre_id", link.GenreID.String()),
			)
		}
		return fmt.Errorf("create genre-title link: %w", err)
	}

	return nil
}

// ReplaceForTitle rewrites the genre set of a title in one transaction, so
// a failed insert cannot leave the title with its old links half cleared.
func (r *genreTitleRepository) ReplaceForTitle(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin genre rewrite: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM genre_titles WHERE title_id = $1`, titleID); err != nil {
		r.log.Error("Failed to clear genre-title links",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return fmt.Errorf("clear genre-title links: %w", err)
	}

	insert := `
		INSERT INTO genre_titles (id, title_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	for _, genreID := range genreIDs {
		if _, err := tx.Exec(ctx, insert, uuid.New(), titleID, genreID, time.Now()); err != nil {
			r.log.Error("Failed to rewrite genre-title link",
				zap.Error(err),
				zap.String("title_id", titleID.String()),
				zap.String("genre_id", genreID.String()),
			)
			return fmt.Errorf("rewrite genre-title link: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit genre rewrite: %w", err)
	}

	return nil
}
