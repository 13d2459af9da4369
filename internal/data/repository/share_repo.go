package repository

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShareRepository interface {
	Create(ctx context.Context, share *entity.Share) error
	Exists(ctx context.Context, reviewID, userID int64) (bool, error)

	// WithTx returns a copy bound to an open transaction.
	WithTx(tx pgx.Tx) ShareRepository
}

type shareRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewShareRepository(db database.PgxIface, log *zap.Logger) ShareRepository {
	return &shareRepository{
		db:  db,
		log: log.With(zap.String("repository", "share")),
	}
}

func (r *shareRepository) WithTx(tx pgx.Tx) ShareRepository {
	return &shareRepository{db: tx, log: r.log}
}

// Create inserts the pair; share_date comes back from the store.
func (r *shareRepository) Create(ctx context.Context, share *entity.Share) error {
	query := `
		INSERT INTO shares (review_id, user_id)
		VALUES ($1, $2)
		RETURNING share_date
	`

	err := r.db.QueryRow(ctx, query, share.ReviewID, share.UserID).Scan(&share.ShareDate)
	if err != nil {
		r.log.Error("Failed to create share",
			zap.Error(err),
			zap.Int64("review_id", share.ReviewID),
			zap.Int64("user_id", share.UserID),
		)
		return fmt.Errorf("share review %d with user %d: %w", share.ReviewID, share.UserID, err)
	}

	return nil
}

func (r *shareRepository) Exists(ctx context.Context, reviewID, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM shares WHERE review_id = $1 AND user_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, reviewID, userID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check share existence",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
			zap.Int64("user_id", userID),
		)
		return false, fmt.Errorf("check share for review %d and user %d: %w", reviewID, userID, err)
	}

	return exists, nil
}
