package repository

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error)
	UpdateOwned(ctx context.Context, reviewID, userID int64, body string, rating int) (bool, error)
	DeleteOwned(ctx context.Context, reviewID, userID int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)

	ListByUser(ctx context.Context, userID int64) ([]*entity.ReviewDetail, error)
	ListAll(ctx context.Context) ([]*entity.ReviewDetail, error)
	ListSharedWith(ctx context.Context, userID int64) ([]*entity.ReviewDetail, error)
	ListByMovie(ctx context.Context, movieID int64) ([]*entity.ReviewDetail, error)

	// AverageRating is computed on demand, never cached; zero when the movie
	// has no reviews.
	AverageRating(ctx context.Context, movieID int64) (float64, error)

	// WithTx returns a copy bound to an open transaction.
	WithTx(tx pgx.Tx) ReviewRepository
}

type reviewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) WithTx(tx pgx.Tx) ReviewRepository {
	return &reviewRepository{db: tx, log: r.log}
}

// Create inserts a review; id and modified_at come back from the store so
// application clocks never enter the model.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (movie_id, user_id, review, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, modified_at
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieID,
		review.UserID,
		review.Body,
		review.Rating,
	).Scan(&review.ID, &review.ModifiedAt)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %d: %w",
			review.MovieID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := `
		SELECT id, movie_id, user_id, review, rating, modified_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.Body,
		&review.Rating,
		&review.ModifiedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error) {
	query := `
		SELECT id, movie_id, user_id, review, rating, modified_at
		FROM reviews
		WHERE user_id = $1 AND movie_id = $2
		LIMIT 1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, userID, movieID).Scan(
		&review.ID,
		&review.MovieID,
		&review.UserID,
		&review.Body,
		&review.Rating,
		&review.ModifiedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user %d and movie %d: %w", userID, movieID, err)
	}

	return &review, nil
}

// UpdateOwned updates body and rating only when the row belongs to userID.
// The false result does not distinguish a missing row from someone else's
// row.
func (r *reviewRepository) UpdateOwned(ctx context.Context, reviewID, userID int64, body string, rating int) (bool, error) {
	query := `
		UPDATE reviews
		SET review = $3, rating = $4, modified_at = now()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query, reviewID, userID, body, rating)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return false, fmt.Errorf("update review %d: %w", reviewID, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *reviewRepository) DeleteOwned(ctx context.Context, reviewID, userID int64) (bool, error) {
	query := `DELETE FROM reviews WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, reviewID, userID)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
			zap.Int64("user_id", userID),
		)
		return false, fmt.Errorf("delete review %d: %w", reviewID, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return false, fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return true, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.ReviewDetail, error) {
	query := `
		SELECT r.id, r.movie_id, r.user_id, r.review, r.rating, r.modified_at,
		       m.title, u.first_name, u.last_name
		FROM reviews r
		JOIN movies m ON r.movie_id = m.id
		JOIN users u ON r.user_id = u.id
		WHERE r.user_id = $1
		ORDER BY r.modified_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list reviews by user",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("list reviews by user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanReviewDetails(rows, false)
}

func (r *reviewRepository) ListAll(ctx context.Context) ([]*entity.ReviewDetail, error) {
	query := `
		SELECT r.id, r.movie_id, r.user_id, r.review, r.rating, r.modified_at,
		       m.title, u.first_name, u.last_name
		FROM reviews r
		JOIN movies m ON r.movie_id = m.id
		JOIN users u ON r.user_id = u.id
		ORDER BY r.modified_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list all reviews", zap.Error(err))
		return nil, fmt.Errorf("list all reviews: %w", err)
	}
	defer rows.Close()

	return scanReviewDetails(rows, false)
}

func (r *reviewRepository) ListSharedWith(ctx context.Context, userID int64) ([]*entity.ReviewDetail, error) {
	query := `
		SELECT r.id, r.movie_id, r.user_id, r.review, r.rating, r.modified_at,
		       m.title, u.first_name, u.last_name, s.share_date
		FROM reviews r
		JOIN movies m ON r.movie_id = m.id
		JOIN users u ON r.user_id = u.id
		JOIN shares s ON r.id = s.review_id
		WHERE s.user_id = $1
		ORDER BY s.share_date DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list shared reviews",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("list reviews shared with user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanReviewDetails(rows, true)
}

func (r *reviewRepository) ListByMovie(ctx context.Context, movieID int64) ([]*entity.ReviewDetail, error) {
	query := `
		SELECT r.id, r.movie_id, r.user_id, r.review, r.rating, r.modified_at,
		       m.title, u.first_name, u.last_name
		FROM reviews r
		JOIN movies m ON r.movie_id = m.id
		JOIN users u ON r.user_id = u.id
		WHERE r.movie_id = $1
		ORDER BY r.modified_at DESC
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to list reviews by movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("list reviews by movie %d: %w", movieID, err)
	}
	defer rows.Close()

	return scanReviewDetails(rows, false)
}

func (r *reviewRepository) AverageRating(ctx context.Context, movieID int64) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE movie_id = $1`

	var avgRating float64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&avgRating)
	if err != nil {
		r.log.Error("Failed to get movie average rating",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, fmt.Errorf("get movie average rating for %d: %w", movieID, err)
	}

	return avgRating, nil
}

func scanReviewDetails(rows pgx.Rows, withShareDate bool) ([]*entity.ReviewDetail, error) {
	var details []*entity.ReviewDetail
	for rows.Next() {
		var d entity.ReviewDetail
		dest := []any{
			&d.ID,
			&d.MovieID,
			&d.UserID,
			&d.Body,
			&d.Rating,
			&d.ModifiedAt,
			&d.MovieTitle,
			&d.AuthorFirstName,
			&d.AuthorLastName,
		}
		if withShareDate {
			dest = append(dest, &d.SharedAt)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return details, nil
}
