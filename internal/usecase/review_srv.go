package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

// maxReviewLength is the cap on review text after trimming.
const maxReviewLength = 1024

type ReviewService interface {
	Create(ctx context.Context, authorID, movieID int64, body string, rating int) (*entity.Review, error)
	Edit(ctx context.Context, reviewID, actorID int64, body string, rating int) error
	DeleteOwn(ctx context.Context, reviewID, actorID int64) error
	// DeleteAny is the moderation path. The actor's role is re-checked here
	// rather than trusted from the menu layer.
	DeleteAny(ctx context.Context, actor *entity.User, reviewID int64) error
	Share(ctx context.Context, reviewID, actorID int64, recipientEmail string) error

	ListOwn(ctx context.Context, actorID int64) ([]*entity.ReviewDetail, error)
	ListAll(ctx context.Context) ([]*entity.ReviewDetail, error)
	ListSharedWith(ctx context.Context, actorID int64) ([]*entity.ReviewDetail, error)
}

type reviewService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, authorID, movieID int64, body string, rating int) (*entity.Review, error) {
	body, err := validateReviewInput(body, rating)
	if err != nil {
		return nil, err
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, storeFault(err)
	}
	if movie == nil {
		return nil, ErrInvalidMovieID
	}

	// One review per (author, movie)
	existing, err := s.repo.Review.FindByUserAndMovie(ctx, authorID, movieID)
	if err != nil {
		return nil, storeFault(err)
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &entity.Review{
		MovieID: movieID,
		UserID:  authorID,
		Body:    body,
		Rating:  rating,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, storeFault(err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", authorID),
		zap.Int64("movie_id", movieID),
		zap.Int("rating", rating),
	)

	return review, nil
}

func (s *reviewService) Edit(ctx context.Context, reviewID, actorID int64, body string, rating int) error {
	body, err := validateReviewInput(body, rating)
	if err != nil {
		return err
	}

	updated, err := s.repo.Review.UpdateOwned(ctx, reviewID, actorID, body, rating)
	if err != nil {
		return storeFault(err)
	}
	if !updated {
		return ErrReviewEditDenied
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", reviewID),
		zap.Int64("user_id", actorID),
	)
	return nil
}

func (s *reviewService) DeleteOwn(ctx context.Context, reviewID, actorID int64) error {
	// A missing row and a row owned by someone else are indistinguishable
	// to the caller.
	deleted, err := s.repo.Review.DeleteOwned(ctx, reviewID, actorID)
	if err != nil {
		return storeFault(err)
	}
	if !deleted {
		return ErrReviewDelDenied
	}

	s.log.Info("Review deleted",
		zap.Int64("review_id", reviewID),
		zap.Int64("user_id", actorID),
	)
	return nil
}

func (s *reviewService) DeleteAny(ctx context.Context, actor *entity.User, reviewID int64) error {
	if actor == nil || !actor.IsAdmin() {
		s.log.Warn("Non-admin attempted moderation delete",
			zap.Int64("review_id", reviewID),
		)
		return ErrAdminOnly
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return storeFault(err)
	}
	if review == nil {
		return ErrReviewNotFound
	}

	deleted, err := s.repo.Review.Delete(ctx, reviewID)
	if err != nil {
		return storeFault(err)
	}
	if !deleted {
		return ErrReviewNotFound
	}

	s.log.Info("Review deleted by admin",
		zap.Int64("review_id", reviewID),
		zap.Int64("admin_id", actor.ID),
		zap.Int64("author_id", review.UserID),
	)
	return nil
}

// Share grants recipientEmail visibility of the review. The ordered checks
// and the insert run inside one transaction so a concurrent writer cannot
// race the existence check.
func (s *reviewService) Share(ctx context.Context, reviewID, actorID int64, recipientEmail string) error {
	recipientEmail = strings.ToLower(strings.TrimSpace(recipientEmail))
	if recipientEmail == "" {
		return ErrShareEmailEmpty
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return storeFault(err)
	}
	defer tx.Rollback(ctx)

	reviewRepo := s.repo.Review.WithTx(tx)
	userRepo := s.repo.User.WithTx(tx)
	shareRepo := s.repo.Share.WithTx(tx)

	// (a) the review exists and the actor wrote it
	review, err := reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return storeFault(err)
	}
	if review == nil || review.UserID != actorID {
		return ErrShareNotOwner
	}

	// (b) the recipient account exists
	recipient, err := userRepo.FindByEmail(ctx, recipientEmail)
	if err != nil {
		return storeFault(err)
	}
	if recipient == nil {
		return ErrRecipientNotFound
	}

	// (c) not the author themselves
	if recipient.ID == actorID {
		return ErrShareWithSelf
	}

	// (d) the pair must be new
	exists, err := shareRepo.Exists(ctx, reviewID, recipient.ID)
	if err != nil {
		return storeFault(err)
	}
	if exists {
		return ErrAlreadyShared
	}

	// (e) insert; share_date comes from the store
	share := &entity.Share{ReviewID: reviewID, UserID: recipient.ID}
	if err := shareRepo.Create(ctx, share); err != nil {
		return storeFault(err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit share", zap.Error(err))
		return storeFault(err)
	}

	s.log.Info("Review shared",
		zap.Int64("review_id", reviewID),
		zap.Int64("owner_id", actorID),
		zap.Int64("recipient_id", recipient.ID),
	)
	return nil
}

func (s *reviewService) ListOwn(ctx context.Context, actorID int64) ([]*entity.ReviewDetail, error) {
	details, err := s.repo.Review.ListByUser(ctx, actorID)
	if err != nil {
		return nil, storeFault(err)
	}
	return details, nil
}

func (s *reviewService) ListAll(ctx context.Context) ([]*entity.ReviewDetail, error) {
	details, err := s.repo.Review.ListAll(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return details, nil
}

func (s *reviewService) ListSharedWith(ctx context.Context, actorID int64) ([]*entity.ReviewDetail, error) {
	details, err := s.repo.Review.ListSharedWith(ctx, actorID)
	if err != nil {
		return nil, storeFault(err)
	}
	return details, nil
}

// validateReviewInput trims the body and checks the shared create/edit
// rules, returning the trimmed body.
func validateReviewInput(body string, rating int) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", ErrReviewTextEmpty
	}
	// The cap counts characters, matching the VARCHAR(1024) column; byte
	// length would reject multibyte text the store accepts.
	if utf8.RuneCountInString(body) > maxReviewLength {
		return "", ErrReviewTextTooLong
	}
	if rating < 1 || rating > 5 {
		return "", ErrRatingOutOfRange
	}
	return body, nil
}
