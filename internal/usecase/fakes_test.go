package usecase

import (
	"context"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
)

// fakeTx satisfies pgx.Tx through the embedded interface; only Commit and
// Rollback are ever reached by the services.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	database.PgxIface
	tx       *fakeTx
	beginErr error
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	if d.tx == nil {
		d.tx = &fakeTx{}
	}
	return d.tx, nil
}

type fakeUserRepo struct {
	repository.UserRepository

	createFn         func(ctx context.Context, user *entity.User) error
	findByIDFn       func(ctx context.Context, id int64) (*entity.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*entity.User, error)
	emailTakenFn     func(ctx context.Context, email string, excludeID int64) (bool, error)
	findAllFn        func(ctx context.Context) ([]*entity.User, error)
	updateFn         func(ctx context.Context, user *entity.User) error
	updatePasswordFn func(ctx context.Context, id int64, hash string) error
	deleteFn         func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createFn == nil {
		user.ID = 1
		return nil
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findByEmailFn == nil {
		return nil, nil
	}
	return f.findByEmailFn(ctx, email)
}

func (f *fakeUserRepo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	if f.emailTakenFn == nil {
		return false, nil
	}
	return f.emailTakenFn(ctx, email, excludeID)
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	if f.findAllFn == nil {
		return nil, nil
	}
	return f.findAllFn(ctx)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, user)
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	if f.updatePasswordFn == nil {
		return nil
	}
	return f.updatePasswordFn(ctx, id, hash)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.deleteFn == nil {
		return true, nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeUserRepo) WithTx(tx pgx.Tx) repository.UserRepository { return f }

type fakeMovieRepo struct {
	repository.MovieRepository

	findByIDFn func(ctx context.Context, id int64) (*entity.Movie, error)
	findAllFn  func(ctx context.Context) ([]*entity.Movie, error)
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	if f.findAllFn == nil {
		return nil, nil
	}
	return f.findAllFn(ctx)
}

type fakeReviewRepo struct {
	repository.ReviewRepository

	createFn             func(ctx context.Context, review *entity.Review) error
	findByIDFn           func(ctx context.Context, id int64) (*entity.Review, error)
	findByUserAndMovieFn func(ctx context.Context, userID, movieID int64) (*entity.Review, error)
	updateOwnedFn        func(ctx context.Context, reviewID, userID int64, body string, rating int) (bool, error)
	deleteOwnedFn        func(ctx context.Context, reviewID, userID int64) (bool, error)
	deleteFn             func(ctx context.Context, id int64) (bool, error)
	listByUserFn         func(ctx context.Context, userID int64) ([]*entity.ReviewDetail, error)
	listAllFn            func(ctx context.Context) ([]*entity.ReviewDetail, error)
	listSharedWithFn     func(ctx context.Context, userID int64) ([]*entity.ReviewDetail, error)
	listByMovieFn        func(ctx context.Context, movieID int64) ([]*entity.ReviewDetail, error)
	averageRatingFn      func(ctx context.Context, movieID int64) (float64, error)
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if f.createFn == nil {
		review.ID = 1
		return nil
	}
	return f.createFn(ctx, review)
}

func (f *fakeReviewRepo) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeReviewRepo) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*entity.Review, error) {
	if f.findByUserAndMovieFn == nil {
		return nil, nil
	}
	return f.findByUserAndMovieFn(ctx, userID, movieID)
}

func (f *fakeReviewRepo) UpdateOwned(ctx context.Context, reviewID, userID int64, body string, rating int) (bool, error) {
	if f.updateOwnedFn == nil {
		return true, nil
	}
	return f.updateOwnedFn(ctx, reviewID, userID, body, rating)
}

func (f *fakeReviewRepo) DeleteOwned(ctx context.Context, reviewID, userID int64) (bool, error) {
	if f.deleteOwnedFn == nil {
		return true, nil
	}
	return f.deleteOwnedFn(ctx, reviewID, userID)
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.deleteFn == nil {
		return true, nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeReviewRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.ReviewDetail, error) {
	if f.listByUserFn == nil {
		return nil, nil
	}
	return f.listByUserFn(ctx, userID)
}

func (f *fakeReviewRepo) ListAll(ctx context.Context) ([]*entity.ReviewDetail, error) {
	if f.listAllFn == nil {
		return nil, nil
	}
	return f.listAllFn(ctx)
}

func (f *fakeReviewRepo) ListSharedWith(ctx context.Context, userID int64) ([]*entity.ReviewDetail, error) {
	if f.listSharedWithFn == nil {
		return nil, nil
	}
	return f.listSharedWithFn(ctx, userID)
}

func (f *fakeReviewRepo) ListByMovie(ctx context.Context, movieID int64) ([]*entity.ReviewDetail, error) {
	if f.listByMovieFn == nil {
		return nil, nil
	}
	return f.listByMovieFn(ctx, movieID)
}

func (f *fakeReviewRepo) AverageRating(ctx context.Context, movieID int64) (float64, error) {
	if f.averageRatingFn == nil {
		return 0, nil
	}
	return f.averageRatingFn(ctx, movieID)
}

func (f *fakeReviewRepo) WithTx(tx pgx.Tx) repository.ReviewRepository { return f }

type fakeShareRepo struct {
	repository.ShareRepository

	createFn func(ctx context.Context, share *entity.Share) error
	existsFn func(ctx context.Context, reviewID, userID int64) (bool, error)
}

func (f *fakeShareRepo) Create(ctx context.Context, share *entity.Share) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, share)
}

func (f *fakeShareRepo) Exists(ctx context.Context, reviewID, userID int64) (bool, error) {
	if f.existsFn == nil {
		return false, nil
	}
	return f.existsFn(ctx, reviewID, userID)
}

func (f *fakeShareRepo) WithTx(tx pgx.Tx) repository.ShareRepository { return f }

func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeMovieRepo, *fakeReviewRepo, *fakeShareRepo) {
	users := &fakeUserRepo{}
	movies := &fakeMovieRepo{}
	reviews := &fakeReviewRepo{}
	shares := &fakeShareRepo{}
	return &repository.Repository{
		User:   users,
		Movie:  movies,
		Review: reviews,
		Share:  shares,
	}, users, movies, reviews, shares
}
