package usecase

import (
	"context"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/response"

	"go.uber.org/zap"
)

// MovieService reads the externally managed catalog.
type MovieService interface {
	ListAll(ctx context.Context) ([]*entity.Movie, error)
	// Details returns the movie with its reviews and the on-demand average
	// rating.
	Details(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListAll(ctx context.Context) ([]*entity.Movie, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return movies, nil
}

func (s *movieService) Details(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, storeFault(err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	reviews, err := s.repo.Review.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, storeFault(err)
	}

	avgRating, err := s.repo.Review.AverageRating(ctx, movieID)
	if err != nil {
		return nil, storeFault(err)
	}

	return &response.MovieDetailResponse{
		MovieResponse: response.MovieToResponse(movie),
		AverageRating: avgRating,
		Reviews:       response.ReviewDetailsToResponses(reviews),
	}, nil
}
