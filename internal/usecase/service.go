package usecase

import (
	"movie-reviews/internal/data/repository"
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Movie  MovieService
	Review ReviewService
}

func NewService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(db, repo, log),
		User:   NewUserService(repo, log),
		Movie:  NewMovieService(repo, log),
		Review: NewReviewService(db, repo, log),
	}
}
