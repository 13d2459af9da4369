package wire

import (
	"io"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/session"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired console application.
type App struct {
	Handler *adaptor.Handler
	Session session.Holder
}

// Wiring initializes all dependencies.
func Wiring(db database.PgxIface, repo *repository.Repository, config *utils.Config, in io.Reader, out io.Writer, logger *zap.Logger) *App {
	service := usecase.NewService(db, repo, logger)
	holder := session.NewHolder()
	prompter := adaptor.NewPrompter(in, out)
	handler := adaptor.NewHandler(service, holder, prompter, out, logger)

	return &App{
		Handler: handler,
		Session: holder,
	}
}
