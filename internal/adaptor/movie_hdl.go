package adaptor

import (
	"context"
	"fmt"
	"io"

	"movie-reviews/internal/usecase"

	"go.uber.org/zap"
)

type MovieHandler struct {
	movie usecase.MovieService
	in    *Prompter
	out   io.Writer
	log   *zap.Logger
}

func NewMovieHandler(movie usecase.MovieService, in *Prompter, out io.Writer, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		movie: movie,
		in:    in,
		out:   out,
		log:   log,
	}
}

func (h *MovieHandler) ViewAllMovies(ctx context.Context) error {
	movies, err := h.movie.ListAll(ctx)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n--- All Movies ---")
	if len(movies) == 0 {
		fmt.Fprintln(h.out, "No movies found.")
		return nil
	}
	for _, movie := range movies {
		fmt.Fprintf(h.out, "ID: %d, Title: %s, Released: %s, Genre: %s\n",
			movie.ID, movie.Title, movie.ReleaseDate.Format("2006-01-02"), movie.Genre)
	}
	return nil
}

func (h *MovieHandler) ViewMovieDetails(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n=== Movie Details ===")
	movieID, err := h.in.Int64(ctx, "Enter Movie ID: ")
	if err != nil {
		return err
	}

	details, err := h.movie.Details(ctx, movieID)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintf(h.out, "\nTitle: %s\n", details.Title)
	fmt.Fprintf(h.out, "Released: %s\n", details.ReleaseDate.Format("2006-01-02"))
	fmt.Fprintf(h.out, "Genre: %s\n", details.Genre)
	fmt.Fprintf(h.out, "Average Rating: %.1f\n", details.AverageRating)

	if len(details.Reviews) == 0 {
		fmt.Fprintln(h.out, "No reviews yet.")
		return nil
	}
	fmt.Fprintln(h.out, "Reviews:")
	for _, review := range details.Reviews {
		fmt.Fprintf(h.out, "  [%d/5] %s: %s\n", review.Rating, review.Author, review.Body)
	}
	return nil
}
