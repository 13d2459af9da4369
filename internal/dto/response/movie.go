package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

type MovieResponse struct {
	ID          int64
	Title       string
	ReleaseDate time.Time
	Genre       string
}

// MovieDetailResponse is a movie with its reviews and the on-demand average
// rating; the average is zero when no reviews exist.
type MovieDetailResponse struct {
	MovieResponse
	AverageRating float64
	Reviews       []ReviewResponse
}

func MovieToResponse(m *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Genre:       m.Genre,
	}
}
