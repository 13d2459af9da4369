package response

import (
	"time"

	"movie-reviews/internal/data/entity"
)

type ReviewResponse struct {
	ID         int64
	MovieTitle string
	Author     string
	Body       string
	Rating     int
	ModifiedAt time.Time
	SharedAt   *time.Time
}

func ReviewDetailToResponse(d *entity.ReviewDetail) ReviewResponse {
	return ReviewResponse{
		ID:         d.ID,
		MovieTitle: d.MovieTitle,
		Author:     d.AuthorFirstName + " " + d.AuthorLastName,
		Body:       d.Body,
		Rating:     d.Rating,
		ModifiedAt: d.ModifiedAt,
		SharedAt:   d.SharedAt,
	}
}

func ReviewDetailsToResponses(details []*entity.ReviewDetail) []ReviewResponse {
	responses := make([]ReviewResponse, len(details))
	for i, d := range details {
		responses[i] = ReviewDetailToResponse(d)
	}
	return responses
}
