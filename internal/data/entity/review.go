package entity

import (
	"time"
)

type Review struct {
	ID      int64  `db:"id"`
	MovieID int64  `db:"movie_id"`
	UserID  int64  `db:"user_id"`
	Body    string `db:"review"`
	Rating  int    `db:"rating"` // 1-5
	// ModifiedAt is assigned by the store on insert and on every update.
	ModifiedAt time.Time `db:"modified_at"`
}

// ReviewDetail is a review joined with its movie title and author name, the
// shape every listing prints. SharedAt is set only for shared-with-me rows.
type ReviewDetail struct {
	Review
	MovieTitle      string     `db:"title"`
	AuthorFirstName string     `db:"first_name"`
	AuthorLastName  string     `db:"last_name"`
	SharedAt        *time.Time `db:"share_date"`
}
