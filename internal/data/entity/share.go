package entity

import (
	"time"
)

// Share grants one recipient visibility of one review. The pair is the
// primary key; the recipient is never the review's author.
type Share struct {
	ReviewID  int64     `db:"review_id"`
	UserID    int64     `db:"user_id"`
	ShareDate time.Time `db:"share_date"`
}
