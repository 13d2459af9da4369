package entity

import (
	"time"
)

// Movie rows are externally managed; the application only reads them.
type Movie struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	ReleaseDate time.Time `db:"rel_date"`
	Genre       string    `db:"genre"`
}
