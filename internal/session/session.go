// Package session holds the single-slot record of the currently signed-in
// account. The process is single-threaded, so the slot needs no lock;
// callers depend on the Holder interface so the slot could later become a
// token table without touching them.
package session

import (
	"time"

	"movie-reviews/internal/data/entity"

	"github.com/google/uuid"
)

type Session struct {
	Token     uuid.UUID
	User      *entity.User
	StartedAt time.Time
}

type Holder interface {
	// SignIn fills the slot, replacing any previous session.
	SignIn(user *entity.User) *Session
	// Current returns the slot contents, or nil when nobody is signed in.
	Current() *Session
	SignOut()
	// Refresh replaces the stored account copy after a profile update,
	// keeping the token.
	Refresh(user *entity.User)
}

type slotHolder struct {
	current *Session
}

func NewHolder() Holder {
	return &slotHolder{}
}

func (h *slotHolder) SignIn(user *entity.User) *Session {
	h.current = &Session{
		Token:     uuid.New(),
		User:      user,
		StartedAt: time.Now(),
	}
	return h.current
}

func (h *slotHolder) Current() *Session {
	return h.current
}

func (h *slotHolder) SignOut() {
	h.current = nil
}

func (h *slotHolder) Refresh(user *entity.User) {
	if h.current != nil {
		h.current.User = user
	}
}
