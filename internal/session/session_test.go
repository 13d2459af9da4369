package session

import (
	"testing"

	"movie-reviews/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInFillsSlot(t *testing.T) {
	h := NewHolder()
	assert.Nil(t, h.Current())

	user := &entity.User{ID: 1, Email: "alice@example.com", Role: entity.AccountTypeRegular}
	s := h.SignIn(user)
	require.NotNil(t, s)
	assert.NotZero(t, s.Token)
	assert.Equal(t, user, s.User)
	assert.False(t, s.StartedAt.IsZero())

	require.NotNil(t, h.Current())
	assert.Equal(t, int64(1), h.Current().User.ID)
}

func TestSignInReplacesPreviousSession(t *testing.T) {
	h := NewHolder()

	first := h.SignIn(&entity.User{ID: 1})
	second := h.SignIn(&entity.User{ID: 2})

	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, int64(2), h.Current().User.ID)
}

func TestSignOutEmptiesSlot(t *testing.T) {
	h := NewHolder()
	h.SignIn(&entity.User{ID: 1})

	h.SignOut()
	assert.Nil(t, h.Current())

	// Signing out twice is harmless
	h.SignOut()
	assert.Nil(t, h.Current())
}

func TestRefreshKeepsTokenAndReplacesUser(t *testing.T) {
	h := NewHolder()
	s := h.SignIn(&entity.User{ID: 1, Email: "old@example.com"})
	token := s.Token

	h.Refresh(&entity.User{ID: 1, Email: "new@example.com"})

	current := h.Current()
	require.NotNil(t, current)
	assert.Equal(t, token, current.Token)
	assert.Equal(t, "new@example.com", current.User.Email)
}

func TestRefreshWithoutSessionIsNoop(t *testing.T) {
	h := NewHolder()
	h.Refresh(&entity.User{ID: 1})
	assert.Nil(t, h.Current())
}
