package adaptor

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/session"
	"movie-reviews/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	registerFn func(ctx context.Context, req *request.RegisterRequest) (*entity.User, error)
	loginFn    func(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
	if f.registerFn == nil {
		return &entity.User{ID: 1}, nil
	}
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	if f.loginFn == nil {
		return &entity.User{ID: 1}, nil
	}
	return f.loginFn(ctx, req)
}

// scriptedPrompter queues plain lines and no-echo password reads.
func scriptedPrompter(out *bytes.Buffer, lines string, passwords ...string) *Prompter {
	p := NewPrompter(strings.NewReader(lines), out)
	p.readPassword = func() ([]byte, error) {
		next := passwords[0]
		passwords = passwords[1:]
		return []byte(next), nil
	}
	return p
}

func TestSignUpRegistersRegularAccount(t *testing.T) {
	var out bytes.Buffer
	in := scriptedPrompter(&out,
		"Alice\nSmith\nalice@example.com\n+12025550123\n1990-05-01\n",
		"Str0ng@Pass", "Str0ng@Pass")

	var got *request.RegisterRequest
	auth := &fakeAuthService{
		registerFn: func(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
			got = req
			return &entity.User{ID: 1}, nil
		},
	}
	h := NewAuthHandler(auth, session.NewHolder(), in, &out, zap.NewNop())

	require.NoError(t, h.SignUp(context.Background()))
	assert.Contains(t, out.String(), "Registration successful!")

	require.NotNil(t, got)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, string(entity.AccountTypeRegular), got.Role)
}

func TestSignUpPasswordMismatch(t *testing.T) {
	var out bytes.Buffer
	in := scriptedPrompter(&out,
		"Alice\nSmith\nalice@example.com\n+12025550123\n1990-05-01\n",
		"Str0ng@Pass", "Different@1")

	auth := &fakeAuthService{
		registerFn: func(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
			t.Fatal("Register must not run on mismatched passwords")
			return nil, nil
		},
	}
	h := NewAuthHandler(auth, session.NewHolder(), in, &out, zap.NewNop())

	require.NoError(t, h.SignUp(context.Background()))
	assert.Contains(t, out.String(), "Passwords do not match.")
}

func TestSignUpReportsServiceError(t *testing.T) {
	var out bytes.Buffer
	in := scriptedPrompter(&out,
		"Alice\nSmith\nalice@example.com\n+12025550123\n1990-05-01\n",
		"Str0ng@Pass", "Str0ng@Pass")

	auth := &fakeAuthService{
		registerFn: func(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
			return nil, usecase.ErrEmailExists
		},
	}
	h := NewAuthHandler(auth, session.NewHolder(), in, &out, zap.NewNop())

	require.NoError(t, h.SignUp(context.Background()))
	assert.Contains(t, out.String(), usecase.ErrEmailExists.Error())
	assert.NotContains(t, out.String(), "Registration successful!")
}

func TestSignInFillsSessionSlot(t *testing.T) {
	var out bytes.Buffer
	in := scriptedPrompter(&out, "alice@example.com\n", "Str0ng@Pass")

	auth := &fakeAuthService{
		loginFn: func(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
			assert.Equal(t, "alice@example.com", req.Email)
			return &entity.User{ID: 3, FirstName: "Alice"}, nil
		},
	}
	holder := session.NewHolder()
	h := NewAuthHandler(auth, holder, in, &out, zap.NewNop())

	require.NoError(t, h.SignIn(context.Background()))
	assert.Contains(t, out.String(), "Login successful! Welcome, Alice")

	require.NotNil(t, holder.Current())
	assert.Equal(t, int64(3), holder.Current().User.ID)
}

func TestSignInFailureLeavesSlotEmpty(t *testing.T) {
	var out bytes.Buffer
	in := scriptedPrompter(&out, "alice@example.com\n", "Wrong@Pass1")

	auth := &fakeAuthService{
		loginFn: func(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	holder := session.NewHolder()
	h := NewAuthHandler(auth, holder, in, &out, zap.NewNop())

	require.NoError(t, h.SignIn(context.Background()))
	assert.Contains(t, out.String(), "Invalid email or password.")
	assert.Nil(t, holder.Current())
}

func TestSignOutEmptiesSlot(t *testing.T) {
	var out bytes.Buffer
	holder := session.NewHolder()
	holder.SignIn(&entity.User{ID: 1})

	h := NewAuthHandler(&fakeAuthService{}, holder, NewPrompter(strings.NewReader(""), &out), &out, zap.NewNop())
	h.SignOut()

	assert.Contains(t, out.String(), "Signed out successfully.")
	assert.Nil(t, holder.Current())
}
