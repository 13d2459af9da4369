package adaptor

import (
	"context"
	"fmt"
	"io"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/session"
	"movie-reviews/internal/usecase"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth    usecase.AuthService
	session session.Holder
	in      *Prompter
	out     io.Writer
	log     *zap.Logger
}

func NewAuthHandler(auth usecase.AuthService, holder session.Holder, in *Prompter, out io.Writer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:    auth,
		session: holder,
		in:      in,
		out:     out,
		log:     log,
	}
}

// SignUp registers a Regular account from the unauthenticated menu.
func (h *AuthHandler) SignUp(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n=== Sign Up ===")

	req, err := promptRegistration(h.in, h.out, entity.AccountTypeRegular)
	if err != nil {
		return err
	}
	if req == nil {
		return nil // password mismatch, already reported
	}

	if _, err := h.auth.Register(ctx, req); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "Registration successful!")
	return nil
}

func (h *AuthHandler) SignIn(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n=== Sign In ===")

	email, err := h.in.String("Email: ")
	if err != nil {
		return err
	}
	password, err := h.in.Password("Password: ")
	if err != nil {
		return err
	}

	user, err := h.auth.Login(ctx, &request.LoginRequest{Email: email, Password: password})
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	h.session.SignIn(user)
	fmt.Fprintf(h.out, "Login successful! Welcome, %s\n", user.FirstName)
	return nil
}

func (h *AuthHandler) SignOut() {
	h.session.SignOut()
	fmt.Fprintln(h.out, "Signed out successfully.")
}

// promptRegistration gathers the registration fields with a typed password
// confirmation. A nil request with nil error means the confirmation failed.
// Shared by sign-up and the admin user-management menu.
func promptRegistration(in *Prompter, out io.Writer, role entity.AccountType) (*request.RegisterRequest, error) {
	firstName, err := in.String("First Name: ")
	if err != nil {
		return nil, err
	}
	lastName, err := in.String("Last Name: ")
	if err != nil {
		return nil, err
	}
	email, err := in.String("Email Address: ")
	if err != nil {
		return nil, err
	}
	mobile, err := in.String("Contact Number: ")
	if err != nil {
		return nil, err
	}
	birthDate, err := in.String("Birth Date (YYYY-MM-DD): ")
	if err != nil {
		return nil, err
	}
	password, err := in.Password("Password: ")
	if err != nil {
		return nil, err
	}
	confirm, err := in.Password("Confirm Password: ")
	if err != nil {
		return nil, err
	}

	if password != confirm {
		fmt.Fprintln(out, "Passwords do not match.")
		return nil, nil
	}

	return &request.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Mobile:    mobile,
		BirthDate: birthDate,
		Password:  password,
		Role:      string(role),
	}, nil
}
