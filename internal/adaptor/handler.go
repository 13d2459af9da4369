// Package adaptor is the console surface: menus, prompts and printing. It is
// the only layer that talks to the operator; every operation it invokes
// returns an error whose text is the sentence to show, so faults never
// terminate the process.
package adaptor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/session"
	"movie-reviews/internal/usecase"

	"go.uber.org/zap"
)

// errQuit unwinds the dispatcher loop when the operator picks Exit.
var errQuit = errors.New("quit")

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Movie  *MovieHandler
	Review *ReviewHandler

	session session.Holder
	in      *Prompter
	out     io.Writer
	log     *zap.Logger
}

func NewHandler(service *usecase.Service, holder session.Holder, in *Prompter, out io.Writer, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, holder, in, out, log),
		User:    NewUserHandler(service.User, service.Auth, holder, in, out, log),
		Movie:   NewMovieHandler(service.Movie, in, out, log),
		Review:  NewReviewHandler(service.Review, holder, in, out, log),
		session: holder,
		in:      in,
		out:     out,
		log:     log.With(zap.String("adaptor", "console")),
	}
}

// Run is the dispatcher: it consults the session slot before every render
// and shows the menu set the current role permits. It returns when the
// operator exits or ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	for {
		var err error
		current := h.session.Current()
		switch {
		case current == nil:
			err = h.mainMenu(ctx)
		case current.User.IsAdmin():
			err = h.adminMenu(ctx)
		default:
			err = h.signedInMenu(ctx)
		}

		if errors.Is(err, errQuit) {
			fmt.Fprintln(h.out, "Exiting...")
			return nil
		}
		// Ctrl-C and a closed stdin are clean shutdowns, not faults.
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			fmt.Fprintln(h.out)
			h.log.Info("Input closed, shutting down")
			return nil
		}
		if err != nil {
			// Read failure; business errors are handled inside the menu
			// actions.
			return err
		}
	}
}

func (h *Handler) mainMenu(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n---- MAIN MENU ----")
	fmt.Fprintln(h.out, "1. Sign Up")
	fmt.Fprintln(h.out, "2. Sign In")
	fmt.Fprintln(h.out, "3. Exit")

	choice, err := h.in.IntInRange(ctx, "Choose an option: ", 1, 3)
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return h.Auth.SignUp(ctx)
	case 2:
		return h.Auth.SignIn(ctx)
	case 3:
		return errQuit
	}
	return nil
}

func (h *Handler) signedInMenu(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n--- SIGNED-IN MENU ---")
	fmt.Fprintln(h.out, "1. Edit Profile")
	fmt.Fprintln(h.out, "2. Change Password")
	fmt.Fprintln(h.out, "3. View All Movies")
	fmt.Fprintln(h.out, "4. Create a Review")
	fmt.Fprintln(h.out, "5. Edit a Review")
	fmt.Fprintln(h.out, "6. Delete My Review")
	fmt.Fprintln(h.out, "7. View My Own Reviews")
	fmt.Fprintln(h.out, "8. View Shared Reviews")
	fmt.Fprintln(h.out, "9. Share a Review")
	fmt.Fprintln(h.out, "10. View Movie Details")
	fmt.Fprintln(h.out, "11. Sign Out")

	choice, err := h.in.IntInRange(ctx, "Choose an option: ", 1, 11)
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return h.User.EditProfile(ctx)
	case 2:
		return h.User.ChangePassword(ctx)
	case 3:
		return h.Movie.ViewAllMovies(ctx)
	case 4:
		return h.Review.CreateReview(ctx)
	case 5:
		return h.Review.EditReview(ctx)
	case 6:
		return h.Review.DeleteMyReview(ctx)
	case 7:
		return h.Review.ViewMyReviews(ctx)
	case 8:
		return h.Review.ViewSharedReviews(ctx)
	case 9:
		return h.Review.ShareReview(ctx)
	case 10:
		return h.Movie.ViewMovieDetails(ctx)
	case 11:
		h.Auth.SignOut()
	}
	return nil
}

func (h *Handler) adminMenu(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n--- ADMIN MENU ---")
	fmt.Fprintln(h.out, "1. User Management")
	fmt.Fprintln(h.out, "2. Edit Profile")
	fmt.Fprintln(h.out, "3. Change Password")
	fmt.Fprintln(h.out, "4. View All Movies")
	fmt.Fprintln(h.out, "5. Create a Review")
	fmt.Fprintln(h.out, "6. Edit a Review")
	fmt.Fprintln(h.out, "7. Delete My Review")
	fmt.Fprintln(h.out, "8. Delete Any Review")
	fmt.Fprintln(h.out, "9. View All Reviews")
	fmt.Fprintln(h.out, "10. View My Own Reviews")
	fmt.Fprintln(h.out, "11. View Shared Reviews")
	fmt.Fprintln(h.out, "12. Share a Review")
	fmt.Fprintln(h.out, "13. View Movie Details")
	fmt.Fprintln(h.out, "14. Sign Out")

	choice, err := h.in.IntInRange(ctx, "Choose an option: ", 1, 14)
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return h.User.UserManagement(ctx)
	case 2:
		return h.User.EditProfile(ctx)
	case 3:
		return h.User.ChangePassword(ctx)
	case 4:
		return h.Movie.ViewAllMovies(ctx)
	case 5:
		return h.Review.CreateReview(ctx)
	case 6:
		return h.Review.EditReview(ctx)
	case 7:
		return h.Review.DeleteMyReview(ctx)
	case 8:
		return h.Review.DeleteAnyReview(ctx)
	case 9:
		return h.Review.ViewAllReviews(ctx)
	case 10:
		return h.Review.ViewMyReviews(ctx)
	case 11:
		return h.Review.ViewSharedReviews(ctx)
	case 12:
		return h.Review.ShareReview(ctx)
	case 13:
		return h.Movie.ViewMovieDetails(ctx)
	case 14:
		h.Auth.SignOut()
	}
	return nil
}

// currentUser returns the signed-in account; menus that need one are only
// reachable with a session, so nil means the dispatcher has a bug.
func currentUser(holder session.Holder) *entity.User {
	if s := holder.Current(); s != nil {
		return s.User
	}
	return nil
}
