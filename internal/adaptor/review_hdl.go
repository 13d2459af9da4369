package adaptor

import (
	"context"
	"fmt"
	"io"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/session"
	"movie-reviews/internal/usecase"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	review  usecase.ReviewService
	session session.Holder
	in      *Prompter
	out     io.Writer
	log     *zap.Logger
}

func NewReviewHandler(review usecase.ReviewService, holder session.Holder, in *Prompter, out io.Writer, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		review:  review,
		session: holder,
		in:      in,
		out:     out,
		log:     log,
	}
}

func (h *ReviewHandler) CreateReview(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n=== Create Review ===")
	movieID, err := h.in.Int64(ctx, "Enter Movie ID: ")
	if err != nil {
		return err
	}
	body, err := h.in.String("Review: ")
	if err != nil {
		return err
	}
	rating, err := h.in.Int(ctx, "Rating (1-5): ")
	if err != nil {
		return err
	}

	if _, err := h.review.Create(ctx, user.ID, movieID, body, rating); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "Review created successfully.")
	return nil
}

func (h *ReviewHandler) EditReview(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n=== Edit Review ===")
	reviewID, err := h.in.Int64(ctx, "Enter Review ID: ")
	if err != nil {
		return err
	}
	body, err := h.in.String("New Review: ")
	if err != nil {
		return err
	}
	rating, err := h.in.Int(ctx, "New Rating (1-5): ")
	if err != nil {
		return err
	}

	if err := h.review.Edit(ctx, reviewID, user.ID, body, rating); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "Review updated successfully.")
	return nil
}

func (h *ReviewHandler) DeleteMyReview(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n=== Delete My Review ===")
	reviewID, err := h.in.Int64(ctx, "Enter Review ID: ")
	if err != nil {
		return err
	}

	confirmed, err := h.in.Confirm("Confirm deletion (Y/N): ")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(h.out, "Deletion cancelled.")
		return nil
	}

	if err := h.review.DeleteOwn(ctx, reviewID, user.ID); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "Review deleted successfully.")
	return nil
}

// DeleteAnyReview is the admin moderation path.
func (h *ReviewHandler) DeleteAnyReview(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n=== Delete Review ===")
	reviewID, err := h.in.Int64(ctx, "Enter Review ID: ")
	if err != nil {
		return err
	}

	confirmed, err := h.in.Confirm("Confirm deletion (Y/N): ")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(h.out, "Deletion cancelled.")
		return nil
	}

	if err := h.review.DeleteAny(ctx, user, reviewID); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "Review deleted successfully.")
	return nil
}

func (h *ReviewHandler) ViewAllReviews(ctx context.Context) error {
	details, err := h.review.ListAll(ctx)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n--- All Reviews ---")
	h.printReviews(details, false)
	return nil
}

func (h *ReviewHandler) ViewMyReviews(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	details, err := h.review.ListOwn(ctx, user.ID)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n--- My Reviews ---")
	h.printReviews(details, false)
	return nil
}

func (h *ReviewHandler) ViewSharedReviews(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	details, err := h.review.ListSharedWith(ctx, user.ID)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n--- Reviews Shared With Me ---")
	h.printReviews(details, true)
	return nil
}

func (h *ReviewHandler) ShareReview(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n=== Share Review ===")
	reviewID, err := h.in.Int64(ctx, "Enter Review ID: ")
	if err != nil {
		return err
	}
	email, err := h.in.String("Recipient's Email Address: ")
	if err != nil {
		return err
	}

	if err := h.review.Share(ctx, reviewID, user.ID, email); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "Review shared successfully.")
	return nil
}

func (h *ReviewHandler) printReviews(details []*entity.ReviewDetail, shared bool) {
	if len(details) == 0 {
		fmt.Fprintln(h.out, "No reviews found.")
		return
	}
	for _, r := range response.ReviewDetailsToResponses(details) {
		fmt.Fprintf(h.out, "Review ID: %d, Movie: %s, Author: %s, Rating: %d/5\n",
			r.ID, r.MovieTitle, r.Author, r.Rating)
		fmt.Fprintf(h.out, "  %s\n", r.Body)
		if shared && r.SharedAt != nil {
			fmt.Fprintf(h.out, "  Shared on: %s\n", r.SharedAt.Format("2006-01-02 15:04"))
		} else {
			fmt.Fprintf(h.out, "  Last modified: %s\n", r.ModifiedAt.Format("2006-01-02 15:04"))
		}
	}
}
