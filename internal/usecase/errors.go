// Business-rule refusals and validation failures are sentinel errors whose
// text is the exact sentence shown to the operator; tests assert on these
// strings, so changing one is an interface change.
package usecase

import (
	"errors"
	"fmt"
)

var (
	// Registration and profile validation.
	ErrAllFieldsRequired = errors.New("All fields are required.")
	ErrInvalidRole       = errors.New("Invalid account type. Must be 'Admin' or 'Regular'.")
	ErrInvalidEmail      = errors.New("Invalid email format.")
	ErrInvalidMobile     = errors.New("Invalid mobile number format (10-15 digits or +).")
	ErrWeakPassword      = errors.New("Password must be at least 8 characters, with uppercase, lowercase, digit, and special character.")
	ErrInvalidBirthDate  = errors.New("Invalid birth date format (use YYYY-MM-DD).")
	ErrTooYoung          = errors.New("You must be at least 13 years old.")
	ErrEmailExists       = errors.New("Email already exists.")
	ErrEmailInUse        = errors.New("Email already in use by another user.")
	ErrPasswordEmpty     = errors.New("Password cannot be empty.")

	// Authentication. Unknown email and wrong password share one message so
	// the sign-in prompt cannot be used to enumerate accounts.
	ErrCredentialsRequired = errors.New("Email and password are required.")
	ErrInvalidCredentials  = errors.New("Invalid email or password.")

	// Account management.
	ErrUserNotFound     = errors.New("User not found.")
	ErrAdminDeleteAdmin = errors.New("Admins cannot delete other Admin accounts.")

	// Reviews.
	ErrReviewTextEmpty   = errors.New("Review text cannot be empty.")
	ErrReviewTextTooLong = errors.New("Review text exceeds 1024 characters.")
	ErrRatingOutOfRange  = errors.New("Rating must be between 1 and 5.")
	ErrInvalidMovieID    = errors.New("Invalid movie ID.")
	ErrAlreadyReviewed   = errors.New("You have already reviewed this movie.")
	ErrReviewEditDenied  = errors.New("Review not found or you don't have permission to edit it.")
	ErrReviewDelDenied   = errors.New("Review not found or you don't have permission to delete it.")
	ErrReviewNotFound    = errors.New("Review not found.")
	ErrAdminOnly         = errors.New("Only Admin accounts can delete other users' reviews.")

	// Sharing.
	ErrShareNotOwner     = errors.New("Review not found or you don't own it.")
	ErrRecipientNotFound = errors.New("User with that email not found.")
	ErrShareWithSelf     = errors.New("You cannot share a review with yourself.")
	ErrAlreadyShared     = errors.New("Review already shared with this user.")
	ErrShareEmailEmpty   = errors.New("Email cannot be empty.")

	ErrMovieNotFound  = errors.New("Movie not found.")
	ErrNoUserSignedIn = errors.New("No user is currently logged in.")
)

// storeFault wraps a persistence error in the generic sentence the console
// shows for store failures.
func storeFault(err error) error {
	return fmt.Errorf("Operation failed: %v", err)
}
