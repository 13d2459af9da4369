package adaptor

import (
	"context"
	"fmt"
	"io"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/session"
	"movie-reviews/internal/usecase"

	"go.uber.org/zap"
)

type UserHandler struct {
	user    usecase.UserService
	auth    usecase.AuthService
	session session.Holder
	in      *Prompter
	out     io.Writer
	log     *zap.Logger
}

func NewUserHandler(user usecase.UserService, auth usecase.AuthService, holder session.Holder, in *Prompter, out io.Writer, log *zap.Logger) *UserHandler {
	return &UserHandler{
		user:    user,
		auth:    auth,
		session: holder,
		in:      in,
		out:     out,
		log:     log,
	}
}

func (h *UserHandler) EditProfile(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n=== Edit Profile ===")
	fmt.Fprintln(h.out, "Leave blank to keep current values.")

	req, err := h.promptProfileEdits(user)
	if err != nil {
		return err
	}

	updated, err := h.user.UpdateProfile(ctx, user.ID, req)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	// The slot keeps a copy of the account; refresh it so the next menu
	// render sees the new values.
	h.session.Refresh(updated)
	fmt.Fprintln(h.out, "Profile updated successfully.")
	return nil
}

func (h *UserHandler) ChangePassword(ctx context.Context) error {
	user := currentUser(h.session)
	if user == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n=== Change Password ===")
	newPassword, err := h.in.Password("New Password: ")
	if err != nil {
		return err
	}
	confirm, err := h.in.Password("Confirm New Password: ")
	if err != nil {
		return err
	}
	if newPassword != confirm {
		fmt.Fprintln(h.out, "Passwords do not match.")
		return nil
	}

	if err := h.user.ChangePassword(ctx, user.ID, newPassword); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "Password changed successfully.")
	return nil
}

// UserManagement is the admin submenu; it loops until Back is chosen.
func (h *UserHandler) UserManagement(ctx context.Context) error {
	for {
		fmt.Fprintln(h.out, "\n=== User Management Menu ===")
		fmt.Fprintln(h.out, "1. Add Admin User")
		fmt.Fprintln(h.out, "2. Add Regular User")
		fmt.Fprintln(h.out, "3. Update Regular User")
		fmt.Fprintln(h.out, "4. Delete User")
		fmt.Fprintln(h.out, "5. List All Users")
		fmt.Fprintln(h.out, "6. Back to Admin Menu")

		choice, err := h.in.IntInRange(ctx, "Choose an option: ", 1, 6)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = h.addUser(ctx, entity.AccountTypeAdmin)
		case 2:
			err = h.addUser(ctx, entity.AccountTypeRegular)
		case 3:
			err = h.updateRegularUser(ctx)
		case 4:
			err = h.deleteUser(ctx)
		case 5:
			err = h.listAllUsers(ctx)
		case 6:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (h *UserHandler) addUser(ctx context.Context, role entity.AccountType) error {
	if role == entity.AccountTypeAdmin {
		fmt.Fprintln(h.out, "\n=== Create Admin User ===")
		fmt.Fprintln(h.out, "Admin users have full control, including user management and data access.")
	} else {
		fmt.Fprintln(h.out, "\n=== Create Regular User ===")
		fmt.Fprintln(h.out, "Regular users have limited access, such as viewing resources and updating profiles.")
	}

	req, err := promptRegistration(h.in, h.out, role)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	if _, err := h.auth.Register(ctx, req); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintf(h.out, "%s user created successfully.\n", role)
	return nil
}

func (h *UserHandler) updateRegularUser(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n=== Update Regular User ===")
	email, err := h.in.String("Enter user's Email Address: ")
	if err != nil {
		return err
	}
	if email == "" {
		fmt.Fprintln(h.out, "Email cannot be empty.")
		return nil
	}

	target, err := h.user.FindByEmail(ctx, email)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}
	if target == nil || target.Role != entity.AccountTypeRegular {
		fmt.Fprintln(h.out, "Regular user with that email not found.")
		return nil
	}

	fmt.Fprintln(h.out, "Leave blank to keep current values.")
	req, err := h.promptProfileEdits(target)
	if err != nil {
		return err
	}

	resetPassword, err := h.in.String("Reset Password? (Enter new password or leave blank): ")
	if err != nil {
		return err
	}
	if resetPassword != "" {
		confirm, err := h.in.String("Confirm New Password: ")
		if err != nil {
			return err
		}
		if resetPassword != confirm {
			fmt.Fprintln(h.out, "Passwords do not match.")
			return nil
		}
		if err := h.user.ChangePassword(ctx, target.ID, resetPassword); err != nil {
			fmt.Fprintln(h.out, err.Error())
			return nil
		}
		fmt.Fprintln(h.out, "Password updated successfully.")
	}

	if _, err := h.user.UpdateProfile(ctx, target.ID, req); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "Regular user updated successfully.")
	return nil
}

func (h *UserHandler) deleteUser(ctx context.Context) error {
	actor := currentUser(h.session)
	if actor == nil {
		fmt.Fprintln(h.out, usecase.ErrNoUserSignedIn.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n=== Delete User ===")
	fmt.Fprintln(h.out, "This action is irreversible and will permanently remove the user's data.")
	email, err := h.in.String("Enter user's Email Address: ")
	if err != nil {
		return err
	}
	if email == "" {
		fmt.Fprintln(h.out, "Email cannot be empty.")
		return nil
	}

	target, err := h.user.FindByEmail(ctx, email)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}
	if target == nil {
		fmt.Fprintln(h.out, "User with that email not found.")
		return nil
	}

	confirmed, err := h.in.Confirm("Confirm deletion (Y/N): ")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(h.out, "Deletion cancelled.")
		return nil
	}

	if err := h.user.Delete(ctx, actor.ID, target.ID); err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	// Deleting yourself also ends the session.
	if target.ID == actor.ID {
		h.session.SignOut()
	}

	fmt.Fprintln(h.out, "User deleted successfully.")
	return nil
}

func (h *UserHandler) listAllUsers(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n=== List All Users ===")
	confirmed, err := h.in.Confirm("Display all users? (Y/N): ")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(h.out, "Operation cancelled.")
		return nil
	}

	users, err := h.user.ListAll(ctx)
	if err != nil {
		fmt.Fprintln(h.out, err.Error())
		return nil
	}

	fmt.Fprintln(h.out, "\n--- All Users ---")
	if len(users) == 0 {
		fmt.Fprintln(h.out, "No users found.")
		return nil
	}
	for _, user := range users {
		resp := response.UserToResponse(user)
		fmt.Fprintf(h.out, "ID: %d, Email: %s, Name: %s, Type: %s\n",
			resp.ID, resp.Email, resp.FullName, resp.Role)
	}
	return nil
}

func (h *UserHandler) promptProfileEdits(current *entity.User) (*request.UpdateProfileRequest, error) {
	firstName, err := h.in.String(fmt.Sprintf("First Name (%s): ", current.FirstName))
	if err != nil {
		return nil, err
	}
	lastName, err := h.in.String(fmt.Sprintf("Last Name (%s): ", current.LastName))
	if err != nil {
		return nil, err
	}
	email, err := h.in.String(fmt.Sprintf("Email (%s): ", current.Email))
	if err != nil {
		return nil, err
	}
	mobile, err := h.in.String(fmt.Sprintf("Mobile (%s): ", current.Mobile))
	if err != nil {
		return nil, err
	}
	birthDate, err := h.in.String(fmt.Sprintf("Birth Date (%s): ", current.BirthDate.Format("2006-01-02")))
	if err != nil {
		return nil, err
	}

	return &request.UpdateProfileRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Mobile:    mobile,
		BirthDate: birthDate,
	}, nil
}
