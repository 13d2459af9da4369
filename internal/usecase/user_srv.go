package usecase

import (
	"context"
	"strings"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	// UpdateProfile applies the edits in req to the target account. Empty
	// fields keep the stored value; the effective values are re-validated
	// like a registration. Returns the updated account.
	UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*entity.User, error)
	ChangePassword(ctx context.Context, userID int64, newPassword string) error
	// Delete removes target. An Admin target is refused unless the actor is
	// deleting their own account; the store cascades to reviews and shares.
	Delete(ctx context.Context, actorID, targetID int64) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ListAll(ctx context.Context) ([]*entity.User, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*entity.User, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, storeFault(err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Blank fields keep the stored value
	firstName := keepCurrent(req.FirstName, user.FirstName)
	lastName := keepCurrent(req.LastName, user.LastName)
	email := strings.ToLower(keepCurrent(req.Email, user.Email))
	mobile := keepCurrent(req.Mobile, user.Mobile)
	birthDateStr := keepCurrent(req.BirthDate, user.BirthDate.Format("2006-01-02"))

	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !utils.IsValidMobile(mobile) {
		return nil, ErrInvalidMobile
	}
	birthDate, ok := utils.ParseBirthDate(birthDateStr)
	if !ok {
		return nil, ErrInvalidBirthDate
	}
	if !utils.IsOldEnough(birthDate, time.Now()) {
		return nil, ErrTooYoung
	}

	// Uniqueness check skips the account's own row
	taken, err := s.repo.User.EmailTaken(ctx, email, userID)
	if err != nil {
		return nil, storeFault(err)
	}
	if taken {
		return nil, ErrEmailInUse
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.Mobile = mobile
	user.BirthDate = birthDate

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, storeFault(err)
	}

	s.log.Info("Profile updated", zap.Int64("user_id", userID))
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return ErrPasswordEmpty
	}
	if !utils.IsValidPassword(newPassword) {
		return ErrWeakPassword
	}

	// Changing the credential does not require the old one and does not end
	// the current session; the single operator just proved ownership by
	// signing in.
	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return storeFault(err)
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return storeFault(err)
	}

	s.log.Info("Password changed", zap.Int64("user_id", userID))
	return nil
}

func (s *userService) Delete(ctx context.Context, actorID, targetID int64) error {
	target, err := s.repo.User.FindByID(ctx, targetID)
	if err != nil {
		return storeFault(err)
	}
	if target == nil {
		return ErrUserNotFound
	}

	if target.Role == entity.AccountTypeAdmin && actorID != targetID {
		return ErrAdminDeleteAdmin
	}

	deleted, err := s.repo.User.Delete(ctx, targetID)
	if err != nil {
		return storeFault(err)
	}
	if !deleted {
		return ErrUserNotFound
	}

	s.log.Info("User deleted",
		zap.Int64("actor_id", actorID),
		zap.Int64("target_id", targetID),
	)
	return nil
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.repo.User.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, storeFault(err)
	}
	return user, nil
}

func (s *userService) ListAll(ctx context.Context) ([]*entity.User, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, storeFault(err)
	}
	return users, nil
}

func keepCurrent(updated, current string) string {
	updated = strings.TrimSpace(updated)
	if updated == "" {
		return current
	}
	return updated
}
