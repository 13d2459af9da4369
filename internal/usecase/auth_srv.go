package usecase

import (
	"context"
	"strings"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	// Register creates an account. Used by sign-up (always Regular) and by
	// the admin user-management menu (either role).
	Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error)
	// Login authenticates by email and password and returns the account.
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
}

type authService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
	// 1. Every field must be present after trimming
	trimRegisterRequest(req)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, ErrAllFieldsRequired
	}

	// 2. Ordered precondition checks, first violation wins
	role := entity.AccountType(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !utils.IsValidMobile(req.Mobile) {
		return nil, ErrInvalidMobile
	}
	if !utils.IsValidPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	birthDate, ok := utils.ParseBirthDate(req.BirthDate)
	if !ok {
		return nil, ErrInvalidBirthDate
	}
	if !utils.IsOldEnough(birthDate, time.Now()) {
		return nil, ErrTooYoung
	}

	// 3. Hash the credential before it ever reaches the store
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, storeFault(err)
	}

	user := &entity.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Mobile:       req.Mobile,
		BirthDate:    birthDate,
		PasswordHash: passwordHash,
		Role:         role,
	}

	// 4. Uniqueness check and insert share one transaction so a concurrent
	// writer cannot slip between them
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, storeFault(err)
	}
	defer tx.Rollback(ctx)

	userRepo := s.repo.User.WithTx(tx)

	taken, err := userRepo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, storeFault(err)
	}
	if taken {
		return nil, ErrEmailExists
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return nil, storeFault(err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit registration", zap.Error(err))
		return nil, storeFault(err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, ErrCredentialsRequired
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, storeFault(err)
	}

	// Unknown email and wrong password are indistinguishable on purpose.
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login attempt with wrong password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return user, nil
}

func trimRegisterRequest(req *request.RegisterRequest) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Mobile = strings.TrimSpace(req.Mobile)
	req.BirthDate = strings.TrimSpace(req.BirthDate)
	req.Role = strings.TrimSpace(req.Role)
}
