package response

import (
	"movie-reviews/internal/data/entity"
)

type UserResponse struct {
	ID       int64
	Email    string
	FullName string
	Role     entity.AccountType
}

func UserToResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName(),
		Role:     u.Role,
	}
}
