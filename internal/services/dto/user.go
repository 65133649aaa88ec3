package dto

import (
	"time"

	"parttime_backend/internal/models"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Role      models.UserRole `json:"role"`
	Avatar    string          `json:"avatar,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}
