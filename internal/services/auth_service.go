package services

import (
	"time"

	"parttime_backend/internal/auth"
	"parttime_backend/internal/config"
	"parttime_backend/internal/models"
	"parttime_backend/internal/repositories"
	"parttime_backend/internal/services/dto"
	"parttime_backend/internal/validator"
	"parttime_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo  repositories.UserRepository
	validator *validator.Validator
}

func NewAuthService(userRepo repositories.UserRepository, v *validator.Validator) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		validator: v,
	}
}

// Register creates an account. The role is fixed at creation and defaults
// to student; the remaining field requirements come from the role-selected
// registration schema.
func (s *AuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.UserRoleStudent
	}

	if err := validator.ValidateRegistration(role, map[string]string{
		"phone": req.Phone,
	}); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.userRepo.FindByUsername(db, req.Username); err == nil {
		return nil, apperrors.ErrUsernameAlreadyExists
	}
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *AuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(db, user)
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// refresh token is revoked.
func (s *AuthService) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

// Logout revokes the given refresh token.
func (s *AuthService) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// LogoutAll revokes every refresh token the user holds, ending all of their
// sessions at once.
func (s *AuthService) LogoutAll(db *gorm.DB, userID string) error {
	if err := s.userRepo.DeleteUserRefreshTokens(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour),
	}
	if err := s.userRepo.CreateRefreshToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         dto.NewUserResponse(user),
	}, nil
}
