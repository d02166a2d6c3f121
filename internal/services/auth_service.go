package services

import (
	"time"

	"github.com/SujayAnishetti/ClinicalTrials/internal/auth"
	"github.com/SujayAnishetti/ClinicalTrials/internal/logger"
	"github.com/SujayAnishetti/ClinicalTrials/internal/repositories"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"
	"github.com/SujayAnishetti/ClinicalTrials/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
}

type AuthServiceImpl struct {
	adminRepo repositories.AdminUserRepository
	tokens    *auth.TokenManager
}

func NewAuthService(adminRepo repositories.AdminUserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

// Login authenticates an admin user and issues an access token. A
// missing account and a wrong password produce the same error.
func (s *AuthServiceImpl) Login(req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	user, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("admin login failed", "email", req.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminLoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.tokens.TTL()),
		Email:       user.Email,
		Role:        string(user.Role),
	}, nil
}
