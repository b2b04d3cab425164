package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/riderlink/riderlink/internal/pkg/jwt"
	"github.com/riderlink/riderlink/internal/pkg/logger"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// AuthUC implements session establishment against the user store.
type AuthUC struct {
	repo   fleet.Repository
	jwtCfg models.JWTConfig
}

// NewAuthUC creates the auth use case.
func NewAuthUC(repo fleet.Repository, jwtCfg models.JWTConfig) fleet.AuthUC {
	return &AuthUC{repo: repo, jwtCfg: jwtCfg}
}

// Login verifies credentials and mints a session token. Unknown emails,
// wrong passwords and deactivated accounts all map to the same error so
// the response does not leak which one failed.
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, fleet.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fleet.ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Role, uc.jwtCfg)
	if err != nil {
		logger.Error("Failed to generate session token", logger.Err(err))
		return nil, err
	}

	logger.Info("User logged in",
		logger.Int64("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return &models.AuthResponse{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// CurrentUser resolves the session identity to a full account record.
func (uc *AuthUC) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fleet.ErrNotFound
	}
	return user, nil
}
