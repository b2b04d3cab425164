package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/riderlink/riderlink/internal/pkg/logger"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// UserUC implements account management.
type UserUC struct {
	repo fleet.Repository
}

// NewUserUC creates the user use case.
func NewUserUC(repo fleet.Repository) fleet.UserUC {
	return &UserUC{repo: repo}
}

// ListUsers returns every account, newest last.
func (uc *UserUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	return uc.repo.ListUsers(ctx)
}

// CreateUser registers a new account with a bcrypt-hashed password.
func (uc *UserUC) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	user, err := uc.repo.CreateUser(ctx, &models.User{
		Email:        req.Email,
		Password:     string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
		Active:       active,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User created",
		logger.Int64("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)
	return user, nil
}

// UpdateUser applies a partial update; absent fields are untouched.
func (uc *UserUC) UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	if err := checkInput(patch); err != nil {
		return nil, err
	}

	user, err := uc.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fleet.ErrNotFound
	}
	return user, nil
}
