package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"main/dto"
	"main/model"
	"main/services"
	"main/utils"
)

// UserRepository is the data access surface the account registry
// needs. Implementations map "no row" to model.ErrUserNotFound.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
	FindUserByID(ctx context.Context, userID string) (*model.User, error)
}

type UserService struct {
	UsersRepo UserRepository
}

// Register validates the request, hashes the credential and persists a
// new account. The returned user carries the hash; callers expose it
// through dto.ToUserResponse only.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	if err := utils.Validator().Struct(req); err != nil {
		return nil, fieldErrors(err)
	}

	_, err := s.UsersRepo.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return nil, ValidationErrors{"username": {"username already exists"}}
	case !errors.Is(err, model.ErrUserNotFound):
		return nil, fmt.Errorf("register lookup: %w", err)
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register hash: %w", err)
	}

	user := &model.User{
		UserID:    uuid.New().String(),
		Username:  req.Username,
		Password:  hash,
		CreatedAt: time.Now(),
	}

	if err := s.UsersRepo.CreateUser(ctx, user); err != nil {
		// The unique index catches a concurrent registration that
		// slipped past the lookup above.
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil, ValidationErrors{"username": {"username already exists"}}
		}
		return nil, fmt.Errorf("register insert: %w", err)
	}

	utils.TrackRegistration()
	return user, nil
}

// Authenticate resolves a username/password pair to the stored account.
// Unknown username and wrong password are reported identically.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate lookup: %w", err)
	}

	if !services.ComparePasswords(user.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) FindUserByID(ctx context.Context, userID string) (*model.User, error) {
	return s.UsersRepo.FindUserByID(ctx, userID)
}
