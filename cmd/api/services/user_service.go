package services

import (
	"context"
	"errors"
	"time"

	"revana/cmd/api/auth"
	"revana/cmd/api/dto"
	"revana/models"
	"revana/repositories"
)

// UserStore is the persistence surface of the account flows.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertByEmail(ctx context.Context, u *models.User) (*models.User, error)
}

// UserService handles sign-in and profile reads. Sign-in is an upsert:
// the first call creates the account, later calls refresh the mutable
// profile attributes.
type UserService struct {
	store UserStore
	jwt   *auth.JWTManager
}

func NewUserService(store UserStore, jwt *auth.JWTManager) *UserService {
	return &UserService{store: store, jwt: jwt}
}

// Signin upserts the account and issues a token for it.
func (s *UserService) Signin(ctx context.Context, req dto.SigninRequestDTO) (dto.SigninResponseDTO, error) {
	u, err := s.store.UpsertByEmail(ctx, &models.User{
		Email:    req.Email,
		Username: req.Name,
		Picture:  req.Picture,
		Provider: "google",
	})
	if err != nil {
		return dto.SigninResponseDTO{}, err
	}

	token, err := s.jwt.Sign(u.Email)
	if err != nil {
		return dto.SigninResponseDTO{}, err
	}

	return dto.SigninResponseDTO{
		Token: token,
		User:  mapUserProfile(u),
	}, nil
}

// Profile loads the account for the authenticated email.
func (s *UserService) Profile(ctx context.Context, email string) (dto.UserProfileDTO, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return dto.UserProfileDTO{}, ErrUserNotFound
	}
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	return mapUserProfile(u), nil
}

func mapUserProfile(u *models.User) dto.UserProfileDTO {
	return dto.UserProfileDTO{
		Email:     u.Email,
		Name:      u.Username,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
