package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revana/cmd/api/auth"
	"revana/cmd/api/dto"
	"revana/models"
	"revana/repositories"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserStore) UpsertByEmail(_ context.Context, u *models.User) (*models.User, error) {
	stored, ok := f.users[u.Email]
	if !ok {
		stored = &models.User{Email: u.Email, CreatedAt: time.Now()}
		f.users[u.Email] = stored
	}
	stored.Username = u.Username
	stored.Picture = u.Picture
	stored.Provider = u.Provider
	return stored, nil
}

func newUserService(t *testing.T) (*UserService, *fakeUserStore, *auth.JWTManager) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	manager, err := auth.NewJWTManagerFromEnv()
	require.NoError(t, err)
	store := &fakeUserStore{users: map[string]*models.User{}}
	return NewUserService(store, manager), store, manager
}

func TestSigninCreatesAccountAndIssuesToken(t *testing.T) {
	svc, store, manager := newUserService(t)

	resp, err := svc.Signin(context.Background(), dto.SigninRequestDTO{
		Email:   "me@example.com",
		Name:    "Me",
		Picture: "pic",
	})

	require.NoError(t, err)
	assert.Equal(t, "me@example.com", resp.User.Email)
	assert.Contains(t, store.users, "me@example.com")

	email, err := manager.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", email)
}

func TestSigninRefreshesProfile(t *testing.T) {
	svc, store, _ := newUserService(t)

	_, err := svc.Signin(context.Background(), dto.SigninRequestDTO{Email: "me@example.com", Name: "Old Name"})
	require.NoError(t, err)
	_, err = svc.Signin(context.Background(), dto.SigninRequestDTO{Email: "me@example.com", Name: "New Name"})
	require.NoError(t, err)

	assert.Equal(t, "New Name", store.users["me@example.com"].Username)
}

func TestProfileUnknownUser(t *testing.T) {
	svc, _, _ := newUserService(t)

	_, err := svc.Profile(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
