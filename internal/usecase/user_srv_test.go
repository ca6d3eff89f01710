package usecase

import (
	"context"
	"testing"

	"reviewhub/internal/data/entity"
	"reviewhub/internal/data/repository"
	"reviewhub/internal/dto/request"
	"reviewhub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture(t *testing.T) (*mockUserRepo, UserService) {
	t.Helper()

	userRepo := &mockUserRepo{}
	repo := &repository.Repository{User: userRepo}

	service := NewUserService(repo, zap.NewNop())
	return userRepo, service
}

func strPtr(s string) *string { return &s }

func TestCreateUserDefaultsToUserRole(t *testing.T) {
	userRepo, service := newUserFixture(t)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleUser
	})).Return(nil)

	resp, err := service.CreateUser(context.Background(), &request.CreateUserRequest{
		Username: "bookworm42",
		Email:    "bookworm@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Role)
}

func TestCreateUserAdminCanSetRole(t *testing.T) {
	userRepo, service := newUserFixture(t)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleModerator
	})).Return(nil)

	resp, err := service.CreateUser(context.Background(), &request.CreateUserRequest{
		Username: "curator",
		Email:    "curator@example.com",
		Role:     "moderator",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, resp.Role)
}

func TestUpdateSelfIgnoresRoleForPlainUser(t *testing.T) {
	userRepo, service := newUserFixture(t)

	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "bookworm42",
		Email:    "bookworm@example.com",
		Role:     entity.RoleUser,
	}

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleUser && u.Bio != nil && *u.Bio == "Reader"
	})).Return(nil)

	resp, err := service.UpdateSelf(context.Background(), user.ID, entity.RoleUser, &request.UpdateUserRequest{
		Role: strPtr("admin"),
		Bio:  strPtr("Reader"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Role)
	userRepo.AssertExpectations(t)
}

func TestUpdateSelfAdminCanChangeRole(t *testing.T) {
	userRepo, service := newUserFixture(t)

	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "rootadmin",
		Email:    "root@example.com",
		Role:     entity.RoleAdmin,
	}

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.UpdateSelf(context.Background(), user.ID, entity.RoleAdmin, &request.UpdateUserRequest{
		Role: strPtr("moderator"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, resp.Role)
}

func TestGetSelfGoneAccountIsUnauthorized(t *testing.T) {
	userRepo, service := newUserFixture(t)

	missing := uuid.New()
	userRepo.On("FindByID", mock.Anything, missing).Return(nil, nil)

	_, err := service.GetSelf(context.Background(), missing)

	require.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestDeleteUserUnknownIsNotFound(t *testing.T) {
	userRepo, service := newUserFixture(t)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	err := service.DeleteUserByUsername(context.Background(), "ghost")

	require.ErrorIs(t, err, apperror.ErrNotFound)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
