package usecase

import (
	"context"
	"testing"
	"time"

	"reviewhub/internal/data/entity"
	"reviewhub/internal/data/repository"
	"reviewhub/internal/dto/request"
	"reviewhub/pkg/apperror"
	"reviewhub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*mockUserRepo, *mockConfirmationRepo, *mockMailer, *fakeSigner, AuthService) {
	t.Helper()

	userRepo := &mockUserRepo{}
	confRepo := &mockConfirmationRepo{}
	mail := &mockMailer{}
	signer := &fakeSigner{
		token:     "signed-token",
		expiresAt: time.Now().Add(24 * time.Hour),
	}

	repo := &repository.Repository{
		User:         userRepo,
		Confirmation: confRepo,
	}
	config := &utils.Config{
		Code: utils.CodeConfig{ExpiryMinutes: 15, Length: 6},
	}

	service := NewAuthService(repo, config, signer, mail, zap.NewNop())
	return userRepo, confRepo, mail, signer, service
}

func TestSignupNewUserIssuesCode(t *testing.T) {
	userRepo, confRepo, mail, _, service := newAuthFixture(t)

	userRepo.On("FindByUsername", mock.Anything, "bookworm42").Return(nil, nil)
	userRepo.On("FindByEmail", mock.Anything, "bookworm@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "bookworm42" && u.Role == entity.RoleUser
	})).Return(nil)
	confRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mail.On("Send", mock.Anything, "bookworm@example.com", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.Signup(context.Background(), &request.SignupRequest{
		Username: "bookworm42",
		Email:    "bookworm@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "bookworm42", resp.Username)
	assert.Equal(t, "bookworm@example.com", resp.Email)
	userRepo.AssertExpectations(t)
	confRepo.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestSignupExactPairIsIdempotent(t *testing.T) {
	userRepo, confRepo, mail, _, service := newAuthFixture(t)

	existing := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "bookworm42",
		Email:    "bookworm@example.com",
		Role:     entity.RoleUser,
	}

	userRepo.On("FindByUsername", mock.Anything, "bookworm42").Return(existing, nil)
	userRepo.On("FindByEmail", mock.Anything, "bookworm@example.com").Return(existing, nil)
	confRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mail.On("Send", mock.Anything, "bookworm@example.com", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.Signup(context.Background(), &request.SignupRequest{
		Username: "bookworm42",
		Email:    "bookworm@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "bookworm42", resp.Username)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupCollisionIsConflict(t *testing.T) {
	userRepo, _, _, _, service := newAuthFixture(t)

	taken := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "bookworm42",
		Email:    "someone-else@example.com",
	}

	userRepo.On("FindByUsername", mock.Anything, "bookworm42").Return(taken, nil)
	userRepo.On("FindByEmail", mock.Anything, "bookworm@example.com").Return(nil, nil)

	_, err := service.Signup(context.Background(), &request.SignupRequest{
		Username: "bookworm42",
		Email:    "bookworm@example.com",
	})

	require.ErrorIs(t, err, apperror.ErrConflict)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupRejectsReservedUsername(t *testing.T) {
	_, _, _, _, service := newAuthFixture(t)

	_, err := service.Signup(context.Background(), &request.SignupRequest{
		Username: "me",
		Email:    "me@example.com",
	})

	require.ErrorIs(t, err, apperror.ErrValidation)
}

func liveCode(t *testing.T, userID uuid.UUID, plain string) *entity.ConfirmationCode {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)

	return &entity.ConfirmationCode{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		CodeHash:   string(hash),
		ExpiresAt:  time.Now().Add(15 * time.Minute),
	}
}

func TestObtainTokenHappyPath(t *testing.T) {
	userRepo, confRepo, _, signer, service := newAuthFixture(t)

	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "bookworm42",
		Email:    "bookworm@example.com",
		Role:     entity.RoleUser,
	}
	code := liveCode(t, user.ID, "482913")

	userRepo.On("FindByUsername", mock.Anything, "bookworm42").Return(user, nil)
	confRepo.On("FindLiveByUserID", mock.Anything, user.ID).Return([]*entity.ConfirmationCode{code}, nil)
	confRepo.On("MarkAsUsed", mock.Anything, code.ID).Return(nil)

	resp, err := service.ObtainToken(context.Background(), &request.ObtainTokenRequest{
		Username:         "bookworm42",
		ConfirmationCode: "482913",
	})

	require.NoError(t, err)
	assert.Equal(t, signer.token, resp.Token)
	confRepo.AssertExpectations(t)
}

func TestObtainTokenWrongCode(t *testing.T) {
	userRepo, confRepo, _, _, service := newAuthFixture(t)

	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "bookworm42",
	}
	code := liveCode(t, user.ID, "482913")

	userRepo.On("FindByUsername", mock.Anything, "bookworm42").Return(user, nil)
	confRepo.On("FindLiveByUserID", mock.Anything, user.ID).Return([]*entity.ConfirmationCode{code}, nil)

	_, err := service.ObtainToken(context.Background(), &request.ObtainTokenRequest{
		Username:         "bookworm42",
		ConfirmationCode: "000000",
	})

	require.ErrorIs(t, err, apperror.ErrUnauthorized)
	confRepo.AssertNotCalled(t, "MarkAsUsed", mock.Anything, mock.Anything)
}

func TestObtainTokenCodeIsSingleUse(t *testing.T) {
	userRepo, confRepo, _, _, service := newAuthFixture(t)

	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "bookworm42",
	}
	code := liveCode(t, user.ID, "482913")

	userRepo.On("FindByUsername", mock.Anything, "bookworm42").Return(user, nil)
	confRepo.On("FindLiveByUserID", mock.Anything, user.ID).Return([]*entity.ConfirmationCode{code}, nil)
	confRepo.On("MarkAsUsed", mock.Anything, code.ID).Return(assert.AnError)

	_, err := service.ObtainToken(context.Background(), &request.ObtainTokenRequest{
		Username:         "bookworm42",
		ConfirmationCode: "482913",
	})

	require.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestObtainTokenUnknownUser(t *testing.T) {
	userRepo, _, _, _, service := newAuthFixture(t)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	_, err := service.ObtainToken(context.Background(), &request.ObtainTokenRequest{
		Username:         "ghost",
		ConfirmationCode: "482913",
	})

	require.ErrorIs(t, err, apperror.ErrNotFound)
}
