package usecase

import (
	"context"
	"testing"
	"time"

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

func newReviewFixture(t *testing.T) (*mockReviewRepo, *mockTitleRepo, *mockUserRepo, ReviewService) {
	t.Helper()

	reviewRepo := &mockReviewRepo{}
	titleRepo := &mockTitleRepo{}
	userRepo := &mockUserRepo{}

	repo := &repository.Repository{
		Review: reviewRepo,
		Title:  titleRepo,
		User:   userRepo,
	}

	service := NewReviewService(repo, zap.NewNop())
	return reviewRepo, titleRepo, userRepo, service
}

func TestCreateReviewHappyPath(t *testing.T) {
	reviewRepo, titleRepo, userRepo, service := newReviewFixture(t)

	title := &entity.Title{Base: entity.Base{ID: uuid.New()}, Name: "Dune"}
	actor := Actor{ID: uuid.New(), Role: entity.RoleUser}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	reviewRepo.On("FindByAuthorAndTitle", mock.Anything, actor.ID, title.ID).Return(nil, nil)
	reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(review *entity.Review) bool {
		return review.TitleID == title.ID && review.AuthorID == actor.ID && review.Score == 9
	})).Return(nil)
	userRepo.On("FindByID", mock.Anything, actor.ID).Return(&entity.User{
		Base:     entity.Base{ID: actor.ID},
		Username: "bookworm42",
	}, nil)

	resp, err := service.CreateReview(context.Background(), title.ID.String(), actor, &request.CreateReviewRequest{
		Score: 9,
		Text:  "Loved it",
	})

	require.NoError(t, err)
	assert.Equal(t, 9, resp.Score)
	assert.Equal(t, "bookworm42", resp.Author)
	reviewRepo.AssertExpectations(t)
}

func TestCreateReviewSecondReviewIsConflict(t *testing.T) {
	reviewRepo, titleRepo, _, service := newReviewFixture(t)

	title := &entity.Title{Base: entity.Base{ID: uuid.New()}}
	actor := Actor{ID: uuid.New(), Role: entity.RoleUser}
	existing := &entity.Review{ID: uuid.New(), TitleID: title.ID, AuthorID: actor.ID}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	reviewRepo.On("FindByAuthorAndTitle", mock.Anything, actor.ID, title.ID).Return(existing, nil)

	_, err := service.CreateReview(context.Background(), title.ID.String(), actor, &request.CreateReviewRequest{
		Score: 5,
		Text:  "Changed my mind",
	})

	require.ErrorIs(t, err, apperror.ErrConflict)
	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReviewUnknownTitleIsNotFound(t *testing.T) {
	_, titleRepo, _, service := newReviewFixture(t)

	missing := uuid.New()
	titleRepo.On("FindByID", mock.Anything, missing).Return(nil, nil)

	_, err := service.CreateReview(context.Background(), missing.String(), Actor{ID: uuid.New()}, &request.CreateReviewRequest{
		Score: 5,
		Text:  "On nothing",
	})

	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetReviewByIDAuthorLookupFailureIsAnError(t *testing.T) {
	reviewRepo, titleRepo, userRepo, service := newReviewFixture(t)

	title := &entity.Title{Base: entity.Base{ID: uuid.New()}}
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: uuid.New(),
	}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)
	userRepo.On("FindByID", mock.Anything, review.AuthorID).Return(nil, assert.AnError)

	resp, err := service.GetReviewByID(context.Background(), title.ID.String(), review.ID.String())

	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, resp)
}

func TestGetReviewByIDDeletedAuthorLeavesNameEmpty(t *testing.T) {
	reviewRepo, titleRepo, userRepo, service := newReviewFixture(t)

	title := &entity.Title{Base: entity.Base{ID: uuid.New()}}
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: uuid.New(),
	}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)
	userRepo.On("FindByID", mock.Anything, review.AuthorID).Return(nil, nil)

	resp, err := service.GetReviewByID(context.Background(), title.ID.String(), review.ID.String())

	require.NoError(t, err)
	assert.Empty(t, resp.Author)
}

func TestGetReviewByIDChecksNesting(t *testing.T) {
	reviewRepo, titleRepo, _, service := newReviewFixture(t)

	title := &entity.Title{Base: entity.Base{ID: uuid.New()}}
	otherTitle := uuid.New()
	review := &entity.Review{
		ID:      uuid.New(),
		TitleID: otherTitle,
		PubDate: time.Now(),
	}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)

	_, err := service.GetReviewByID(context.Background(), title.ID.String(), review.ID.String())

	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteReviewModeratorOverride(t *testing.T) {
	reviewRepo, titleRepo, _, service := newReviewFixture(t)

	title := &entity.Title{Base: entity.Base{ID: uuid.New()}}
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: uuid.New(),
	}
	moderator := Actor{ID: uuid.New(), Role: entity.RoleModerator}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)
	reviewRepo.On("Delete", mock.Anything, review.ID).Return(nil)

	err := service.DeleteReview(context.Background(), title.ID.String(), review.ID.String(), moderator)

	require.NoError(t, err)
	reviewRepo.AssertExpectations(t)
}

func TestDeleteReviewStrangerIsForbidden(t *testing.T) {
	reviewRepo, titleRepo, _, service := newReviewFixture(t)

	title := &entity.Title{Base: entity.Base{ID: uuid.New()}}
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: uuid.New(),
	}
	stranger := Actor{ID: uuid.New(), Role: entity.RoleUser}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)

	err := service.DeleteReview(context.Background(), title.ID.String(), review.ID.String(), stranger)

	require.ErrorIs(t, err, apperror.ErrForbidden)
	reviewRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdateReviewAuthorCanEdit(t *testing.T) {
	reviewRepo, titleRepo, userRepo, service := newReviewFixture(t)

	title := &entity.Title{Base: entity.Base{ID: uuid.New()}}
	author := Actor{ID: uuid.New(), Role: entity.RoleUser}
	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: author.ID,
		Score:    6,
		Text:     "Fine",
	}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)
	reviewRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.Review) bool {
		return r.ID == review.ID && r.Score == 8
	})).Return(nil)
	userRepo.On("FindByID", mock.Anything, author.ID).Return(&entity.User{
		Base:     entity.Base{ID: author.ID},
		Username: "bookworm42",
	}, nil)

	newScore := 8
	resp, err := service.UpdateReview(context.Background(), title.ID.String(), review.ID.String(), author, &request.UpdateReviewRequest{
		Score: &newScore,
	})

	require.NoError(t, err)
	assert.Equal(t, 8, resp.Score)
}
