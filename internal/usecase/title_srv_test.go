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

func newTitleFixture(t *testing.T) (*mockTitleRepo, *mockCategoryRepo, *mockGenreRepo, *mockGenreTitleRepo, TitleService) {
	t.Helper()

	titleRepo := &mockTitleRepo{}
	categoryRepo := &mockCategoryRepo{}
	genreRepo := &mockGenreRepo{}
	genreTitleRepo := &mockGenreTitleRepo{}

	repo := &repository.Repository{
		Title:      titleRepo,
		Category:   categoryRepo,
		Genre:      genreRepo,
		GenreTitle: genreTitleRepo,
	}

	service := NewTitleService(repo, zap.NewNop())
	return titleRepo, categoryRepo, genreRepo, genreTitleRepo, service
}

func TestCreateTitleLinksCategoryAndGenres(t *testing.T) {
	titleRepo, categoryRepo, genreRepo, genreTitleRepo, service := newTitleFixture(t)

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Films",
		Slug:       "films",
	}
	drama := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Drama",
		Slug:       "drama",
	}

	categoryRepo.On("FindBySlug", mock.Anything, "films").Return(category, nil)
	genreRepo.On("FindBySlug", mock.Anything, "drama").Return(drama, nil)
	titleRepo.On("Create", mock.Anything, mock.MatchedBy(func(title *entity.Title) bool {
		return title.Name == "Dune" && title.CategoryID != nil && *title.CategoryID == category.ID
	})).Return(nil)
	genreTitleRepo.On("Create", mock.Anything, mock.MatchedBy(func(link *entity.GenreTitle) bool {
		return link.GenreID == drama.ID
	})).Return(nil)

	resp, err := service.CreateTitle(context.Background(), &request.TitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: "films",
		Genres:   []string{"drama"},
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "films", resp.Category.Slug)
	require.Len(t, resp.Genres, 1)
	assert.Equal(t, "drama", resp.Genres[0].Slug)
	assert.Nil(t, resp.Rating)
	titleRepo.AssertExpectations(t)
	genreTitleRepo.AssertExpectations(t)
}

func TestCreateTitleUnknownCategoryPersistsNothing(t *testing.T) {
	titleRepo, categoryRepo, _, _, service := newTitleFixture(t)

	categoryRepo.On("FindBySlug", mock.Anything, "missing").Return(nil, nil)

	_, err := service.CreateTitle(context.Background(), &request.TitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: "missing",
	})

	require.ErrorIs(t, err, apperror.ErrNotFound)
	titleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTitleUnknownGenrePersistsNothing(t *testing.T) {
	titleRepo, categoryRepo, genreRepo, _, service := newTitleFixture(t)

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Films",
		Slug:       "films",
	}

	categoryRepo.On("FindBySlug", mock.Anything, "films").Return(category, nil)
	genreRepo.On("FindBySlug", mock.Anything, "nope").Return(nil, nil)

	_, err := service.CreateTitle(context.Background(), &request.TitleRequest{
		Name:     "Dune",
		Year:     2021,
		Category: "films",
		Genres:   []string{"nope"},
	})

	require.ErrorIs(t, err, apperror.ErrNotFound)
	titleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateTitleRewritesGenresInOneCall(t *testing.T) {
	titleRepo, _, genreRepo, genreTitleRepo, service := newTitleFixture(t)

	title := &entity.Title{
		Base: entity.Base{ID: uuid.New()},
		Name: "Dune",
		Year: 2021,
	}
	scifi := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Name:       "Sci-Fi",
		Slug:       "sci-fi",
	}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	genreRepo.On("FindBySlug", mock.Anything, "sci-fi").Return(scifi, nil)
	titleRepo.On("Update", mock.Anything, title).Return(nil)
	genreTitleRepo.On("ReplaceForTitle", mock.Anything, title.ID, []uuid.UUID{scifi.ID}).Return(nil)
	genreRepo.On("FindByTitleID", mock.Anything, title.ID).Return([]*entity.Genre{scifi}, nil)

	resp, err := service.UpdateTitle(context.Background(), title.ID.String(), &request.TitleUpdateRequest{
		Genres: []string{"sci-fi"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Genres, 1)
	assert.Equal(t, "sci-fi", resp.Genres[0].Slug)
	genreTitleRepo.AssertExpectations(t)
	genreTitleRepo.AssertNumberOfCalls(t, "ReplaceForTitle", 1)
	genreTitleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetTitleByIDCarriesRating(t *testing.T) {
	titleRepo, _, genreRepo, _, service := newTitleFixture(t)

	rating := 7.5
	title := &entity.Title{
		Base:   entity.Base{ID: uuid.New()},
		Name:   "Dune",
		Year:   2021,
		Rating: &rating,
	}

	titleRepo.On("FindByID", mock.Anything, title.ID).Return(title, nil)
	genreRepo.On("FindByTitleID", mock.Anything, title.ID).Return(nil, nil)

	resp, err := service.GetTitleByID(context.Background(), title.ID.String())

	require.NoError(t, err)
	require.NotNil(t, resp.Rating)
	assert.InDelta(t, 7.5, *resp.Rating, 0.001)
	assert.Nil(t, resp.Category)
}

func TestGetTitleByIDBadIDIsNotFound(t *testing.T) {
	_, _, _, _, service := newTitleFixture(t)

	_, err := service.GetTitleByID(context.Background(), "not-a-uuid")

	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteTitleUnknownIsNotFound(t *testing.T) {
	titleRepo, _, _, _, service := newTitleFixture(t)

	missing := uuid.New()
	titleRepo.On("FindByID", mock.Anything, missing).Return(nil, nil)

	err := service.DeleteTitle(context.Background(), missing.String())

	require.ErrorIs(t, err, apperror.ErrNotFound)
	titleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
