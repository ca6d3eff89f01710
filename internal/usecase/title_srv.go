package usecase

import (
	"context"
	"fmt"
	"time"

	"reviewhub/internal/data/entity"
	"reviewhub/internal/data/repository"
	"reviewhub/internal/dto/request"
	"reviewhub/internal/dto/response"
	"reviewhub/pkg/apperror"
	"reviewhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleService interface {
	CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error)
	GetTitles(ctx context.Context, filter request.TitleListFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	GetTitleByID(ctx context.Context, titleID string) (*response.TitleResponse, error)
	UpdateTitle(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error)
	DeleteTitle(ctx context.Context, titleID string) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

// CreateTitle resolves the category slug and all genre slugs before anything
// is written, so an unknown slug leaves no partial title behind.
func (s *titleService) CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create title validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  &category.ID,
	}

	if err := s.repo.Title.Create(ctx, title); err != nil {
		return nil, fmt.Errorf("create title: %w", err)
	}

	if err := s.linkGenres(ctx, title.ID, genres); err != nil {
		return nil, err
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name),
	)

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}

func (s *titleService) GetTitles(ctx context.Context, filter request.TitleListFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	repoFilter := repository.TitleFilter{
		CategorySlug: filter.Category,
		GenreSlug:    filter.Genre,
		Name:         filter.Name,
		Year:         filter.Year,
	}

	titles, err := s.repo.Title.FindAll(ctx, repoFilter, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get titles: %w", err)
	}

	total, err := s.repo.Title.CountAll(ctx, repoFilter)
	if err != nil {
		return nil, fmt.Errorf("count titles: %w", err)
	}

	titleResponses := make([]response.TitleResponse, len(titles))
	for i, title := range titles {
		resp, err := s.buildTitleResponse(ctx, title)
		if err != nil {
			return nil, err
		}
		titleResponses[i] = *resp
	}

	return response.NewPaginatedResponse(titleResponses, page.Page, page.PerPage, total), nil
}

func (s *titleService) GetTitleByID(ctx context.Context, titleID string) (*response.TitleResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	return s.buildTitleResponse(ctx, title)
}

func (s *titleService) UpdateTitle(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update title validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	// Resolve the new genre set before touching the junction table.
	var newGenres []*entity.Genre
	if req.Genres != nil {
		newGenres, err = s.resolveGenres(ctx, req.Genres)
		if err != nil {
			return nil, err
		}
	}

	title.UpdatedAt = time.Now()

	if err := s.repo.Title.Update(ctx, title); err != nil {
		return nil, fmt.Errorf("update title: %w", err)
	}

	if req.Genres != nil {
		genreIDs := make([]uuid.UUID, len(newGenres))
		for i, genre := range newGenres {
			genreIDs[i] = genre.ID
		}
		if err := s.repo.GenreTitle.ReplaceForTitle(ctx, title.ID, genreIDs); err != nil {
			return nil, fmt.Errorf("rewrite genre links: %w", err)
		}
	}

	s.log.Info("Title updated", zap.String("title_id", title.ID.String()))

	return s.buildTitleResponse(ctx, title)
}

func (s *titleService) DeleteTitle(ctx context.Context, titleID string) error {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return err
	}

	if err := s.repo.Title.Delete(ctx, title.ID); err != nil {
		return fmt.Errorf("delete title: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *titleService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "title %s not found", titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "title %s not found", titleID)
	}

	return title, nil
}

func (s *titleService) resolveCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	if category == nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "category %s not found", slug)
	}
	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	genres := make([]*entity.Genre, 0, len(slugs))
	for _, slug := range slugs {
		genre, err := s.repo.Genre.FindBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("resolve genre: %w", err)
		}
		if genre == nil {
			return nil, apperror.Wrap(apperror.ErrNotFound, "genre %s not found", slug)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

func (s *titleService) linkGenres(ctx context.Context, titleID uuid.UUID, genres []*entity.Genre) error {
	for _, genre := range genres {
		link := &entity.GenreTitle{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			TitleID: titleID,
			GenreID: genre.ID,
		}
		if err := s.repo.GenreTitle.Create(ctx, link); err != nil {
			return fmt.Errorf("link genre %s: %w", genre.Slug, err)
		}
	}
	return nil
}

func (s *titleService) buildTitleResponse(ctx context.Context, title *entity.Title) (*response.TitleResponse, error) {
	var category *entity.Category
	if title.CategoryID != nil {
		var err error
		category, err = s.repo.Category.FindByID(ctx, *title.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("load category: %w", err)
		}
	}

	genres, err := s.repo.Genre.FindByTitleID(ctx, title.ID)
	if err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}

	resp := response.TitleToResponse(title, category, genres)
	return &resp, nil
}
