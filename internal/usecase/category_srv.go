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
	"reviewhub/pkg/database"
	"reviewhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	GetCategories(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	DeleteCategory(ctx context.Context, slug string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.ErrConflict, "category %s already exists", req.Slug)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created", zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) GetCategories(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.repo.Category.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}

	total, err := s.repo.Category.CountAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		categoryResponses[i] = response.CategoryToResponse(category)
	}

	return response.NewPaginatedResponse(categoryResponses, page.Page, page.PerPage, total), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, slug string) error {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return apperror.Wrap(apperror.ErrNotFound, "category %s not found", slug)
	}

	if err := s.repo.Category.Delete(ctx, slug); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return nil
}
