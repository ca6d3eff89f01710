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

type GenreService interface {
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	GetGenres(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	DeleteGenre(ctx context.Context, slug string) error
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.ErrConflict, "genre %s already exists", req.Slug)
		}
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) GetGenres(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.repo.Genre.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	total, err := s.repo.Genre.CountAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.GenreToResponse(genre)
	}

	return response.NewPaginatedResponse(genreResponses, page.Page, page.PerPage, total), nil
}

func (s *genreService) DeleteGenre(ctx context.Context, slug string) error {
	genre, err := s.repo.Genre.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return apperror.Wrap(apperror.ErrNotFound, "genre %s not found", slug)
	}

	if err := s.repo.Genre.Delete(ctx, slug); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}

	return nil
}
