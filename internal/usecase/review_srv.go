package usecase

import (
	"context"
	"fmt"
	"time"

	"reviewhub/internal/data/entity"
	"reviewhub/internal/data/repository"
	"reviewhub/internal/dto/request"
	"reviewhub/internal/dto/response"
	"reviewhub/internal/permission"
	"reviewhub/pkg/apperror"
	"reviewhub/pkg/database"
	"reviewhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor is the authenticated caller as seen by content services.
type Actor struct {
	ID   uuid.UUID
	Role entity.UserRole
}

type ReviewService interface {
	CreateReview(ctx context.Context, titleID string, actor Actor, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, titleID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReviewByID(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, titleID, reviewID string, actor Actor, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, titleID, reviewID string, actor Actor) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// CreateReview adds the actor's review under a title. One review per
// (author, title) pair; the unique index backs up the pre-insert check.
func (s *reviewService) CreateReview(ctx context.Context, titleID string, actor Actor, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	title, err := s.resolveTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Review.FindByAuthorAndTitle(ctx, actor.ID, title.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, apperror.Wrap(apperror.ErrConflict, "you have already reviewed this title")
	}

	review := &entity.Review{
		ID:       uuid.New(),
		TitleID:  title.ID,
		AuthorID: actor.ID,
		Score:    req.Score,
		Text:     req.Text,
		PubDate:  time.Now(),
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.ErrConflict, "you have already reviewed this title")
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", title.ID.String()),
		zap.String("author_id", actor.ID.String()),
		zap.Int("score", req.Score),
	)

	return s.buildReviewResponse(ctx, review)
}

func (s *reviewService) GetReviews(ctx context.Context, titleID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	title, err := s.resolveTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, title.ID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	total, err := s.repo.Review.CountByTitleID(ctx, title.ID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		resp, err := s.buildReviewResponse(ctx, review)
		if err != nil {
			return nil, err
		}
		reviewResponses[i] = *resp
	}

	return response.NewPaginatedResponse(reviewResponses, page.Page, page.PerPage, total), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	return s.buildReviewResponse(ctx, review)
}

func (s *reviewService) UpdateReview(ctx context.Context, titleID, reviewID string, actor Actor, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !permission.CanModifyContribution(actor.Role, review.AuthorID, actor.ID) {
		return nil, apperror.Wrap(apperror.ErrForbidden, "not allowed to modify this review")
	}

	if req.Score != nil {
		review.Score = *req.Score
	}
	if req.Text != nil {
		review.Text = *req.Text
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", review.ID.String()),
		zap.String("actor_id", actor.ID.String()),
	)

	return s.buildReviewResponse(ctx, review)
}

func (s *reviewService) DeleteReview(ctx context.Context, titleID, reviewID string, actor Actor) error {
	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if !permission.CanModifyContribution(actor.Role, review.AuthorID, actor.ID) {
		return apperror.Wrap(apperror.ErrForbidden, "not allowed to delete this review")
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", review.ID.String()),
		zap.String("actor_id", actor.ID.String()),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) resolveTitle(ctx context.Context, titleID string) (*entity.Title, error) {
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

// resolveReview checks both nested path segments: the title must exist and
// the review must belong to it.
func (s *reviewService) resolveReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	title, err := s.resolveTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "review %s not found", reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, apperror.Wrap(apperror.ErrNotFound, "review %s not found", reviewID)
	}

	return review, nil
}

func (s *reviewService) buildReviewResponse(ctx context.Context, review *entity.Review) (*response.ReviewResponse, error) {
	author, err := s.repo.User.FindByID(ctx, review.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("load review author: %w", err)
	}

	// A deleted author leaves the review; its name just comes back empty.
	username := ""
	if author != nil {
		username = author.Username
	}

	resp := response.ReviewToResponse(review, username)
	return &resp, nil
}
