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
	"reviewhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CommentService interface {
	CreateComment(ctx context.Context, titleID, reviewID string, actor Actor, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	GetComments(ctx context.Context, titleID, reviewID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	GetCommentByID(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error)
	UpdateComment(ctx context.Context, titleID, reviewID, commentID string, actor Actor, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	DeleteComment(ctx context.Context, titleID, reviewID, commentID string, actor Actor) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) CreateComment(ctx context.Context, titleID, reviewID string, actor Actor, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:       uuid.New(),
		ReviewID: review.ID,
		AuthorID: actor.ID,
		Text:     req.Text,
		PubDate:  time.Now(),
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", review.ID.String()),
		zap.String("author_id", actor.ID.String()),
	)

	return s.buildCommentResponse(ctx, comment)
}

func (s *commentService) GetComments(ctx context.Context, titleID, reviewID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, review.ID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, review.ID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		resp, err := s.buildCommentResponse(ctx, comment)
		if err != nil {
			return nil, err
		}
		commentResponses[i] = *resp
	}

	return response.NewPaginatedResponse(commentResponses, page.Page, page.PerPage, total), nil
}

func (s *commentService) GetCommentByID(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error) {
	comment, err := s.resolveComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	return s.buildCommentResponse(ctx, comment)
}

func (s *commentService) UpdateComment(ctx context.Context, titleID, reviewID, commentID string, actor Actor, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update comment validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	comment, err := s.resolveComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !permission.CanModifyContribution(actor.Role, comment.AuthorID, actor.ID) {
		return nil, apperror.Wrap(apperror.ErrForbidden, "not allowed to modify this comment")
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.log.Info("Comment updated",
		zap.String("comment_id", comment.ID.String()),
		zap.String("actor_id", actor.ID.String()),
	)

	return s.buildCommentResponse(ctx, comment)
}

func (s *commentService) DeleteComment(ctx context.Context, titleID, reviewID, commentID string, actor Actor) error {
	comment, err := s.resolveComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if !permission.CanModifyContribution(actor.Role, comment.AuthorID, actor.ID) {
		return apperror.Wrap(apperror.ErrForbidden, "not allowed to delete this comment")
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted",
		zap.String("comment_id", comment.ID.String()),
		zap.String("actor_id", actor.ID.String()),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// resolveReview walks the nested path: the title must exist and the review
// must belong to it.
func (s *commentService) resolveReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	tid, err := uuid.Parse(titleID)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "title %s not found", titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "title %s not found", titleID)
	}

	rid, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "review %s not found", reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, rid)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, apperror.Wrap(apperror.ErrNotFound, "review %s not found", reviewID)
	}

	return review, nil
}

func (s *commentService) resolveComment(ctx context.Context, titleID, reviewID, commentID string) (*entity.Comment, error) {
	review, err := s.resolveReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	cid, err := uuid.Parse(commentID)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "comment %s not found", commentID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, cid)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil || comment.ReviewID != review.ID {
		return nil, apperror.Wrap(apperror.ErrNotFound, "comment %s not found", commentID)
	}

	return comment, nil
}

func (s *commentService) buildCommentResponse(ctx context.Context, comment *entity.Comment) (*response.CommentResponse, error) {
	author, err := s.repo.User.FindByID(ctx, comment.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("load comment author: %w", err)
	}

	// A deleted author leaves the comment; its name just comes back empty.
	username := ""
	if author != nil {
		username = author.Username
	}

	resp := response.CommentToResponse(comment, username)
	return &resp, nil
}
