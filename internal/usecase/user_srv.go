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

type UserService interface {
	// Admin CRUD, addressed by username
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetUsers(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateUserByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUserByUsername(ctx context.Context, username string) error

	// Self profile
	GetSelf(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateSelf(ctx context.Context, userID uuid.UUID, actorRole entity.UserRole, req *request.UpdateUserRequest) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	role := entity.RoleUser
	if entity.ValidRole(req.Role) {
		role = entity.UserRole(req.Role)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  req.Username,
		Email:     req.Email,
		Role:      role,
		Bio:       req.Bio,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.ErrConflict,
				"a user with this username or email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetUsers(ctx context.Context, search string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, search, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, page.Page, page.PerPage, total), nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUserByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	applyUserUpdate(user, req, true)

	if err := s.repo.User.Update(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.ErrConflict,
				"a user with this username or email already exists")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUserByUsername(ctx context.Context, username string) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	if err := s.repo.User.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (s *userService) GetSelf(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperror.Wrap(apperror.ErrUnauthorized, "account no longer exists")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UpdateSelf partially updates the caller's own record. The role field is
// silently ignored unless the caller is admin.
func (s *userService) UpdateSelf(ctx context.Context, userID uuid.UUID, actorRole entity.UserRole, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update self validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperror.Wrap(apperror.ErrUnauthorized, "account no longer exists")
	}

	applyUserUpdate(user, req, permission.CanSetRole(actorRole))

	if err := s.repo.User.Update(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.ErrConflict,
				"a user with this username or email already exists")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("Self profile updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) findUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "user %s not found", username)
	}
	return user, nil
}

func applyUserUpdate(user *entity.User, req *request.UpdateUserRequest, allowRole bool) {
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil && allowRole && entity.ValidRole(*req.Role) {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.FirstName != nil {
		user.FirstName = req.FirstName
	}
	if req.LastName != nil {
		user.LastName = req.LastName
	}
	user.UpdatedAt = time.Now()
}
