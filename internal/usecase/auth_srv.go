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
	"reviewhub/pkg/mailer"
	"reviewhub/pkg/token"
	"reviewhub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	ObtainToken(ctx context.Context, req *request.ObtainTokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	signer token.Signer
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	signer token.Signer,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		signer: signer,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Signup registers a (username, email) pair and mails a confirmation code.
// Re-signing-up with an exact pair already on file is idempotent: a fresh
// code is issued, no error. A pair colliding with a different identity is a
// conflict; the message deliberately does not say which field collided.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	byUsername, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	byEmail, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}

	var user *entity.User
	switch {
	case byUsername != nil && byEmail != nil && byUsername.ID == byEmail.ID:
		// Exact pair already registered: re-issue the code.
		user = byUsername

	case byUsername != nil || byEmail != nil:
		s.log.Warn("Signup collision",
			zap.String("username", req.Username),
		)
		return nil, apperror.Wrap(apperror.ErrConflict,
			"a user with this username or email already exists")

	default:
		now := time.Now()
		user = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username: req.Username,
			Email:    req.Email,
			Role:     entity.RoleUser,
		}

		if err := s.repo.User.Create(ctx, user); err != nil {
			// A concurrent signup can win the race past the checks above;
			// the unique constraints catch it.
			if database.IsUniqueViolation(err) {
				return nil, apperror.Wrap(apperror.ErrConflict,
					"a user with this username or email already exists")
			}
			return nil, fmt.Errorf("create user: %w", err)
		}

		s.log.Info("User registered",
			zap.String("user_id", user.ID.String()),
			zap.String("username", user.Username),
		)
	}

	if err := s.issueConfirmationCode(ctx, user); err != nil {
		return nil, err
	}

	return &response.SignupResponse{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// ObtainToken redeems a confirmation code for a signed bearer token.
// Each code works exactly once.
func (s *authService) ObtainToken(ctx context.Context, req *request.ObtainTokenRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Obtain token validation failed", zap.Any("errors", errs))
		return nil, apperror.Wrap(apperror.ErrValidation, "%s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperror.Wrap(apperror.ErrNotFound, "user %s not found", req.Username)
	}

	codes, err := s.repo.Confirmation.FindLiveByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find confirmation codes: %w", err)
	}

	var matched *entity.ConfirmationCode
	for _, code := range codes {
		if bcrypt.CompareHashAndPassword([]byte(code.CodeHash), []byte(req.ConfirmationCode)) == nil {
			matched = code
			break
		}
	}
	if matched == nil {
		s.log.Warn("Invalid confirmation code",
			zap.String("username", req.Username),
		)
		return nil, apperror.Wrap(apperror.ErrUnauthorized, "invalid or expired confirmation code")
	}

	// MarkAsUsed only flips an unconsumed row; losing this race means the
	// code was already redeemed.
	if err := s.repo.Confirmation.MarkAsUsed(ctx, matched.ID); err != nil {
		s.log.Warn("Confirmation code already consumed",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		return nil, apperror.Wrap(apperror.ErrUnauthorized, "invalid or expired confirmation code")
	}

	signed, expiresAt, err := s.signer.Generate(token.Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("Token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return &response.TokenResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) issueConfirmationCode(ctx context.Context, user *entity.User) error {
	plain := utils.GenerateCode(s.config.Code.Length)

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash confirmation code: %w", err)
	}

	code := &entity.ConfirmationCode{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Code.ExpiryMinutes) * time.Minute),
	}

	if err := s.repo.Confirmation.Create(ctx, code); err != nil {
		return fmt.Errorf("store confirmation code: %w", err)
	}

	body := fmt.Sprintf("Your confirmation code: %s\nIt expires in %d minutes.",
		plain, s.config.Code.ExpiryMinutes)

	if err := s.mail.Send(ctx, user.Email, "Signup confirmation", body); err != nil {
		s.log.Error("Failed to send confirmation mail",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("send confirmation mail: %w", err)
	}

	s.log.Info("Confirmation code issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", code.ExpiresAt),
	)

	return nil
}
