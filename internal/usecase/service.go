package usecase

import (
	"reviewhub/internal/data/repository"
	"reviewhub/pkg/mailer"
	"reviewhub/pkg/token"
	"reviewhub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	signer token.Signer,
	mail mailer.Mailer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, signer, mail, log),
		User:     NewUserService(repo, log),
		Category: NewCategoryService(repo, log),
		Genre:    NewGenreService(repo, log),
		Title:    NewTitleService(repo, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
	}
}
