package usecase

import (
	"context"
	"time"

	"reviewhub/internal/data/entity"
	"reviewhub/internal/data/repository"
	"reviewhub/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, search, limit, offset)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) CountAll(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockConfirmationRepo struct{ mock.Mock }

func (m *mockConfirmationRepo) Create(ctx context.Context, code *entity.ConfirmationCode) error {
	return m.Called(ctx, code).Error(0)
}

func (m *mockConfirmationRepo) FindLiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ConfirmationCode, error) {
	args := m.Called(ctx, userID)
	codes, _ := args.Get(0).([]*entity.ConfirmationCode)
	return codes, args.Error(1)
}

func (m *mockConfirmationRepo) MarkAsUsed(ctx context.Context, codeID uuid.UUID) error {
	return m.Called(ctx, codeID).Error(0)
}

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	args := m.Called(ctx, slug)
	category, _ := args.Get(0).(*entity.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Category, error) {
	args := m.Called(ctx, search, limit, offset)
	categories, _ := args.Get(0).([]*entity.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepo) CountAll(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

type mockGenreRepo struct{ mock.Mock }

func (m *mockGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	return m.Called(ctx, genre).Error(0)
}

func (m *mockGenreRepo) FindBySlug(ctx context.Context, slug string) (*entity.Genre, error) {
	args := m.Called(ctx, slug)
	genre, _ := args.Get(0).(*entity.Genre)
	return genre, args.Error(1)
}

func (m *mockGenreRepo) FindByTitleID(ctx context.Context, titleID uuid.UUID) ([]*entity.Genre, error) {
	args := m.Called(ctx, titleID)
	genres, _ := args.Get(0).([]*entity.Genre)
	return genres, args.Error(1)
}

func (m *mockGenreRepo) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Genre, error) {
	args := m.Called(ctx, search, limit, offset)
	genres, _ := args.Get(0).([]*entity.Genre)
	return genres, args.Error(1)
}

func (m *mockGenreRepo) CountAll(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGenreRepo) Delete(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}

type mockTitleRepo struct{ mock.Mock }

func (m *mockTitleRepo) Create(ctx context.Context, title *entity.Title) error {
	return m.Called(ctx, title).Error(0)
}

func (m *mockTitleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	args := m.Called(ctx, id)
	title, _ := args.Get(0).(*entity.Title)
	return title, args.Error(1)
}

func (m *mockTitleRepo) FindAll(ctx context.Context, filter repository.TitleFilter, limit, offset int) ([]*entity.Title, error) {
	args := m.Called(ctx, filter, limit, offset)
	titles, _ := args.Get(0).([]*entity.Title)
	return titles, args.Error(1)
}

func (m *mockTitleRepo) CountAll(ctx context.Context, filter repository.TitleFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTitleRepo) Update(ctx context.Context, title *entity.Title) error {
	return m.Called(ctx, title).Error(0)
}

func (m *mockTitleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockGenreTitleRepo struct{ mock.Mock }

func (m *mockGenreTitleRepo) Create(ctx context.Context, link *entity.GenreTitle) error {
	return m.Called(ctx, link).Error(0)
}

func (m *mockGenreTitleRepo) ReplaceForTitle(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	return m.Called(ctx, titleID, genreIDs).Error(0)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*entity.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepo) FindByAuthorAndTitle(ctx context.Context, authorID, titleID uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, authorID, titleID)
	review, _ := args.Get(0).(*entity.Review)
	return review, args.Error(1)
}

func (m *mockReviewRepo) FindByTitleID(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	args := m.Called(ctx, titleID, limit, offset)
	reviews, _ := args.Get(0).([]*entity.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewRepo) CountByTitleID(ctx context.Context, titleID uuid.UUID) (int64, error) {
	args := m.Called(ctx, titleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*entity.Comment)
	return comment, args.Error(1)
}

func (m *mockCommentRepo) FindByReviewID(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(ctx, reviewID, limit, offset)
	comments, _ := args.Get(0).([]*entity.Comment)
	return comments, args.Error(1)
}

func (m *mockCommentRepo) CountByReviewID(ctx context.Context, reviewID uuid.UUID) (int64, error) {
	args := m.Called(ctx, reviewID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommentRepo) Update(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

// fakeSigner avoids real crypto in service tests.
type fakeSigner struct {
	token     string
	expiresAt time.Time
	err       error
}

func (f *fakeSigner) Generate(claims token.Claims) (string, time.Time, error) {
	return f.token, f.expiresAt, f.err
}

func (f *fakeSigner) Parse(raw string) (*token.Claims, error) {
	return nil, f.err
}
