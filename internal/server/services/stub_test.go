package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/inkspot/inkspot/internal/common"
	"github.com/inkspot/inkspot/internal/dbx"
	"github.com/inkspot/inkspot/internal/server/models"
	blogsrepo "github.com/inkspot/inkspot/internal/server/repositories/blogs"
	commentsrepo "github.com/inkspot/inkspot/internal/server/repositories/comments"
	messagesrepo "github.com/inkspot/inkspot/internal/server/repositories/messages"
	searchrepo "github.com/inkspot/inkspot/internal/server/repositories/search"
	usersrepo "github.com/inkspot/inkspot/internal/server/repositories/users"
)

// --- shared helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// Fake repositories with override hooks. Unstubbed calls return not-found /
// zero values.

type fakeUsersRepo struct {
	createFn      func(u *models.User) (*models.User, error)
	getByEmailFn  func(email string) (*models.User, error)
	getByIDFn     func(id int64) (*models.User, error)
	getSummaryFn  func(id int64) (*models.UserSummary, error)
	updateFn      func(u *models.User) (*models.User, error)
	followFn      func(followerID, followeeID int64) error
	unfollowFn    func(followerID, followeeID int64) error
	isFollowingFn func(followerID, followeeID int64) (bool, error)
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createFn != nil {
		return f.createFn(u)
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(email)
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(id)
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetSummary(_ context.Context, id int64) (*models.UserSummary, error) {
	if f.getSummaryFn != nil {
		return f.getSummaryFn(id)
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) UpdateProfile(_ context.Context, u *models.User) (*models.User, error) {
	if f.updateFn != nil {
		return f.updateFn(u)
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdateAvatar(context.Context, int64, string) error { return nil }

func (f *fakeUsersRepo) Followers(context.Context, int64) ([]models.UserSummary, error) {
	return nil, nil
}

func (f *fakeUsersRepo) Following(context.Context, int64) ([]models.UserSummary, error) {
	return nil, nil
}

func (f *fakeUsersRepo) Follow(_ context.Context, followerID, followeeID int64) error {
	if f.followFn != nil {
		return f.followFn(followerID, followeeID)
	}
	return nil
}

func (f *fakeUsersRepo) Unfollow(_ context.Context, followerID, followeeID int64) error {
	if f.unfollowFn != nil {
		return f.unfollowFn(followerID, followeeID)
	}
	return nil
}

func (f *fakeUsersRepo) IsFollowing(_ context.Context, followerID, followeeID int64) (bool, error) {
	if f.isFollowingFn != nil {
		return f.isFollowingFn(followerID, followeeID)
	}
	return false, nil
}

type fakeBlogsRepo struct {
	createFn  func(b *models.Blog) (*models.Blog, error)
	getByIDFn func(id, viewerID int64) (*models.Blog, error)
	likeFn    func(userID, blogID int64) error
	unlikeFn  func(userID, blogID int64) error
	updateFn  func(b *models.Blog) error
	deleteFn  func(id int64) error
	searchFn  func(keyword string, viewerID int64, limit int) ([]models.Blog, error)
	popularFn func(limit int) ([]models.Blog, error)

	incrementedViews []int64
	recordedReadings [][2]int64
}

func (f *fakeBlogsRepo) Create(_ context.Context, b *models.Blog) (*models.Blog, error) {
	if f.createFn != nil {
		return f.createFn(b)
	}
	b.ID = 1
	return b, nil
}

func (f *fakeBlogsRepo) GetByID(_ context.Context, id, viewerID int64) (*models.Blog, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(id, viewerID)
	}
	return nil, common.ErrorNotFound
}

func (f *fakeBlogsRepo) List(context.Context, int64, int, int) ([]models.Blog, error) {
	return nil, nil
}

func (f *fakeBlogsRepo) ListByAuthor(context.Context, int64, int64) ([]models.Blog, error) {
	return nil, nil
}

func (f *fakeBlogsRepo) ListLiked(context.Context, int64) ([]models.Blog, error) { return nil, nil }

func (f *fakeBlogsRepo) ListFavorited(context.Context, int64) ([]models.Blog, error) {
	return nil, nil
}

func (f *fakeBlogsRepo) ListPopular(_ context.Context, limit int) ([]models.Blog, error) {
	if f.popularFn != nil {
		return f.popularFn(limit)
	}
	return nil, nil
}

func (f *fakeBlogsRepo) Search(_ context.Context, keyword string, viewerID int64, limit int) ([]models.Blog, error) {
	if f.searchFn != nil {
		return f.searchFn(keyword, viewerID, limit)
	}
	return nil, nil
}

func (f *fakeBlogsRepo) Update(_ context.Context, b *models.Blog) error {
	if f.updateFn != nil {
		return f.updateFn(b)
	}
	return nil
}

func (f *fakeBlogsRepo) Delete(_ context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil
}

func (f *fakeBlogsRepo) Like(_ context.Context, userID, blogID int64) error {
	if f.likeFn != nil {
		return f.likeFn(userID, blogID)
	}
	return nil
}

func (f *fakeBlogsRepo) Unlike(_ context.Context, userID, blogID int64) error {
	if f.unlikeFn != nil {
		return f.unlikeFn(userID, blogID)
	}
	return nil
}

func (f *fakeBlogsRepo) Favorite(context.Context, int64, int64) error   { return nil }
func (f *fakeBlogsRepo) Unfavorite(context.Context, int64, int64) error { return nil }

func (f *fakeBlogsRepo) IncrementViews(_ context.Context, id int64) error {
	f.incrementedViews = append(f.incrementedViews, id)
	return nil
}

func (f *fakeBlogsRepo) RecordReading(_ context.Context, userID, blogID int64) error {
	f.recordedReadings = append(f.recordedReadings, [2]int64{userID, blogID})
	return nil
}

func (f *fakeBlogsRepo) ListReading(context.Context, int64, int) ([]models.Blog, error) {
	return nil, nil
}

type fakeCommentsRepo struct {
	createFn  func(c *models.Comment) (*models.Comment, error)
	getByIDFn func(id, viewerID int64) (*models.Comment, error)
	likeFn    func(userID, commentID int64) error
}

func (f *fakeCommentsRepo) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	if f.createFn != nil {
		return f.createFn(c)
	}
	c.ID = 1
	return c, nil
}

func (f *fakeCommentsRepo) GetByID(_ context.Context, id, viewerID int64) (*models.Comment, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(id, viewerID)
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCommentsRepo) ListByBlog(context.Context, int64, int64) ([]models.Comment, error) {
	return nil, nil
}

func (f *fakeCommentsRepo) Update(context.Context, *models.Comment) error { return nil }
func (f *fakeCommentsRepo) Delete(context.Context, int64) error           { return nil }

func (f *fakeCommentsRepo) Like(_ context.Context, userID, commentID int64) error {
	if f.likeFn != nil {
		return f.likeFn(userID, commentID)
	}
	return nil
}

func (f *fakeCommentsRepo) Unlike(context.Context, int64, int64) error { return nil }

type fakeMessagesRepo struct {
	createFn      func(m *models.Message) (*models.Message, error)
	unreadCountFn func(userID int64) (int, error)
}

func (f *fakeMessagesRepo) Create(_ context.Context, m *models.Message) (*models.Message, error) {
	if f.createFn != nil {
		return f.createFn(m)
	}
	m.ID = 1
	return m, nil
}

func (f *fakeMessagesRepo) GetByID(context.Context, int64) (*models.Message, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeMessagesRepo) Conversations(context.Context, int64) ([]models.Conversation, error) {
	return nil, nil
}

func (f *fakeMessagesRepo) Conversation(context.Context, int64, int64) ([]models.Message, error) {
	return nil, nil
}

func (f *fakeMessagesRepo) MarkRead(context.Context, int64, int64) (*models.Message, error) {
	return nil, common.ErrorNotFound
}

func (f *fakeMessagesRepo) UnreadCount(_ context.Context, userID int64) (int, error) {
	if f.unreadCountFn != nil {
		return f.unreadCountFn(userID)
	}
	return 0, nil
}

type fakeSearchRepo struct {
	added   []string
	trimmed []int
	addErr  error
}

func (f *fakeSearchRepo) Add(_ context.Context, userID int64, keyword string) (*models.SearchHistory, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, keyword)
	return &models.SearchHistory{ID: int64(len(f.added)), UserID: userID, Keyword: keyword}, nil
}

func (f *fakeSearchRepo) List(context.Context, int64, int) ([]models.SearchHistory, error) {
	return nil, nil
}

func (f *fakeSearchRepo) Trim(_ context.Context, userID int64, keep int) error {
	f.trimmed = append(f.trimmed, keep)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	b *fakeBlogsRepo
	c *fakeCommentsRepo
	m *fakeMessagesRepo
	s *fakeSearchRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &fakeUsersRepo{},
		b: &fakeBlogsRepo{},
		c: &fakeCommentsRepo{},
		m: &fakeMessagesRepo{},
		s: &fakeSearchRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *fakeRepoManager) Blogs(dbx.DBTX) blogsrepo.Repository          { return m.b }
func (m *fakeRepoManager) Comments(dbx.DBTX) commentsrepo.Repository    { return m.c }
func (m *fakeRepoManager) Messages(dbx.DBTX) messagesrepo.Repository    { return m.m }
func (m *fakeRepoManager) Search(dbx.DBTX) searchrepo.Repository        { return m.s }
