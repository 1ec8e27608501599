package httpapi

import (
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkspot/inkspot/internal/logging"
	"github.com/inkspot/inkspot/internal/server/auth"
	"github.com/inkspot/inkspot/internal/server/config"
	"github.com/inkspot/inkspot/internal/server/repositories/repomanager"
	"github.com/inkspot/inkspot/internal/server/services"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = testSecret

	rm := repomanager.NewPostgresRepositoryManager()
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv := NewHTTPServer(cfg.EndpointAddr, l, cfg.SecretKey,
		services.NewUserService(db, rm, cfg),
		services.NewBlogService(db, rm),
		services.NewCommentService(db, rm),
		services.NewMessageService(db, rm),
		services.NewSearchService(db, rm),
		services.NewMediaService(cfg),
		services.NewAssistantService(db, rm, cfg),
	)
	return srv.Router(), mock
}

func testToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte(testSecret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return token
}

func doRequest(t *testing.T, router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error decoding body %q: %v", rec.Body.String(), err)
	}
	return body.Detail
}

func TestHealth(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Errorf("expected X-Request-Id header")
	}
}

func TestRequireAuthWithoutToken(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/users/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "not authenticated" {
		t.Errorf("unexpected detail: %q", detail)
	}
}

func TestRequireAuthWithBadToken(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/users/me", "garbage", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "invalid or expired token" {
		t.Errorf("unexpected detail: %q", detail)
	}
}

func TestLogin(t *testing.T) {
	router, mock := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	now := time.Now()
	mock.ExpectQuery("SELECT id, username, email, password_hash, avatar, bio, created_at FROM users").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "email", "password_hash", "avatar", "bio", "created_at"}).
			AddRow(int64(1), "ada", "ada@example.com", string(hash), "", "", now))
	mock.ExpectQuery("(?s)SELECT u.id, u.username, u.email, u.avatar, u.bio, u.created_at,.+FROM users u").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "email", "avatar", "bio", "created_at",
				"followers_count", "following_count", "blogs_count"}).
			AddRow(int64(1), "ada", "ada@example.com", "", "", now, 2, 3, 4))

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/token", "",
		`{"email": "ada@example.com", "password": "hunter22"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error decoding body: %v", err)
	}
	if body.TokenType != "bearer" {
		t.Errorf("unexpected token type: %q", body.TokenType)
	}
	if body.User.Username != "ada" {
		t.Errorf("unexpected username: %q", body.User.Username)
	}

	userID, err := auth.GetUserIDFromToken(body.AccessToken, []byte(testSecret))
	if err != nil {
		t.Fatalf("error parsing issued token: %v", err)
	}
	if userID != 1 {
		t.Errorf("expected user id 1 in token, got %d", userID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, mock := newTestServer(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	mock.ExpectQuery("SELECT id, username, email, password_hash, avatar, bio, created_at FROM users").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "email", "password_hash", "avatar", "bio", "created_at"}).
			AddRow(int64(1), "ada", "ada@example.com", string(hash), "", "", time.Now()))

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/token", "",
		`{"email": "ada@example.com", "password": "wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if detail := decodeDetail(t, rec); !strings.Contains(detail, "incorrect email or password") {
		t.Errorf("unexpected detail: %q", detail)
	}
}

func blogRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title", "subtitle", "content", "created_at", "updated_at", "views_count",
		"author_id", "username", "avatar",
		"likes_count", "favorites_count", "is_liked", "is_favorited"}).
		AddRow(int64(7), "Title", "Sub", "Body", now, now, 10,
			int64(1), "ada", "", 3, 1, false, false)
}

func TestGetBlogAnonymous(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("(?s)SELECT.+FROM blogs b JOIN users u").
		WithArgs(int64(0), int64(7)).
		WillReturnRows(blogRow())
	mock.ExpectExec("UPDATE blogs SET views_count").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(t, router, http.MethodGet, "/api/v1/blogs/7", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		ID         int64 `json:"id"`
		ViewsCount int   `json:"views_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error decoding body: %v", err)
	}
	if body.ID != 7 {
		t.Errorf("unexpected id: %d", body.ID)
	}
	if body.ViewsCount != 11 {
		t.Errorf("expected the reported view count to include this read, got %d", body.ViewsCount)
	}

	// No token means no reading history write.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetBlogNotFound(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("(?s)SELECT.+FROM blogs b JOIN users u").
		WithArgs(int64(0), int64(404)).
		WillReturnError(sql.ErrNoRows)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/blogs/404", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if detail := decodeDetail(t, rec); detail != "not found" {
		t.Errorf("unexpected detail: %q", detail)
	}
}

func TestCreateBlog(t *testing.T) {
	router, mock := newTestServer(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO blogs").
		WithArgs(int64(1), "Title", "Sub", "Body").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(7), now, now))
	mock.ExpectQuery("SELECT id, username, avatar FROM users").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "avatar"}).
			AddRow(int64(1), "ada", ""))

	rec := doRequest(t, router, http.MethodPost, "/api/v1/blogs", testToken(t, 1),
		`{"title": "Title", "subtitle": "Sub", "content": "Body"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateBlogValidation(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/blogs", testToken(t, 1),
		`{"title": "", "content": ""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUnreadCount(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT count").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	rec := doRequest(t, router, http.MethodGet, "/api/v1/messages/unread/count", testToken(t, 1), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error decoding body: %v", err)
	}
	if body.Count != 3 {
		t.Errorf("expected count 3, got %d", body.Count)
	}
}

func TestIsFollowing(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rec := doRequest(t, router, http.MethodGet, "/api/v1/users/2/is_following", testToken(t, 1), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		IsFollowing bool `json:"is_following"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error decoding body: %v", err)
	}
	if !body.IsFollowing {
		t.Errorf("expected is_following true")
	}
}

func TestRecordSearch(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO search_history").
		WithArgs(int64(1), "go generics").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), time.Now()))
	mock.ExpectExec("DELETE FROM search_history").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/search", testToken(t, 1),
		`{"keyword": "go generics"}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListBlogsPagination(t *testing.T) {
	router, mock := newTestServer(t)

	mock.ExpectQuery("(?s)SELECT.+FROM blogs b JOIN users u.+LIMIT \\$2 OFFSET \\$3").
		WithArgs(int64(0), 20, 40).
		WillReturnRows(blogRow())

	rec := doRequest(t, router, http.MethodGet, "/api/v1/blogs?skip=40&limit=20", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("skip/limit did not reach the query: %v", err)
	}
}

func TestEmptyListEncodesAsArray(t *testing.T) {
	router, mock := newTestServer(t)

	empty := sqlmock.NewRows([]string{
		"id", "title", "subtitle", "content", "created_at", "updated_at", "views_count",
		"author_id", "username", "avatar",
		"likes_count", "favorites_count", "is_liked", "is_favorited"})
	mock.ExpectQuery("(?s)SELECT.+FROM blogs b JOIN users u").
		WillReturnRows(empty)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/blogs", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}
