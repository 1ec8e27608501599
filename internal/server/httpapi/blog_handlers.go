package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/inkspot/inkspot/internal/server/models"
)

type blogRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content"`
}

func (s *HTTPServer) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	blogs, err := s.blogs.List(r.Context(), userID(r), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(blogs))
}

func (s *HTTPServer) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	b, err := s.blogs.Get(r.Context(), pathID(r), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *HTTPServer) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := decode(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := s.blogs.Create(r.Context(), userID(r), req.Title, req.Subtitle, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *HTTPServer) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	var req blogRequest
	if err := decode(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := s.blogs.Update(r.Context(), pathID(r), userID(r), req.Title, req.Subtitle, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *HTTPServer) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := s.blogs.Delete(r.Context(), pathID(r), userID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleMyBlogs(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	blogs, err := s.blogs.ListByAuthor(r.Context(), uid, uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(blogs))
}

func (s *HTTPServer) handleMyLikedBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.blogs.ListLiked(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(blogs))
}

func (s *HTTPServer) handleMyFavoriteBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.blogs.ListFavorited(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(blogs))
}

func (s *HTTPServer) handleReadingHistory(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.blogs.ReadingHistory(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(blogs))
}

func (s *HTTPServer) handleLikeBlog(w http.ResponseWriter, r *http.Request) {
	s.handleBlogMark(w, r, s.blogs.Like)
}

func (s *HTTPServer) handleUnlikeBlog(w http.ResponseWriter, r *http.Request) {
	s.handleBlogMark(w, r, s.blogs.Unlike)
}

func (s *HTTPServer) handleFavoriteBlog(w http.ResponseWriter, r *http.Request) {
	s.handleBlogMark(w, r, s.blogs.Favorite)
}

func (s *HTTPServer) handleUnfavoriteBlog(w http.ResponseWriter, r *http.Request) {
	s.handleBlogMark(w, r, s.blogs.Unfavorite)
}

func (s *HTTPServer) handleBlogMark(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, userID, blogID int64) (*models.Blog, error)) {

	b, err := op(r.Context(), userID(r), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// emptyToSlice keeps list endpoints returning [] instead of null.
func emptyToSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
