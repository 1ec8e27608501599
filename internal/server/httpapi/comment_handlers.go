package httpapi

import "net/http"

type commentCreateRequest struct {
	BlogID   int64  `json:"blog_id"`
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id"`
}

type commentUpdateRequest struct {
	Content string `json:"content"`
}

func (s *HTTPServer) handleBlogComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.comments.ListByBlog(r.Context(), pathID(r), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(comments))
}

func (s *HTTPServer) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req commentCreateRequest
	if err := decode(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := s.comments.Create(r.Context(), userID(r), req.BlogID, req.ParentID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *HTTPServer) handleUpdateComment(w http.ResponseWriter, r *http.Request) {
	var req commentUpdateRequest
	if err := decode(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := s.comments.Update(r.Context(), pathID(r), userID(r), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *HTTPServer) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.comments.Delete(r.Context(), pathID(r), userID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleLikeComment(w http.ResponseWriter, r *http.Request) {
	c, err := s.comments.Like(r.Context(), userID(r), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *HTTPServer) handleUnlikeComment(w http.ResponseWriter, r *http.Request) {
	if err := s.comments.Unlike(r.Context(), userID(r), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
