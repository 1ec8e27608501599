package httpapi

import "net/http"

type recordSearchRequest struct {
	Keyword string `json:"keyword"`
}

func (s *HTTPServer) handleSearchBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.search.SearchBlogs(r.Context(), r.URL.Query().Get("keyword"), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(blogs))
}

func (s *HTTPServer) handleSearchHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.search.History(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(history))
}

func (s *HTTPServer) handleRecordSearch(w http.ResponseWriter, r *http.Request) {
	var req recordSearchRequest
	if err := decode(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.search.Record(r.Context(), userID(r), req.Keyword); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
