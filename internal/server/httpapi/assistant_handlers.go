package httpapi

import "net/http"

type suggestionsRequest struct {
	Topic string `json:"topic"`
}

func (s *HTTPServer) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := decode(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	suggestions, err := s.assistant.Suggestions(r.Context(), req.Topic)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(suggestions))
}

func (s *HTTPServer) handleRecommended(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.assistant.Recommended(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(blogs))
}
