package httpapi

import "net/http"

type profileUpdateRequest struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

type avatarTicketResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.Profile(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *HTTPServer) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := decode(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := s.users.UpdateProfile(r.Context(), userID(r), req.Username, req.Bio, req.Avatar)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *HTTPServer) handleAvatarTicket(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.media.AvatarUploadTicket(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, avatarTicketResponse{Key: key, URL: url})
}

func (s *HTTPServer) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.Profile(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *HTTPServer) handleFollowers(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.Followers(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(list))
}

func (s *HTTPServer) handleFollowing(w http.ResponseWriter, r *http.Request) {
	list, err := s.users.Following(r.Context(), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(list))
}

func (s *HTTPServer) handleFollow(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Follow(r.Context(), userID(r), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Unfollow(r.Context(), userID(r), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleIsFollowing(w http.ResponseWriter, r *http.Request) {
	following, err := s.users.IsFollowing(r.Context(), userID(r), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_following": following})
}
