package httpapi

import "net/http"

type sendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id"`
	Content    string `json:"content"`
}

func (s *HTTPServer) handleConversations(w http.ResponseWriter, r *http.Request) {
	list, err := s.messages.Conversations(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(list))
}

func (s *HTTPServer) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decode(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := s.messages.Send(r.Context(), userID(r), req.ReceiverID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *HTTPServer) handleConversation(w http.ResponseWriter, r *http.Request) {
	list, err := s.messages.Conversation(r.Context(), userID(r), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyToSlice(list))
}

func (s *HTTPServer) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	m, err := s.messages.MarkRead(r.Context(), pathID(r), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *HTTPServer) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.messages.UnreadCount(r.Context(), userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}
