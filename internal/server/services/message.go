package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/inkspot/inkspot/internal/common"
	"github.com/inkspot/inkspot/internal/server/models"
	"github.com/inkspot/inkspot/internal/server/repositories/repomanager"
)

// MessageService implements direct messages: sending, the inbox grouped by
// peer, per-peer threads, read marks and the unread counter.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

func (s *MessageService) Send(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", common.ErrorValidation)
	}
	if senderID == receiverID {
		return nil, ErrSelfMessage
	}

	sender, err := s.repomanager.Users(s.db).GetSummary(ctx, senderID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if _, err := s.repomanager.Users(s.db).GetSummary(ctx, receiverID); err != nil {
		return nil, err
	}

	m := &models.Message{SenderID: senderID, ReceiverID: receiverID, Content: content}
	created, err := s.repomanager.Messages(s.db).Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("error creating message: %w", err)
	}
	created.Sender = *sender
	return created, nil
}

func (s *MessageService) Conversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return s.repomanager.Messages(s.db).Conversations(ctx, userID)
}

func (s *MessageService) Conversation(ctx context.Context, userID, peerID int64) ([]models.Message, error) {
	return s.repomanager.Messages(s.db).Conversation(ctx, userID, peerID)
}

// MarkRead flips the read flag of a message addressed to userID. Messages
// addressed to anyone else look like they do not exist.
func (s *MessageService) MarkRead(ctx context.Context, id, userID int64) (*models.Message, error) {
	m, err := s.repomanager.Messages(s.db).MarkRead(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	sender, err := s.repomanager.Users(s.db).GetSummary(ctx, m.SenderID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	m.Sender = *sender
	return m, nil
}

func (s *MessageService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.repomanager.Messages(s.db).UnreadCount(ctx, userID)
}
