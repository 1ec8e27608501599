package messages

import (
	"context"

	"github.com/inkspot/inkspot/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, message *models.Message) (*models.Message, error)
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	Conversations(ctx context.Context, userID int64) ([]models.Conversation, error)
	Conversation(ctx context.Context, userID, peerID int64) ([]models.Message, error)
	MarkRead(ctx context.Context, id, receiverID int64) (*models.Message, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
}
