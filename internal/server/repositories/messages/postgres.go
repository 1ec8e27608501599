package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/inkspot/inkspot/internal/common"
	"github.com/inkspot/inkspot/internal/dbx"
	"github.com/inkspot/inkspot/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const messageColumns = `
	m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at,
	u.id, u.username, u.avatar`

func scanMessage(row interface{ Scan(...any) error }) (*models.Message, error) {
	m := &models.Message{}
	err := row.Scan(
		&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt,
		&m.Sender.ID, &m.Sender.Username, &m.Sender.Avatar)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, message *models.Message) (*models.Message, error) {

	query :=
		`INSERT INTO messages (sender_id, receiver_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, is_read, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		message.SenderID, message.ReceiverID, message.Content).Scan(&message.ID, &message.IsRead, &message.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return message, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	query :=
		`SELECT ` + messageColumns + `
		 FROM messages m JOIN users u ON u.id = m.sender_id
		 WHERE m.id = $1
		 `

	m, err := scanMessage(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

// Conversations builds the inbox: one row per peer with the latest message
// and the count of their still-unread messages.
func (r *PostgresRepository) Conversations(ctx context.Context, userID int64) ([]models.Conversation, error) {
	query :=
		`SELECT DISTINCT ON (peer.id) ` + messageColumns + `,
		        peer.id, peer.username, peer.avatar,
		        (SELECT count(*) FROM messages
		          WHERE sender_id = peer.id AND receiver_id = $1 AND NOT is_read) AS unread_count
		 FROM messages m
		 JOIN users u ON u.id = m.sender_id
		 JOIN users peer ON peer.id = CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END
		 WHERE m.sender_id = $1 OR m.receiver_id = $1
		 ORDER BY peer.id, m.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Conversation
	for rows.Next() {
		var c models.Conversation
		m := &models.Message{}
		err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt,
			&m.Sender.ID, &m.Sender.Username, &m.Sender.Avatar,
			&c.User.ID, &c.User.Username, &c.User.Avatar,
			&c.UnreadCount)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		c.LastMessage = m
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Conversation(ctx context.Context, userID, peerID int64) ([]models.Message, error) {
	query :=
		`SELECT ` + messageColumns + `
		 FROM messages m JOIN users u ON u.id = m.sender_id
		 WHERE (m.sender_id = $1 AND m.receiver_id = $2)
		    OR (m.sender_id = $2 AND m.receiver_id = $1)
		 ORDER BY m.created_at ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID, peerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// MarkRead flips is_read for a message addressed to receiverID. Marking
// someone else's message reports common.ErrorNotFound.
func (r *PostgresRepository) MarkRead(ctx context.Context, id, receiverID int64) (*models.Message, error) {
	query :=
		`UPDATE messages SET is_read = TRUE
		 WHERE id = $1 AND receiver_id = $2
		 RETURNING sender_id, receiver_id, content, is_read, created_at
		 `

	m := &models.Message{ID: id}
	err := r.db.QueryRowContext(ctx, query, id, receiverID).Scan(
		&m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) UnreadCount(ctx context.Context, userID int64) (int, error) {
	query :=
		`SELECT count(*) FROM messages
		 WHERE receiver_id = $1 AND NOT is_read
		 `

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
