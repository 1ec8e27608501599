package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Inbox(ctx context.Context) error {
	return a.requireAuth(ctx, "/chat", func(ctx context.Context) error {
		convs, err := a.api.Conversations(ctx)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}

		for _, cv := range convs {
			line := fmt.Sprintf("[%d] %s", cv.User.ID, cv.User.Username)
			if cv.LastMessage != nil {
				line += ": " + cv.LastMessage.Content
			}
			if cv.UnreadCount > 0 {
				line += fmt.Sprintf(" (%d unread)", cv.UnreadCount)
			}
			printlnFn(line)
		}
		return nil
	})
}

// Chat shows the thread with one user, marks their messages read, and then
// offers to send a reply. The thread is a poll-and-render affair; re-running
// the command fetches whatever arrived since.
func (a *App) Chat(ctx context.Context, userID int64) error {
	return a.requireAuth(ctx, fmt.Sprintf("/chat/%d", userID), func(ctx context.Context) error {
		msgs, err := a.api.Conversation(ctx, userID)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}

		for _, m := range msgs {
			printlnFn(fmt.Sprintf("%s %s: %s", m.CreatedAt.Format("15:04"), m.Sender.Username, m.Content))
			if !m.IsRead && m.SenderID == userID {
				if _, err := a.api.MarkMessageRead(ctx, m.ID); err != nil {
					a.log.Warn(ctx, "failed to mark message read", "message_id", m.ID, "error", err.Error())
				}
			}
		}

		reply, err := getSimpleText(a.reader, "Reply (empty to skip)", os.Stdout)
		if err != nil {
			return err
		}
		if reply == "" {
			return nil
		}

		if _, err := a.api.SendMessage(ctx, userID, reply); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn("Sent.")
		return nil
	})
}
