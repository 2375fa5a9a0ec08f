package chat

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const conversationListColumns = `
	c.id, c.title, c.created_at, c.updated_at, c.status, c.user_id, c.lawyer_id,
	u.full_name AS user_name,
	u.avatar AS user_avatar,
	u.phone AS user_phone,
	u.role AS user_role,
	(SELECT COUNT(*) FROM chat_messages cm
		WHERE cm.conversation_id = c.id AND cm.is_read = false AND cm.sender_id <> $1) AS unread_count,
	(SELECT cm.content FROM chat_messages cm
		WHERE cm.conversation_id = c.id
		ORDER BY cm.created_at DESC LIMIT 1) AS last_message`

// ListForViewer returns the viewer's active conversations. Lawyers and
// admins additionally see unassigned conversations.
func (r *Repository) ListForViewer(ctx context.Context, viewerID int64, role lifecycle.Role) ([]Conversation, error) {
	query := `
		SELECT ` + conversationListColumns + `
		FROM conversations c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.status = 'active'`
	if role.Elevated() {
		query += ` AND (c.user_id = $1 OR c.lawyer_id IS NULL)`
	} else {
		query += ` AND c.user_id = $1`
	}
	query += ` ORDER BY c.updated_at DESC`

	conversations := []Conversation{}
	if err := r.db.SelectContext(ctx, &conversations, query, viewerID); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *Repository) ListAll(ctx context.Context, viewerID int64, status string, limit, offset int) ([]Conversation, int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM conversations WHERE status = $1`, status)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + conversationListColumns + `,
		(SELECT COUNT(*) FROM chat_messages cm WHERE cm.conversation_id = c.id) AS total_messages
		FROM conversations c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.status = $2
		ORDER BY c.updated_at DESC
		LIMIT $3 OFFSET $4`

	conversations := []Conversation{}
	if err := r.db.SelectContext(ctx, &conversations, query, viewerID, status, limit, offset); err != nil {
		return nil, 0, err
	}
	return conversations, total, nil
}

func (r *Repository) GetConversation(ctx context.Context, id int64) (*Conversation, error) {
	var c Conversation
	err := r.db.GetContext(ctx, &c, `
		SELECT c.id, c.title, c.created_at, c.updated_at, c.status, c.user_id, c.lawyer_id,
			u.full_name AS user_name,
			u.phone AS user_phone
		FROM conversations c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) GetActiveConversation(ctx context.Context, id int64) (*Conversation, error) {
	var c Conversation
	err := r.db.GetContext(ctx, &c, `
		SELECT c.id, c.title, c.created_at, c.updated_at, c.status, c.user_id, c.lawyer_id
		FROM conversations c
		WHERE c.id = $1 AND c.status = 'active'`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ActiveGeneralConversation finds the user's open unassigned conversation.
func (r *Repository) ActiveGeneralConversation(ctx context.Context, userID int64) (*int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		SELECT id FROM conversations
		WHERE user_id = $1 AND lawyer_id IS NULL AND status = 'active'`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *Repository) CreateConversation(ctx context.Context, userID int64, lawyerID *int64, title *string) (*Conversation, error) {
	var c Conversation
	err := r.db.GetContext(ctx, &c, `
		INSERT INTO conversations (user_id, lawyer_id, title, status)
		VALUES ($1, $2, $3, 'active')
		RETURNING id, user_id, lawyer_id, title, status, created_at, updated_at`,
		userID, lawyerID, title)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Messages(ctx context.Context, conversationID int64) ([]Message, error) {
	messages := []Message{}
	err := r.db.SelectContext(ctx, &messages, `
		SELECT cm.*,
			u.full_name AS sender_name,
			u.avatar AS sender_avatar,
			u.role AS sender_role,
			u.phone AS sender_phone
		FROM chat_messages cm
		LEFT JOIN users u ON cm.sender_id = u.id
		WHERE cm.conversation_id = $1
		ORDER BY cm.created_at ASC`, conversationID)
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *Repository) CreateMessage(ctx context.Context, m *Message) (*Message, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var created Message
	err = tx.GetContext(ctx, &created, `
		INSERT INTO chat_messages (conversation_id, sender_id, content, message_type, file_url, file_name, file_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`,
		m.ConversationID, m.SenderID, m.Content, m.MessageType,
		m.FileURL, m.FileName, m.FileSize)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE conversations SET updated_at = CURRENT_TIMESTAMP WHERE id = $1`,
		m.ConversationID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &created, nil
}

// MarkAsRead marks every message from the other side as read.
func (r *Repository) MarkAsRead(ctx context.Context, conversationID, readerID int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE chat_messages
		SET is_read = true
		WHERE conversation_id = $1 AND sender_id <> $2 AND is_read = false`,
		conversationID, readerID)
	return err
}

func (r *Repository) AvailableLawyers(ctx context.Context) ([]Lawyer, error) {
	lawyers := []Lawyer{}
	err := r.db.SelectContext(ctx, &lawyers, `
		SELECT id, full_name, avatar, role, is_online
		FROM users
		WHERE role IN ('lawyer', 'admin') AND is_active = true
		ORDER BY is_online DESC, full_name ASC`)
	if err != nil {
		return nil, err
	}
	return lawyers, nil
}

func (r *Repository) SetOnlineStatus(ctx context.Context, userID int64, online bool) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET is_online = $2, last_seen = CURRENT_TIMESTAMP
		WHERE id = $1`, userID, online)
	return err
}

func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.db.GetContext(ctx, &s, `
		SELECT
			COUNT(DISTINCT c.id) AS total_conversations,
			COUNT(DISTINCT cm.id) AS total_messages,
			COUNT(DISTINCT CASE WHEN c.status = 'active' THEN c.id END) AS active_conversations,
			COUNT(DISTINCT CASE WHEN cm.is_read = false THEN cm.id END) AS unread_messages
		FROM conversations c
		LEFT JOIN chat_messages cm ON c.id = cm.conversation_id`)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) DetailedStats(ctx context.Context) (*DetailedStats, []ActivityRow, error) {
	var s DetailedStats
	err := r.db.GetContext(ctx, &s, `
		SELECT
			COUNT(DISTINCT c.id) AS total_conversations,
			COUNT(DISTINCT cm.id) AS total_messages,
			COUNT(DISTINCT CASE WHEN c.status = 'active' THEN c.id END) AS active_conversations,
			COUNT(DISTINCT CASE WHEN cm.is_read = false THEN cm.id END) AS unread_messages,
			COUNT(DISTINCT c.user_id) AS unique_users,
			COUNT(DISTINCT CASE WHEN u.role = 'lawyer' THEN u.id END) AS total_lawyers,
			COUNT(DISTINCT CASE WHEN u.role = 'admin' THEN u.id END) AS total_admins
		FROM conversations c
		LEFT JOIN chat_messages cm ON c.id = cm.conversation_id
		LEFT JOIN users u ON u.role IN ('lawyer', 'admin')`)
	if err != nil {
		return nil, nil, err
	}

	activity := []ActivityRow{}
	err = r.db.SelectContext(ctx, &activity, `
		SELECT
			c.id AS conversation_id,
			c.title,
			u.full_name AS user_name,
			u.phone AS user_phone,
			COUNT(cm.id) AS message_count,
			MAX(cm.created_at) AS last_message_time
		FROM conversations c
		LEFT JOIN users u ON c.user_id = u.id
		LEFT JOIN chat_messages cm ON c.id = cm.conversation_id
		WHERE c.status = 'active'
		GROUP BY c.id, c.title, u.full_name, u.phone
		ORDER BY last_message_time DESC NULLS LAST
		LIMIT 10`)
	if err != nil {
		return nil, nil, err
	}

	return &s, activity, nil
}
