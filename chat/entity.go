package chat

import "time"

type Conversation struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	LawyerID  *int64    `db:"lawyer_id" json:"lawyer_id"`
	Title     *string   `db:"title" json:"title"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	UserName      *string `db:"user_name" json:"user_name,omitempty"`
	UserAvatar    *string `db:"user_avatar" json:"user_avatar,omitempty"`
	UserPhone     *string `db:"user_phone" json:"user_phone,omitempty"`
	UserRole      *string `db:"user_role" json:"user_role,omitempty"`
	UnreadCount   int64   `db:"unread_count" json:"unread_count"`
	LastMessage   *string `db:"last_message" json:"last_message"`
	TotalMessages int64   `db:"total_messages" json:"total_messages,omitempty"`
}

type Message struct {
	ID             int64     `db:"id" json:"id"`
	ConversationID int64     `db:"conversation_id" json:"conversation_id"`
	SenderID       int64     `db:"sender_id" json:"sender_id"`
	Content        string    `db:"content" json:"content"`
	MessageType    string    `db:"message_type" json:"message_type"`
	FileURL        *string   `db:"file_url" json:"file_url"`
	FileName       *string   `db:"file_name" json:"file_name"`
	FileSize       *int64    `db:"file_size" json:"file_size"`
	IsRead         bool      `db:"is_read" json:"is_read"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`

	SenderName   *string `db:"sender_name" json:"sender_name,omitempty"`
	SenderAvatar *string `db:"sender_avatar" json:"sender_avatar,omitempty"`
	SenderRole   *string `db:"sender_role" json:"sender_role,omitempty"`
	SenderPhone  *string `db:"sender_phone" json:"sender_phone,omitempty"`
}

// Lawyer is the contact-list shape for users picking someone to talk to.
type Lawyer struct {
	ID       int64   `db:"id" json:"id"`
	FullName string  `db:"full_name" json:"full_name"`
	Avatar   *string `db:"avatar" json:"avatar"`
	Role     string  `db:"role" json:"role"`
	IsOnline bool    `db:"is_online" json:"is_online"`
}

type CreateConversationRequest struct {
	Title string `json:"title"`
}

type SendMessageRequest struct {
	Content     string `form:"content" json:"content"`
	MessageType string `form:"message_type" json:"message_type"`
}

type OnlineStatusRequest struct {
	IsOnline *bool `json:"is_online" binding:"required"`
}

// Stats is the admin chat overview.
type Stats struct {
	TotalConversations  int64 `db:"total_conversations" json:"total_conversations"`
	TotalMessages       int64 `db:"total_messages" json:"total_messages"`
	ActiveConversations int64 `db:"active_conversations" json:"active_conversations"`
	UnreadMessages      int64 `db:"unread_messages" json:"unread_messages"`
}

type DetailedStats struct {
	Stats
	UniqueUsers  int64 `db:"unique_users" json:"unique_users"`
	TotalLawyers int64 `db:"total_lawyers" json:"total_lawyers"`
	TotalAdmins  int64 `db:"total_admins" json:"total_admins"`
}

type ActivityRow struct {
	ConversationID  int64      `db:"conversation_id" json:"conversation_id"`
	Title           *string    `db:"title" json:"title"`
	UserName        *string    `db:"user_name" json:"user_name"`
	UserPhone       *string    `db:"user_phone" json:"user_phone"`
	MessageCount    int64      `db:"message_count" json:"message_count"`
	LastMessageTime *time.Time `db:"last_message_time" json:"last_message_time"`
}

// ConversationDetail pairs a conversation header with its full transcript.
type ConversationDetail struct {
	Conversation *Conversation `json:"conversation"`
	Messages     []Message     `json:"messages"`
}
