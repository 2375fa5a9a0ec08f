package chat

import (
	"context"
	"fmt"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Conversations(ctx context.Context, viewerID int64, role lifecycle.Role) ([]Conversation, error) {
	return s.repo.ListForViewer(ctx, viewerID, role)
}

func (s *Service) AllConversations(ctx context.Context, viewerID int64, role lifecycle.Role, status string, limit, offset int) ([]Conversation, int64, error) {
	if !role.Elevated() {
		return nil, 0, fmt.Errorf("%w: only lawyers and admins can list all conversations", lifecycle.ErrForbidden)
	}
	if status == "" {
		status = "active"
	}
	return s.repo.ListAll(ctx, viewerID, status, limit, offset)
}

func (s *Service) CreateConversation(ctx context.Context, userID int64, req *CreateConversationRequest) (*Conversation, error) {
	existing, err := s.repo.ActiveGeneralConversation(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: an active conversation already exists", lifecycle.ErrConflict)
	}

	var title *string
	if req.Title != "" {
		title = &req.Title
	}
	return s.repo.CreateConversation(ctx, userID, nil, title)
}

func (s *Service) Messages(ctx context.Context, conversationID, viewerID int64, role lifecycle.Role) ([]Message, error) {
	conversation, err := s.repo.GetActiveConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !role.Elevated() && conversation.UserID != viewerID {
		return nil, fmt.Errorf("%w: no access to this conversation", lifecycle.ErrForbidden)
	}

	return s.repo.Messages(ctx, conversationID)
}

func (s *Service) SendMessage(ctx context.Context, conversationID, senderID int64, role lifecycle.Role, req *SendMessageRequest, fileURL, fileName *string, fileSize *int64) (*Message, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("%w: message content is required", lifecycle.ErrValidation)
	}

	conversation, err := s.repo.GetActiveConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !role.Elevated() && conversation.UserID != senderID {
		return nil, fmt.Errorf("%w: no access to this conversation", lifecycle.ErrForbidden)
	}

	messageType := req.MessageType
	if messageType == "" {
		messageType = "text"
	}
	switch messageType {
	case "text", "file", "image":
	default:
		return nil, fmt.Errorf("%w: invalid message type", lifecycle.ErrValidation)
	}

	return s.repo.CreateMessage(ctx, &Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        req.Content,
		MessageType:    messageType,
		FileURL:        fileURL,
		FileName:       fileName,
		FileSize:       fileSize,
	})
}

func (s *Service) MarkAsRead(ctx context.Context, conversationID, readerID int64, role lifecycle.Role) error {
	conversation, err := s.repo.GetActiveConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if !role.Elevated() && conversation.UserID != readerID {
		return fmt.Errorf("%w: no access to this conversation", lifecycle.ErrForbidden)
	}

	return s.repo.MarkAsRead(ctx, conversationID, readerID)
}

func (s *Service) AvailableLawyers(ctx context.Context) ([]Lawyer, error) {
	return s.repo.AvailableLawyers(ctx)
}

func (s *Service) SetOnlineStatus(ctx context.Context, userID int64, online bool) error {
	return s.repo.SetOnlineStatus(ctx, userID, online)
}

func (s *Service) Stats(ctx context.Context, role lifecycle.Role) (*Stats, error) {
	if role != lifecycle.RoleAdmin {
		return nil, fmt.Errorf("%w: only admin can view chat stats", lifecycle.ErrForbidden)
	}
	return s.repo.Stats(ctx)
}

func (s *Service) DetailedStats(ctx context.Context, role lifecycle.Role) (*DetailedStats, []ActivityRow, error) {
	if role != lifecycle.RoleAdmin {
		return nil, nil, fmt.Errorf("%w: only admin can view chat stats", lifecycle.ErrForbidden)
	}
	return s.repo.DetailedStats(ctx)
}

func (s *Service) ConversationDetail(ctx context.Context, conversationID int64, role lifecycle.Role) (*ConversationDetail, error) {
	if !role.Elevated() {
		return nil, fmt.Errorf("%w: only lawyers and admins can view conversation detail", lifecycle.ErrForbidden)
	}

	conversation, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	messages, err := s.repo.Messages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	return &ConversationDetail{Conversation: conversation, Messages: messages}, nil
}
