package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "stats:overview"
	cacheTTL = 60 * time.Second
)

type UserStats struct {
	TotalUsers        int64 `db:"total_users" json:"total_users"`
	UserCount         int64 `db:"user_count" json:"user_count"`
	LawyerCount       int64 `db:"lawyer_count" json:"lawyer_count"`
	AdminCount        int64 `db:"admin_count" json:"admin_count"`
	CollaboratorCount int64 `db:"collaborator_count" json:"collaborator_count"`
}

type KnowledgeStats struct {
	TotalArticles     int64 `db:"total_articles" json:"total_articles"`
	PublishedArticles int64 `db:"published_articles" json:"published_articles"`
}

type DocumentStats struct {
	TotalDocuments int64 `db:"total_documents" json:"total_documents"`
	TotalDownloads int64 `db:"total_downloads" json:"total_downloads"`
}

type NewsStats struct {
	TotalNews     int64 `db:"total_news" json:"total_news"`
	PublishedNews int64 `db:"published_news" json:"published_news"`
}

type VideoStats struct {
	TotalVideos     int64 `db:"total_videos" json:"total_videos"`
	TotalVideoViews int64 `db:"total_video_views" json:"total_video_views"`
}

type ChatStats struct {
	TotalConversations  int64 `db:"total_conversations" json:"total_conversations"`
	ActiveConversations int64 `db:"active_conversations" json:"active_conversations"`
}

type Overview struct {
	Users          UserStats      `json:"users"`
	LegalKnowledge KnowledgeStats `json:"legal_knowledge"`
	LegalDocuments DocumentStats  `json:"legal_documents"`
	LegalNews      NewsStats      `json:"legal_news"`
	Videos         VideoStats     `json:"videos"`
	Chats          ChatStats      `json:"chats"`
}

type Service struct {
	db    *sqlx.DB
	cache *redis.Client
}

func NewService(db *sqlx.DB, cache *redis.Client) *Service {
	return &Service{db: db, cache: cache}
}

// Overview aggregates record counts across the content tables. Results are
// cached briefly so the admin dashboard cannot hammer six COUNT queries.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		var o Overview
		if err := json.Unmarshal([]byte(cached), &o); err == nil {
			return &o, nil
		}
	}

	var o Overview

	err := s.db.GetContext(ctx, &o.Users, `
		SELECT
			COUNT(*) AS total_users,
			COUNT(CASE WHEN role = 'user' THEN 1 END) AS user_count,
			COUNT(CASE WHEN role = 'lawyer' THEN 1 END) AS lawyer_count,
			COUNT(CASE WHEN role = 'admin' THEN 1 END) AS admin_count,
			COUNT(CASE WHEN role = 'collaborator' THEN 1 END) AS collaborator_count
		FROM users`)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &o.LegalKnowledge, `
		SELECT
			COUNT(*) AS total_articles,
			COUNT(CASE WHEN status = 'published' THEN 1 END) AS published_articles
		FROM legal_knowledge`)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &o.LegalDocuments, `
		SELECT
			COUNT(*) AS total_documents,
			COALESCE(SUM(download_count), 0) AS total_downloads
		FROM legal_documents`)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &o.LegalNews, `
		SELECT
			COUNT(*) AS total_news,
			COUNT(CASE WHEN status = 'published' THEN 1 END) AS published_news
		FROM legal_news`)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &o.Videos, `
		SELECT
			COUNT(*) AS total_videos,
			COALESCE(SUM(view_count), 0) AS total_video_views
		FROM video_life_law`)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &o.Chats, `
		SELECT
			COUNT(*) AS total_conversations,
			COUNT(CASE WHEN status = 'active' THEN 1 END) AS active_conversations
		FROM conversations`)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(&o); err == nil {
		s.cache.Set(ctx, cacheKey, payload, cacheTTL)
	}

	return &o, nil
}
