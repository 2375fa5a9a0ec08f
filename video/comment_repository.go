package video

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
)

const repliesPreview = 3

type CommentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// ListByVideo returns top-level comments newest first, each carrying a short
// preview of its oldest replies.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID int64, limit, offset int) ([]Comment, int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*) FROM video_comments
		WHERE video_id = $1 AND parent_id IS NULL AND is_active = true`, videoID)
	if err != nil {
		return nil, 0, err
	}

	comments := []Comment{}
	err = r.db.SelectContext(ctx, &comments, `
		SELECT c.*,
			u.full_name AS user_name,
			u.avatar AS user_avatar,
			u.role AS user_role,
			(SELECT COUNT(*) FROM video_comments WHERE parent_id = c.id AND is_active = true) AS reply_count
		FROM video_comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.video_id = $1 AND c.parent_id IS NULL AND c.is_active = true
		ORDER BY c.ts_create DESC
		LIMIT $2 OFFSET $3`, videoID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	for i := range comments {
		replies := []Comment{}
		err = r.db.SelectContext(ctx, &replies, `
			SELECT c.*,
				u.full_name AS user_name,
				u.avatar AS user_avatar,
				u.role AS user_role,
				0 AS reply_count
			FROM video_comments c
			LEFT JOIN users u ON c.user_id = u.id
			WHERE c.parent_id = $1 AND c.is_active = true
			ORDER BY c.ts_create ASC
			LIMIT $2`, comments[i].ID, repliesPreview)
		if err != nil {
			return nil, 0, err
		}
		comments[i].Replies = replies
	}

	return comments, total, nil
}

// AttachUserLikes fills UserLiked on the comments and their reply previews.
func (r *CommentRepository) AttachUserLikes(ctx context.Context, comments []Comment, userID int64) error {
	var ids pq.Int64Array
	for i := range comments {
		ids = append(ids, comments[i].ID)
		for j := range comments[i].Replies {
			ids = append(ids, comments[i].Replies[j].ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	liked := []int64{}
	err := r.db.SelectContext(ctx, &liked, `
		SELECT comment_id FROM video_comment_likes
		WHERE user_id = $1 AND comment_id = ANY($2)`, userID, ids)
	if err != nil {
		return err
	}

	likedSet := make(map[int64]bool, len(liked))
	for _, id := range liked {
		likedSet[id] = true
	}
	for i := range comments {
		comments[i].UserLiked = likedSet[comments[i].ID]
		for j := range comments[i].Replies {
			comments[i].Replies[j].UserLiked = likedSet[comments[i].Replies[j].ID]
		}
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	var c Comment
	err := r.db.GetContext(ctx, &c, `
		SELECT c.*, NULL AS user_name, NULL AS user_avatar, NULL AS user_role, 0 AS reply_count
		FROM video_comments c
		WHERE c.id = $1 AND c.is_active = true`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) ParentExists(ctx context.Context, parentID, videoID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM video_comments
			WHERE id = $1 AND video_id = $2 AND is_active = true)`,
		parentID, videoID)
	return exists, err
}

func (r *CommentRepository) Create(ctx context.Context, videoID, userID int64, content string, parentID *int64) (*Comment, error) {
	var c Comment
	err := r.db.GetContext(ctx, &c, `
		WITH inserted AS (
			INSERT INTO video_comments (video_id, user_id, content, parent_id)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)
		SELECT i.*,
			u.full_name AS user_name,
			u.avatar AS user_avatar,
			u.role AS user_role,
			0 AS reply_count
		FROM inserted i
		LEFT JOIN users u ON i.user_id = u.id`,
		videoID, userID, content, parentID)
	if err != nil {
		return nil, err
	}
	c.Replies = []Comment{}
	return &c, nil
}

// ToggleLike flips the viewer's like on a comment and returns the new state.
func (r *CommentRepository) ToggleLike(ctx context.Context, commentID, userID int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	// A single conditional insert decides both branches, so concurrent
	// toggles on the same comment never trip the unique constraint.
	res, err := tx.ExecContext(ctx, `
		INSERT INTO video_comment_likes (comment_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (comment_id, user_id) DO NOTHING`, commentID, userID)
	if err != nil {
		return false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	var liked bool
	if inserted == 0 {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM video_comment_likes
			WHERE comment_id = $1 AND user_id = $2`, commentID, userID); err != nil {
			return false, err
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE video_comments SET like_count = GREATEST(like_count - 1, 0)
			WHERE id = $1`, commentID); err != nil {
			return false, err
		}
	} else {
		if _, err := tx.ExecContext(ctx, `
			UPDATE video_comments SET like_count = like_count + 1
			WHERE id = $1`, commentID); err != nil {
			return false, err
		}
		liked = true
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return liked, nil
}

// SoftDelete hides a comment and its replies.
func (r *CommentRepository) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE video_comments SET is_active = false
		WHERE id = $1 OR parent_id = $1`, id)
	return err
}
