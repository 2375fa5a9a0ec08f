package video

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/demowin23/vilaw-be/lifecycle"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

var sortColumns = map[string]string{
	"ts_create":     "v.ts_create",
	"view_count":    "v.view_count",
	"like_count":    "v.like_count",
	"dislike_count": "v.dislike_count",
	"title":         "v.title",
	"duration":      "v.duration",
}

func orderClause(sortBy, sortOrder string) (string, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		return "", fmt.Errorf("%w: invalid sort field", lifecycle.ErrValidation)
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	} else if sortOrder != "" && !strings.EqualFold(sortOrder, "desc") {
		return "", fmt.Errorf("%w: invalid sort order", lifecycle.ErrValidation)
	}
	return column + " " + direction, nil
}

func buildConditions(f *ListFilter) ([]string, []interface{}, int) {
	conditions := []string{"v.is_active = true"}
	var args []interface{}
	idx := 1

	if cond := lifecycle.ApprovalCondition(f.Role, f.Pending, "v.is_approved"); cond != "" {
		conditions = append(conditions, cond)
	}

	if f.Type != "" {
		conditions = append(conditions, fmt.Sprintf("v.type = $%d", idx))
		args = append(args, f.Type)
		idx++
	}

	if f.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(v.title ILIKE $%d OR v.description ILIKE $%d)", idx, idx))
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	if f.Hashtag != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(v.hashtags)", idx))
		args = append(args, f.Hashtag)
		idx++
	}

	if f.IsFeatured {
		conditions = append(conditions, "v.is_featured = true")
	}

	if f.AgeGroup != "" {
		conditions = append(conditions, fmt.Sprintf("v.age_group = $%d", idx))
		args = append(args, f.AgeGroup)
		idx++
	}

	return conditions, args, idx
}

func (r *Repository) List(ctx context.Context, f *ListFilter) ([]Video, int64, error) {
	order, err := orderClause(f.SortBy, f.SortOrder)
	if err != nil {
		return nil, 0, err
	}

	conditions, args, idx := buildConditions(f)
	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM video_life_law v WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT v.*, u.full_name AS creator_name
		FROM video_life_law v
		LEFT JOIN users u ON v.created_by = u.id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, where, order, idx, idx+1)
	args = append(args, f.Limit, f.Offset)

	videos := []Video{}
	if err := r.db.SelectContext(ctx, &videos, query, args...); err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Video, error) {
	var v Video
	err := r.db.GetContext(ctx, &v, `
		SELECT v.*, u.full_name AS creator_name
		FROM video_life_law v
		LEFT JOIN users u ON v.created_by = u.id
		WHERE v.id = $1 AND v.is_active = true`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// AttachUserActions fills UserAction on each video from the viewer's
// like/dislike rows, one query for the whole page.
func (r *Repository) AttachUserActions(ctx context.Context, videos []Video, userID int64) error {
	if len(videos) == 0 {
		return nil
	}

	ids := make(pq.Int64Array, len(videos))
	for i := range videos {
		ids[i] = videos[i].ID
	}

	rows := []struct {
		VideoID    int64  `db:"video_id"`
		ActionType string `db:"action_type"`
	}{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT video_id, action_type
		FROM video_likes
		WHERE user_id = $1 AND video_id = ANY($2)`, userID, ids)
	if err != nil {
		return err
	}

	actions := make(map[int64]string, len(rows))
	for _, row := range rows {
		actions[row.VideoID] = row.ActionType
	}
	for i := range videos {
		if action, ok := actions[videos[i].ID]; ok {
			a := action
			videos[i].UserAction = &a
		}
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, v *Video) (*Video, error) {
	var created Video
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO video_life_law (type, title, video, description, thumbnail, duration, age_group, hashtags, created_by, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING *`,
		v.Type, v.Title, v.Video, v.Description, v.Thumbnail, v.Duration,
		v.AgeGroup, v.Hashtags, v.CreatedBy, v.IsApproved)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repository) Update(ctx context.Context, id int64, req *UpdateRequest, videoURL, thumbnailURL *string, hashtags pq.StringArray) (*Video, error) {
	var updated Video
	err := r.db.GetContext(ctx, &updated, `
		UPDATE video_life_law SET
			type = COALESCE($1, type),
			title = COALESCE($2, title),
			video = COALESCE($3, video),
			description = COALESCE($4, description),
			thumbnail = COALESCE($5, thumbnail),
			duration = COALESCE($6, duration),
			age_group = COALESCE($7, age_group),
			hashtags = COALESCE($8, hashtags),
			is_featured = COALESCE($9, is_featured),
			ts_update = CURRENT_TIMESTAMP
		WHERE id = $10 AND is_active = true
		RETURNING *`,
		req.Type, req.Title, videoURL, req.Description, thumbnailURL,
		req.Duration, req.AgeGroup, hashtags, req.IsFeatured, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM video_life_law WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return lifecycle.ErrNotFound
	}
	return nil
}

func (r *Repository) SetApproved(ctx context.Context, id int64, approved bool) (*Video, error) {
	var updated Video
	err := r.db.GetContext(ctx, &updated, `
		UPDATE video_life_law
		SET is_approved = $2, ts_update = CURRENT_TIMESTAMP
		WHERE id = $1 AND is_active = true
		RETURNING *`, id, approved)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lifecycle.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) IncrementViewCount(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE video_life_law SET view_count = view_count + 1 WHERE id = $1`, id)
	return err
}

// ToggleLike flips the viewer's reaction: repeating the same action removes
// it, a different action replaces it. Returns the resulting action, nil when
// the reaction was removed.
func (r *Repository) ToggleLike(ctx context.Context, videoID, userID int64, action string) (*string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current string
	err = tx.GetContext(ctx, &current, `
		SELECT action_type FROM video_likes
		WHERE video_id = $1 AND user_id = $2
		FOR UPDATE`, videoID, userID)

	var result *string
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO video_likes (video_id, user_id, action_type)
			VALUES ($1, $2, $3)`, videoID, userID, action); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`
			UPDATE video_life_law SET %s = %s + 1 WHERE id = $1`,
			countColumn(action), countColumn(action)), videoID); err != nil {
			return nil, err
		}
		result = &action

	case err != nil:
		return nil, err

	case current == action:
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM video_likes WHERE video_id = $1 AND user_id = $2`,
			videoID, userID); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`
			UPDATE video_life_law SET %s = GREATEST(%s - 1, 0) WHERE id = $1`,
			countColumn(action), countColumn(action)), videoID); err != nil {
			return nil, err
		}

	default:
		if _, err := tx.ExecContext(ctx, `
			UPDATE video_likes SET action_type = $1
			WHERE video_id = $2 AND user_id = $3`, action, videoID, userID); err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`
			UPDATE video_life_law
			SET %s = GREATEST(%s - 1, 0), %s = %s + 1
			WHERE id = $1`,
			countColumn(current), countColumn(current),
			countColumn(action), countColumn(action)), videoID); err != nil {
			return nil, err
		}
		result = &action
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

func countColumn(action string) string {
	if action == "like" {
		return "like_count"
	}
	return "dislike_count"
}

func (r *Repository) Types(ctx context.Context) ([]string, error) {
	types := []string{}
	err := r.db.SelectContext(ctx, &types, `
		SELECT DISTINCT type
		FROM video_life_law
		WHERE is_active = true
		ORDER BY type`)
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *Repository) PopularHashtags(ctx context.Context, limit int) ([]HashtagCount, error) {
	rows := []HashtagCount{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT unnest(hashtags) AS hashtag, COUNT(*) AS count
		FROM video_life_law
		WHERE hashtags IS NOT NULL AND is_active = true
		GROUP BY hashtag
		ORDER BY count DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) TopBy(ctx context.Context, f *ListFilter, column string, limit int) ([]Video, error) {
	f.Role = lifecycle.RoleNone
	f.Pending = lifecycle.ApprovedOnly

	conditions, args, idx := buildConditions(f)
	query := fmt.Sprintf(`
		SELECT v.*, u.full_name AS creator_name
		FROM video_life_law v
		LEFT JOIN users u ON v.created_by = u.id
		WHERE %s
		ORDER BY v.%s DESC
		LIMIT $%d`, strings.Join(conditions, " AND "), column, idx)
	args = append(args, limit)

	videos := []Video{}
	if err := r.db.SelectContext(ctx, &videos, query, args...); err != nil {
		return nil, err
	}
	return videos, nil
}
