package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"heritage-server/internal/interfaces"
	"heritage-server/internal/schemas"
)

const postColumns = `id, title, content, content_type, author_id, author_name, author_avatar, likes, liked_by,
	comments, featured, images, location, event_date, created_at`

// PostRepository stores community posts and keeps the post summaries on the author account in sync.
type PostRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*schemas.Post, error)
	List(ctx context.Context, contentType string, offset, limit int) ([]*schemas.Post, int, error)
	Featured(ctx context.Context, limit int) ([]*schemas.Post, error)
	UpcomingEvents(ctx context.Context, now time.Time, limit int) ([]*schemas.Post, error)
	Create(ctx context.Context, post *schemas.Post) error
	Update(ctx context.Context, post *schemas.Post) error
	Delete(ctx context.Context, post *schemas.Post) error
	ToggleLike(ctx context.Context, id, accountId uuid.UUID) (int, bool, error)
}

type PgPostRepository struct {
	pool interfaces.PgxPoolIface
}

func NewPostRepository(pool interfaces.PgxPoolIface) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*schemas.Post, error) {
	post := &schemas.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.ContentType,
		&post.Author.ID,
		&post.Author.Name,
		&post.Author.Avatar,
		&post.Likes,
		&post.LikedBy,
		&post.Comments,
		&post.Featured,
		&post.Images,
		&post.Location,
		&post.EventDate,
		&post.CreatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}

	return post, nil
}

func (r *PgPostRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*schemas.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*schemas.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (r *PgPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*schemas.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return scanPost(r.pool.QueryRow(ctx, query, id))
}

// List returns a page of posts, newest first, and the total count. An empty contentType matches all posts.
func (r *PgPostRepository) List(ctx context.Context, contentType string, offset, limit int) ([]*schemas.Post, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM posts WHERE ($1::text = '' OR content_type = $1::text)`
	if err := r.pool.QueryRow(ctx, countQuery, contentType).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE ($1::text = '' OR content_type = $1::text)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	posts, err := r.queryPosts(ctx, query, contentType, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PgPostRepository) Featured(ctx context.Context, limit int) ([]*schemas.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE featured = TRUE ORDER BY created_at DESC LIMIT $1`
	return r.queryPosts(ctx, query, limit)
}

// UpcomingEvents returns event posts dated after now, soonest first.
func (r *PgPostRepository) UpcomingEvents(ctx context.Context, now time.Time, limit int) ([]*schemas.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE content_type = 'event' AND event_date > $1
		ORDER BY event_date ASC LIMIT $2`
	return r.queryPosts(ctx, query, now, limit)
}

// Create inserts the post and appends its summary to the author account in one transaction.
func (r *PgPostRepository) Create(ctx context.Context, post *schemas.Post) error {
	return withTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		insertQuery := `INSERT INTO posts (` + postColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
		_, err := tx.Exec(ctx, insertQuery,
			post.ID,
			post.Title,
			post.Content,
			post.ContentType,
			post.Author.ID,
			post.Author.Name,
			post.Author.Avatar,
			post.Likes,
			post.LikedBy,
			post.Comments,
			post.Featured,
			post.Images,
			post.Location,
			post.EventDate,
			post.CreatedAt,
		)
		if err != nil {
			return err
		}

		summary := []schemas.PostSummary{{
			ID:          post.ID,
			Title:       post.Title,
			ContentType: post.ContentType,
			CreatedAt:   post.CreatedAt,
		}}
		summaryQuery := `UPDATE accounts SET posts = posts || $2::jsonb WHERE id = $1`
		return execAffectingOne(ctx, tx, summaryQuery, post.Author.ID, summary)
	})
}

// Update writes the mutable fields of the post and refreshes the summary on the author account.
func (r *PgPostRepository) Update(ctx context.Context, post *schemas.Post) error {
	return withTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		updateQuery := `UPDATE posts SET title = $2, content = $3, content_type = $4, images = $5, location = $6,
			event_date = $7 WHERE id = $1`
		err := execAffectingOne(ctx, tx, updateQuery,
			post.ID,
			post.Title,
			post.Content,
			post.ContentType,
			post.Images,
			post.Location,
			post.EventDate,
		)
		if err != nil {
			return err
		}

		summaryQuery := `UPDATE accounts SET posts = (
			SELECT COALESCE(jsonb_agg(CASE WHEN elem->>'id' = $2::text
				THEN elem || jsonb_build_object('title', $3::text, 'contentType', $4::text)
				ELSE elem END), '[]'::jsonb)
			FROM jsonb_array_elements(posts) AS elem) WHERE id = $1`
		_, err = tx.Exec(ctx, summaryQuery, post.Author.ID, post.ID.String(), post.Title, post.ContentType)
		return err
	})
}

// Delete removes the post and its summary on the author account.
func (r *PgPostRepository) Delete(ctx context.Context, post *schemas.Post) error {
	return withTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := execAffectingOne(ctx, tx, `DELETE FROM posts WHERE id = $1`, post.ID); err != nil {
			return err
		}

		summaryQuery := `UPDATE accounts SET posts = (
			SELECT COALESCE(jsonb_agg(elem), '[]'::jsonb)
			FROM jsonb_array_elements(posts) AS elem WHERE elem->>'id' <> $2::text) WHERE id = $1`
		_, err := tx.Exec(ctx, summaryQuery, post.Author.ID, post.ID.String())
		return err
	})
}

// ToggleLike adds or removes the like of accountId in a single statement and returns the new state.
func (r *PgPostRepository) ToggleLike(ctx context.Context, id, accountId uuid.UUID) (int, bool, error) {
	query := `UPDATE posts SET
		liked_by = CASE WHEN $2::uuid = ANY(liked_by) THEN array_remove(liked_by, $2::uuid)
			ELSE array_append(liked_by, $2::uuid) END,
		likes = CASE WHEN $2::uuid = ANY(liked_by) THEN likes - 1 ELSE likes + 1 END
		WHERE id = $1 RETURNING likes, $2::uuid = ANY(liked_by)`

	var likes int
	var liked bool
	if err := r.pool.QueryRow(ctx, query, id, accountId).Scan(&likes, &liked); err != nil {
		return 0, false, mapNoRows(err)
	}

	return likes, liked, nil
}

// execAffectingOne executes query and returns ErrNotFound when no row was touched.
func execAffectingOne(ctx context.Context, tx pgx.Tx, query string, args ...interface{}) error {
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
