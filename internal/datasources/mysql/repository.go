package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bsecades/comment-rating/internal/datasources"
	"github.com/bsecades/comment-rating/internal/domain"
	"github.com/huandu/go-sqlbuilder"
)

var _ datasources.DirectoryRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchComment(ctx context.Context, id int64) (domain.Comment, error) {
	query, args := commentByIDQuery(id)

	var c domain.Comment
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.UserID,
		&c.Text,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Comment{}, fmt.Errorf("comment %d: %w", id, domain.ErrCommentNotFound)
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("fetching comment: %w", err)
	}

	return c, nil
}

func (r *Repository) FetchUser(ctx context.Context, id int64) (domain.User, error) {
	query, args := userByIDQuery(id)

	var u domain.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrUserNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}

	return u, nil
}

// InsertUser stores a new user and returns it with its assigned ID.
func (r *Repository) InsertUser(ctx context.Context, name string) (domain.User, error) {
	now := time.Now().UTC().Truncate(time.Second)

	ib := sqlbuilder.InsertInto("users")
	ib.Cols("name", "created_at", "updated_at")
	ib.Values(name, now, now)
	query, args := ib.Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.User{}, fmt.Errorf("inserting user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("reading inserted user ID: %w", err)
	}

	return domain.User{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

// InsertComment stores a new comment written by userID.
func (r *Repository) InsertComment(ctx context.Context, userID int64, text string) (domain.Comment, error) {
	now := time.Now().UTC().Truncate(time.Second)

	ib := sqlbuilder.InsertInto("comments")
	ib.Cols("user_id", "text", "created_at", "updated_at")
	ib.Values(userID, text, now, now)
	query, args := ib.Build()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("inserting comment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Comment{}, fmt.Errorf("reading inserted comment ID: %w", err)
	}

	return domain.Comment{ID: id, UserID: userID, Text: text, CreatedAt: now, UpdatedAt: now}, nil
}

func commentByIDQuery(id int64) (string, []interface{}) {
	sb := sqlbuilder.Select("id", "user_id", "text", "created_at", "updated_at")
	sb.From("comments")
	sb.Where(sb.Equal("id", id))
	return sb.Build()
}

func userByIDQuery(id int64) (string, []interface{}) {
	sb := sqlbuilder.Select("id", "name", "created_at", "updated_at")
	sb.From("users")
	sb.Where(sb.Equal("id", id))
	return sb.Build()
}
