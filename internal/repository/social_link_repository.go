package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/lib/pq"

	"github.com/ZBrian99/inclusiva-api/internal/models"
)

type SocialLinkRepository interface {
	CreateMany(ctx context.Context, tx *sql.Tx, postID string, links []models.SocialLink) error
	GetByPostID(ctx context.Context, postID string) ([]models.SocialLink, error)
	GetByPostIDs(ctx context.Context, postIDs []string) (map[string][]models.SocialLink, error)
	RemoveByPostID(ctx context.Context, tx *sql.Tx, postID string) error
}

type socialLinkRepository struct {
	db *sql.DB
}

func NewSocialLinkRepository(db *sql.DB) SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

func (r *socialLinkRepository) CreateMany(ctx context.Context, tx *sql.Tx, postID string, links []models.SocialLink) error {
	query := `INSERT INTO social_links (post_id, name, url) VALUES ($1, $2, $3)`

	for _, link := range links {
		var err error
		if tx != nil {
			_, err = tx.ExecContext(ctx, query, postID, link.Name, link.URL)
		} else {
			_, err = r.db.ExecContext(ctx, query, postID, link.Name, link.URL)
		}
		if err != nil {
			slog.Info(err.Error())
			return err
		}
	}
	return nil
}

func (r *socialLinkRepository) GetByPostID(ctx context.Context, postID string) ([]models.SocialLink, error) {
	query := `SELECT id, post_id, name, url FROM social_links WHERE post_id = $1`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	links := []models.SocialLink{}
	for rows.Next() {
		var link models.SocialLink
		if err := rows.Scan(&link.ID, &link.PostID, &link.Name, &link.URL); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *socialLinkRepository) GetByPostIDs(ctx context.Context, postIDs []string) (map[string][]models.SocialLink, error) {
	result := make(map[string][]models.SocialLink, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	query := `SELECT id, post_id, name, url FROM social_links WHERE post_id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var link models.SocialLink
		if err := rows.Scan(&link.ID, &link.PostID, &link.Name, &link.URL); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		result[link.PostID] = append(result[link.PostID], link)
	}
	return result, rows.Err()
}

func (r *socialLinkRepository) RemoveByPostID(ctx context.Context, tx *sql.Tx, postID string) error {
	query := `DELETE FROM social_links WHERE post_id = $1`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, postID)
	} else {
		_, err = r.db.ExecContext(ctx, query, postID)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
