package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/ZBrian99/inclusiva-api/internal/models"
)

// PostFilter narrows list and count queries. The zero value matches only
// approved posts, which is the public default.
type PostFilter struct {
	Query              string
	Category           string
	Status             string
	IncludeNonApproved bool
	Urgent             *bool
	MinPrice           *int
	MaxPrice           *int
	Mode               string
}

type SortKey string

const (
	SortRecent     SortKey = "recent"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRatingDesc SortKey = "rating_desc"
)

type PostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, filter PostFilter, sortKey SortKey, offset, limit int) ([]*models.Post, error)
	Count(ctx context.Context, filter PostFilter) (int, error)
	Update(ctx context.Context, tx *sql.Tx, id string, fields map[string]interface{}) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	RemoveAll(ctx context.Context, tx *sql.Tx) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, category, title, subtitle, description, image, author, author_avatar, location,
		price, price_label, rating, rating_count, tags, urgent, date, payment, barter_accepted, status,
		start_date, end_date, venue, mode, capacity, organizer,
		experience_years, availability, service_area,
		condition, stock, warranty, usage_time,
		duration, schedule, level, needed_by, budget_range,
		created_at, updated_at`

func scanPost(row interface{ Scan(...interface{}) error }) (*models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID, &post.Category, &post.Title, &post.Subtitle, &post.Description, &post.Image,
		&post.Author, &post.AuthorAvatar, &post.Location,
		&post.Price, &post.PriceLabel, &post.Rating, &post.RatingCount,
		pq.Array(&post.Tags), &post.Urgent, &post.Date, pq.Array(&post.Payment), &post.BarterAccepted, &post.Status,
		&post.StartDate, &post.EndDate, &post.Venue, &post.Mode, &post.Capacity, &post.Organizer,
		&post.ExperienceYears, &post.Availability, &post.ServiceArea,
		&post.Condition, &post.Stock, &post.Warranty, &post.UsageTime,
		&post.Duration, &post.Schedule, &post.Level, &post.NeededBy, &post.BudgetRange,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Payment == nil {
		post.Payment = []string{}
	}
	return &post, nil
}

func (r *postRepository) Create(ctx context.Context, tx *sql.Tx, post *models.Post) error {
	query := `
		INSERT INTO posts (id, category, title, subtitle, description, image, author, author_avatar, location,
			price, price_label, rating, rating_count, tags, urgent, date, payment, barter_accepted, status,
			start_date, end_date, venue, mode, capacity, organizer,
			experience_years, availability, service_area,
			condition, stock, warranty, usage_time,
			duration, schedule, level, needed_by, budget_range)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25,
			$26, $27, $28,
			$29, $30, $31, $32,
			$33, $34, $35, $36, $37)
	`

	args := []interface{}{
		post.ID, post.Category, post.Title, post.Subtitle, post.Description, post.Image,
		post.Author, post.AuthorAvatar, post.Location,
		post.Price, post.PriceLabel, post.Rating, post.RatingCount,
		pq.Array(post.Tags), post.Urgent, post.Date, pq.Array(post.Payment), post.BarterAccepted, post.Status,
		post.StartDate, post.EndDate, post.Venue, post.Mode, post.Capacity, post.Organizer,
		post.ExperienceYears, post.Availability, post.ServiceArea,
		post.Condition, post.Stock, post.Warranty, post.UsageTime,
		post.Duration, post.Schedule, post.Level, post.NeededBy, post.BudgetRange,
	}

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, args...)
	} else {
		_, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	post, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return post, nil
}

func (r *postRepository) List(ctx context.Context, filter PostFilter, sortKey SortKey, offset, limit int) ([]*models.Post, error) {
	where, args := buildWhere(filter)
	query := fmt.Sprintf(`SELECT %s FROM posts %s ORDER BY %s OFFSET $%d LIMIT $%d`,
		postColumns, where, resolveOrderBy(sortKey), len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *postRepository) Count(ctx context.Context, filter PostFilter) (int, error) {
	where, args := buildWhere(filter)

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts `+where, args...).Scan(&total)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return total, nil
}

func (r *postRepository) Update(ctx context.Context, tx *sql.Tx, id string, fields map[string]interface{}) (bool, error) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	set := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+2)
	for i, col := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	set = append(set, fmt.Sprintf("updated_at = $%d", len(cols)+1))
	args = append(args, time.Now())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE posts SET %s WHERE id = $%d", strings.Join(set, ", "), len(cols)+2)

	var res sql.Result
	var err error
	if tx != nil {
		res, err = tx.ExecContext(ctx, query, args...)
	} else {
		res, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return affected > 0, nil
}

func (r *postRepository) Remove(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return affected > 0, nil
}

func (r *postRepository) RemoveAll(ctx context.Context, tx *sql.Tx) error {
	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, `DELETE FROM posts`)
	} else {
		_, err = r.db.ExecContext(ctx, `DELETE FROM posts`)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func buildWhere(filter PostFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	// by default only approved posts are visible
	if !filter.IncludeNonApproved {
		clauses = append(clauses, "status = "+arg(models.StatusApproved))
	} else if filter.Status != "" {
		clauses = append(clauses, "status = "+arg(filter.Status))
	}

	if filter.Category != "" {
		clauses = append(clauses, "category = "+arg(filter.Category))
	}
	if filter.Urgent != nil {
		clauses = append(clauses, "urgent = "+arg(*filter.Urgent))
	}
	if filter.MinPrice != nil {
		clauses = append(clauses, "price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		clauses = append(clauses, "price <= "+arg(*filter.MaxPrice))
	}
	if filter.Mode != "" {
		clauses = append(clauses, "mode = "+arg(filter.Mode))
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := arg("%" + q + "%")
		exact := arg(q)
		clauses = append(clauses, fmt.Sprintf(
			"(title ILIKE %[1]s OR subtitle ILIKE %[1]s OR description ILIKE %[1]s OR location ILIKE %[1]s OR author ILIKE %[1]s OR %[2]s = ANY(tags))",
			pattern, exact))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func resolveOrderBy(sortKey SortKey) string {
	switch sortKey {
	case SortPriceAsc:
		return "price ASC"
	case SortPriceDesc:
		return "price DESC"
	case SortRatingDesc:
		return "rating DESC"
	default:
		// pending before approved, oldest first
		return "status ASC, created_at ASC"
	}
}
