package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/ZBrian99/inclusiva-api/internal/apperror"
	"github.com/ZBrian99/inclusiva-api/internal/models"
	"github.com/ZBrian99/inclusiva-api/internal/repository"
	"github.com/ZBrian99/inclusiva-api/internal/transfer"
	"github.com/ZBrian99/inclusiva-api/internal/validation"
)

type ListParams struct {
	Page               int
	PageSize           int
	Query              string
	Category           string
	Status             string
	Sort               string
	Urgent             *bool
	MinPrice           *int
	MaxPrice           *int
	Mode               string
	IncludeNonApproved bool
}

type PostService interface {
	Create(ctx context.Context, in *transfer.PostInput) (*models.Post, error)
	List(ctx context.Context, params ListParams) ([]*models.Post, transfer.Pagination, error)
	GetByID(ctx context.Context, id string, isAdmin bool) (*models.Post, error)
	Update(ctx context.Context, id string, in *transfer.PostInput) (*models.Post, error)
	Remove(ctx context.Context, id string) error
}

type postService struct {
	db *sql.DB
	pr repository.PostRepository
	sl repository.SocialLinkRepository
}

func NewPostService(db *sql.DB, pr repository.PostRepository, sl repository.SocialLinkRepository) PostService {
	return &postService{
		db: db,
		pr: pr,
		sl: sl,
	}
}

func (s *postService) Create(ctx context.Context, in *transfer.PostInput) (*models.Post, error) {
	if errs := validation.Validate(in); errs != nil {
		return nil, &apperror.ValidationError{Fields: errs}
	}

	post, links, err := shapeForCreate(in)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to start transaction: %v", apperror.ErrStorage, err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if err = s.pr.Create(ctx, tx, post); err != nil {
		return nil, fmt.Errorf("%w: error creating post: %v", apperror.ErrStorage, err)
	}

	if len(links) > 0 {
		if err = s.sl.CreateMany(ctx, tx, post.ID, links); err != nil {
			return nil, fmt.Errorf("%w: error saving social links: %v", apperror.ErrStorage, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit transaction: %v", apperror.ErrStorage, err)
	}

	post.Socials = links
	if post.Socials == nil {
		post.Socials = []models.SocialLink{}
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, params ListParams) ([]*models.Post, transfer.Pagination, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 12
	}
	if pageSize > 100 {
		pageSize = 100
	}

	filter := repository.PostFilter{
		Query:              normalizeQuery(params.Query),
		Category:           params.Category,
		Status:             params.Status,
		IncludeNonApproved: params.IncludeNonApproved,
		Urgent:             params.Urgent,
		MinPrice:           params.MinPrice,
		MaxPrice:           params.MaxPrice,
		Mode:               params.Mode,
	}

	total, err := s.pr.Count(ctx, filter)
	if err != nil {
		return nil, transfer.Pagination{}, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	posts, err := s.pr.List(ctx, filter, repository.SortKey(params.Sort), (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, transfer.Pagination{}, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	if err := s.attachSocials(ctx, posts); err != nil {
		return nil, transfer.Pagination{}, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return posts, transfer.Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

func (s *postService) GetByID(ctx context.Context, id string, isAdmin bool) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	// a missing post and a non-approved post look the same to the public
	if post == nil || (!isAdmin && post.Status != models.StatusApproved) {
		return nil, apperror.ErrNotFound
	}

	links, err := s.sl.GetByPostID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	post.Socials = links

	return post, nil
}

func (s *postService) Update(ctx context.Context, id string, in *transfer.PostInput) (*models.Post, error) {
	if errs := validation.ValidateUpdate(in); errs != nil {
		return nil, &apperror.ValidationError{Fields: errs}
	}

	existing, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	if existing == nil {
		return nil, apperror.ErrNotFound
	}

	fields := shapeForUpdate(existing.Category, in)
	links, replaceLinks := shapeSocials(in)

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to start transaction: %v", apperror.ErrStorage, err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	found, err := s.pr.Update(ctx, tx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: error updating post: %v", apperror.ErrStorage, err)
	}
	if !found {
		err = apperror.ErrNotFound
		return nil, err
	}

	// social links replacement is all-or-nothing: when provided, the
	// previous set is fully replaced, never merged
	if replaceLinks {
		if err = s.sl.RemoveByPostID(ctx, tx, id); err != nil {
			return nil, fmt.Errorf("%w: error replacing social links: %v", apperror.ErrStorage, err)
		}
		if err = s.sl.CreateMany(ctx, tx, id, links); err != nil {
			return nil, fmt.Errorf("%w: error replacing social links: %v", apperror.ErrStorage, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit transaction: %v", apperror.ErrStorage, err)
	}

	return s.GetByID(ctx, id, true)
}

func (s *postService) Remove(ctx context.Context, id string) error {
	found, err := s.pr.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	if !found {
		return apperror.ErrNotFound
	}
	return nil
}

func (s *postService) attachSocials(ctx context.Context, posts []*models.Post) error {
	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}

	byPost, err := s.sl.GetByPostIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, post := range posts {
		post.Socials = byPost[post.ID]
		if post.Socials == nil {
			post.Socials = []models.SocialLink{}
		}
	}
	return nil
}

// shapeForCreate maps a validated payload into the exact record to persist.
// The publication date is server-assigned and status is forced to pending no
// matter what the payload carried.
func shapeForCreate(in *transfer.PostInput) (*models.Post, []models.SocialLink, error) {
	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	post := &models.Post{
		ID:             id,
		Category:       in.Category,
		Title:          *in.Title,
		Subtitle:       in.Subtitle,
		Description:    *in.Description,
		Image:          *in.Image,
		Author:         *in.Author,
		AuthorAvatar:   in.AuthorAvatar,
		Location:       *in.Location,
		Price:          in.Price,
		PriceLabel:     in.PriceLabel,
		Rating:         in.Rating,
		RatingCount:    in.RatingCount,
		Tags:           emptyIfNil(in.Tags),
		Urgent:         in.Urgent != nil && *in.Urgent,
		Date:           time.Now(),
		Payment:        emptyIfNil(in.Payment),
		BarterAccepted: in.BarterAccepted != nil && *in.BarterAccepted,
		Status:         models.StatusPending,
	}

	// exactly one category group is populated; fields belonging to other
	// categories are dropped even if the payload carried them
	switch in.Category {
	case models.CategoryEventos:
		applyEventos(post, in)
	case models.CategoryServicios:
		applyServicios(post, in)
	case models.CategoryProductos:
		applyProductos(post, in)
	case models.CategoryUsados:
		applyUsados(post, in)
	case models.CategoryCursos:
		applyCursos(post, in)
	case models.CategoryPedidos:
		applyPedidos(post, in)
	}

	links, _ := shapeSocials(in)
	return post, links, nil
}

func applyEventos(post *models.Post, in *transfer.PostInput) {
	start, ok := validation.ParseISODate(*in.StartDate)
	if !ok {
		start = time.Now()
	}
	post.StartDate = &start
	if in.EndDate != nil {
		if end, ok := validation.ParseISODate(*in.EndDate); ok {
			post.EndDate = &end
		}
	}
	post.Venue = in.Venue
	post.Mode = in.Mode
	post.Capacity = in.Capacity
	post.Organizer = in.Organizer
}

func applyServicios(post *models.Post, in *transfer.PostInput) {
	post.ExperienceYears = in.ExperienceYears
	post.Availability = in.Availability
	post.ServiceArea = in.ServiceArea
}

func applyProductos(post *models.Post, in *transfer.PostInput) {
	post.Condition = in.Condition
	post.Stock = in.Stock
	post.Warranty = in.Warranty
}

func applyUsados(post *models.Post, in *transfer.PostInput) {
	condition := "usado"
	post.Condition = &condition
	post.UsageTime = in.UsageTime
}

func applyCursos(post *models.Post, in *transfer.PostInput) {
	post.Mode = in.Mode
	post.Duration = in.Duration
	post.Schedule = in.Schedule
	post.Level = in.Level
}

func applyPedidos(post *models.Post, in *transfer.PostInput) {
	post.NeededBy = in.NeededBy
	post.BudgetRange = in.BudgetRange
}

// shapeForUpdate maps the provided fields of a partial payload onto column
// updates. Category is never altered, and category-specific fields are only
// applied when they belong to the stored category.
func shapeForUpdate(category string, in *transfer.PostInput) map[string]interface{} {
	fields := map[string]interface{}{}

	setString := func(col string, val *string) {
		if val != nil {
			fields[col] = *val
		}
	}
	setInt := func(col string, val *int) {
		if val != nil {
			fields[col] = *val
		}
	}
	setBool := func(col string, val *bool) {
		if val != nil {
			fields[col] = *val
		}
	}

	setString("title", in.Title)
	setString("subtitle", in.Subtitle)
	setString("description", in.Description)
	setString("image", in.Image)
	setString("author", in.Author)
	setString("author_avatar", in.AuthorAvatar)
	setString("location", in.Location)
	setInt("price", in.Price)
	setString("price_label", in.PriceLabel)
	if in.Rating != nil {
		fields["rating"] = *in.Rating
	}
	setInt("rating_count", in.RatingCount)
	if in.Tags != nil {
		fields["tags"] = pqStringArray(in.Tags)
	}
	setBool("urgent", in.Urgent)
	if in.Date != nil {
		if d, ok := validation.ParseISODate(*in.Date); ok {
			fields["date"] = d
		}
	}
	if in.Payment != nil {
		fields["payment"] = pqStringArray(in.Payment)
	}
	setBool("barter_accepted", in.BarterAccepted)
	setString("status", in.Status)

	switch category {
	case models.CategoryEventos:
		if in.StartDate != nil {
			if d, ok := validation.ParseISODate(*in.StartDate); ok {
				fields["start_date"] = d
			}
		}
		if in.EndDate != nil {
			if d, ok := validation.ParseISODate(*in.EndDate); ok {
				fields["end_date"] = d
			}
		}
		setString("venue", in.Venue)
		setString("mode", in.Mode)
		setInt("capacity", in.Capacity)
		setString("organizer", in.Organizer)
	case models.CategoryServicios:
		setInt("experience_years", in.ExperienceYears)
		setString("availability", in.Availability)
		setString("service_area", in.ServiceArea)
	case models.CategoryProductos:
		setString("condition", in.Condition)
		setInt("stock", in.Stock)
		setString("warranty", in.Warranty)
	case models.CategoryUsados:
		setString("usage_time", in.UsageTime)
	case models.CategoryCursos:
		setString("mode", in.Mode)
		setString("duration", in.Duration)
		setString("schedule", in.Schedule)
		setString("level", in.Level)
	case models.CategoryPedidos:
		setString("needed_by", in.NeededBy)
		setString("budget_range", in.BudgetRange)
	}

	return fields
}

// shapeSocials normalizes the contact/social entries into link rows, dropping
// entries with an empty URL. The second return reports whether the payload
// provided the set at all, which drives all-or-nothing replacement on update.
func shapeSocials(in *transfer.PostInput) ([]models.SocialLink, bool) {
	if in.Socials != nil {
		links := []models.SocialLink{}
		for _, s := range in.Socials {
			if s.URL == "" {
				continue
			}
			links = append(links, models.SocialLink{Name: s.Name, URL: s.URL})
		}
		return links, true
	}

	if in.Contact != nil {
		links := []models.SocialLink{}
		for _, name := range contactOrder {
			if url := in.Contact[name]; url != "" {
				links = append(links, models.SocialLink{Name: name, URL: url})
			}
		}
		return links, true
	}

	return nil, false
}

// contactOrder keeps contact-map normalization deterministic.
var contactOrder = []string{"instagram", "facebook", "twitter", "tiktok", "website", "whatsapp", "telegram", "email", "discord"}

func pqStringArray(list []string) interface{} {
	return pq.Array(list)
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
