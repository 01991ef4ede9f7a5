package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ZBrian99/inclusiva-api/internal/apperror"
	"github.com/ZBrian99/inclusiva-api/internal/models"
	"github.com/ZBrian99/inclusiva-api/internal/repository"
	"github.com/ZBrian99/inclusiva-api/internal/seed"
	"github.com/ZBrian99/inclusiva-api/internal/validation"
)

type SeedService interface {
	Seed(ctx context.Context) (int, error)
}

type seedService struct {
	db *sql.DB
	pr repository.PostRepository
	sl repository.SocialLinkRepository
}

func NewSeedService(db *sql.DB, pr repository.PostRepository, sl repository.SocialLinkRepository) SeedService {
	return &seedService{
		db: db,
		pr: pr,
		sl: sl,
	}
}

// Seed wipes existing posts and loads the sample dataset. Seeded posts are
// published directly as approved; modes are stored without accents the same
// way the public filters expect them.
func (s *seedService) Seed(ctx context.Context) (int, error) {
	inputs := seed.Posts()

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to start transaction: %v", apperror.ErrStorage, err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if err = s.pr.RemoveAll(ctx, tx); err != nil {
		return 0, fmt.Errorf("%w: error clearing posts: %v", apperror.ErrStorage, err)
	}

	count := 0
	for _, in := range inputs {
		if errs := validation.Validate(in); errs != nil {
			err = fmt.Errorf("invalid seed entry %q: %v", in.Category, errs)
			return 0, err
		}

		var post *models.Post
		var links []models.SocialLink
		post, links, err = shapeForCreate(in)
		if err != nil {
			return 0, err
		}

		post.Status = models.StatusApproved
		if post.Mode != nil {
			mode := normalizeQuery(*post.Mode)
			post.Mode = &mode
		}

		if err = s.pr.Create(ctx, tx, post); err != nil {
			return 0, fmt.Errorf("%w: error creating seed post: %v", apperror.ErrStorage, err)
		}
		if len(links) > 0 {
			if err = s.sl.CreateMany(ctx, tx, post.ID, links); err != nil {
				return 0, fmt.Errorf("%w: error creating seed social links: %v", apperror.ErrStorage, err)
			}
		}
		count++
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: failed to commit transaction: %v", apperror.ErrStorage, err)
	}

	return count, nil
}
