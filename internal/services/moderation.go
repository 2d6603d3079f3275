package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/apperrors"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/sanitize"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage"
)

// ModerationService is the privileged mutation surface behind the admin
// credential. It shares the store with ForumService but is never
// reachable from a storefront-signed request.
type ModerationService struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewModerationService(store storage.Storage, logger *zap.Logger) *ModerationService {
	return &ModerationService{store: store, logger: logger}
}

func validContentStatus(status string) bool {
	return status == models.StatusPending ||
		status == models.StatusApproved ||
		status == models.StatusRejected
}

// SetThreadStatus moves a thread between moderation states. Any state
// is reachable from any other, so moderation decisions can be reversed.
func (s *ModerationService) SetThreadStatus(ctx context.Context, shop string, id uint, status string) error {
	if !validContentStatus(status) {
		return apperrors.Validationf("Invalid status")
	}
	if err := s.store.SetThreadStatus(ctx, shop, id, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("set thread status: %w", err)
	}
	s.logger.Info("thread status changed",
		zap.String("shop", shop),
		zap.Uint("thread_id", id),
		zap.String("status", status),
	)
	return nil
}

func (s *ModerationService) SetThreadPinned(ctx context.Context, shop string, id uint, pinned bool) error {
	if err := s.store.SetThreadPinned(ctx, shop, id, pinned); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("set thread pinned: %w", err)
	}
	return nil
}

func (s *ModerationService) SetThreadClosed(ctx context.Context, shop string, id uint, closed bool) error {
	if err := s.store.SetThreadClosed(ctx, shop, id, closed); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("set thread closed: %w", err)
	}
	return nil
}

// ApproveComment flips a comment to approved and bumps its thread's
// comment counter exactly once. Re-approving an approved comment is a
// no-op for the counter.
func (s *ModerationService) ApproveComment(ctx context.Context, shop string, id uint) error {
	comment, err := s.store.GetComment(ctx, shop, id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load comment: %w", err)
	}

	changed, err := s.store.MarkCommentApproved(ctx, shop, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("approve comment: %w", err)
	}
	if !changed {
		return nil
	}

	if err := s.store.IncrementThreadComments(ctx, shop, comment.ThreadID); err != nil {
		return fmt.Errorf("comment counter increment: %w", err)
	}
	return nil
}

func (s *ModerationService) RejectComment(ctx context.Context, shop string, id uint) error {
	if err := s.store.SetCommentStatus(ctx, shop, id, models.StatusRejected); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("reject comment: %w", err)
	}
	return nil
}

// Admin listings. Empty status means everything.

func (s *ModerationService) ListThreads(ctx context.Context, shop, status string) ([]models.Thread, error) {
	if status != "" && !validContentStatus(status) {
		return nil, apperrors.Validationf("Invalid status")
	}
	return s.store.ListThreads(ctx, shop, storage.ThreadFilter{Status: status})
}

func (s *ModerationService) ListComments(ctx context.Context, shop, status string) ([]models.Comment, error) {
	if status != "" && !validContentStatus(status) {
		return nil, apperrors.Validationf("Invalid status")
	}
	return s.store.ListComments(ctx, shop, storage.CommentFilter{Status: status})
}

// Categories

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases and dashes a category name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *ModerationService) ListCategories(ctx context.Context, shop string) ([]models.Category, error) {
	return s.store.ListCategories(ctx, shop)
}

func (s *ModerationService) CreateCategory(ctx context.Context, shop, name, slug string, order int) (*models.Category, error) {
	name = sanitize.Truncate(sanitize.Strip(name), models.MaxCategoryNameLen)
	if name == "" {
		return nil, apperrors.Validationf("Name is required")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	slug = sanitize.Truncate(slug, models.MaxCategorySlugLen)

	category := &models.Category{
		Shop:  shop,
		Name:  name,
		Slug:  slug,
		Order: order,
	}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes the category only. Threads keep their
// category reference; listings tolerate the dangling id.
func (s *ModerationService) DeleteCategory(ctx context.Context, shop string, id uint) error {
	if err := s.store.DeleteCategory(ctx, shop, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Reports

func (s *ModerationService) ListReports(ctx context.Context, shop, status string) ([]models.Report, error) {
	return s.store.ListReports(ctx, shop, status)
}

func (s *ModerationService) ResolveReport(ctx context.Context, shop string, id uint, notes string) error {
	notes = sanitize.Truncate(sanitize.Strip(notes), 500)
	if err := s.store.ResolveReport(ctx, shop, id, notes); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("resolve report: %w", err)
	}
	return nil
}

// Dashboard

func (s *ModerationService) Dashboard(ctx context.Context, shop string) (storage.DashboardCounts, error) {
	return s.store.Counts(ctx, shop)
}
