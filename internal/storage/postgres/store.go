package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage"
)

// Store implements storage.Storage on gorm/postgres. Counters are
// single-column gorm.Expr updates and uniqueness is enforced by the
// composite indexes declared on the models, so no application-level
// locking is needed.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// translate maps gorm errors onto the storage sentinels. Requires the
// connection to be opened with TranslateError so duplicate-key errors
// surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storage.ErrDuplicate
	default:
		return err
	}
}

// Shops

func (s *Store) GetShop(ctx context.Context, domain string) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.WithContext(ctx).Where("domain = ?", domain).First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (s *Store) SaveShop(ctx context.Context, shop *models.Shop) error {
	return translate(s.db.WithContext(ctx).Save(shop).Error)
}

// Categories

func (s *Store) ListCategories(ctx context.Context, shop string) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Where("shop = ?", shop).
		Order("\"order\" ASC, name ASC").
		Find(&categories).Error
	return categories, translate(err)
}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Create(category).Error)
}

func (s *Store) DeleteCategory(ctx context.Context, shop string, id uint) error {
	res := s.db.WithContext(ctx).Where("shop = ? AND id = ?", shop, id).Delete(&models.Category{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Threads

func (s *Store) ListThreads(ctx context.Context, shop string, f storage.ThreadFilter) ([]models.Thread, error) {
	q := s.db.WithContext(ctx).Where("shop = ?", shop)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var threads []models.Thread
	err := q.Order("pinned DESC, created_at DESC").Find(&threads).Error
	return threads, translate(err)
}

func (s *Store) GetThread(ctx context.Context, shop string, id uint) (*models.Thread, error) {
	var thread models.Thread
	if err := s.db.WithContext(ctx).Where("shop = ? AND id = ?", shop, id).First(&thread).Error; err != nil {
		return nil, translate(err)
	}
	return &thread, nil
}

func (s *Store) CreateThread(ctx context.Context, thread *models.Thread) error {
	return translate(s.db.WithContext(ctx).Create(thread).Error)
}

func (s *Store) updateThread(ctx context.Context, shop string, id uint, column string, value interface{}) error {
	res := s.db.WithContext(ctx).Model(&models.Thread{}).
		Where("shop = ? AND id = ?", shop, id).
		Update(column, value)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) SetThreadStatus(ctx context.Context, shop string, id uint, status string) error {
	return s.updateThread(ctx, shop, id, "status", status)
}

func (s *Store) SetThreadPinned(ctx context.Context, shop string, id uint, pinned bool) error {
	return s.updateThread(ctx, shop, id, "pinned", pinned)
}

func (s *Store) SetThreadClosed(ctx context.Context, shop string, id uint, closed bool) error {
	return s.updateThread(ctx, shop, id, "closed", closed)
}

func (s *Store) IncrementThreadVotes(ctx context.Context, shop string, id uint) error {
	return s.updateThread(ctx, shop, id, "votes", gorm.Expr("votes + 1"))
}

func (s *Store) IncrementThreadComments(ctx context.Context, shop string, id uint) error {
	return s.updateThread(ctx, shop, id, "comment_count", gorm.Expr("comment_count + 1"))
}

// Comments

func (s *Store) ListComments(ctx context.Context, shop string, f storage.CommentFilter) ([]models.Comment, error) {
	q := s.db.WithContext(ctx).Where("shop = ?", shop)
	if f.ThreadID != nil {
		q = q.Where("thread_id = ?", *f.ThreadID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var comments []models.Comment
	err := q.Order("created_at ASC").Find(&comments).Error
	return comments, translate(err)
}

func (s *Store) GetComment(ctx context.Context, shop string, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).Where("shop = ? AND id = ?", shop, id).First(&comment).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	return translate(s.db.WithContext(ctx).Create(comment).Error)
}

func (s *Store) MarkCommentApproved(ctx context.Context, shop string, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("shop = ? AND id = ? AND status <> ?", shop, id, models.StatusApproved).
		Update("status", models.StatusApproved)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// Nothing changed: either already approved or missing.
	if _, err := s.GetComment(ctx, shop, id); err != nil {
		return false, err
	}
	return false, nil
}

func (s *Store) SetCommentStatus(ctx context.Context, shop string, id uint, status string) error {
	res := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("shop = ? AND id = ?", shop, id).
		Update("status", status)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) IncrementCommentVotes(ctx context.Context, shop string, id uint) error {
	res := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("shop = ? AND id = ?", shop, id).
		UpdateColumn("votes", gorm.Expr("votes + 1"))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Votes

func (s *Store) CreateVote(ctx context.Context, vote *models.Vote) error {
	return translate(s.db.WithContext(ctx).Create(vote).Error)
}

// Reports

func (s *Store) CreateReport(ctx context.Context, report *models.Report) error {
	return translate(s.db.WithContext(ctx).Create(report).Error)
}

func (s *Store) ListReports(ctx context.Context, shop string, status string) ([]models.Report, error) {
	q := s.db.WithContext(ctx).Where("shop = ?", shop)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var reports []models.Report
	err := q.Order("created_at DESC").Find(&reports).Error
	return reports, translate(err)
}

func (s *Store) ResolveReport(ctx context.Context, shop string, id uint, notes string) error {
	res := s.db.WithContext(ctx).Model(&models.Report{}).
		Where("shop = ? AND id = ?", shop, id).
		Updates(map[string]interface{}{"status": models.ReportResolved, "notes": notes})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Polls

func (s *Store) GetPollByThread(ctx context.Context, shop string, threadID uint) (*models.Poll, error) {
	var poll models.Poll
	err := s.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_id ASC")
		}).
		Where("shop = ? AND thread_id = ?", shop, threadID).
		First(&poll).Error
	if err != nil {
		return nil, translate(err)
	}
	return &poll, nil
}

func (s *Store) ListPolls(ctx context.Context, shop string) ([]models.Poll, error) {
	var polls []models.Poll
	err := s.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_id ASC")
		}).
		Where("shop = ?", shop).
		Order("created_at DESC").
		Find(&polls).Error
	return polls, translate(err)
}

func (s *Store) CreatePoll(ctx context.Context, poll *models.Poll) error {
	return translate(s.db.WithContext(ctx).Create(poll).Error)
}

func (s *Store) ClosePoll(ctx context.Context, shop string, pollID uint) error {
	res := s.db.WithContext(ctx).Model(&models.Poll{}).
		Where("shop = ? AND id = ?", shop, pollID).
		Update("status", models.PollClosed)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) IncrementPollOption(ctx context.Context, shop string, pollID uint, optionID int) (bool, error) {
	owned := s.db.Model(&models.Poll{}).Select("id").Where("id = ? AND shop = ?", pollID, shop)
	res := s.db.WithContext(ctx).Model(&models.PollOption{}).
		Where("poll_id IN (?) AND option_id = ?", owned, optionID).
		UpdateColumn("votes", gorm.Expr("votes + 1"))
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) CreatePollVoter(ctx context.Context, voter *models.PollVoter) error {
	return translate(s.db.WithContext(ctx).Create(voter).Error)
}

// Dashboard

func (s *Store) Counts(ctx context.Context, shop string) (storage.DashboardCounts, error) {
	var counts storage.DashboardCounts
	db := s.db.WithContext(ctx)

	type countQuery struct {
		model  interface{}
		status string
		dest   *int64
	}
	queries := []countQuery{
		{&models.Thread{}, models.StatusPending, &counts.PendingThreads},
		{&models.Comment{}, models.StatusPending, &counts.PendingComments},
		{&models.Report{}, models.ReportOpen, &counts.OpenReports},
		{&models.Poll{}, models.PollOpen, &counts.OpenPolls},
	}
	for _, q := range queries {
		if err := db.Model(q.model).Where("shop = ? AND status = ?", shop, q.status).Count(q.dest).Error; err != nil {
			return counts, fmt.Errorf("dashboard counts: %w", err)
		}
	}
	return counts, nil
}
