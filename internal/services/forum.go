package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/apperrors"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/sanitize"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage"
)

// ThreadListCap bounds storefront thread listings.
const ThreadListCap = 100

// Status messages returned to the widget.
const (
	MsgPosted    = "Posted"
	MsgForReview = "Submitted for review"
)

// ForumService is the storefront mutation surface: everything a signed
// widget request may do. Moderator actions live in ModerationService;
// both act on the same store.
type ForumService struct {
	store    storage.Storage
	settings *SettingsService
	logger   *zap.Logger
}

func NewForumService(store storage.Storage, settings *SettingsService, logger *zap.Logger) *ForumService {
	return &ForumService{store: store, settings: settings, logger: logger}
}

// AuthorInput is the identity shape shared by threads and comments.
type AuthorInput struct {
	CustomerID  string
	AuthorName  string
	IsAnonymous bool
}

type ThreadInput struct {
	Title      string
	Body       string
	CategoryID *uint
	Tags       []string
	Author     AuthorInput
}

type CommentInput struct {
	ThreadID uint
	Body     string
	ParentID *uint
	Author   AuthorInput
}

type VoteInput struct {
	TargetType  string
	TargetID    uint
	CustomerID  string
	Fingerprint string
}

type ReportInput struct {
	TargetType string
	TargetID   uint
	Reason     string
	ReporterID string
}

// CreateResult reports a successful content mutation back to the widget.
type CreateResult struct {
	ID      uint
	Status  string
	Message string
}

func (s *ForumService) ListCategories(ctx context.Context, shop string) ([]models.Category, error) {
	return s.store.ListCategories(ctx, shop)
}

// ListThreads returns approved threads only, pinned first then newest,
// capped. Pending and rejected content never reaches the storefront.
func (s *ForumService) ListThreads(ctx context.Context, shop string, categoryID *uint) ([]models.Thread, error) {
	return s.store.ListThreads(ctx, shop, storage.ThreadFilter{
		CategoryID: categoryID,
		Status:     models.StatusApproved,
		Limit:      ThreadListCap,
	})
}

func (s *ForumService) CreateThread(ctx context.Context, shop string, in ThreadInput) (*CreateResult, error) {
	title := sanitize.Truncate(sanitize.Strip(in.Title), models.MaxTitleLen)
	if title == "" {
		return nil, apperrors.Validationf("Title is required")
	}

	settings, err := s.settings.Get(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if in.Author.IsAnonymous && !settings.AllowAnonymous {
		return nil, apperrors.ErrAnonymousOff
	}

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		tag = sanitize.Truncate(sanitize.Strip(tag), models.MaxTagLen)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == models.MaxTags {
			break
		}
	}

	status := models.StatusPending
	if settings.AutoApprove {
		status = models.StatusApproved
	}

	thread := &models.Thread{
		Shop:        shop,
		CategoryID:  in.CategoryID,
		Title:       title,
		Body:        sanitize.Strip(in.Body),
		Tags:        tags,
		CustomerID:  in.Author.CustomerID,
		AuthorName:  sanitize.Truncate(sanitize.Strip(in.Author.AuthorName), 100),
		IsAnonymous: in.Author.IsAnonymous,
		Status:      status,
	}
	if err := s.store.CreateThread(ctx, thread); err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}

	s.logger.Info("thread created",
		zap.String("shop", shop),
		zap.Uint("thread_id", thread.ID),
		zap.String("status", status),
	)
	return &CreateResult{ID: thread.ID, Status: status, Message: statusMessage(status)}, nil
}

// ListComments returns approved comments for a thread, oldest first.
func (s *ForumService) ListComments(ctx context.Context, shop string, threadID uint) ([]models.Comment, error) {
	return s.store.ListComments(ctx, shop, storage.CommentFilter{
		ThreadID: &threadID,
		Status:   models.StatusApproved,
	})
}

func (s *ForumService) CreateComment(ctx context.Context, shop string, in CommentInput) (*CreateResult, error) {
	if in.ThreadID == 0 {
		return nil, apperrors.Validationf("Thread is required")
	}
	body := sanitize.Strip(in.Body)
	if body == "" {
		return nil, apperrors.Validationf("Comment body is required")
	}

	thread, err := s.store.GetThread(ctx, shop, in.ThreadID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load thread: %w", err)
	}
	if thread.Closed {
		return nil, apperrors.ErrThreadClosed
	}

	settings, err := s.settings.Get(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if in.Author.IsAnonymous && !settings.AllowAnonymous {
		return nil, apperrors.ErrAnonymousOff
	}

	status := models.StatusPending
	if settings.AutoApprove {
		status = models.StatusApproved
	}

	comment := &models.Comment{
		Shop:        shop,
		ThreadID:    in.ThreadID,
		ParentID:    in.ParentID,
		Body:        body,
		CustomerID:  in.Author.CustomerID,
		AuthorName:  sanitize.Truncate(sanitize.Strip(in.Author.AuthorName), 100),
		IsAnonymous: in.Author.IsAnonymous,
		Status:      status,
	}
	if err := s.store.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	// Auto-approved comments count immediately; pending ones are
	// counted once, on moderator approval.
	if status == models.StatusApproved {
		if err := s.store.IncrementThreadComments(ctx, shop, in.ThreadID); err != nil {
			s.logger.Error("comment counter increment failed",
				zap.String("shop", shop),
				zap.Uint("thread_id", in.ThreadID),
				zap.Error(err),
			)
		}
	}

	return &CreateResult{ID: comment.ID, Status: status, Message: statusMessage(status)}, nil
}

// CastVote records one upvote per identity per target. A repeat vote is
// a normal outcome (apperrors.ErrAlreadyVoted), not a server fault, and
// leaves the counter untouched.
func (s *ForumService) CastVote(ctx context.Context, shop string, in VoteInput) error {
	if in.TargetType != models.TargetThread && in.TargetType != models.TargetComment {
		return apperrors.Validationf("Invalid target type")
	}
	if in.TargetID == 0 {
		return apperrors.Validationf("Target is required")
	}
	if in.CustomerID == "" && in.Fingerprint == "" {
		return apperrors.Validationf("Voter identity is required")
	}

	// Resolve the target before writing anything.
	switch in.TargetType {
	case models.TargetThread:
		thread, err := s.store.GetThread(ctx, shop, in.TargetID)
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("load thread: %w", err)
		}
		if thread.Closed {
			return apperrors.ErrThreadClosed
		}
	case models.TargetComment:
		if _, err := s.store.GetComment(ctx, shop, in.TargetID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("load comment: %w", err)
		}
	}

	vote := &models.Vote{
		Shop:        shop,
		TargetType:  in.TargetType,
		TargetID:    in.TargetID,
		CustomerID:  in.CustomerID,
		Fingerprint: in.Fingerprint,
		Value:       1,
	}
	// The conditional insert is the dedup check: the unique index
	// rejects a second vote atomically, no pre-read involved.
	if err := s.store.CreateVote(ctx, vote); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return apperrors.ErrAlreadyVoted
		}
		return fmt.Errorf("create vote: %w", err)
	}

	var err error
	if in.TargetType == models.TargetThread {
		err = s.store.IncrementThreadVotes(ctx, shop, in.TargetID)
	} else {
		err = s.store.IncrementCommentVotes(ctx, shop, in.TargetID)
	}
	if err != nil {
		return fmt.Errorf("vote counter increment: %w", err)
	}
	return nil
}

func (s *ForumService) FileReport(ctx context.Context, shop string, in ReportInput) error {
	if in.TargetType != models.TargetThread && in.TargetType != models.TargetComment {
		return apperrors.Validationf("Invalid target type")
	}
	if in.TargetID == 0 {
		return apperrors.Validationf("Target is required")
	}
	reason := sanitize.Truncate(sanitize.Strip(in.Reason), 500)
	if reason == "" {
		return apperrors.Validationf("Reason is required")
	}

	report := &models.Report{
		Shop:       shop,
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		Reason:     reason,
		ReporterID: in.ReporterID,
		Status:     models.ReportOpen,
	}
	if err := s.store.CreateReport(ctx, report); err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	s.logger.Info("report filed",
		zap.String("shop", shop),
		zap.String("target_type", in.TargetType),
		zap.Uint("target_id", in.TargetID),
	)
	return nil
}

func statusMessage(status string) string {
	if status == models.StatusApproved {
		return MsgPosted
	}
	return MsgForReview
}
