package storage

import (
	"context"
	"errors"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
)

// Sentinel errors shared by all implementations. Services branch on
// these; everything else is treated as a transient persistence failure.
var (
	ErrNotFound  = errors.New("storage: record not found")
	ErrDuplicate = errors.New("storage: duplicate record")
)

// ThreadFilter narrows ListThreads. Empty Status means any status
// (admin listings); storefront callers always pass approved.
type ThreadFilter struct {
	CategoryID *uint
	Status     string
	Limit      int
}

// CommentFilter narrows ListComments.
type CommentFilter struct {
	ThreadID *uint
	Status   string
	Limit    int
}

// DashboardCounts feeds the admin summary page.
type DashboardCounts struct {
	PendingThreads  int64 `json:"pending_threads"`
	PendingComments int64 `json:"pending_comments"`
	OpenReports     int64 `json:"open_reports"`
	OpenPolls       int64 `json:"open_polls"`
}

// Storage is the Moderation Store. Counter and uniqueness methods are
// atomic in every implementation: there is no read-modify-write across
// round trips, so concurrent requests cannot lose updates.
type Storage interface {
	// Shops
	GetShop(ctx context.Context, domain string) (*models.Shop, error)
	SaveShop(ctx context.Context, shop *models.Shop) error

	// Categories
	ListCategories(ctx context.Context, shop string) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, shop string, id uint) error

	// Threads
	ListThreads(ctx context.Context, shop string, f ThreadFilter) ([]models.Thread, error)
	GetThread(ctx context.Context, shop string, id uint) (*models.Thread, error)
	CreateThread(ctx context.Context, thread *models.Thread) error
	SetThreadStatus(ctx context.Context, shop string, id uint, status string) error
	SetThreadPinned(ctx context.Context, shop string, id uint, pinned bool) error
	SetThreadClosed(ctx context.Context, shop string, id uint, closed bool) error
	IncrementThreadVotes(ctx context.Context, shop string, id uint) error
	IncrementThreadComments(ctx context.Context, shop string, id uint) error

	// Comments
	ListComments(ctx context.Context, shop string, f CommentFilter) ([]models.Comment, error)
	GetComment(ctx context.Context, shop string, id uint) (*models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	// MarkCommentApproved flips a comment to approved and reports
	// whether this call changed anything. The caller increments the
	// thread comment counter only when it did, which is what keeps
	// re-approval from double counting.
	MarkCommentApproved(ctx context.Context, shop string, id uint) (bool, error)
	SetCommentStatus(ctx context.Context, shop string, id uint, status string) error
	IncrementCommentVotes(ctx context.Context, shop string, id uint) error

	// Votes. CreateVote returns ErrDuplicate when the identity already
	// voted on the target; the insert is the dedup check.
	CreateVote(ctx context.Context, vote *models.Vote) error

	// Reports
	CreateReport(ctx context.Context, report *models.Report) error
	ListReports(ctx context.Context, shop string, status string) ([]models.Report, error)
	ResolveReport(ctx context.Context, shop string, id uint, notes string) error

	// Polls
	GetPollByThread(ctx context.Context, shop string, threadID uint) (*models.Poll, error)
	ListPolls(ctx context.Context, shop string) ([]models.Poll, error)
	CreatePoll(ctx context.Context, poll *models.Poll) error
	ClosePoll(ctx context.Context, shop string, pollID uint) error
	// IncrementPollOption bumps one option counter, keyed by the
	// poll-scoped option id. False means the option does not exist.
	IncrementPollOption(ctx context.Context, shop string, pollID uint, optionID int) (bool, error)
	CreatePollVoter(ctx context.Context, voter *models.PollVoter) error

	// Dashboard
	Counts(ctx context.Context, shop string) (DashboardCounts, error)
}
