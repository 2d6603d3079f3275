package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/apperrors"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage/inmemory"
)

func newModeration(t *testing.T) (*ModerationService, *inmemory.Store) {
	t.Helper()
	store := inmemory.New()
	return NewModerationService(store, zap.NewNop()), store
}

func seedPendingComment(t *testing.T, store *inmemory.Store, threadID uint) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Shop:     testShop,
		ThreadID: threadID,
		Body:     "pending",
		Status:   models.StatusPending,
	}
	require.NoError(t, store.CreateComment(context.Background(), comment))
	return comment
}

func TestSetThreadStatus(t *testing.T) {
	svc, store := newModeration(t)
	ctx := context.Background()
	thread := seedApprovedThread(t, store)

	require.NoError(t, svc.SetThreadStatus(ctx, testShop, thread.ID, models.StatusRejected))
	got, err := store.GetThread(ctx, testShop, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)

	// Decisions are reversible.
	require.NoError(t, svc.SetThreadStatus(ctx, testShop, thread.ID, models.StatusApproved))
	got, err = store.GetThread(ctx, testShop, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)

	err = svc.SetThreadStatus(ctx, testShop, thread.ID, "deleted")
	assert.True(t, apperrors.IsValidation(err))

	err = svc.SetThreadStatus(ctx, testShop, 9999, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApproveComment_CountsOnce(t *testing.T) {
	svc, store := newModeration(t)
	ctx := context.Background()
	thread := seedApprovedThread(t, store)
	comment := seedPendingComment(t, store, thread.ID)

	require.NoError(t, svc.ApproveComment(ctx, testShop, comment.ID))
	got, err := store.GetThread(ctx, testShop, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentCount)

	// Second approval is a no-op for the counter.
	require.NoError(t, svc.ApproveComment(ctx, testShop, comment.ID))
	got, err = store.GetThread(ctx, testShop, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentCount)

	err = svc.ApproveComment(ctx, testShop, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRejectComment(t *testing.T) {
	svc, store := newModeration(t)
	ctx := context.Background()
	thread := seedApprovedThread(t, store)
	comment := seedPendingComment(t, store, thread.ID)

	require.NoError(t, svc.RejectComment(ctx, testShop, comment.ID))
	got, err := store.GetComment(ctx, testShop, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
}

func TestModerationListThreads_StatusFilter(t *testing.T) {
	svc, store := newModeration(t)
	ctx := context.Background()

	seedApprovedThread(t, store)
	require.NoError(t, store.CreateThread(ctx, &models.Thread{
		Shop: testShop, Title: "queued", Status: models.StatusPending,
	}))

	pending, err := svc.ListThreads(ctx, testShop, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "queued", pending[0].Title)

	all, err := svc.ListThreads(ctx, testShop, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListThreads(ctx, testShop, "bogus")
	assert.True(t, apperrors.IsValidation(err))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Shipping & Returns", "shipping-returns"},
		{"  FAQ  ", "faq"},
		{"Già Noto", "gi-noto"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestCreateCategory(t *testing.T) {
	svc, _ := newModeration(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, testShop, "Product Talk", "", 1)
	require.NoError(t, err)
	assert.Equal(t, "Product Talk", category.Name)
	assert.Equal(t, "product-talk", category.Slug)

	long, err := svc.CreateCategory(ctx, testShop, strings.Repeat("n", 100), strings.Repeat("s", 120), 2)
	require.NoError(t, err)
	assert.Len(t, long.Name, models.MaxCategoryNameLen)
	assert.Len(t, long.Slug, models.MaxCategorySlugLen)

	_, err = svc.CreateCategory(ctx, testShop, "  ", "", 0)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeleteCategory_ThreadsKeepReference(t *testing.T) {
	svc, store := newModeration(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, testShop, "News", "", 0)
	require.NoError(t, err)

	thread := &models.Thread{
		Shop: testShop, CategoryID: &category.ID, Title: "t", Status: models.StatusApproved,
	}
	require.NoError(t, store.CreateThread(ctx, thread))

	require.NoError(t, svc.DeleteCategory(ctx, testShop, category.ID))

	got, err := store.GetThread(ctx, testShop, thread.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, category.ID, *got.CategoryID)

	err = svc.DeleteCategory(ctx, testShop, category.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestResolveReport(t *testing.T) {
	svc, store := newModeration(t)
	ctx := context.Background()

	report := &models.Report{
		Shop:       testShop,
		TargetType: models.TargetThread,
		TargetID:   1,
		Reason:     "spam",
		Status:     models.ReportOpen,
	}
	require.NoError(t, store.CreateReport(ctx, report))

	require.NoError(t, svc.ResolveReport(ctx, testShop, report.ID, "<b>removed</b> the post"))

	open, err := svc.ListReports(ctx, testShop, models.ReportOpen)
	require.NoError(t, err)
	assert.Empty(t, open)

	resolved, err := svc.ListReports(ctx, testShop, models.ReportResolved)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "removed the post", resolved[0].Notes)
}

func TestDashboardCounts(t *testing.T) {
	svc, store := newModeration(t)
	ctx := context.Background()

	thread := seedApprovedThread(t, store)
	require.NoError(t, store.CreateThread(ctx, &models.Thread{
		Shop: testShop, Title: "p1", Status: models.StatusPending,
	}))
	require.NoError(t, store.CreateThread(ctx, &models.Thread{
		Shop: testShop, Title: "p2", Status: models.StatusPending,
	}))
	seedPendingComment(t, store, thread.ID)
	require.NoError(t, store.CreateReport(ctx, &models.Report{
		Shop: testShop, TargetType: models.TargetThread, TargetID: thread.ID,
		Reason: "r", Status: models.ReportOpen,
	}))
	require.NoError(t, store.CreatePoll(ctx, &models.Poll{
		Shop: testShop, ThreadID: thread.ID, Question: "q", Status: models.PollOpen,
		Options: []models.PollOption{{OptionID: 1, Text: "a"}, {OptionID: 2, Text: "b"}},
	}))

	counts, err := svc.Dashboard(ctx, testShop)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.PendingThreads)
	assert.Equal(t, int64(1), counts.PendingComments)
	assert.Equal(t, int64(1), counts.OpenReports)
	assert.Equal(t, int64(1), counts.OpenPolls)
}
