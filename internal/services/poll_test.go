package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/apperrors"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage/inmemory"
)

func newPollService(t *testing.T) (*PollService, *inmemory.Store) {
	t.Helper()
	store := inmemory.New()
	return NewPollService(store, zap.NewNop()), store
}

func seedPoll(t *testing.T, svc *PollService, store *inmemory.Store) *models.Poll {
	t.Helper()
	thread := seedApprovedThread(t, store)
	poll, err := svc.CreatePoll(context.Background(), testShop, thread.ID, "Favorite color?", "Red\nGreen\nBlue")
	require.NoError(t, err)
	return poll
}

func TestParsePollOptions(t *testing.T) {
	options := ParsePollOptions("Red\n\n  Green <b>bold</b>  \nBlue\n")
	require.Len(t, options, 3)

	assert.Equal(t, 1, options[0].OptionID)
	assert.Equal(t, "Red", options[0].Text)
	assert.Equal(t, 2, options[1].OptionID)
	assert.Equal(t, "Green bold", options[1].Text)
	assert.Equal(t, 3, options[2].OptionID)
	assert.Equal(t, "Blue", options[2].Text)

	assert.Empty(t, ParsePollOptions("\n\n  \n"))
}

func TestCreatePoll_Validation(t *testing.T) {
	svc, store := newPollService(t)
	ctx := context.Background()
	thread := seedApprovedThread(t, store)

	_, err := svc.CreatePoll(ctx, testShop, thread.ID, "", "A\nB")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreatePoll(ctx, testShop, thread.ID, "Q?", "Only one")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.CreatePoll(ctx, testShop, 9999, "Q?", "A\nB")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVoteInPoll_TalliesChosenOption(t *testing.T) {
	svc, store := newPollService(t)
	ctx := context.Background()
	poll := seedPoll(t, svc, store)

	require.NoError(t, svc.VoteInPoll(ctx, testShop, poll.ThreadID, 2, "C1"))

	got, err := svc.GetPoll(ctx, testShop, poll.ThreadID)
	require.NoError(t, err)
	require.NotNil(t, got)
	for _, opt := range got.Options {
		if opt.OptionID == 2 {
			assert.Equal(t, 1, opt.Votes)
		} else {
			assert.Equal(t, 0, opt.Votes)
		}
	}
}

func TestVoteInPoll_DuplicateVoter(t *testing.T) {
	svc, store := newPollService(t)
	ctx := context.Background()
	poll := seedPoll(t, svc, store)

	require.NoError(t, svc.VoteInPoll(ctx, testShop, poll.ThreadID, 1, "C1"))

	err := svc.VoteInPoll(ctx, testShop, poll.ThreadID, 3, "C1")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyVoted)

	got, err := svc.GetPoll(ctx, testShop, poll.ThreadID)
	require.NoError(t, err)
	total := 0
	for _, opt := range got.Options {
		total += opt.Votes
	}
	assert.Equal(t, 1, total, "rejected ballot must not move any counter")
}

func TestVoteInPoll_InvalidOption(t *testing.T) {
	svc, store := newPollService(t)
	ctx := context.Background()
	poll := seedPoll(t, svc, store)

	err := svc.VoteInPoll(ctx, testShop, poll.ThreadID, 7, "C1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidOption)
}

func TestVoteInPoll_ClosedOrAbsent(t *testing.T) {
	svc, store := newPollService(t)
	ctx := context.Background()
	poll := seedPoll(t, svc, store)

	require.NoError(t, svc.ClosePoll(ctx, testShop, poll.ID))
	err := svc.VoteInPoll(ctx, testShop, poll.ThreadID, 1, "C1")
	assert.ErrorIs(t, err, apperrors.ErrPollClosed)

	// Thread without a poll reads the same as a closed one.
	err = svc.VoteInPoll(ctx, testShop, 9999, 1, "C1")
	assert.ErrorIs(t, err, apperrors.ErrPollClosed)
}

func TestVoteInPoll_VoterKeyRequired(t *testing.T) {
	svc, store := newPollService(t)
	poll := seedPoll(t, svc, store)

	err := svc.VoteInPoll(context.Background(), testShop, poll.ThreadID, 1, "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetPoll_AbsentIsNil(t *testing.T) {
	svc, _ := newPollService(t)

	poll, err := svc.GetPoll(context.Background(), testShop, 42)
	require.NoError(t, err)
	assert.Nil(t, poll)
}
