package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/apperrors"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/sanitize"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage"
)

// PollService owns the per-thread poll lifecycle and tabulation. One
// poll per thread; ballots are accepted only while the poll is open,
// and each voter key gets exactly one ballot.
type PollService struct {
	store  storage.Storage
	logger *zap.Logger
}

func NewPollService(store storage.Storage, logger *zap.Logger) *PollService {
	return &PollService{store: store, logger: logger}
}

// GetPoll returns the poll for a thread, or nil when the thread has none.
func (s *PollService) GetPoll(ctx context.Context, shop string, threadID uint) (*models.Poll, error) {
	poll, err := s.store.GetPollByThread(ctx, shop, threadID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load poll: %w", err)
	}
	return poll, nil
}

// VoteInPoll accepts one ballot for one option. An absent or closed
// poll reads as "poll closed"; an unknown option id as "invalid
// option"; a repeat ballot from the same voter key as "already voted".
// Option counters only move after the ballot is recorded.
func (s *PollService) VoteInPoll(ctx context.Context, shop string, threadID uint, optionID int, voterKey string) error {
	if voterKey == "" {
		return apperrors.Validationf("Voter identity is required")
	}

	poll, err := s.store.GetPollByThread(ctx, shop, threadID)
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.ErrPollClosed
	}
	if err != nil {
		return fmt.Errorf("load poll: %w", err)
	}
	if poll.Status != models.PollOpen {
		return apperrors.ErrPollClosed
	}

	valid := false
	for _, opt := range poll.Options {
		if opt.OptionID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return apperrors.ErrInvalidOption
	}

	voter := &models.PollVoter{
		Shop:     shop,
		PollID:   poll.ID,
		VoterKey: voterKey,
		Options:  []int{optionID},
	}
	if err := s.store.CreatePollVoter(ctx, voter); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return apperrors.ErrAlreadyVoted
		}
		return fmt.Errorf("record ballot: %w", err)
	}

	// Targeted increment keyed by option id, never a rewrite of the
	// whole option set.
	ok, err := s.store.IncrementPollOption(ctx, shop, poll.ID, optionID)
	if err != nil {
		return fmt.Errorf("option counter increment: %w", err)
	}
	if !ok {
		return apperrors.ErrInvalidOption
	}
	return nil
}

// CreatePoll builds a poll from freeform newline-delimited option text:
// split, trim, drop blanks, assign sequential ids from 1.
func (s *PollService) CreatePoll(ctx context.Context, shop string, threadID uint, question, optionsText string) (*models.Poll, error) {
	question = sanitize.Truncate(sanitize.Strip(question), 300)
	if question == "" {
		return nil, apperrors.Validationf("Question is required")
	}
	if threadID == 0 {
		return nil, apperrors.Validationf("Thread is required")
	}
	if _, err := s.store.GetThread(ctx, shop, threadID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("load thread: %w", err)
	}

	options := ParsePollOptions(optionsText)
	if len(options) < 2 {
		return nil, apperrors.Validationf("At least two options are required")
	}

	poll := &models.Poll{
		Shop:     shop,
		ThreadID: threadID,
		Question: question,
		Status:   models.PollOpen,
		Options:  options,
	}
	if err := s.store.CreatePoll(ctx, poll); err != nil {
		return nil, fmt.Errorf("create poll: %w", err)
	}

	s.logger.Info("poll created",
		zap.String("shop", shop),
		zap.Uint("thread_id", threadID),
		zap.Int("options", len(options)),
	)
	return poll, nil
}

// ClosePoll is one-way; there is no reopen.
func (s *PollService) ClosePoll(ctx context.Context, shop string, pollID uint) error {
	if err := s.store.ClosePoll(ctx, shop, pollID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("close poll: %w", err)
	}
	return nil
}

func (s *PollService) ListPolls(ctx context.Context, shop string) ([]models.Poll, error) {
	return s.store.ListPolls(ctx, shop)
}

// ParsePollOptions turns newline-delimited text into ordered options
// with sequential ids starting at 1. Blank lines are dropped.
func ParsePollOptions(text string) []models.PollOption {
	lines := strings.Split(text, "\n")
	options := make([]models.PollOption, 0, len(lines))
	for _, line := range lines {
		line = sanitize.Truncate(sanitize.Strip(line), 200)
		if line == "" {
			continue
		}
		options = append(options, models.PollOption{
			OptionID: len(options) + 1,
			Text:     line,
		})
	}
	return options
}
