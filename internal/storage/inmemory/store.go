package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/models"
	"github.com/Mridularora123/shopsphere-community-sub000/internal/storage"
)

// Store is a mutex-guarded in-memory implementation of storage.Storage.
// It backs the test suite and keeps the same observable semantics as the
// postgres store: atomic counters, uniqueness violations as
// storage.ErrDuplicate, missing rows as storage.ErrNotFound.
type Store struct {
	mu sync.Mutex

	shops      map[string]*models.Shop
	categories map[uint]*models.Category
	threads    map[uint]*models.Thread
	comments   map[uint]*models.Comment
	votes      map[uint]*models.Vote
	reports    map[uint]*models.Report
	polls      map[uint]*models.Poll
	pollVoters map[uint]*models.PollVoter

	nextID uint
}

func New() *Store {
	return &Store{
		shops:      make(map[string]*models.Shop),
		categories: make(map[uint]*models.Category),
		threads:    make(map[uint]*models.Thread),
		comments:   make(map[uint]*models.Comment),
		votes:      make(map[uint]*models.Vote),
		reports:    make(map[uint]*models.Report),
		polls:      make(map[uint]*models.Poll),
		pollVoters: make(map[uint]*models.PollVoter),
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// Shops

func (s *Store) GetShop(_ context.Context, domain string) (*models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shop, ok := s.shops[domain]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *shop
	return &cp, nil
}

func (s *Store) SaveShop(_ context.Context, shop *models.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if shop.ID == 0 {
		shop.ID = s.id()
	}
	cp := *shop
	s.shops[shop.Domain] = &cp
	return nil
}

// Categories

func (s *Store) ListCategories(_ context.Context, shop string) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Category
	for _, c := range s.categories {
		if c.Shop == shop {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) CreateCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	category.ID = s.id()
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *Store) DeleteCategory(_ context.Context, shop string, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok || c.Shop != shop {
		return storage.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

// Threads

func (s *Store) ListThreads(_ context.Context, shop string, f storage.ThreadFilter) ([]models.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Thread
	for _, t := range s.threads {
		if t.Shop != shop {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *f.CategoryID) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Store) GetThread(_ context.Context, shop string, id uint) (*models.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.threads[id]
	if !ok || t.Shop != shop {
		return nil, storage.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *Store) CreateThread(_ context.Context, thread *models.Thread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	thread.ID = s.id()
	cp := *thread
	s.threads[thread.ID] = &cp
	return nil
}

func (s *Store) mutateThread(shop string, id uint, fn func(*models.Thread)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.threads[id]
	if !ok || t.Shop != shop {
		return storage.ErrNotFound
	}
	fn(t)
	return nil
}

func (s *Store) SetThreadStatus(_ context.Context, shop string, id uint, status string) error {
	return s.mutateThread(shop, id, func(t *models.Thread) { t.Status = status })
}

func (s *Store) SetThreadPinned(_ context.Context, shop string, id uint, pinned bool) error {
	return s.mutateThread(shop, id, func(t *models.Thread) { t.Pinned = pinned })
}

func (s *Store) SetThreadClosed(_ context.Context, shop string, id uint, closed bool) error {
	return s.mutateThread(shop, id, func(t *models.Thread) { t.Closed = closed })
}

func (s *Store) IncrementThreadVotes(_ context.Context, shop string, id uint) error {
	return s.mutateThread(shop, id, func(t *models.Thread) { t.Votes++ })
}

func (s *Store) IncrementThreadComments(_ context.Context, shop string, id uint) error {
	return s.mutateThread(shop, id, func(t *models.Thread) { t.CommentCount++ })
}

// Comments

func (s *Store) ListComments(_ context.Context, shop string, f storage.CommentFilter) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Comment
	for _, c := range s.comments {
		if c.Shop != shop {
			continue
		}
		if f.ThreadID != nil && c.ThreadID != *f.ThreadID {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Store) GetComment(_ context.Context, shop string, id uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.Shop != shop {
		return nil, storage.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Store) CreateComment(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment.ID = s.id()
	cp := *comment
	s.comments[comment.ID] = &cp
	return nil
}

func (s *Store) MarkCommentApproved(_ context.Context, shop string, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.Shop != shop {
		return false, storage.ErrNotFound
	}
	if c.Status == models.StatusApproved {
		return false, nil
	}
	c.Status = models.StatusApproved
	return true, nil
}

func (s *Store) SetCommentStatus(_ context.Context, shop string, id uint, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.Shop != shop {
		return storage.ErrNotFound
	}
	c.Status = status
	return nil
}

func (s *Store) IncrementCommentVotes(_ context.Context, shop string, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok || c.Shop != shop {
		return storage.ErrNotFound
	}
	c.Votes++
	return nil
}

// Votes

func (s *Store) CreateVote(_ context.Context, vote *models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.votes {
		if v.Shop == vote.Shop &&
			v.TargetType == vote.TargetType &&
			v.TargetID == vote.TargetID &&
			v.CustomerID == vote.CustomerID &&
			v.Fingerprint == vote.Fingerprint {
			return storage.ErrDuplicate
		}
	}
	vote.ID = s.id()
	cp := *vote
	s.votes[vote.ID] = &cp
	return nil
}

// Reports

func (s *Store) CreateReport(_ context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	report.ID = s.id()
	cp := *report
	s.reports[report.ID] = &cp
	return nil
}

func (s *Store) ListReports(_ context.Context, shop string, status string) ([]models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Report
	for _, r := range s.reports {
		if r.Shop != shop {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) ResolveReport(_ context.Context, shop string, id uint, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok || r.Shop != shop {
		return storage.ErrNotFound
	}
	r.Status = models.ReportResolved
	r.Notes = notes
	return nil
}

// Polls

func (s *Store) copyPoll(p *models.Poll) *models.Poll {
	cp := *p
	cp.Options = make([]models.PollOption, len(p.Options))
	copy(cp.Options, p.Options)
	return &cp
}

func (s *Store) GetPollByThread(_ context.Context, shop string, threadID uint) (*models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.polls {
		if p.Shop == shop && p.ThreadID == threadID {
			return s.copyPoll(p), nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) ListPolls(_ context.Context, shop string) ([]models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Poll
	for _, p := range s.polls {
		if p.Shop == shop {
			out = append(out, *s.copyPoll(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *Store) CreatePoll(_ context.Context, poll *models.Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	poll.ID = s.id()
	for i := range poll.Options {
		poll.Options[i].ID = s.id()
		poll.Options[i].PollID = poll.ID
	}
	s.polls[poll.ID] = s.copyPoll(poll)
	return nil
}

func (s *Store) ClosePoll(_ context.Context, shop string, pollID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.polls[pollID]
	if !ok || p.Shop != shop {
		return storage.ErrNotFound
	}
	p.Status = models.PollClosed
	return nil
}

func (s *Store) IncrementPollOption(_ context.Context, shop string, pollID uint, optionID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.polls[pollID]
	if !ok || p.Shop != shop {
		return false, nil
	}
	for i := range p.Options {
		if p.Options[i].OptionID == optionID {
			p.Options[i].Votes++
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreatePollVoter(_ context.Context, voter *models.PollVoter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.pollVoters {
		if v.PollID == voter.PollID && v.VoterKey == voter.VoterKey {
			return storage.ErrDuplicate
		}
	}
	voter.ID = s.id()
	cp := *voter
	s.pollVoters[voter.ID] = &cp
	return nil
}

// Dashboard

func (s *Store) Counts(_ context.Context, shop string) (storage.DashboardCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var counts storage.DashboardCounts
	for _, t := range s.threads {
		if t.Shop == shop && t.Status == models.StatusPending {
			counts.PendingThreads++
		}
	}
	for _, c := range s.comments {
		if c.Shop == shop && c.Status == models.StatusPending {
			counts.PendingComments++
		}
	}
	for _, r := range s.reports {
		if r.Shop == shop && r.Status == models.ReportOpen {
			counts.OpenReports++
		}
	}
	for _, p := range s.polls {
		if p.Shop == shop && p.Status == models.PollOpen {
			counts.OpenPolls++
		}
	}
	return counts, nil
}
