package menu

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidPrice  = errors.New("price must be a non-negative number")
)

// Store owns the catalog and its mutation rules. Every successful
// mutation is followed by an explicit save through the repository;
// the core stays testable by injecting an in-memory one.
type Store struct {
	repo Repository
	data MenuData
	now  func() time.Time
}

func NewStore(repo Repository) *Store {
	return &Store{
		repo: repo,
		data: SeedMenu(),
		now:  time.Now,
	}
}

// --------------------------------------------------
// Load (seed fallback)
// --------------------------------------------------

// Load restores the last persisted catalog. A missing record or an
// unparsable blob falls back to the built-in seed; the failure is
// logged, never surfaced to the visitor.
func (s *Store) Load(ctx context.Context) {
	data, err := s.repo.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		s.data = SeedMenu()
		return
	}
	if err != nil {
		log.Printf("menu: failed to load saved catalog, using seed: %v", err)
		s.data = SeedMenu()
		return
	}
	s.data = data
}

// Data returns a snapshot of the current catalog.
func (s *Store) Data() MenuData {
	return s.data.Clone()
}

// ItemByID resolves an item against the live catalog.
func (s *Store) ItemByID(id string) (MenuItem, bool) {
	return s.data.ItemByID(id)
}

// --------------------------------------------------
// Mutations (admin only, save after each)
// --------------------------------------------------

// AddItem appends a new item with a freshly generated id.
// Name and category must be non-empty and price non-negative.
func (s *Store) AddItem(ctx context.Context, name string, price float64, category string) (MenuItem, error) {
	if name == "" || category == "" {
		return MenuItem{}, ErrMissingFields
	}
	if price < 0 {
		return MenuItem{}, ErrInvalidPrice
	}

	item := MenuItem{
		ID:       s.nextID(),
		Name:     name,
		Price:    price,
		Category: category,
	}

	// mutate a copy first; a failed save must leave the live
	// catalog exactly as it was
	next := s.data.Clone()
	next.Items = append(next.Items, item)

	if err := s.repo.Save(ctx, next); err != nil {
		return MenuItem{}, err
	}
	s.data = next
	return item, nil
}

// RemoveItem deletes the matching item. Removing an absent id is a
// no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, id string) error {
	next := s.data.Clone()
	filtered := next.Items[:0:0]
	for _, item := range next.Items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	next.Items = filtered

	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// Replace swaps in a whole new catalog (import confirmation path).
func (s *Store) Replace(ctx context.Context, data MenuData) error {
	if len(data.Categories) == 0 {
		return errors.New("catalog has no categories")
	}

	next := data.Clone()
	if err := s.repo.Save(ctx, next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// nextID derives an id from the wall clock in milliseconds, bumping
// past collisions. Unique in practice at human interaction rates.
func (s *Store) nextID() string {
	ms := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if _, exists := s.data.ItemByID(id); !exists {
			return id
		}
		ms++
	}
}
