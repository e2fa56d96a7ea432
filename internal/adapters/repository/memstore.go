package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atlasbio/atlas/internal/domain/types"
)

// Default store configuration constants.
const (
	// DefaultDescription backfills a company created without one.
	DefaultDescription = "Company description will be populated here."

	// DefaultCompanyType backfills a company created without one.
	DefaultCompanyType = "Unknown"
)

// MemStore is an ordered in-memory Store. A single mutex is the only
// mutual-exclusion boundary; every mutation happens under it so writers
// never interleave.
type MemStore struct {
	mu        sync.RWMutex
	companies []types.Company
	now       func() time.Time
}

// NewMemStore creates an empty in-memory company store.
func NewMemStore(opts ...MemOption) *MemStore {
	s := &MemStore{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a copy of all companies in insertion order.
func (s *MemStore) List(ctx context.Context) []types.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Company, len(s.companies))
	copy(out, s.companies)
	return out
}

// Get returns the company with the given id.
func (s *MemStore) Get(ctx context.Context, id string) (types.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return types.Company{}, ErrNotFound
}

// Create adds a new company, enforcing ticker uniqueness against the
// uppercased form.
func (s *MemStore) Create(ctx context.Context, in types.CompanyInput) (types.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticker := strings.ToUpper(in.Ticker)
	for _, c := range s.companies {
		if c.Ticker == ticker {
			return types.Company{}, ErrDuplicateTicker
		}
	}

	now := s.now()
	company := types.Company{
		ID:          fmt.Sprintf("%s-%d", ticker, now.UnixNano()),
		Name:        in.Name,
		Ticker:      ticker,
		Description: in.Description,
		CompanyType: in.CompanyType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if company.Description == "" {
		company.Description = DefaultDescription
	}
	if company.CompanyType == "" {
		company.CompanyType = DefaultCompanyType
	}

	s.companies = append(s.companies, company)
	return company, nil
}

// Update applies the supplied fields in place and refreshes updated_at.
func (s *MemStore) Update(ctx context.Context, id string, upd types.CompanyUpdate) (types.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.companies {
		if s.companies[i].ID != id {
			continue
		}
		c := &s.companies[i]
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Ticker != nil {
			c.Ticker = strings.ToUpper(*upd.Ticker)
		}
		if upd.Description != nil {
			c.Description = *upd.Description
		}
		if upd.CompanyType != nil {
			c.CompanyType = *upd.CompanyType
		}
		c.UpdatedAt = s.now()
		return *c, nil
	}
	return types.Company{}, ErrNotFound
}

// Delete removes the company with the given id and returns it.
func (s *MemStore) Delete(ctx context.Context, id string) (types.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.companies {
		if c.ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			return c, nil
		}
	}
	return types.Company{}, ErrNotFound
}

// Clear removes every record and returns the number removed.
func (s *MemStore) Clear(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.companies)
	s.companies = nil
	return n
}

// Count returns the number of live records.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies)
}
