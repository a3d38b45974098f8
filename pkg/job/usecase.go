package job

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// UseCase отвечает за чтение вакансий и начальное заполнение таблицы.
type UseCase interface {
	ListActive(ctx context.Context) ([]Offer, error)
	GetByID(ctx context.Context, id int64) (Offer, error)
	Bootstrap(ctx context.Context) (inserted int, err error)
}

type service struct {
	repo  Repository
	cache Cache
}

// NewService wires the read use case. cache may be nil.
func NewService(repo Repository, cache Cache) UseCase {
	return &service{repo: repo, cache: cache}
}

func (s *service) ListActive(ctx context.Context) ([]Offer, error) {
	if s.cache != nil {
		if offers, ok := s.cache.GetActive(ctx); ok {
			return activeOnly(offers), nil
		}
	}
	offers, err := s.repo.ListActive(ctx)
	if err != nil {
		log.Printf("[jobs] list from db failed, serving fallback offers: %v", err)
		return FallbackOffers(), nil
	}
	offers = activeOnly(offers)
	if s.cache != nil {
		s.cache.SetActive(ctx, offers)
	}
	return offers, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (Offer, error) {
	o, err := s.repo.GetActive(ctx, id)
	switch {
	case err == nil:
		if !o.IsActive {
			return Offer{}, ErrNotFound
		}
		return o, nil
	case errors.Is(err, ErrNotFound):
		return Offer{}, ErrNotFound
	}
	log.Printf("[jobs] get %d from db failed, searching fallback offers: %v", id, err)
	for _, f := range FallbackOffers() {
		if f.ID == id {
			return f, nil
		}
	}
	return Offer{}, ErrNotFound
}

// Bootstrap creates the schema and seeds sample offers into an empty table.
// Rows are inserted one by one; a failed insert is logged and skipped.
func (s *service) Bootstrap(ctx context.Context) (int, error) {
	if err := s.repo.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("ensure schema: %w", err)
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count offers: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	inserted := 0
	for _, o := range SampleOffers() {
		if _, err := s.repo.Insert(ctx, o); err != nil {
			log.Printf("[jobs] seed insert %q failed: %v", o.Title, err)
			continue
		}
		inserted++
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if inserted == 0 {
		return 0, errors.New("no sample offers inserted")
	}
	return inserted, nil
}

func activeOnly(offers []Offer) []Offer {
	out := make([]Offer, 0, len(offers))
	for _, o := range offers {
		if o.IsActive {
			out = append(out, o)
		}
	}
	return out
}
