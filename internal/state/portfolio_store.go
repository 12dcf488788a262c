package state

import (
	"sync"

	"go-cvbuilder-backend/internal/domain"
)

type PortfolioStore struct {
	mu         sync.RWMutex
	portfolios []domain.Portfolio
	currentID  string
	now        func() string
}

func NewPortfolioStore() *PortfolioStore {
	return &PortfolioStore{now: domain.NowISO}
}

// Load bulk-replaces the collection; the current pointer is untouched.
func (s *PortfolioStore) Load(portfolios []domain.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolios = clonePortfolios(portfolios)
}

func (s *PortfolioStore) All() []domain.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePortfolios(s.portfolios)
}

func (s *PortfolioStore) Get(id string) (domain.Portfolio, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.portfolios {
		if s.portfolios[i].ID == id {
			return clonePortfolio(s.portfolios[i]), true
		}
	}
	return domain.Portfolio{}, false
}

func (s *PortfolioStore) Create(portfolio domain.Portfolio) domain.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolios = append(s.portfolios, clonePortfolio(portfolio))
	s.currentID = portfolio.ID
	return portfolio
}

func (s *PortfolioStore) Update(portfolio domain.Portfolio) (domain.Portfolio, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolios {
		if s.portfolios[i].ID == portfolio.ID {
			next := clonePortfolio(portfolio)
			next.UpdatedAt = s.now()
			s.portfolios[i] = next
			return clonePortfolio(next), true
		}
	}
	return domain.Portfolio{}, false
}

func (s *PortfolioStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.portfolios[:0]
	for i := range s.portfolios {
		if s.portfolios[i].ID != id {
			kept = append(kept, s.portfolios[i])
		}
	}
	s.portfolios = kept
	if s.currentID == id {
		s.currentID = ""
	}
}

func (s *PortfolioStore) SetCurrent(id string) (domain.Portfolio, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolios {
		if s.portfolios[i].ID == id {
			s.currentID = id
			return clonePortfolio(s.portfolios[i]), true
		}
	}
	s.currentID = ""
	return domain.Portfolio{}, false
}

func (s *PortfolioStore) Current() (domain.Portfolio, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.portfolios {
		if s.portfolios[i].ID == s.currentID && s.currentID != "" {
			return clonePortfolio(s.portfolios[i]), true
		}
	}
	return domain.Portfolio{}, false
}

func (s *PortfolioStore) AddItem(item domain.PortfolioItem) (domain.Portfolio, bool) {
	return s.mutateCurrent(func(p *domain.Portfolio) bool {
		p.Items = append(p.Items, cloneItem(item))
		return true
	})
}

func (s *PortfolioStore) UpdateItem(item domain.PortfolioItem) (domain.Portfolio, bool) {
	return s.mutateCurrent(func(p *domain.Portfolio) bool {
		for i := range p.Items {
			if p.Items[i].ID == item.ID {
				p.Items[i] = cloneItem(item)
				p.Items[i].UpdatedAt = s.now()
				return true
			}
		}
		return false
	})
}

func (s *PortfolioStore) DeleteItem(id string) (domain.Portfolio, bool) {
	return s.mutateCurrent(func(p *domain.Portfolio) bool {
		for i := range p.Items {
			if p.Items[i].ID == id {
				p.Items = append(p.Items[:i:i], p.Items[i+1:]...)
				return true
			}
		}
		return false
	})
}

// SetItemImage attaches an image reference to an item of the current
// portfolio. The item keeps only the URI, never the image bytes.
func (s *PortfolioStore) SetItemImage(itemID, imageURI string) (domain.Portfolio, bool) {
	return s.mutateCurrent(func(p *domain.Portfolio) bool {
		for i := range p.Items {
			if p.Items[i].ID == itemID {
				p.Items[i].ImageURI = imageURI
				p.Items[i].UpdatedAt = s.now()
				return true
			}
		}
		return false
	})
}

func (s *PortfolioStore) mutateCurrent(fn func(p *domain.Portfolio) bool) (domain.Portfolio, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentID == "" {
		return domain.Portfolio{}, false
	}
	for i := range s.portfolios {
		if s.portfolios[i].ID == s.currentID {
			if fn(&s.portfolios[i]) {
				s.portfolios[i].UpdatedAt = s.now()
			}
			return clonePortfolio(s.portfolios[i]), true
		}
	}
	return domain.Portfolio{}, false
}

func cloneItem(item domain.PortfolioItem) domain.PortfolioItem {
	out := item
	out.Tags = append([]string(nil), item.Tags...)
	return out
}

func clonePortfolio(p domain.Portfolio) domain.Portfolio {
	out := p
	out.Items = make([]domain.PortfolioItem, len(p.Items))
	for i := range p.Items {
		out.Items[i] = cloneItem(p.Items[i])
	}
	return out
}

func clonePortfolios(ps []domain.Portfolio) []domain.Portfolio {
	out := make([]domain.Portfolio, len(ps))
	for i := range ps {
		out[i] = clonePortfolio(ps[i])
	}
	return out
}
