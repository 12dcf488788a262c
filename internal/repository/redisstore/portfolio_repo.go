package redisstore

import (
	"context"
	"encoding/json"
	"errors"

	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/pkg/logger"
)

type portfolioRepo struct {
	kv KV
}

func NewPortfolioRepository(kv KV) domain.PortfolioRepository {
	return &portfolioRepo{kv: kv}
}

func (r *portfolioRepo) LoadAll(ctx context.Context) ([]domain.Portfolio, error) {
	raw, err := r.kv.Get(ctx, portfolioKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []domain.Portfolio{}, nil
	}
	if err != nil {
		return nil, err
	}

	var portfolios []domain.Portfolio
	if err := json.Unmarshal([]byte(raw), &portfolios); err != nil {
		logger.Log.Error("Corrupt portfolio collection, treating as empty", "key", portfolioKey, "error", err)
		return []domain.Portfolio{}, nil
	}
	return portfolios, nil
}

func (r *portfolioRepo) SaveAll(ctx context.Context, portfolios []domain.Portfolio) error {
	if portfolios == nil {
		portfolios = []domain.Portfolio{}
	}
	data, err := json.Marshal(portfolios)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, portfolioKey, string(data))
}

func (r *portfolioRepo) Save(ctx context.Context, portfolio domain.Portfolio) error {
	portfolios, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range portfolios {
		if portfolios[i].ID == portfolio.ID {
			portfolios[i] = portfolio
			replaced = true
			break
		}
	}
	if !replaced {
		portfolios = append(portfolios, portfolio)
	}
	return r.SaveAll(ctx, portfolios)
}

func (r *portfolioRepo) Delete(ctx context.Context, id string) error {
	portfolios, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	kept := portfolios[:0]
	for i := range portfolios {
		if portfolios[i].ID != id {
			kept = append(kept, portfolios[i])
		}
	}
	return r.SaveAll(ctx, kept)
}

type maintenanceRepo struct {
	kv KV
}

func NewMaintenanceRepository(kv KV) domain.MaintenanceRepository {
	return &maintenanceRepo{kv: kv}
}

// ClearAll removes both collection keys.
func (r *maintenanceRepo) ClearAll(ctx context.Context) error {
	return r.kv.Del(ctx, cvKey, portfolioKey)
}
