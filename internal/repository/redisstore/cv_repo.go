package redisstore

import (
	"context"
	"encoding/json"
	"errors"

	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/pkg/logger"
)

type cvRepo struct {
	kv KV
}

func NewCVRepository(kv KV) domain.CVRepository {
	return &cvRepo{kv: kv}
}

// LoadAll returns the persisted CV collection. An absent key or a
// corrupt record degrades to an empty collection with the error logged;
// it never fails the caller.
func (r *cvRepo) LoadAll(ctx context.Context) ([]domain.CV, error) {
	raw, err := r.kv.Get(ctx, cvKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []domain.CV{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cvs []domain.CV
	if err := json.Unmarshal([]byte(raw), &cvs); err != nil {
		logger.Log.Error("Corrupt CV collection, treating as empty", "key", cvKey, "error", err)
		return []domain.CV{}, nil
	}
	return cvs, nil
}

func (r *cvRepo) SaveAll(ctx context.Context, cvs []domain.CV) error {
	if cvs == nil {
		cvs = []domain.CV{}
	}
	data, err := json.Marshal(cvs)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, cvKey, string(data))
}

// Save is read-modify-write: load the full collection, replace-or-append
// by id, save the full collection. Not atomic across concurrent
// writers; last write wins.
func (r *cvRepo) Save(ctx context.Context, cv domain.CV) error {
	cvs, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range cvs {
		if cvs[i].ID == cv.ID {
			cvs[i] = cv
			replaced = true
			break
		}
	}
	if !replaced {
		cvs = append(cvs, cv)
	}
	return r.SaveAll(ctx, cvs)
}

// Delete is load-filter-save. Removing a non-existent id leaves the
// collection unchanged.
func (r *cvRepo) Delete(ctx context.Context, id string) error {
	cvs, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	kept := cvs[:0]
	for i := range cvs {
		if cvs[i].ID != id {
			kept = append(kept, cvs[i])
		}
	}
	return r.SaveAll(ctx, kept)
}
