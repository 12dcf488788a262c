package usecase

import (
	"context"

	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/internal/state"
	"go-cvbuilder-backend/pkg/apperror"
	"go-cvbuilder-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type portfolioUsecase struct {
	store    *state.PortfolioStore
	repo     domain.PortfolioRepository
	validate *validator.Validate
}

func NewPortfolioUsecase(store *state.PortfolioStore, repo domain.PortfolioRepository, validate *validator.Validate) domain.PortfolioUsecase {
	return &portfolioUsecase{
		store:    store,
		repo:     repo,
		validate: validate,
	}
}

func (u *portfolioUsecase) Load(ctx context.Context) ([]domain.Portfolio, error) {
	portfolios, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	u.store.Load(portfolios)
	return portfolios, nil
}

func (u *portfolioUsecase) List(ctx context.Context) []domain.Portfolio {
	return u.store.All()
}

func (u *portfolioUsecase) Get(ctx context.Context, id string) (domain.Portfolio, error) {
	portfolio, ok := u.store.Get(id)
	if !ok {
		return domain.Portfolio{}, apperror.NotFound("Portfolio not found")
	}
	return portfolio, nil
}

func (u *portfolioUsecase) Create(ctx context.Context, name string) (domain.Portfolio, error) {
	if name == "" {
		return domain.Portfolio{}, apperror.BadRequest("Name is required")
	}

	now := domain.NowISO()
	portfolio := domain.Portfolio{
		ID:        uuid.NewString(),
		Name:      name,
		Items:     []domain.PortfolioItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	u.store.Create(portfolio)
	if err := u.flush(ctx, portfolio); err != nil {
		return domain.Portfolio{}, err
	}
	return portfolio, nil
}

func (u *portfolioUsecase) Update(ctx context.Context, portfolio domain.Portfolio) (domain.Portfolio, error) {
	if err := u.validate.Struct(portfolio); err != nil {
		return domain.Portfolio{}, apperror.BadRequest(err.Error())
	}

	updated, ok := u.store.Update(portfolio)
	if !ok {
		return domain.Portfolio{}, apperror.NotFound("Portfolio not found")
	}
	if err := u.flush(ctx, updated); err != nil {
		return domain.Portfolio{}, err
	}
	return updated, nil
}

func (u *portfolioUsecase) Delete(ctx context.Context, id string) error {
	u.store.Delete(id)
	if err := u.repo.Delete(ctx, id); err != nil {
		logger.Log.Error("Failed to delete portfolio", "id", id, "error", err)
		return apperror.Internal(err)
	}
	return nil
}

func (u *portfolioUsecase) SetCurrent(ctx context.Context, id string) (domain.Portfolio, error) {
	portfolio, ok := u.store.SetCurrent(id)
	if !ok {
		return domain.Portfolio{}, apperror.NotFound("Portfolio not found")
	}
	return portfolio, nil
}

func (u *portfolioUsecase) Current(ctx context.Context) (domain.Portfolio, error) {
	portfolio, ok := u.store.Current()
	if !ok {
		return domain.Portfolio{}, apperror.NotFound("No portfolio selected")
	}
	return portfolio, nil
}

func (u *portfolioUsecase) AddItem(ctx context.Context, item domain.PortfolioItem) (domain.Portfolio, error) {
	now := domain.NowISO()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if err := u.validate.Struct(item); err != nil {
		return domain.Portfolio{}, apperror.BadRequest(err.Error())
	}
	p, ok := u.store.AddItem(item)
	return u.afterMutation(ctx, p, ok)
}

func (u *portfolioUsecase) UpdateItem(ctx context.Context, item domain.PortfolioItem) (domain.Portfolio, error) {
	if err := u.validate.Struct(item); err != nil {
		return domain.Portfolio{}, apperror.BadRequest(err.Error())
	}
	p, ok := u.store.UpdateItem(item)
	return u.afterMutation(ctx, p, ok)
}

func (u *portfolioUsecase) RemoveItem(ctx context.Context, id string) (domain.Portfolio, error) {
	p, ok := u.store.DeleteItem(id)
	return u.afterMutation(ctx, p, ok)
}

func (u *portfolioUsecase) AttachItemImage(ctx context.Context, itemID, imageURI string) (domain.Portfolio, error) {
	p, ok := u.store.SetItemImage(itemID, imageURI)
	return u.afterMutation(ctx, p, ok)
}

func (u *portfolioUsecase) afterMutation(ctx context.Context, portfolio domain.Portfolio, ok bool) (domain.Portfolio, error) {
	if !ok {
		return domain.Portfolio{}, apperror.NotFound("No portfolio selected")
	}
	if err := u.flush(ctx, portfolio); err != nil {
		return domain.Portfolio{}, err
	}
	return portfolio, nil
}

func (u *portfolioUsecase) flush(ctx context.Context, portfolio domain.Portfolio) error {
	if err := u.repo.Save(ctx, portfolio); err != nil {
		logger.Log.Error("Failed to persist portfolio", "id", portfolio.ID, "error", err)
		return apperror.Internal(err)
	}
	return nil
}
