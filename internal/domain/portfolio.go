package domain

import "context"

// PortfolioItem references its image by URI only; the item never owns
// image bytes. Tags keep insertion order; duplicate prevention is a UI
// concern, not enforced here.
type PortfolioItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Link        string   `json:"link" validate:"omitempty,url"`
	ImageURI    string   `json:"imageUri,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type Portfolio struct {
	ID        string          `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Items     []PortfolioItem `json:"items"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

type PortfolioRepository interface {
	LoadAll(ctx context.Context) ([]Portfolio, error)
	SaveAll(ctx context.Context, portfolios []Portfolio) error
	Save(ctx context.Context, portfolio Portfolio) error
	Delete(ctx context.Context, id string) error
}

type PortfolioUsecase interface {
	Load(ctx context.Context) ([]Portfolio, error)
	List(ctx context.Context) []Portfolio
	Get(ctx context.Context, id string) (Portfolio, error)
	Create(ctx context.Context, name string) (Portfolio, error)
	Update(ctx context.Context, portfolio Portfolio) (Portfolio, error)
	Delete(ctx context.Context, id string) error
	SetCurrent(ctx context.Context, id string) (Portfolio, error)
	Current(ctx context.Context) (Portfolio, error)

	AddItem(ctx context.Context, item PortfolioItem) (Portfolio, error)
	UpdateItem(ctx context.Context, item PortfolioItem) (Portfolio, error)
	RemoveItem(ctx context.Context, id string) (Portfolio, error)
	AttachItemImage(ctx context.Context, itemID, imageURI string) (Portfolio, error)
}
