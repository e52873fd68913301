package ports

import (
	"context"

	"github.com/mtorfit/evolution-api/internal/core/domain"
)

// ClientPage is one page of clients plus the totals the frontend needs to
// render pagination controls.
type ClientPage struct {
	Items      []domain.Client `json:"content"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalItems int64           `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

type ClientRepository interface {
	// List returns a page of clients ordered by creation date descending.
	// When search is non-empty, name and email are matched case-insensitively.
	List(ctx context.Context, page, size int, search string) (*ClientPage, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
