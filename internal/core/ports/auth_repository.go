package ports

import (
	"context"

	"github.com/mtorfit/evolution-api/internal/core/domain"
)

// AuthRepository is the credential store boundary. Email lookups are
// case-insensitive: implementations normalize the address before matching.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
