package ports

import (
	"context"
	"time"

	"github.com/mtorfit/evolution-api/internal/core/domain"
)

// ClientInput carries the writable fields of a client record.
type ClientInput struct {
	Name      string
	Email     string
	Phone     string
	BirthDate time.Time
	Gender    domain.Gender
	Modality  string
	Goal      string
	Status    domain.ClientStatus
}

type ClientService interface {
	List(ctx context.Context, page, size int, search string) (*ClientPage, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status domain.ClientStatus) (*domain.Client, error)
}
