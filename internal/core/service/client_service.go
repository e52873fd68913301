package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ClientManager implements the client roster operations behind the
// admin/coach gate.
type ClientManager struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientManager(repo ports.ClientRepository, logger zerolog.Logger) *ClientManager {
	return &ClientManager{repo: repo, logger: logger}
}

func (s *ClientManager) List(ctx context.Context, page, size int, search string) (*ports.ClientPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return s.repo.List(ctx, page, size, search)
}

func (s *ClientManager) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientManager) Create(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	now := time.Now().UTC()
	client := &domain.Client{
		ID:        uuid.NewString(),
		Status:    domain.ClientActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(client, input)

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("client_id", created.ID).Str("modality", created.Modality).Msg("client created")
	return created, nil
}

func (s *ClientManager) Update(ctx context.Context, id string, input ports.ClientInput) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(client, input)
	client.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, client)
}

func (s *ClientManager) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ClientManager) UpdateStatus(ctx context.Context, id string, status domain.ClientStatus) (*domain.Client, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Status = status
	client.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, client)
}

func applyInput(client *domain.Client, input ports.ClientInput) {
	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.BirthDate = input.BirthDate
	client.Gender = input.Gender
	client.Modality = input.Modality
	client.Goal = input.Goal
	if input.Status != "" {
		client.Status = input.Status
	}
}
