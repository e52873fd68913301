// Package seed provisions default users and sample clients on first run so a
// fresh environment is usable immediately. It never runs against production
// data: seeding is skipped when the environment is production or when any
// user already exists.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtorfit/evolution-api/internal/core/domain"
	"github.com/mtorfit/evolution-api/internal/core/ports"
)

type defaultUser struct {
	name     string
	email    string
	password string
	role     domain.Role
}

var defaultUsers = []defaultUser{
	{"Administrador", "admin@mtor.com", "admin123", domain.RoleAdmin},
	{"Treinador Principal", "coach@mtor.com", "coach123", domain.RoleCoach},
	{"Cliente Teste", "cliente@mtor.com", "cliente123", domain.RoleClient},
}

var sampleClients = []domain.Client{
	{
		Name:      "João Silva",
		Email:     "joao.silva@email.com",
		Phone:     "(11) 99999-1111",
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Gender:    domain.GenderMale,
		Modality:  "Musculação",
		Goal:      "Ganho de massa muscular",
		Status:    domain.ClientActive,
	},
	{
		Name:      "Maria Santos",
		Email:     "maria.santos@email.com",
		Phone:     "(11) 99999-2222",
		BirthDate: time.Date(1985, 8, 22, 0, 0, 0, 0, time.UTC),
		Gender:    domain.GenderFemale,
		Modality:  "Crossfit",
		Goal:      "Perda de peso e condicionamento",
		Status:    domain.ClientActive,
	},
	{
		Name:      "Pedro Oliveira",
		Email:     "pedro.oliveira@email.com",
		Phone:     "(11) 99999-3333",
		BirthDate: time.Date(1992, 12, 10, 0, 0, 0, 0, time.UTC),
		Gender:    domain.GenderMale,
		Modality:  "Natação",
		Goal:      "Melhora da resistência cardiovascular",
		Status:    domain.ClientActive,
	},
}

// Run seeds default users and sample clients when the stores are empty.
// Individual failures are logged and skipped rather than aborting startup.
func Run(ctx context.Context, users ports.AuthRepository, clients ports.ClientRepository, logger zerolog.Logger) {
	seedUsers(ctx, users, logger)
	seedClients(ctx, clients, logger)
}

func seedUsers(ctx context.Context, repo ports.AuthRepository, logger zerolog.Logger) {
	for _, u := range defaultUsers {
		exists, err := repo.ExistsByEmail(ctx, u.email)
		if err != nil {
			logger.Error().Err(err).Str("email", u.email).Msg("seed: user check failed")
			continue
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error().Err(err).Str("email", u.email).Msg("seed: hash failed")
			continue
		}

		now := time.Now().UTC()
		if _, err := repo.Create(ctx, &domain.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			logger.Error().Err(err).Str("email", u.email).Msg("seed: user create failed")
			continue
		}
		logger.Info().Str("email", u.email).Str("role", string(u.role)).Msg("seed: default user created")
	}
}

func seedClients(ctx context.Context, repo ports.ClientRepository, logger zerolog.Logger) {
	n, err := repo.Count(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("seed: client count failed")
		return
	}
	if n > 0 {
		return
	}

	for _, c := range sampleClients {
		client := c
		now := time.Now().UTC()
		client.ID = uuid.NewString()
		client.CreatedAt = now
		client.UpdatedAt = now
		if _, err := repo.Create(ctx, &client); err != nil {
			logger.Error().Err(err).Str("email", client.Email).Msg("seed: client create failed")
		}
	}
	logger.Info().Int("count", len(sampleClients)).Msg("seed: sample clients created")
}
