package postgres

import (
	"context"
	"log/slog"

	"wishlist/config"
	"wishlist/internal/domain/entity"
	"wishlist/internal/domain/lifecycle"
	"wishlist/internal/domain/service"
	"wishlist/internal/errors"
	"wishlist/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// seedAccounts are the demo users created when seeding is enabled. There is
// no registration endpoint, so these are the only way into a fresh database.
var seedAccounts = []struct {
	Username string
	Email    string
	Password string
}{
	{Username: "alice", Email: "alice@example.com", Password: "AlicePass123!"},
	{Username: "bob", Email: "bob@example.com", Password: "BobPass123!"},
}

// MigrateParams defines the dependencies for startup schema migration.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Hasher service.PasswordHasher
}

// RegisterMigration migrates the schema and seeds demo accounts at startup
// when seeding is enabled in the configuration.
func RegisterMigration(params MigrateParams) {
	if params.Config.Seed == nil || !params.Config.Seed.Enabled {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			db := params.DB.WithContext(ctx)
			if err := db.AutoMigrate(&model.UserModel{}, &model.WishModel{}); err != nil {
				return errors.Wrap(err, "auto migrate schema")
			}

			return seedUsers(ctx, db, params.Hasher, params.Logger)
		},
	})
}

func seedUsers(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	repo := NewUserRepository(db)

	for _, account := range seedAccounts {
		exists, err := repo.ExistsByUsername(ctx, account.Username)
		if err != nil {
			return errors.Wrapf(err, "check seed user %s", account.Username)
		}
		if exists {
			continue
		}

		hash, err := hasher.Hash(account.Password)
		if err != nil {
			return errors.Wrapf(err, "hash seed password for %s", account.Username)
		}

		user := &entity.User{
			Username:     account.Username,
			Email:        account.Email,
			PasswordHash: hash,
		}
		if err := repo.Create(ctx, user); err != nil {
			return errors.Wrapf(err, "create seed user %s", account.Username)
		}

		logger.LogAttrs(ctx, slog.LevelInfo, "Seeded demo account",
			slog.String("username", account.Username),
		)
	}

	return nil
}
