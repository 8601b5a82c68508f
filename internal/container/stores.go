package container

import (
	"context"
	"fmt"

	"github.com/oksasatya/devconnector-api/config"
	"github.com/oksasatya/devconnector-api/internal/infrastructure/memory"
	"github.com/oksasatya/devconnector-api/internal/infrastructure/mongodb"
	pginfra "github.com/oksasatya/devconnector-api/internal/infrastructure/postgres"
)

// MemoryStores returns fresh in-process repositories.
func MemoryStores() Stores {
	return Stores{
		Users:    memory.NewUserRepository(),
		Profiles: memory.NewProfileRepository(),
		Posts:    memory.NewPostRepository(),
	}
}

// OpenStores connects the backend named by cfg.StoreDriver. The returned
// func releases its connections.
func OpenStores(ctx context.Context, cfg *config.Config) (Stores, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			return Stores{}, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return Stores{
			Users:    pginfra.NewUserRepository(pool),
			Profiles: pginfra.NewProfileRepository(pool),
			Posts:    pginfra.NewPostRepository(pool),
		}, pool.Close, nil
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return Stores{}, nil, fmt.Errorf("connect mongo: %w", err)
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return Stores{
			Users:    mongodb.NewUserRepository(db),
			Profiles: mongodb.NewProfileRepository(db),
			Posts:    mongodb.NewPostRepository(db),
		}, closeFn, nil
	case config.StoreMemory:
		return MemoryStores(), func() {}, nil
	default:
		return Stores{}, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
