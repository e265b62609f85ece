package main

import (
	"context"
	"flag"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/telvana/tsr-tracker/modules/core/domain/aggregates/user"
	"github.com/telvana/tsr-tracker/modules/core/infrastructure/persistence"
	"github.com/telvana/tsr-tracker/pkg/composables"
	"github.com/telvana/tsr-tracker/pkg/configuration"
	"github.com/telvana/tsr-tracker/pkg/logging"
)

// Creates an account so someone can sign in. There is no self-registration
// endpoint.
func main() {
	email := flag.String("email", "", "email address of the new user")
	name := flag.String("name", "", "display name of the new user")
	password := flag.String("password", "", "plaintext password, hashed before storage")
	flag.Parse()

	conf := configuration.Use()
	logger := logging.ConsoleLogger(conf.LogrusLogLevel())
	if *email == "" || *name == "" || *password == "" {
		logger.Fatal("email, name and password are required")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer pool.Close()
	ctx = composables.WithPool(ctx, pool)

	hash, err := user.HashPassword(*password)
	if err != nil {
		logger.WithError(err).Fatal("failed to hash password")
	}

	var created user.User
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = persistence.NewUserRepository().Create(txCtx, user.New(*email, *name, hash))
		return createErr
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create user")
	}
	logger.WithField("id", created.ID()).Info("user created")
}
