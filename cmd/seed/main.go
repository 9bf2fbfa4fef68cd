package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/lucasweiblen/clean-architecture/config"
	"github.com/lucasweiblen/clean-architecture/internal/application"
	"github.com/lucasweiblen/clean-architecture/internal/domain/entity"
	"github.com/lucasweiblen/clean-architecture/internal/infrastructure/mongodb"
	"github.com/lucasweiblen/clean-architecture/pkg/helpers"
)

// Seeds a known account through the same pipeline the API uses.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	if err := mongodb.EnsureAccountIndexes(ctx, db.Collection(cfg.AccountsCollection)); err != nil {
		log.Fatalf("failed to ensure account indexes: %v", err)
	}

	repo := mongodb.NewAccountRepository(db, cfg.AccountsCollection)
	addAccount := application.NewAddAccountService(repo, helpers.NewBcryptAdapter(cfg.BcryptCost))

	acc, err := addAccount.Add(ctx, entity.AddAccountInput{
		Name:     "demo",
		Email:    "demo@example.com",
		Password: "password123",
	})
	if err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	if acc == nil {
		fmt.Println("seed account already exists")
		return
	}
	fmt.Printf("seeded account: id=%s email=%s\n", acc.ID, acc.Email)
}
