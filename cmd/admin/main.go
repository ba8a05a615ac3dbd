// Command admin manages account roles from the shell, for operators who
// cannot or should not go through the HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"murmur/internal/config"
	"murmur/internal/database"
	"murmur/internal/models"
	"murmur/internal/repository"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin promote <user_id>   - Promote user to ADMIN")
		fmt.Println("  go run ./cmd/admin demote <user_id>    - Demote ADMIN to USER")
		fmt.Println("  go run ./cmd/admin list-admins         - List ADMIN and OWNER accounts")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	ctx := context.Background()

	switch os.Args[1] {
	case "promote":
		user := mustLookup(ctx, userRepo)
		if err := userRepo.UpdateRole(ctx, user, models.RoleAdmin); err != nil {
			log.Fatalf("Promote failed: %v", err)
		}
		fmt.Printf("%s is now ADMIN\n", user.Username)

	case "demote":
		user := mustLookup(ctx, userRepo)
		if user.Role != models.RoleAdmin {
			log.Fatalf("%s is not an admin (role %s)", user.Username, user.Role)
		}
		if err := userRepo.UpdateRole(ctx, user, models.RoleUser); err != nil {
			log.Fatalf("Demote failed: %v", err)
		}
		fmt.Printf("%s is now USER\n", user.Username)

	case "list-admins":
		var users []models.User
		if err := db.Where("role IN ?", []models.Role{models.RoleAdmin, models.RoleOwner}).
			Order("id").Find(&users).Error; err != nil {
			log.Fatalf("List failed: %v", err)
		}
		for _, u := range users {
			active := "active"
			if !u.IsActive {
				active = "deactivated"
			}
			fmt.Printf("%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Role, active)
		}

	default:
		log.Fatalf("Unknown command: %s", os.Args[1])
	}
}

func mustLookup(ctx context.Context, repo repository.UserRepository) *models.User {
	if len(os.Args) < 3 {
		log.Fatal("Missing user_id argument")
	}
	id, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil {
		log.Fatalf("Invalid user_id: %v", err)
	}
	user, err := repo.GetByID(ctx, uint(id))
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}
	return user
}
