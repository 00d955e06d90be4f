// adminctl manages admin accounts from the command line: creating users,
// resetting passwords and listing accounts. It goes through the same
// repository write path as the API, so passwords are always hashed before
// they reach the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dbgeneral/construction-api/internal/config"
	"github.com/dbgeneral/construction-api/internal/database"
	"github.com/dbgeneral/construction-api/internal/model"
	"github.com/dbgeneral/construction-api/internal/repository"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}
	users := repository.NewAdminUserRepo(db, cfg.BcryptCost)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		username := fs.String("username", "", "login name (required)")
		name := fs.String("name", "", "display name (required)")
		email := fs.String("email", "", "email address")
		role := fs.String("role", "admin", "role")
		password := fs.String("password", "", "initial password (required, min 6 chars)")
		_ = fs.Parse(os.Args[2:])

		u := model.AdminUser{Username: *username, Name: *name, Email: *email, Role: *role}
		if err := users.Create(ctx, &u, *password); err != nil {
			log.Fatalf("create failed: %v", err)
		}
		fmt.Printf("created admin user %q (id=%d)\n", u.Username, u.ID)

	case "passwd":
		fs := flag.NewFlagSet("passwd", flag.ExitOnError)
		username := fs.String("username", "", "login name (required)")
		password := fs.String("password", "", "new password (required, min 6 chars)")
		_ = fs.Parse(os.Args[2:])

		u, err := users.GetByUsername(ctx, *username)
		if err != nil {
			log.Fatalf("lookup failed: %v", err)
		}
		if err := users.UpdatePassword(ctx, u.ID, *password); err != nil {
			log.Fatalf("password update failed: %v", err)
		}
		fmt.Printf("password updated for %q\n", u.Username)

	case "list":
		all, err := users.List(ctx)
		if err != nil {
			log.Fatalf("list failed: %v", err)
		}
		for _, u := range all {
			last := "never"
			if u.LastLogin != nil {
				last = u.LastLogin.UTC().Format(time.RFC3339)
			}
			fmt.Printf("%-6d %-20s %-30s %-10s last login: %s\n", u.ID, u.Username, u.Email, u.Role, last)
		}

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: adminctl <create|passwd|list> [flags]")
}
