// Command migrate applies, rolls back, or reports database migrations.
//
// Usage: migrate <up|down|status> [-dir migrations]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/novahq/nova-backend/internal/config"
)

func main() {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	dir := fs.String("dir", "migrations", "directory with migration files")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|status> [-dir migrations]")
		os.Exit(1)
	}
	command := os.Args[1]
	fs.Parse(os.Args[2:]) //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dir))
	if err != nil {
		log.Fatalf("goose provider: %v", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("migrate up: %v", err)
		}
		for _, r := range results {
			fmt.Printf("applied %s\n", r.Source.Path)
		}
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("migrate down: %v", err)
		}
		fmt.Printf("rolled back %s\n", result.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("migrate status: %v", err)
		}
		for _, s := range statuses {
			state := "pending"
			if s.State == goose.StateApplied {
				state = "applied"
			}
			fmt.Printf("%-10s %s\n", state, s.Source.Path)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: migrate <up|down|status>\n", command)
		os.Exit(1)
	}
}
