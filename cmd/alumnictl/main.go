// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// alumnictl runs maintenance commands against the alumni database. It
// shares the store layer with the server so repairs follow the same write
// paths as the application itself.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"alumni-go/internal/auth"
	"alumni-go/internal/model"
	"alumni-go/internal/store"
)

const defaultDBPath = "./data/alumni.db"

func usage() {
	_, _ = fmt.Fprintf(os.Stderr, "alumnictl - maintenance commands for the alumni backend\n\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [-db path] <command> [options]\n\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "Commands:\n")
	_, _ = fmt.Fprintf(os.Stderr, "  check-alumni    Report alumni whose is_verified flag drifted from status\n")
	_, _ = fmt.Fprintf(os.Stderr, "  fix-alumni      Repair drifted is_verified flags\n")
	_, _ = fmt.Fprintf(os.Stderr, "  check-mustahiq  Report mustahiq records with missing or dangling syubiyah links\n")
	_, _ = fmt.Fprintf(os.Stderr, "  create-user     Create a staff account\n")
}

func main() {
	_ = godotenv.Load()

	dbPath := os.Getenv("ALUMNI_DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	flag.Usage = usage
	flag.StringVar(&dbPath, "db", dbPath, "SQLite database path")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	if err := run(dbPath, flag.Arg(0), flag.Args()[1:]); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(dbPath, command string, args []string) error {
	db, err := store.NewDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	ctx := context.Background()
	queries := store.New(db)

	switch command {
	case "check-alumni":
		return checkAlumni(ctx, queries)
	case "fix-alumni":
		return fixAlumni(ctx, queries)
	case "check-mustahiq":
		return checkMustahiq(ctx, queries)
	case "create-user":
		return createUser(ctx, queries, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// checkAlumni lists rows whose derived is_verified flag no longer matches
// their verification status.
func checkAlumni(ctx context.Context, queries *store.Queries) error {
	drifted, err := queries.ListInconsistentAlumni(ctx)
	if err != nil {
		return fmt.Errorf("listing inconsistent alumni: %w", err)
	}

	if len(drifted) == 0 {
		fmt.Println("OK: no drifted alumni records")
		return nil
	}

	fmt.Printf("Found %d drifted alumni record(s):\n", len(drifted))
	for _, a := range drifted {
		fmt.Printf("  id=%d name=%q status=%s is_verified=%t\n", a.ID, a.Name, a.Status, a.IsVerified)
	}
	fmt.Println("Run 'alumnictl fix-alumni' to repair.")
	return nil
}

// fixAlumni re-derives is_verified from status for every drifted row.
func fixAlumni(ctx context.Context, queries *store.Queries) error {
	repaired, err := queries.FixInconsistentAlumni(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("fixing inconsistent alumni: %w", err)
	}

	fmt.Printf("Repaired %d alumni record(s)\n", repaired)
	return nil
}

// checkMustahiq lists mustahiq records whose syubiyah link is missing or
// points at a deleted syubiyah.
func checkMustahiq(ctx context.Context, queries *store.Queries) error {
	orphaned, err := queries.ListOrphanedMustahiq(ctx)
	if err != nil {
		return fmt.Errorf("listing orphaned mustahiq: %w", err)
	}

	if len(orphaned) == 0 {
		fmt.Println("OK: no orphaned mustahiq records")
		return nil
	}

	fmt.Printf("Found %d orphaned mustahiq record(s):\n", len(orphaned))
	for _, m := range orphaned {
		link := "none"
		if m.SyubiyahID.Valid {
			link = fmt.Sprintf("dangling (syubiyah_id=%d)", m.SyubiyahID.Int64)
		}
		fmt.Printf("  id=%d name=%q link=%s\n", m.ID, m.Name, link)
	}
	return nil
}

// createUser bootstraps a staff account.
func createUser(ctx context.Context, queries *store.Queries, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	email := fs.String("email", "", "account email (required)")
	name := fs.String("name", "", "display name (required)")
	password := fs.String("password", "", "account password (required)")
	role := fs.String("role", model.RolePusat, "account role: PUSAT or SYUBIYAH")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *name == "" || *password == "" {
		fs.Usage()
		return fmt.Errorf("email, name, and password are required")
	}
	if !model.IsValidRole(*role) {
		return fmt.Errorf("invalid role %q", *role)
	}

	if _, err := queries.GetUserByEmail(ctx, *email); err == nil {
		return fmt.Errorf("account %s already exists", *email)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking existing account: %w", err)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, store.CreateUserParams{
		Email:        *email,
		PasswordHash: hash,
		Name:         *name,
		Role:         *role,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	fmt.Printf("Created %s account id=%d email=%s\n", user.Role, user.ID, user.Email)
	return nil
}
