package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/jpsalviano/todolists/config"
	"github.com/jpsalviano/todolists/pkg/helpers"
)

// seed inserts a verified demo account with one list and a few tasks so a
// fresh database is usable right after migrations.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@todolists.local"
	password := "password123"
	name := "Demo Person"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int
	err = db.QueryRow(`
		INSERT INTO users (name, email, password, verified)
		VALUES ($1, $2, $3, true)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, verified = true
		RETURNING user_id
	`, name, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", userID, email, password)

	var listID int
	err = db.QueryRow(`
		INSERT INTO lists (title, user_id)
		VALUES ($1, $2)
		ON CONFLICT (title, user_id) DO UPDATE SET title = EXCLUDED.title
		RETURNING list_id
	`, "Groceries", userID).Scan(&listID)
	if err != nil {
		log.Fatalf("failed to seed list: %v", err)
	}

	tasks := []struct {
		text string
		done bool
	}{
		{"Buy milk", false},
		{"Buy coffee", true},
		{"Buy bread", false},
	}
	for _, t := range tasks {
		if _, err := db.Exec(`
			INSERT INTO tasks (task, done, list_id)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (SELECT 1 FROM tasks WHERE list_id = $3 AND task = $1)
		`, t.text, t.done, listID); err != nil {
			log.Fatalf("failed to seed task: %v", err)
		}
	}
	fmt.Printf("seeded list %d with %d tasks\n", listID, len(tasks))
}
