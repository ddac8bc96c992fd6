package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

const createClientProjects = `CREATE TABLE IF NOT EXISTS client_projects (
  id          SERIAL       PRIMARY KEY,
  client_name VARCHAR(100) NOT NULL,
  category    VARCHAR(50)  NOT NULL,
  description TEXT         NOT NULL,
  tech_stack  VARCHAR(255) NOT NULL DEFAULT '',
  live_url    VARCHAR(255) NOT NULL DEFAULT '',
  image_url   VARCHAR(255) NOT NULL DEFAULT '',
  year        VARCHAR(4)   NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ  NOT NULL DEFAULT now()
);`

type seedProject struct {
	clientName  string
	category    string
	description string
	techStack   string
	liveURL     string
	imageURL    string
	year        string
}

// seedProjects are inserted exactly once, when the table is first found empty.
var seedProjects = []seedProject{
	{
		clientName:  "The Core Originals",
		category:    "E-Commerce",
		description: "A full-featured e-commerce platform for a fashion/accessories brand. Built with Flask & MySQL, featuring product management, cart, checkout, and Razorpay payment integration.",
		techStack:   "Python, Flask, MySQL, Razorpay",
		liveURL:     "https://thecoreoriginals.com",
		imageURL:    "",
		year:        "2025",
	},
	{
		clientName:  "Dosutra",
		category:    "E-Commerce",
		description: "A modern e-commerce web application with a clean UI, dynamic product categories, admin dashboard, and full order management system. Mobile-first design.",
		techStack:   "Python, Flask, MySQL, JavaScript",
		liveURL:     "https://dosutra.com",
		imageURL:    "",
		year:        "2025",
	},
}

// EnsureDatabase creates the application database if it does not exist yet.
// The handle must be connected to a maintenance database (e.g. "postgres").
func EnsureDatabase(ctx context.Context, admin *sql.DB, name string) error {
	var exists bool
	err := admin.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`, name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}
	if exists {
		return nil
	}
	// CREATE DATABASE does not support bind parameters.
	if _, err := admin.ExecContext(ctx, fmt.Sprintf(`CREATE DATABASE %q`, name)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}
	return nil
}

// EnsureMigrated creates the client_projects table if absent and seeds the two
// bootstrap records when the table is empty. Re-running it is a no-op with
// respect to data: the count check prevents duplicate seeding.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	logJSON(map[string]any{
		"component": "database",
		"event":     "schema_bootstrap_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass('public.client_projects') IS NOT NULL").Scan(&exists)
	if err != nil {
		logJSON(map[string]any{
			"component":     "database",
			"event":         "schema_bootstrap_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if !exists {
		if _, err := db.ExecContext(ctx, createClientProjects); err != nil {
			logJSON(map[string]any{
				"component":     "database",
				"event":         "schema_bootstrap_failed",
				"status":        "error",
				"error_message": fmt.Sprintf("failed to create client_projects: %v", err),
				"db_host":       dbHost,
				"duration_ms":   time.Since(start).Milliseconds(),
			})
			return fmt.Errorf("failed to create client_projects: %w", err)
		}
		logJSON(map[string]any{
			"component": "database",
			"event":     "schema_bootstrap_table_created",
			"status":    "success",
			"db_host":   dbHost,
		})
	}

	seeded, err := seedIfEmpty(ctx, db)
	if err != nil {
		logJSON(map[string]any{
			"component":     "database",
			"event":         "schema_bootstrap_failed",
			"status":        "error",
			"error_message": err.Error(),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return err
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "schema_bootstrap_success",
		"status":      "success",
		"seeded":      seeded,
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func seedIfEmpty(ctx context.Context, db *sql.DB) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM client_projects").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count client_projects: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	const q = `INSERT INTO client_projects
		(client_name, category, description, tech_stack, live_url, image_url, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, p := range seedProjects {
		if _, err := db.ExecContext(ctx, q,
			p.clientName, p.category, p.description, p.techStack, p.liveURL, p.imageURL, p.year,
		); err != nil {
			return false, fmt.Errorf("failed to seed project %s: %w", p.clientName, err)
		}
	}
	return true, nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
