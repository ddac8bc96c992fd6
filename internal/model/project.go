package model

import "time"

// Project represents a single portfolio entry describing one client engagement.
// This is a pure domain model with no database-specific dependencies or tags.
// ID and CreatedAt are system-assigned at insert and immutable afterwards.
type Project struct {
	ID          int       `json:"id"`
	ClientName  string    `json:"client_name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	TechStack   string    `json:"tech_stack"`
	LiveURL     string    `json:"live_url"`
	ImageURL    string    `json:"image_url"`
	Year        string    `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
}
