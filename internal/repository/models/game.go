package models

import (
	"database/sql"
	"time"
)

// Game is a row of the games table. Document holds the JSON game document.
type Game struct {
	ID        string         `db:"id"`
	Title     sql.NullString `db:"title"`
	Document  string         `db:"document"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}
