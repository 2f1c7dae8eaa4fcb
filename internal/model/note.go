package model

import "time"

// Note represents a single book note. Every note belongs to exactly one user;
// all lookups must filter on OwnerID as well as ID.
type Note struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OwnerID   uint      `json:"owner_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Author    string    `json:"author" gorm:"size:255"`
	Content   string    `json:"note" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteSummary is the listing projection: the note body is omitted to keep
// list payloads small.
type NoteSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
